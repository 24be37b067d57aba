package concurrent

import (
	"sort"
	"testing"
)

func TestWorkerPoolProcessesEveryJob(t *testing.T) {
	numJobs := 100
	wp := NewWorkerPool[int, int](4, numJobs)

	for i := 0; i < numJobs; i++ {
		wp.AddJob(i)
	}
	wp.Close()
	wp.Start(func(job int) int {
		return job * job
	})
	wp.Wait()

	results := make([]int, 0, numJobs)
	for res := range wp.CollectResults() {
		results = append(results, res)
	}
	if len(results) != numJobs {
		t.Fatalf("want %d results, got %d", numJobs, len(results))
	}

	sort.Ints(results)
	for i := 0; i < numJobs; i++ {
		if results[i] != i*i {
			t.Fatalf("result %d: want %d, got %d", i, i*i, results[i])
		}
	}
}

func TestWorkerPoolWaitIsABarrier(t *testing.T) {
	wp := NewWorkerPool[int, int](2, 10)
	for i := 0; i < 10; i++ {
		wp.AddJob(i)
	}
	wp.Close()
	wp.Start(func(job int) int { return job })
	wp.Wait()

	// after Wait the results channel is closed and fully buffered: draining
	// must terminate without blocking.
	count := 0
	for range wp.CollectResults() {
		count++
	}
	if count != 10 {
		t.Fatalf("want 10 buffered results after the barrier, got %d", count)
	}
}
