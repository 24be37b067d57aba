package util

import "testing"

func TestMinMax(t *testing.T) {
	if Min(3, 5) != 3 || Min(5, 3) != 3 {
		t.Error("Min is wrong")
	}
	if Max(3, 5) != 5 || Max(5, 3) != 5 {
		t.Error("Max is wrong")
	}
	if Min(-1.5, 2.5) != -1.5 || Max(-1.5, 2.5) != 2.5 {
		t.Error("Min/Max on floats is wrong")
	}
}

func TestAbs(t *testing.T) {
	if Abs(-4) != 4 || Abs(4) != 4 || Abs(0) != 0 {
		t.Error("Abs is wrong")
	}
}

func TestAssertPanic(t *testing.T) {
	AssertPanic(true, "must not panic")

	defer func() {
		if recover() == nil {
			t.Error("a failed assertion must panic")
		}
	}()
	AssertPanic(false, "boom")
}
