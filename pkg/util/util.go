package util

import (
	"golang.org/x/exp/constraints"
)

func AssertPanic(cond bool, msg string) {
	if !cond {
		panic(msg)
	}
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func Abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
