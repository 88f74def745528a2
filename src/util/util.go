package util

import (
	"golang.org/x/exp/constraints"
)

func Min[T constraints.Ordered](a T, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T constraints.Ordered](a T, b T) T {
	if a > b {
		return a
	}
	return b
}

func Clamp[T constraints.Ordered](value T, low T, high T) T {
	return Max(low, Min(value, high))
}
