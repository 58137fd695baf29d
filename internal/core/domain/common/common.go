package common

import (
	"fmt"
)

// Optional carries a value that may be absent, e.g. a listing filter.
type Optional[T any] struct {
	Value     T
	IsPresent bool
}

func NewOptional[T any](value T, isPresent bool) Optional[T] {
	return Optional[T]{Value: value, IsPresent: isPresent}
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{Value: value, IsPresent: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (p Optional[T]) Get() (T, bool) {
	return p.Value, p.IsPresent
}

func (p Optional[T]) OrElse(fallback T) T {
	if !p.IsPresent {
		return fallback
	}
	return p.Value
}

func (p Optional[T]) String() string {
	if !p.IsPresent {
		return "[-]"
	}
	return fmt.Sprintf("[%v]", p.Value)
}
