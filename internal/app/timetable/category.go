package timetable

import (
	"fmt"

	"github.com/yigit/examtable/internal/pkg/apperrors"
)

// Category is the outcome of one analysis. Items is never nil; Err is set when the
// analysis failed and the items were replaced by an empty list.
type Category[T any] struct {
	Name  string
	Items []T
	Err   error
}

// Degraded reports whether the category is empty because its analysis failed.
func (c Category[T]) Degraded() bool {
	return c.Err != nil
}

// runCategory executes fn in isolation: an error or a panic only empties this category.
func runCategory[T any](name string, fn func() ([]T, error)) (c Category[T]) {
	defer func() {
		if r := recover(); r != nil {
			c = Category[T]{Name: name, Items: []T{}, Err: fmt.Errorf("%w: %s: %v", apperrors.ErrAnalysisFailed, name, r)}
		}
	}()

	items, err := fn()
	if err != nil {
		return Category[T]{Name: name, Items: []T{}, Err: err}
	}
	if items == nil {
		items = []T{}
	}
	return Category[T]{Name: name, Items: items}
}
