package utils

import (
	"fmt"
	"runtime"
)

// ErrorWithTrace prefixes an error with its call site, so layered fetch
// helpers keep a breadcrumb trail without full stack dumps.
func ErrorWithTrace(e error) error {
	_, file, line, _ := runtime.Caller(1)
	return fmt.Errorf("%s:%d\n\t%v", file, line, e)
}

// Deref returns the pointed-to value, or the zero value for nil. Endpoint
// rows carry pointer fields for nullable columns; rendering wants plain
// values.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
