package tasklog

import "reflect"

// anyEqual compares two values of an arbitrary type parameter for equality.
// X is not constrained to be comparable (a caller may use a struct or
// slice-bearing domain error type), so the one caller that still needs a
// zero-value comparison — Enter, bridging an undiscriminated (A, X, error)
// triple into a Task — falls back to reflect.DeepEqual rather than requiring
// comparable as a type constraint on its own signature. Every other
// combinator carries an explicit hasErr discriminant (see outcome in
// task.go) and never calls this.
func anyEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
