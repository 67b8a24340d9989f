// Package results provides the generic success/failure envelope returned by
// application services. Business failures travel in the Failure payload and
// are published as failure events; Go errors are reserved for infrastructure
// problems that should be retried.
package results

// OperationResult carries either a success or a failure payload. Exactly one
// side is expected to be set; both nil means the operation produced nothing.
type OperationResult[S any, F any] struct {
	Success *S
	Failure *F
}

// IsSuccess reports whether the operation produced a success payload.
func (r OperationResult[S, F]) IsSuccess() bool { return r.Success != nil }

// IsFailure reports whether the operation produced a failure payload.
func (r OperationResult[S, F]) IsFailure() bool { return r.Failure != nil }

// Success wraps s in a successful OperationResult.
func Success[S any, F any](s S) OperationResult[S, F] {
	return OperationResult[S, F]{Success: &s}
}

// Failure wraps f in a failed OperationResult.
func Failure[S any, F any](f F) OperationResult[S, F] {
	return OperationResult[S, F]{Failure: &f}
}
