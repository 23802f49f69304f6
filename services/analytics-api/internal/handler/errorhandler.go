// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"context"
	"errors"
	"net/http"

	"link-analytics/pkg/problemdetails"
)

// ProblemErrorHandler maps errors to RFC 7807 responses. Logic layers return
// *ProblemDetail directly; anything else (request parsing, unexpected errors)
// becomes a generic problem without leaking internals. Installed via
// httpx.SetErrorHandlerCtx in main.
func ProblemErrorHandler(ctx context.Context, err error) (int, interface{}) {
	var problem *problemdetails.ProblemDetail
	if errors.As(err, &problem) {
		return problem.Status, problem
	}
	problem = problemdetails.New(
		http.StatusBadRequest,
		problemdetails.TypeValidationError,
		"Bad Request",
		err.Error(),
	)
	return problem.Status, problem
}
