package errors

import (
	"errors"
	"net/http"
)

var (
	NotFound            = HttpError{http.StatusNotFound, errors.New("not found")}
	BadRequest          = HttpError{http.StatusBadRequest, errors.New("bad request")}
	InvalidPeriod       = HttpError{http.StatusBadRequest, errors.New("invalid billing period")}
	NotAuthorized       = HttpError{http.StatusForbidden, errors.New("not authorized")}
	UpstreamReadFailure = HttpError{http.StatusBadGateway, errors.New("upstream store unavailable, try again")}
	InternalServerError = HttpError{http.StatusInternalServerError, errors.New("internal server error")}
)

type HttpError struct {
	Code int
	Err  error
}

func (h HttpError) Unwrap() error {
	return h.Err
}

func (h HttpError) Error() string {
	return h.Err.Error()
}
