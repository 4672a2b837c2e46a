package errors

import (
	"errors"
)

var (
	ErrInvalidStatusCode  = errors.New("invalid status code")
	ErrInvalidContentType = errors.New("invalid content type")
	ErrMissingStatusCode  = errors.New("missing status code")
	ErrHeadersAlreadySent = errors.New("headers already sent")
	ErrNilTransport       = errors.New("nil transport")
	ErrNilWriter          = errors.New("nil writer")
	ErrNilResponseWriter  = errors.New("nil response writer")
	// TODO: Put in a problem detail errors package if more are needed?
	ErrNilProblemDetail            = errors.New("nil problem detail")
	ErrEmptyStatus                 = errors.New("empty status")
	ErrUnusableResponseError       = errors.New("unusable response error")
	ErrEmptyResponseErrorErrors    = errors.New("empty response error errors")
	ErrMultipleResponseErrorErrors = errors.New("multiple response error errors")
)

type InvalidStatusCodeError struct {
	StatusCode int
}

func (invalidStatusCodeError *InvalidStatusCodeError) Is(target error) bool {
	return target == ErrInvalidStatusCode
}

func (invalidStatusCodeError *InvalidStatusCodeError) Error() string {
	return ErrInvalidStatusCode.Error()
}

func (invalidStatusCodeError *InvalidStatusCodeError) GetInput() any {
	return invalidStatusCodeError.StatusCode
}

type InvalidContentTypeError struct {
	Value any
}

func (invalidContentTypeError *InvalidContentTypeError) Is(target error) bool {
	return target == ErrInvalidContentType
}

func (invalidContentTypeError *InvalidContentTypeError) Error() string {
	return ErrInvalidContentType.Error()
}

func (invalidContentTypeError *InvalidContentTypeError) GetInput() any {
	return invalidContentTypeError.Value
}
