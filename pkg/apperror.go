package pkg

import "fmt"

// AppError is the error shape handlers translate domain failures into.
//
// Code is a stable machine-readable identifier, Message the human-facing text.
// HTTPStatus drives the response code; Err (optional) keeps the underlying cause
// for logging without leaking it in Code/Message.

type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPError is the JSON body returned to clients.
type HTTPError struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

func (e *AppError) ToHTTPError() HTTPError {
	body := HTTPError{Error: e.Message, Code: e.Code}
	if e.Err != nil {
		// Internal-tool tradeoff: the underlying message is passed through.
		body.Details = e.Err.Error()
	}
	return body
}

// WithDetails attaches extra payload (e.g. the list of rejected update fields).
func (e *AppError) WithDetails(details any) HTTPError {
	body := e.ToHTTPError()
	body.Details = details
	return body
}
