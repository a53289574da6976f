package models

// Error taxonomy returned by the service layer. The HTTP helper maps each
// type to a status code.

type ErrorValidation struct {
	Message string
}

func (e ErrorValidation) Error() string { return e.Message }

type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string { return e.Message }

type ErrorConflict struct {
	Message string
}

func (e ErrorConflict) Error() string { return e.Message }

type ErrorForbidden struct {
	Message string
}

func (e ErrorForbidden) Error() string { return e.Message }

type ErrorInternalServer struct {
	Message string
	Err     error
}

func (e ErrorInternalServer) Error() string { return e.Message }

func (e ErrorInternalServer) Unwrap() error { return e.Err }

func NewValidationError(msg string) error { return ErrorValidation{Message: msg} }

func NewNotFoundError(msg string) error { return ErrorNotFound{Message: msg} }

func NewConflictError(msg string) error { return ErrorConflict{Message: msg} }

func NewForbiddenError(msg string) error { return ErrorForbidden{Message: msg} }

func NewInternalError(err error) error {
	return ErrorInternalServer{Message: "internal server error", Err: err}
}
