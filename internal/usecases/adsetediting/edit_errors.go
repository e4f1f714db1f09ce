package adsetediting

import (
	"net/http"

	"github.com/vfg2006/meta-backoffice-api/pkg/apiErrors"
)

const applyFailedSolution = "The change was logged but not applied. Please try again."

// ApplyError indica que a edição foi registrada na auditoria mas rejeitada pelo Meta
type ApplyError struct {
	LogID   string
	Message string
	Err     error
}

func (e *ApplyError) Error() string {
	return e.Message
}

func (e *ApplyError) Unwrap() error {
	return e.Err
}

func (e *ApplyError) HTTPStatus() int {
	return http.StatusInternalServerError
}

func (e *ApplyError) Response() apiErrors.ErrorResponse {
	return apiErrors.ErrorResponse{
		Error:    "Failed to apply changes to Meta",
		Message:  e.Message,
		Solution: applyFailedSolution,
	}
}

func validationError(title, message, solution string) error {
	return apiErrors.New(apiErrors.ErrInvalidRequest, title, message, solution)
}
