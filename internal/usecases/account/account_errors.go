package account

import (
	"errors"
	"net/http"

	"github.com/vfg2006/meta-backoffice-api/pkg/apiErrors"
)

var (
	ErrUserIDRequired = errors.New("user ID is required")
	ErrNotConnected   = errors.New("user does not have a connected Meta Business Account")
)

// TokenError é devolvido pelo resolvedor de token já no formato da resposta HTTP
type TokenError struct {
	Err      error
	Title    string
	Message  string
	Solution string
	Status   int
}

// Error implementa a interface error
func (e *TokenError) Error() string {
	return e.Message
}

// Unwrap retorna o erro subjacente
func (e *TokenError) Unwrap() error {
	return e.Err
}

func (e *TokenError) HTTPStatus() int {
	return e.Status
}

func (e *TokenError) Response() apiErrors.ErrorResponse {
	return apiErrors.ErrorResponse{
		Error:    e.Title,
		Message:  e.Message,
		Solution: e.Solution,
	}
}

// NewNotConnectedError indica que o usuário nunca conectou uma conta do Meta
func NewNotConnectedError() *TokenError {
	return &TokenError{
		Err:      ErrNotConnected,
		Title:    "No connected account",
		Message:  "User does not have a connected Meta Business Account",
		Solution: "User needs to connect their Facebook account first",
		Status:   http.StatusNotFound,
	}
}

// NewTokenStorageError encapsula falhas do banco ao buscar o token
func NewTokenStorageError(err error) *TokenError {
	return &TokenError{
		Err:      err,
		Title:    "Internal server error",
		Message:  err.Error(),
		Solution: "Please try again later",
		Status:   http.StatusInternalServerError,
	}
}

func NewUserIDRequiredError() *TokenError {
	return &TokenError{
		Err:      ErrUserIDRequired,
		Title:    "Missing userId",
		Message:  "The userId parameter is required",
		Solution: "Provide the id of the user whose Meta account should be used",
		Status:   http.StatusBadRequest,
	}
}
