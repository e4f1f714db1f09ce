package apiErrors

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	metadomain "github.com/vfg2006/meta-backoffice-api/infrastructure/integrator/meta/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro locais
const (
	// Erros de autenticação
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas
	ErrNotAuthenticated      = "AUTH_002" // Sessão ausente ou inválida
	ErrInsufficientPrivilege = "AUTH_003" // Usuário fora da allowlist de administradores

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de recursos
	ErrNotFound = "RES_001" // Recurso não encontrado

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrNotAuthenticated:      http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrNotFound:              http.StatusNotFound,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
}

// StatusFromCode devolve 500 para códigos desconhecidos
func StatusFromCode(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// ErrorResponse é o corpo comum de todas as respostas de erro
type ErrorResponse struct {
	Error    string `json:"error"`
	Message  string `json:"message"`
	Solution string `json:"solution,omitempty"`
}

// HTTPError é implementado pelos erros tipados que já sabem o próprio status
type HTTPError interface {
	error
	HTTPStatus() int
	Response() ErrorResponse
}

// APIError é o erro local padrão (validação, autenticação, recurso ausente)
type APIError struct {
	Code     string
	Title    string
	Message  string
	Solution string
	Err      error
}

func New(code, title, message, solution string) *APIError {
	return &APIError{
		Code:     code,
		Title:    title,
		Message:  message,
		Solution: solution,
	}
}

// Wrap cria um APIError preservando a causa original
func Wrap(err error, code, title, solution string) *APIError {
	return &APIError{
		Code:     code,
		Title:    title,
		Message:  err.Error(),
		Solution: solution,
		Err:      err,
	}
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func (e *APIError) HTTPStatus() int {
	return StatusFromCode(e.Code)
}

func (e *APIError) Response() ErrorResponse {
	return ErrorResponse{
		Error:    e.Title,
		Message:  e.Message,
		Solution: e.Solution,
	}
}

// WriteError escreve um erro local a partir do código
func WriteError(w http.ResponseWriter, code, title, message, solution string) {
	apiErr := New(code, title, message, solution)
	WriteJSONError(w, apiErr.HTTPStatus(), apiErr.Response())
}

// WriteGraphError escreve um erro classificado pelo mapeador de erros do Graph
func WriteGraphError(w http.ResponseWriter, errorReturn metadomain.GraphErrorReturn) {
	WriteJSONError(w, errorReturn.StatusCode, ErrorResponse{
		Error:    errorReturn.Reason.Title,
		Message:  errorReturn.Reason.Message,
		Solution: errorReturn.Reason.Solution,
	})
}

// WriteFromError é o ponto único de saída de erros dos handlers: erros tipados
// mantêm o próprio status, o restante passa pelo mapeador de erros do Graph.
func WriteFromError(w http.ResponseWriter, err error) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		WriteJSONError(w, httpErr.HTTPStatus(), httpErr.Response())
		return
	}

	WriteGraphError(w, metadomain.ErrorToGraphErrorReturn(err))
}

func WriteJSONError(w http.ResponseWriter, status int, body ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
