package metadomain

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error *ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta. Message, Type e Code
// são obrigatórios para que o payload seja tratado como erro do Graph.
type ErrorDetails struct {
	Message        *string `json:"message"`
	Type           *string `json:"type"`
	Code           *int    `json:"code"`
	ErrorSubcode   *int    `json:"error_subcode,omitempty"`
	ErrorUserTitle string  `json:"error_user_title,omitempty"`
	ErrorUserMsg   string  `json:"error_user_msg,omitempty"`
	FBTraceID      string  `json:"fbtrace_id,omitempty"`
}

// GraphErrorInfo é a versão validada de ErrorDetails devolvida aos clientes
type GraphErrorInfo struct {
	Message        string `json:"message"`
	Type           string `json:"type"`
	Code           int    `json:"code"`
	ErrorSubcode   *int   `json:"errorSubcode,omitempty"`
	ErrorUserTitle string `json:"errorUserTitle,omitempty"`
	ErrorUserMsg   string `json:"errorUserMsg,omitempty"`
	FBTraceID      string `json:"fbtraceId,omitempty"`
}

type MappedError struct {
	HTTPStatusCode int    `json:"httpStatusCode"`
	Title          string `json:"title"`
	Message        string `json:"message"`
	Solution       string `json:"solution"`
	IsTransient    bool   `json:"isTransient"`
}

type GraphErrorReturn struct {
	StatusCode int             `json:"statusCode"`
	Reason     MappedError     `json:"reason"`
	Data       *GraphErrorInfo `json:"data,omitempty"`
}

// GraphAPIError carrega o retorno já classificado de uma chamada ao Graph
type GraphAPIError struct {
	Return GraphErrorReturn
	Err    error
}

func (e *GraphAPIError) Error() string {
	return e.Return.Reason.Message
}

func (e *GraphAPIError) Unwrap() error {
	return e.Err
}

func NewGraphAPIError(errorReturn GraphErrorReturn, cause error) *GraphAPIError {
	return &GraphAPIError{Return: errorReturn, Err: cause}
}

const defaultSolution = "Tente novamente. Se o problema persistir, entre em contato com o suporte."

// GenericError é usado quando nenhum mapeamento é encontrado
var GenericError = MappedError{
	HTTPStatusCode: http.StatusInternalServerError,
	Title:          "Erro Desconhecido",
	Message:        "Ocorreu um erro inesperado ao processar sua requisição.",
	Solution:       defaultSolution,
	IsTransient:    true,
}

// anySubcode é a entrada usada quando o subcódigo não importa
const anySubcode = -1

// errorMap é indexado por código e depois por subcódigo
var errorMap = map[int]map[int]MappedError{
	102: {
		anySubcode: {
			HTTPStatusCode: http.StatusUnauthorized,
			Title:          "Sessão da API",
			Message:        "O status de login ou o token de acesso expirou, foi revogado ou é inválido (sem subcódigo).",
			Solution:       "Obtenha um novo token de acesso e tente novamente.",
		},
	},
	190: {
		anySubcode: {
			HTTPStatusCode: http.StatusUnauthorized,
			Title:          "Token de Acesso Expirou",
			Message:        "O token de acesso expirou, foi revogado ou é inválido.",
			Solution:       "Obtenha um novo token (reauth/refresh) e tente novamente.",
		},
	},
	200: {
		anySubcode: {
			HTTPStatusCode: http.StatusForbidden,
			Title:          "Erro de Permissão",
			Message:        "O usuário não tem permissão para realizar esta ação.",
			Solution:       "Verifique se o usuário tem as permissões necessárias para esta operação.",
		},
	},
	294: {
		anySubcode: {
			HTTPStatusCode: http.StatusForbidden,
			Title:          "Permissão ads_management Necessária",
			Message:        "Gerenciar anúncios requer a permissão estendida ads_management e um aplicativo na lista de permissões para acessar a Marketing API.",
			Solution:       "Solicite a permissão ads_management e verifique se seu app tem acesso à Marketing API.",
		},
	},
}

// FindMappedError procura primeiro código+subcódigo, depois só o código e por fim o erro genérico
func FindMappedError(code int, subcode *int) MappedError {
	bySubcode, ok := errorMap[code]
	if !ok {
		return GenericError
	}

	if subcode != nil {
		if mapped, ok := bySubcode[*subcode]; ok {
			return mapped
		}
	}

	if mapped, ok := bySubcode[anySubcode]; ok {
		return mapped
	}

	return GenericError
}

// ParseGraphError classifica o corpo de uma resposta de erro do Graph
func ParseGraphError(body []byte) GraphErrorReturn {
	var response ErrorResponse
	if err := json.Unmarshal(body, &response); err != nil || !response.isValid() {
		return GraphErrorReturn{
			StatusCode: GenericError.HTTPStatusCode,
			Reason:     GenericError,
		}
	}

	details := response.Error
	info := &GraphErrorInfo{
		Message:        *details.Message,
		Type:           *details.Type,
		Code:           *details.Code,
		ErrorSubcode:   details.ErrorSubcode,
		ErrorUserTitle: details.ErrorUserTitle,
		ErrorUserMsg:   details.ErrorUserMsg,
		FBTraceID:      details.FBTraceID,
	}

	mapped := FindMappedError(info.Code, info.ErrorSubcode)

	return GraphErrorReturn{
		StatusCode: mapped.HTTPStatusCode,
		Reason:     mapped,
		Data:       info,
	}
}

// HasGraphError indica se o corpo, mesmo com status 2xx, carrega um objeto de erro do Graph
func HasGraphError(body []byte) bool {
	var response ErrorResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return false
	}
	return response.isValid()
}

func (r ErrorResponse) isValid() bool {
	return r.Error != nil && r.Error.Message != nil && r.Error.Type != nil && r.Error.Code != nil
}

// GenericErrorReturn monta o retorno genérico com a mensagem do erro original
func GenericErrorReturn(err error) GraphErrorReturn {
	return GraphErrorReturn{
		StatusCode: http.StatusInternalServerError,
		Reason: MappedError{
			HTTPStatusCode: http.StatusInternalServerError,
			Title:          "Internal server error",
			Message:        err.Error(),
			Solution:       defaultSolution,
			IsTransient:    true,
		},
	}
}

// ErrorToGraphErrorReturn é o ponto único de conversão de erros em respostas HTTP
func ErrorToGraphErrorReturn(err error) GraphErrorReturn {
	var graphErr *GraphAPIError
	if errors.As(err, &graphErr) {
		return graphErr.Return
	}

	if err == nil {
		err = errors.New("unknown error")
	}

	return GenericErrorReturn(err)
}
