package metadomain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestFindMappedError(t *testing.T) {
	tests := []struct {
		name          string
		code          int
		subcode       *int
		wantStatus    int
		wantTitle     string
		wantTransient bool
	}{
		{name: "token expirado", code: 190, wantStatus: http.StatusUnauthorized, wantTitle: "Token de Acesso Expirou"},
		{name: "token expirado com subcódigo desconhecido", code: 190, subcode: intPtr(463), wantStatus: http.StatusUnauthorized, wantTitle: "Token de Acesso Expirou"},
		{name: "sessão inválida", code: 102, wantStatus: http.StatusUnauthorized, wantTitle: "Sessão da API"},
		{name: "permissão", code: 200, wantStatus: http.StatusForbidden, wantTitle: "Erro de Permissão"},
		{name: "ads_management", code: 294, wantStatus: http.StatusForbidden, wantTitle: "Permissão ads_management Necessária"},
		{name: "código desconhecido", code: 17, wantStatus: http.StatusInternalServerError, wantTitle: "Erro Desconhecido", wantTransient: true},
		{name: "código desconhecido com subcódigo", code: 100, subcode: intPtr(33), wantStatus: http.StatusInternalServerError, wantTitle: "Erro Desconhecido", wantTransient: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := FindMappedError(tt.code, tt.subcode)

			assert.Equal(t, tt.wantStatus, mapped.HTTPStatusCode)
			assert.Equal(t, tt.wantTitle, mapped.Title)
			assert.Equal(t, tt.wantTransient, mapped.IsTransient)
		})
	}
}

func TestFindMappedError_SubcodeEspecifico(t *testing.T) {
	specific := MappedError{HTTPStatusCode: http.StatusBadRequest, Title: "Específico"}
	errorMap[190][460] = specific
	defer delete(errorMap[190], 460)

	assert.Equal(t, specific, FindMappedError(190, intPtr(460)))
	assert.Equal(t, "Token de Acesso Expirou", FindMappedError(190, intPtr(461)).Title)
}

func TestParseGraphError(t *testing.T) {
	t.Run("erro do Graph válido", func(t *testing.T) {
		body := []byte(`{"error":{"message":"Error validating access token","type":"OAuthException","code":190,"error_subcode":463,"fbtrace_id":"AbC"}}`)

		result := ParseGraphError(body)

		assert.Equal(t, http.StatusUnauthorized, result.StatusCode)
		assert.False(t, result.Reason.IsTransient)
		require.NotNil(t, result.Data)
		assert.Equal(t, 190, result.Data.Code)
		assert.Equal(t, 463, *result.Data.ErrorSubcode)
		assert.Equal(t, "AbC", result.Data.FBTraceID)
	})

	t.Run("erro sem campos obrigatórios vira genérico", func(t *testing.T) {
		result := ParseGraphError([]byte(`{"error":{"message":"sem código"}}`))

		assert.Equal(t, http.StatusInternalServerError, result.StatusCode)
		assert.Equal(t, GenericError, result.Reason)
		assert.Nil(t, result.Data)
	})

	t.Run("corpo inválido vira genérico", func(t *testing.T) {
		result := ParseGraphError([]byte(`<html>bad gateway</html>`))

		assert.Equal(t, http.StatusInternalServerError, result.StatusCode)
		assert.True(t, result.Reason.IsTransient)
	})
}

func TestHasGraphError(t *testing.T) {
	assert.True(t, HasGraphError([]byte(`{"error":{"message":"x","type":"OAuthException","code":1}}`)))
	assert.False(t, HasGraphError([]byte(`{"data":[]}`)))
	assert.False(t, HasGraphError([]byte(`{"error":"texto"}`)))
}

func TestErrorToGraphErrorReturn(t *testing.T) {
	t.Run("desembrulha GraphAPIError", func(t *testing.T) {
		ret := GraphErrorReturn{StatusCode: http.StatusForbidden, Reason: FindMappedError(200, nil)}
		err := fmt.Errorf("listing: %w", NewGraphAPIError(ret, nil))

		assert.Equal(t, ret, ErrorToGraphErrorReturn(err))
	})

	t.Run("erro qualquer vira 500 com a mensagem original", func(t *testing.T) {
		result := ErrorToGraphErrorReturn(errors.New("connection refused"))

		assert.Equal(t, http.StatusInternalServerError, result.StatusCode)
		assert.Equal(t, "Internal server error", result.Reason.Title)
		assert.Equal(t, "connection refused", result.Reason.Message)
		assert.Equal(t, "Tente novamente. Se o problema persistir, entre em contato com o suporte.", result.Reason.Solution)
		assert.True(t, result.Reason.IsTransient)
	})
}
