package apiErrors

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/meta-backoffice-api/infrastructure/integrator/meta/domain"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrMissingRequiredData, "Missing note", "A note is required", "Describe the change")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, ErrorResponse{Error: "Missing note", Message: "A note is required", Solution: "Describe the change"}, decode(t, rec))
}

func TestAPIError_HTTPStatusUnknownCode(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, New("XYZ", "t", "m", "").HTTPStatus())
}

func TestWriteFromError(t *testing.T) {
	t.Run("erro tipado mantém o status", func(t *testing.T) {
		rec := httptest.NewRecorder()
		err := fmt.Errorf("listing: %w", New(ErrNotFound, "Not found", "Ad set not found", ""))

		WriteFromError(rec, err)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Ad set not found", decode(t, rec).Message)
	})

	t.Run("erro do Graph usa o status mapeado", func(t *testing.T) {
		rec := httptest.NewRecorder()
		ret := metadomain.ParseGraphError([]byte(`{"error":{"message":"Invalid OAuth","type":"OAuthException","code":190}}`))

		WriteFromError(rec, metadomain.NewGraphAPIError(ret, nil))

		body := decode(t, rec)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, ret.Reason.Title, body.Error)
		assert.Equal(t, ret.Reason.Solution, body.Solution)
	})

	t.Run("erro desconhecido vira 500 com a mensagem original", func(t *testing.T) {
		rec := httptest.NewRecorder()

		WriteFromError(rec, errors.New("boom"))

		body := decode(t, rec)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal server error", body.Error)
		assert.Equal(t, "boom", body.Message)
	})
}
