package repository

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestWrapDBError(t *testing.T) {
	t.Run("erro do postgres inclui o código", func(t *testing.T) {
		pqErr := &pq.Error{Code: "23514", Message: "violates check constraint"}

		err := wrapDBError(pqErr, "failed to insert adset edit log")

		assert.ErrorContains(t, err, "failed to insert adset edit log (code: 23514)")
		var target *pq.Error
		assert.True(t, errors.As(err, &target))
	})

	t.Run("erro comum mantém a causa", func(t *testing.T) {
		cause := errors.New("connection refused")

		err := wrapDBError(cause, "failed to get user")

		assert.EqualError(t, err, "failed to get user: connection refused")
		assert.ErrorIs(t, err, cause)
	})
}

func TestJSONParam(t *testing.T) {
	assert.Nil(t, jsonParam(nil))
	assert.Nil(t, jsonParam([]byte{}))
	assert.Equal(t, `{"age_min":18}`, jsonParam([]byte(`{"age_min":18}`)))
}
