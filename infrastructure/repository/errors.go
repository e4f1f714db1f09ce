package repository

import (
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

// wrapDBError anexa o código do Postgres quando o driver devolve um *pq.Error
func wrapDBError(err error, message string) error {
	if pqErr, ok := err.(*pq.Error); ok {
		return errors.Wrapf(pqErr, "%s (code: %s)", message, pqErr.Code)
	}
	return errors.Wrap(err, message)
}

// jsonParam converte um documento JSON em parâmetro de coluna jsonb.
// []byte seria enviado como bytea pelo lib/pq.
func jsonParam(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}
