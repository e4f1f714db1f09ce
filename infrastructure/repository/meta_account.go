package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/meta-backoffice-api/infrastructure/database/postgres"
	"github.com/vfg2006/meta-backoffice-api/internal/domain"
)

const metaBusinessAccountsTable = "meta_business_accounts"

//go:generate mockgen -source=meta_account.go -destination=mocks/meta_account.go -package=mocks
type MetaAccountRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.MetaBusinessAccount, error)
}

type metaAccountRepository struct {
	conn postgres.Conn
}

func NewMetaAccountRepository(conn postgres.Conn) MetaAccountRepository {
	return &metaAccountRepository{
		conn: conn,
	}
}

// GetByUserID devolve a conexão ativa mais recente do usuário ou nil quando não existe
func (r *metaAccountRepository) GetByUserID(ctx context.Context, userID string) (*domain.MetaBusinessAccount, error) {
	accountSQL, accountArgs, err := squirrel.
		Select("id", "user_id", "facebook_user_id", "name", "picture_url", "access_token", "token_expires_at").
		From(metaBusinessAccountsTable).
		Where(squirrel.Eq{"user_id": userID}).
		Where("deleted_at IS NULL").
		OrderBy("updated_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var account domain.MetaBusinessAccount
	err = r.conn.QueryRowContext(ctx, accountSQL, accountArgs...).Scan(
		&account.ID,
		&account.UserID,
		&account.FacebookUserID,
		&account.Name,
		&account.PictureURL,
		&account.AccessToken,
		&account.TokenExpiresAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, wrapDBError(err, "failed to get meta business account")
	}

	return &account, nil
}
