package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/vfg2006/meta-backoffice-api/infrastructure/database/postgres"
	"github.com/vfg2006/meta-backoffice-api/internal/domain"
)

const adSetEditLogsTable = "adset_edit_logs"

//go:generate mockgen -source=adset_edit_log.go -destination=mocks/adset_edit_log.go -package=mocks
type AdSetEditLogRepository interface {
	Create(ctx context.Context, log *domain.AdSetEditLog) (*domain.AdSetEditLog, error)
	ListByAdSetID(ctx context.Context, adSetID string) ([]*domain.AdSetEditLogWithAdmin, error)
}

type adSetEditLogRepository struct {
	conn postgres.Conn
}

func NewAdSetEditLogRepository(conn postgres.Conn) AdSetEditLogRepository {
	return &adSetEditLogRepository{
		conn: conn,
	}
}

func (r *adSetEditLogRepository) Create(ctx context.Context, log *domain.AdSetEditLog) (*domain.AdSetEditLog, error) {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}

	insertSQL, insertArgs, err := squirrel.
		Insert(adSetEditLogsTable).
		Columns(
			"id",
			"backoffice_user_id",
			"target_user_id",
			"adset_id",
			"account_id",
			"campaign_id",
			"adset_name",
			"previous_daily_budget",
			"new_daily_budget",
			"previous_targeting",
			"new_targeting",
			"note",
			"applied_to_meta",
			"error_message",
		).
		Values(
			log.ID,
			log.BackofficeUserID,
			log.TargetUserID,
			log.AdSetID,
			log.AccountID,
			log.CampaignID,
			log.AdSetName,
			log.PreviousDailyBudget,
			log.NewDailyBudget,
			jsonParam(log.PreviousTargeting),
			jsonParam(log.NewTargeting),
			log.Note,
			log.AppliedToMeta,
			log.ErrorMessage,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	if err := r.conn.QueryRowContext(ctx, insertSQL, insertArgs...).Scan(&log.CreatedAt); err != nil {
		return nil, wrapDBError(err, "failed to insert adset edit log")
	}

	return log, nil
}

// ListByAdSetID devolve o histórico do conjunto, do mais recente para o mais antigo
func (r *adSetEditLogRepository) ListByAdSetID(ctx context.Context, adSetID string) ([]*domain.AdSetEditLogWithAdmin, error) {
	listSQL, listArgs, err := squirrel.
		Select(
			"l.id",
			"l.backoffice_user_id",
			"l.target_user_id",
			"l.adset_id",
			"l.account_id",
			"l.campaign_id",
			"l.adset_name",
			"l.previous_daily_budget",
			"l.new_daily_budget",
			"l.previous_targeting",
			"l.new_targeting",
			"l.note",
			"l.applied_to_meta",
			"l.error_message",
			"l.created_at",
			"u.email",
		).
		From(adSetEditLogsTable + " l").
		LeftJoin(usersTable + " u ON u.id = l.backoffice_user_id").
		Where(squirrel.Eq{"l.adset_id": adSetID}).
		OrderBy("l.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, wrapDBError(err, "failed to list adset edit logs")
	}
	defer rows.Close()

	logs := make([]*domain.AdSetEditLogWithAdmin, 0)
	for rows.Next() {
		var (
			entry                           domain.AdSetEditLogWithAdmin
			previousTargeting, newTargeting []byte
		)
		if err := rows.Scan(
			&entry.ID,
			&entry.BackofficeUserID,
			&entry.TargetUserID,
			&entry.AdSetID,
			&entry.AccountID,
			&entry.CampaignID,
			&entry.AdSetName,
			&entry.PreviousDailyBudget,
			&entry.NewDailyBudget,
			&previousTargeting,
			&newTargeting,
			&entry.Note,
			&entry.AppliedToMeta,
			&entry.ErrorMessage,
			&entry.CreatedAt,
			&entry.AdminEmail,
		); err != nil {
			return nil, wrapDBError(err, "failed to scan adset edit log")
		}

		entry.PreviousTargeting = previousTargeting
		entry.NewTargeting = newTargeting

		logs = append(logs, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapDBError(err, "failed to iterate adset edit logs")
	}

	return logs, nil
}
