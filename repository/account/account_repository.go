package account

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/estoquehub/sync-engine/model"
)

type SQL struct {
	conn *sqlx.DB
}

type AccountRepository interface {
	GetByID(ctx context.Context, id uint64) (*model.ExternalAccountEntity, error)
	GetByExternalUserID(ctx context.Context, externalUserID int64) (*model.ExternalAccountEntity, error)
	ListActive(ctx context.Context) ([]model.ExternalAccountEntity, error)
	Upsert(ctx context.Context, acct *model.ExternalAccountEntity) (uint64, error)
	UpdateTokens(ctx context.Context, id uint64, accessToken, refreshToken string, expiresAt time.Time) error
	SetActive(ctx context.Context, id uint64, active bool) error
}

func NewAccountRepository(conn *sqlx.DB) AccountRepository {
	return &SQL{conn: conn}
}

const accountColumns = "id, user_id, external_user_id, access_token, refresh_token, expires_at, active, created_at, updated_at"

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.ExternalAccountEntity, error) {
	var acct model.ExternalAccountEntity
	q := "SELECT " + accountColumns + " FROM external_account WHERE id = ?"
	if err := r.conn.GetContext(ctx, &acct, q, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &acct, nil
}

func (r *SQL) GetByExternalUserID(ctx context.Context, externalUserID int64) (*model.ExternalAccountEntity, error) {
	var acct model.ExternalAccountEntity
	q := "SELECT " + accountColumns + " FROM external_account WHERE external_user_id = ?"
	if err := r.conn.GetContext(ctx, &acct, q, externalUserID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &acct, nil
}

func (r *SQL) ListActive(ctx context.Context) ([]model.ExternalAccountEntity, error) {
	rows, err := r.conn.QueryxContext(ctx, "SELECT "+accountColumns+" FROM external_account WHERE active = 1")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]model.ExternalAccountEntity, 0)
	for rows.Next() {
		var acct model.ExternalAccountEntity
		if err := rows.StructScan(&acct); err != nil {
			return nil, err
		}
		accounts = append(accounts, acct)
	}
	return accounts, rows.Err()
}

// Upsert inserts a new account or, when the external user was connected
// before, replaces its tokens and reactivates it.
func (r *SQL) Upsert(ctx context.Context, acct *model.ExternalAccountEntity) (uint64, error) {
	q := `INSERT INTO external_account (user_id, external_user_id, access_token, refresh_token, expires_at, active)
VALUES (?, ?, ?, ?, ?, 1)
ON DUPLICATE KEY UPDATE user_id = VALUES(user_id), access_token = VALUES(access_token), refresh_token = VALUES(refresh_token), expires_at = VALUES(expires_at), active = 1`
	res, err := r.conn.ExecContext(ctx, q, acct.UserID, acct.ExternalUserID, acct.AccessToken, acct.RefreshToken, acct.ExpiresAt)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil || id == 0 {
		existing, gerr := r.GetByExternalUserID(ctx, acct.ExternalUserID)
		if gerr != nil {
			return 0, gerr
		}
		if existing != nil {
			return existing.ID, nil
		}
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) UpdateTokens(ctx context.Context, id uint64, accessToken, refreshToken string, expiresAt time.Time) error {
	_, err := r.conn.ExecContext(ctx, "UPDATE external_account SET access_token = ?, refresh_token = ?, expires_at = ? WHERE id = ?", accessToken, refreshToken, expiresAt, id)
	return err
}

func (r *SQL) SetActive(ctx context.Context, id uint64, active bool) error {
	_, err := r.conn.ExecContext(ctx, "UPDATE external_account SET active = ? WHERE id = ?", active, id)
	return err
}
