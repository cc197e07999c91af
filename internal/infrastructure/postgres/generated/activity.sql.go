package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const findActivitiesByOwnerSince = `-- name: FindActivitiesByOwnerSince :many
SELECT id, timestamp, owner_account_id, source_account_id, target_account_id, amount FROM activity
WHERE owner_account_id = $1 AND timestamp >= $2
ORDER BY timestamp, id
`

type FindActivitiesByOwnerSinceParams struct {
	OwnerAccountID int64              `json:"owner_account_id"`
	Timestamp      pgtype.Timestamptz `json:"timestamp"`
}

func (q *Queries) FindActivitiesByOwnerSince(ctx context.Context, arg FindActivitiesByOwnerSinceParams) ([]Activity, error) {
	rows, err := q.db.Query(ctx, findActivitiesByOwnerSince, arg.OwnerAccountID, arg.Timestamp)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Activity{}
	for rows.Next() {
		var i Activity
		if err := rows.Scan(
			&i.ID,
			&i.Timestamp,
			&i.OwnerAccountID,
			&i.SourceAccountID,
			&i.TargetAccountID,
			&i.Amount,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getDepositBalanceUntil = `-- name: GetDepositBalanceUntil :one
SELECT COALESCE(SUM(amount), 0)::NUMERIC AS balance FROM activity
WHERE target_account_id = $1 AND owner_account_id = $1 AND timestamp < $2
`

type GetDepositBalanceUntilParams struct {
	TargetAccountID int64              `json:"target_account_id"`
	Timestamp       pgtype.Timestamptz `json:"timestamp"`
}

func (q *Queries) GetDepositBalanceUntil(ctx context.Context, arg GetDepositBalanceUntilParams) (pgtype.Numeric, error) {
	row := q.db.QueryRow(ctx, getDepositBalanceUntil, arg.TargetAccountID, arg.Timestamp)
	var balance pgtype.Numeric
	err := row.Scan(&balance)
	return balance, err
}

const getWithdrawalBalanceUntil = `-- name: GetWithdrawalBalanceUntil :one
SELECT COALESCE(SUM(amount), 0)::NUMERIC AS balance FROM activity
WHERE source_account_id = $1 AND owner_account_id = $1 AND timestamp < $2
`

type GetWithdrawalBalanceUntilParams struct {
	SourceAccountID int64              `json:"source_account_id"`
	Timestamp       pgtype.Timestamptz `json:"timestamp"`
}

func (q *Queries) GetWithdrawalBalanceUntil(ctx context.Context, arg GetWithdrawalBalanceUntilParams) (pgtype.Numeric, error) {
	row := q.db.QueryRow(ctx, getWithdrawalBalanceUntil, arg.SourceAccountID, arg.Timestamp)
	var balance pgtype.Numeric
	err := row.Scan(&balance)
	return balance, err
}

const insertActivity = `-- name: InsertActivity :one
INSERT INTO activity (timestamp, owner_account_id, source_account_id, target_account_id, amount)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`

type InsertActivityParams struct {
	Timestamp       pgtype.Timestamptz `json:"timestamp"`
	OwnerAccountID  int64              `json:"owner_account_id"`
	SourceAccountID int64              `json:"source_account_id"`
	TargetAccountID int64              `json:"target_account_id"`
	Amount          pgtype.Numeric     `json:"amount"`
}

func (q *Queries) InsertActivity(ctx context.Context, arg InsertActivityParams) (int64, error) {
	row := q.db.QueryRow(ctx, insertActivity,
		arg.Timestamp,
		arg.OwnerAccountID,
		arg.SourceAccountID,
		arg.TargetAccountID,
		arg.Amount,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}
