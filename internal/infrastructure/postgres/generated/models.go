package generated

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Account struct {
	ID int64 `json:"id"`
}

type Activity struct {
	ID              int64              `json:"id"`
	Timestamp       pgtype.Timestamptz `json:"timestamp"`
	OwnerAccountID  int64              `json:"owner_account_id"`
	SourceAccountID int64              `json:"source_account_id"`
	TargetAccountID int64              `json:"target_account_id"`
	Amount          pgtype.Numeric     `json:"amount"`
}
