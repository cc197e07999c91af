package generated

import (
	"context"
)

const createAccount = `-- name: CreateAccount :one
INSERT INTO account DEFAULT VALUES
RETURNING id
`

func (q *Queries) CreateAccount(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, createAccount)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const findAccountByID = `-- name: FindAccountByID :one
SELECT id FROM account WHERE id = $1
`

func (q *Queries) FindAccountByID(ctx context.Context, id int64) (int64, error) {
	row := q.db.QueryRow(ctx, findAccountByID, id)
	err := row.Scan(&id)
	return id, err
}
