package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/buckpal/internal/domain"
	"github.com/iho/buckpal/internal/domain/domaintest"
)

const (
	findAccountQuery    = "-- name: FindAccountByID"
	findActivitiesQuery = "-- name: FindActivitiesByOwnerSince"
	withdrawalSumQuery  = "-- name: GetWithdrawalBalanceUntil"
	depositSumQuery     = "-- name: GetDepositBalanceUntil"
	insertActivityQuery = "-- name: InsertActivity"
)

var activityColumns = []string{"id", "timestamp", "owner_account_id", "source_account_id", "target_account_id", "amount"}

func numeric(t *testing.T, s string) pgtype.Numeric {
	t.Helper()

	var n pgtype.Numeric
	require.NoError(t, n.Scan(s))

	return n
}

func timestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func newTestAdapter(t *testing.T) (*AccountPersistenceAdapter, pgxmock.PgxPoolIface) {
	t.Helper()

	pool := newMockPool(t)

	return newAccountPersistenceAdapter(pool, newFastRetrier(2), zerolog.Nop()), pool
}

func TestLoadAccount(t *testing.T) {
	adapter, pool := newTestAdapter(t)

	baselineDate := time.Date(2018, time.August, 10, 0, 0, 0, 0, time.UTC)
	since := timestamptz(baselineDate)

	pool.ExpectQuery(findAccountQuery).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
	pool.ExpectQuery(findActivitiesQuery).
		WithArgs(int64(1), since).
		WillReturnRows(pgxmock.NewRows(activityColumns).
			AddRow(int64(5), timestamptz(baselineDate.Add(time.Hour)), int64(1), int64(1), int64(2), numeric(t, "500")).
			AddRow(int64(7), timestamptz(baselineDate.Add(2*time.Hour)), int64(1), int64(2), int64(1), numeric(t, "1000")))
	pool.ExpectQuery(withdrawalSumQuery).
		WithArgs(int64(1), since).
		WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(numeric(t, "500")))
	pool.ExpectQuery(depositSumQuery).
		WithArgs(int64(1), since).
		WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(numeric(t, "1000")))

	account, err := adapter.LoadAccount(context.Background(), 1, baselineDate)
	require.NoError(t, err)

	id, ok := account.ID()
	require.True(t, ok)
	assert.Equal(t, domain.AccountID(1), id)

	assert.Equal(t, "500", account.BaselineBalance().String())
	assert.Equal(t, 2, account.ActivityWindow().Len())
	assert.Empty(t, account.ActivityWindow().NewActivities())

	balance, err := account.CalculateBalance()
	require.NoError(t, err)
	assert.Equal(t, "1000", balance.String())

	activities := account.ActivityWindow().Activities()
	assert.Equal(t, domain.ActivityID(5), activities[0].ID)
	assert.Equal(t, domain.AccountID(2), activities[0].TargetAccountID)
	assert.Equal(t, "1000", activities[1].Money.String())

	assertExpectations(t, pool)
}

func TestLoadAccountWithoutActivities(t *testing.T) {
	adapter, pool := newTestAdapter(t)

	pool.ExpectQuery(findAccountQuery).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(3)))
	pool.ExpectQuery(findActivitiesQuery).
		WillReturnRows(pgxmock.NewRows(activityColumns))
	pool.ExpectQuery(withdrawalSumQuery).
		WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(numeric(t, "0")))
	pool.ExpectQuery(depositSumQuery).
		WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(numeric(t, "250")))

	account, err := adapter.LoadAccount(context.Background(), 3, time.Now())
	require.NoError(t, err)

	assert.Equal(t, 0, account.ActivityWindow().Len())

	balance, err := account.CalculateBalance()
	require.NoError(t, err)
	assert.Equal(t, "250", balance.String())

	assertExpectations(t, pool)
}

func TestLoadAccountNotFound(t *testing.T) {
	adapter, pool := newTestAdapter(t)

	pool.ExpectQuery(findAccountQuery).
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)

	_, err := adapter.LoadAccount(context.Background(), 99, time.Now())
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	assertExpectations(t, pool)
}

func TestLoadAccountQueryError(t *testing.T) {
	adapter, pool := newTestAdapter(t)
	dbErr := errors.New("connection refused")

	pool.ExpectQuery(findAccountQuery).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
	pool.ExpectQuery(findActivitiesQuery).
		WillReturnError(dbErr)

	_, err := adapter.LoadAccount(context.Background(), 1, time.Now())
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, domain.ErrAccountNotFound)

	assertExpectations(t, pool)
}

func accountWithNewActivities(t *testing.T) *domain.Account {
	t.Helper()

	account := domaintest.DefaultAccount().
		WithID(1).
		WithBaselineBalance(domain.Of(1000)).
		WithActivityWindow(domain.NewActivityWindow(
			domaintest.DefaultActivity().WithID(3).WithOwnerAccount(1).WithSourceAccount(1).WithTargetAccount(2).Build(),
		)).
		Build()

	ok, err := account.Withdraw(domain.Of(100), 2, time.Now().UTC())
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = account.Deposit(domain.Of(40), 2, time.Now().UTC())
	require.NoError(t, err)
	require.True(t, ok)

	return account
}

func TestUpdateActivitiesInsertsOnlyNewActivities(t *testing.T) {
	adapter, pool := newTestAdapter(t)
	account := accountWithNewActivities(t)

	pool.ExpectBegin()
	pool.ExpectQuery(insertActivityQuery).
		WithArgs(pgxmock.AnyArg(), int64(1), int64(1), int64(2), numeric(t, "100")).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(10)))
	pool.ExpectQuery(insertActivityQuery).
		WithArgs(pgxmock.AnyArg(), int64(1), int64(2), int64(1), numeric(t, "40")).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))
	pool.ExpectCommit()

	require.NoError(t, adapter.UpdateActivities(context.Background(), account))

	assert.Empty(t, account.ActivityWindow().NewActivities())

	activities := account.ActivityWindow().Activities()
	require.Len(t, activities, 3)
	assert.Equal(t, domain.ActivityID(3), activities[0].ID)
	assert.Equal(t, domain.ActivityID(10), activities[1].ID)
	assert.Equal(t, domain.ActivityID(11), activities[2].ID)

	assertExpectations(t, pool)
}

func TestUpdateActivitiesNothingToPersist(t *testing.T) {
	adapter, pool := newTestAdapter(t)

	account := domaintest.DefaultAccount().
		WithActivityWindow(domain.NewActivityWindow(domaintest.DefaultActivity().WithID(1).Build())).
		Build()

	require.NoError(t, adapter.UpdateActivities(context.Background(), account))

	assertExpectations(t, pool)
}

func TestUpdateActivitiesRollsBackOnInsertError(t *testing.T) {
	adapter, pool := newTestAdapter(t)
	account := accountWithNewActivities(t)
	dbErr := errors.New("insert failed")

	pool.ExpectBegin()
	pool.ExpectQuery(insertActivityQuery).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(10)))
	pool.ExpectQuery(insertActivityQuery).
		WillReturnError(dbErr)
	pool.ExpectRollback()

	err := adapter.UpdateActivities(context.Background(), account)
	assert.ErrorIs(t, err, dbErr)

	assert.Len(t, account.ActivityWindow().NewActivities(), 2)

	assertExpectations(t, pool)
}

func TestUpdateActivitiesRetriesSerializationFailure(t *testing.T) {
	adapter, pool := newTestAdapter(t)
	account := accountWithNewActivities(t)

	pool.ExpectBegin()
	pool.ExpectQuery(insertActivityQuery).
		WillReturnError(&pgconn.PgError{Code: pgErrSerializationFailure})
	pool.ExpectRollback()

	pool.ExpectBegin()
	pool.ExpectQuery(insertActivityQuery).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(20)))
	pool.ExpectQuery(insertActivityQuery).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(21)))
	pool.ExpectCommit()

	require.NoError(t, adapter.UpdateActivities(context.Background(), account))

	activities := account.ActivityWindow().Activities()
	assert.Equal(t, domain.ActivityID(20), activities[1].ID)
	assert.Equal(t, domain.ActivityID(21), activities[2].ID)

	assertExpectations(t, pool)
}

func TestUpdateActivitiesBeginError(t *testing.T) {
	adapter, pool := newTestAdapter(t)
	account := accountWithNewActivities(t)
	beginErr := errors.New("too many connections")

	pool.ExpectBegin().WillReturnError(beginErr)

	err := adapter.UpdateActivities(context.Background(), account)
	assert.ErrorIs(t, err, beginErr)

	assertExpectations(t, pool)
}
