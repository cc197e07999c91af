package postgres

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/iho/buckpal/internal/domain"
	"github.com/iho/buckpal/internal/infrastructure/postgres/generated"
)

// mapToAccount rebuilds an account from its window rows and the sums of the
// activities that happened before the window.
func mapToAccount(
	accountID int64,
	activities []generated.Activity,
	withdrawalBalance pgtype.Numeric,
	depositBalance pgtype.Numeric,
) (*domain.Account, error) {
	deposits, err := numericToMoney(depositBalance)
	if err != nil {
		return nil, fmt.Errorf("deposit balance: %w", err)
	}

	withdrawals, err := numericToMoney(withdrawalBalance)
	if err != nil {
		return nil, fmt.Errorf("withdrawal balance: %w", err)
	}

	window, err := mapToActivityWindow(activities)
	if err != nil {
		return nil, err
	}

	return domain.NewAccountWithID(
		domain.AccountID(accountID),
		domain.Subtract(deposits, withdrawals),
		window,
	), nil
}

func mapToActivityWindow(rows []generated.Activity) (*domain.ActivityWindow, error) {
	activities := make([]domain.Activity, 0, len(rows))
	for _, row := range rows {
		money, err := numericToMoney(row.Amount)
		if err != nil {
			return nil, fmt.Errorf("activity %d amount: %w", row.ID, err)
		}

		activities = append(activities, domain.Activity{
			ID:              domain.ActivityID(row.ID),
			OwnerAccountID:  domain.AccountID(row.OwnerAccountID),
			SourceAccountID: domain.AccountID(row.SourceAccountID),
			TargetAccountID: domain.AccountID(row.TargetAccountID),
			Timestamp:       row.Timestamp.Time.UTC(),
			Money:           money,
		})
	}

	return domain.NewActivityWindow(activities...), nil
}

func mapToInsertActivityParams(activity domain.Activity) generated.InsertActivityParams {
	return generated.InsertActivityParams{
		Timestamp:       timeToPgTimestamptz(activity.Timestamp),
		OwnerAccountID:  int64(activity.OwnerAccountID),
		SourceAccountID: int64(activity.SourceAccountID),
		TargetAccountID: int64(activity.TargetAccountID),
		Amount:          moneyToNumeric(activity.Money),
	}
}

// Type conversion helpers.
func moneyToNumeric(m domain.Money) pgtype.Numeric {
	return decimalToNumeric(m.Decimal())
}

func numericToMoney(n pgtype.Numeric) (domain.Money, error) {
	return domain.MoneyFromDecimal(numericToDecimal(n))
}

func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Zero
	}

	return decimal.NewFromBigInt(n.Int, n.Exp)
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
