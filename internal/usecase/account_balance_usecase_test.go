package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iho/buckpal/internal/domain"
	"github.com/iho/buckpal/internal/usecase"
	"github.com/iho/buckpal/internal/usecase/mocks"
)

func TestGetAccountBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	load := mocks.NewMockLoadAccountPort(ctrl)
	clock := mocks.NewMockClock(ctrl)

	clock.EXPECT().Now().Return(fixedNow)
	load.EXPECT().
		LoadAccount(gomock.Any(), sourceID, fixedNow).
		Return(loadedAccount(sourceID, 1555), nil)

	uc := usecase.NewAccountBalanceUseCase(load, clock)

	balance, err := uc.GetAccountBalance(context.Background(), sourceID)
	require.NoError(t, err)
	assert.Equal(t, "1555", balance.String())
}

func TestGetAccountBalance_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	load := mocks.NewMockLoadAccountPort(ctrl)
	clock := mocks.NewMockClock(ctrl)

	clock.EXPECT().Now().Return(fixedNow)
	load.EXPECT().
		LoadAccount(gomock.Any(), sourceID, gomock.Any()).
		Return(nil, domain.ErrAccountNotFound)

	uc := usecase.NewAccountBalanceUseCase(load, clock)

	_, err := uc.GetAccountBalance(context.Background(), sourceID)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}
