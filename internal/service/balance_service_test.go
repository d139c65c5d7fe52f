package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pokerleague/lnpayments/internal/apperrors"
	"github.com/pokerleague/lnpayments/internal/mocks/repository_mocks"
	"github.com/pokerleague/lnpayments/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceService_CreditReward(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo := repository_mocks.NewMockBalanceRepository(ctrl)
	svc := NewBalanceService(repo)

	tests := []struct {
		name       string
		userID     int64
		amountSats int64
		reason     string
		mockSetup  func()
		want       int64
		wantErr    error
	}{
		{
			name:       "tournament winnings credited",
			userID:     1,
			amountSats: 2500,
			reason:     "tournament:12",
			mockSetup: func() {
				repo.EXPECT().Credit(ctx, int64(1), int64(2500), "tournament:12").Return(int64(2500), nil).Times(1)
			},
			want: 2500,
		},
		{
			name:       "zero amount rejected",
			userID:     1,
			amountSats: 0,
			mockSetup:  func() {},
			wantErr:    apperrors.ErrInvalidAmount,
		},
		{
			name:       "negative amount rejected",
			userID:     1,
			amountSats: -5,
			mockSetup:  func() {},
			wantErr:    apperrors.ErrInvalidAmount,
		},
		{
			name:       "empty reason defaults",
			userID:     2,
			amountSats: 100,
			mockSetup: func() {
				repo.EXPECT().Credit(ctx, int64(2), int64(100), "reward").Return(int64(100), nil).Times(1)
			},
			want: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			got, err := svc.CreditReward(ctx, tt.userID, tt.amountSats, tt.reason)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBalanceService_GetUserBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo := repository_mocks.NewMockBalanceRepository(ctrl)
	svc := NewBalanceService(repo)

	repo.EXPECT().GetBalance(ctx, int64(1)).Return(models.Balance{UserID: 1, BalanceSats: 777}, nil).Times(1)

	balance, err := svc.GetUserBalance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(777), balance.BalanceSats)
}
