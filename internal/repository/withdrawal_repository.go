package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pokerleague/lnpayments/internal/apperrors"
	"github.com/pokerleague/lnpayments/internal/logger"
	"github.com/pokerleague/lnpayments/internal/models"
	"go.uber.org/zap"
)

type WithdrawalRepository interface {
	CreateWithReserve(ctx context.Context, withdrawal models.Withdrawal) (models.Withdrawal, error)
	GetByID(ctx context.Context, id int64) (models.Withdrawal, error)
	GetByK1(ctx context.Context, k1 string) (models.Withdrawal, error)
	Claim(ctx context.Context, k1, paymentRequest string, now time.Time) (models.Withdrawal, error)
	MarkPaid(ctx context.Context, id int64, paidAt time.Time) error
	FailAndRefund(ctx context.Context, id int64) error
	ExpireAndRefund(ctx context.Context, id int64, now time.Time) error
	GetDue(ctx context.Context, now time.Time) ([]models.Withdrawal, error)
}

type withdrawalRepo struct {
	db *sql.DB
}

func NewWithdrawalRepository(db *sql.DB) WithdrawalRepository {
	return &withdrawalRepo{db: db}
}

const withdrawalColumns = `id, user_id, k1, amount_sats, payment_request, status, refunded, created_at, expires_at, paid_at`

func scanWithdrawal(row interface {
	Scan(dest ...interface{}) error
}) (models.Withdrawal, error) {
	var w models.Withdrawal
	err := row.Scan(&w.ID, &w.UserID, &w.K1, &w.AmountSats, &w.PaymentRequest,
		&w.Status, &w.Refunded, &w.CreatedAt, &w.ExpiresAt, &w.PaidAt)
	return w, err
}

// CreateWithReserve inserts the PENDING row and debits the ledger in one
// transaction: the reservation happens at creation, not at payment.
func (r *withdrawalRepo) CreateWithReserve(ctx context.Context, withdrawal models.Withdrawal) (models.Withdrawal, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Withdrawal{}, err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.Log.Error("rollback error")
			}
		}
	}()

	_, err = reserveTx(ctx, tx, withdrawal.UserID, withdrawal.AmountSats,
		fmt.Sprintf("withdrawal reserve k1=%s", withdrawal.K1))
	if err != nil {
		return models.Withdrawal{}, err
	}

	var created models.Withdrawal
	created, err = scanWithdrawal(tx.QueryRowContext(ctx, `
		INSERT INTO withdrawals (user_id, k1, amount_sats, status, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+withdrawalColumns+`
	`, withdrawal.UserID, withdrawal.K1, withdrawal.AmountSats,
		models.WithdrawalStatusPending, withdrawal.CreatedAt, withdrawal.ExpiresAt))
	if err != nil {
		return models.Withdrawal{}, err
	}

	err = tx.Commit()
	if err != nil {
		return models.Withdrawal{}, err
	}
	return created, nil
}

func (r *withdrawalRepo) GetByID(ctx context.Context, id int64) (models.Withdrawal, error) {
	w, err := scanWithdrawal(r.db.QueryRowContext(ctx, `
		SELECT `+withdrawalColumns+` FROM withdrawals WHERE id = $1
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Withdrawal{}, apperrors.ErrWithdrawalNotFound
	}
	return w, err
}

func (r *withdrawalRepo) GetByK1(ctx context.Context, k1 string) (models.Withdrawal, error) {
	w, err := scanWithdrawal(r.db.QueryRowContext(ctx, `
		SELECT `+withdrawalColumns+` FROM withdrawals WHERE k1 = $1
	`, k1))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Withdrawal{}, apperrors.ErrWithdrawalNotFound
	}
	return w, err
}

// Claim performs the exactly-once PENDING->CLAIMED transition. Two wallets
// racing on the same k1 hit the same conditional update and only one row
// comes back.
func (r *withdrawalRepo) Claim(ctx context.Context, k1, paymentRequest string, now time.Time) (models.Withdrawal, error) {
	w, err := scanWithdrawal(r.db.QueryRowContext(ctx, `
		UPDATE withdrawals
		SET status = $1, payment_request = $2
		WHERE k1 = $3 AND status = $4 AND expires_at > $5
		RETURNING `+withdrawalColumns+`
	`, models.WithdrawalStatusClaimed, paymentRequest, k1, models.WithdrawalStatusPending, now))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Withdrawal{}, apperrors.ErrInvalidOrExpiredChallenge
	}
	if err != nil {
		logger.Log.Error("failed to claim withdrawal", zap.Error(err))
		return models.Withdrawal{}, err
	}
	return w, nil
}

func (r *withdrawalRepo) MarkPaid(ctx context.Context, id int64, paidAt time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE withdrawals
		SET status = $1, paid_at = $2
		WHERE id = $3 AND status = $4
	`, models.WithdrawalStatusPaid, paidAt, id, models.WithdrawalStatusClaimed)
	if err != nil {
		return err
	}
	return requireTransition(res, id, models.WithdrawalStatusPaid)
}

// FailAndRefund moves a CLAIMED withdrawal to FAILED and returns the reserved
// amount to the ledger. The refunded flag is flipped in the same conditional
// update, so a second call finds zero rows and the balance never moves twice.
func (r *withdrawalRepo) FailAndRefund(ctx context.Context, id int64) error {
	return r.refundTransition(ctx, id, models.WithdrawalStatusFailed, `
		UPDATE withdrawals
		SET status = $1, refunded = true
		WHERE id = $2 AND status = $3 AND refunded = false
		RETURNING user_id, amount_sats, k1
	`, id, models.WithdrawalStatusClaimed)
}

func (r *withdrawalRepo) ExpireAndRefund(ctx context.Context, id int64, now time.Time) error {
	return r.refundTransition(ctx, id, models.WithdrawalStatusExpired, `
		UPDATE withdrawals
		SET status = $1, refunded = true
		WHERE id = $2 AND status IN ($3, $4) AND refunded = false AND expires_at <= $5
		RETURNING user_id, amount_sats, k1
	`, id, models.WithdrawalStatusPending, models.WithdrawalStatusClaimed, now)
}

func (r *withdrawalRepo) refundTransition(ctx context.Context, id int64, toStatus, query string, args ...interface{}) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.Log.Error("rollback error")
			}
		}
	}()

	var (
		userID     int64
		amountSats int64
		k1         string
	)
	err = tx.QueryRowContext(ctx, query, append([]interface{}{toStatus}, args...)...).Scan(&userID, &amountSats, &k1)
	if errors.Is(err, sql.ErrNoRows) {
		err = fmt.Errorf("%w: withdrawal %d to %s", apperrors.ErrDoubleTransition, id, toStatus)
		return err
	}
	if err != nil {
		return err
	}

	_, err = creditTx(ctx, tx, userID, amountSats,
		fmt.Sprintf("withdrawal refund (%s) k1=%s", toStatus, k1))
	if err != nil {
		return err
	}

	err = tx.Commit()
	return err
}

// GetDue lists non-terminal withdrawals past their deadline for the sweeper.
func (r *withdrawalRepo) GetDue(ctx context.Context, now time.Time) ([]models.Withdrawal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+withdrawalColumns+` FROM withdrawals
		WHERE expires_at <= $1 AND status IN ($2, $3)
		ORDER BY expires_at
	`, now, models.WithdrawalStatusPending, models.WithdrawalStatusClaimed)
	if err != nil {
		logger.Log.Error("failed to query due withdrawals", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var withdrawals []models.Withdrawal
	for rows.Next() {
		w, err := scanWithdrawal(rows)
		if err != nil {
			logger.Log.Error("failed to scan withdrawal", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, w)
	}
	return withdrawals, rows.Err()
}

func requireTransition(res sql.Result, id int64, toStatus string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: withdrawal %d to %s", apperrors.ErrDoubleTransition, id, toStatus)
	}
	return nil
}
