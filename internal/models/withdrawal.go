package models

import "time"

const (
	WithdrawalStatusPending = "PENDING"
	WithdrawalStatusClaimed = "CLAIMED"
	WithdrawalStatusPaid    = "PAID"
	WithdrawalStatusFailed  = "FAILED"
	WithdrawalStatusExpired = "EXPIRED"
)

type Withdrawal struct {
	ID             int64      `json:"id" db:"id"`
	UserID         int64      `json:"-" db:"user_id"`
	K1             string     `json:"-" db:"k1"`
	AmountSats     int64      `json:"amountSats" db:"amount_sats"`
	PaymentRequest string     `json:"-" db:"payment_request"`
	Status         string     `json:"status" db:"status"`
	Refunded       bool       `json:"-" db:"refunded"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
	ExpiresAt      time.Time  `json:"expiresAt" db:"expires_at"`
	PaidAt         *time.Time `json:"paidAt,omitempty" db:"paid_at"`
}

// Terminal reports whether no further transition is permitted.
func (w Withdrawal) Terminal() bool {
	switch w.Status {
	case WithdrawalStatusPaid, WithdrawalStatusFailed, WithdrawalStatusExpired:
		return true
	}
	return false
}

func (w Withdrawal) Expired(now time.Time) bool {
	return now.After(w.ExpiresAt)
}

type WithdrawalResponse struct {
	Withdrawal   Withdrawal `json:"withdrawal"`
	LNURL        string     `json:"lnurl"`
	QRData       string     `json:"qrData"`
	LightningURI string     `json:"lightningUri"`
}
