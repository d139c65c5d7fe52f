package models

import "time"

const (
	EntryStatusAwaitingPayment = "AWAITING_PAYMENT"
	EntryStatusPaid            = "PAID"
	EntryStatusExpired         = "EXPIRED"
)

type LastLongerPool struct {
	EventID   int64  `json:"eventId" db:"event_id"`
	Enabled   bool   `json:"enabled" db:"enabled"`
	SeedSats  int64  `json:"seedSats" db:"seed_sats"`
	EntrySats int64  `json:"entrySats" db:"entry_sats"`
	WinnerID  *int64 `json:"winnerId,omitempty" db:"winner_id"`

	// Derived from the count of PAID entries, never stored.
	PaidEntries int64 `json:"paidEntries" db:"-"`
	TotalPot    int64 `json:"totalPot" db:"-"`
}

func (p LastLongerPool) Resolved() bool {
	return p.WinnerID != nil
}

type PoolEntry struct {
	ID             int64      `json:"id" db:"id"`
	EventID        int64      `json:"eventId" db:"event_id"`
	UserID         int64      `json:"userId" db:"user_id"`
	AmountSats     int64      `json:"amountSats" db:"amount_sats"`
	PaymentHash    string     `json:"-" db:"payment_hash"`
	PaymentRequest string     `json:"-" db:"payment_request"`
	Status         string     `json:"status" db:"status"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
	ExpiresAt      time.Time  `json:"expiresAt" db:"expires_at"`
	PaidAt         *time.Time `json:"paidAt,omitempty" db:"paid_at"`
}

type PoolEntryResponse struct {
	Entry   PoolEntry `json:"entry"`
	Invoice string    `json:"invoice"`
}
