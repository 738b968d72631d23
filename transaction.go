package banksim

import (
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

type TxnKind string

const (
	TxnDeposit    TxnKind = "Deposit"
	TxnWithdrawal TxnKind = "Withdrawal"
)

// Transaction is an immutable record of one money movement. Records are
// created only through Registry.recordTxn so every one of them lands in the
// process-wide log as well as the owning account's.
type Transaction struct {
	ID        snowflake.ID
	AccountNo int64
	Kind      TxnKind
	Amount    decimal.Decimal
	Timestamp time.Time
}

// Describe renders the record as the three lines shown in transaction
// history listings.
func (t *Transaction) Describe() string {
	return fmt.Sprintf("Transaction Type: %s\nAmount: $%s\nTimestamp: %s",
		t.Kind, t.Amount, t.Timestamp.Format(time.RFC3339))
}
