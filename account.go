package banksim

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

const (
	TypeSavings = "Savings"
	TypeCurrent = "Current"
	TypeLoan    = "Loan"
)

// Account is the capability set shared by the three account variants.
// Info, and for current accounts Withdraw, dispatch through this interface.
type Account interface {
	Number() int64
	Holder() string
	Type() string
	Balance() decimal.Decimal
	Transactions() []*Transaction
	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) error
	Info(w io.Writer)
}

var (
	_ Account = (*SavingsAccount)(nil)
	_ Account = (*CurrentAccount)(nil)
	_ Account = (*LoanAccount)(nil)
)

type baseAccount struct {
	reg     *Registry
	number  int64
	name    string
	email   string
	address string
	typ     string
	balance decimal.Decimal
	txns    []*Transaction
}

func (a *baseAccount) Number() int64            { return a.number }
func (a *baseAccount) Holder() string           { return a.name }
func (a *baseAccount) Type() string             { return a.typ }
func (a *baseAccount) Balance() decimal.Decimal { return a.balance }

func (a *baseAccount) Transactions() []*Transaction {
	out := make([]*Transaction, len(a.txns))
	copy(out, a.txns)
	return out
}

func (a *baseAccount) Deposit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	a.txns = append(a.txns, a.reg.recordTxn(a.number, TxnDeposit, amount))
	return nil
}

// debit applies a withdrawal bounded by limit, the most the account may pay
// out. Balance and the transaction log change together or not at all.
func (a *baseAccount) debit(amount, limit decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(limit) {
		return ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	a.txns = append(a.txns, a.reg.recordTxn(a.number, TxnWithdrawal, amount))
	return nil
}

func (a *baseAccount) Withdraw(amount decimal.Decimal) error {
	return a.debit(amount, a.balance)
}

func (a *baseAccount) infoCommon(w io.Writer) {
	fmt.Fprintf(w, "Account Type: %s\n", a.typ)
	fmt.Fprintf(w, "Name: %s\n", a.name)
	fmt.Fprintf(w, "Email: %s\n", a.email)
	fmt.Fprintf(w, "Address: %s\n", a.address)
	fmt.Fprintf(w, "Account Number: %d\n", a.number)
	fmt.Fprintf(w, "Balance: $%s\n", a.balance)
}

type SavingsAccount struct {
	baseAccount
	rate decimal.Decimal
}

func (a *SavingsAccount) InterestRate() decimal.Decimal { return a.rate }

// ApplyInterest deposits balance * rate / 100, rounded to cents, through the
// shared deposit path so it is logged like any other deposit.
func (a *SavingsAccount) ApplyInterest() error {
	interest := a.balance.Mul(a.rate).Div(decimal.NewFromInt(100)).Round(2)
	return a.Deposit(interest)
}

func (a *SavingsAccount) Info(w io.Writer) {
	a.infoCommon(w)
	fmt.Fprintf(w, "Interest Rate: %s%%\n", a.rate)
}

type CurrentAccount struct {
	baseAccount
	overdraft decimal.Decimal
}

func (a *CurrentAccount) OverdraftLimit() decimal.Decimal { return a.overdraft }

// Withdraw allows the balance to go negative up to the overdraft limit.
func (a *CurrentAccount) Withdraw(amount decimal.Decimal) error {
	return a.debit(amount, a.balance.Add(a.overdraft))
}

func (a *CurrentAccount) Info(w io.Writer) {
	a.infoCommon(w)
	fmt.Fprintf(w, "Overdraft Limit: $%s\n", a.overdraft)
}

type LoanAccount struct {
	baseAccount
}

// ApplyForLoan disburses the requested amount when the shared loan feature
// is enabled. The flag travels as an argument; the account holds no shared
// state of its own.
func (a *LoanAccount) ApplyForLoan(amount decimal.Decimal, enabled bool) error {
	if !enabled {
		return ErrLoanDisabled
	}
	return a.Deposit(amount)
}

// LoanAmount sums every deposit ever recorded on the account.
func (a *LoanAccount) LoanAmount() decimal.Decimal {
	total := decimal.Zero
	for _, t := range a.txns {
		if t.Kind == TxnDeposit {
			total = total.Add(t.Amount)
		}
	}
	return total
}

func (a *LoanAccount) Info(w io.Writer) {
	a.infoCommon(w)
}
