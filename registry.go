package banksim

import (
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Registry owns all process-wide state: the ordered account list, the
// next-account-number counter, the append-only transaction log, and the
// loan-feature flag shared by every loan account. One Registry is built at
// startup and passed to everything that needs it.
type Registry struct {
	accounts []Account
	nextNo   int64
	txns     []*Transaction
	loanOn   bool

	interestRate decimal.Decimal
	overdraft    decimal.Decimal

	node *snowflake.Node
	now  func() time.Time
}

func NewRegistry(cfg *Config) (*Registry, error) {
	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, err
	}
	return &Registry{
		nextNo:       1,
		loanOn:       cfg.Loan.FeatureEnabled,
		interestRate: decimal.NewFromFloat(cfg.Savings.InterestRate),
		overdraft:    decimal.NewFromFloat(cfg.Current.OverdraftLimit),
		node:         node,
		now:          time.Now,
	}, nil
}

// recordTxn is the single constructor for Transaction records. The new
// record is appended to the global log and returned for the account's own.
func (r *Registry) recordTxn(acctNo int64, kind TxnKind, amount decimal.Decimal) *Transaction {
	t := &Transaction{
		ID:        r.node.Generate(),
		AccountNo: acctNo,
		Kind:      kind,
		Amount:    amount,
		Timestamp: r.now(),
	}
	r.txns = append(r.txns, t)
	return t
}

// CreateAccount builds the variant matching typ (case-insensitive) and
// assigns the next sequential account number. Numbers are never reused,
// even after deletions.
func (r *Registry) CreateAccount(typ, name, email, address string) (Account, error) {
	label, ok := normalizeType(typ)
	if !ok {
		return nil, ErrUnknownAccountType
	}
	base := baseAccount{
		reg:     r,
		number:  r.nextNo,
		name:    name,
		email:   email,
		address: address,
		typ:     label,
	}
	r.nextNo++

	var acct Account
	switch label {
	case TypeSavings:
		acct = &SavingsAccount{baseAccount: base, rate: r.interestRate}
	case TypeCurrent:
		acct = &CurrentAccount{baseAccount: base, overdraft: r.overdraft}
	case TypeLoan:
		acct = &LoanAccount{baseAccount: base}
	}
	r.accounts = append(r.accounts, acct)
	return acct, nil
}

// DeleteAccount removes the account from the registry. Its transactions are
// not cascaded; they stay referenced by the detached account and the global
// log.
func (r *Registry) DeleteAccount(number int64) error {
	for i, a := range r.accounts {
		if a.Number() == number {
			r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
			return nil
		}
	}
	return ErrNotFound{Number: number}
}

// FindAccount is a linear scan in registry order.
func (r *Registry) FindAccount(number int64) (Account, error) {
	for _, a := range r.accounts {
		if a.Number() == number {
			return a, nil
		}
	}
	return nil, ErrNotFound{Number: number}
}

func (r *Registry) Accounts() []Account {
	out := make([]Account, len(r.accounts))
	copy(out, r.accounts)
	return out
}

func (r *Registry) Transactions() []*Transaction {
	out := make([]*Transaction, len(r.txns))
	copy(out, r.txns)
	return out
}

func (r *Registry) Size() int { return len(r.accounts) }

func (r *Registry) TotalBalance() decimal.Decimal {
	total := decimal.Zero
	for _, a := range r.accounts {
		total = total.Add(a.Balance())
	}
	return total
}

func (r *Registry) TotalLoanAmount() decimal.Decimal {
	total := decimal.Zero
	for _, a := range r.accounts {
		if loan, ok := a.(*LoanAccount); ok {
			total = total.Add(loan.LoanAmount())
		}
	}
	return total
}

func (r *Registry) LoanFeatureEnabled() bool { return r.loanOn }

func (r *Registry) SetLoanFeature(enabled bool) { r.loanOn = enabled }

func normalizeType(typ string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(typ)) {
	case "savings":
		return TypeSavings, true
	case "current":
		return TypeCurrent, true
	case "loan":
		return TypeLoan, true
	}
	return "", false
}
