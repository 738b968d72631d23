package banksim_test

import (
	"testing"

	"banksim"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountNumbers(t *testing.T) {
	t.Run("assigned sequentially starting at 1", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		reg := newTestRegistry(tt)
		for i := int64(1); i <= 3; i++ {
			acct, err := reg.CreateAccount("Savings", "Ana", "ana@example.com", "12 Oak St")
			reqrd.NoError(err)
			as.Equal(i, acct.Number())
		}
	})

	t.Run("not reused after a deletion", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		reg := newTestRegistry(tt)
		_, err := reg.CreateAccount("Savings", "Ana", "ana@example.com", "12 Oak St")
		reqrd.NoError(err)
		second, err := reg.CreateAccount("Current", "Cal", "cal@example.com", "9 Pine St")
		reqrd.NoError(err)

		reqrd.NoError(reg.DeleteAccount(second.Number()))
		third, err := reg.CreateAccount("Loan", "Ben", "ben@example.com", "3 Elm St")
		reqrd.NoError(err)

		as.Equal(int64(3), third.Number())
		as.Equal(2, reg.Size())
	})
}

func TestCreateAccount(t *testing.T) {
	t.Run("account type is case-insensitive", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		reg := newTestRegistry(tt)
		for _, typ := range []string{"savings", "SAVINGS", "Savings"} {
			acct, err := reg.CreateAccount(typ, "Ana", "ana@example.com", "12 Oak St")
			reqrd.NoError(err)
			as.Equal("Savings", acct.Type())
		}
	})

	t.Run("rejects an unrecognized type", func(tt *testing.T) {
		as := assert.New(tt)
		reg := newTestRegistry(tt)
		_, err := reg.CreateAccount("Checking", "Ana", "ana@example.com", "12 Oak St")
		as.ErrorIs(err, banksim.ErrUnknownAccountType)
		as.Zero(reg.Size())
	})
}

func TestDeleteAccount(t *testing.T) {
	t.Run("reports not-found and leaves the registry unchanged", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		reg := newTestRegistry(tt)
		_, err := reg.CreateAccount("Savings", "Ana", "ana@example.com", "12 Oak St")
		reqrd.NoError(err)

		err = reg.DeleteAccount(42)

		var nf banksim.ErrNotFound
		reqrd.ErrorAs(err, &nf)
		as.Equal(int64(42), nf.Number)
		as.Equal(1, reg.Size())
	})
}

func TestFindAccount(t *testing.T) {
	as := assert.New(t)
	reqrd := require.New(t)
	reg := newTestRegistry(t)
	acct, err := reg.CreateAccount("Current", "Cal", "cal@example.com", "9 Pine St")
	reqrd.NoError(err)

	found, err := reg.FindAccount(acct.Number())
	reqrd.NoError(err)
	as.Same(acct, found)

	_, err = reg.FindAccount(99)
	var nf banksim.ErrNotFound
	as.ErrorAs(err, &nf)
}

func TestTotals(t *testing.T) {
	t.Run("total balance sums every registered account", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		reg := newTestRegistry(tt)
		a, err := reg.CreateAccount("Savings", "Ana", "ana@example.com", "12 Oak St")
		reqrd.NoError(err)
		b, err := reg.CreateAccount("Current", "Cal", "cal@example.com", "9 Pine St")
		reqrd.NoError(err)
		reqrd.NoError(a.Deposit(dec(tt, "100.50")))
		reqrd.NoError(b.Deposit(dec(tt, "200")))
		reqrd.NoError(b.Withdraw(dec(tt, "250")))

		as.True(reg.TotalBalance().Equal(dec(tt, "50.50")))
	})

	t.Run("total loan amount sums loan accounts only", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		reg := newTestRegistry(tt)
		reg.SetLoanFeature(true)
		sav, err := reg.CreateAccount("Savings", "Ana", "ana@example.com", "12 Oak St")
		reqrd.NoError(err)
		reqrd.NoError(sav.Deposit(dec(tt, "1000")))
		l1, err := reg.CreateAccount("Loan", "Ben", "ben@example.com", "3 Elm St")
		reqrd.NoError(err)
		l2, err := reg.CreateAccount("Loan", "Cam", "cam@example.com", "5 Fir St")
		reqrd.NoError(err)
		reqrd.NoError(l1.(*banksim.LoanAccount).ApplyForLoan(dec(tt, "300"), true))
		reqrd.NoError(l2.(*banksim.LoanAccount).ApplyForLoan(dec(tt, "200"), true))

		as.True(reg.TotalLoanAmount().Equal(dec(tt, "500")))
	})
}

func TestTransactionLog(t *testing.T) {
	as := assert.New(t)
	reqrd := require.New(t)
	reg := newTestRegistry(t)
	a, err := reg.CreateAccount("Savings", "Ana", "ana@example.com", "12 Oak St")
	reqrd.NoError(err)
	b, err := reg.CreateAccount("Current", "Cal", "cal@example.com", "9 Pine St")
	reqrd.NoError(err)

	reqrd.NoError(a.Deposit(dec(t, "10")))
	reqrd.NoError(b.Deposit(dec(t, "20")))
	reqrd.NoError(b.Withdraw(dec(t, "5")))

	txns := reg.Transactions()
	reqrd.Len(txns, 3)
	seen := make(map[int64]bool, len(txns))
	for _, txn := range txns {
		as.False(seen[int64(txn.ID)], "transaction IDs must be unique")
		seen[int64(txn.ID)] = true
	}
	// global log preserves creation order
	as.Equal(a.Number(), txns[0].AccountNo)
	as.Equal(b.Number(), txns[1].AccountNo)
	as.Equal(banksim.TxnWithdrawal, txns[2].Kind)
}

func TestLoanFeatureFlag(t *testing.T) {
	as := assert.New(t)
	reg := newTestRegistry(t)
	as.False(reg.LoanFeatureEnabled())
	reg.SetLoanFeature(true)
	as.True(reg.LoanFeatureEnabled())
	reg.SetLoanFeature(false)
	as.False(reg.LoanFeatureEnabled())
}
