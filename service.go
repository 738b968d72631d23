package banksim

import (
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// CreateAccountReq carries the details for a new account. Type is checked
// against the known variants by the registry rather than by tag, so an
// unrecognized label reports as such and not as a field violation.
type CreateAccountReq struct {
	Type    string
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Address string `validate:"required"`
}

// Service is the operations layer over the registry: it validates requests,
// applies the account rules, and logs every mutation.
type Service struct {
	reg      *Registry
	validate *validator.Validate
	log      *zerolog.Logger
}

func NewService(reg *Registry, log *zerolog.Logger) *Service {
	return &Service{
		reg:      reg,
		validate: validator.New(),
		log:      log,
	}
}

func (s *Service) CreateAccount(req CreateAccountReq) (Account, error) {
	if err := s.validate.Struct(req); err != nil {
		s.log.Warn().Err(err).Msg("account creation rejected")
		return nil, ErrBadInput{Field: "account details"}
	}
	acct, err := s.reg.CreateAccount(req.Type, req.Name, req.Email, req.Address)
	if err != nil {
		s.log.Warn().Str("type", req.Type).Err(err).Msg("account creation rejected")
		return nil, err
	}
	s.log.Info().
		Int64("acct", acct.Number()).
		Str("type", acct.Type()).
		Msg("account created")
	return acct, nil
}

func (s *Service) DeleteAccount(number int64) error {
	if err := s.reg.DeleteAccount(number); err != nil {
		s.log.Warn().Int64("acct", number).Err(err).Msg("account deletion failed")
		return err
	}
	s.log.Info().Int64("acct", number).Msg("account deleted")
	return nil
}

func (s *Service) FindAccount(number int64) (Account, error) {
	return s.reg.FindAccount(number)
}

func (s *Service) Accounts() []Account { return s.reg.Accounts() }

func (s *Service) Deposit(acct Account, amount decimal.Decimal) error {
	if err := acct.Deposit(amount); err != nil {
		s.log.Warn().
			Int64("acct", acct.Number()).
			Str("amount", amount.String()).
			Err(err).
			Msg("deposit rejected")
		return err
	}
	s.log.Info().
		Int64("acct", acct.Number()).
		Str("amount", amount.String()).
		Msg("deposit")
	return nil
}

func (s *Service) Withdraw(acct Account, amount decimal.Decimal) error {
	if err := acct.Withdraw(amount); err != nil {
		s.log.Warn().
			Int64("acct", acct.Number()).
			Str("amount", amount.String()).
			Err(err).
			Msg("withdrawal rejected")
		return err
	}
	s.log.Info().
		Int64("acct", acct.Number()).
		Str("amount", amount.String()).
		Msg("withdrawal")
	return nil
}

// ApplyForLoan disburses a loan to acct, gated on the registry's shared
// loan-feature flag. Only loan accounts qualify.
func (s *Service) ApplyForLoan(acct Account, amount decimal.Decimal) error {
	loan, ok := acct.(*LoanAccount)
	if !ok {
		return ErrNotLoanAccount
	}
	if err := loan.ApplyForLoan(amount, s.reg.LoanFeatureEnabled()); err != nil {
		s.log.Warn().
			Int64("acct", acct.Number()).
			Str("amount", amount.String()).
			Err(err).
			Msg("loan application rejected")
		return err
	}
	s.log.Info().
		Int64("acct", acct.Number()).
		Str("amount", amount.String()).
		Msg("loan disbursed")
	return nil
}

// Transfer moves amount from src to the account numbered target. Savings
// sources may not dip below zero; current sources draw on their overdraft
// through their own withdrawal rule. Loan accounts cannot transfer.
func (s *Service) Transfer(src Account, target int64, amount decimal.Decimal) error {
	if _, ok := src.(*LoanAccount); ok {
		return ErrTransferNotAllowed
	}
	dst, err := s.reg.FindAccount(target)
	if err != nil {
		return err
	}
	if sav, ok := src.(*SavingsAccount); ok && amount.GreaterThan(sav.Balance()) {
		return ErrInsufficientFunds
	}
	if err := src.Withdraw(amount); err != nil {
		return err
	}
	if err := dst.Deposit(amount); err != nil {
		return err
	}
	s.log.Info().
		Int64("from", src.Number()).
		Int64("to", dst.Number()).
		Str("amount", amount.String()).
		Msg("transfer")
	return nil
}

func (s *Service) TotalBalance() decimal.Decimal { return s.reg.TotalBalance() }

func (s *Service) TotalLoanAmount() decimal.Decimal { return s.reg.TotalLoanAmount() }

func (s *Service) ToggleLoanFeature(enable bool) {
	s.reg.SetLoanFeature(enable)
	s.log.Info().Bool("enabled", enable).Msg("loan feature toggled")
}

func (s *Service) LoanFeatureEnabled() bool { return s.reg.LoanFeatureEnabled() }
