package banksim

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var (
	menuHeader = color.New(color.FgCyan, color.Bold)
	errText    = color.New(color.FgRed)
)

// Session drives the interactive menu protocol over a reader/writer pair.
// All parsing happens at the read* boundary; dispatch only ever sees typed
// values or ErrBadInput. The single current-account slot is set by creating
// an account from the user menu.
type Session struct {
	svc     *Service
	in      *bufio.Scanner
	out     io.Writer
	log     zerolog.Logger
	stmtDir string
	current Account
}

func NewSession(svc *Service, in io.Reader, out io.Writer, log *zerolog.Logger, stmtDir string) *Session {
	return &Session{
		svc:     svc,
		in:      bufio.NewScanner(in),
		out:     out,
		log:     log.With().Str("session", uuid.NewString()).Logger(),
		stmtDir: stmtDir,
	}
}

// Run loops on the main menu until the user picks Exit or input runs out.
func (s *Session) Run() error {
	for {
		menuHeader.Fprintln(s.out, "\n=== Banking Management System ===")
		fmt.Fprintln(s.out, "\n1. User Operations")
		fmt.Fprintln(s.out, "2. Admin Operations")
		fmt.Fprintln(s.out, "3. Exit")

		choice, err := s.readChoice("Enter your choice (1/2/3): ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			s.inputErr(err)
			continue
		}

		switch choice {
		case 1:
			if err := s.userMenu(); errors.Is(err, io.EOF) {
				return nil
			}
		case 2:
			if err := s.adminMenu(); errors.Is(err, io.EOF) {
				return nil
			}
		case 3:
			fmt.Fprintln(s.out, "\nExiting the Banking Management System.")
			return nil
		default:
			s.errf("Invalid choice. Please enter 1, 2 or 3.")
		}
	}
}

// userMenu shows the user operations menu, performs one action, and
// returns to the main menu. The returned error is io.EOF or nil.
func (s *Session) userMenu() error {
	menuHeader.Fprintln(s.out, "\n=== User Operations ===")
	fmt.Fprintln(s.out, "\n1. Create Account")
	fmt.Fprintln(s.out, "2. Deposit")
	fmt.Fprintln(s.out, "3. Withdraw")
	fmt.Fprintln(s.out, "4. Check Balance")
	fmt.Fprintln(s.out, "5. Transaction History")
	fmt.Fprintln(s.out, "6. Take Loan")
	fmt.Fprintln(s.out, "7. Transfer Amount")
	fmt.Fprintln(s.out, "8. Exit")

	choice, err := s.readChoice("Enter your choice (1-8): ")
	if err != nil {
		return s.inputErr(err)
	}

	switch choice {
	case 1:
		acct, err := s.createAccountPrompt()
		if err != nil {
			return s.inputErr(err)
		}
		if acct != nil {
			s.current = acct
		}
	case 2:
		if s.current == nil {
			s.errf("Create an account first.")
			return nil
		}
		amount, err := s.readAmount("Enter the deposit amount: ")
		if err != nil {
			return s.inputErr(err)
		}
		if err := s.svc.Deposit(s.current, amount); err != nil {
			s.errf("Invalid deposit amount.")
			return nil
		}
		fmt.Fprintf(s.out, "\n--> Deposited $%s. Current balance: $%s\n", amount, s.current.Balance())
	case 3:
		if s.current == nil {
			s.errf("Create an account first.")
			return nil
		}
		amount, err := s.readAmount("Enter the withdrawal amount: ")
		if err != nil {
			return s.inputErr(err)
		}
		if err := s.svc.Withdraw(s.current, amount); err != nil {
			s.errf("Withdrawal amount exceeded or invalid.")
			return nil
		}
		fmt.Fprintf(s.out, "\n--> Withdrew $%s. Current balance: $%s\n", amount, s.current.Balance())
	case 4:
		if s.current == nil {
			s.errf("Create an account first.")
			return nil
		}
		fmt.Fprintf(s.out, "\n--> Available balance: $%s\n", s.current.Balance())
	case 5:
		if s.current == nil {
			s.errf("Create an account first.")
			return nil
		}
		fmt.Fprintln(s.out, "\n=== Transaction History ===")
		for _, t := range s.current.Transactions() {
			fmt.Fprintln(s.out, t.Describe())
			fmt.Fprintln(s.out, "---")
		}
	case 6:
		if s.current == nil {
			s.errf("Create an account first.")
			return nil
		}
		if _, ok := s.current.(*LoanAccount); !ok {
			s.errf("Only loan accounts can apply for loans.")
			return nil
		}
		amount, err := s.readAmount("Enter the loan amount: ")
		if err != nil {
			return s.inputErr(err)
		}
		switch err := s.svc.ApplyForLoan(s.current, amount); {
		case errors.Is(err, ErrLoanDisabled):
			s.errf("Loan feature is currently disabled.")
		case errors.Is(err, ErrInvalidAmount):
			s.errf("Invalid loan amount.")
		case err != nil:
			s.errf("%s", err)
		default:
			fmt.Fprintf(s.out, "\n--> Loan applied successfully. Current balance: $%s\n", s.current.Balance())
		}
	case 7:
		return s.transferPrompt()
	case 8:
		fmt.Fprintln(s.out, "\nExiting User Operations.")
	default:
		s.errf("Invalid choice. Please enter 1-8.")
	}
	return nil
}

// adminMenu shows the admin operations menu, performs one action, and
// returns to the main menu. The returned error is io.EOF or nil.
func (s *Session) adminMenu() error {
	menuHeader.Fprintln(s.out, "\n=== Admin Operations ===")
	fmt.Fprintln(s.out, "\n1. Create Account")
	fmt.Fprintln(s.out, "2. Delete Account")
	fmt.Fprintln(s.out, "3. View All Accounts")
	fmt.Fprintln(s.out, "4. Check Total Balance")
	fmt.Fprintln(s.out, "5. Check Total Loan Amount")
	fmt.Fprintln(s.out, "6. Toggle Loan Feature")
	fmt.Fprintln(s.out, "7. Exit")
	fmt.Fprintln(s.out, "8. Export Statement")

	choice, err := s.readChoice("Enter your choice (1-8): ")
	if err != nil {
		return s.inputErr(err)
	}

	switch choice {
	case 1:
		// admin-created accounts do not become the session's current account
		if _, err := s.createAccountPrompt(); err != nil {
			return s.inputErr(err)
		}
	case 2:
		number, err := s.readNumber("Enter the account number to delete: ")
		if err != nil {
			return s.inputErr(err)
		}
		if err := s.svc.DeleteAccount(number); err != nil {
			s.errf("Account not found.")
			return nil
		}
		fmt.Fprintln(s.out, "\n--> Account deleted successfully.")
	case 3:
		fmt.Fprintln(s.out, "\n=== All Accounts ===")
		for _, a := range s.svc.Accounts() {
			fmt.Fprintln(s.out)
			a.Info(s.out)
			fmt.Fprintln(s.out, "---")
		}
	case 4:
		fmt.Fprintf(s.out, "\n--> Total available balance: $%s\n", s.svc.TotalBalance())
	case 5:
		fmt.Fprintf(s.out, "\n--> Total loan amount: $%s\n", s.svc.TotalLoanAmount())
	case 6:
		answer, err := s.readLine("Enable the loan feature? (yes/no): ")
		if err != nil {
			return s.inputErr(err)
		}
		enable := strings.EqualFold(answer, "yes")
		s.svc.ToggleLoanFeature(enable)
		status := "disabled"
		if enable {
			status = "enabled"
		}
		fmt.Fprintf(s.out, "\n--> Loan feature is now %s.\n", status)
	case 7:
		fmt.Fprintln(s.out, "\nExiting Admin Operations.")
	case 8:
		return s.statementPrompt()
	default:
		s.errf("Invalid choice. Please enter 1-8.")
	}
	return nil
}

// createAccountPrompt collects the details for a new account. It returns a
// nil account (and nil error) when creation was refused; only io.EOF
// propagates.
func (s *Session) createAccountPrompt() (Account, error) {
	menuHeader.Fprintln(s.out, "\n=== Create Account ===")
	name, err := s.readLine("Name: ")
	if err != nil {
		return nil, err
	}
	email, err := s.readLine("Email: ")
	if err != nil {
		return nil, err
	}
	address, err := s.readLine("Address: ")
	if err != nil {
		return nil, err
	}
	typ, err := s.readLine("Account type (Savings/Current/Loan): ")
	if err != nil {
		return nil, err
	}

	acct, err := s.svc.CreateAccount(CreateAccountReq{
		Type:    typ,
		Name:    name,
		Email:   email,
		Address: address,
	})
	if errors.Is(err, ErrUnknownAccountType) {
		s.errf("Invalid account type. Account not created.")
		return nil, nil
	}
	if err != nil {
		s.errf("Invalid account details. Account not created.")
		return nil, nil
	}
	fmt.Fprintf(s.out, "\n--> Account created successfully. Account number: %d\n", acct.Number())
	return acct, nil
}

func (s *Session) transferPrompt() error {
	if s.current == nil {
		s.errf("Create an account first.")
		return nil
	}
	if _, ok := s.current.(*LoanAccount); ok {
		s.errf("Loan accounts cannot transfer funds.")
		return nil
	}
	target, err := s.readNumber("Enter the account number to transfer to: ")
	if err != nil {
		return s.inputErr(err)
	}
	if _, err := s.svc.FindAccount(target); err != nil {
		s.errf("Target account not found.")
		return nil
	}
	amount, err := s.readAmount("Enter the transfer amount: ")
	if err != nil {
		return s.inputErr(err)
	}
	switch err := s.svc.Transfer(s.current, target, amount); {
	case errors.Is(err, ErrInsufficientFunds):
		s.errf("Insufficient balance for transfer.")
	case errors.Is(err, ErrInvalidAmount):
		s.errf("Invalid transfer amount.")
	case err != nil:
		s.errf("Transfer failed.")
	default:
		fmt.Fprintf(s.out, "\n--> Transfer successful. Current balance: $%s\n", s.current.Balance())
	}
	return nil
}

func (s *Session) statementPrompt() error {
	number, err := s.readNumber("Enter the account number: ")
	if err != nil {
		return s.inputErr(err)
	}
	acct, err := s.svc.FindAccount(number)
	if err != nil {
		s.errf("Account not found.")
		return nil
	}
	path := filepath.Join(s.stmtDir, fmt.Sprintf("statement_%d.pdf", number))
	f, err := os.Create(path)
	if err != nil {
		s.log.Err(err).Str("path", path).Msg("statement file create failed")
		s.errf("Could not write statement.")
		return nil
	}
	defer f.Close()
	if err := Statement(f, acct); err != nil {
		s.log.Err(err).Int64("acct", number).Msg("statement render failed")
		s.errf("Could not write statement.")
		return nil
	}
	fmt.Fprintf(s.out, "\n--> Statement written to %s\n", path)
	return nil
}

//
// Input boundary
//

func (s *Session) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Session) readChoice(prompt string) (int, error) {
	line, err := s.readLine(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, ErrBadInput{Field: "choice"}
	}
	return n, nil
}

func (s *Session) readNumber(prompt string) (int64, error) {
	line, err := s.readLine(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(line, 10, 64)
	if err != nil {
		return 0, ErrBadInput{Field: "account number"}
	}
	return n, nil
}

func (s *Session) readAmount(prompt string) (decimal.Decimal, error) {
	line, err := s.readLine(prompt)
	if err != nil {
		return decimal.Zero, err
	}
	amount, err := decimal.NewFromString(line)
	if err != nil {
		return decimal.Zero, ErrBadInput{Field: "amount"}
	}
	return amount, nil
}

// inputErr reports a bad-input error to the console and hands control back
// to the enclosing menu. io.EOF passes through untouched.
func (s *Session) inputErr(err error) error {
	if errors.Is(err, io.EOF) {
		return err
	}
	var bad ErrBadInput
	if errors.As(err, &bad) {
		s.errf("Please enter a valid %s.", bad.Field)
		return nil
	}
	s.errf("%s", err)
	return nil
}

func (s *Session) errf(format string, args ...any) {
	errText.Fprintf(s.out, "\n--> "+format+"\n", args...)
}
