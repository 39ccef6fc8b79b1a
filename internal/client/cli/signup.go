package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/Guru-25/FreeFusion/internal/common"
	"github.com/Guru-25/FreeFusion/internal/logging"
)

// signUpFn creates a new account on the gateway. Matches
// (*gateway.HTTPGateway).SignUp.
type signUpFn func(ctx context.Context, email, password, username, kind string) error

// SignUpScreen is the destination of the "New user? Sign Up" handoff. It
// collects the account details and creates both the credential account and
// the role record on the gateway.
type SignUpScreen struct {
	reader *bufio.Reader
	out    io.Writer
	signUp signUpFn
	logger logging.Logger
}

func NewSignUpScreen(reader *bufio.Reader, out io.Writer, signUp signUpFn, logger logging.Logger) *SignUpScreen {
	return &SignUpScreen{reader: reader, out: out, signUp: signUp, logger: logger.With("screen", "signup")}
}

// Run collects the sign-up form once and returns to the login screen.
func (s *SignUpScreen) Run(ctx context.Context) {
	kind, err := GetSimpleText(s.reader, "Account kind (freelancer/customer)", s.out)
	if err != nil {
		return
	}
	if kind != "freelancer" && kind != "customer" {
		fmt.Fprintln(s.out, "Error: account kind must be freelancer or customer")
		return
	}

	username, err := GetSimpleText(s.reader, "Username", s.out)
	if err != nil {
		return
	}
	email, err := GetSimpleText(s.reader, "Email", s.out)
	if err != nil {
		return
	}
	password, err := GetPassword(s.out)
	if err != nil {
		return
	}
	defer common.WipeByteArray(password)

	if err := s.signUp(ctx, email, string(password), username, kind); err != nil {
		fmt.Fprintln(s.out, "Error:", err)
		return
	}
	fmt.Fprintln(s.out, "Success: account created, you can log in now")
}
