package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Guru-25/FreeFusion/internal/client/models"
	"github.com/Guru-25/FreeFusion/internal/client/services"
	"github.com/Guru-25/FreeFusion/internal/common"
	"github.com/Guru-25/FreeFusion/internal/logging"
)

// loginOutcome says where the login screen hands control next.
type loginOutcome int

const (
	loginResolved loginOutcome = iota // authenticated, go to home
	loginSignUp                       // user chose the sign-up destination
	loginQuit                         // user left the program
)

// LoginScreen drives the login flow: the freelancer/customer tab toggle, the
// credential prompts, and role resolution. It owns no remote state; all
// gateway access goes through the RoleResolver.
type LoginScreen struct {
	reader   *bufio.Reader
	out      io.Writer
	resolver *services.RoleResolver
	logger   logging.Logger

	// freelancerTab mirrors the tab selection of the original screen. It
	// only changes the email prompt label; resolution always checks both
	// collections.
	freelancerTab bool
}

func NewLoginScreen(reader *bufio.Reader, out io.Writer, resolver *services.RoleResolver, logger logging.Logger) *LoginScreen {
	return &LoginScreen{
		reader:        reader,
		out:           out,
		resolver:      resolver,
		logger:        logger.With("screen", "login"),
		freelancerTab: true,
	}
}

// Run shows the login screen until the user logs in, asks for sign-up, or
// quits. On loginResolved the returned profile carries the resolved
// identity for the navigation handoff.
func (s *LoginScreen) Run(ctx context.Context) (*services.Profile, loginOutcome) {
	fmt.Fprintln(s.out, "FreeFusion")
	fmt.Fprintln(s.out, "Hello Again!!")

	for {
		fmt.Fprintf(s.out, "[%s] login | tab | signup | quit\n", s.tabName())

		cmd, err := GetSimpleText(s.reader, "Choose an action", s.out)
		if err != nil {
			return nil, loginQuit
		}

		switch cmd {
		case "login":
			if profile, ok := s.login(ctx); ok {
				return profile, loginResolved
			}

		case "tab":
			s.freelancerTab = !s.freelancerTab
			fmt.Fprintf(s.out, "Switched to %s tab\n", s.tabName())

		case "signup":
			return nil, loginSignUp

		case "quit", "exit":
			return nil, loginQuit

		default:
			fmt.Fprintln(s.out, "Unknown action:", cmd)
		}
	}
}

func (s *LoginScreen) tabName() string {
	if s.freelancerTab {
		return "Freelancer"
	}
	return "Customer"
}

func (s *LoginScreen) login(ctx context.Context) (*services.Profile, bool) {
	email, err := GetSimpleText(s.reader, s.tabName()+" Email", s.out)
	if err != nil {
		fmt.Fprintln(s.out, "Error reading email:", err)
		return nil, false
	}

	password, err := GetPassword(s.out)
	if err != nil {
		fmt.Fprintln(s.out, "Error reading password:", err)
		return nil, false
	}
	defer common.WipeByteArray(password)

	profile, err := s.resolver.Resolve(ctx, services.Credentials{Email: email, Password: string(password)})
	if err != nil {
		s.showError(ctx, err)
		return nil, false
	}

	if profile.Kind == models.KindCustomer {
		fmt.Fprintln(s.out, "Success: Customer login successful!")
	} else {
		fmt.Fprintln(s.out, "Success: Freelancer login successful!")
	}
	return profile, true
}

// showError renders auth failures the way the original screen alerts them.
func (s *LoginScreen) showError(ctx context.Context, err error) {
	var bad *services.BadCredentialsError

	switch {
	case errors.Is(err, services.ErrInvalidInput):
		fmt.Fprintln(s.out, "Error: Please enter valid credentials.")
	case errors.Is(err, services.ErrNoMatchingAccount):
		fmt.Fprintln(s.out, "Error: Login credentials do not match any account type.")
	case errors.As(err, &bad):
		fmt.Fprintln(s.out, "Error:", bad.Err)
	default:
		s.logger.Error(ctx, "login failed", "error", err)
		fmt.Fprintln(s.out, "Error:", err)
	}
}
