package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/Guru-25/FreeFusion/internal/client/mail"
	"github.com/Guru-25/FreeFusion/internal/client/models"
	"github.com/Guru-25/FreeFusion/internal/client/services"
	"github.com/Guru-25/FreeFusion/internal/client/view"
	"github.com/Guru-25/FreeFusion/internal/logging"
)

// HomeScreen is the freelancer home feed: a one-shot synchronization of the
// project requests plus the selection/overlay state and the contact action.
type HomeScreen struct {
	reader  *bufio.Reader
	out     io.Writer
	feed    *services.FeedSynchronizer
	sel     view.Selection
	profile services.Profile
	logger  logging.Logger
}

func NewHomeScreen(reader *bufio.Reader, out io.Writer, feed *services.FeedSynchronizer, profile services.Profile, logger logging.Logger) *HomeScreen {
	return &HomeScreen{
		reader:  reader,
		out:     out,
		feed:    feed,
		profile: profile,
		logger:  logger.With("screen", "home"),
	}
}

// Run synchronizes the feed once and then serves the screen's actions until
// the user logs out or quits. Returns true when the user wants to log out
// (back to the login screen) rather than leave the program.
func (s *HomeScreen) Run(ctx context.Context) bool {
	fmt.Fprintln(s.out, s.profile.Username)
	fmt.Fprintln(s.out, "Ongoing Projects")

	s.renderFeed(s.feed.Sync(ctx))

	for {
		fmt.Fprintln(s.out, "list | show <n> | close | contact | logout | quit")

		cmd, err := GetSimpleText(s.reader, "Choose an action", s.out)
		if err != nil {
			return false
		}

		switch {
		case cmd == "list", cmd == "l":
			s.renderFeed(s.feed.View())

		case len(cmd) > 5 && cmd[:5] == "show ":
			s.show(cmd[5:])

		case cmd == "close":
			s.sel.Close()
			fmt.Fprintln(s.out, "Closed.")

		case cmd == "contact":
			s.contact(ctx)

		case cmd == "logout":
			return true

		case cmd == "quit", cmd == "exit":
			return false

		default:
			fmt.Fprintln(s.out, "Unknown action:", cmd)
		}
	}
}

// renderFeed prints the tri-state feed view. An empty Ready list renders as
// an explicit "No projects available", never as silence.
func (s *HomeScreen) renderFeed(v services.FeedView) {
	switch v.State {
	case services.FeedLoading:
		fmt.Fprintln(s.out, "Loading...")
	case services.FeedError:
		fmt.Fprintln(s.out, "Error fetching projects")
	case services.FeedReady:
		if len(v.Items) == 0 {
			fmt.Fprintln(s.out, "No projects available")
			return
		}
		for i, item := range v.Items {
			fmt.Fprintf(s.out, "%d. %s\n   %s\n", i+1, item.ProjectTitle, item.Description)
		}
	}
}

// show selects the n-th listed project and opens the detail overlay.
func (s *HomeScreen) show(arg string) {
	v := s.feed.View()
	if v.State != services.FeedReady {
		fmt.Fprintln(s.out, "No projects available")
		return
	}

	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(v.Items) {
		fmt.Fprintln(s.out, "Unknown project:", arg)
		return
	}

	s.sel.SelectAndOpen(v.Items[n-1])
	s.renderDetail(v.Items[n-1])
}

func (s *HomeScreen) renderDetail(item models.ProjectRequest) {
	fmt.Fprintln(s.out, item.ProjectTitle)
	fmt.Fprintln(s.out, "Company:", item.CompanyName)
	fmt.Fprintln(s.out, "Salary:", item.Salary)
	fmt.Fprintln(s.out, "Duration:", item.Duration)
	fmt.Fprintln(s.out, "Contact:", item.ContactInfo)
	fmt.Fprintln(s.out, item.Description)
}

// contact builds the mail intent for the current selection and hands the
// mailto link to the platform opener. Launch failures are logged, never
// surfaced: the flow is fire-and-forget.
func (s *HomeScreen) contact(ctx context.Context) {
	selected, ok := s.sel.Selected()
	if !ok {
		fmt.Fprintln(s.out, "Select a project first")
		return
	}

	intent, ok := mail.BuildIntent(&selected)
	if !ok {
		return
	}

	if err := openURL(intent.MailtoURL()); err != nil {
		s.logger.Warn(ctx, "mail launch failed", "error", err)
	}
	fmt.Fprintln(s.out, "Opening mail client for", intent.Recipient)
}
