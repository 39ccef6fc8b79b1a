// Package cli hosts the interactive FreeFusion client: the login screen and
// the freelancer home screen, wired to the gateway through the services
// layer.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Guru-25/FreeFusion/internal/client/config"
	"github.com/Guru-25/FreeFusion/internal/client/gateway"
	"github.com/Guru-25/FreeFusion/internal/client/services"
	"github.com/Guru-25/FreeFusion/internal/logging"
)

// App owns the screen loop and the shared gateway connection. Screens are
// created per visit; the gateway client (and its session token) lives for
// the whole program run.
type App struct {
	config   *config.Config
	logger   logging.Logger
	gw       *gateway.HTTPGateway
	resolver *services.RoleResolver
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	gw := gateway.NewHTTPGateway(cfg.GatewayBaseURL).WithTimeout(cfg.RequestTimeout)

	return &App{
		config:   cfg,
		logger:   logger,
		gw:       gw,
		resolver: services.NewRoleResolver(gw, logger),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run drives navigation between the screens until the user quits.
func (a *App) Run(ctx context.Context) {
	defer a.gw.Close()

	for {
		login := NewLoginScreen(a.reader, a.out, a.resolver, a.logger)
		profile, outcome := login.Run(ctx)

		switch outcome {
		case loginResolved:
			feed := services.NewFeedSynchronizer(a.gw, a.logger)
			home := NewHomeScreen(a.reader, a.out, feed, *profile, a.logger)

			logout := home.Run(ctx)
			if err := a.gw.SignOut(ctx); err != nil {
				a.logger.Warn(ctx, "sign-out failed", "error", err)
			}
			if !logout {
				fmt.Fprintln(a.out, "Bye!")
				return
			}

		case loginSignUp:
			NewSignUpScreen(a.reader, a.out, a.gw.SignUp, a.logger).Run(ctx)

		case loginQuit:
			fmt.Fprintln(a.out, "Bye!")
			return
		}
	}
}
