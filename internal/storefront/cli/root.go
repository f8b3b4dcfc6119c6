// Package cli is the terminal shell of the storefront: one process, one
// local session, the same services the BFF serves.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/storefront/internal/storefront/app"
	"github.com/aussiebroadwan/storefront/internal/storefront/service"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
	"github.com/aussiebroadwan/storefront/pkg/slogx"
)

// noCore marks commands that run without local storage or the gateway.
const noCore = "storefrontctl/no-core"

// Shell is the state shared by every command of one invocation.
type Shell struct {
	dbFile    string
	apiURL    string
	colorFlag string
	verbose   bool

	cfg     app.Config
	logger  *slog.Logger
	core    *app.Core
	printer *Printer

	unsubscribe func()
}

func New() *Shell {
	return &Shell{}
}

// Command builds the command tree. Output goes through cmd.OutOrStdout and
// cmd.ErrOrStderr so tests can capture it.
func (s *Shell) Command() *cobra.Command {
	root := &cobra.Command{
		Use:   "storefrontctl",
		Short: "Storefront terminal shell",
		Long: `storefrontctl drives the storefront from a terminal.

It keeps one customer session in local storage, holds a guest cart until
you sign in and merges it into your account cart when you do.

Example usage:
  storefrontctl products --search mug      # Browse the catalog
  storefrontctl cart add 12 --qty 2        # Add to the (guest) cart
  storefrontctl login --email me@example.com
  storefrontctl checkout --address 3       # Place the order`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.init(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return s.Close()
		},
	}

	root.PersistentFlags().StringVar(&s.dbFile, "db", "", "local storage file (default $STOREFRONT_DATABASE_FILE)")
	root.PersistentFlags().StringVar(&s.apiURL, "api", "", "storefront API base URL (default $API_BASE_URL)")
	root.PersistentFlags().StringVar(&s.colorFlag, "color", "auto", "color output: auto, always, never")
	root.PersistentFlags().BoolVarP(&s.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		s.newLoginCmd(),
		s.newRegisterCmd(),
		s.newLogoutCmd(),
		s.newWhoamiCmd(),
		s.newProductsCmd(),
		s.newCartCmd(),
		s.newFavoritesCmd(),
		s.newAddressesCmd(),
		s.newOrdersCmd(),
		s.newCheckoutCmd(),
		newVersionCmd(),
	)

	return root
}

// Execute runs the shell and returns the process exit code.
func Execute(ctx context.Context) int {
	s := New()
	err := s.Command().ExecuteContext(ctx)
	if cerr := s.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		p := s.printer
		if p == nil {
			p = NewPrinter(os.Stdout, os.Stderr, ResolveColors(ColorAuto))
		}
		p.Error("%s", describe(err))
		return 1
	}
	return 0
}

// describe turns a command error into one line for the user.
func describe(err error) string {
	switch {
	case errors.Is(err, service.ErrLoginRequired), errors.Is(err, shopsdk.ErrUnauthorized):
		return "not signed in (run: storefrontctl login)"
	case errors.Is(err, service.ErrAdminRequired), errors.Is(err, shopsdk.ErrForbidden):
		return "this needs the Admin role"
	}
	var apiErr *shopsdk.APIError
	if errors.As(err, &apiErr) {
		return shopsdk.Message(err, "")
	}
	return err.Error()
}

func (s *Shell) init(cmd *cobra.Command) error {
	mode, err := ParseColorMode(s.colorFlag)
	if err != nil {
		return err
	}
	s.printer = NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), ResolveColors(mode))

	if cmd.Annotations[noCore] != "" {
		return nil
	}

	s.cfg, err = app.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if s.dbFile != "" {
		s.cfg.DatabaseFile = s.dbFile
	}
	if s.apiURL != "" {
		s.cfg.APIBaseURL = s.apiURL
	}

	level := "warn"
	if s.verbose {
		level = "debug"
	}
	s.logger = slogx.New(slogx.Config{
		Service: "storefrontctl",
		Version: app.BuildVersion,
		Env:     s.cfg.Env,
		Level:   level,
		Format:  "text",
		Output:  cmd.ErrOrStderr(),
	})

	s.core, err = app.NewCore(s.cfg, s.logger)
	if err != nil {
		return err
	}
	s.unsubscribe = s.core.Notices.Subscribe(s.printer.Notice)

	s.logger.Debug("configuration loaded",
		"api", s.cfg.APIBaseURL,
		"db", s.cfg.DatabaseFile,
		"enrichment", s.cfg.EnrichmentPolicy,
	)

	s.core.Restore(cmd.Context(), s.logger)
	return nil
}

// Close releases local storage. Commands that fail skip cobra's post-run
// hooks, so Execute calls it as well.
func (s *Shell) Close() error {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	if s.core == nil {
		return nil
	}
	err := s.core.Close()
	s.core = nil
	return err
}

// readSecret reads one line from in when a secret was not given as a flag.
func readSecret(in io.Reader) (string, error) {
	var secret string
	if _, err := fmt.Fscanln(in, &secret); err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return secret, nil
}
