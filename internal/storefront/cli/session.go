package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
)

func (s *Shell) newLoginCmd() *cobra.Command {
	var email, password, googleToken string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and merge the guest cart into your account",
		Long: `Sign in with email and password, or with a Google ID token.

The password is read from stdin when --password is not given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			switch {
			case googleToken != "":
				err = s.core.Session.LoginWithGoogle(cmd.Context(), googleToken)
			case email == "":
				return errors.New("--email or --google-id-token is required")
			default:
				if password == "" {
					if password, err = readSecret(cmd.InOrStdin()); err != nil {
						return err
					}
				}
				err = s.core.Session.LoginWithPassword(cmd.Context(), email, password)
			}
			if err != nil {
				return loginError(err)
			}

			snap := s.core.Session.Snapshot()
			s.printer.Success("Signed in as %s", snap.User.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (default: read from stdin)")
	cmd.Flags().StringVar(&googleToken, "google-id-token", "", "sign in with a Google ID token instead")
	return cmd
}

func (s *Shell) newRegisterCmd() *cobra.Command {
	var req shopsdk.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Email == "" {
				return errors.New("--email is required")
			}
			if req.Password == "" {
				var err error
				if req.Password, err = readSecret(cmd.InOrStdin()); err != nil {
					return err
				}
			}
			if err := s.core.Session.Register(cmd.Context(), req); err != nil {
				return loginError(err)
			}
			s.printer.Success("Welcome, %s", s.core.Session.Snapshot().User.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "account email")
	cmd.Flags().StringVar(&req.Username, "username", "", "display name")
	cmd.Flags().StringVar(&req.Password, "password", "", "account password (default: read from stdin)")
	return cmd
}

// loginError keeps the service's message for rejected credentials.
func loginError(err error) error {
	if errors.Is(err, shopsdk.ErrRejected) || errors.Is(err, shopsdk.ErrUnauthorized) {
		return errors.New(shopsdk.Message(err, "Login failed."))
	}
	return err
}

func (s *Shell) newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s.core.Session.Logout(cmd.Context())
			s.printer.Success("Signed out")
			return nil
		},
	}
}

func (s *Shell) newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := s.core.Session.Snapshot()
			if !snap.IsAuthenticated {
				s.printer.Print("%s", s.printer.Dim("guest (not signed in)"))
				return nil
			}

			u := snap.User
			s.printer.Print("%s <%s>", s.printer.Bold(u.Name), u.Email)
			if u.Phone != "" {
				s.printer.Print("phone: %s", u.Phone)
			}
			s.printer.Print("roles: %s", strings.Join(u.Roles, ", "))
			return nil
		},
	}
}
