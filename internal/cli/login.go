package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/campushub/admin-console/internal/client"
	"github.com/campushub/admin-console/internal/session"
)

type LoginOptions struct {
	GlobalOptions

	Email    string
	Password string
}

func DefaultLoginOptions() *LoginOptions {
	return &LoginOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdLogin() *cobra.Command {
	o := DefaultLoginOptions()
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the CampusHub API and persist the session.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *LoginOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVar(&o.Email, "email", o.Email, "Admin account email.")
	fs.StringVar(&o.Password, "password", o.Password, "Admin account password. Prompted without echo when omitted.")
}

func (o *LoginOptions) Complete(cmd *cobra.Command, args []string) error {
	return o.GlobalOptions.Complete(cmd, args)
}

func (o *LoginOptions) Validate(args []string) error {
	return o.GlobalOptions.Validate(args)
}

func (o *LoginOptions) Run(ctx context.Context, args []string) error {
	// Login is the one unguarded command. A still-valid session
	// short-circuits straight to the dashboard hint instead of
	// re-authenticating.
	sess, err := o.Session()
	if err != nil {
		return err
	}
	if sess.Valid() {
		fmt.Printf("already logged in as %s, run `hubadmin logout` to switch accounts\n", sess.Email)
		return nil
	}

	if o.Email == "" {
		fmt.Print("email: ")
		if _, err := fmt.Scanln(&o.Email); err != nil {
			return fmt.Errorf("reading email: %w", err)
		}
	}
	if o.Password == "" {
		fmt.Print("password: ")
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("reading password: %w", err)
		}
		o.Password = strings.TrimSpace(string(raw))
	}

	c := client.New(o.ServerUrl, o.AssetBaseUrl, nil)
	auth, err := c.Login(ctx, o.Email, o.Password)
	if err != nil {
		return fmt.Errorf("logging in: %w", err)
	}

	newSess := session.New(o.SessionFile, auth.Token, o.Email)
	if err := newSess.Save(); err != nil {
		return err
	}
	fmt.Printf("logged in as %s\n", o.Email)
	return nil
}

func NewCmdLogout() *cobra.Command {
	o := DefaultGlobalOptions()
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := o.Session()
			if err != nil {
				return err
			}
			if err := sess.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, "logged out")
			return nil
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}
