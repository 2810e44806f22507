// Package cli implements the hubadmin command tree: one stable name per
// admin screen, all of them behind the session guard except login.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/campushub/admin-console/internal/client"
	"github.com/campushub/admin-console/internal/config"
	"github.com/campushub/admin-console/internal/session"
)

type GlobalOptions struct {
	ServerUrl    string
	AssetBaseUrl string
	SessionFile  string
}

func DefaultGlobalOptions() GlobalOptions {
	o := GlobalOptions{
		ServerUrl:    "http://localhost:5000",
		AssetBaseUrl: "http://localhost:5000/uploads",
	}
	if cfg, err := config.New(); err == nil {
		o.ServerUrl = cfg.Service.ServerUrl
		o.AssetBaseUrl = cfg.Service.AssetBaseUrl
		o.SessionFile = cfg.SessionPath()
	}
	return o
}

func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.ServerUrl, "server-url", "u", o.ServerUrl, "Address of the CampusHub API server")
	fs.StringVar(&o.AssetBaseUrl, "asset-base-url", o.AssetBaseUrl, "Origin prepended to stored attachment references")
	fs.StringVar(&o.SessionFile, "session-file", o.SessionFile, "Path of the persisted login session")
}

func (o *GlobalOptions) Complete(cmd *cobra.Command, args []string) error {
	return nil
}

func (o *GlobalOptions) Validate(args []string) error {
	return nil
}

// Session loads the persisted login state without guarding it; login and
// logout use this directly.
func (o *GlobalOptions) Session() (*session.Session, error) {
	return session.Load(o.SessionFile)
}

// GuardedSession is the route guard: every data command goes through here
// before any request is issued or any screen rendered. A missing, expired or
// non-admin session aborts with a pointer at the login command, the CLI
// analog of the redirect to the login page.
func (o *GlobalOptions) GuardedSession() (*session.Session, error) {
	sess, err := o.Session()
	if err != nil {
		return nil, err
	}
	if err := sess.Check(time.Now()); err != nil {
		return nil, fmt.Errorf("%w, run `hubadmin login` first", err)
	}
	return sess, nil
}

// Client builds an API client bound to a guarded session.
func (o *GlobalOptions) Client() (*client.Client, error) {
	sess, err := o.GuardedSession()
	if err != nil {
		return nil, err
	}
	return client.New(o.ServerUrl, o.AssetBaseUrl, sess), nil
}
