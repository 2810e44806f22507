package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/campushub/admin-console/internal/cli"
	"github.com/campushub/admin-console/internal/config"
	"github.com/campushub/admin-console/pkg/log"
)

func main() {
	level := "info"
	if cfg, err := config.New(); err == nil {
		level = cfg.Service.LogLevel
	}
	logger := log.InitLog(log.ParseLevel(level))
	defer func() { _ = logger.Sync() }()
	undo := zap.ReplaceGlobals(logger)
	defer undo()

	command := NewHubAdminCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewHubAdminCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hubadmin [flags] [options]",
		Short: "hubadmin administers the CampusHub platform.",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
			os.Exit(1)
		},
	}
	cmd.AddCommand(cli.NewCmdLogin())
	cmd.AddCommand(cli.NewCmdLogout())
	cmd.AddCommand(cli.NewCmdKinds())
	cmd.AddCommand(cli.NewCmdGet())
	cmd.AddCommand(cli.NewCmdCreate())
	cmd.AddCommand(cli.NewCmdEdit())
	cmd.AddCommand(cli.NewCmdDelete())
	cmd.AddCommand(cli.NewCmdAccept())
	cmd.AddCommand(cli.NewCmdReject())
	cmd.AddCommand(cli.NewCmdProgress())
	cmd.AddCommand(cli.NewCmdResolve())
	cmd.AddCommand(cli.NewCmdReply())
	cmd.AddCommand(cli.NewCmdVersion())

	return cmd
}
