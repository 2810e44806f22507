package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/campushub/admin-console/internal/registry"
)

type DeleteOptions struct {
	GlobalOptions

	Yes bool

	in  io.Reader
	out io.Writer
}

func DefaultDeleteOptions() *DeleteOptions {
	return &DeleteOptions{
		GlobalOptions: DefaultGlobalOptions(),
		in:            os.Stdin,
		out:           os.Stdout,
	}
}

func NewCmdDelete() *cobra.Command {
	o := DefaultDeleteOptions()
	cmd := &cobra.Command{
		Use:   "delete TYPE/ID",
		Short: "Delete a resource after confirmation.",
		Args:  cobra.ExactArgs(1),
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

func (o *DeleteOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.BoolVarP(&o.Yes, "yes", "y", o.Yes, "Skip the confirmation prompt.")
}

func (o *DeleteOptions) Complete(cmd *cobra.Command, args []string) error {
	return o.GlobalOptions.Complete(cmd, args)
}

func (o *DeleteOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	desc, id, err := registry.ParseKindID(args[0])
	if err != nil {
		return err
	}
	if id == "" {
		return fmt.Errorf("delete takes %s/ID", desc.Kind)
	}
	return nil
}

func (o *DeleteOptions) Run(ctx context.Context, args []string) error {
	desc, id, err := registry.ParseKindID(args[0])
	if err != nil {
		return err
	}

	// Confirmation precedes everything: declining issues no request at all.
	if !o.Yes {
		ok, err := confirm(o.in, o.out, fmt.Sprintf("delete %s/%s?", desc.Kind, id))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(o.out, "aborted")
			return nil
		}
	}

	c, err := o.Client()
	if err != nil {
		return err
	}
	if err := c.Resource(desc).Remove(ctx, id); err != nil {
		return fmt.Errorf("deleting %s/%s: %w", desc.Kind, id, err)
	}
	fmt.Fprintf(o.out, "%s/%s deleted\n", desc.Kind, id)
	return nil
}
