package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/campushub/admin-console/internal/registry"
)

type EditOptions struct {
	GlobalOptions

	Set     []string
	SetList []string
	Attach  string
}

func DefaultEditOptions() *EditOptions {
	return &EditOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdEdit() *cobra.Command {
	o := DefaultEditOptions()
	cmd := &cobra.Command{
		Use:   "edit TYPE/ID",
		Short: "Update a resource, overlaying field flags on its current values.",
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

func (o *EditOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringArrayVar(&o.Set, "set", o.Set, "Scalar field as field=value, repeatable.")
	fs.StringArrayVar(&o.SetList, "set-list", o.SetList, "List field as field=delimited values, repeatable.")
	fs.StringVar(&o.Attach, "attach", o.Attach, "File to upload as the kind's attachment.")
}

func (o *EditOptions) Complete(cmd *cobra.Command, args []string) error {
	return o.GlobalOptions.Complete(cmd, args)
}

func (o *EditOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	desc, id, err := registry.ParseKindID(args[0])
	if err != nil {
		return err
	}
	if id == "" {
		return fmt.Errorf("edit takes %s/ID", desc.Kind)
	}
	return nil
}

func (o *EditOptions) Run(ctx context.Context, args []string) error {
	c, err := o.Client()
	if err != nil {
		return err
	}

	desc, id, err := registry.ParseKindID(args[0])
	if err != nil {
		return err
	}
	resource := c.Resource(desc)

	// Pre-populate the form from a fresh read so untouched fields survive
	// the full replacement.
	current, err := resource.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("reading %s/%s: %w", desc.Kind, id, err)
	}

	form := desc.Form(current)
	if err := fillForm(form, o.Set, o.SetList, o.Attach); err != nil {
		return err
	}
	payload, err := form.Submit()
	if err != nil {
		return err
	}

	updated, err := resource.Update(ctx, id, payload)
	if err != nil {
		return fmt.Errorf("updating %s/%s: %w", desc.Kind, id, err)
	}
	fmt.Printf("%s/%s updated\n", desc.Kind, updated.ID)
	return nil
}
