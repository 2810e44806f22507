package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/campushub/admin-console/internal/registry"
)

type CreateOptions struct {
	GlobalOptions

	Set     []string
	SetList []string
	Attach  string
}

func DefaultCreateOptions() *CreateOptions {
	return &CreateOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdCreate() *cobra.Command {
	o := DefaultCreateOptions()
	cmd := &cobra.Command{
		Use:     "create TYPE",
		Short:   "Create a resource from field flags.",
		Example: "create course --set title=Go101 --set instructor=Ada --set-list \"prerequisites=CS1, CS2\" --attach photo.png",
		Args:    cobra.ExactArgs(1),
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

func (o *CreateOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringArrayVar(&o.Set, "set", o.Set, "Scalar field as field=value, repeatable.")
	fs.StringArrayVar(&o.SetList, "set-list", o.SetList, "List field as field=delimited values, repeatable.")
	fs.StringVar(&o.Attach, "attach", o.Attach, "File to upload as the kind's attachment.")
}

func (o *CreateOptions) Complete(cmd *cobra.Command, args []string) error {
	return o.GlobalOptions.Complete(cmd, args)
}

func (o *CreateOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	desc, id, err := registry.ParseKindID(args[0])
	if err != nil {
		return err
	}
	if id != "" {
		return fmt.Errorf("create takes a kind, not %s/%s", desc.Kind, id)
	}
	return nil
}

func (o *CreateOptions) Run(ctx context.Context, args []string) error {
	c, err := o.Client()
	if err != nil {
		return err
	}

	desc, _, err := registry.ParseKindID(args[0])
	if err != nil {
		return err
	}

	form := desc.Form(nil)
	if err := fillForm(form, o.Set, o.SetList, o.Attach); err != nil {
		return err
	}
	payload, err := form.Submit()
	if err != nil {
		return err
	}

	created, err := c.Resource(desc).Create(ctx, payload)
	if err != nil {
		return fmt.Errorf("creating %s: %w", desc.Kind, err)
	}
	fmt.Printf("%s/%s created\n", desc.Kind, created.ID)
	return nil
}

// fillForm overlays --set/--set-list pairs and the staged attachment onto a
// form. Used by create and edit.
func fillForm(form interface {
	Set(name, value string) error
	AttachFile(path string) error
}, set, setList []string, attach string) error {
	scalars, err := parseSetFlags(set)
	if err != nil {
		return err
	}
	for field, value := range scalars {
		if err := form.Set(field, value); err != nil {
			return err
		}
	}
	lists, err := parseSetFlags(setList)
	if err != nil {
		return err
	}
	for field, value := range lists {
		if err := form.Set(field, value); err != nil {
			return err
		}
	}
	if attach != "" {
		if err := form.AttachFile(attach); err != nil {
			return err
		}
	}
	return nil
}
