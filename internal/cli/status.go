package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	api "github.com/campushub/admin-console/api/v1alpha1"
	"github.com/campushub/admin-console/internal/console"
	"github.com/campushub/admin-console/internal/registry"
)

// StatusOptions drives one review-workflow transition command. Each command
// is a single forward edge of the kind's status graph; the graph check runs
// locally before any request so a terminal entity is never patched.
type StatusOptions struct {
	GlobalOptions

	Target api.Status
}

func newStatusCmd(use, short string, target api.Status) *cobra.Command {
	o := &StatusOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Target:        target,
	}
	cmd := &cobra.Command{
		Use:   use + " TYPE/ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

func NewCmdAccept() *cobra.Command {
	return newStatusCmd("accept", "Accept a pending application.", api.StatusAccepted)
}

func NewCmdReject() *cobra.Command {
	return newStatusCmd("reject", "Reject a pending application.", api.StatusRejected)
}

func NewCmdProgress() *cobra.Command {
	return newStatusCmd("progress", "Mark a new enquiry as in progress.", api.StatusInProgress)
}

func NewCmdResolve() *cobra.Command {
	return newStatusCmd("resolve", "Resolve an in-progress enquiry.", api.StatusResolved)
}

func (o *StatusOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	desc, id, err := registry.ParseKindID(args[0])
	if err != nil {
		return err
	}
	if id == "" {
		return fmt.Errorf("expected %s/ID", desc.Kind)
	}
	if !desc.HasStatus() {
		return fmt.Errorf("%s has no review workflow", desc.Kind)
	}
	return nil
}

func (o *StatusOptions) Run(ctx context.Context, args []string) error {
	c, err := o.Client()
	if err != nil {
		return err
	}

	desc, id, err := registry.ParseKindID(args[0])
	if err != nil {
		return err
	}
	resource := c.Resource(desc)

	entity, err := resource.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("reading %s/%s: %w", desc.Kind, id, err)
	}
	if err := console.Transition(ctx, resource, desc.Graph, entity, o.Target); err != nil {
		return fmt.Errorf("updating %s/%s: %w", desc.Kind, id, err)
	}
	fmt.Printf("%s/%s is now %s\n", desc.Kind, id, entity.Status)
	return nil
}

// ReplyOptions prints the mail composer link for a ticket entity. Replying
// is a side channel: it never changes the ticket's status, operators run
// progress/resolve explicitly.
type ReplyOptions struct {
	GlobalOptions
}

func DefaultReplyOptions() *ReplyOptions {
	return &ReplyOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdReply() *cobra.Command {
	o := DefaultReplyOptions()
	cmd := &cobra.Command{
		Use:   "reply TYPE/ID",
		Short: "Print the mail composer link for an enquiry.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

func (o *ReplyOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	desc, id, err := registry.ParseKindID(args[0])
	if err != nil {
		return err
	}
	if id == "" {
		return fmt.Errorf("expected %s/ID", desc.Kind)
	}
	if !desc.Ticket() {
		return fmt.Errorf("%s has no ticket workflow to reply in", desc.Kind)
	}
	return nil
}

func (o *ReplyOptions) Run(ctx context.Context, args []string) error {
	desc, id, err := registry.ParseKindID(args[0])
	if err != nil {
		return err
	}
	c, err := o.Client()
	if err != nil {
		return err
	}
	entity, err := c.Resource(desc).Get(ctx, id)
	if err != nil {
		return fmt.Errorf("reading %s/%s: %w", desc.Kind, id, err)
	}
	if entity.Field("email") == "" {
		return fmt.Errorf("%s/%s has no email to reply to", desc.Kind, id)
	}
	fmt.Println(mailtoURL(entity))
	return nil
}
