package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"
	"sigs.k8s.io/yaml"

	"github.com/campushub/admin-console/internal/console"
	"github.com/campushub/admin-console/internal/registry"
)

const (
	jsonFormat = "json"
	yamlFormat = "yaml"
)

var (
	legalOutputTypes = []string{jsonFormat, yamlFormat}
)

type GetOptions struct {
	GlobalOptions

	Output string
	Search string
	Page   int
}

func DefaultGetOptions() *GetOptions {
	return &GetOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Page:          1,
	}
}

func NewCmdGet() *cobra.Command {
	o := DefaultGetOptions()
	cmd := &cobra.Command{
		Use:   "get (TYPE | TYPE/ID)",
		Short: "Display one or many resources.",
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

func (o *GetOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
	fs.StringVarP(&o.Search, "search", "s", o.Search, "Case-insensitive filter on the kind's searchable fields.")
	fs.IntVarP(&o.Page, "page", "p", o.Page, "1-based page of the filtered listing.")
}

func (o *GetOptions) Complete(cmd *cobra.Command, args []string) error {
	return o.GlobalOptions.Complete(cmd, args)
}

func (o *GetOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	if _, _, err := registry.ParseKindID(args[0]); err != nil {
		return err
	}
	if len(o.Output) > 0 && !funk.Contains(legalOutputTypes, o.Output) {
		return fmt.Errorf("output format must be one of %s", strings.Join(legalOutputTypes, ", "))
	}
	return nil
}

func (o *GetOptions) Run(ctx context.Context, args []string) error {
	c, err := o.Client()
	if err != nil {
		return err
	}

	desc, id, err := registry.ParseKindID(args[0])
	if err != nil {
		return err
	}
	resource := c.Resource(desc)

	if id != "" {
		entity, err := resource.Get(ctx, id)
		if err != nil {
			return fmt.Errorf("reading %s/%s: %w", desc.Kind, id, err)
		}
		return printEncoded(entity, o.Output)
	}

	entities, err := resource.List(ctx)
	if err != nil {
		return fmt.Errorf("listing %s: %w", desc.Plural, err)
	}

	if o.Output != "" {
		return printEncoded(entities, o.Output)
	}

	view := console.NewListView(desc.Searchable)
	view.SetEntities(entities)
	view.SetSearch(o.Search)
	view.SetPage(o.Page)

	renderTable(os.Stdout, c, desc, view.PageSlice())
	fmt.Printf("page %d of %d (%d of %d %s)\n",
		view.Page(), view.TotalPages(), len(view.PageSlice()), len(view.Visible()), desc.Plural)
	return nil
}

func printEncoded(v any, format string) error {
	switch format {
	case yamlFormat:
		marshalled, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		fmt.Print(string(marshalled))
	default:
		marshalled, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(marshalled))
	}
	return nil
}
