package cli

import (
	"bufio"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	api "github.com/campushub/admin-console/api/v1alpha1"
	"github.com/campushub/admin-console/internal/client"
	"github.com/campushub/admin-console/internal/registry"
)

// confirm asks a y/N question on the given streams. Anything but an explicit
// yes declines, and declining must issue zero requests.
func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}

// renderTable prints one page of entities: id, the kind's searchable fields,
// then status and attachment when the kind carries them.
func renderTable(out io.Writer, c *client.Client, d *registry.Descriptor, rows []api.Entity) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)

	header := table.Row{"ID"}
	for _, name := range d.Searchable {
		header = append(header, strings.ToUpper(name))
	}
	if d.HasStatus() {
		header = append(header, "STATUS")
	}
	if d.AttachmentPart != "" {
		header = append(header, "ATTACHMENT")
	}
	header = append(header, "CREATED")
	t.AppendHeader(header)

	for _, e := range rows {
		row := table.Row{e.ID}
		for _, name := range d.Searchable {
			row = append(row, e.Field(name))
		}
		if d.HasStatus() {
			row = append(row, string(e.Status))
		}
		if d.AttachmentPart != "" {
			row = append(row, c.AssetURL(e.Attachment))
		}
		created := ""
		if e.CreatedAt != nil {
			created = e.CreatedAt.Format("2006-01-02")
		}
		row = append(row, created)
		t.AppendRow(row)
	}
	t.Render()
}

// mailtoURL builds the reply composer link for a ticket entity. Spaces are
// percent-encoded: mailto hfields treat "+" as a literal plus sign, so the
// form-style encoding would mangle the subject in most mail clients.
func mailtoURL(e *api.Entity) string {
	link := "mailto:" + e.Field("email")
	if subject := e.Field("subject"); subject != "" {
		link += "?subject=" + mailtoEscape("Re: "+subject)
	}
	return link
}

func mailtoEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// parseSetFlags splits repeated "--set field=value" style arguments.
func parseSetFlags(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		field, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("expected field=value, got %q", pair)
		}
		out[field] = value
	}
	return out, nil
}
