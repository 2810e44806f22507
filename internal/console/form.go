package console

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	api "github.com/campushub/admin-console/api/v1alpha1"
)

// FieldSpec describes one scalar attribute of a kind.
type FieldSpec struct {
	Name     string
	Required bool
}

// ListFieldSpec describes one ordered list attribute and the delimiter its
// edit-form representation splits and joins on.
type ListFieldSpec struct {
	Name      string
	Delimiter string
}

var validate = validator.New()

// Form is the edit dialog's state: a flat map of string values, one per
// scalar or list attribute, plus an optionally staged attachment file. The
// form never talks to the backend itself; Submit hands a normalized Payload
// back to the caller.
type Form struct {
	fields         []FieldSpec
	lists          []ListFieldSpec
	attachmentPart string

	values   map[string]string
	filePath string
}

// NewForm opens the dialog. A nil initial entity resets every value to its
// zero ("add" mode); otherwise scalars are copied in and each list field is
// joined with its delimiter for display and editing.
func NewForm(fields []FieldSpec, lists []ListFieldSpec, attachmentPart string, initial *api.Entity) *Form {
	f := &Form{
		fields:         fields,
		lists:          lists,
		attachmentPart: attachmentPart,
		values:         make(map[string]string, len(fields)+len(lists)),
	}
	for _, spec := range fields {
		f.values[spec.Name] = ""
	}
	for _, spec := range lists {
		f.values[spec.Name] = ""
	}
	if initial != nil {
		for _, spec := range fields {
			f.values[spec.Name] = initial.Field(spec.Name)
		}
		for _, spec := range lists {
			f.values[spec.Name] = JoinList(initial.ListFields[spec.Name], spec.Delimiter)
		}
	}
	return f
}

// Set writes one form value. Unknown field names are rejected so a typo in
// a caller never silently drops input.
func (f *Form) Set(name, value string) error {
	if _, ok := f.values[name]; !ok {
		return fmt.Errorf("unknown field %q", name)
	}
	f.values[name] = value
	return nil
}

// Value reads one form value.
func (f *Form) Value(name string) string {
	return f.values[name]
}

// AttachFile stages a file for upload. Kinds whose backend schema has no
// multipart part reject attachments outright.
func (f *Form) AttachFile(path string) error {
	if f.attachmentPart == "" {
		return fmt.Errorf("this kind does not take a file attachment")
	}
	f.filePath = path
	return nil
}

// Payload is the normalized result of a form submission, ready for the
// resource client. When FilePath is set the client assembles a multipart
// body with the file under FilePart; otherwise a plain JSON field map goes
// out.
type Payload struct {
	Fields   map[string]string
	Lists    map[string][]string
	FilePath string
	FilePart string
}

// Multipart reports whether a file was staged.
func (p *Payload) Multipart() bool {
	return p.FilePath != ""
}

// Submit enforces the required-field gate and normalizes list values. A
// blank required field aborts here, before any payload exists, so no network
// request can be issued for it. Scalars pass through unchanged; each list
// value is split on its delimiter, trimmed, and stripped of empty segments.
func (f *Form) Submit() (*Payload, error) {
	for _, spec := range f.fields {
		if !spec.Required {
			continue
		}
		if err := validate.Var(strings.TrimSpace(f.values[spec.Name]), "required"); err != nil {
			return nil, fmt.Errorf("field %q is required", spec.Name)
		}
	}

	p := &Payload{
		Fields: make(map[string]string, len(f.fields)),
		Lists:  make(map[string][]string, len(f.lists)),
	}
	for _, spec := range f.fields {
		p.Fields[spec.Name] = f.values[spec.Name]
	}
	for _, spec := range f.lists {
		p.Lists[spec.Name] = SplitList(f.values[spec.Name], spec.Delimiter)
	}
	if f.filePath != "" {
		p.FilePath = f.filePath
		p.FilePart = f.attachmentPart
	}
	return p, nil
}

// SplitList turns a delimited edit-form string back into the stored array:
// split on the delimiter, trim each segment, drop empties. Together with
// JoinList this round-trips any array modulo whitespace.
func SplitList(s, delimiter string) []string {
	sep := strings.TrimSpace(delimiter)
	if sep == "" {
		sep = delimiter
	}
	var out []string
	for _, seg := range strings.Split(s, sep) {
		seg = strings.TrimSpace(seg)
		if seg != "" {
			out = append(out, seg)
		}
	}
	return out
}

// JoinList renders a stored array for display in an edit form.
func JoinList(items []string, delimiter string) string {
	return strings.Join(items, delimiter)
}
