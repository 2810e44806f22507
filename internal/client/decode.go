package client

import (
	"encoding/json"
	"strconv"
	"time"

	api "github.com/campushub/admin-console/api/v1alpha1"
	"github.com/campushub/admin-console/internal/registry"
)

// decodeEntity validates one backend JSON object against the kind's
// descriptor and projects it into the generic Entity. Anything outside the
// declared shape fails fast with an ErrValidation here, at the client
// boundary, instead of propagating an undefined value into a screen.
func decodeEntity(d *registry.Descriptor, raw json.RawMessage) (*api.Entity, error) {
	op := "decoding " + d.Kind

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, NewErrValidation(op, "response is not an object")
	}

	e := &api.Entity{
		Kind:       d.Kind,
		Fields:     make(map[string]string, len(d.Fields)),
		ListFields: make(map[string][]string, len(d.Lists)),
	}

	// The backend uses Mongo-style "_id"; accept plain "id" too.
	for _, key := range []string{"_id", "id"} {
		if v, ok := obj[key]; ok {
			if err := json.Unmarshal(v, &e.ID); err != nil {
				return nil, NewErrValidation(op, "id is not a string")
			}
			break
		}
	}
	if e.ID == "" {
		return nil, NewErrValidation(op, "entity has no id")
	}

	for _, spec := range d.Fields {
		v, ok := obj[spec.Name]
		if !ok {
			continue
		}
		s, err := scalarToString(v)
		if err != nil {
			return nil, NewErrValidation(op, "field "+spec.Name+" is not a scalar")
		}
		e.Fields[spec.Name] = s
	}

	for _, spec := range d.Lists {
		v, ok := obj[spec.Name]
		if !ok {
			continue
		}
		var items []string
		if err := json.Unmarshal(v, &items); err != nil {
			return nil, NewErrValidation(op, "field "+spec.Name+" is not a string array")
		}
		e.ListFields[spec.Name] = items
	}

	if d.AttachmentPart != "" {
		if v, ok := obj[d.AttachmentPart]; ok {
			if err := json.Unmarshal(v, &e.Attachment); err != nil {
				return nil, NewErrValidation(op, "attachment reference is not a string")
			}
		}
	}

	if d.HasStatus() {
		if v, ok := obj["status"]; ok {
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				return nil, NewErrValidation(op, "status is not a string")
			}
			e.Status = api.StringToStatus(s)
			if e.Status == api.StatusNone && s != "" {
				return nil, NewErrValidation(op, "unknown status "+strconv.Quote(s))
			}
		}
		if e.Status == api.StatusNone {
			e.Status = d.Graph.Initial()
		}
	}

	if v, ok := obj["createdAt"]; ok {
		var s string
		if err := json.Unmarshal(v, &s); err == nil && s != "" {
			if t, err := time.Parse(time.RFC3339, s); err == nil {
				e.CreatedAt = &t
			}
		}
	}

	return e, nil
}

// scalarToString coerces a JSON scalar into the console's string
// representation. Objects and arrays in a scalar slot are a schema breach.
func scalarToString(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), nil
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return strconv.FormatBool(b), nil
	}
	if string(raw) == "null" {
		return "", nil
	}
	return "", NewErrValidation("decoding", "value is not a scalar")
}
