package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	api "github.com/campushub/admin-console/api/v1alpha1"
	"github.com/campushub/admin-console/internal/console"
	"github.com/campushub/admin-console/internal/registry"
)

// ResourceClient performs the CRUD and status calls for one entity kind.
// One operation, one request: failures surface immediately to the caller,
// which leaves its prior state unchanged.
type ResourceClient struct {
	client *Client
	desc   *registry.Descriptor
}

// List fetches the whole collection.
func (r *ResourceClient) List(ctx context.Context) ([]api.Entity, error) {
	body, err := r.client.do(ctx, "listing "+r.desc.Kind, r.desc.Kind, "", http.MethodGet, r.desc.Path, "", nil)
	if err != nil {
		return nil, err
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, NewErrValidation("listing "+r.desc.Kind, "response is not a collection")
	}
	entities := make([]api.Entity, 0, len(raw))
	for _, item := range raw {
		e, err := decodeEntity(r.desc, item)
		if err != nil {
			return nil, err
		}
		entities = append(entities, *e)
	}
	return entities, nil
}

// Get fetches one entity by id.
func (r *ResourceClient) Get(ctx context.Context, id string) (*api.Entity, error) {
	body, err := r.client.do(ctx, "reading "+r.desc.Kind, r.desc.Kind, id, http.MethodGet, r.desc.ItemRoute(id), "", nil)
	if err != nil {
		return nil, err
	}
	return decodeEntity(r.desc, body)
}

// Create posts a new entity and returns the backend's copy including its
// assigned id.
func (r *ResourceClient) Create(ctx context.Context, payload *console.Payload) (*api.Entity, error) {
	return r.send(ctx, "creating "+r.desc.Kind, http.MethodPost, r.desc.CreateRoute(), "", payload)
}

// Update replaces an entity's fields.
func (r *ResourceClient) Update(ctx context.Context, id string, payload *console.Payload) (*api.Entity, error) {
	return r.send(ctx, "updating "+r.desc.Kind, http.MethodPut, r.desc.ItemRoute(id), id, payload)
}

// PatchStatus requests one status transition. Legality beyond the console's
// own graph check is enforced server-side; an illegal target comes back as
// an ErrValidation.
func (r *ResourceClient) PatchStatus(ctx context.Context, id string, target api.Status) (*api.Entity, error) {
	if !r.desc.HasStatus() {
		return nil, NewErrValidation("updating status", r.desc.Kind+" has no review status")
	}
	body, err := json.Marshal(api.StatusUpdate{Status: target})
	if err != nil {
		return nil, fmt.Errorf("encoding status update: %w", err)
	}
	respBody, err := r.client.do(ctx, "updating "+r.desc.Kind+" status", r.desc.Kind, id,
		http.MethodPatch, r.desc.StatusRoute(id), "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	if len(respBody) == 0 {
		return nil, nil
	}
	e, err := decodeEntity(r.desc, respBody)
	if err != nil {
		// Some status routes answer with a bare acknowledgement rather
		// than the entity. The transition already succeeded.
		return nil, nil
	}
	return e, nil
}

// Remove deletes the entity. A 404 counts as success so a second call on an
// already-deleted id simply removes nothing further.
func (r *ResourceClient) Remove(ctx context.Context, id string) error {
	_, err := r.client.do(ctx, "deleting "+r.desc.Kind, r.desc.Kind, id, http.MethodDelete, r.desc.ItemRoute(id), "", nil)
	if err != nil && !IsNotFound(err) {
		return err
	}
	return nil
}

func (r *ResourceClient) send(ctx context.Context, op, method, path, id string, payload *console.Payload) (*api.Entity, error) {
	var body io.Reader
	var contentType string
	var err error

	if payload.Multipart() {
		body, contentType, err = multipartBody(payload)
	} else {
		body, contentType, err = jsonBody(payload)
	}
	if err != nil {
		return nil, err
	}

	respBody, err := r.client.do(ctx, op, r.desc.Kind, id, method, path, contentType, body)
	if err != nil {
		return nil, err
	}
	return decodeEntity(r.desc, respBody)
}

func jsonBody(payload *console.Payload) (io.Reader, string, error) {
	fields := make(map[string]any, len(payload.Fields)+len(payload.Lists))
	for k, v := range payload.Fields {
		fields[k] = v
	}
	for k, v := range payload.Lists {
		fields[k] = v
	}
	body, err := json.Marshal(fields)
	if err != nil {
		return nil, "", fmt.Errorf("encoding payload: %w", err)
	}
	return bytes.NewReader(body), "application/json", nil
}

// multipartBody assembles the form the backend expects when a file rides
// along: scalar fields as plain parts, list fields as JSON-encoded strings,
// the file under the kind's part name.
func multipartBody(payload *console.Payload) (io.Reader, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for k, v := range payload.Fields {
		if err := mw.WriteField(k, v); err != nil {
			return nil, "", fmt.Errorf("writing form field: %w", err)
		}
	}
	for k, v := range payload.Lists {
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, "", fmt.Errorf("encoding list field: %w", err)
		}
		if err := mw.WriteField(k, string(encoded)); err != nil {
			return nil, "", fmt.Errorf("writing form field: %w", err)
		}
	}

	f, err := os.Open(payload.FilePath)
	if err != nil {
		return nil, "", fmt.Errorf("opening attachment: %w", err)
	}
	defer f.Close()

	part, err := mw.CreateFormFile(payload.FilePart, filepath.Base(payload.FilePath))
	if err != nil {
		return nil, "", fmt.Errorf("creating form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, "", fmt.Errorf("copying file into multipart: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart writer: %w", err)
	}
	return &buf, mw.FormDataContentType(), nil
}
