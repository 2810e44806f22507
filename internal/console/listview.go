// Package console implements the generic screen machinery every admin kind
// shares: the list view (free-text filter plus fixed-size pagination over an
// in-memory collection), the detail/edit form, and the status workflow.
package console

import (
	"strings"

	api "github.com/campushub/admin-console/api/v1alpha1"
)

// PageSize is the fixed number of rows per rendered page.
const PageSize = 10

// ListView owns the three pieces of list-screen state: the full fetched
// collection, the search term, and the 1-based page. The visible page is a
// pure function of the three. The collection is a local cache: last client
// write wins locally, the server is authoritative on the next fetch.
type ListView struct {
	searchable []string
	entities   []api.Entity
	term       string
	page       int
}

// NewListView builds a view matching the search term against the given
// scalar field names.
func NewListView(searchable []string) *ListView {
	return &ListView{searchable: searchable, page: 1}
}

// SetEntities replaces the whole collection, e.g. after a list fetch.
func (v *ListView) SetEntities(entities []api.Entity) {
	v.entities = entities
}

// SetSearch installs a new filter term. Any term change resets the page to 1
// so the view never lands on an out-of-range empty page.
func (v *ListView) SetSearch(term string) {
	if term != v.term {
		v.page = 1
	}
	v.term = term
}

// Search returns the current filter term.
func (v *ListView) Search() string {
	return v.term
}

// Page returns the current 1-based page number.
func (v *ListView) Page() int {
	return v.page
}

// SetPage jumps to a page, clamping into [1, TotalPages] (and to 1 when the
// filtered set is empty).
func (v *ListView) SetPage(page int) {
	total := v.TotalPages()
	if page < 1 || total == 0 {
		page = 1
	} else if page > total {
		page = total
	}
	v.page = page
}

// Next advances one page when HasNext allows it.
func (v *ListView) Next() {
	if v.HasNext() {
		v.page++
	}
}

// Prev steps back one page when HasPrev allows it.
func (v *ListView) Prev() {
	if v.HasPrev() {
		v.page--
	}
}

// HasPrev reports whether the previous-page control is enabled.
func (v *ListView) HasPrev() bool {
	return v.page > 1
}

// HasNext reports whether the next-page control is enabled.
func (v *ListView) HasNext() bool {
	return v.page < v.TotalPages()
}

// Visible returns the filtered collection in its stored order.
func (v *ListView) Visible() []api.Entity {
	if v.term == "" {
		return v.entities
	}
	var out []api.Entity
	for _, e := range v.entities {
		if v.matches(&e) {
			out = append(out, e)
		}
	}
	return out
}

func (v *ListView) matches(e *api.Entity) bool {
	term := strings.ToLower(v.term)
	for _, name := range v.searchable {
		if strings.Contains(strings.ToLower(e.Field(name)), term) {
			return true
		}
	}
	return false
}

// TotalPages is ceil(len(visible) / PageSize); 0 for an empty filtered set.
func (v *ListView) TotalPages() int {
	return (len(v.Visible()) + PageSize - 1) / PageSize
}

// PageSlice returns the rows of the current page.
func (v *ListView) PageSlice() []api.Entity {
	visible := v.Visible()
	start := (v.page - 1) * PageSize
	if start >= len(visible) {
		return nil
	}
	end := start + PageSize
	if end > len(visible) {
		end = len(visible)
	}
	return visible[start:end]
}

// Upsert merges a saved entity into the cache: replaces the entry with the
// same id, appends otherwise. This is the success path of a create or edit.
func (v *ListView) Upsert(e api.Entity) {
	for i := range v.entities {
		if v.entities[i].ID == e.ID {
			v.entities[i] = e
			return
		}
	}
	v.entities = append(v.entities, e)
}

// Delete drops the entity by id. Deleting an id that is already gone is a
// no-op, matching the idempotent remove semantics of the client.
func (v *ListView) Delete(id string) {
	for i := range v.entities {
		if v.entities[i].ID == id {
			v.entities = append(v.entities[:i], v.entities[i+1:]...)
			return
		}
	}
}

// SetStatus patches the cached copy's status after a successful transition.
func (v *ListView) SetStatus(id string, status api.Status) {
	for i := range v.entities {
		if v.entities[i].ID == id {
			v.entities[i].Status = status
			return
		}
	}
}

// Get returns the cached entity by id.
func (v *ListView) Get(id string) (*api.Entity, bool) {
	for i := range v.entities {
		if v.entities[i].ID == id {
			return &v.entities[i], true
		}
	}
	return nil, false
}

// Len is the size of the unfiltered collection.
func (v *ListView) Len() int {
	return len(v.entities)
}
