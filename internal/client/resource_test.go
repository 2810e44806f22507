package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	api "github.com/campushub/admin-console/api/v1alpha1"
	"github.com/campushub/admin-console/internal/client"
	"github.com/campushub/admin-console/internal/console"
	"github.com/campushub/admin-console/internal/registry"
	"github.com/campushub/admin-console/internal/session"
)

func newClient(server *httptest.Server) *client.Client {
	sess := session.New("", "test-token", "admin@campushub.org")
	return client.New(server.URL, server.URL+"/static", sess)
}

var _ = Describe("resource client", func() {
	var (
		ctx     context.Context
		courses *registry.Descriptor
		inquiry *registry.Descriptor
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		courses, err = registry.Get("course")
		Expect(err).NotTo(HaveOccurred())
		inquiry, err = registry.Get("enquiry")
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("List", func() {
		It("fetches the collection with the session's bearer token", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.Method).To(Equal(http.MethodGet))
				Expect(r.URL.Path).To(Equal("/api/courses"))
				Expect(r.Header.Get("Authorization")).To(Equal("Bearer test-token"))
				Expect(r.Header.Get("X-Request-Id")).NotTo(BeEmpty())

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`[
					{"_id": "c1", "title": "Intro to Go", "instructor": "Asha", "prerequisites": ["none"], "coursePhoto": "uploads/go.png"},
					{"_id": "c2", "title": "Distributed Systems", "instructor": "Ravi", "duration": 12}
				]`))
			}))
			defer server.Close()

			entities, err := newClient(server).Resource(courses).List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(entities).To(HaveLen(2))

			Expect(entities[0].ID).To(Equal("c1"))
			Expect(entities[0].Field("title")).To(Equal("Intro to Go"))
			Expect(entities[0].ListFields["prerequisites"]).To(Equal([]string{"none"}))
			Expect(entities[0].Attachment).To(Equal("uploads/go.png"))

			// Numeric fields come back as their string rendering.
			Expect(entities[1].Field("duration")).To(Equal("12"))
		})

		It("rejects a collection item without an id", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`[{"title": "orphan"}]`))
			}))
			defer server.Close()

			_, err := newClient(server).Resource(courses).List(ctx)
			Expect(err).To(HaveOccurred())
			Expect(client.IsValidation(err)).To(BeTrue())
		})

		It("rejects a response that is not a collection", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"error": "nope"}`))
			}))
			defer server.Close()

			_, err := newClient(server).Resource(courses).List(ctx)
			Expect(client.IsValidation(err)).To(BeTrue())
		})
	})

	Describe("Get", func() {
		It("decodes a single entity and defaults its status to the kind's initial state", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Path).To(Equal("/api/contact/t1"))
				_, _ = w.Write([]byte(`{"_id": "t1", "name": "Priya", "email": "p@x.org", "subject": "billing"}`))
			}))
			defer server.Close()

			e, err := newClient(server).Resource(inquiry).Get(ctx, "t1")
			Expect(err).NotTo(HaveOccurred())
			Expect(e.Status).To(Equal(api.StatusNew))
		})

		It("maps 404 to a not-found error", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			}))
			defer server.Close()

			_, err := newClient(server).Resource(inquiry).Get(ctx, "missing")
			Expect(client.IsNotFound(err)).To(BeTrue())
		})

		It("maps 401 to an auth error", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			}))
			defer server.Close()

			_, err := newClient(server).Resource(inquiry).Get(ctx, "t1")
			Expect(client.IsAuth(err)).To(BeTrue())
		})
	})

	Describe("Create", func() {
		It("posts JSON when no file is attached", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.Method).To(Equal(http.MethodPost))
				Expect(r.Header.Get("Content-Type")).To(Equal("application/json"))

				var got map[string]any
				Expect(json.NewDecoder(r.Body).Decode(&got)).To(Succeed())
				Expect(got["title"]).To(Equal("Intro to Go"))
				Expect(got["prerequisites"]).To(Equal([]any{"curiosity", "a laptop"}))

				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`{"_id": "c9", "title": "Intro to Go", "instructor": "Asha"}`))
			}))
			defer server.Close()

			payload := &console.Payload{
				Fields: map[string]string{"title": "Intro to Go", "instructor": "Asha"},
				Lists:  map[string][]string{"prerequisites": {"curiosity", "a laptop"}},
			}
			e, err := newClient(server).Resource(courses).Create(ctx, payload)
			Expect(err).NotTo(HaveOccurred())
			Expect(e.ID).To(Equal("c9"))
		})

		It("posts multipart with the kind's file part when a file rides along", func() {
			dir := GinkgoT().TempDir()
			photo := filepath.Join(dir, "banner.png")
			Expect(os.WriteFile(photo, []byte("png-bytes"), 0o600)).To(Succeed())

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.ParseMultipartForm(1 << 20)).To(Succeed())
				Expect(r.FormValue("title")).To(Equal("Intro to Go"))

				// List fields travel as JSON-encoded strings.
				var prereqs []string
				Expect(json.Unmarshal([]byte(r.FormValue("prerequisites")), &prereqs)).To(Succeed())
				Expect(prereqs).To(Equal([]string{"none"}))

				f, header, err := r.FormFile("coursePhoto")
				Expect(err).NotTo(HaveOccurred())
				defer f.Close()
				Expect(header.Filename).To(Equal("banner.png"))

				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`{"_id": "c10", "title": "Intro to Go", "coursePhoto": "uploads/banner.png"}`))
			}))
			defer server.Close()

			payload := &console.Payload{
				Fields:   map[string]string{"title": "Intro to Go", "instructor": "Asha"},
				Lists:    map[string][]string{"prerequisites": {"none"}},
				FilePath: photo,
				FilePart: "coursePhoto",
			}
			e, err := newClient(server).Resource(courses).Create(ctx, payload)
			Expect(err).NotTo(HaveOccurred())
			Expect(e.Attachment).To(Equal("uploads/banner.png"))
		})

		It("surfaces a 400 as a validation error", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error": "title is required"}`))
			}))
			defer server.Close()

			payload := &console.Payload{Fields: map[string]string{"instructor": "Asha"}}
			_, err := newClient(server).Resource(courses).Create(ctx, payload)
			Expect(client.IsValidation(err)).To(BeTrue())
		})
	})

	Describe("Update", func() {
		It("issues a PUT against the entity's path", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.Method).To(Equal(http.MethodPut))
				Expect(r.URL.Path).To(Equal("/api/courses/c1"))
				_, _ = w.Write([]byte(`{"_id": "c1", "title": "Advanced Go"}`))
			}))
			defer server.Close()

			payload := &console.Payload{Fields: map[string]string{"title": "Advanced Go"}}
			e, err := newClient(server).Resource(courses).Update(ctx, "c1", payload)
			Expect(err).NotTo(HaveOccurred())
			Expect(e.Field("title")).To(Equal("Advanced Go"))
		})
	})

	Describe("PatchStatus", func() {
		It("patches the status route with the target", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.Method).To(Equal(http.MethodPatch))
				Expect(r.URL.Path).To(Equal("/api/contact/t1/status"))

				var update api.StatusUpdate
				Expect(json.NewDecoder(r.Body).Decode(&update)).To(Succeed())
				Expect(update.Status).To(Equal(api.StatusInProgress))

				_, _ = w.Write([]byte(`{"_id": "t1", "name": "Priya", "email": "p@x.org", "status": "in-progress"}`))
			}))
			defer server.Close()

			e, err := newClient(server).Resource(inquiry).PatchStatus(ctx, "t1", api.StatusInProgress)
			Expect(err).NotTo(HaveOccurred())
			Expect(e.Status).To(Equal(api.StatusInProgress))
		})

		It("tolerates a bare acknowledgement body", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"message": "status updated"}`))
			}))
			defer server.Close()

			e, err := newClient(server).Resource(inquiry).PatchStatus(ctx, "t1", api.StatusResolved)
			Expect(err).NotTo(HaveOccurred())
			Expect(e).To(BeNil())
		})

		It("refuses kinds that carry no review status", func() {
			c := client.New("http://localhost:0", "", session.New("", "test-token", ""))
			_, err := c.Resource(courses).PatchStatus(ctx, "c1", api.StatusAccepted)
			Expect(client.IsValidation(err)).To(BeTrue())
		})
	})

	Describe("route overrides", func() {
		It("posts new mentors to the dedicated registration route", func() {
			mentors, err := registry.Get("mentor")
			Expect(err).NotTo(HaveOccurred())

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.Method).To(Equal(http.MethodPost))
				Expect(r.URL.Path).To(Equal("/api/mentors/add"))
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`{"_id": "m1", "name": "Asha", "email": "asha@x.org"}`))
			}))
			defer server.Close()

			payload := &console.Payload{Fields: map[string]string{"name": "Asha", "email": "asha@x.org"}}
			e, err := newClient(server).Resource(mentors).Create(ctx, payload)
			Expect(err).NotTo(HaveOccurred())
			Expect(e.ID).To(Equal("m1"))
		})

		It("updates and deletes mentors under the admin item base", func() {
			mentors, err := registry.Get("mentor")
			Expect(err).NotTo(HaveOccurred())

			var paths []string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				paths = append(paths, r.Method+" "+r.URL.Path)
				_, _ = w.Write([]byte(`{"_id": "m1", "name": "Asha", "email": "asha@x.org"}`))
			}))
			defer server.Close()

			mc := newClient(server).Resource(mentors)
			payload := &console.Payload{Fields: map[string]string{"name": "Asha", "email": "asha@x.org"}}
			_, err = mc.Update(ctx, "m1", payload)
			Expect(err).NotTo(HaveOccurred())
			Expect(mc.Remove(ctx, "m1")).To(Succeed())
			Expect(paths).To(Equal([]string{
				"PUT /api/mentors/admin/m1",
				"DELETE /api/mentors/admin/m1",
			}))
		})

		It("patches club application status at the item route itself", func() {
			clubs, err := registry.Get("club-application")
			Expect(err).NotTo(HaveOccurred())

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.Method).To(Equal(http.MethodPatch))
				Expect(r.URL.Path).To(Equal("/api/club-partner/club-applications/a1"))

				var update api.StatusUpdate
				Expect(json.NewDecoder(r.Body).Decode(&update)).To(Succeed())
				Expect(update.Status).To(Equal(api.StatusAccepted))

				_, _ = w.Write([]byte(`{"message": "updated"}`))
			}))
			defer server.Close()

			_, err = newClient(server).Resource(clubs).PatchStatus(ctx, "a1", api.StatusAccepted)
			Expect(err).NotTo(HaveOccurred())
		})

		It("lists job applicants from their own collection", func() {
			applicants, err := registry.Get("job-application")
			Expect(err).NotTo(HaveOccurred())

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Path).To(Equal("/api/job-applicants"))
				_, _ = w.Write([]byte(`[]`))
			}))
			defer server.Close()

			entities, err := newClient(server).Resource(applicants).List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(entities).To(BeEmpty())
		})
	})

	Describe("Remove", func() {
		It("deletes the entity", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.Method).To(Equal(http.MethodDelete))
				Expect(r.URL.Path).To(Equal("/api/courses/c1"))
				w.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			Expect(newClient(server).Resource(courses).Remove(ctx, "c1")).To(Succeed())
		})

		It("treats a 404 as already deleted", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			}))
			defer server.Close()

			Expect(newClient(server).Resource(courses).Remove(ctx, "gone")).To(Succeed())
		})

		It("still fails on a server error", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			}))
			defer server.Close()

			Expect(newClient(server).Resource(courses).Remove(ctx, "c1")).NotTo(Succeed())
		})
	})
})
