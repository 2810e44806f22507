package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	api "github.com/campushub/admin-console/api/v1alpha1"
	"github.com/campushub/admin-console/internal/client"
)

var _ = Describe("login", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("exchanges credentials for an admin token", func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			Expect(r.Method).To(Equal(http.MethodPost))
			Expect(r.URL.Path).To(Equal("/api/auth/login"))

			var req api.AuthRequest
			Expect(json.NewDecoder(r.Body).Decode(&req)).To(Succeed())
			Expect(req.Email).To(Equal("admin@campushub.org"))
			Expect(req.Password).To(Equal("hunter2"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"token": "issued-token", "role": "admin"}`))
		}))
		defer server.Close()

		auth, err := client.New(server.URL, "", nil).Login(ctx, "admin@campushub.org", "hunter2")
		Expect(err).NotTo(HaveOccurred())
		Expect(auth.Token).To(Equal("issued-token"))
	})

	It("rejects a token issued for a non-admin role", func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"token": "member-token", "role": "member"}`))
		}))
		defer server.Close()

		_, err := client.New(server.URL, "", nil).Login(ctx, "someone@campushub.org", "pw")
		Expect(client.IsAuth(err)).To(BeTrue())
	})

	It("maps bad credentials to an auth error", func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		_, err := client.New(server.URL, "", nil).Login(ctx, "admin@campushub.org", "wrong")
		Expect(client.IsAuth(err)).To(BeTrue())
	})

	It("rejects a success response with no token", func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"role": "admin"}`))
		}))
		defer server.Close()

		_, err := client.New(server.URL, "", nil).Login(ctx, "admin@campushub.org", "pw")
		Expect(client.IsValidation(err)).To(BeTrue())
	})
})
