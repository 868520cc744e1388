package apiclient

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internal_errors "github.com/diskominfo-bogor/sipmang/shared/errors"
)

func TestLogin_SurfacesBackendMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/auth/login", r.URL.Path)
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Email atau password salah"}`))
	}))
	defer server.Close()

	_, err := New(server.URL).Login("admin@diskominfo.bogorkab.go.id", "wrong")

	require.Error(t, err)
	apiErr, ok := err.(*internal_errors.ErrorWithStatusCode)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Email atau password salah", apiErr.Message)
}

func TestLogin_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"message":"Login berhasil","admin":{"id":1,"username":"admin","email":"admin@diskominfo.bogorkab.go.id"}}`))
	}))
	defer server.Close()

	resp, err := New(server.URL).Login("admin@diskominfo.bogorkab.go.id", "admin123")

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "admin", resp.Admin.Username)
}

// Every listing call must carry fresh cache-buster parameters so two
// consecutive identical queries never share a URL.
func TestSubmissions_CacheBusters(t *testing.T) {
	var urls []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		urls = append(urls, r.URL.String())
		assert.NotEmpty(t, r.URL.Query().Get("t"))
		assert.NotEmpty(t, r.URL.Query().Get("cb"))
		assert.Equal(t, "ktp", r.URL.Query().Get("search"))
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.Submissions("ktp", "nama", "ASC")
	require.NoError(t, err)
	_, err = client.Submissions("ktp", "nama", "ASC")
	require.NoError(t, err)

	require.Len(t, urls, 2)
	assert.NotEqual(t, urls[0], urls[1])
}

func TestSubmissions_ErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"Terjadi kesalahan internal server"}`))
	}))
	defer server.Close()

	_, err := New(server.URL).Submissions("", "", "")

	require.Error(t, err)
	apiErr, ok := err.(*internal_errors.ErrorWithStatusCode)
	require.True(t, ok)
	assert.Equal(t, "Terjadi kesalahan internal server", apiErr.Message)
}
