package session

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrboard/internal/apiclient"
	"hrboard/internal/hr"
)

func newTestStore(t *testing.T, baseURL string) (*Store, *FileStore) {
	t.Helper()
	persist := NewFileStore(filepath.Join(t.TempDir(), "session.yaml"))
	client := apiclient.New(baseURL)
	store := NewStore(client, persist, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	client.Tokens = store
	return store, persist
}

func TestInitialize_NoPersistedCredential(t *testing.T) {
	var requests int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
	}))
	t.Cleanup(srv.Close)

	store, _ := newTestStore(t, srv.URL)
	assert.Equal(t, StateUnresolved, store.State())
	assert.False(t, store.Resolved())

	require.NoError(t, store.Initialize(context.Background()))

	assert.Equal(t, StateAnonymous, store.State())
	assert.True(t, store.Resolved())
	assert.Equal(t, int64(0), atomic.LoadInt64(&requests), "no network call without a credential")
}

func TestInitialize_ValidCredential(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/profile", r.URL.Path)
		require.Equal(t, "Bearer stored-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user":{"id":1,"name":"Ada Lovelace","email":"ada@example.com","role":"admin"}}`))
	}))
	t.Cleanup(srv.Close)

	store, persist := newTestStore(t, srv.URL)
	require.NoError(t, persist.Save(&Credentials{Token: "stored-token", User: hr.User{ID: 1}}))

	require.NoError(t, store.Initialize(context.Background()))

	assert.Equal(t, StateAuthenticated, store.State())
	assert.True(t, store.Resolved())
	require.NotNil(t, store.User())
	assert.Equal(t, "Ada Lovelace", store.User().Name)
	assert.Equal(t, "stored-token", store.Token())
}

func TestInitialize_ProfileFetchFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid token"}`))
	}))
	t.Cleanup(srv.Close)

	store, persist := newTestStore(t, srv.URL)
	require.NoError(t, persist.Save(&Credentials{Token: "expired-token", User: hr.User{ID: 1}}))

	require.NoError(t, store.Initialize(context.Background()))

	assert.Equal(t, StateAnonymous, store.State())
	assert.True(t, store.Resolved())
	assert.Nil(t, store.User())
	assert.Empty(t, store.Token())

	creds, err := persist.Load()
	require.NoError(t, err)
	assert.Nil(t, creds, "persisted credential must be cleared")
}

func TestInitialize_ProfileFetchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	store, persist := newTestStore(t, srv.URL)
	require.NoError(t, persist.Save(&Credentials{Token: "token", User: hr.User{ID: 1}}))

	require.NoError(t, store.Initialize(context.Background()))

	assert.Equal(t, StateAnonymous, store.State())
	creds, err := persist.Load()
	require.NoError(t, err)
	assert.Nil(t, creds)
}

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"fresh-token","user":{"id":3,"name":"Grace","email":"grace@example.com","role":"admin"}}`))
	}))
	t.Cleanup(srv.Close)

	store, persist := newTestStore(t, srv.URL)
	require.NoError(t, store.Initialize(context.Background()))

	user, err := store.Login(context.Background(), "grace@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Grace", user.Name)
	assert.Equal(t, StateAuthenticated, store.State())
	assert.Equal(t, "fresh-token", store.Token())

	creds, err := persist.Load()
	require.NoError(t, err)
	require.NotNil(t, creds)
	assert.Equal(t, "fresh-token", creds.Token)
	assert.Equal(t, "Grace", creds.User.Name)
}

func TestLogin_FailureStaysAnonymous(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"invalid credentials"}`))
	}))
	t.Cleanup(srv.Close)

	store, _ := newTestStore(t, srv.URL)
	require.NoError(t, store.Initialize(context.Background()))

	_, err := store.Login(context.Background(), "x@example.com", "nope")
	require.Error(t, err)

	var apiErr *apiclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "invalid credentials", apiErr.Message)
	assert.Equal(t, StateAnonymous, store.State())
	assert.Empty(t, store.Token())
}

func TestRegister_AutoLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/register", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"new-token","user":{"id":9,"name":"New Admin","email":"new@example.com","role":"admin"}}`))
	}))
	t.Cleanup(srv.Close)

	store, _ := newTestStore(t, srv.URL)
	require.NoError(t, store.Initialize(context.Background()))

	user, err := store.Register(context.Background(), RegisterRequest{Name: "New Admin", Email: "new@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, int64(9), user.ID)
	assert.Equal(t, StateAuthenticated, store.State())
	assert.Equal(t, "new-token", store.Token())
}

func TestLogout_ClearsLocallyEvenWhenServerFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	store, persist := newTestStore(t, srv.URL)
	require.NoError(t, persist.Save(&Credentials{Token: "token", User: hr.User{ID: 1, Name: "Ada"}}))

	// Seed an authenticated session directly.
	store.mu.Lock()
	store.state = StateAuthenticated
	store.token = "token"
	store.user = &hr.User{ID: 1, Name: "Ada"}
	store.mu.Unlock()

	store.Logout(context.Background())

	assert.Equal(t, StateAnonymous, store.State())
	assert.Empty(t, store.Token())
	assert.Nil(t, store.User())

	creds, err := persist.Load()
	require.NoError(t, err)
	assert.Nil(t, creds)
}

func TestMidSessionExpiry(t *testing.T) {
	// End-to-end: login, make an authenticated request, then have the server
	// start returning 401. The adapter must clear the session.
	var expired atomic.Bool
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"token":"session-token","user":{"id":1,"name":"Ada"}}`))
		case "/api/employees":
			gotAuth = r.Header.Get("Authorization")
			if expired.Load() {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"message":"jwt expired"}`))
				return
			}
			_, _ = w.Write([]byte(`[]`))
		}
	}))
	t.Cleanup(srv.Close)

	persist := NewFileStore(filepath.Join(t.TempDir(), "session.yaml"))
	client := apiclient.New(srv.URL)
	store := NewStore(client, persist, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	client.Tokens = store

	redirects := 0
	client.OnUnauthorized = func() { redirects++ }

	require.NoError(t, store.Initialize(context.Background()))
	_, err := store.Login(context.Background(), "ada@example.com", "secret")
	require.NoError(t, err)

	resp, err := client.Do(context.Background(), http.MethodGet, "/employees", nil, nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "Bearer session-token", gotAuth)

	expired.Store(true)
	_, err = client.Do(context.Background(), http.MethodGet, "/employees", nil, nil)
	require.Error(t, err)

	assert.Equal(t, StateAnonymous, store.State())
	assert.Empty(t, store.Token())
	assert.Equal(t, 1, redirects)

	creds, err := persist.Load()
	require.NoError(t, err)
	assert.Nil(t, creds)
}

func TestFileStore_RoundTrip(t *testing.T) {
	persist := NewFileStore(filepath.Join(t.TempDir(), "nested", "session.yaml"))

	creds, err := persist.Load()
	require.NoError(t, err)
	assert.Nil(t, creds)

	require.NoError(t, persist.Save(&Credentials{Token: "t", User: hr.User{ID: 4, Name: "Ada", Email: "ada@example.com", Role: "admin"}}))

	loaded, err := persist.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "t", loaded.Token)
	assert.Equal(t, "ada@example.com", loaded.User.Email)

	require.NoError(t, persist.Clear())
	require.NoError(t, persist.Clear())
}
