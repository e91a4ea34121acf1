package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ogec-service/internal/app/config"
	"ogec-service/internal/pkg/constvars"
	"ogec-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *client {
	internalConfig := &config.InternalConfig{
		Upstream: config.Upstream{
			BaseURL:          baseURL,
			TimeoutInSeconds: 2,
		},
	}
	return NewClient(internalConfig).(*client)
}

func TestLogin(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/login", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"data":{"user":{"id":7,"name":"Amina","email":"amina@ogec.org","role":"director","status":"active"},"access_token":"upstream-token"}}`))
		}))
		defer server.Close()

		exchange, err := newTestClient(server.URL).Login(context.Background(), "amina@ogec.org", "secret")
		require.NoError(t, err)
		assert.Equal(t, "upstream-token", exchange.AccessToken)
		assert.Equal(t, 7, exchange.User.ID)
		assert.Equal(t, "director", exchange.User.Role)
	})

	t.Run("Invalid credentials keep the login flavor", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Invalid credentials"}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).Login(context.Background(), "amina@ogec.org", "wrong")
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
		assert.Equal(t, "Invalid credentials", customErr.ClientMessage)
	})

	t.Run("401 without message falls back to credential error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).Login(context.Background(), "amina@ogec.org", "wrong")
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.ErrClientInvalidEmailOrPassword, customErr.ClientMessage)
	})

	t.Run("Missing token in response is malformed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":{"user":{"id":7,"name":"Amina","status":"active"}}}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).Login(context.Background(), "amina@ogec.org", "secret")
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
	})

	t.Run("Missing user in response is malformed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":{"access_token":"upstream-token"}}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).Login(context.Background(), "amina@ogec.org", "secret")
		require.Error(t, err)
	})

	t.Run("Unreachable backend is the network class", func(t *testing.T) {
		_, err := newTestClient("http://127.0.0.1:1").Login(context.Background(), "amina@ogec.org", "secret")
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusServiceUnavailable, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientNoResponseFromServer, customErr.ClientMessage)
	})
}

func TestForgotPassword(t *testing.T) {
	t.Run("Relays email without a token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/forgot-password", r.URL.Path)
			assert.Empty(t, r.Header.Get("Authorization"))

			var payload map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "amina@ogec.org", payload["email"])

			w.Write([]byte(`{"message":"reset link sent"}`))
		}))
		defer server.Close()

		err := newTestClient(server.URL).ForgotPassword(context.Background(), "amina@ogec.org")
		require.NoError(t, err)
	})

	t.Run("Upstream rejection surfaces its message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"message":"We can't find a user with that email address."}`))
		}))
		defer server.Close()

		err := newTestClient(server.URL).ForgotPassword(context.Background(), "nobody@ogec.org")
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, "We can't find a user with that email address.", customErr.ClientMessage)
	})
}

func TestCurrentUser(t *testing.T) {
	t.Run("Bearer token attached", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer upstream-token", r.Header.Get("Authorization"))
			w.Write([]byte(`{"id":7,"name":"Amina","email":"amina@ogec.org","role":"director","status":"active"}`))
		}))
		defer server.Close()

		user, err := newTestClient(server.URL).CurrentUser(context.Background(), "upstream-token")
		require.NoError(t, err)
		assert.Equal(t, "Amina", user.Name)
	})

	t.Run("Wrapped user record accepted", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":{"id":7,"name":"Amina","role":"director","status":"active"}}`))
		}))
		defer server.Close()

		user, err := newTestClient(server.URL).CurrentUser(context.Background(), "upstream-token")
		require.NoError(t, err)
		assert.Equal(t, 7, user.ID)
	})

	t.Run("Expired token is the unauthorized class", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Unauthenticated."}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).CurrentUser(context.Background(), "stale")
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientNotLoggedIn, customErr.ClientMessage)
	})
}

func TestList(t *testing.T) {
	t.Run("Paginated envelope flattened", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/enfants", r.URL.Path)
			w.Write([]byte(`{"data":{"data":[{"id":1},{"id":2}],"total":2}}`))
		}))
		defer server.Close()

		data, err := newTestClient(server.URL).List(context.Background(), "token", "enfants")
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":1},{"id":2}]`, string(data))
	})

	t.Run("Upstream message surfaces on rejection", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"message":"The name field is required."}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).List(context.Background(), "token", "enfants")
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusUnprocessableEntity, customErr.StatusCode)
		assert.Equal(t, "The name field is required.", customErr.ClientMessage)
	})
}

func TestUnwrapList(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		expected string
	}{
		{"raw array", `[{"id":1}]`, `[{"id":1}]`},
		{"data array", `{"data":[{"id":1}]}`, `[{"id":1}]`},
		{"paginated", `{"data":{"data":[{"id":1}],"total":1}}`, `[{"id":1}]`},
		{"unexpected shape", `{"message":"ok"}`, `[]`},
		{"scalar data", `{"data":42}`, `[]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.JSONEq(t, tc.expected, string(UnwrapList([]byte(tc.body))))
		})
	}
}

func TestUnwrapData(t *testing.T) {
	assert.JSONEq(t, `{"id":1}`, string(UnwrapData([]byte(`{"data":{"id":1}}`))))
	assert.JSONEq(t, `{"id":1}`, string(UnwrapData([]byte(`{"id":1}`))))
}
