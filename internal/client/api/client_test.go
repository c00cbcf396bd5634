package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgapi "github.com/lcchat/lcchat-cli/pkg/api"
)

// fakeTokenSource is a scripted credential slot for tests
type fakeTokenSource struct {
	token       string
	invalidated int
}

func (f *fakeTokenSource) Token(ctx context.Context) (string, error) {
	return f.token, nil
}

func (f *fakeTokenSource) Invalidate(ctx context.Context) error {
	f.token = ""
	f.invalidated++
	return nil
}

func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8888")

	assert.NotNil(t, client)
	assert.Equal(t, "http://localhost:8888", client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, DefaultRequestTimeout, client.httpClient.Timeout)
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	client := NewClient("http://localhost:8888/")
	assert.Equal(t, "http://localhost:8888", client.baseURL)
}

func TestClient_AuthorizationHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(pkgapi.GetProfileResponse{Code: 200, Msg: "success"})
	}))
	defer server.Close()

	t.Run("header set when credential stored", func(t *testing.T) {
		tokens := &fakeTokenSource{token: "T1"}
		client := NewClient(server.URL, WithTokenSource(tokens))

		_, err := client.GetProfile(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Bearer T1", gotAuth)
	})

	t.Run("no header when slot empty", func(t *testing.T) {
		tokens := &fakeTokenSource{}
		client := NewClient(server.URL, WithTokenSource(tokens))

		_, err := client.GetProfile(context.Background())
		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})

	t.Run("no header without token source", func(t *testing.T) {
		client := NewClient(server.URL)

		_, err := client.GetProfile(context.Background())
		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})
}

func TestClient_RequestIDHeader(t *testing.T) {
	ids := make(map[string]bool)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids[r.Header.Get(HeaderRequestID)] = true
		_ = json.NewEncoder(w).Encode(pkgapi.GetProfileResponse{Code: 200})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	for i := 0; i < 3; i++ {
		_, err := client.GetProfile(context.Background())
		require.NoError(t, err)
	}

	assert.Len(t, ids, 3)
	assert.NotContains(t, ids, "")
}

func TestClient_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	tokens := &fakeTokenSource{token: "stale"}
	expired := 0
	client := NewClient(server.URL,
		WithTokenSource(tokens),
		WithSessionExpiredFunc(func() { expired++ }),
	)

	_, err := client.GetProfile(context.Background())
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))

	// Credential evicted and subscriber notified exactly once
	assert.Empty(t, tokens.token)
	assert.Equal(t, 1, tokens.invalidated)
	assert.Equal(t, 1, expired)
}

func TestClient_Unauthorized_WithoutSubscriber(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	tokens := &fakeTokenSource{token: "stale"}
	client := NewClient(server.URL, WithTokenSource(tokens))

	_, err := client.GetProfile(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, tokens.invalidated)
}

func TestClient_TransportFailures(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{name: "server error", statusCode: http.StatusInternalServerError},
		{name: "not found", statusCode: http.StatusNotFound},
		{name: "bad request", statusCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			tokens := &fakeTokenSource{token: "T1"}
			client := NewClient(server.URL, WithTokenSource(tokens))

			_, err := client.GetProfile(context.Background())
			require.Error(t, err)

			var statusErr *StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, tt.statusCode, statusErr.StatusCode)
			assert.False(t, IsUnauthorized(err))

			// Only 401 evicts the credential
			assert.Equal(t, "T1", tokens.token)
			assert.Zero(t, tokens.invalidated)
		})
	}
}

func TestClient_EnvelopeNotInspected(t *testing.T) {
	// An application-level failure inside a 2xx response is returned to
	// the caller untouched; checking the code is the caller's job.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(pkgapi.GetProfileResponse{Code: 500, Msg: "boom"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.GetProfile(context.Background())

	require.NoError(t, err)
	assert.False(t, resp.OK())
	assert.Equal(t, 500, resp.Code)
	assert.Equal(t, "boom", resp.Msg)
}

func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/user/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req pkgapi.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "email", req.IdentifyType)
		assert.Equal(t, "a@b.com", req.Identifier)
		assert.Equal(t, "123456", req.VerifyCode)

		_ = json.NewEncoder(w).Encode(pkgapi.LoginResponse{
			Code: 200,
			Msg:  "success",
			Data: pkgapi.LoginData{
				Token:     "T1",
				TokenType: "Bearer",
				ExpiresIn: 3600,
				Profile:   pkgapi.Profile{Username: "alice"},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.Login(context.Background(), pkgapi.LoginRequest{
		IdentifyType: "email",
		Identifier:   "a@b.com",
		VerifyCode:   "123456",
	})

	require.NoError(t, err)
	require.True(t, resp.OK())
	assert.Equal(t, "T1", resp.Data.Token)
	assert.Equal(t, "alice", resp.Data.Profile.Username)
}

func TestClient_DeleteContact_Path(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/contact/42", r.URL.Path)
		_ = json.NewEncoder(w).Encode(pkgapi.DeleteContactResponse{Code: 200, Data: "deleted"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.DeleteContact(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, "deleted", resp.Data)
}

func TestClient_MarkAllRead_MethodAndPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/contactApply/read-all", r.URL.Path)
		_ = json.NewEncoder(w).Encode(pkgapi.MarkAllReadResponse{Code: 200})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.MarkAllRead(context.Background())
	require.NoError(t, err)
}

func TestClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(server.URL, WithTimeout(50*time.Millisecond))

	_, err := client.GetProfile(context.Background())
	require.Error(t, err)

	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr), "timeout is not a status error")
}
