package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"solarsavers/internal/domain/entity"
	domainerrors "solarsavers/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClientWithHTTP(srv.URL+"/", &http.Client{Timeout: 2 * time.Second}, slog.Default())
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestClient_Login(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		_, err := uuid.Parse(r.Header.Get(HeaderRequestID))
		assert.NoError(t, err)

		var creds entity.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "asha@example.com", creds.Email)

		writeJSON(w, http.StatusOK, entity.AuthResult{
			AccessToken: "tok",
			TokenType:   "bearer",
			User:        entity.User{ID: "u1", Email: creds.Email, Name: "Asha", Role: entity.RoleCustomer},
		})
	})

	res, err := client.Login(context.Background(), entity.Credentials{Email: "asha@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "tok", res.AccessToken)
	assert.Equal(t, entity.RoleCustomer, res.User.Role)
}

func TestClient_LoginRejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid credentials"})
	})

	_, err := client.Login(context.Background(), entity.Credentials{Email: "a@b.com", Password: "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, "Invalid credentials", statusErr.Detail)
}

func TestClient_BearerUnauthorizedNotifies(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer stale", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Token expired"})
	})

	var calls atomic.Int32
	client.OnUnauthorized(func(context.Context) { calls.Add(1) })

	_, err := client.Me(context.Background(), "stale")
	assert.True(t, errors.Is(err, domainerrors.ErrSessionExpired))
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"not found", http.StatusNotFound, `{"detail":"Product not found"}`, domainerrors.ErrNotFound},
		{"forbidden", http.StatusForbidden, `{"detail":"Admin access required"}`, domainerrors.ErrForbidden},
		{"server error", http.StatusInternalServerError, `oops`, domainerrors.ErrRemoteUnavailable},
		{"account exists", http.StatusBadRequest, `{"detail":"Email already registered"}`, domainerrors.ErrAccountExists},
		{"unprocessable", http.StatusUnprocessableEntity, `{"detail":[{"msg":"field required"}]}`, domainerrors.ErrRemoteRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.GetProduct(context.Background(), "p1")
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestClient_ValidationDetailList(t *testing.T) {
	assert.Equal(t, "field required; value is not a valid email", parseDetail([]byte(`{"detail":[{"msg":"field required"},{"msg":"value is not a valid email"}]}`)))
	assert.Equal(t, "", parseDetail([]byte(`not json`)))
}

func TestClient_TransportFailure(t *testing.T) {
	client := NewClientWithHTTP("http://127.0.0.1:1", &http.Client{Timeout: time.Second}, slog.Default())

	_, err := client.FeaturedProducts(context.Background())
	assert.True(t, errors.Is(err, domainerrors.ErrRemoteUnavailable))
}

func TestClient_ProductQueryAndTicketParams(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		switch r.URL.Path {
		case "/api/products":
			writeJSON(w, http.StatusOK, []entity.Product{{ID: "p1", Name: "Panel"}})
		case "/api/admin/tickets/t1/priority":
			assert.Equal(t, http.MethodPut, r.Method)
			writeJSON(w, http.StatusOK, entity.Message{Message: "ok"})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	products, err := client.ListProducts(context.Background(), entity.ProductFilter{Category: "home", MaxPrice: 50000})
	require.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "category=home&max_price=50000", gotQuery)

	require.NoError(t, client.UpdateTicketPriority(context.Background(), "tok", "t1", "high"))
	assert.Equal(t, "priority=high", gotQuery)
}

func TestClient_MalformedResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":`))
	})

	_, err := client.Me(context.Background(), "tok")
	assert.True(t, errors.Is(err, domainerrors.ErrRemoteRejected))
}

func TestClient_MeRejectsIncompleteIdentity(t *testing.T) {
	bodies := map[string]string{
		"empty body":   "",
		"empty object": "{}",
		"null":         "null",
		"missing id":   `{"email":"a@b.com","role":"customer"}`,
		"unknown role": `{"id":"u1","role":"root"}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(body))
			})

			user, err := client.Me(context.Background(), "tok")
			assert.Nil(t, user)
			assert.True(t, errors.Is(err, domainerrors.ErrRemoteRejected))
		})
	}
}

func TestClient_LoginRejectsIncompleteReply(t *testing.T) {
	bodies := map[string]string{
		"empty body":      "",
		"missing token":   `{"user":{"id":"u1","role":"customer"}}`,
		"missing user id": `{"access_token":"tok","user":{"role":"customer"}}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(body))
			})

			res, err := client.Login(context.Background(), entity.Credentials{Email: "a@b.com", Password: "x"})
			assert.Nil(t, res)
			assert.True(t, errors.Is(err, domainerrors.ErrRemoteRejected))

			res, err = client.Register(context.Background(), entity.Registration{Name: "A", Email: "a@b.com", Password: "secret1"})
			assert.Nil(t, res)
			assert.True(t, errors.Is(err, domainerrors.ErrRemoteRejected))
		})
	}
}
