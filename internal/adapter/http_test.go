package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhenke/logbuch/internal/config"
	"github.com/mhenke/logbuch/internal/logger"
	"github.com/mhenke/logbuch/models"
)

func newTestAdapter(t *testing.T, handler http.Handler) ServerAdapter {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    server.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return a
}

func Test_normalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "plain host gets scheme", in: "localhost:8080", want: "http://localhost:8080"},
		{name: "full url kept", in: "https://api.example.com/", want: "https://api.example.com"},
		{name: "empty rejected", in: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHTTPServerAdapter_Login_StoresToken(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var user models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&user))
		assert.Equal(t, "test", user.Login)

		w.Header().Set("Authorization", "Bearer token-123")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.LoginResponse{Success: true, Username: "test"})
	}))

	loginResponse, err := a.Login(context.Background(), models.User{Login: "test", Password: "secret"})

	require.NoError(t, err)
	assert.True(t, loginResponse.Success)
	assert.Equal(t, "test", loginResponse.Username)
	assert.Equal(t, "token-123", a.Token())
}

func TestHTTPServerAdapter_Login_Unauthorized(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(models.LoginResponse{Success: false})
	}))

	_, err := a.Login(context.Background(), models.User{Login: "test", Password: "wrong"})

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

func TestHTTPServerAdapter_Categories_SendsBearerToken(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode([]models.Category{
			{ID: 1, Name: "Fitness", SpecialType: models.SpecialTypeFitness},
		})
	}))
	a.SetToken("token-123")

	categories, err := a.Categories(context.Background())

	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Fitness", categories[0].Name)
}

func TestHTTPServerAdapter_Entries_CategoryFilter(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "cat_2", r.URL.Query().Get("category"))
		json.NewEncoder(w).Encode([]models.Entry{{ID: 1, CategoryRef: "cat_2"}})
	}))
	a.SetToken("token-123")

	entries, err := a.Entries(context.Background(), "cat_2")

	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestHTTPServerAdapter_DeleteEntry_NotFound(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/entries/99", r.URL.Path)
		http.Error(w, "entry not found", http.StatusNotFound)
	}))
	a.SetToken("token-123")

	err := a.DeleteEntry(context.Background(), 99)

	require.ErrorIs(t, err, ErrNotFound)
}

func TestHTTPServerAdapter_Reset(t *testing.T) {
	var called bool
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/reset", r.URL.Path)
		json.NewEncoder(w).Encode(models.Ack{Success: true})
	}))
	a.SetToken("token-123")

	require.NoError(t, a.Reset(context.Background()))
	assert.True(t, called)
}
