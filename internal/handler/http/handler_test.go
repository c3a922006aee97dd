package http

import (
	"bytes"
	"compress/gzip"
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
	"github.com/mhenke/logbuch/internal/service"
	"github.com/mhenke/logbuch/internal/store"
	"github.com/mhenke/logbuch/internal/utils"
	"github.com/mhenke/logbuch/models"
)

// ─── in-memory repositories ──────────────────────────────────────────────────

type fakeUserRepository struct {
	users  map[string]models.User
	nextID int64
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]models.User{}, nextID: 1}
}

func (f *fakeUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	if _, ok := f.users[user.Login]; ok {
		return models.User{}, store.ErrLoginAlreadyExists
	}
	user.UserID = f.nextID
	f.nextID++
	user.CreatedAt = time.Now()
	f.users[user.Login] = user
	return user, nil
}

func (f *fakeUserRepository) FindUserByLogin(_ context.Context, login string) (models.User, error) {
	user, ok := f.users[login]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	return user, nil
}

type fakeCategoryRepository struct {
	categories []models.Category
	nextID     int64
}

func newFakeCategoryRepository() *fakeCategoryRepository {
	return &fakeCategoryRepository{nextID: 1}
}

func (f *fakeCategoryRepository) CreateCategory(_ context.Context, cat models.Category) (models.Category, error) {
	cat.ID = f.nextID
	f.nextID++
	f.categories = append(f.categories, cat)
	return cat, nil
}

func (f *fakeCategoryRepository) GetCategories(_ context.Context, userID int64) ([]models.Category, error) {
	var out []models.Category
	for _, cat := range f.categories {
		if cat.UserID == userID {
			out = append(out, cat)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepository) CountCategories(_ context.Context, userID int64) (int64, error) {
	var count int64
	for _, cat := range f.categories {
		if cat.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeCategoryRepository) DeleteAllCategories(_ context.Context, userID int64) error {
	kept := f.categories[:0]
	for _, cat := range f.categories {
		if cat.UserID != userID {
			kept = append(kept, cat)
		}
	}
	f.categories = kept
	return nil
}

type fakeEntryRepository struct {
	entries []models.Entry
	nextID  int64
}

func newFakeEntryRepository() *fakeEntryRepository {
	return &fakeEntryRepository{nextID: 1}
}

func (f *fakeEntryRepository) CreateEntry(_ context.Context, entry models.Entry) (models.Entry, error) {
	entry.ID = f.nextID
	f.nextID++
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakeEntryRepository) GetEntries(_ context.Context, userID int64, categoryRef string) ([]models.Entry, error) {
	var out []models.Entry
	for _, entry := range f.entries {
		if entry.UserID != userID {
			continue
		}
		if categoryRef != "" && entry.CategoryRef != categoryRef {
			continue
		}
		out = append(out, entry)
	}
	return out, nil
}

func (f *fakeEntryRepository) DeleteEntry(_ context.Context, userID, entryID int64) error {
	for i, entry := range f.entries {
		if entry.UserID == userID && entry.ID == entryID {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return store.ErrEntryNotFound
}

func (f *fakeEntryRepository) DeleteAllEntries(_ context.Context, userID int64) error {
	kept := f.entries[:0]
	for _, entry := range f.entries {
		if entry.UserID != userID {
			kept = append(kept, entry)
		}
	}
	f.entries = kept
	return nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	log := logger.Nop()
	cfg := config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "logbuch",
		TokenDuration: time.Hour,
	}
	services := &service.Services{
		AuthService:     service.NewAuthService(newFakeUserRepository(), cfg, log),
		CategoryService: service.NewCategoryService(newFakeCategoryRepository(), log),
		EntryService:    service.NewEntryService(newFakeEntryRepository(), log),
	}
	handler := NewHandler(services, log)

	server := httptest.NewServer(handler.Init())
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func registerAndLogin(t *testing.T, server *httptest.Server) string {
	t.Helper()

	resp := doJSON(t, http.MethodPost, server.URL+"/api/auth/register", "", models.User{Login: "test", Password: "secret"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	token, err := utils.ParseBearerToken(resp.Header.Get("Authorization"))
	require.NoError(t, err)
	return token
}

// ─── tests ───────────────────────────────────────────────────────────────────

func TestRegisterAndLogin(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/auth/register", "", models.User{Login: "test", Password: "secret"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Authorization"), "Bearer ")

	resp = doJSON(t, http.MethodPost, server.URL+"/api/auth/login", "", models.User{Login: "test", Password: "secret"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var loginResponse models.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&loginResponse))
	assert.True(t, loginResponse.Success)
	assert.Equal(t, "test", loginResponse.Username)
}

func TestLogin_WrongPassword(t *testing.T) {
	server := newTestServer(t)
	registerAndLogin(t, server)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/auth/login", "", models.User{Login: "test", Password: "wrong"})
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var loginResponse models.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&loginResponse))
	assert.False(t, loginResponse.Success)
}

func TestRegister_DuplicateLogin(t *testing.T) {
	server := newTestServer(t)
	registerAndLogin(t, server)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/auth/register", "", models.User{Login: "test", Password: "other"})
	defer resp.Body.Close()

	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/categories")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandlers_MissingUserID(t *testing.T) {
	log := logger.Nop()
	cfg := config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "logbuch",
		TokenDuration: time.Hour,
	}
	services := &service.Services{
		AuthService:     service.NewAuthService(newFakeUserRepository(), cfg, log),
		CategoryService: service.NewCategoryService(newFakeCategoryRepository(), log),
		EntryService:    service.NewEntryService(newFakeEntryRepository(), log),
	}
	h := NewHandler(services, log)

	// handlers reached without the auth middleware must reject the request
	handlers := map[string]http.HandlerFunc{
		"getCategories":  h.getCategories,
		"createCategory": h.createCategory,
		"getEntries":     h.getEntries,
		"createEntry":    h.createEntry,
		"deleteEntry":    h.deleteEntry,
		"reset":          h.reset,
	}

	for name, handlerFunc := range handlers {
		t.Run(name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			handlerFunc(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		})
	}
}

func TestTraceIDHeader_GeneratedAndEchoed(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/categories")
	require.NoError(t, err)
	resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get("X-Trace-ID"))

	req, err := http.NewRequest(http.MethodGet, server.URL+"/api/categories", nil)
	require.NoError(t, err)
	req.Header.Set("X-Trace-ID", "trace-123")

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "trace-123", resp.Header.Get("X-Trace-ID"))
}

func TestGzipResponse(t *testing.T) {
	server := newTestServer(t)
	token := registerAndLogin(t, server)

	req, err := http.NewRequest(http.MethodGet, server.URL+"/api/categories", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept-Encoding", "gzip")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))

	gzipReader, err := gzip.NewReader(resp.Body)
	require.NoError(t, err)
	defer gzipReader.Close()

	var categories []models.Category
	require.NoError(t, json.NewDecoder(gzipReader).Decode(&categories))
	assert.Len(t, categories, 3)
}

func TestGetCategories_SeedsDefaults(t *testing.T) {
	server := newTestServer(t)
	token := registerAndLogin(t, server)

	resp := doJSON(t, http.MethodGet, server.URL+"/api/categories", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var categories []models.Category
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&categories))

	require.Len(t, categories, 3)
	assert.Equal(t, "Fitness", categories[0].Name)
	assert.Equal(t, "Ernährung", categories[1].Name)
	assert.Equal(t, "Stimmung", categories[2].Name)
}

func TestCreateCategory_Validation(t *testing.T) {
	server := newTestServer(t)
	token := registerAndLogin(t, server)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/categories", token, models.Category{Name: ""})
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEntryLifecycle(t *testing.T) {
	server := newTestServer(t)
	token := registerAndLogin(t, server)

	entry := models.Entry{
		CategoryRef:  "cat_1",
		DisplayText:  "Laufen",
		PrimaryValue: 5,
		Details:      map[string]string{"Aktivität": "Laufen"},
		Timestamp:    time.Now().UnixMilli(),
	}

	resp := doJSON(t, http.MethodPost, server.URL+"/api/entries", token, entry)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var created models.Entry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	require.NotZero(t, created.ID)

	resp = doJSON(t, http.MethodGet, server.URL+"/api/entries?category=cat_1", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var entries []models.Entry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&entries))
	resp.Body.Close()
	require.Len(t, entries, 1)
	assert.Equal(t, "Laufen", entries[0].DisplayText)

	resp = doJSON(t, http.MethodDelete, server.URL+"/api/entries/1", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodDelete, server.URL+"/api/entries/1", token, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestReset_WipesUserData(t *testing.T) {
	server := newTestServer(t)
	token := registerAndLogin(t, server)

	// seed categories, then record one entry
	resp := doJSON(t, http.MethodGet, server.URL+"/api/categories", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, server.URL+"/api/entries", token, models.Entry{CategoryRef: "cat_1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, server.URL+"/api/reset", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var ack models.Ack
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ack))
	resp.Body.Close()
	assert.True(t, ack.Success)

	resp = doJSON(t, http.MethodGet, server.URL+"/api/entries", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var entries []models.Entry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&entries))
	resp.Body.Close()
	assert.Empty(t, entries)

	// the next listing re-seeds the defaults
	resp = doJSON(t, http.MethodGet, server.URL+"/api/categories", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var categories []models.Category
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&categories))
	resp.Body.Close()
	assert.Len(t, categories, 3)
}
