package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/yourorg/stocksnap/internal/auth"
	"github.com/yourorg/stocksnap/internal/model"
	"github.com/yourorg/stocksnap/internal/repository"
	"github.com/yourorg/stocksnap/internal/search"
	"github.com/yourorg/stocksnap/internal/service"
	"github.com/yourorg/stocksnap/internal/storage"
	"github.com/yourorg/stocksnap/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"
)

const testAdminKey = "s3cret-admin"

type recordingClipboard struct {
	text string
}

func (c *recordingClipboard) WriteText(ctx context.Context, text string) error {
	c.text = text
	return nil
}

type testEnv struct {
	router    *gin.Engine
	sessions  *service.SessionService
	store     *storage.MemoryStore
	clipboard *recordingClipboard
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zaptest.NewLogger(t)
	catalog := repository.NewMockCatalog(logger)
	companies, err := catalog.Companies(context.Background())
	require.NoError(t, err)

	index, err := search.NewDiscoverIndex(companies, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = index.Close() })

	store := storage.NewMemoryStore()
	searchService := service.NewSearchService(catalog, index, logger)
	sessions := service.NewSessionService(store, "stockanalyzer_user", catalog, nil, logger)
	onePagers := service.NewOnePagerService(catalog, logger)
	clip := &recordingClipboard{}
	shares := service.NewShareService(catalog, service.UnsupportedSharer{}, clip, "http://example.test", time.Hour, logger)
	navigator := view.NewNavigator(searchService, sessions, 0, logger)
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminKey), bcrypt.MinCost)
	require.NoError(t, err)

	router := SetupRouter(Handlers{
		Company:  NewCompanyHandler(searchService, onePagers, shares, 10, logger),
		Session:  NewSessionHandler(sessions, navigator, issuer, logger),
		Favorite: NewFavoriteHandler(sessions, logger),
		View:     NewViewHandler(navigator, logger),
		Admin:    NewAdminHandler(sessions, logger),
	}, RouterConfig{
		Sessions:     sessions,
		Issuer:       issuer,
		AdminKeyHash: string(hash),
	}, logger)

	return &testEnv{
		router:    router,
		sessions:  sessions,
		store:     store,
		clipboard: clip,
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// login signs in a test user and returns the bearer header
func (e *testEnv) login(t *testing.T) map[string]string {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/v1/session/login", model.Identity{
		ID:    "u1",
		Email: "ann@example.com",
		Name:  "Ann",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.LoginResponse
	decode(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return map[string]string{"Authorization": "Bearer " + resp.Token}
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
