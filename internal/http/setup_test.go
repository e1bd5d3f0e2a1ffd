package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/groceries/internal/audit"
	"github.com/mrlokans/groceries/internal/database"
	auditRepo "github.com/mrlokans/groceries/internal/database/audit"
	"github.com/mrlokans/groceries/internal/database/groceries"
	"github.com/mrlokans/groceries/internal/database/groceryitems"
	"github.com/mrlokans/groceries/internal/database/items"
	"github.com/mrlokans/groceries/internal/database/itemtypes"
	"github.com/mrlokans/groceries/internal/readonly"
	"github.com/mrlokans/groceries/internal/schemas"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	router *gin.Engine
	db     *database.Database
}

type serverOption func(*RouterConfig)

func withReadOnly() serverOption {
	return func(cfg *RouterConfig) { cfg.ReadOnly = readonly.NewMiddleware(true) }
}

func withMaxPageSize(n int) serverOption {
	return func(cfg *RouterConfig) {
		cfg.ItemTypes.(*itemtypes.Repository).SetMaxPageSize(n)
		cfg.Items.(*items.Repository).SetMaxPageSize(n)
		cfg.Groceries.(*groceries.Repository).SetMaxPageSize(n)
		cfg.GroceryItems.(*groceryitems.Repository).SetMaxPageSize(n)
	}
}

func setupTestServer(t *testing.T, opts ...serverOption) *testServer {
	t.Helper()

	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "api.db"), database.WithLogLevel("silent"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := RouterConfig{
		ItemTypes:      itemtypes.NewRepository(db.DB),
		Items:          items.NewRepository(db.DB),
		Groceries:      groceries.NewRepository(db.DB),
		GroceryItems:   groceryitems.NewRepository(db.DB),
		Database:       db,
		AuditService:   audit.NewService(auditRepo.NewRepository(db.DB)),
		AllowedOrigins: []string{"http://localhost:4200"},
		Version:        "test",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &testServer{router: NewRouter(cfg), db: db}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

// seedCatalog creates one item type with two items and returns them.
func (s *testServer) seedCatalog(t *testing.T) (schemas.ItemType, []schemas.Item) {
	t.Helper()

	w := s.do(t, http.MethodPost, "/api/v1/item_types", map[string]any{"name": "Dairy"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	itemType := decode[schemas.ItemType](t, w)

	var created []schemas.Item
	for _, name := range []string{"Milk", "Cheese"} {
		w := s.do(t, http.MethodPost, "/api/v1/items", map[string]any{"name": name, "item_type_id": itemType.ID})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		created = append(created, decode[schemas.Item](t, w))
	}
	return itemType, created
}

func (s *testServer) seedDefaults(t *testing.T) {
	t.Helper()
	_, err := s.db.SeedDefaults(context.Background())
	require.NoError(t, err)
}
