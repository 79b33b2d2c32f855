package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kudosboard/kudos-board/docs"
	"github.com/kudosboard/kudos-board/internal/config"
	"github.com/kudosboard/kudos-board/internal/database"
	"github.com/kudosboard/kudos-board/internal/migration"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	cfg.Database.Path = filepath.Join(t.TempDir(), "kudos.db")
	db, err := database.Open(cfg.Database)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, migration.Run(db))

	return newRouter(cfg, db, nil)
}

func TestHealth(t *testing.T) {
	router := testRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "up", body["database"])
	assert.Equal(t, "disabled", body["cache"])
}

func TestRootAndUnknownRoute(t *testing.T) {
	router := testRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Welcome to Kudos Board API"}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateThenListBoards(t *testing.T) {
	router := testRouter(t)

	payload := `{"title":"Team","category":"feedback","image":"https://x/y.gif"}`
	req := httptest.NewRequest(http.MethodPost, "/api/boards", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/boards", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var boards []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &boards))
	require.Len(t, boards, 1)
	assert.Equal(t, "Team", boards[0]["title"])
}

func TestCORSConfig(t *testing.T) {
	all := corsConfig(config.CORSConfig{AllowOrigins: "*"})
	assert.True(t, all.AllowAllOrigins)

	some := corsConfig(config.CORSConfig{AllowOrigins: "http://a.test, http://b.test"})
	assert.False(t, some.AllowAllOrigins)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, some.AllowOrigins)
}

func TestSwaggerDocumentsEveryAPIRoute(t *testing.T) {
	router := testRouter(t)

	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &doc))

	for _, r := range router.Routes() {
		if !strings.HasPrefix(r.Path, "/api/") {
			continue
		}
		path := strings.ReplaceAll(r.Path, ":id", "{id}")
		ops, ok := doc.Paths[path]
		if assert.True(t, ok, "missing swagger path %s", path) {
			assert.Contains(t, ops, strings.ToLower(r.Method), "missing %s %s", r.Method, path)
		}
	}
}
