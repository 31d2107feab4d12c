package main

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSite(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"index.html":   "<html>page</html>",
		"app.css":      "body{}",
		"main.wasm":    "\x00asm",
		"images/a.png": "png",
	}
	for name, body := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	}
	return dir
}

func testRouter(t *testing.T, dir string) *gin.Engine {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Mode = gin.TestMode
	cfg.SiteDir = dir
	return newRouter(cfg, slog.New(slog.DiscardHandler))
}

func get(r http.Handler, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestRouterServesIndex(t *testing.T) {
	r := testRouter(t, testSite(t))

	w := get(r, http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<html>page</html>", w.Body.String())
	assert.Equal(t, "no-cache", w.Header().Get("Cache-Control"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestRouterServesAssets(t *testing.T) {
	r := testRouter(t, testSite(t))

	w := get(r, http.MethodGet, "/app.css")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "body{}", w.Body.String())

	w = get(r, http.MethodGet, "/images/a.png")
	assert.Equal(t, http.StatusOK, w.Code)

	w = get(r, http.MethodGet, "/main.wasm")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/wasm", w.Header().Get("Content-Type"))
}

func TestRouterPageFallback(t *testing.T) {
	r := testRouter(t, testSite(t))

	w := get(r, http.MethodGet, "/about")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<html>page</html>", w.Body.String())

	w = get(r, http.MethodGet, "/images")
	assert.Equal(t, http.StatusOK, w.Code, "directories are pages, not listings")
	assert.Equal(t, "<html>page</html>", w.Body.String())
}

func TestRouterMissingAsset(t *testing.T) {
	dir := testSite(t)
	r := testRouter(t, dir)

	w := get(r, http.MethodGet, "/missing.js")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "404 page not found", w.Body.String())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "404.html"), []byte("<html>lost</html>"), 0o644))
	w = get(r, http.MethodGet, "/missing.js")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "<html>lost</html>", w.Body.String())
}

func TestRouterStaysInsideSiteDir(t *testing.T) {
	parent := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(parent, "secret.txt"), []byte("nope"), 0o644))
	dir := filepath.Join(parent, "web")
	require.NoError(t, os.Mkdir(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>page</html>"), 0o644))
	r := testRouter(t, dir)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.URL.Path = "/../secret.txt"
	r.ServeHTTP(w, req)
	assert.NotContains(t, w.Body.String(), "nope")
}

func TestRouterRejectsWrites(t *testing.T) {
	r := testRouter(t, testSite(t))

	w := get(r, http.MethodPost, "/contact")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRouterHealth(t *testing.T) {
	r := testRouter(t, testSite(t))

	w := get(r, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestMake404(t *testing.T) {
	dir := testSite(t)

	dest, err := make404(dir)
	require.NoError(t, err)
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "<html>page</html>", string(data))

	_, err = make404(t.TempDir())
	assert.ErrorContains(t, err, "did the build run?")
}
