package web

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panlasa/go-panlasa/internal/config"
	"github.com/panlasa/go-panlasa/internal/recipes"
)

func newTestServer() *WebServer {
	return NewServer(recipes.NewStore(), config.DefaultWebConfig())
}

func doGet(s *WebServer, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func TestHomePageListsAllRecipes(t *testing.T) {
	s := newTestServer()
	w := doGet(s, "/")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	for _, name := range []string{"Adobo", "Kare-Kare", "Lumpia"} {
		assert.Contains(t, body, name)
	}
}

func TestRecipeDetailPage(t *testing.T) {
	s := newTestServer()
	for _, want := range recipes.NewStore().All() {
		w := doGet(s, fmt.Sprintf("/recipe/%d", want.ID))

		require.Equal(t, http.StatusOK, w.Code, "recipe %d", want.ID)
		body := w.Body.String()
		assert.Contains(t, body, want.Name)
		assert.Contains(t, body, want.Category)
		assert.Contains(t, body, want.Description)
	}
}

func TestRecipeNotFound(t *testing.T) {
	s := newTestServer()
	for _, path := range []string{"/recipe/0", "/recipe/999", "/recipe/abc"} {
		w := doGet(s, path)

		assert.Equal(t, http.StatusNotFound, w.Code, "path %s", path)
		assert.Equal(t, "Recipe not found", w.Body.String(), "path %s", path)
	}
}

func TestStaticPages(t *testing.T) {
	s := newTestServer()
	for path, want := range map[string]string{
		"/about":      "About Panlasa",
		"/contact":    "Contact",
		"/add-recipe": "Add a Recipe",
	} {
		w := doGet(s, path)

		require.Equal(t, http.StatusOK, w.Code, "path %s", path)
		assert.Contains(t, w.Body.String(), want, "path %s", path)
	}
}

func TestPing(t *testing.T) {
	s := newTestServer()
	w := doGet(s, "/ping")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestRobotsTxt(t *testing.T) {
	s := newTestServer()
	w := doGet(s, "/robots.txt")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "User-agent: *")
}

func TestEmbeddedStylesheet(t *testing.T) {
	s := newTestServer()
	w := doGet(s, "/static/css/style.css")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/css")
	assert.Equal(t, "public, max-age=3600", w.Header().Get("Cache-Control"))
}

func TestSecurityHeaders(t *testing.T) {
	s := newTestServer()
	w := doGet(s, "/")

	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}
