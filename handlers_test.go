package clubsite

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPassword = "secret123"

func newTestApp(t *testing.T) *App {
	t.Helper()
	app := New(SiteConfig{
		AdminPassword: testPassword,
		SessionSecret: "test-session-secret",
		DataDir:       t.TempDir(),
		StaticDir:     t.TempDir(),
	})
	require.NoError(t, app.init())
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func doJSON(app *App, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	app.Echo.ServeHTTP(rec, req)
	return rec
}

func loginCookies(t *testing.T, app *App) []*http.Cookie {
	t.Helper()
	rec := doJSON(app, http.MethodPost, "/api/auth", `{"password":"`+testPassword+`"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies, "login should set the session cookie")
	return cookies
}

func TestHealthz(t *testing.T) {
	app := newTestApp(t)
	rec := doJSON(app, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestLoginWrongPassword(t *testing.T) {
	app := newTestApp(t)

	rec := doJSON(app, http.MethodPost, "/api/auth", `{"password":"nope"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid password")
	for _, ck := range rec.Result().Cookies() {
		assert.NotEqual(t, sessionName, ck.Name, "failed login must not issue a session cookie")
	}
}

func TestLoginRateLimited(t *testing.T) {
	app := newTestApp(t)

	for i := 0; i < 5; i++ {
		rec := doJSON(app, http.MethodPost, "/api/auth", `{"password":"nope"}`, nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	}
	rec := doJSON(app, http.MethodPost, "/api/auth", `{"password":"`+testPassword+`"}`, nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code,
		"even the correct password is refused while the IP is limited")
}

func TestAuthStatusFlow(t *testing.T) {
	app := newTestApp(t)

	rec := doJSON(app, http.MethodGet, "/api/auth", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"authenticated":false`)

	cookies := loginCookies(t, app)
	rec = doJSON(app, http.MethodGet, "/api/auth", "", cookies)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"authenticated":true`)
}

func TestLogoutExpiresCookie(t *testing.T) {
	app := newTestApp(t)
	cookies := loginCookies(t, app)

	rec := doJSON(app, http.MethodDelete, "/api/auth", "", cookies)
	assert.Equal(t, http.StatusOK, rec.Code)

	var expired bool
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == sessionName && ck.MaxAge < 0 {
			expired = true
		}
	}
	assert.True(t, expired, "logout should expire the session cookie")
}

func TestUnauthorizedMutationsLeaveStorageUntouched(t *testing.T) {
	app := newTestApp(t)

	calls := []struct {
		method, path, body, document string
	}{
		{http.MethodPut, "/api/content/123", `{"title":"x"}`, eventsDocument},
		{http.MethodDelete, "/api/content/123", "", eventsDocument},
		{http.MethodPut, "/api/pages", `{"page":"home","section":"hero","data":{"title":"x"}}`, pagesDocument},
		{http.MethodPut, "/api/programs", `{"comingSoon":{"enabled":false}}`, programsDocument},
		{http.MethodPost, "/api/programs", `{"title":"x"}`, programsDocument},
		{http.MethodPatch, "/api/projects", `{"id":"project-1","status":"done"}`, projectsDocument},
		{http.MethodDelete, "/api/projects?id=project-1", "", projectsDocument},
	}
	for _, call := range calls {
		rec := doJSON(app, call.method, call.path, call.body, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", call.method, call.path)

		_, err := os.Stat(filepath.Join(app.Config.DataDir, call.document))
		assert.True(t, os.IsNotExist(err),
			"%s %s must not write %s", call.method, call.path, call.document)
	}
}

func TestContentNotFound(t *testing.T) {
	app := newTestApp(t)

	rec := doJSON(app, http.MethodGet, "/api/content/999", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Item not found")
}

func TestPagesSectionUpdateFlow(t *testing.T) {
	app := newTestApp(t)
	cookies := loginCookies(t, app)

	rec := doJSON(app, http.MethodPut, "/api/pages",
		`{"page":"home","section":"hero","data":{"title":"Welcome","subtitle":"Learn AI with us"}}`, cookies)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(app, http.MethodGet, "/api/pages?page=home", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Welcome")
	assert.Contains(t, rec.Body.String(), "Learn AI with us")
}

func TestPagesUpdateUnknownSection(t *testing.T) {
	app := newTestApp(t)
	cookies := loginCookies(t, app)

	rec := doJSON(app, http.MethodPut, "/api/pages",
		`{"page":"home","section":"bogus","data":{}}`, cookies)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unknown page section")
}

func TestProgramsCRUDOverHTTP(t *testing.T) {
	app := newTestApp(t)
	cookies := loginCookies(t, app)

	rec := doJSON(app, http.MethodPost, "/api/programs",
		`{"title":"AI Foundations","status":"enrolling"}`, cookies)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created Program
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	rec = doJSON(app, http.MethodGet, "/api/programs", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), created.ID)

	rec = doJSON(app, http.MethodDelete, "/api/programs?id="+created.ID, "", cookies)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(app, http.MethodGet, "/api/programs", "", nil)
	assert.NotContains(t, rec.Body.String(), created.ID)
}

func TestProjectsPatchOverHTTP(t *testing.T) {
	app := newTestApp(t)
	cookies := loginCookies(t, app)

	rec := doJSON(app, http.MethodPost, "/api/projects",
		`{"title":"Transit Equity Map","category":"civic","status":"planning"}`, cookies)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(app, http.MethodPatch, "/api/projects",
		`{"id":"`+created.ID+`","status":"active"}`, cookies)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var patched Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &patched))
	assert.Equal(t, created.ID, patched.ID)
	assert.Equal(t, "active", patched.Status)
	assert.Equal(t, "Transit Equity Map", patched.Title)
}

func TestProjectsPatchRequiresID(t *testing.T) {
	app := newTestApp(t)
	cookies := loginCookies(t, app)

	rec := doJSON(app, http.MethodPatch, "/api/projects", `{"status":"active"}`, cookies)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSeedDisabledWithoutKey(t *testing.T) {
	app := newTestApp(t)

	rec := doJSON(app, http.MethodPost, "/api/seed?key=anything", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSeedKeyGuard(t *testing.T) {
	app := New(SiteConfig{
		AdminPassword: testPassword,
		SessionSecret: "test-session-secret",
		DataDir:       t.TempDir(),
		StaticDir:     t.TempDir(),
		SeedKey:       "deploy-key",
	})
	require.NoError(t, app.init())
	t.Cleanup(func() { _ = app.Close() })

	seed := filepath.Join(app.Config.DataDir, eventsDocument)
	require.NoError(t, os.WriteFile(seed, []byte(`{"events":[],"gallery":[]}`), 0o644))

	rec := doJSON(app, http.MethodPost, "/api/seed?key=wrong", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(app, http.MethodPost, "/api/seed?key=deploy-key", "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Success bool              `json:"success"`
		Results map[string]string `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "ok", body.Results[eventsDocument])
}

func TestAnalyzeImageUnavailable(t *testing.T) {
	app := newTestApp(t)
	cookies := loginCookies(t, app)

	rec := doJSON(app, http.MethodPost, "/api/analyze-image", "", cookies)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "AI analysis is not configured")
}

func TestAdminStatsRequiresAuth(t *testing.T) {
	app := newTestApp(t)

	rec := doJSON(app, http.MethodGet, "/api/admin/stats", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
