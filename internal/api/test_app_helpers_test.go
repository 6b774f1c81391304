package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/peptica/internal/content"
	"github.com/terraincognita07/peptica/internal/db"
	"github.com/terraincognita07/peptica/internal/i18n"
	"github.com/terraincognita07/peptica/internal/metrics"
)

const testSecretKey = "0123456789abcdef0123456789abcdef"

func newTestApp(t *testing.T) (*fiber.App, *Handler) {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "peptica-test.db"), nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	library, err := content.LoadEmbedded()
	if err != nil {
		t.Fatalf("load content: %v", err)
	}
	i18nManager, err := i18n.NewEmbeddedManager("en")
	if err != nil {
		t.Fatalf("init i18n: %v", err)
	}

	handler, err := NewHandler(Options{
		Database:      database,
		Library:       library,
		I18n:          i18nManager,
		Metrics:       metrics.NewRecorder(),
		SecretKey:     testSecretKey,
		AdminTokenTTL: time.Hour,
	})
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	app.Use(handler.LanguageMiddleware)
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app, handler
}

func doRequest(t *testing.T, app *fiber.App, request *http.Request, expectedStatus int) (*http.Response, string) {
	t.Helper()

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", request.Method, request.URL, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("%s %s read body failed: %v", request.Method, request.URL, err)
	}
	if response.StatusCode != expectedStatus {
		t.Fatalf("%s %s expected status %d, got %d: %s", request.Method, request.URL, expectedStatus, response.StatusCode, body)
	}
	return response, string(body)
}

func getPage(t *testing.T, app *fiber.App, path string, expectedStatus int) string {
	t.Helper()
	request := httptest.NewRequest(http.MethodGet, path, nil)
	request.Header.Set("Accept-Language", "en")
	_, body := doRequest(t, app, request, expectedStatus)
	return body
}

func getHTMX(t *testing.T, app *fiber.App, path string, expectedStatus int) string {
	t.Helper()
	request := httptest.NewRequest(http.MethodGet, path, nil)
	request.Header.Set("Accept-Language", "en")
	request.Header.Set("HX-Request", "true")
	_, body := doRequest(t, app, request, expectedStatus)
	return body
}

func getJSON(t *testing.T, app *fiber.App, path string, expectedStatus int, target any) {
	t.Helper()
	request := httptest.NewRequest(http.MethodGet, path, nil)
	request.Header.Set("Accept", "application/json")
	_, body := doRequest(t, app, request, expectedStatus)
	if target == nil {
		return
	}
	if err := json.Unmarshal([]byte(body), target); err != nil {
		t.Fatalf("decode %s: %v (%s)", path, err, body)
	}
}

func postForm(t *testing.T, app *fiber.App, path string, values url.Values, headers map[string]string, expectedStatus int) (*http.Response, string) {
	t.Helper()
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	request.Header.Set("Accept-Language", "en")
	for key, value := range headers {
		request.Header.Set(key, value)
	}
	return doRequest(t, app, request, expectedStatus)
}

func responseCookieValue(cookies []*http.Cookie, name string) string {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie.Value
		}
	}
	return ""
}

func readAPIError(t *testing.T, body string) string {
	t.Helper()

	payload := map[string]string{}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return payload["error"]
}
