package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestIndexListsAndSearchesSubstances(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	body := getPage(t, app, "/", 200)
	for _, fragment := range []string{`<html lang="en"`, `href="/substances/cagrilintide"`, `href="/substances/glucagon"`, "Peptide reference"} {
		if !strings.Contains(body, fragment) {
			t.Fatalf("expected index to contain %q", fragment)
		}
	}

	filtered := getPage(t, app, "/?q=amylin", 200)
	if !strings.Contains(filtered, `href="/substances/cagrilintide"`) || strings.Contains(filtered, `href="/substances/glucagon"`) {
		t.Fatalf("expected search to keep only cagrilintide")
	}

	empty := getPage(t, app, "/?q=zzz-not-present", 200)
	if !strings.Contains(empty, "No substances match that search.") {
		t.Fatalf("expected empty index state")
	}
}

func TestSubstancePageRendersAllPanels(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	body := getPage(t, app, "/substances/cagrilintide", 200)

	for _, fragment := range []string{
		"<title>Peptica | Cagrilintide</title>",
		`id="record-insulin"`,
		`id="record-fasting"`,
		"9 of 9 shown",
		`value="All" checked`,
		`value="Supplements"`,
		"Evidence",
		"Safety playbook",
		`name="entry"`,
		`value="interactions/insulin"`,
		`hx-get="/substances/cagrilintide/interactions"`,
	} {
		if !strings.Contains(body, fragment) {
			t.Fatalf("expected substance page to contain %q", fragment)
		}
	}
	if !strings.Contains(body, "background-color: #fdecec") {
		t.Fatalf("expected flag tier style on insulin card")
	}
}

func TestSubstancePageAppliesQueryAndIgnoresUnknownCategory(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	filtered := getPage(t, app, "/substances/cagrilintide?category=Supplements", 200)
	if !strings.Contains(filtered, "2 of 9 shown") || !strings.Contains(filtered, `value="Supplements" checked`) {
		t.Fatalf("expected supplements filter to be applied")
	}

	fallback := getPage(t, app, "/substances/cagrilintide?category=Devices", 200)
	if !strings.Contains(fallback, "9 of 9 shown") || !strings.Contains(fallback, `value="All" checked`) {
		t.Fatalf("expected unknown category to fall back to All")
	}
}

func TestSubstancePageUnknownSlugIsNotFound(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	body := getPage(t, app, "/substances/unknown-peptide", 404)
	if !strings.Contains(body, "Page not found") {
		t.Fatalf("expected localized not-found page")
	}
}

func TestNotFoundPageAndAPI(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	body := getPage(t, app, "/missing-page", 404)
	if !strings.Contains(body, "Page not found") || !strings.Contains(body, `href="/"`) {
		t.Fatalf("expected not-found page with home action")
	}

	var payload map[string]string
	getJSON(t, app, "/api/missing", 404, &payload)
	if payload["error"] != "not found" {
		t.Fatalf("expected JSON not found, got %v", payload)
	}
}

func TestLanguageSwitchSetsCookieAndRendersRussian(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	switchRequest := httptest.NewRequest(http.MethodGet, "/lang/ru?next=/substances/glucagon", nil)
	switchResponse, _ := doRequest(t, app, switchRequest, http.StatusSeeOther)
	if location := switchResponse.Header.Get("Location"); location != "/substances/glucagon" {
		t.Fatalf("expected redirect to glucagon page, got %q", location)
	}
	cookie := responseCookieValue(switchResponse.Cookies(), languageCookieName)
	if cookie != "ru" {
		t.Fatalf("expected ru cookie, got %q", cookie)
	}

	pageRequest := httptest.NewRequest(http.MethodGet, "/substances/glucagon", nil)
	pageRequest.Header.Set("Cookie", languageCookieName+"="+cookie)
	_, body := doRequest(t, app, pageRequest, http.StatusOK)
	if !strings.Contains(body, `<html lang="ru"`) {
		t.Fatalf("expected russian page")
	}

	unsafe := httptest.NewRequest(http.MethodGet, "/lang/en?next=//evil.example", nil)
	unsafeResponse, _ := doRequest(t, app, unsafe, http.StatusSeeOther)
	if location := unsafeResponse.Header.Get("Location"); location != "/" {
		t.Fatalf("expected unsafe redirect to be replaced, got %q", location)
	}
}

func TestSubstancesJSON(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	var list struct {
		Substances []substanceSummaryJSON `json:"substances"`
	}
	getJSON(t, app, "/api/substances", 200, &list)
	if len(list.Substances) != 8 || list.Substances[0].Slug != "cagrilintide" {
		t.Fatalf("unexpected substance list %+v", list.Substances)
	}

	var detail substanceJSON
	getJSON(t, app, "/api/substances/glucagon", 200, &detail)
	if detail.Name != "Glucagon" || len(detail.Panels["safety"]) == 0 || len(detail.Panels["interactions"]) == 0 {
		t.Fatalf("unexpected glucagon detail %+v", detail)
	}

	getJSON(t, app, "/api/substances/unknown", 404, nil)
}

func TestHealthAndMetrics(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	var health map[string]any
	getJSON(t, app, "/healthz", 200, &health)
	if health["status"] != "ok" {
		t.Fatalf("unexpected health payload %v", health)
	}

	getPage(t, app, "/substances/cagrilintide?q=zzz", 200)
	metricsBody := getPage(t, app, "/metrics", 200)
	for _, fragment := range []string{
		`peptica_page_renders_total{page="substance"} 1`,
		`peptica_interaction_filter_empty_total{substance="cagrilintide"} 1`,
	} {
		if !strings.Contains(metricsBody, fragment) {
			t.Fatalf("expected metrics to contain %q", fragment)
		}
	}
}
