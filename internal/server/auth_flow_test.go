package server

import (
	"net/http"
	"testing"
)

func TestAuthFlow_SignupLoginProfile(t *testing.T) {
	app := setupApp(t)
	_, _, userID := app.signupUser(t, "Flow@Test.com", "password123")

	// email is normalised, so any casing logs in
	rec := app.request("POST", "/api/auth/login", `{"email":"flow@test.com","password":"password123"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on login, got %d: %s", rec.Code, rec.Body.String())
	}
	token := parseJSON(t, rec)["accessToken"].(string)

	rec = app.request("GET", "/api/profile", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on profile, got %d: %s", rec.Code, rec.Body.String())
	}
	user := parseJSON(t, rec)["user"].(map[string]interface{})
	if user["id"] != userID || user["email"] != "flow@test.com" {
		t.Errorf("unexpected profile: %v", user)
	}
}

func TestAuthFlow_DuplicateSignup(t *testing.T) {
	app := setupApp(t)
	app.signupUser(t, "dup@test.com", "password123")

	rec := app.request("POST", "/api/auth/signup", `{"email":"DUP@test.com","password":"password123","name":"Again"}`, "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if code := errorCode(t, rec); code != "DUPLICATE_EMAIL" {
		t.Errorf("expected DUPLICATE_EMAIL, got %s", code)
	}
}

func TestAuthFlow_WrongPassword(t *testing.T) {
	app := setupApp(t)
	app.signupUser(t, "wrong@test.com", "password123")

	for _, body := range []string{
		`{"email":"wrong@test.com","password":"nope-nope"}`,
		`{"email":"nobody@test.com","password":"password123"}`,
	} {
		rec := app.request("POST", "/api/auth/login", body, "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if code := errorCode(t, rec); code != "INVALID_CREDENTIALS" {
			t.Errorf("expected INVALID_CREDENTIALS, got %s", code)
		}
	}
}

func TestAuthFlow_RefreshRotation(t *testing.T) {
	app := setupApp(t)
	_, refresh, _ := app.signupUser(t, "refresh@test.com", "password123")

	rec := app.request("POST", "/api/auth/refresh", `{"refreshToken":"`+refresh+`"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on refresh, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	rotated := result["refreshToken"].(string)

	rec = app.request("GET", "/api/profile", "", result["accessToken"].(string))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected new access token to work, got %d", rec.Code)
	}

	rec = app.request("POST", "/api/auth/refresh", `{"refreshToken":"`+refresh+`"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for rotated-out token, got %d", rec.Code)
	}

	rec = app.request("POST", "/api/auth/refresh", `{"refreshToken":"`+rotated+`"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected rotated token to work, got %d", rec.Code)
	}
}

func TestAuthFlow_ProtectedRoutesRequireToken(t *testing.T) {
	app := setupApp(t)

	for _, path := range []string{"/api/profile", "/api/expenses", "/api/budgets", "/api/categories", "/api/expenses/analytics/summary"} {
		rec := app.request("GET", path, "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401, got %d", path, rec.Code)
			continue
		}
		if code := errorCode(t, rec); code != "UNAUTHENTICATED" {
			t.Errorf("%s: expected UNAUTHENTICATED, got %s", path, code)
		}
	}

	rec := app.request("GET", "/api/profile", "", "not-a-jwt")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for garbage token, got %d", rec.Code)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/api/health", "", "")
	if rec.Code != http.StatusOK || parseJSON(t, rec)["status"] != "ok" {
		t.Fatalf("unexpected health response: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/metrics", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected open metrics endpoint, got %d", rec.Code)
	}
}

func TestMetricsRequiresAPIKeyWhenConfigured(t *testing.T) {
	cfg := testConfig()
	cfg.MetricsAPIKey = "scrape-key"
	app := setupAppWithConfig(t, cfg)

	rec := app.request("GET", "/metrics", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without key, got %d", rec.Code)
	}

	rec = app.requestWithHeader("GET", "/metrics", "X-API-Key", "scrape-key")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with key, got %d", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	app := setupApp(t)

	rec := app.request("OPTIONS", "/api/expenses", "", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected CORS header")
	}
}

func TestSwaggerDocServed(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/swagger/doc.json", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	doc := parseJSON(t, rec)
	if doc["basePath"] != "/api" {
		t.Errorf("expected basePath /api, got %v", doc["basePath"])
	}
	info, _ := doc["info"].(map[string]interface{})
	if info["title"] != "Budgetly API" {
		t.Errorf("unexpected title %v", info["title"])
	}
	paths, _ := doc["paths"].(map[string]interface{})
	for _, p := range []string{"/expenses/analytics/summary", "/budgets/overview", "/expenses/export"} {
		if _, ok := paths[p]; !ok {
			t.Errorf("expected path %s in swagger doc", p)
		}
	}
}
