package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"budgetly/internal/config"
	apperrors "budgetly/internal/errors"
	"budgetly/internal/middleware"
	"budgetly/internal/models"
	"budgetly/internal/validator"
)

const testUserID = "0190f5a8-7c3e-7b1a-9c2d-123456789abc"

// --- mock user service ---

type mockUserService struct {
	createUserFn            func(email, password, name string) (*models.User, error)
	getUserByEmailFn        func(email string) (*models.User, error)
	getUserByIDFn           func(id string) (*models.User, error)
	verifyPasswordFn        func(user *models.User, password string) bool
	attemptLoginFn          func(email, password string) (*models.User, error)
	storeRefreshTokenHashFn func(userID, tokenHash string) error
	getRefreshTokenHashFn   func(userID string) (string, error)
}

func (m *mockUserService) CreateUser(_ context.Context, email, password, name string) (*models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(email, password, name)
	}
	return &models.User{Base: models.Base{ID: testUserID}, Email: email, Name: name}, nil
}

func (m *mockUserService) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	if m.getUserByEmailFn != nil {
		return m.getUserByEmailFn(email)
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *mockUserService) GetUserByID(_ context.Context, id string) (*models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(id)
	}
	return &models.User{Base: models.Base{ID: id}}, nil
}

func (m *mockUserService) VerifyPassword(user *models.User, password string) bool {
	if m.verifyPasswordFn != nil {
		return m.verifyPasswordFn(user, password)
	}
	return false
}

func (m *mockUserService) AttemptLogin(_ context.Context, email, password string) (*models.User, error) {
	if m.attemptLoginFn != nil {
		return m.attemptLoginFn(email, password)
	}
	return nil, apperrors.ErrInvalidCredentials
}

func (m *mockUserService) StoreRefreshTokenHash(_ context.Context, userID, tokenHash string) error {
	if m.storeRefreshTokenHashFn != nil {
		return m.storeRefreshTokenHashFn(userID, tokenHash)
	}
	return nil
}

func (m *mockUserService) GetRefreshTokenHash(_ context.Context, userID string) (string, error) {
	if m.getRefreshTokenHashFn != nil {
		return m.getRefreshTokenHashFn(userID)
	}
	return "", nil
}

// --- mock audit service ---

type auditEntry struct {
	action     string
	resourceID string
}

type mockAuditService struct {
	entries []auditEntry
}

func (m *mockAuditService) Log(_ context.Context, _, action, _, resourceID, _ string, _ map[string]interface{}) {
	m.entries = append(m.entries, auditEntry{action: action, resourceID: resourceID})
}

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func newTestTokenIssuer() *middleware.TokenIssuer {
	return middleware.NewTokenIssuer(&config.Config{
		JWTSecret:  "handler-test-secret",
		JWTIssuer:  "budgetly-test",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: time.Hour,
	})
}

func setupAuthRouter(handler *AuthHandler) *gin.Engine {
	r := gin.New()
	r.POST("/auth/signup", handler.Signup)
	r.POST("/auth/login", handler.Login)
	r.POST("/auth/refresh", handler.Refresh)
	r.GET("/profile", injectUserID(testUserID), handler.GetProfile)
	r.GET("/anonymous/profile", handler.GetProfile)
	return r
}

func injectUserID(uid string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, uid)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func parseJSONArray(t *testing.T, rec *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	var result []interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON array: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

func errorDetailFields(t *testing.T, result map[string]interface{}) []string {
	t.Helper()
	errObj, _ := result["error"].(map[string]interface{})
	details, _ := errObj["details"].([]interface{})
	fields := make([]string, 0, len(details))
	for _, d := range details {
		fields = append(fields, d.(map[string]interface{})["field"].(string))
	}
	return fields
}

// --- tests ---

func TestAuthHandler_Signup(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var storedHash string
		userSvc := &mockUserService{
			storeRefreshTokenHashFn: func(userID, tokenHash string) error {
				storedHash = tokenHash
				return nil
			},
		}
		handler := NewAuthHandler(userSvc, newTestTokenIssuer())
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/auth/signup", `{"email":"test@example.com","password":"password123","name":"Test"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		refresh, _ := result["refreshToken"].(string)
		if result["accessToken"] == "" || refresh == "" {
			t.Fatal("expected both tokens in response")
		}
		if storedHash != middleware.HashToken(refresh) {
			t.Error("expected the refresh token hash to be stored")
		}
		user := result["user"].(map[string]interface{})
		if user["email"] != "test@example.com" || user["name"] != "Test" {
			t.Errorf("unexpected user payload: %v", user)
		}
		if _, leaked := user["password"]; leaked {
			t.Error("password must never be serialized")
		}
	})

	t.Run("returns 400 with field details", func(t *testing.T) {
		handler := NewAuthHandler(&mockUserService{}, newTestTokenIssuer())
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/auth/signup", `{"email":"not-an-email","password":"short"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "INVALID_INPUT")
		fields := strings.Join(errorDetailFields(t, result), ",")
		if fields != "email,password,name" {
			t.Errorf("expected details for email,password,name, got %s", fields)
		}
	})

	t.Run("returns 409 on duplicate email", func(t *testing.T) {
		userSvc := &mockUserService{
			createUserFn: func(_, _, _ string) (*models.User, error) {
				return nil, apperrors.ErrDuplicateEmail
			},
		}
		handler := NewAuthHandler(userSvc, newTestTokenIssuer())
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/auth/signup", `{"email":"dup@example.com","password":"password123","name":"Dup"}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "DUPLICATE_EMAIL")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		userSvc := &mockUserService{
			attemptLoginFn: func(email, _ string) (*models.User, error) {
				return &models.User{Base: models.Base{ID: testUserID}, Email: email, Name: "Test"}, nil
			},
		}
		handler := NewAuthHandler(userSvc, newTestTokenIssuer())
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/auth/login", `{"email":"test@example.com","password":"password123"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["accessToken"] == nil || result["accessToken"] == "" {
			t.Error("expected non-empty accessToken")
		}
		if result["refreshToken"] == nil || result["refreshToken"] == "" {
			t.Error("expected non-empty refreshToken")
		}
	})

	t.Run("returns 401 on invalid credentials", func(t *testing.T) {
		handler := NewAuthHandler(&mockUserService{}, newTestTokenIssuer())
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/auth/login", `{"email":"test@example.com","password":"wrong"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_CREDENTIALS")
	})

	t.Run("returns 400 on missing fields", func(t *testing.T) {
		handler := NewAuthHandler(&mockUserService{}, newTestTokenIssuer())
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/auth/login", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	tokens := newTestTokenIssuer()
	user := &models.User{Base: models.Base{ID: testUserID}, Email: "a@b.com"}
	refresh, err := tokens.GenerateRefreshToken(user)
	if err != nil {
		t.Fatalf("failed to sign refresh token: %v", err)
	}
	access, _ := tokens.GenerateAccessToken(user)

	t.Run("rotates matching token", func(t *testing.T) {
		stored := middleware.HashToken(refresh)
		userSvc := &mockUserService{
			getRefreshTokenHashFn:   func(string) (string, error) { return stored, nil },
			storeRefreshTokenHashFn: func(_, hash string) error { stored = hash; return nil },
		}
		r := setupAuthRouter(NewAuthHandler(userSvc, tokens))

		rec := doRequest(r, "POST", "/auth/refresh", `{"refreshToken":"`+refresh+`"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		next := parseJSON(t, rec)["refreshToken"].(string)
		if next == refresh {
			t.Error("expected a new refresh token")
		}
		if stored != middleware.HashToken(next) {
			t.Error("expected the new refresh token hash to be stored")
		}

		// the rotated-out token is no longer accepted
		rec = doRequest(r, "POST", "/auth/refresh", `{"refreshToken":"`+refresh+`"}`)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for reused token, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_TOKEN")
	})

	t.Run("rejects access token", func(t *testing.T) {
		r := setupAuthRouter(NewAuthHandler(&mockUserService{}, tokens))

		rec := doRequest(r, "POST", "/auth/refresh", `{"refreshToken":"`+access+`"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_TOKEN")
	})

	t.Run("rejects revoked token", func(t *testing.T) {
		userSvc := &mockUserService{
			getRefreshTokenHashFn: func(string) (string, error) { return "", nil },
		}
		r := setupAuthRouter(NewAuthHandler(userSvc, tokens))

		rec := doRequest(r, "POST", "/auth/refresh", `{"refreshToken":"`+refresh+`"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestAuthHandler_GetProfile(t *testing.T) {
	t.Run("returns 200 with user profile", func(t *testing.T) {
		userSvc := &mockUserService{
			getUserByIDFn: func(id string) (*models.User, error) {
				return &models.User{Base: models.Base{ID: id}, Email: "me@example.com", Name: "Me"}, nil
			},
		}
		r := setupAuthRouter(NewAuthHandler(userSvc, newTestTokenIssuer()))

		rec := doRequest(r, "GET", "/profile", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		user := parseJSON(t, rec)["user"].(map[string]interface{})
		if user["id"] != testUserID || user["email"] != "me@example.com" {
			t.Errorf("unexpected profile: %v", user)
		}
	})

	t.Run("returns 401 without user in context", func(t *testing.T) {
		r := setupAuthRouter(NewAuthHandler(&mockUserService{}, newTestTokenIssuer()))

		rec := doRequest(r, "GET", "/anonymous/profile", "")

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "UNAUTHENTICATED")
	})
}
