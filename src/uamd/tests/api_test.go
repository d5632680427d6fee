// Package tests provides integration tests for the uamd server.
package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bitswalk/uam/src/common/logs"
	"github.com/bitswalk/uam/src/common/version"
	"github.com/bitswalk/uam/src/uamd/api"
	"github.com/bitswalk/uam/src/uamd/api/base"
	"github.com/bitswalk/uam/src/uamd/auth"
	"github.com/bitswalk/uam/src/uamd/db"
	"github.com/gin-gonic/gin"
)

// =============================================================================
// Test Infrastructure
// =============================================================================

func init() {
	gin.SetMode(gin.TestMode)
}

// testAPI holds all the components needed for API testing
type testAPI struct {
	api        *api.API
	router     *gin.Engine
	database   *db.Database
	repo       *auth.Repository
	jwtService *auth.JWTService
}

// setupTestAPI creates a new test API instance with in-memory database
func setupTestAPI(t *testing.T) *testAPI {
	t.Helper()

	// Create in-memory database
	database, err := db.New(db.Config{
		PersistPath: "",
		LoadOnStart: false,
	})
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}

	repo := auth.NewRepository(database.DB())

	jwtCfg := auth.DefaultJWTConfig()
	jwtCfg.Secret = "test-secret"
	jwtService := auth.NewJWTService(jwtCfg)

	// Set up version info for base handler
	base.SetVersionInfo(&version.Info{
		Version:        "1.0.0-test",
		ReleaseName:    "Test",
		ReleaseVersion: "1.0.0",
		BuildDate:      "2026-01-01",
		GitCommit:      "abc1234",
	})

	// Set up logger
	logger := logs.New(logs.Config{
		Output: logs.OutputStdout,
		Level:  "error",
	})
	api.SetLogger(logger)

	apiInstance := api.New(api.Config{
		Repository: repo,
		JWTService: jwtService,
	})

	router := gin.New()
	apiInstance.RegisterRoutes(router)

	t.Cleanup(func() {
		_ = database.Shutdown()
	})

	return &testAPI{
		api:        apiInstance,
		router:     router,
		database:   database,
		repo:       repo,
		jwtService: jwtService,
	}
}

// createTestUser creates a user directly in the store and returns it with a token
func (ta *testAPI) createTestUser(t *testing.T, name, email string, role auth.Role, adminID *string) (*auth.User, string) {
	t.Helper()

	hash, err := auth.HashPassword("testpassword")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := auth.NewUser(name, email, hash, role, adminID)
	if err := ta.repo.CreateUser(user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	token, err := ta.jwtService.GenerateToken(user)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	return user, token
}

// makeRequest makes an HTTP request to the test API
func (ta *testAPI) makeRequest(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reqBody io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		reqBody = bytes.NewReader(jsonBody)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ta.router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body as JSON
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nBody: %s", err, rec.Body.String())
	}
}

// =============================================================================
// Base Handler Tests
// =============================================================================

func TestAPI_HandleRoot(t *testing.T) {
	ta := setupTestAPI(t)

	rec := ta.makeRequest("GET", "/", nil, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected HTML content type, got %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "<h1>") {
		t.Fatalf("expected HTML greeting, got %q", rec.Body.String())
	}
}

func TestAPI_HandleHealth(t *testing.T) {
	ta := setupTestAPI(t)

	rec := ta.makeRequest("GET", "/v1/health", nil, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var response map[string]interface{}
	parseJSON(t, rec, &response)

	if response["status"] != "healthy" {
		t.Fatalf("expected status 'healthy', got %v", response["status"])
	}
	if response["timestamp"] == nil {
		t.Fatal("expected timestamp in response")
	}
}

func TestAPI_HandleVersion(t *testing.T) {
	ta := setupTestAPI(t)

	rec := ta.makeRequest("GET", "/v1/version", nil, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var response map[string]interface{}
	parseJSON(t, rec, &response)

	if response["version"] != "1.0.0-test" {
		t.Fatalf("expected test version, got %v", response["version"])
	}
}

// =============================================================================
// Registration Tests
// =============================================================================

func TestAPI_Register_Admin(t *testing.T) {
	ta := setupTestAPI(t)

	rec := ta.makeRequest("POST", "/register", map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "s3cret",
		"role":     "admin",
	}, "")

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var response map[string]interface{}
	parseJSON(t, rec, &response)

	userID, _ := response["userId"].(string)
	if userID == "" {
		t.Fatal("expected userId in response")
	}

	// Role is normalized to uppercase and the admin references itself
	user, err := ta.repo.GetUserByID(userID)
	if err != nil {
		t.Fatalf("failed to load created user: %v", err)
	}
	if user.Role != auth.RoleAdmin {
		t.Fatalf("expected role ADMIN, got %s", user.Role)
	}
	if user.AdminID == nil || *user.AdminID != user.ID {
		t.Fatalf("expected admin to reference itself, got %v", user.AdminID)
	}
	if user.PasswordHash == "s3cret" {
		t.Fatal("password must be stored hashed")
	}
}

func TestAPI_Register_UserKeepsAdminID(t *testing.T) {
	ta := setupTestAPI(t)

	// An arbitrary adminId is stored as given, no referential check
	rec := ta.makeRequest("POST", "/register", map[string]string{
		"name":     "Bob",
		"email":    "bob@example.com",
		"password": "s3cret",
		"role":     "USER",
		"adminId":  "not-a-real-admin",
	}, "")

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var response map[string]interface{}
	parseJSON(t, rec, &response)
	userID, _ := response["userId"].(string)

	user, err := ta.repo.GetUserByID(userID)
	if err != nil {
		t.Fatalf("failed to load created user: %v", err)
	}
	if user.AdminID == nil || *user.AdminID != "not-a-real-admin" {
		t.Fatalf("expected adminId to be preserved verbatim, got %v", user.AdminID)
	}
}

func TestAPI_Register_InvalidRole(t *testing.T) {
	ta := setupTestAPI(t)

	rec := ta.makeRequest("POST", "/register", map[string]string{
		"name":     "Mallory",
		"email":    "mallory@example.com",
		"password": "s3cret",
		"role":     "SUPERADMIN",
	}, "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	// The rejected registration must not leave a row behind
	count, err := ta.repo.CountUsers()
	if err != nil {
		t.Fatalf("failed to count users: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no users, got %d", count)
	}
}

func TestAPI_Register_DuplicateEmail(t *testing.T) {
	ta := setupTestAPI(t)

	body := map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "s3cret",
		"role":     "USER",
	}

	if rec := ta.makeRequest("POST", "/register", body, ""); rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}

	rec := ta.makeRequest("POST", "/register", body, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var response map[string]interface{}
	parseJSON(t, rec, &response)
	if response["error"] != "user.duplicate_email" {
		t.Fatalf("expected duplicate_email error, got %v", response["error"])
	}
}

// =============================================================================
// Login Tests
// =============================================================================

func TestAPI_Login_Success(t *testing.T) {
	ta := setupTestAPI(t)
	ta.createTestUser(t, "Alice", "alice@example.com", auth.RoleAdmin, nil)

	rec := ta.makeRequest("POST", "/login", map[string]string{
		"email":    "alice@example.com",
		"password": "testpassword",
	}, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var response map[string]interface{}
	parseJSON(t, rec, &response)

	token, _ := response["token"].(string)
	if token == "" {
		t.Fatal("expected token in response")
	}

	claims, err := ta.jwtService.ValidateToken(token)
	if err != nil {
		t.Fatalf("issued token failed validation: %v", err)
	}
	if claims.Role != auth.RoleAdmin {
		t.Fatalf("expected ADMIN claims, got %s", claims.Role)
	}
}

func TestAPI_Login_UnknownEmail(t *testing.T) {
	ta := setupTestAPI(t)

	rec := ta.makeRequest("POST", "/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever",
	}, "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestAPI_Login_WrongPassword(t *testing.T) {
	ta := setupTestAPI(t)
	ta.createTestUser(t, "Alice", "alice@example.com", auth.RoleAdmin, nil)

	rec := ta.makeRequest("POST", "/login", map[string]string{
		"email":    "alice@example.com",
		"password": "wrong",
	}, "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var response map[string]interface{}
	parseJSON(t, rec, &response)
	if _, hasToken := response["token"]; hasToken {
		t.Fatal("no token may be issued on a failed login")
	}
}

func TestAPI_Logout(t *testing.T) {
	ta := setupTestAPI(t)

	rec := ta.makeRequest("POST", "/logout", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

// =============================================================================
// Auth Gate Tests
// =============================================================================

func TestAPI_AdminRoutes_MissingToken(t *testing.T) {
	ta := setupTestAPI(t)

	for _, route := range []struct{ method, path string }{
		{"POST", "/admin/create"},
		{"PUT", "/admin/update/some-id"},
		{"DELETE", "/admin/delete/some-id"},
		{"GET", "/admin/read"},
		{"GET", "/admin/read/some-id"},
		{"GET", "/profile"},
	} {
		rec := ta.makeRequest(route.method, route.path, nil, "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected status 401, got %d", route.method, route.path, rec.Code)
		}
	}
}

func TestAPI_AdminRoutes_MalformedToken(t *testing.T) {
	ta := setupTestAPI(t)

	rec := ta.makeRequest("GET", "/admin/read", nil, "not-a-jwt")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", rec.Code)
	}
}

func TestAPI_AdminRoutes_ExpiredToken(t *testing.T) {
	ta := setupTestAPI(t)

	// Issue an already-expired token with the same secret
	expiredCfg := auth.DefaultJWTConfig()
	expiredCfg.Secret = "test-secret"
	expiredCfg.TokenDuration = -time.Minute
	expiredSvc := auth.NewJWTService(expiredCfg)

	user, _ := ta.createTestUser(t, "Alice", "alice@example.com", auth.RoleAdmin, nil)
	token, err := expiredSvc.GenerateToken(user)
	if err != nil {
		t.Fatalf("failed to generate expired token: %v", err)
	}

	// Expiry is collapsed into the invalid-token response
	rec := ta.makeRequest("GET", "/admin/read", nil, token)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", rec.Code)
	}
}

func TestAPI_AdminRoutes_UserRoleForbidden(t *testing.T) {
	ta := setupTestAPI(t)
	admin, _ := ta.createTestUser(t, "Alice", "alice@example.com", auth.RoleAdmin, nil)
	_, userToken := ta.createTestUser(t, "Bob", "bob@example.com", auth.RoleUser, &admin.ID)

	rec := ta.makeRequest("GET", "/admin/read", nil, userToken)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", rec.Code)
	}

	// A USER token still reaches /profile
	rec = ta.makeRequest("GET", "/profile", nil, userToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 for profile, got %d", rec.Code)
	}
}

func TestAPI_AuthGate_SchemeIgnored(t *testing.T) {
	ta := setupTestAPI(t)
	_, token := ta.createTestUser(t, "Alice", "alice@example.com", auth.RoleAdmin, nil)

	// The word before the space is not validated
	req := httptest.NewRequest("GET", "/profile", nil)
	req.Header.Set("Authorization", "Token "+token)
	rec := httptest.NewRecorder()
	ta.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 with non-Bearer scheme, got %d", rec.Code)
	}
}

// =============================================================================
// Admin CRUD Tests
// =============================================================================

func TestAPI_AdminCreate_OwnsUser(t *testing.T) {
	ta := setupTestAPI(t)
	admin, token := ta.createTestUser(t, "Alice", "alice@example.com", auth.RoleAdmin, nil)

	rec := ta.makeRequest("POST", "/admin/create", map[string]string{
		"name":     "Bob",
		"email":    "bob@example.com",
		"password": "s3cret",
		"role":     "user",
	}, token)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var response map[string]interface{}
	parseJSON(t, rec, &response)
	userID, _ := response["userId"].(string)

	user, err := ta.repo.GetUserByID(userID)
	if err != nil {
		t.Fatalf("failed to load created user: %v", err)
	}
	if user.AdminID == nil || *user.AdminID != admin.ID {
		t.Fatalf("expected created user to be owned by the caller, got %v", user.AdminID)
	}
}

func TestAPI_AdminCreate_AdminSelfReference(t *testing.T) {
	ta := setupTestAPI(t)
	_, token := ta.createTestUser(t, "Alice", "alice@example.com", auth.RoleAdmin, nil)

	rec := ta.makeRequest("POST", "/admin/create", map[string]string{
		"name":     "Carol",
		"email":    "carol@example.com",
		"password": "s3cret",
		"role":     "ADMIN",
	}, token)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var response map[string]interface{}
	parseJSON(t, rec, &response)
	userID, _ := response["userId"].(string)

	user, err := ta.repo.GetUserByID(userID)
	if err != nil {
		t.Fatalf("failed to load created user: %v", err)
	}
	if user.AdminID == nil || *user.AdminID != user.ID {
		t.Fatalf("expected created admin to reference itself, got %v", user.AdminID)
	}
}

func TestAPI_AdminReadAll_GroupScoped(t *testing.T) {
	ta := setupTestAPI(t)
	admin, token := ta.createTestUser(t, "Alice", "alice@example.com", auth.RoleAdmin, nil)
	other, _ := ta.createTestUser(t, "Eve", "eve@example.com", auth.RoleAdmin, nil)
	ta.createTestUser(t, "Bob", "bob@example.com", auth.RoleUser, &admin.ID)
	ta.createTestUser(t, "Mallory", "mallory@example.com", auth.RoleUser, &other.ID)

	rec := ta.makeRequest("GET", "/admin/read", nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var users []map[string]interface{}
	parseJSON(t, rec, &users)

	// Alice plus Bob; Eve's group is invisible
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d: %v", len(users), users)
	}
	for _, u := range users {
		if _, hasHash := u["password"]; hasHash {
			t.Fatal("listing projection must not include the password hash")
		}
		if u["email"] == "eve@example.com" || u["email"] == "mallory@example.com" {
			t.Fatalf("foreign group leaked into listing: %v", u)
		}
	}
}

func TestAPI_AdminReadOne(t *testing.T) {
	ta := setupTestAPI(t)
	admin, token := ta.createTestUser(t, "Alice", "alice@example.com", auth.RoleAdmin, nil)
	other, _ := ta.createTestUser(t, "Eve", "eve@example.com", auth.RoleAdmin, nil)
	member, _ := ta.createTestUser(t, "Bob", "bob@example.com", auth.RoleUser, &admin.ID)
	foreign, _ := ta.createTestUser(t, "Mallory", "mallory@example.com", auth.RoleUser, &other.ID)

	rec := ta.makeRequest("GET", "/admin/read/"+member.ID, nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var user map[string]interface{}
	parseJSON(t, rec, &user)
	if user["id"] != member.ID {
		t.Fatalf("expected member row, got %v", user["id"])
	}
	// The detail endpoint returns the stored row as-is, hash included
	if hash, _ := user["password"].(string); !strings.HasPrefix(hash, "$2a$") {
		t.Fatalf("expected stored bcrypt hash in detail view, got %v", user["password"])
	}

	// A row outside the caller's group reads as missing
	rec = ta.makeRequest("GET", "/admin/read/"+foreign.ID, nil, token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for foreign row, got %d", rec.Code)
	}

	rec = ta.makeRequest("GET", "/admin/read/does-not-exist", nil, token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for unknown id, got %d", rec.Code)
	}
}

func TestAPI_AdminUpdate(t *testing.T) {
	ta := setupTestAPI(t)
	admin, token := ta.createTestUser(t, "Alice", "alice@example.com", auth.RoleAdmin, nil)
	member, _ := ta.createTestUser(t, "Bob", "bob@example.com", auth.RoleUser, &admin.ID)

	rec := ta.makeRequest("PUT", "/admin/update/"+member.ID, map[string]string{
		"name":  "Robert",
		"email": "robert@example.com",
	}, token)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var response map[string]interface{}
	parseJSON(t, rec, &response)

	updated, ok := response["user"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected user object in response, got %v", response)
	}
	if updated["name"] != "Robert" || updated["email"] != "robert@example.com" {
		t.Fatalf("unexpected updated user: %v", updated)
	}

	rec = ta.makeRequest("PUT", "/admin/update/does-not-exist", map[string]string{
		"name": "X",
	}, token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for unknown id, got %d", rec.Code)
	}
}

func TestAPI_AdminDelete(t *testing.T) {
	ta := setupTestAPI(t)
	admin, token := ta.createTestUser(t, "Alice", "alice@example.com", auth.RoleAdmin, nil)
	member, _ := ta.createTestUser(t, "Bob", "bob@example.com", auth.RoleUser, &admin.ID)

	rec := ta.makeRequest("DELETE", "/admin/delete/"+member.ID, nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	rec = ta.makeRequest("GET", "/admin/read/"+member.ID, nil, token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected member to be gone, got %d", rec.Code)
	}

	rec = ta.makeRequest("DELETE", "/admin/delete/"+member.ID, nil, token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 on second delete, got %d", rec.Code)
	}
}

// =============================================================================
// Profile Tests
// =============================================================================

func TestAPI_Profile(t *testing.T) {
	ta := setupTestAPI(t)
	user, token := ta.createTestUser(t, "Alice", "alice@example.com", auth.RoleAdmin, nil)

	rec := ta.makeRequest("GET", "/profile", nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var profile map[string]interface{}
	parseJSON(t, rec, &profile)
	if profile["id"] != user.ID {
		t.Fatalf("expected own row, got %v", profile["id"])
	}
	if profile["email"] != "alice@example.com" {
		t.Fatalf("unexpected profile email: %v", profile["email"])
	}
}

// =============================================================================
// End-to-End Scenario
// =============================================================================

func TestAPI_FullScenario(t *testing.T) {
	ta := setupTestAPI(t)

	// Admin registers
	rec := ta.makeRequest("POST", "/register", map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "s3cret",
		"role":     "ADMIN",
	}, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var registered map[string]interface{}
	parseJSON(t, rec, &registered)
	adminID, _ := registered["userId"].(string)

	// Admin logs in
	rec = ta.makeRequest("POST", "/login", map[string]string{
		"email":    "alice@example.com",
		"password": "s3cret",
	}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var login map[string]interface{}
	parseJSON(t, rec, &login)
	token, _ := login["token"].(string)
	if token == "" {
		t.Fatal("login: expected token")
	}

	// Admin creates a user
	rec = ta.makeRequest("POST", "/admin/create", map[string]string{
		"name":     "Bob",
		"email":    "bob@example.com",
		"password": "hunter2",
		"role":     "USER",
	}, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	// Admin lists its group: itself plus the new user
	rec = ta.makeRequest("GET", "/admin/read", nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("read: expected 200, got %d", rec.Code)
	}
	var users []map[string]interface{}
	parseJSON(t, rec, &users)
	if len(users) != 2 {
		t.Fatalf("read: expected 2 users, got %d: %v", len(users), users)
	}

	seen := map[string]bool{}
	for _, u := range users {
		seen[u["email"].(string)] = true
	}
	if !seen["alice@example.com"] || !seen["bob@example.com"] {
		t.Fatalf("read: unexpected listing %v", users)
	}

	// The created user can log in and see its own profile
	rec = ta.makeRequest("POST", "/login", map[string]string{
		"email":    "bob@example.com",
		"password": "hunter2",
	}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("user login: expected 200, got %d", rec.Code)
	}
	parseJSON(t, rec, &login)
	userToken, _ := login["token"].(string)

	rec = ta.makeRequest("GET", "/profile", nil, userToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("profile: expected 200, got %d", rec.Code)
	}
	var profile map[string]interface{}
	parseJSON(t, rec, &profile)
	if got, _ := profile["adminId"].(string); got != adminID {
		t.Fatalf("profile: expected adminId %s, got %v", adminID, profile["adminId"])
	}
}
