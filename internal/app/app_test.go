package app_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unijobs_backend/internal/app"
	"unijobs_backend/internal/config"
	"unijobs_backend/internal/store"
)

var (
	serverOnce sync.Once
	testServer *httptest.Server
)

// getTestServer поднимает один общий httptest-сервер на засеянном хранилище
func getTestServer(t *testing.T) *httptest.Server {
	serverOnce.Do(func() {
		cfg := &config.Config{}
		cfg.Server.Env = "test"
		cfg.JWT.Secret = "test_secret_key_12345"
		cfg.JWT.TTL = 60
		config.AppConfig = cfg

		dataStore := store.New(app.ResumeTemplateCatalog)
		if err := app.SeedStore(dataStore); err != nil {
			t.Fatalf("Failed to seed store: %v", err)
		}

		router := app.SetupRouter(cfg, dataStore)
		testServer = httptest.NewServer(router)
	})
	return testServer
}

func sendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()
	ts := getTestServer(t)

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL+path, reqBody)
	require.NoError(t, err)

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(resBody)
}

// loginSeededStudent логинит засеянного студента и возвращает токен
func loginSeededStudent(t *testing.T) string {
	t.Helper()

	res, body := sendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "john.doe@iitdelhi.ac.in",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var parsed struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &parsed))
	require.NotEmpty(t, parsed.Token)
	return parsed.Token
}

func TestHealthEndpoint(t *testing.T) {
	res, body := sendRequest(t, "GET", "/health", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "ok")
}

func TestRegisterAndLoginFlow(t *testing.T) {
	registerBody := map[string]interface{}{
		"email":           "fresh.student@test.edu",
		"password":        "super_password123",
		"confirmPassword": "super_password123",
		"firstName":       "Fresh",
		"lastName":        "Student",
		"userType":        "student",
		"college":         "Test College",
		"graduationYear":  "2027",
	}

	regRes, regBody := sendRequest(t, "POST", "/api/v1/auth/register", "", registerBody)
	assert.Equal(t, http.StatusCreated, regRes.StatusCode, regBody)
	assert.Contains(t, regBody, "Registration successful")

	logRes, logBody := sendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "fresh.student@test.edu",
		"password": "super_password123",
	})
	assert.Equal(t, http.StatusOK, logRes.StatusCode, logBody)
	assert.Contains(t, logBody, "Login successful")
}

func TestRegisterValidationErrors(t *testing.T) {
	// Пароли не совпадают
	res, body := sendRequest(t, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"email":           "invalid@test.edu",
		"password":        "password123",
		"confirmPassword": "different",
		"firstName":       "Bad",
		"lastName":        "Input",
		"userType":        "student",
		"college":         "Test College",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
}

func TestRegisterDuplicateEmailHTTP(t *testing.T) {
	res, body := sendRequest(t, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"email":           "JOHN.DOE@iitdelhi.ac.in",
		"password":        "password123",
		"confirmPassword": "password123",
		"firstName":       "Clone",
		"lastName":        "Doe",
		"userType":        "student",
		"college":         "IIT Delhi",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)
	assert.Contains(t, body, "CONFLICT")
}

func TestLoginWrongPasswordHTTP(t *testing.T) {
	res, body := sendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "priya.sharma@nitk.edu.in",
		"password": "not-her-password",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode, body)
}

func TestGetCurrentUserHTTP(t *testing.T) {
	token := loginSeededStudent(t)

	res, body := sendRequest(t, "GET", "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "john.doe@iitdelhi.ac.in")
}

func TestProfileRequiresAuth(t *testing.T) {
	res, _ := sendRequest(t, "GET", "/api/v1/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = sendRequest(t, "GET", "/api/v1/profile", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestProfileFlowHTTP(t *testing.T) {
	token := loginSeededStudent(t)

	res, body := sendRequest(t, "GET", "/api/v1/profile", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "IIT Delhi")

	res, body = sendRequest(t, "PUT", "/api/v1/profile", token, map[string]interface{}{
		"bio": "Updated over HTTP",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Updated over HTTP")

	res, body = sendRequest(t, "POST", "/api/v1/profile/education", token, map[string]interface{}{
		"institution": "Online Academy",
		"degree":      "Certificate",
		"startDate":   "2024-01",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	assert.Contains(t, body, "Online Academy")
}

func TestResumeTemplatesPublic(t *testing.T) {
	res, body := sendRequest(t, "GET", "/api/v1/resume-templates", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "modern")
	assert.Contains(t, body, "executive")
}

func TestJobsFlowHTTP(t *testing.T) {
	token := loginSeededStudent(t)

	// Лента публичная
	res, body := sendRequest(t, "GET", "/api/v1/jobs?type=Internship", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Internship")
	assert.NotContains(t, body, "Full-time")

	res, body = sendRequest(t, "POST", "/api/v1/saved-jobs", token, map[string]interface{}{
		"jobId": "job5",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	res, body = sendRequest(t, "GET", "/api/v1/saved-jobs", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "job5")

	res, body = sendRequest(t, "DELETE", "/api/v1/saved-jobs/job5", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
}

func TestApplyUnknownJobHTTP(t *testing.T) {
	token := loginSeededStudent(t)

	res, body := sendRequest(t, "POST", "/api/v1/applications", token, map[string]interface{}{
		"jobId": "no-such-job",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)
	assert.Contains(t, body, "NOT_FOUND")
}

func TestPasswordResetFlowHTTP(t *testing.T) {
	res, body := sendRequest(t, "POST", "/api/v1/auth/reset-password", "", map[string]interface{}{
		"email": "priya.sharma@nitk.edu.in",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var parsed struct {
		ResetToken string `json:"resetToken"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &parsed))
	require.NotEmpty(t, parsed.ResetToken)

	res, body = sendRequest(t, "POST", "/api/v1/auth/update-password", "", map[string]interface{}{
		"token":       parsed.ResetToken,
		"newPassword": "brand_new_pass1",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = sendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "priya.sharma@nitk.edu.in",
		"password": "brand_new_pass1",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
}
