package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alexander2005-rgb/Quiz-application/config"
	"github.com/Alexander2005-rgb/Quiz-application/routes"
	"github.com/Alexander2005-rgb/Quiz-application/storage"
)

func newTestApp() *fiber.App {
	cfg := &config.Config{JWTSecret: "testsecret", Env: config.EnvDevelopment}
	app := fiber.New()
	routes.SetupRoutes(app, storage.NewMemoryStorage(), cfg)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	payload := map[string]interface{}{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &payload))
	} else if len(raw) > 0 {
		payload["_list"] = string(raw)
	}
	return resp, payload
}

func registerAndLogin(t *testing.T, app *fiber.App, username, role string) string {
	t.Helper()

	resp, _ := doJSON(t, app, "POST", "/api/auth/register", "", map[string]string{
		"username": username,
		"password": "password123",
		"role":     role,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, payload := doJSON(t, app, "POST", "/api/auth/login", "", map[string]string{
		"username": username,
		"password": "password123",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	token, _ := payload["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRegisterEndpoint(t *testing.T) {
	app := newTestApp()

	resp, payload := doJSON(t, app, "POST", "/api/auth/register", "", map[string]string{
		"username": "newuser",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	user := payload["user"].(map[string]interface{})
	assert.Equal(t, "newuser", user["username"])
	assert.Equal(t, "user", user["role"])
	assert.NotContains(t, user, "passwordHash")

	// Same username again conflicts; exactly one account persists.
	resp, payload = doJSON(t, app, "POST", "/api/auth/register", "", map[string]string{
		"username": "newuser",
		"password": "other",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "duplicate_username", payload["error"])
}

func TestRegisterEndpoint_MissingFields(t *testing.T) {
	app := newTestApp()

	resp, payload := doJSON(t, app, "POST", "/api/auth/register", "", map[string]string{
		"username": "nopassword",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "missing_field", payload["error"])
}

func TestLoginEndpoint_InvalidCredentials(t *testing.T) {
	app := newTestApp()
	registerAndLogin(t, app, "bob", "")

	wrongResp, wrongPayload := doJSON(t, app, "POST", "/api/auth/login", "", map[string]string{
		"username": "bob",
		"password": "wrong",
	})
	unknownResp, unknownPayload := doJSON(t, app, "POST", "/api/auth/login", "", map[string]string{
		"username": "ghost",
		"password": "password123",
	})

	assert.Equal(t, fiber.StatusUnauthorized, wrongResp.StatusCode)
	assert.Equal(t, fiber.StatusUnauthorized, unknownResp.StatusCode)
	// Identical body for both failure modes.
	assert.Equal(t, wrongPayload, unknownPayload)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp()

	for _, route := range []struct{ method, path string }{
		{"GET", "/api/questions"},
		{"POST", "/api/questions"},
		{"DELETE", "/api/questions"},
		{"POST", "/api/questions/add"},
		{"GET", "/api/result"},
		{"POST", "/api/result"},
		{"DELETE", "/api/result"},
		{"GET", "/api/quizzes"},
		{"POST", "/api/quizzes"},
	} {
		resp, _ := doJSON(t, app, route.method, route.path, "", nil)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "%s %s", route.method, route.path)
	}
}

func TestProtectedRoutesRejectBadToken(t *testing.T) {
	app := newTestApp()

	resp, payload := doJSON(t, app, "GET", "/api/questions", "not-a-token", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "malformed_token", payload["error"])
}

func TestAdminRoutesForbidUsers(t *testing.T) {
	app := newTestApp()
	userToken := registerAndLogin(t, app, "bob", "")

	for _, route := range []struct{ method, path string }{
		{"POST", "/api/questions"},
		{"DELETE", "/api/questions"},
		{"POST", "/api/questions/add"},
		{"DELETE", "/api/result"},
	} {
		resp, payload := doJSON(t, app, route.method, route.path, userToken, nil)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode, "%s %s", route.method, route.path)
		assert.Equal(t, "forbidden_role", payload["error"])
	}
}

func TestQuizLifecycle(t *testing.T) {
	app := newTestApp()
	adminToken := registerAndLogin(t, app, "root", "admin")

	// Create quiz
	resp, _ := doJSON(t, app, "POST", "/api/quizzes", adminToken, map[string]string{
		"quizName": "math1",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Duplicate quiz
	resp, payload := doJSON(t, app, "POST", "/api/quizzes", adminToken, map[string]string{
		"quizName": "math1",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "duplicate_quiz", payload["error"])

	// Add a question
	resp, payload = doJSON(t, app, "POST", "/api/questions/add", adminToken, map[string]interface{}{
		"quizId":        "math1",
		"question":      "2+2?",
		"options":       []string{"3", "4", "5"},
		"correctAnswer": 1,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	quizPayload := payload["quiz"].(map[string]interface{})
	questions := quizPayload["questions"].([]interface{})
	answers := quizPayload["answers"].([]interface{})
	require.Len(t, questions, 1)
	require.Len(t, answers, 1)
	assert.Equal(t, []interface{}{"3", "4", "5"}, questions[0].(map[string]interface{})["options"])
	assert.EqualValues(t, 1, answers[0])

	// Unknown quiz
	resp, payload = doJSON(t, app, "POST", "/api/questions/add", adminToken, map[string]interface{}{
		"quizId":        "ghost",
		"question":      "q",
		"options":       []string{"a", "b", "c"},
		"correctAnswer": 0,
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "quiz_not_found", payload["error"])

	// Bad option count
	resp, payload = doJSON(t, app, "POST", "/api/questions/add", adminToken, map[string]interface{}{
		"quizId":        "math1",
		"question":      "q",
		"options":       []string{"a", "b"},
		"correctAnswer": 0,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid_option_count", payload["error"])

	// Summaries list the quiz without question bodies
	resp, payload = doJSON(t, app, "GET", "/api/quizzes", adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var summaries []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(payload["_list"].(string)), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, "math1", summaries[0]["quizId"])
	assert.NotContains(t, summaries[0], "questions")

	// Questions endpoint returns full wire shape
	resp, payload = doJSON(t, app, "GET", "/api/questions?quizId=math1", adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var quizzes []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(payload["_list"].(string)), &quizzes))
	require.Len(t, quizzes, 1)
	assert.Len(t, quizzes[0]["questions"], 1)
	assert.Len(t, quizzes[0]["answers"], 1)

	// Drop everything
	resp, _ = doJSON(t, app, "DELETE", "/api/questions", adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, payload = doJSON(t, app, "GET", "/api/questions?quizId=math1", adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	quizzes = nil
	require.NoError(t, json.Unmarshal([]byte(payload["_list"].(string)), &quizzes))
	assert.Empty(t, quizzes)
}

func TestQuestionsSeedOnFirstRun(t *testing.T) {
	app := newTestApp()
	token := registerAndLogin(t, app, "bob", "")

	read := func() []map[string]interface{} {
		resp, payload := doJSON(t, app, "GET", "/api/questions", token, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var quizzes []map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(payload["_list"].(string)), &quizzes))
		return quizzes
	}

	first := read()
	require.Len(t, first, 1)
	assert.Equal(t, "default", first[0]["quizId"])

	second := read()
	require.Len(t, second, 1)
	assert.Equal(t, first[0]["questions"], second[0]["questions"])
}

func TestResultLifecycle(t *testing.T) {
	app := newTestApp()
	userToken := registerAndLogin(t, app, "bob", "")
	adminToken := registerAndLogin(t, app, "root", "admin")

	resp, _ := doJSON(t, app, "POST", "/api/result", userToken, map[string]interface{}{
		"username": "bob",
		"result":   []map[string]interface{}{{"q": 1, "correct": true}},
		"attempts": 2,
		"points":   10,
		"achived":  "Passed",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Both identifying fields absent is the only rejected shape.
	resp, payload := doJSON(t, app, "POST", "/api/result", userToken, map[string]interface{}{
		"attempts": 1,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "missing_field", payload["error"])

	resp, payload = doJSON(t, app, "GET", "/api/result", userToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var results []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(payload["_list"].(string)), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "bob", results[0]["username"])
	assert.EqualValues(t, 10, results[0]["points"])

	resp, payload = doJSON(t, app, "DELETE", "/api/result", adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, payload["deleted"])
}
