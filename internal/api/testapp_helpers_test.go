package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/danverav/exercise-tracker/internal/db"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "exercise-tracker-test.db")
	database, err := db.OpenSQLite(databasePath)
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

	handler := NewHandler(database, time.UTC)
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func postJSON(t *testing.T, app *fiber.App, path string, payload map[string]any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	request := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	return response
}

func postForm(t *testing.T, app *fiber.App, path string, form string) *http.Response {
	t.Helper()

	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form))
	request.Header.Set("Content-Type", fiber.MIMEApplicationForm)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	return response
}

func getPath(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()

	request := httptest.NewRequest(http.MethodGet, path, nil)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	return response
}

func decodeJSONMap(t *testing.T, body io.Reader) map[string]any {
	t.Helper()

	payload := map[string]any{}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return payload
}

func readAPIError(t *testing.T, body io.Reader) string {
	t.Helper()

	payload := map[string]string{}
	raw, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return payload["error"]
}

func createTestUser(t *testing.T, app *fiber.App, username string) string {
	t.Helper()

	response := postJSON(t, app, "/api/users", map[string]any{"username": username})
	defer response.Body.Close()
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("create user %q: expected status 201, got %d", username, response.StatusCode)
	}

	payload := decodeJSONMap(t, response.Body)
	id, _ := payload["id"].(string)
	if id == "" {
		t.Fatalf("create user %q: missing id in response %v", username, payload)
	}
	return id
}

func addTestExercise(t *testing.T, app *fiber.App, userID string, description string, duration any, date string) {
	t.Helper()

	payload := map[string]any{
		"description": description,
		"duration":    duration,
	}
	if date != "" {
		payload["date"] = date
	}

	response := postJSON(t, app, "/api/users/"+userID+"/exercises", payload)
	defer response.Body.Close()
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("add exercise %q: expected status 201, got %d", description, response.StatusCode)
	}
}

type logResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Count    int    `json:"count"`
	Log      []struct {
		Description string `json:"description"`
		Duration    int    `json:"duration"`
		Date        string `json:"date"`
	} `json:"log"`
}

func fetchLog(t *testing.T, app *fiber.App, path string) logResponse {
	t.Helper()

	response := getPath(t, app, path)
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("GET %s: expected status 200, got %d", path, response.StatusCode)
	}

	payload := logResponse{}
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		t.Fatalf("decode log response: %v", err)
	}
	return payload
}
