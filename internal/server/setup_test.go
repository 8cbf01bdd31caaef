package server

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"walletmate/internal/config"
	"walletmate/internal/logger"
	"walletmate/internal/services"
	"walletmate/internal/testutil"
)

const testAPIKey = "test-api-key"

// testApp holds the full application stack for flow tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	st, db := testutil.SetupTestStore(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	ledger := services.NewLedger(st, config.RecurrenceAlways)
	return &testApp{DB: db, Router: NewRouter(ledger, testAPIKey)}
}

// request makes an authenticated HTTP request to the test router.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	return app.requestWithKey(method, path, body, testAPIKey)
}

func (app *testApp) requestWithKey(method, path, body, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set("X-API-Key", key)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// budgetByCategory finds the first budget with category in a {"budgets": [...]} body.
func budgetByCategory(t *testing.T, body map[string]interface{}, category string) map[string]interface{} {
	t.Helper()
	for _, raw := range body["budgets"].([]interface{}) {
		b := raw.(map[string]interface{})
		if b["category"] == category {
			return b
		}
	}
	t.Fatalf("no budget for %q in %v", category, body)
	return nil
}

func (app *testApp) spent(t *testing.T, category string) string {
	t.Helper()
	rec := app.request("GET", "/api/v1/budgets", "")
	return budgetByCategory(t, parseJSON(t, rec), category)["spentAmount"].(string)
}
