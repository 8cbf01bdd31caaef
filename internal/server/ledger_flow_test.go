package server

import (
	"net/http"
	"testing"
)

func TestLedgerFlow_ExpenseLifecycle(t *testing.T) {
	app := setupApp(t)

	// Step 1: Budgets for two categories
	rec := app.request("POST", "/api/v1/budgets", `{"category":"Food & Dining","amount":"1000"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("POST", "/api/v1/budgets", `{"category":"Transportation","amount":"500"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// Step 2: Lunch is charged to Food & Dining
	rec = app.request("POST", "/api/v1/expenses", `{"name":"Lunch","amount":"200","category":"Food & Dining"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	expenseID := parseJSON(t, rec)["expense"].(map[string]interface{})["id"].(string)
	if got := app.spent(t, "Food & Dining"); got != "200" {
		t.Errorf("expected food spent 200, got %s", got)
	}

	// Step 3: Dinner exceeds the remaining 800
	rec = app.request("POST", "/api/v1/expenses", `{"name":"Dinner","amount":"900","category":"Food & Dining"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	errObj := parseJSON(t, rec)["error"].(map[string]interface{})
	if errObj["code"] != "BUDGET_EXCEEDED" {
		t.Errorf("expected BUDGET_EXCEEDED, got %v", errObj["code"])
	}
	if got := app.spent(t, "Food & Dining"); got != "200" {
		t.Errorf("expected food spent to stay 200, got %s", got)
	}

	// Step 4: Move Lunch to Transportation
	rec = app.request("PUT", "/api/v1/expenses/"+expenseID, `{"category":"Transportation"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := app.spent(t, "Food & Dining"); got != "0" {
		t.Errorf("expected food spent 0, got %s", got)
	}
	if got := app.spent(t, "Transportation"); got != "200" {
		t.Errorf("expected transportation spent 200, got %s", got)
	}

	// Step 5: Delete it
	rec = app.request("DELETE", "/api/v1/expenses/"+expenseID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := app.spent(t, "Transportation"); got != "0" {
		t.Errorf("expected transportation spent 0, got %s", got)
	}

	// Step 6: Unknown category has no budget
	rec = app.request("POST", "/api/v1/expenses", `{"name":"Taxi","amount":"50","category":"Unknown Category"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if code := parseJSON(t, rec)["error"].(map[string]interface{})["code"]; code != "NO_MATCHING_BUDGET" {
		t.Errorf("expected NO_MATCHING_BUDGET, got %v", code)
	}
	rec = app.request("GET", "/api/v1/expenses", "")
	if total := parseJSON(t, rec)["total_items"].(float64); total != 0 {
		t.Errorf("expected no expenses, got %.0f", total)
	}
}

func TestLedgerFlow_RecurringBudget(t *testing.T) {
	app := setupApp(t)

	rec := app.request("POST", "/api/v1/budgets",
		`{"category":"Subscriptions","amount":"40","recurrenceType":"Monthly","recurrenceDuration":2}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	for i, wantCreated := range []int{1, 1, 0} {
		rec = app.request("POST", "/api/v1/budgets/rollover", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("check %d: expected 200, got %d: %s", i+1, rec.Code, rec.Body.String())
		}
		created := parseJSON(t, rec)["created"].([]interface{})
		if len(created) != wantCreated {
			t.Errorf("check %d: expected %d created, got %d", i+1, wantCreated, len(created))
		}
	}

	rec = app.request("GET", "/api/v1/budgets", "")
	budgets := parseJSON(t, rec)["budgets"].([]interface{})
	if len(budgets) != 3 {
		t.Fatalf("expected 3 budgets, got %d", len(budgets))
	}
	source := budgets[0].(map[string]interface{})
	if source["recurrenceDuration"].(float64) != 0 {
		t.Errorf("expected duration 0, got %v", source["recurrenceDuration"])
	}
}

func TestLedgerFlow_DashboardAndRebuild(t *testing.T) {
	app := setupApp(t)

	app.request("POST", "/api/v1/budgets", `{"category":"Housing","amount":"1500"}`)
	app.request("POST", "/api/v1/budgets", `{"category":"Pets","amount":"500"}`)
	app.request("POST", "/api/v1/expenses", `{"name":"Rent","amount":"1200","category":"Housing"}`)
	app.request("POST", "/api/v1/expenses", `{"name":"Vet","amount":"300","category":"Pets"}`)

	rec := app.request("GET", "/api/v1/dashboard", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	summary := parseJSON(t, rec)
	if summary["totalSpent"] != "1500" || summary["utilization"].(float64) != 75 {
		t.Errorf("unexpected summary: %v", summary)
	}
	if summary["consistent"] != true {
		t.Error("expected consistent ledger")
	}

	// Manually drift the Pets budget, then rebuild.
	rec = app.request("GET", "/api/v1/budgets", "")
	petsID := budgetByCategory(t, parseJSON(t, rec), "Pets")["id"].(string)
	rec = app.request("PUT", "/api/v1/budgets/"+petsID, `{"spentAmount":"10"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if parseJSON(t, app.request("GET", "/api/v1/dashboard", ""))["consistent"] != false {
		t.Error("expected drift to be reported")
	}

	rec = app.request("POST", "/api/v1/budgets/rebuild", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := app.spent(t, "Pets"); got != "300" {
		t.Errorf("expected pets spent 300 after rebuild, got %s", got)
	}
}

func TestLedgerFlow_RecurringExpenses(t *testing.T) {
	app := setupApp(t)

	rec := app.request("POST", "/api/v1/recurring-expenses", `{"name":"Gym","amount":"45","dayOfMonth":3}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	id := parseJSON(t, rec)["recurringExpense"].(map[string]interface{})["id"].(string)

	rec = app.request("PUT", "/api/v1/recurring-expenses/"+id, `{"amount":"50"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/recurring-expenses", "")
	list := parseJSON(t, rec)["recurringExpenses"].([]interface{})
	if len(list) != 1 {
		t.Fatalf("expected 1 template, got %d", len(list))
	}
	record := list[0].(map[string]interface{})
	if record["amount"] != "50" || record["dayOfMonth"].(float64) != 3 {
		t.Errorf("unexpected template: %v", record)
	}

	rec = app.request("DELETE", "/api/v1/recurring-expenses/"+id, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_Auth(t *testing.T) {
	app := setupApp(t)

	if rec := app.requestWithKey("GET", "/api/v1/budgets", "", ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without key, got %d", rec.Code)
	}
	if rec := app.requestWithKey("GET", "/api/v1/budgets", "", "wrong"); rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 with wrong key, got %d", rec.Code)
	}
	if rec := app.requestWithKey("GET", "/api/health", "", ""); rec.Code != http.StatusOK {
		t.Errorf("expected health to be open, got %d", rec.Code)
	}
	if rec := app.request("GET", "/api/v1/categories", ""); rec.Code != http.StatusOK {
		t.Errorf("expected 200 with key, got %d", rec.Code)
	}
}

func TestRouter_ErrorResponses(t *testing.T) {
	app := setupApp(t)

	cases := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		code   string
	}{
		{"zero_amount", "POST", "/api/v1/budgets", `{"category":"Pets","amount":"0"}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"missing_amount", "POST", "/api/v1/budgets", `{"category":"Pets"}`, http.StatusBadRequest, "MISSING_REQUIRED_FIELD"},
		{"unknown_budget", "GET", "/api/v1/budgets/0192f5a4-7c1e-7d2a-9b3c-4d5e6f708192", "", http.StatusNotFound, "BUDGET_NOT_FOUND"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := app.request(tc.method, tc.path, tc.body)
			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d: %s", tc.status, rec.Code, rec.Body.String())
			}
			errObj, ok := parseJSON(t, rec)["error"].(map[string]interface{})
			if !ok {
				t.Fatalf("expected error object, got %s", rec.Body.String())
			}
			if errObj["code"] != tc.code {
				t.Errorf("expected %s, got %v", tc.code, errObj["code"])
			}
		})
	}
}
