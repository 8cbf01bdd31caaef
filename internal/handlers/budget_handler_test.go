package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "walletmate/internal/errors"
	"walletmate/internal/models"
	"walletmate/internal/services"
)

func setupBudgetRouter(handler *BudgetHandler) *gin.Engine {
	r := newTestRouter()
	r.POST("/budgets", handler.SetBudget)
	r.GET("/budgets", handler.GetBudgets)
	r.POST("/budgets/rollover", handler.Rollover)
	r.POST("/budgets/rebuild", handler.RebuildSpentAmounts)
	r.GET("/budgets/:id", handler.GetBudget)
	r.PUT("/budgets/:id", handler.UpdateBudget)
	r.DELETE("/budgets/:id", handler.DeleteBudget)
	return r
}

func TestBudgetHandler_SetBudget(t *testing.T) {
	t.Run("returns 200 with budgets", func(t *testing.T) {
		var got services.BudgetInput
		svc := &mockBudgetService{
			createOrUpdateBudgetFn: func(input services.BudgetInput) ([]models.Budget, error) {
				got = input
				return []models.Budget{{ID: testBudgetID, Category: input.Category, Amount: input.Amount}}, nil
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(svc, &mockRecurrenceService{}))

		rec := doRequest(r, "POST", "/budgets",
			`{"category":"Food & Dining","amount":"1000.50","recurrenceType":"Monthly","recurrenceDuration":3}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Category != models.CategoryFoodDining {
			t.Errorf("expected Food & Dining, got %s", got.Category)
		}
		if !got.Amount.Equal(decimal.RequireFromString("1000.50")) {
			t.Errorf("expected amount 1000.50, got %s", got.Amount)
		}
		if got.RecurrenceType != models.RecurrenceMonthly || got.RecurrenceDuration == nil || *got.RecurrenceDuration != 3 {
			t.Errorf("unexpected recurrence %s/%v", got.RecurrenceType, got.RecurrenceDuration)
		}
		budgets := parseJSON(t, rec)["budgets"].([]interface{})
		if len(budgets) != 1 {
			t.Errorf("expected 1 budget, got %d", len(budgets))
		}
	})

	t.Run("accepts numeric amount", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}, &mockRecurrenceService{}))

		rec := doRequest(r, "POST", "/budgets", `{"category":"Pets","amount":25}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 400 on missing amount", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}, &mockRecurrenceService{}))

		rec := doRequest(r, "POST", "/budgets", `{"category":"Pets"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "MISSING_REQUIRED_FIELD")
	})

	t.Run("returns 400 on unknown category", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}, &mockRecurrenceService{}))

		rec := doRequest(r, "POST", "/budgets", `{"category":"Yachts","amount":25}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_CATEGORY")
	})

	t.Run("returns 400 on unknown recurrence", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}, &mockRecurrenceService{}))

		rec := doRequest(r, "POST", "/budgets", `{"category":"Pets","amount":25,"recurrenceType":"Hourly"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 500 on storage failure", func(t *testing.T) {
		svc := &mockBudgetService{
			createOrUpdateBudgetFn: func(services.BudgetInput) ([]models.Budget, error) {
				return nil, apperrors.ErrStorageFailure
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(svc, &mockRecurrenceService{}))

		rec := doRequest(r, "POST", "/budgets", `{"category":"Pets","amount":25}`)
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "STORAGE_FAILURE")
	})
}

func TestBudgetHandler_GetBudget(t *testing.T) {
	t.Run("returns 200", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}, &mockRecurrenceService{}))

		rec := doRequest(r, "GET", "/budgets/"+testBudgetID, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		budget := parseJSON(t, rec)["budget"].(map[string]interface{})
		if budget["id"] != testBudgetID {
			t.Errorf("expected id %s, got %v", testBudgetID, budget["id"])
		}
	})

	t.Run("returns 404", func(t *testing.T) {
		svc := &mockBudgetService{
			getBudgetByIDFn: func(string) (*models.Budget, error) {
				return nil, apperrors.ErrBudgetNotFound
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(svc, &mockRecurrenceService{}))

		rec := doRequest(r, "GET", "/budgets/"+testBudgetID, "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "BUDGET_NOT_FOUND")
	})

	t.Run("returns 400 on malformed id", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}, &mockRecurrenceService{}))

		rec := doRequest(r, "GET", "/budgets/not-a-uuid", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestBudgetHandler_UpdateBudget(t *testing.T) {
	t.Run("passes only given fields", func(t *testing.T) {
		var got services.BudgetUpdate
		svc := &mockBudgetService{
			updateBudgetFn: func(id string, update services.BudgetUpdate) ([]models.Budget, error) {
				got = update
				return []models.Budget{}, nil
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(svc, &mockRecurrenceService{}))

		rec := doRequest(r, "PUT", "/budgets/"+testBudgetID, `{"amount":"750"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Amount == nil || !got.Amount.Equal(decimal.NewFromInt(750)) {
			t.Errorf("expected amount 750, got %v", got.Amount)
		}
		if got.Category != nil || got.SpentAmount != nil || got.RecurrenceType != nil {
			t.Errorf("expected other fields to be nil, got %+v", got)
		}
	})

	t.Run("returns 400 on category taken", func(t *testing.T) {
		svc := &mockBudgetService{
			updateBudgetFn: func(string, services.BudgetUpdate) ([]models.Budget, error) {
				return nil, apperrors.ErrCategoryTaken
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(svc, &mockRecurrenceService{}))

		rec := doRequest(r, "PUT", "/budgets/"+testBudgetID, `{"category":"Housing"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CATEGORY_TAKEN")
	})

	t.Run("returns 400 on unknown category", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}, &mockRecurrenceService{}))

		rec := doRequest(r, "PUT", "/budgets/"+testBudgetID, `{"category":"Yachts"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_CATEGORY")
	})
}

func TestBudgetHandler_DeleteBudget(t *testing.T) {
	var deleted string
	svc := &mockBudgetService{
		deleteBudgetFn: func(id string) ([]models.Budget, error) {
			deleted = id
			return []models.Budget{}, nil
		},
	}
	r := setupBudgetRouter(NewBudgetHandler(svc, &mockRecurrenceService{}))

	rec := doRequest(r, "DELETE", "/budgets/"+testBudgetID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deleted != testBudgetID {
		t.Errorf("expected %s to be deleted, got %s", testBudgetID, deleted)
	}
}

func TestBudgetHandler_Rollover(t *testing.T) {
	fixed := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	var gotNow time.Time
	rec := &mockRecurrenceService{
		checkAndRollForwardFn: func(now time.Time) (*services.RolloverResult, error) {
			gotNow = now
			return &services.RolloverResult{
				Budgets: []models.Budget{{ID: testBudgetID}, {ID: testExpenseID, SourceID: testBudgetID}},
				Created: []models.Budget{{ID: testExpenseID, SourceID: testBudgetID}},
			}, nil
		},
	}
	handler := NewBudgetHandler(&mockBudgetService{}, rec)
	handler.now = func() time.Time { return fixed }
	r := setupBudgetRouter(handler)

	resp := doRequest(r, "POST", "/budgets/rollover", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !gotNow.Equal(fixed) {
		t.Errorf("expected check at %v, got %v", fixed, gotNow)
	}
	body := parseJSON(t, resp)
	if len(body["created"].([]interface{})) != 1 || len(body["budgets"].([]interface{})) != 2 {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestBudgetHandler_RebuildSpentAmounts(t *testing.T) {
	called := false
	svc := &mockBudgetService{
		rebuildSpentAmountsFn: func() ([]models.Budget, error) {
			called = true
			return []models.Budget{}, nil
		},
	}
	r := setupBudgetRouter(NewBudgetHandler(svc, &mockRecurrenceService{}))

	rec := doRequest(r, "POST", "/budgets/rebuild", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !called {
		t.Error("expected rebuild to be called")
	}
}

func TestCategoryHandler_GetCategories(t *testing.T) {
	r := newTestRouter()
	r.GET("/categories", NewCategoryHandler().GetCategories)

	rec := doRequest(r, "GET", "/categories", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	categories := parseJSON(t, rec)["categories"].([]interface{})
	if len(categories) != 22 {
		t.Errorf("expected 22 categories, got %d", len(categories))
	}
	if categories[0] != "Housing" {
		t.Errorf("expected Housing first, got %v", categories[0])
	}
}
