package budget

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/torres-leo/BudgetApp-backend/internal/auth"
	"github.com/torres-leo/BudgetApp-backend/internal/httpx"
)

func handlerApp(store *fakeStore, principal *auth.Principal) *fiber.App {
	h := NewHandler(store)
	resolve := Resolve(store)

	app := fiber.New(fiber.Config{ErrorHandler: httpx.ErrorHandler})
	grp := app.Group("/api/budgets", asPrincipal(principal))
	grp.Get("/", h.GetAll)
	grp.Post("/", ValidateBody, h.Create)
	grp.Get("/:budgetId", ValidateID, resolve, RequireOwner, h.GetByID)
	grp.Put("/:budgetId", ValidateID, resolve, RequireOwner, ValidateBody, h.Update)
	grp.Delete("/:budgetId", ValidateID, resolve, RequireOwner, h.Delete)
	return app
}

func TestGetAllReturnsOnlyOwnBudgetsNewestFirst(t *testing.T) {
	now := time.Now()
	store := newFakeStore(
		&Budget{ID: 1, Name: "Old", Amount: 10, UserID: "u-1", CreatedAt: now.Add(-2 * time.Hour)},
		&Budget{ID: 2, Name: "New", Amount: 20, UserID: "u-1", CreatedAt: now},
		&Budget{ID: 3, Name: "Other", Amount: 30, UserID: "u-2", CreatedAt: now.Add(-time.Hour)},
	)
	app := handlerApp(store, &auth.Principal{ID: "u-1"})

	res := get(t, app, "/api/budgets/")
	require.Equal(t, http.StatusOK, res.StatusCode)

	var budgets []Budget
	raw, _ := io.ReadAll(res.Body)
	require.NoError(t, json.Unmarshal(raw, &budgets))
	require.Len(t, budgets, 2)
	assert.Equal(t, "New", budgets[0].Name)
	assert.Equal(t, "Old", budgets[1].Name)
}

func TestCreateBindsPrincipalAsOwner(t *testing.T) {
	store := newFakeStore()
	app := handlerApp(store, &auth.Principal{ID: "u-1"})

	req := httptest.NewRequest(http.MethodPost, "/api/budgets/",
		strings.NewReader(`{"name":"Groceries","amount":300}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, res.StatusCode)
	raw, _ := io.ReadAll(res.Body)
	assert.JSONEq(t, `"Budget created successfully"`, string(raw))

	require.Len(t, store.created, 1)
	assert.Equal(t, "u-1", store.created[0].UserID)
	assert.Equal(t, 300.0, store.created[0].Amount)
}

func TestCreateRejectsInvalidBody(t *testing.T) {
	store := newFakeStore()
	app := handlerApp(store, &auth.Principal{ID: "u-1"})

	req := httptest.NewRequest(http.MethodPost, "/api/budgets/",
		strings.NewReader(`{"name":"","amount":-1}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	errs := decodeErrors(t, res.Body)
	assert.Len(t, errs, 2)
	assert.Empty(t, store.created)
}

func TestUpdateWritesThroughStore(t *testing.T) {
	store := newFakeStore(&Budget{ID: 5, Name: "Groceries", Amount: 300, UserID: "u-1"})
	app := handlerApp(store, &auth.Principal{ID: "u-1"})

	req := httptest.NewRequest(http.MethodPut, "/api/budgets/5",
		strings.NewReader(`{"name":"Food","amount":400}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	raw, _ := io.ReadAll(res.Body)
	assert.JSONEq(t, `"Budget updated successfully"`, string(raw))
	assert.Equal(t, Input{Name: "Food", Amount: 400}, store.updated[5])
}

func TestUpdateByNonOwnerNeverReachesStore(t *testing.T) {
	store := newFakeStore(&Budget{ID: 5, Name: "Groceries", Amount: 300, UserID: "u-1"})
	app := handlerApp(store, &auth.Principal{ID: "u-2"})

	// body is malformed too: the authorization failure must win
	req := httptest.NewRequest(http.MethodPut, "/api/budgets/5",
		strings.NewReader(`{"name":"","amount":-1}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Equal(t, "Invalid action", decodeMessage(t, res.Body))
	assert.Empty(t, store.updated)
}

func TestDelete(t *testing.T) {
	store := newFakeStore(&Budget{ID: 5, Name: "Groceries", Amount: 300, UserID: "u-1"})
	app := handlerApp(store, &auth.Principal{ID: "u-1"})

	req := httptest.NewRequest(http.MethodDelete, "/api/budgets/5", nil)
	res, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	raw, _ := io.ReadAll(res.Body)
	assert.JSONEq(t, `"Budget deleted successfully"`, string(raw))
	assert.Equal(t, []int64{5}, store.deleted)
}

func TestDeleteByNonOwner(t *testing.T) {
	store := newFakeStore(&Budget{ID: 5, Name: "Groceries", Amount: 300, UserID: "u-1"})
	app := handlerApp(store, &auth.Principal{ID: "u-2"})

	req := httptest.NewRequest(http.MethodDelete, "/api/budgets/5", nil)
	res, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Empty(t, store.deleted)
}
