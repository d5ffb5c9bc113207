package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestTransactionFlow_CreateReadUpdateDelete(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "crud@test.com", "password123")

	// Create
	txID := app.createTransaction(t, token, "Monthly salary", 300000, "Salary", "2026-08-01")

	// Read back
	rec := app.request("GET", fmt.Sprintf("/api/transactions/%.0f", txID), "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	tx := parseJSON(t, rec)["transaction"].(map[string]interface{})
	if tx["title"] != "Monthly salary" {
		t.Errorf("expected title Monthly salary, got %v", tx["title"])
	}
	if tx["type"] != "income" {
		t.Errorf("expected type income, got %v", tx["type"])
	}

	// Update: flip the sign, which flips the derived direction
	rec = app.request("PUT", fmt.Sprintf("/api/transactions/%.0f", txID),
		`{"amount":-300000}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("update failed: %d %s", rec.Code, rec.Body.String())
	}
	tx = parseJSON(t, rec)["transaction"].(map[string]interface{})
	if tx["type"] != "expense" {
		t.Errorf("expected type expense after sign flip, got %v", tx["type"])
	}
	if tx["title"] != "Monthly salary" {
		t.Errorf("expected untouched title, got %v", tx["title"])
	}

	// Delete
	rec = app.request("DELETE", fmt.Sprintf("/api/transactions/%.0f", txID), "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete failed: %d %s", rec.Code, rec.Body.String())
	}

	// Gone: read and repeated delete both 404
	rec = app.request("GET", fmt.Sprintf("/api/transactions/%.0f", txID), "", token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
	rec = app.request("DELETE", fmt.Sprintf("/api/transactions/%.0f", txID), "", token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", rec.Code)
	}
}

func TestTransactionFlow_ListIsNewestFirst(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "order@test.com", "password123")

	app.createTransaction(t, token, "Oldest", -100, "Other", "2026-06-01")
	app.createTransaction(t, token, "Newest", -300, "Other", "2026-08-01")
	app.createTransaction(t, token, "Middle", -200, "Other", "2026-07-01")

	rec := app.request("GET", "/api/transactions", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["count"] != float64(3) {
		t.Fatalf("expected count 3, got %v", result["count"])
	}
	transactions := result["transactions"].([]interface{})
	titles := make([]string, len(transactions))
	for i, raw := range transactions {
		titles[i] = raw.(map[string]interface{})["title"].(string)
	}
	want := []string{"Newest", "Middle", "Oldest"}
	for i := range want {
		if titles[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, titles)
		}
	}
}

func TestTransactionFlow_TenantIsolation(t *testing.T) {
	app := setupApp(t)
	aliceToken, _ := app.registerUser(t, "alice@test.com", "password123")
	bobToken, _ := app.registerUser(t, "bob@test.com", "password123")

	aliceTxID := app.createTransaction(t, aliceToken, "Alice rent", -120000, "Rent", "2026-08-01")

	// Bob's list never shows Alice's transaction.
	rec := app.request("GET", "/api/transactions", "", bobToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if parseJSON(t, rec)["count"] != float64(0) {
		t.Error("expected empty list for the other user")
	}

	// Read, update, and delete through Bob all look like a missing record.
	path := fmt.Sprintf("/api/transactions/%.0f", aliceTxID)
	for _, attempt := range []struct{ method, body string }{
		{"GET", ""},
		{"PUT", `{"title":"Hijacked"}`},
		{"DELETE", ""},
	} {
		rec := app.request(attempt.method, path, attempt.body, bobToken)
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s as non-owner: expected 404, got %d", attempt.method, rec.Code)
		}
		errObj := parseJSON(t, rec)["error"].(map[string]interface{})
		if errObj["code"] != "TRANSACTION_NOT_FOUND" {
			t.Errorf("%s as non-owner: expected TRANSACTION_NOT_FOUND, got %v", attempt.method, errObj["code"])
		}
	}

	// Alice's transaction is untouched.
	rec = app.request("GET", path, "", aliceToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("owner read failed after foreign attempts: %d", rec.Code)
	}
	tx := parseJSON(t, rec)["transaction"].(map[string]interface{})
	if tx["title"] != "Alice rent" {
		t.Errorf("expected title unchanged, got %v", tx["title"])
	}
}

func TestTransactionFlow_ZeroAmountIsIncome(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "zero@test.com", "password123")

	app.createTransaction(t, token, "Placeholder", 0, "Other", "2026-08-01")

	rec := app.request("GET", "/api/transactions", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	transactions := parseJSON(t, rec)["transactions"].([]interface{})
	tx := transactions[0].(map[string]interface{})
	if tx["type"] != "income" {
		t.Errorf("expected zero amount classified as income, got %v", tx["type"])
	}
}
