package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCheckoutBody() map[string]any {
	return map[string]any{
		"name":           "Ada Lovelace",
		"email":          "ada@example.com",
		"phone":          "+1 555 0100",
		"address":        "12 Analytical Way",
		"order_type":     "delivery",
		"payment_method": "card",
	}
}

func pollCheckoutState(t *testing.T, srv *httptest.Server, sessionID, want string) map[string]any {
	t.Helper()

	var status map[string]any
	require.Eventually(t, func() bool {
		resp := doRequest(t, srv, http.MethodGet, "/api/v1/checkout", sessionID, nil)
		decodeData(t, resp, &status)
		return status["state"] == want
	}, time.Second, 5*time.Millisecond)
	return status
}

func TestCheckoutFlow(t *testing.T) {
	srv := setupServer(t)

	doRequest(t, srv, http.MethodPost, "/api/v1/cart/items", "sess-1",
		map[string]any{"item_id": "bruschetta", "quantity": 2})

	resp := doRequest(t, srv, http.MethodPost, "/api/v1/checkout", "sess-1", validCheckoutBody())
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	var status map[string]any
	decodeData(t, resp, &status)
	assert.Equal(t, "submitting", status["state"])

	status = pollCheckoutState(t, srv, "sess-1", "completed")
	order, ok := status["order"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ORD-001001", order["number"])
	assert.Equal(t, float64(2135), order["total"])

	// Dismiss returns the session to idle.
	resp = doRequest(t, srv, http.MethodDelete, "/api/v1/checkout", "sess-1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeData(t, resp, &status)
	assert.Equal(t, "idle", status["state"])
}

func TestCheckoutValidationFailure(t *testing.T) {
	srv := setupServer(t)

	doRequest(t, srv, http.MethodPost, "/api/v1/cart/items", "sess-1",
		map[string]any{"item_id": "bruschetta"})

	body := validCheckoutBody()
	body["email"] = "not-an-email"

	resp := doRequest(t, srv, http.MethodPost, "/api/v1/checkout", "sess-1", body)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var status map[string]any
	decodeData(t, resp, &status)
	assert.Equal(t, "validation_failed", status["state"])

	fields, ok := status["field_errors"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, fields, "email")
}

func TestCheckoutEmptyCart(t *testing.T) {
	srv := setupServer(t)

	resp := doRequest(t, srv, http.MethodPost, "/api/v1/checkout", "sess-1", validCheckoutBody())
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCheckoutDoubleSubmitConflicts(t *testing.T) {
	srv := setupServer(t)

	doRequest(t, srv, http.MethodPost, "/api/v1/cart/items", "sess-1",
		map[string]any{"item_id": "bruschetta"})

	resp := doRequest(t, srv, http.MethodPost, "/api/v1/checkout", "sess-1", validCheckoutBody())
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodPost, "/api/v1/checkout", "sess-1", validCheckoutBody())
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestCheckoutStatusIdleByDefault(t *testing.T) {
	srv := setupServer(t)

	resp := doRequest(t, srv, http.MethodGet, "/api/v1/checkout", "sess-9", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var status map[string]any
	decodeData(t, resp, &status)
	assert.Equal(t, "idle", status["state"])
}

func TestReservationEndpoint(t *testing.T) {
	srv := setupServer(t)

	body := map[string]any{
		"name":       "Ada Lovelace",
		"phone":      "+1 555 0100",
		"date":       time.Now().UTC().AddDate(0, 0, 3).Format("2006-01-02"),
		"time_slot":  "19:30",
		"party_size": 2,
	}

	resp := doRequest(t, srv, http.MethodPost, "/api/v1/reservations", "", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var res map[string]any
	decodeData(t, resp, &res)
	assert.NotEmpty(t, res["confirmation_code"])

	// Missing required fields fail validation.
	resp = doRequest(t, srv, http.MethodPost, "/api/v1/reservations", "", map[string]any{"name": "Ada"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestNewsletterEndpoint(t *testing.T) {
	srv := setupServer(t)

	body := map[string]any{
		"first_name":  "Ada",
		"last_name":   "Lovelace",
		"email":       "ada@example.com",
		"preferences": []string{"menu"},
	}

	resp := doRequest(t, srv, http.MethodPost, "/api/v1/newsletter/subscriptions", "", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var sub map[string]any
	decodeData(t, resp, &sub)
	assert.NotEmpty(t, sub["id"])

	body["email"] = "nope"
	resp = doRequest(t, srv, http.MethodPost, "/api/v1/newsletter/subscriptions", "", body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealthEndpoints(t *testing.T) {
	srv := setupServer(t)

	resp := doRequest(t, srv, http.MethodGet, "/health/live", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodGet, "/health/ready", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
