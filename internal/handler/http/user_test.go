package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(rec *httptest.ResponseRecorder, v interface{}) error {
	return json.Unmarshal(rec.Body.Bytes(), v)
}

type monthSalaryPayload struct {
	Data struct {
		Month  string           `json:"month"`
		Salary *decimal.Decimal `json:"salary"`
	} `json:"data"`
}

// A month without a configured salary answers 200 with a null salary;
// clients read null as "not set yet", never as an error.
func TestSalaryLookup_NullWhenUnset(t *testing.T) {
	handlerTestInit(t)
	ctx := context.Background()
	truncateHandlerTables(t, ctx)

	employeeID := createTestUser(t, ctx, "anam", "123456", "employee")
	createTestUser(t, ctx, "admin", "admin123", "manager")
	router := newTestRouter(t)

	employeeToken := loginAs(t, router, "anam", "123456")
	managerToken := loginAs(t, router, "admin", "admin123")

	rec := doJSON(t, router, http.MethodGet, "/api/v1/users/me/salary/2025-06", employeeToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var own monthSalaryPayload
	require.NoError(t, decodeBody(rec, &own))
	assert.Equal(t, "2025-06", own.Data.Month)
	assert.Nil(t, own.Data.Salary)

	// Same shape through the manager lookup.
	path := fmt.Sprintf("/api/v1/users/%d/salary/2025-06", employeeID)
	rec = doJSON(t, router, http.MethodGet, path, managerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var byManager monthSalaryPayload
	require.NoError(t, decodeBody(rec, &byManager))
	assert.Nil(t, byManager.Data.Salary)

	// Once configured, both lookups carry the amount.
	rec = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/v1/users/%d/salary", employeeID), managerToken, map[string]interface{}{
		"month":  "2025-06",
		"amount": 3000000,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/v1/users/me/salary/2025-06", employeeToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var configured monthSalaryPayload
	require.NoError(t, decodeBody(rec, &configured))
	require.NotNil(t, configured.Data.Salary)
	assert.True(t, configured.Data.Salary.Equal(decimal.NewFromInt(3000000)), configured.Data.Salary.String())
}
