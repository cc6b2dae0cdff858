package apperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorEnvelope(t *testing.T) {
	t.Parallel()

	body, err := json.Marshal(MissingInput("budget", "Budget is required"))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "error", decoded["status"])
	assert.Equal(t, "MISSING_INPUT", decoded["code"])
	assert.Equal(t, "Budget is required", decoded["message"])
	assert.Equal(t, map[string]interface{}{"field": "budget"}, decoded["details"])
}

func TestHasCodeFollowsWrappedChain(t *testing.T) {
	t.Parallel()

	base := CatalogUnavailable(errors.New("no such table"), "Catalog is not loaded")
	wrapped := fmt.Errorf("load snapshot: %w", base)

	assert.True(t, HasCode(wrapped, CodeCatalogUnavailable))
	assert.False(t, HasCode(wrapped, CodeMissingInput))
	assert.False(t, HasCode(errors.New("plain"), CodeInternalError))
}

func TestInfrastructureErrorsKeepCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")

	dbErr := fmt.Errorf("migrate: %w", DatabaseError(cause, "Failed to replace catalog tables"))
	assert.True(t, Is(dbErr, cause))
	assert.True(t, HasCode(dbErr, CodeDatabaseError))

	pubErr := ExternalServiceError(cause, "postgres", "pg_notify catalog_reload failed")
	assert.True(t, Is(pubErr, cause))
	assert.Equal(t, "postgres", pubErr.Domain)
	assert.True(t, HasCode(pubErr, CodeExternalServiceError))
}

func TestMalformedRecordMessage(t *testing.T) {
	t.Parallel()

	err := MalformedRecord("universities.csv", 4, "min_gpa is not a number")
	assert.Equal(t, CodeMalformedRecord, err.Code)
	assert.Equal(t, "universities.csv: row 4: min_gpa is not a number", err.Message)
}

func TestHandleErrorStatusCodes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"missing input", MissingInput("country", "Country is required"), http.StatusBadRequest, "MISSING_INPUT"},
		{"catalog", CatalogUnavailable(nil, "Catalog unavailable"), http.StatusServiceUnavailable, "CATALOG_UNAVAILABLE"},
		{"not found", ErrVisaCountryNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"database", DatabaseError(errors.New("deadlock"), "Failed to replace catalog tables"), http.StatusInternalServerError, "DATABASE_ERROR"},
		{"broker", ExternalServiceError(errors.New("channel closed"), "amqp", "Failed to publish"), http.StatusBadGateway, "EXTERNAL_SERVICE_ERROR"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var decoded map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
			assert.Equal(t, "error", decoded["status"])
			assert.Equal(t, tt.wantCode, decoded["code"])
		})
	}
}
