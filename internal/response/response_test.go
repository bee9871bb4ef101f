package response

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

	"github.com/hotel-desk/service-booking/internal/domain"
)

func TestError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", domain.NewValidationErrorf(domain.ErrInvalidInterval, "bad stay"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"not found", domain.NewNotFoundError("Hotel", "3"), http.StatusNotFound, "NOT_FOUND"},
		{"wrapped not found", fmt.Errorf("lookup: %w", domain.NewNotFoundError("Room", "1")), http.StatusNotFound, "NOT_FOUND"},
		{"conflict", domain.NewConflictError("stale"), http.StatusConflict, "CONFLICT"},
		{"internal", errors.New("disk on fire"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Error(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			var body Body
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.code, body.Error.Code)
			if tt.status == http.StatusInternalServerError {
				assert.NotContains(t, body.Error.Message, "disk")
			}
		})
	}
}

func TestPaginated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Paginated(c, []int{1, 2}, 5, 1, 2)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":[1,2],"meta":{"total":5,"page":1,"limit":2}}`, w.Body.String())
}
