package resp

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Subhashreel/orders/pkg/apperr"

	"github.com/gin-gonic/gin"
)

func TestErrorStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"not found", apperr.NotFound("order 9 not found"), http.StatusNotFound, "order 9 not found"},
		{"bad request", apperr.BadRequest("invalid status"), http.StatusBadRequest, "invalid status"},
		{"unauthorized", apperr.Unauthorized("invalid token"), http.StatusUnauthorized, "invalid token"},
		{"forbidden", apperr.Forbidden("forbidden"), http.StatusForbidden, "forbidden"},
		{"unavailable", apperr.Unavailable("order store unavailable"), http.StatusServiceUnavailable, "order store unavailable"},
		{"internal", errors.New("sql: database is closed"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			Error(c, tt.err)

			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d", w.Code, tt.status)
			}
			var body struct {
				OK    bool   `json:"ok"`
				Error string `json:"error"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.OK || body.Error != tt.message {
				t.Errorf("body = %+v, want error %q", body, tt.message)
			}
		})
	}
}
