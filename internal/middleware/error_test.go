package middleware

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

	apperrors "github.com/RiegL/ostia-visitas-report/pkg/errors"
)

func serveError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.Use(ErrorHandler())
	r.GET("/fail", func(c *gin.Context) {
		c.Error(err)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))
	return w
}

func TestErrorHandlerStatusMapping(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "not found",
			err:         apperrors.NotFound("patient", nil),
			wantStatus:  http.StatusNotFound,
			wantMessage: "patient not found",
		},
		{
			name:        "conflict",
			err:         apperrors.Conflict("patient already has a visit scheduled for this date", nil),
			wantStatus:  http.StatusConflict,
			wantMessage: "patient already has a visit scheduled for this date",
		},
		{
			name:        "unauthorized",
			err:         apperrors.Unauthorized(errors.New("invalid credentials")),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "unauthorized",
		},
		{
			name:        "bad request",
			err:         apperrors.BadRequest("invalid date", nil),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid date",
		},
		{
			name:        "wrapped app error",
			err:         fmt.Errorf("listing visits: %w", apperrors.NotFound("appointment", nil)),
			wantStatus:  http.StatusNotFound,
			wantMessage: "appointment not found",
		},
		{
			name:        "plain error falls back to 500",
			err:         errors.New("connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serveError(tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, body.Code)
			assert.Equal(t, tt.wantMessage, body.Message)
			assert.NotEmpty(t, body.TraceID)
		})
	}
}

func TestErrorHandlerLeavesCleanRequestsAlone(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "success"})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success"}`, w.Body.String())
}
