package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	jobsdomain "github.com/NetanelBaruch/Moddo/internal/jobs/domain"
	"github.com/NetanelBaruch/Moddo/internal/projects/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestCreate_RejectsInvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"not json", "not-json"},
		{"missing prompt", `{}`},
		{"blank prompt", `{"prompt": "   "}`},
	}

	h := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/projects", strings.NewReader(tt.body))

			h.create(c)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestSubmitFeedback_RejectsEmptyText(t *testing.T) {
	h := New(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/projects/p1/feedback", strings.NewReader(`{"text": "  "}`))

	h.submitFeedback(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJobStatus_RequiresStage(t *testing.T) {
	h := New(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/projects/p1/jobs", nil)

	h.jobStatus(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRespondError_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"project not found", domain.ErrNotFound, http.StatusNotFound},
		{"job not found", jobsdomain.ErrJobNotFound, http.StatusNotFound},
		{"invalid stage", domain.ErrInvalidStage, http.StatusConflict},
		{"empty prompt", domain.ErrEmptyPrompt, http.StatusBadRequest},
		{"empty text", domain.ErrEmptyText, http.StatusBadRequest},
		{"wrapped invalid stage", errors.Join(errors.New("outer"), domain.ErrInvalidStage), http.StatusConflict},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondError(c, tt.err)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
