package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	jobsdomain "github.com/NetanelBaruch/Moddo/internal/jobs/domain"
	"github.com/NetanelBaruch/Moddo/internal/projects/domain"
	"github.com/NetanelBaruch/Moddo/internal/projects/service"
)

type Handler struct {
	svc *service.ProjectService
}

func New(svc *service.ProjectService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Prompt) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "prompt is required"})
		return
	}

	userID := c.GetString("firebase_uid")
	p, err := h.svc.CreateProject(c.Request.Context(), userID, req.Prompt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p})
}

func (h *Handler) list(c *gin.Context) {
	userID := c.GetString("firebase_uid")
	items, err := h.svc.ListProjects(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

func (h *Handler) get(c *gin.Context) {
	userID := c.GetString("firebase_uid")
	p, err := h.svc.GetProject(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) delete(c *gin.Context) {
	userID := c.GetString("firebase_uid")
	if err := h.svc.DeleteProject(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) generateConcepts(c *gin.Context) {
	userID := c.GetString("firebase_uid")
	p, err := h.svc.GenerateConcepts(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) submitFeedback(c *gin.Context) {
	var req feedbackReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "feedback text is required"})
		return
	}

	userID := c.GetString("firebase_uid")
	entry, err := h.svc.SubmitFeedback(c.Request.Context(), userID, c.Param("id"), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "feedback": entry})
}

func (h *Handler) generateModel(c *gin.Context) {
	userID := c.GetString("firebase_uid")
	p, err := h.svc.GenerateModel(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p, "printability": p.Model.Printability})
}

func (h *Handler) generatePrintFile(c *gin.Context) {
	userID := c.GetString("firebase_uid")
	p, err := h.svc.GeneratePrintFile(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p, "printability": p.PrintFile.Printability})
}

func (h *Handler) downloadPrintFile(c *gin.Context) {
	userID := c.GetString("firebase_uid")
	url, err := h.svc.PrintFileURL(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "url": url})
}

func (h *Handler) jobStatus(c *gin.Context) {
	stage := c.Query("stage")
	if stage == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "stage query parameter is required"})
		return
	}

	userID := c.GetString("firebase_uid")
	job, err := h.svc.JobStatus(c.Request.Context(), userID, c.Param("id"), stage)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "job": job})
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, jobsdomain.ErrJobNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, domain.ErrInvalidStage):
		c.JSON(http.StatusConflict, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, domain.ErrEmptyPrompt), errors.Is(err, domain.ErrEmptyText):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
	}
}
