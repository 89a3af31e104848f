package handler

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Aadithya-J/time_management/internal/models"
	"github.com/Aadithya-J/time_management/internal/service"
)

type EntryService interface {
	List(ctx context.Context) ([]models.TimeEntry, error)
	Get(ctx context.Context, id string) (*models.TimeEntry, error)
	Create(ctx context.Context, in service.CreateInput) (*models.TimeEntry, error)
	Delete(ctx context.Context, id string) error
}

type Options struct {
	APIEndpoint string
	Stage       string
	// Frontend holds the web client assets. Nil leaves /app unmounted.
	Frontend fs.FS
}

type Handler struct {
	entries EntryService
	opts    Options
}

func New(entries EntryService, opts Options) *Handler {
	return &Handler{entries: entries, opts: opts}
}

func (h *Handler) errorResponse(c *gin.Context, statusCode int, message string, err error) {
	requestID := c.GetString("requestID")
	if requestID == "" {
		requestID = fmt.Sprintf("%.8s", uuid.New().String())
	}

	errorResponse := gin.H{
		"error":      message,
		"request_id": requestID,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"endpoint":   c.Request.URL.Path,
	}

	if err != nil {
		errorResponse["details"] = err.Error()
	}
	if statusCode >= http.StatusInternalServerError {
		log.Printf("[%s] %s %s failed: %v", requestID, c.Request.Method, c.Request.URL.Path, err)
	}

	c.JSON(statusCode, errorResponse)
}

func (h *Handler) Register(r *gin.Engine) {
	r.GET("/", h.ListEntries)
	r.POST("/", h.CreateEntry)
	r.GET("/health", h.Health)
	r.GET("/config", h.Config)
	r.GET("/:id", h.GetEntry)
	r.DELETE("/:id", h.DeleteEntry)

	if h.opts.Frontend != nil {
		r.GET("/app/*filepath", h.Frontend)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Config lets clients discover the API base URL.
func (h *Handler) Config(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"apiEndpoint": h.opts.APIEndpoint,
		"stage":       h.opts.Stage,
	})
}

func (h *Handler) ListEntries(c *gin.Context) {
	entries, err := h.entries.List(c.Request.Context())
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Failed to list time entries", err)
		return
	}
	if entries == nil {
		entries = []models.TimeEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

func (h *Handler) GetEntry(c *gin.Context) {
	entry, err := h.entries.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *Handler) CreateEntry(c *gin.Context) {
	var body struct {
		Project   string  `json:"project" binding:"required"`
		Name      string  `json:"name" binding:"required"`
		StartTime string  `json:"start_time" binding:"required"`
		EndTime   *string `json:"end_time"`
		Duration  *int    `json:"duration"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	entry, err := h.entries.Create(c.Request.Context(), service.CreateInput{
		Project:   body.Project,
		Name:      body.Name,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
		Duration:  body.Duration,
	})
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *Handler) DeleteEntry(c *gin.Context) {
	id := c.Param("id")
	if err := h.entries.Delete(c.Request.Context(), id); err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Time entry %s deleted successfully", id)})
}

// Frontend serves the embedded web client and renders its config.js.
func (h *Handler) Frontend(c *gin.Context) {
	if strings.TrimPrefix(c.Param("filepath"), "/") == "config.js" {
		c.Header("Cache-Control", "no-store")
		c.Data(http.StatusOK, "application/javascript; charset=utf-8",
			[]byte(fmt.Sprintf("window.APP_CONFIG = { API_ENDPOINT: %q };\n", h.opts.APIEndpoint)))
		return
	}
	c.FileFromFS(c.Param("filepath"), http.FS(h.opts.Frontend))
}

func (h *Handler) serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		h.errorResponse(c, http.StatusBadRequest, "Invalid time entry", err)
	case errors.Is(err, service.ErrNotFound):
		h.errorResponse(c, http.StatusNotFound, "Time entry not found", err)
	default:
		h.errorResponse(c, http.StatusInternalServerError, "Internal server error", err)
	}
}
