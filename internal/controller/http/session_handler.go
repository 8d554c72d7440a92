package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"social-spark/internal/entity"
	"social-spark/internal/gemini"
	"social-spark/internal/usecase"
	"social-spark/pkg/logger"
)

type SessionHandler struct {
	sessions usecase.SessionUseCase
	logger   *logger.Logger
}

func NewSessionHandler(sessions usecase.SessionUseCase, logger *logger.Logger) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		logger:   logger,
	}
}

// CreateSession godoc
// @Summary      Create a session
// @Description  Creates a new generation session. The persisted theme preference is preloaded.
// @Tags         sessions
// @Produce      json
// @Success      201  {object}  entity.Session
// @Failure      500  {object}  map[string]string
// @Router       /sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	sess, err := h.sessions.Create(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to create session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}
	c.JSON(http.StatusCreated, sess)
}

// GetSession godoc
// @Summary      Get session state
// @Description  Returns the full session snapshot: request parameters, generated cards, loading state and theme.
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200  {object}  entity.Session
// @Failure      404  {object}  map[string]string
// @Router       /sessions/{id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	sess, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, sess)
}

type UpdateSessionRequest struct {
	Idea        *string `json:"idea"`
	Tone        *string `json:"tone" binding:"omitempty,oneof=Professional Witty Urgent"`
	AspectRatio *string `json:"aspect_ratio" binding:"omitempty,oneof=1:1 16:9 3:4 9:16"`
}

// UpdateSession godoc
// @Summary      Update request parameters
// @Description  Updates the session's idea, tone or aspect ratio without triggering generation.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        request body UpdateSessionRequest true "Fields to update"
// @Success      200  {object}  entity.Session
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /sessions/{id} [put]
func (h *SessionHandler) UpdateSession(c *gin.Context) {
	id := c.Param("id")

	var req UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Idea != nil {
		if err := h.sessions.SubmitIdea(id, *req.Idea); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
	}
	if req.Tone != nil {
		if err := h.sessions.SelectTone(id, entity.Tone(*req.Tone)); err != nil {
			respondError(c, err)
			return
		}
	}
	if req.AspectRatio != nil {
		if err := h.sessions.SelectAspectRatio(id, entity.AspectRatio(*req.AspectRatio)); err != nil {
			respondError(c, err)
			return
		}
	}

	sess, err := h.sessions.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, sess)
}

type GenerateRequest struct {
	Idea        string `json:"idea"`
	Tone        string `json:"tone" binding:"required,oneof=Professional Witty Urgent"`
	AspectRatio string `json:"aspect_ratio" binding:"required,oneof=1:1 16:9 3:4 9:16"`
}

// Generate godoc
// @Summary      Start batch generation
// @Description  Validates the idea and starts generating a batch of four posts in the background. Progress is observed by polling the session.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        request body GenerateRequest true "Generation parameters"
// @Success      202  {object}  entity.Session
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /sessions/{id}/generate [post]
func (h *SessionHandler) Generate(c *gin.Context) {
	id := c.Param("id")

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.sessions.StartGeneration(id, entity.GenerationRequest{
		Idea:        req.Idea,
		Tone:        entity.Tone(req.Tone),
		AspectRatio: entity.AspectRatio(req.AspectRatio),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	sess, err := h.sessions.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusAccepted, sess)
}

type SetThemeRequest struct {
	Theme string `json:"theme" binding:"required,oneof=light dark matrix"`
}

// SetTheme godoc
// @Summary      Set theme
// @Description  Updates the session theme and persists it as the durable preference.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        request body SetThemeRequest true "Theme"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /sessions/{id}/theme [put]
func (h *SessionHandler) SetTheme(c *gin.Context) {
	var req SetThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.sessions.SetTheme(c.Request.Context(), c.Param("id"), entity.Theme(req.Theme)); err != nil {
		if errors.Is(err, usecase.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		h.logger.Error("failed to persist theme: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist theme"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": req.Theme})
}

// respondError translates usecase and remote-call failures into HTTP
// responses with the user-facing message.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	case errors.Is(err, usecase.ErrPostNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
	case errors.Is(err, usecase.ErrEmptyIdea):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrShareDisabled):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		var ue *gemini.UserError
		if errors.As(err, &ue) {
			c.JSON(statusForCategory(ue.Category), gin.H{"error": ue.Message})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

func statusForCategory(cat gemini.ErrorCategory) int {
	switch cat {
	case gemini.ErrorQuota:
		return http.StatusTooManyRequests
	case gemini.ErrorSafety:
		return http.StatusUnprocessableEntity
	case gemini.ErrorAuth, gemini.ErrorNetwork:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
