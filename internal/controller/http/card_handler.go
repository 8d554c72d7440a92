package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"social-spark/internal/usecase"
	"social-spark/pkg/logger"
)

type CardHandler struct {
	sessions usecase.SessionUseCase
	logger   *logger.Logger
}

func NewCardHandler(sessions usecase.SessionUseCase, logger *logger.Logger) *CardHandler {
	return &CardHandler{
		sessions: sessions,
		logger:   logger,
	}
}

// RegenerateText godoc
// @Summary      Regenerate post text
// @Description  Produces an alternative text and hashtags for the post, replacing only those fields. The card's draft buffers resynchronize, discarding unsaved edits.
// @Tags         posts
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        post_id path string true "Post ID"
// @Success      200  {object}  entity.Card
// @Failure      404  {object}  map[string]string
// @Failure      429  {object}  map[string]string
// @Router       /sessions/{id}/posts/{post_id}/regenerate-text [post]
func (h *CardHandler) RegenerateText(c *gin.Context) {
	card, err := h.sessions.RegenerateText(c.Request.Context(), c.Param("id"), c.Param("post_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

// RegenerateImage godoc
// @Summary      Regenerate post image
// @Description  Derives a fresh image prompt from the post text and renders a new image, replacing only the prompt and image fields.
// @Tags         posts
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        post_id path string true "Post ID"
// @Success      200  {object}  entity.Card
// @Failure      404  {object}  map[string]string
// @Failure      429  {object}  map[string]string
// @Router       /sessions/{id}/posts/{post_id}/regenerate-image [post]
func (h *CardHandler) RegenerateImage(c *gin.Context) {
	card, err := h.sessions.RegenerateImage(c.Request.Context(), c.Param("id"), c.Param("post_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

type UpdateDraftRequest struct {
	DraftText     string `json:"draft_text"`
	DraftHashtags string `json:"draft_hashtags"`
}

// UpdateDraft godoc
// @Summary      Update draft buffers
// @Description  Updates the card's local edit buffers. Edits never flow back into the canonical post.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        post_id path string true "Post ID"
// @Param        request body UpdateDraftRequest true "Draft buffers"
// @Success      204  "No Content"
// @Failure      404  {object}  map[string]string
// @Router       /sessions/{id}/posts/{post_id}/draft [put]
func (h *CardHandler) UpdateDraft(c *gin.Context) {
	var req UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.sessions.UpdateDraft(c.Param("id"), c.Param("post_id"), req.DraftText, req.DraftHashtags); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// BeginEdit godoc
// @Summary      Enter edit mode
// @Tags         posts
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        post_id path string true "Post ID"
// @Success      204  "No Content"
// @Failure      404  {object}  map[string]string
// @Router       /sessions/{id}/posts/{post_id}/edit [post]
func (h *CardHandler) BeginEdit(c *gin.Context) {
	if err := h.sessions.BeginEdit(c.Param("id"), c.Param("post_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SaveEdit godoc
// @Summary      Save edits and exit edit mode
// @Tags         posts
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        post_id path string true "Post ID"
// @Success      204  "No Content"
// @Failure      404  {object}  map[string]string
// @Router       /sessions/{id}/posts/{post_id}/save [post]
func (h *CardHandler) SaveEdit(c *gin.Context) {
	if err := h.sessions.SaveEdit(c.Param("id"), c.Param("post_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Copy godoc
// @Summary      Get the clipboard payload
// @Description  Returns the draft text and hashtags joined by a blank line and raises the card's copied flag for two seconds.
// @Tags         posts
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        post_id path string true "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /sessions/{id}/posts/{post_id}/copy [post]
func (h *CardHandler) Copy(c *gin.Context) {
	text, err := h.sessions.Copy(c.Param("id"), c.Param("post_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": text})
}

// Share godoc
// @Summary      Get the native-share payload
// @Description  Returns title, text and (when file sharing is enabled) the image payload. 404 when the platform exposes no share capability.
// @Tags         posts
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        post_id path string true "Post ID"
// @Success      200  {object}  entity.SharePayload
// @Failure      404  {object}  map[string]string
// @Router       /sessions/{id}/posts/{post_id}/share [get]
func (h *CardHandler) Share(c *gin.Context) {
	payload, err := h.sessions.SharePayload(c.Param("id"), c.Param("post_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}
