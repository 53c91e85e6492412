package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cpTheAideveloper/geminimultilingual/internal/apperrors"
	"github.com/cpTheAideveloper/geminimultilingual/internal/language"
	"github.com/cpTheAideveloper/geminimultilingual/internal/translator"
	"github.com/cpTheAideveloper/geminimultilingual/internal/version"
)

// translationFailedMsg is the only message the endpoint returns for a
// post-validation failure, whatever actually went wrong downstream.
const translationFailedMsg = "An error occurred during translation."

// Handler carries the request handlers and their dependencies.
type Handler struct {
	translator *translator.Translator
	log        *slog.Logger
}

type translateResponse struct {
	Translations map[string]string `json:"translations"`
}

type languagesResponse struct {
	Languages []language.Language `json:"languages"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Translate handles POST /api/translate.
func (h *Handler) Translate(c *gin.Context) {
	rid := c.GetString(requestIDKey)

	var req translator.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		// A body that does not parse binds nothing; validation below
		// rejects the empty request with the canonical message.
		h.log.Debug("malformed request body", "request_id", rid, "error", err)
	}

	if err := req.Validate(); err != nil {
		h.log.Info("submission rejected",
			"request_id", rid,
			"reason", apperrors.PublicMessage(err),
		)
		c.JSON(apperrors.HTTPStatus(err), errorResponse{Error: apperrors.PublicMessage(err)})
		return
	}

	// Once dispatched, the model call is not aborted by a client
	// disconnect; the context is severed from the request's cancellation.
	ctx := context.WithoutCancel(c.Request.Context())

	result, err := h.translator.Translate(ctx, req)
	if err != nil {
		kind, _ := apperrors.KindOf(err)
		h.log.Error("translation failed",
			"request_id", rid,
			"kind", string(kind),
			"error", err,
			"cause", errors.Unwrap(err),
		)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: translationFailedMsg})
		return
	}

	h.log.Info("translation completed",
		"request_id", rid,
		"languages", len(result.Translations),
		"usage", result.Usage.TotalTokenCount,
	)
	c.JSON(http.StatusOK, translateResponse{Translations: result.Translations})
}

// Languages handles GET /api/languages.
func (h *Handler) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, languagesResponse{Languages: language.GetSupportedLanguages()})
}

// Health handles GET /health.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": version.Version,
	})
}
