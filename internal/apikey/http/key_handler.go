// Package http provides the gin handlers of the web display.
package http

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	"github.com/allisson/apikeygen/internal/apikey/domain"
	"github.com/allisson/apikeygen/internal/apikey/http/dto"
	apikeyUseCase "github.com/allisson/apikeygen/internal/apikey/usecase"
	"github.com/allisson/apikeygen/internal/httputil"
	customValidation "github.com/allisson/apikeygen/internal/validation"
)

//go:embed templates/index.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

// KeyHandler serves freshly issued api keys. Nothing is stored between requests.
type KeyHandler struct {
	keyUseCase apikeyUseCase.KeyUseCase
	maxCount   int
	logger     *slog.Logger
}

// NewKeyHandler creates a KeyHandler. maxCount bounds the count query parameter.
func NewKeyHandler(keyUseCase apikeyUseCase.KeyUseCase, maxCount int, logger *slog.Logger) *KeyHandler {
	return &KeyHandler{
		keyUseCase: keyUseCase,
		maxCount:   maxCount,
		logger:     logger,
	}
}

// PageHandler renders a page holding one new key in a read-only field.
// GET / - Returns 200 text/html, or 503 with an error notification when no key could be issued.
func (h *KeyHandler) PageHandler(c *gin.Context) {
	noStore(c)

	token, err := h.keyUseCase.Issue(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to render api key page", slog.Any("error", err))
		notification := domain.NewErrorNotification(domain.MessageGenerationFailed)
		h.renderPage(c, http.StatusServiceUnavailable, dto.NewPageData("", &notification))
		return
	}

	h.renderPage(c, http.StatusOK, dto.NewPageData(token.String(), nil))
}

// ListHandler issues count new keys.
// GET /v1/api-keys?count=N - Returns 200 with {"api_keys": [...], "count": N}.
func (h *KeyHandler) ListHandler(c *gin.Context) {
	noStore(c)

	count, err := httputil.ParseIntQuery(c, "count", dto.DefaultCount)
	if err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	req := dto.ListKeysRequest{Count: count}
	if err := req.Validate(h.maxCount); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	tokens := make([]domain.Token, 0, req.Count)
	for range req.Count {
		token, err := h.keyUseCase.Issue(c.Request.Context())
		if err != nil {
			httputil.HandleErrorGin(c, err, h.logger)
			return
		}
		tokens = append(tokens, token)
	}

	c.JSON(http.StatusOK, dto.MapTokensToListKeysResponse(tokens))
}

func (h *KeyHandler) renderPage(c *gin.Context, statusCode int, data dto.PageData) {
	c.Render(statusCode, render.HTML{
		Template: pageTemplate,
		Name:     "index.html",
		Data:     data,
	})
}

// noStore keeps keys out of browser and proxy caches.
func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
}
