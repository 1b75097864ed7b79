package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/marketerrors"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/services/market/helpers"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/utils"

	"github.com/gin-gonic/gin"
)

// HealthProbe reports whether the application can persist state somewhere
type HealthProbe func(ctx context.Context) bool

// SupportHandler serves the cross-cutting endpoints: toasts, translations, prices, help and health
type SupportHandler struct {
	session     SessionServiceInterface
	toasts      ToastQueueInterface
	translator  TranslatorInterface
	prices      PriceServiceInterface
	faq         FAQServiceInterface
	probe       HealthProbe
	defaultLang string
}

func NewSupportHandler(
	session SessionServiceInterface,
	toasts ToastQueueInterface,
	translator TranslatorInterface,
	prices PriceServiceInterface,
	faq FAQServiceInterface,
	probe HealthProbe,
	defaultLang string,
) *SupportHandler {
	return &SupportHandler{
		session:     session,
		toasts:      toasts,
		translator:  translator,
		prices:      prices,
		faq:         faq,
		probe:       probe,
		defaultLang: defaultLang,
	}
}

// ToastsHandler handles GET /toasts. Messages are translated into the session language.
func (h *SupportHandler) ToastsHandler(c *gin.Context) {
	lang := h.language(c)
	toasts := h.toasts.Active()
	for i := range toasts {
		toasts[i].Message = h.translator.T(lang, toasts[i].Message)
	}
	utils.JSONResponse(c, http.StatusOK, toasts, "notifications retrieved successfully")
}

// DismissToastHandler handles DELETE /toasts/:id
func (h *SupportHandler) DismissToastHandler(c *gin.Context) {
	id := c.Param("id")
	if !h.toasts.Dismiss(id) {
		helpers.HandleServiceError(c, "DismissToastHandler", fmt.Errorf("dismiss %s: %w", id, marketerrors.ErrToastNotFound), nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"id": id}, "notification dismissed")
}

// TranslateHandler handles GET /i18n/:lang/*key. The key may use dots or slashes.
func (h *SupportHandler) TranslateHandler(c *gin.Context) {
	lang := c.Param("lang")
	key := strings.ReplaceAll(strings.Trim(c.Param("key"), "/"), "/", ".")
	resp := helpers.TranslationResponse{Lang: lang, Key: key, Value: h.translator.T(lang, key)}
	utils.JSONResponse(c, http.StatusOK, resp, "translation resolved")
}

// PriceHandler handles GET /price?amount=&currency=
func (h *SupportHandler) PriceHandler(c *gin.Context) {
	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil {
		helpers.HandleServiceError(c, "PriceHandler", fmt.Errorf("parse amount %q: %w", c.Query("amount"), marketerrors.ErrInvalidAmount), nil)
		return
	}

	code := strings.ToUpper(c.Query("currency"))
	if code == "" {
		user, _ := h.session.Current()
		code = h.prices.Resolve(user)
	} else if !h.prices.Supports(code) {
		helpers.HandleServiceError(c, "PriceHandler", fmt.Errorf("currency %q: %w", code, marketerrors.ErrInvalidInput), nil)
		return
	}

	resp := helpers.PriceResponse{
		Amount:    amount,
		Currency:  code,
		Converted: h.prices.Convert(amount, code).Round(2).String(),
		Formatted: h.prices.FormatIn(amount, code),
	}
	utils.JSONResponse(c, http.StatusOK, resp, "price formatted")
}

// FAQHandler handles GET /help/faq. Generator failures produce an empty list and a generic message.
func (h *SupportHandler) FAQHandler(c *gin.Context) {
	lang := h.language(c)
	result := h.faq.Load(c.Request.Context(), lang)
	if result.Failed {
		utils.JSONResponse(c, http.StatusOK, result, h.translator.T(lang, "help.faq_unavailable"))
		return
	}
	utils.JSONResponse(c, http.StatusOK, result, h.translator.T(lang, "help.faq_title"))
}

// HealthHandler handles GET /health
func (h *SupportHandler) HealthHandler(c *gin.Context) {
	connected := h.probe != nil && h.probe(c.Request.Context())
	status := http.StatusOK
	if !connected {
		status = http.StatusServiceUnavailable
	}
	utils.JSONResponse(c, status, helpers.HealthResponse{Connected: connected, Time: time.Now().UTC().Format(time.RFC3339)}, "health checked")
}

// language picks ?lang=, then the session user's preference, then the default
func (h *SupportHandler) language(c *gin.Context) string {
	if lang := c.Query("lang"); lang != "" {
		return lang
	}
	if user, ok := h.session.Current(); ok && user.PreferredLanguage != "" {
		return user.PreferredLanguage
	}
	return h.defaultLang
}
