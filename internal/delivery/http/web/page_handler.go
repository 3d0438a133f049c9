package web

import (
	"errors"
	"net/http"
	"time"

	"go-landing-backend/internal/delivery/http/middleware"
	"go-landing-backend/internal/domain"
	"go-landing-backend/pkg/logger"
	"go-landing-backend/pkg/session"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// FormAnchor is where every form post lands after the redirect
const FormAnchor = "/#contact"

type PageHandler struct {
	inquiryUC    domain.InquiryUsecase
	catalogUC    domain.CatalogUsecase
	signer       *session.Signer
	secureCookie bool
}

type fieldView struct {
	Value string
	Error string
}

type pageView struct {
	Catalog          *domain.Catalog
	Types            []string
	CSRFToken        string
	Fields           map[string]fieldView
	Submitting       bool
	Success          bool
	IsLocating       bool
	LocationDetected bool
	Notice           string
	Receipt          *domain.Receipt
}

// NewPageHandler registers the HTML routes on group, which must carry the CSRF middleware
func NewPageHandler(group *gin.RouterGroup, submit gin.HandlerFunc, inquiryUC domain.InquiryUsecase, catalogUC domain.CatalogUsecase, signer *session.Signer, secureCookie bool) {
	handler := &PageHandler{
		inquiryUC:    inquiryUC,
		catalogUC:    catalogUC,
		signer:       signer,
		secureCookie: secureCookie,
	}

	group.GET("/", handler.Landing)
	group.GET("/inquiry/state", handler.State)
	group.POST("/inquiry", submit, handler.Submit)
	group.POST("/inquiry/reset", handler.Reset)
	group.POST("/inquiry/locate", handler.Locate)
}

// Landing renders the page with the visitor's current form state.
// A visitor without a session sees the empty form; none is created until they post.
func (h *PageHandler) Landing(c *gin.Context) {
	snap := h.current(c)
	c.Header("Cache-Control", "no-store, private")
	c.HTML(http.StatusOK, "landing.html", h.view(c, snap))
}

// State returns the snapshot as JSON for the location script
func (h *PageHandler) State(c *gin.Context) {
	snap := h.current(c)
	c.Header("Cache-Control", "no-store, private")
	c.JSON(http.StatusOK, snap)
}

// Submit applies every posted field as change+blur, then submits
func (h *PageHandler) Submit(c *gin.Context) {
	var form domain.FormState
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		c.String(http.StatusBadRequest, "invalid form")
		return
	}

	sessionID, err := h.session(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	ctx := c.Request.Context()
	if _, err := h.inquiryUC.ApplyForm(ctx, sessionID, form); err != nil {
		h.fail(c, err)
		return
	}

	var invalid *domain.InquiryValidationError
	if _, _, err := h.inquiryUC.Submit(ctx, sessionID); err != nil && !errors.As(err, &invalid) {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, FormAnchor)
}

// Reset starts a new inquiry after a successful one
func (h *PageHandler) Reset(c *gin.Context) {
	sessionID, _, ok := h.lookup(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, FormAnchor)
		return
	}

	if _, err := h.inquiryUC.Reset(c.Request.Context(), sessionID); err != nil && !errors.Is(err, domain.ErrResetNotAllowed) {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, FormAnchor)
}

// Locate relays the browser geolocation outcome posted by static/inquiry.js
func (h *PageHandler) Locate(c *gin.Context) {
	var req domain.LocateRequest
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		c.String(http.StatusBadRequest, "invalid location report")
		return
	}

	sessionID, err := h.session(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	snap, err := h.inquiryUC.Locate(c.Request.Context(), sessionID, req)
	if err != nil && !errors.Is(err, domain.ErrAlreadyLocating) {
		h.fail(c, err)
		return
	}

	if c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
		c.JSON(http.StatusAccepted, snap)
		return
	}
	c.Redirect(http.StatusSeeOther, FormAnchor)
}

// lookup resolves the visitor's live session from the cookie
func (h *PageHandler) lookup(c *gin.Context) (string, domain.InquirySnapshot, bool) {
	token, err := c.Cookie(middleware.SessionCookieName)
	if err != nil || token == "" {
		return "", domain.InquirySnapshot{}, false
	}
	sessionID, err := h.signer.Parse(token)
	if err != nil {
		return "", domain.InquirySnapshot{}, false
	}
	snap, err := h.inquiryUC.Snapshot(c.Request.Context(), sessionID)
	if err != nil {
		return "", domain.InquirySnapshot{}, false
	}
	return sessionID, snap, true
}

// current is the visitor's snapshot, or the idle empty form without a session
func (h *PageHandler) current(c *gin.Context) domain.InquirySnapshot {
	if _, snap, ok := h.lookup(c); ok {
		return snap
	}
	return blankSnapshot()
}

func blankSnapshot() domain.InquirySnapshot {
	return domain.InquirySnapshot{
		Errors:        map[domain.Field]string{},
		VisibleErrors: map[domain.Field]string{},
		Touched:       []domain.Field{},
		Status:        domain.StatusIdle,
	}
}

// session returns the visitor's live session, starting a new one when the
// cookie is missing, invalid or points at an expired session.
// Only state-changing posts call it.
func (h *PageHandler) session(c *gin.Context) (string, error) {
	if sessionID, _, ok := h.lookup(c); ok {
		return sessionID, nil
	}

	sess, err := h.inquiryUC.StartSession(c.Request.Context())
	if err != nil {
		return "", err
	}
	token, err := h.signer.Issue(sess.ID)
	if err != nil {
		return "", err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, token, int(h.signer.TTL()/time.Second), "/", "", h.secureCookie, true)
	return sess.ID, nil
}

func (h *PageHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrSessionLimit) {
		logger.Log.Warn("inquiry session limit reached", "path", c.FullPath())
		c.String(http.StatusServiceUnavailable, "We are receiving a lot of inquiries. Please try again shortly.")
		return
	}
	logger.Log.Error("landing page request failed", "path", c.FullPath(), "error", err)
	c.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
}

func (h *PageHandler) view(c *gin.Context, snap domain.InquirySnapshot) pageView {
	types := make([]string, 0, len(domain.InquiryTypes()))
	for _, t := range domain.InquiryTypes() {
		types = append(types, string(t))
	}

	fields := make(map[string]fieldView, len(domain.AllFields))
	for _, field := range domain.AllFields {
		fv := fieldView{Value: snap.Form.Get(field)}
		if snap.IsTouched(field) {
			fv.Error = snap.Errors[field]
		}
		fields[string(field)] = fv
	}

	return pageView{
		Catalog:          h.catalogUC.GetCatalog(c.Request.Context()),
		Types:            types,
		CSRFToken:        middleware.CSRFToken(c),
		Fields:           fields,
		Submitting:       snap.Status == domain.StatusSubmitting,
		Success:          snap.Status == domain.StatusSuccess,
		IsLocating:       snap.IsLocating,
		LocationDetected: snap.LocationDetected,
		Notice:           snap.Notice,
		Receipt:          snap.Receipt,
	}
}
