package v1

import (
	"errors"
	"net/http"

	"go-landing-backend/internal/delivery/http/middleware"
	"go-landing-backend/internal/delivery/http/response"
	"go-landing-backend/internal/domain"
	"go-landing-backend/pkg/apperror"
	"go-landing-backend/pkg/session"
	"go-landing-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type InquiryHandler struct {
	inquiryUC domain.InquiryUsecase
	signer    *session.Signer
}

// NewInquiryHandler registers the inquiry routes.
// Session-scoped routes go on the protected group, which carries the session middleware.
func NewInquiryHandler(public, protected *gin.RouterGroup, submit gin.HandlerFunc, inquiryUC domain.InquiryUsecase, signer *session.Signer) {
	handler := &InquiryHandler{
		inquiryUC: inquiryUC,
		signer:    signer,
	}

	// Public Routes
	public.POST("/inquiry/validate", handler.ValidateField)
	public.POST("/inquiry/sessions", handler.StartSession)

	// Session Routes
	protected.GET("/inquiry/session", handler.GetSession)
	protected.PUT("/inquiry/session/fields/:field", handler.ChangeField)
	protected.POST("/inquiry/session/fields/:field/blur", handler.BlurField)
	protected.POST("/inquiry/session/submit", submit, handler.Submit)
	protected.POST("/inquiry/session/reset", handler.Reset)
	protected.POST("/inquiry/session/locate", handler.Locate)
}

// ValidateField godoc
// @Summary      Validate a single field
// @Description  Runs the field rule for one value without touching any session state.
// @Tags         inquiry
// @Accept       json
// @Produce      json
// @Param        request  body      domain.ValidateFieldRequest  true  "Field and value"
// @Success      200      {object}  response.Response{data=domain.ValidateFieldResponse}
// @Failure      400      {object}  response.Response
// @Router       /inquiry/validate [post]
func (h *InquiryHandler) ValidateField(c *gin.Context) {
	var req domain.ValidateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request").WithDetails(validation.FormatValidationErrors(err)))
		return
	}

	field, err := domain.ParseField(req.Field)
	if err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	msg := h.inquiryUC.ValidateField(field, req.Value)
	response.Success(c, http.StatusOK, "Field validated", domain.ValidateFieldResponse{
		Field: field,
		Valid: msg == "",
		Error: msg,
	})
}

// StartSession godoc
// @Summary      Start an inquiry session
// @Description  Creates an empty inquiry form and returns the token to send in X-Inquiry-Session.
// @Tags         inquiry
// @Produce      json
// @Success      201  {object}  response.Response{data=domain.InquirySessionResponse}
// @Failure      500  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /inquiry/sessions [post]
func (h *InquiryHandler) StartSession(c *gin.Context) {
	sess, err := h.inquiryUC.StartSession(c.Request.Context())
	if err != nil {
		handleInquiryError(c, err)
		return
	}

	token, err := h.signer.Issue(sess.ID)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusCreated, "Inquiry session started", domain.InquirySessionResponse{
		Token:     token,
		ExpiresIn: int(h.signer.TTL().Seconds()),
		Snapshot:  sess.Engine.Snapshot(),
	})
}

// GetSession godoc
// @Summary      Get the inquiry form state
// @Tags         inquiry
// @Produce      json
// @Security     InquirySession
// @Success      200  {object}  response.Response{data=domain.InquirySnapshot}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /inquiry/session [get]
func (h *InquiryHandler) GetSession(c *gin.Context) {
	snap, err := h.inquiryUC.Snapshot(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		handleInquiryError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Inquiry retrieved", snap)
}

// ChangeField godoc
// @Summary      Change a field value
// @Description  Stores the value; a field that was already touched is re-validated.
// @Tags         inquiry
// @Accept       json
// @Produce      json
// @Security     InquirySession
// @Param        field    path      string                    true  "Field"  Enums(name, phone, email, type, message, location)
// @Param        request  body      domain.FieldValueRequest  true  "New value"
// @Success      200      {object}  response.Response{data=domain.InquirySnapshot}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /inquiry/session/fields/{field} [put]
func (h *InquiryHandler) ChangeField(c *gin.Context) {
	field, value, ok := bindFieldValue(c)
	if !ok {
		return
	}

	snap, err := h.inquiryUC.ChangeField(c.Request.Context(), middleware.SessionID(c), field, value)
	if err != nil {
		handleInquiryError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Field updated", snap)
}

// BlurField godoc
// @Summary      Leave a field
// @Description  Marks the field touched and stores its validation result.
// @Tags         inquiry
// @Accept       json
// @Produce      json
// @Security     InquirySession
// @Param        field    path      string                    true  "Field"  Enums(name, phone, email, type, message, location)
// @Param        request  body      domain.FieldValueRequest  true  "Current value"
// @Success      200      {object}  response.Response{data=domain.InquirySnapshot}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /inquiry/session/fields/{field}/blur [post]
func (h *InquiryHandler) BlurField(c *gin.Context) {
	field, value, ok := bindFieldValue(c)
	if !ok {
		return
	}

	snap, err := h.inquiryUC.BlurField(c.Request.Context(), middleware.SessionID(c), field, value)
	if err != nil {
		handleInquiryError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Field updated", snap)
}

// Submit godoc
// @Summary      Submit the inquiry
// @Description  Validates every field. A valid form starts submitting and reaches success after a short delay.
// @Tags         inquiry
// @Produce      json
// @Security     InquirySession
// @Success      202  {object}  response.Response{data=domain.InquirySnapshot}
// @Failure      409  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Failure      429  {object}  response.Response
// @Router       /inquiry/session/submit [post]
func (h *InquiryHandler) Submit(c *gin.Context) {
	outcome, snap, err := h.inquiryUC.Submit(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		handleInquiryError(c, err)
		return
	}

	if outcome == domain.SubmitIgnored {
		c.Error(apperror.Conflict("Inquiry is already "+string(snap.Status), nil))
		return
	}
	response.Success(c, http.StatusAccepted, "Inquiry is being submitted", snap)
}

// Reset godoc
// @Summary      Start another inquiry
// @Description  Clears the form. Only allowed after a successful submission.
// @Tags         inquiry
// @Produce      json
// @Security     InquirySession
// @Success      200  {object}  response.Response{data=domain.InquirySnapshot}
// @Failure      409  {object}  response.Response
// @Router       /inquiry/session/reset [post]
func (h *InquiryHandler) Reset(c *gin.Context) {
	snap, err := h.inquiryUC.Reset(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		handleInquiryError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Inquiry form cleared", snap)
}

// Locate godoc
// @Summary      Detect the visitor's location
// @Description  Relays the browser geolocation outcome. A granted position fills the location field after a short delay.
// @Tags         inquiry
// @Accept       json
// @Produce      json
// @Security     InquirySession
// @Param        request  body      domain.LocateRequest  true  "Geolocation outcome"
// @Success      202      {object}  response.Response{data=domain.InquirySnapshot}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /inquiry/session/locate [post]
func (h *InquiryHandler) Locate(c *gin.Context) {
	var req domain.LocateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request").WithDetails(validation.FormatValidationErrors(err)))
		return
	}

	snap, err := h.inquiryUC.Locate(c.Request.Context(), middleware.SessionID(c), req)
	if err != nil {
		handleInquiryError(c, err)
		return
	}
	response.Success(c, http.StatusAccepted, "Location lookup started", snap)
}

func bindFieldValue(c *gin.Context) (domain.Field, string, bool) {
	field, err := domain.ParseField(c.Param("field"))
	if err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return "", "", false
	}

	var req domain.FieldValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request").WithDetails(validation.FormatValidationErrors(err)))
		return "", "", false
	}
	return field, req.Value, true
}

// handleInquiryError maps usecase errors to HTTP errors
func handleInquiryError(c *gin.Context, err error) {
	var invalid *domain.InquiryValidationError
	switch {
	case errors.As(err, &invalid):
		c.Error(apperror.Unprocessable("Please correct the highlighted fields.", invalid.Fields))
	case errors.Is(err, domain.ErrSessionNotFound):
		c.Error(apperror.NotFound("Inquiry session not found or expired"))
	case errors.Is(err, domain.ErrSessionLimit):
		c.Error(apperror.Unavailable("Too many open inquiries, please try again shortly", err))
	case errors.Is(err, domain.ErrResetNotAllowed):
		c.Error(apperror.Conflict("Inquiry can only be reset after a successful submission", err))
	case errors.Is(err, domain.ErrAlreadyLocating):
		c.Error(apperror.Conflict("Location detection is already in progress", err))
	default:
		c.Error(apperror.Internal(err))
	}
}
