package v1

import (
	"net/http"

	"go-landing-backend/config"
	"go-landing-backend/internal/delivery/http/middleware"
	"go-landing-backend/internal/delivery/http/response"
	"go-landing-backend/internal/delivery/http/web"
	"go-landing-backend/internal/domain"
	"go-landing-backend/internal/usecase"
	"go-landing-backend/pkg/session"
	"go-landing-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	InquiryUC domain.InquiryUsecase
	CatalogUC domain.CatalogUsecase
	HealthUC  usecase.HealthUsecase
	Signer    *session.Signer
	Config    *config.Config
	// RateLimitStore is the in-memory fallback shared by every limiter; nil creates one
	RateLimitStore *middleware.MemoryStore
}

func NewRouter(deps RouterDeps) (*gin.Engine, error) {
	// Custom tags for request binding
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	store := deps.RateLimitStore
	if store == nil {
		store = middleware.NewMemoryStore()
	}
	globalLimit := middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, deps.Config.RateLimitWindow())
	globalLimit.Store = store
	submitLimit := middleware.SubmitRateLimitConfig(deps.Config.RateLimitSubmitThreshold, deps.Config.RateLimitWindow())
	submitLimit.Store = store

	r := gin.New()

	templates, err := web.Templates()
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(templates)

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RateLimitMiddleware(globalLimit))
	r.Use(middleware.ErrorHandler())

	limitSubmits := middleware.RateLimitMiddleware(submitLimit)

	// Landing page
	r.StaticFS("/static", http.FS(web.Static()))
	page := r.Group("")
	page.Use(middleware.CSRFMiddleware(deps.Config.CookieSecure))
	web.NewPageHandler(page, limitSubmits, deps.InquiryUC, deps.CatalogUC, deps.Signer, deps.Config.CookieSecure)

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", deps.HealthUC.Check(c.Request.Context()))
	})

	// Public routes
	NewCatalogHandler(v1, deps.CatalogUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Session-scoped routes
	protected := v1.Group("")
	protected.Use(middleware.SessionMiddleware(deps.Signer))
	{
		NewInquiryHandler(v1, protected, limitSubmits, deps.InquiryUC, deps.Signer)
	}

	return r, nil
}
