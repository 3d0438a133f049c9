package v1

import (
	"net/http"

	"go-landing-backend/internal/delivery/http/response"
	"go-landing-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogUC domain.CatalogUsecase
}

// NewCatalogHandler registers the read-only landing content routes
func NewCatalogHandler(public *gin.RouterGroup, catalogUC domain.CatalogUsecase) {
	handler := &CatalogHandler{
		catalogUC: catalogUC,
	}

	public.GET("/catalog", handler.GetCatalog)
	public.GET("/inquiry/types", handler.ListInquiryTypes)
}

// GetCatalog godoc
// @Summary      Landing page content
// @Description  Hero, contact shortcuts, features, services, locations and navigation.
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Catalog}
// @Router       /catalog [get]
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	response.Success(c, http.StatusOK, "Catalog retrieved", h.catalogUC.GetCatalog(c.Request.Context()))
}

// ListInquiryTypes godoc
// @Summary      Inquiry types
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.Response{data=[]string}
// @Router       /inquiry/types [get]
func (h *CatalogHandler) ListInquiryTypes(c *gin.Context) {
	response.Success(c, http.StatusOK, "Inquiry types retrieved", domain.InquiryTypes())
}
