package usecase

import (
	"context"

	"go-landing-backend/internal/domain"
)

type catalogUsecase struct {
	catalog *domain.Catalog
}

// NewCatalogUsecase serves a catalog loaded at start-up
func NewCatalogUsecase(catalog *domain.Catalog) domain.CatalogUsecase {
	return &catalogUsecase{catalog: catalog}
}

func (uc *catalogUsecase) GetCatalog(ctx context.Context) *domain.Catalog {
	return uc.catalog
}
