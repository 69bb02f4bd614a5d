package catalog

import (
	"context"

	serviceRepo "serviceboard/database/repository/service"
	"serviceboard/models"
)

// CatalogService defines the operations on listed services.
type CatalogService interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	ListProviderServices(ctx context.Context, email string) ([]models.Service, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
	CreateService(ctx context.Context, service *models.Service) (*models.InsertResult, error)
	UpdateService(ctx context.Context, id string, update models.ServiceUpdate) (*models.UpdateResult, error)
	DeleteService(ctx context.Context, id string) (*models.DeleteResult, error)
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo serviceRepo.ServiceRepository
}

func NewDefaultCatalogService(repo serviceRepo.ServiceRepository) *DefaultCatalogService {
	return &DefaultCatalogService{Repo: repo}
}
