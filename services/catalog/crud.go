package catalog

import (
	"context"
	"errors"
	"strings"

	"serviceboard/database"
	"serviceboard/models"
	"serviceboard/services"
)

var errServiceNotFound = &services.NotFoundError{Resource: "Service"}

func (s *DefaultCatalogService) ListServices(ctx context.Context) ([]models.Service, error) {
	return s.Repo.List(ctx)
}

func (s *DefaultCatalogService) ListProviderServices(ctx context.Context, email string) ([]models.Service, error) {
	if strings.TrimSpace(email) == "" {
		return nil, services.NewValidationError("Provider email is required.")
	}
	return s.Repo.ListByProvider(ctx, email)
}

func (s *DefaultCatalogService) GetService(ctx context.Context, id string) (*models.Service, error) {
	service, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, errServiceNotFound
	}
	return service, err
}

func (s *DefaultCatalogService) CreateService(ctx context.Context, service *models.Service) (*models.InsertResult, error) {
	return s.Repo.Create(ctx, service)
}

// UpdateService replaces the editable fields. The location must be present;
// nothing is written otherwise.
func (s *DefaultCatalogService) UpdateService(ctx context.Context, id string, update models.ServiceUpdate) (*models.UpdateResult, error) {
	if strings.TrimSpace(update.Location) == "" {
		return nil, services.NewValidationError("Service location is required.")
	}
	result, err := s.Repo.Update(ctx, id, update)
	if errors.Is(err, database.ErrNotFound) {
		return nil, errServiceNotFound
	}
	return result, err
}

func (s *DefaultCatalogService) DeleteService(ctx context.Context, id string) (*models.DeleteResult, error) {
	return s.Repo.Delete(ctx, id)
}
