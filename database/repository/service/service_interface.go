package serviceRepo

import (
	"context"

	"serviceboard/models"
)

// ServiceRepository defines methods for service data access.
type ServiceRepository interface {
	// List retrieves all services.
	List(ctx context.Context) ([]models.Service, error)
	// ListByProvider retrieves the services offered by a provider email.
	ListByProvider(ctx context.Context, email string) ([]models.Service, error)
	// GetByID retrieves a service by its identifier.
	GetByID(ctx context.Context, id string) (*models.Service, error)
	// Create inserts a new service document.
	Create(ctx context.Context, service *models.Service) (*models.InsertResult, error)
	// Update replaces the editable fields of a service.
	Update(ctx context.Context, id string, update models.ServiceUpdate) (*models.UpdateResult, error)
	// Delete removes a service. Deleting an absent service is not an error.
	Delete(ctx context.Context, id string) (*models.DeleteResult, error)
}
