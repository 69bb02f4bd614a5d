package bookingRepo

import (
	"context"

	"serviceboard/models"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking document.
	Create(ctx context.Context, booking *models.Booking) (*models.InsertResult, error)
	// ListByUser returns a user's bookings ordered by taking date, newest first.
	ListByUser(ctx context.Context, email string) ([]models.Booking, error)
	// ListByProvider returns the bookings made against a provider's services.
	ListByProvider(ctx context.Context, email string) ([]models.Booking, error)
	// GetByID retrieves a booking by its identifier.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// UpdateStatus sets the status of a single booking.
	UpdateStatus(ctx context.Context, id, status string) (*models.UpdateResult, error)
}
