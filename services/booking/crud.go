package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"serviceboard/database"
	"serviceboard/models"
	"serviceboard/services"
)

// CreateBooking stores a booking. The referenced service is not checked.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, booking *models.Booking) (*models.InsertResult, error) {
	if strings.TrimSpace(booking.UserEmail) == "" {
		return nil, errEmailRequired
	}
	if booking.Status == "" {
		booking.Status = models.BookingStatusPending
	}
	return s.Repo.Create(ctx, booking)
}

func (s *DefaultBookingService) ListUserBookings(ctx context.Context, email string) ([]models.Booking, error) {
	if strings.TrimSpace(email) == "" {
		return nil, errEmailRequired
	}
	return s.Repo.ListByUser(ctx, email)
}

func (s *DefaultBookingService) ListProviderBookings(ctx context.Context, email string) ([]models.Booking, error) {
	if strings.TrimSpace(email) == "" {
		return nil, services.NewValidationError("Provider email is required")
	}
	return s.Repo.ListByProvider(ctx, email)
}

func (s *DefaultBookingService) UpdateStatus(ctx context.Context, id, status, actorEmail string) (*models.UpdateResult, error) {
	if strings.TrimSpace(status) == "" {
		return nil, errStatusRequired
	}

	booking, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, errBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	if booking.ServiceProviderEmail != actorEmail {
		return nil, fmt.Errorf("booking %s belongs to another provider: %w", id, services.ErrUnauthorized)
	}

	result, err := s.Repo.UpdateStatus(ctx, id, status)
	if errors.Is(err, database.ErrNotFound) {
		return nil, errBookingNotFound
	}
	return result, err
}
