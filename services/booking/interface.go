package booking

import (
	"context"

	bookingRepo "serviceboard/database/repository/booking"
	"serviceboard/models"
)

// BookingService defines the operations on user bookings.
type BookingService interface {
	CreateBooking(ctx context.Context, booking *models.Booking) (*models.InsertResult, error)
	ListUserBookings(ctx context.Context, email string) ([]models.Booking, error)
	ListProviderBookings(ctx context.Context, email string) ([]models.Booking, error)
	// UpdateStatus changes a booking's status on behalf of actorEmail, who must be
	// the provider the booking was made with.
	UpdateStatus(ctx context.Context, id, status, actorEmail string) (*models.UpdateResult, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo bookingRepo.BookingRepository
}

func NewDefaultBookingService(repo bookingRepo.BookingRepository) *DefaultBookingService {
	return &DefaultBookingService{Repo: repo}
}
