package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	bookingRepo "github.com/quickcourt/QC-BookingService/internal/infra/storage/booking"
	"github.com/quickcourt/QC-BookingService/internal/service/bookings/models"
	"github.com/quickcourt/QC-BookingService/pkg/types"
)

type fakeRepo struct {
	bookings map[int64]*domain.Booking
	details  map[int64]*domain.BookingDetails
	deleted  []int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		bookings: map[int64]*domain.Booking{},
		details:  map[int64]*domain.BookingDetails{},
	}
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeRepo) GetDetailedByID(_ context.Context, id int64) (*domain.BookingDetails, error) {
	d, ok := f.details[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return d, nil
}

func (f *fakeRepo) GetDetailedByUserID(_ context.Context, userID int64) ([]*domain.BookingDetails, error) {
	var result []*domain.BookingDetails
	for _, d := range f.details {
		if d.UserID == userID {
			result = append(result, d)
		}
	}
	return result, nil
}

func (f *fakeRepo) GetAllDetailed(_ context.Context, filter domain.BookingsFilter) ([]*domain.BookingDetails, error) {
	var result []*domain.BookingDetails
	for _, d := range f.details {
		if filter.CentreID != nil && d.CentreID != *filter.CentreID {
			continue
		}
		result = append(result, d)
	}
	return result, nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(f.bookings, id)
	delete(f.details, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func addBooking(repo *fakeRepo, id, userID int64, date time.Time, start, end string) {
	b := &domain.Booking{
		ID:          id,
		CentreID:    1,
		SportID:     2,
		CourtID:     3,
		UserID:      userID,
		BookingDate: date,
		StartTime:   domainTime(start),
		EndTime:     domainTime(end),
	}
	repo.bookings[id] = b
	repo.details[id] = &domain.BookingDetails{
		Booking:        *b,
		CentreName:     "Smash Arena",
		CentreLocation: "Indiranagar",
		SportName:      "Badminton",
		CourtName:      "Court 1",
		UserName:       "Priya",
		UserEmail:      "priya@example.com",
	}
}

func domainTime(s string) types.TimeString {
	return types.TimeString(s)
}

// now: 2025-10-15 12:00 IST
func testNow() time.Time {
	return time.Date(2025, 10, 15, 12, 0, 0, 0, domain.OperatingZone)
}

func testDate() time.Time {
	return time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
}

func newTestService(repo *fakeRepo) *Service {
	return NewServiceWithTimeProvider(repo, fixedTime{now: testNow()}, nopLogger{})
}

func TestCancel_Success(t *testing.T) {
	repo := newFakeRepo()
	addBooking(repo, 1, 42, testDate(), "14:00", "15:00")
	svc := newTestService(repo)

	err := svc.Cancel(context.Background(), 1, 42)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, repo.deleted)
}

func TestCancel_NotFound(t *testing.T) {
	svc := newTestService(newFakeRepo())

	err := svc.Cancel(context.Background(), 404, 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_NotOwner(t *testing.T) {
	repo := newFakeRepo()
	addBooking(repo, 1, 42, testDate(), "14:00", "15:00")
	svc := newTestService(repo)

	err := svc.Cancel(context.Background(), 1, 7)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.deleted)
}

func TestCancel_PastBooking(t *testing.T) {
	repo := newFakeRepo()
	// Закончилось в 11:00 IST, сейчас 12:00 IST
	addBooking(repo, 1, 42, testDate(), "10:00", "11:00")
	svc := newTestService(repo)

	err := svc.Cancel(context.Background(), 1, 42)
	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.Empty(t, repo.deleted)
}

func TestCancel_OngoingBookingStillCancellable(t *testing.T) {
	repo := newFakeRepo()
	// Идёт прямо сейчас: 11:30-12:30 IST
	addBooking(repo, 1, 42, testDate(), "11:30", "12:30")
	svc := newTestService(repo)

	err := svc.Cancel(context.Background(), 1, 42)
	require.NoError(t, err)
}

func TestGetByID_OwnerSeesOwnBooking(t *testing.T) {
	repo := newFakeRepo()
	addBooking(repo, 1, 42, testDate(), "14:00", "15:00")
	svc := newTestService(repo)

	resp, err := svc.GetByID(context.Background(), 1, 42, false)
	require.NoError(t, err)

	assert.Equal(t, "Wednesday, 15/10/2025", resp.Date)
	assert.Equal(t, "02:00 PM", resp.StartTime)
	assert.Equal(t, "03:00 PM", resp.EndTime)
	assert.Equal(t, models.StatusUpcoming, resp.Status)
	// Не менеджерский запрос не раскрывает данные клиента
	assert.Empty(t, resp.CustomerName)
}

func TestGetByID_StrangerDenied(t *testing.T) {
	repo := newFakeRepo()
	addBooking(repo, 1, 42, testDate(), "14:00", "15:00")
	svc := newTestService(repo)

	_, err := svc.GetByID(context.Background(), 1, 7, false)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_ManagerSeesAnyBooking(t *testing.T) {
	repo := newFakeRepo()
	addBooking(repo, 1, 42, testDate(), "14:00", "15:00")
	svc := newTestService(repo)

	resp, err := svc.GetByID(context.Background(), 1, 7, true)
	require.NoError(t, err)
	assert.Equal(t, "Priya", resp.CustomerName)
	assert.Equal(t, "priya@example.com", resp.CustomerEmail)
}

func TestGetUserBookings_StatusDerivedFromNow(t *testing.T) {
	repo := newFakeRepo()
	addBooking(repo, 1, 42, testDate(), "08:00", "09:00")  // завершилось
	addBooking(repo, 2, 42, testDate(), "11:30", "12:30")  // идёт сейчас
	addBooking(repo, 3, 42, testDate(), "18:00", "19:00")  // впереди
	svc := newTestService(repo)

	resp, err := svc.GetUserBookings(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, 3, resp.Total)

	statuses := map[int64]string{}
	for _, b := range resp.Bookings {
		statuses[b.ID] = b.Status
	}
	assert.Equal(t, models.StatusCompleted, statuses[1])
	assert.Equal(t, models.StatusOngoing, statuses[2])
	assert.Equal(t, models.StatusUpcoming, statuses[3])
}

func TestGetAllBookings_FilterByCentre(t *testing.T) {
	repo := newFakeRepo()
	addBooking(repo, 1, 42, testDate(), "14:00", "15:00")
	other := *repo.details[1]
	other.ID = 2
	other.CentreID = 9
	repo.details[2] = &other
	svc := newTestService(repo)

	centreID := int64(1)
	resp, err := svc.GetAllBookings(context.Background(), &models.GetAllBookingsRequest{CentreID: &centreID})
	require.NoError(t, err)

	require.Equal(t, 1, resp.Total)
	assert.Equal(t, int64(1), resp.Bookings[0].ID)
	// Менеджерский обзор включает данные клиента
	assert.Equal(t, "Priya", resp.Bookings[0].CustomerName)
}
