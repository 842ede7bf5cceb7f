package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	centreRepo "github.com/quickcourt/QC-BookingService/internal/infra/storage/centre"
	"github.com/quickcourt/QC-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetByCourtAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeCentreRepo struct {
	centreID int64
	sportID  int64
	courtID  int64
}

func (f *fakeCentreRepo) GetCentreByID(_ context.Context, id int64) (*domain.Centre, error) {
	if id != f.centreID {
		return nil, centreRepo.ErrCentreNotFound
	}
	return &domain.Centre{ID: id, Name: "Smash Arena", Location: "Indiranagar"}, nil
}

func (f *fakeCentreRepo) GetSportInCentre(_ context.Context, sportID, centreID int64) (*domain.Sport, error) {
	if sportID != f.sportID || centreID != f.centreID {
		return nil, centreRepo.ErrSportNotFound
	}
	return &domain.Sport{ID: sportID, Name: "Badminton", CentreID: centreID}, nil
}

func (f *fakeCentreRepo) GetCourtInSport(_ context.Context, courtID, sportID int64) (*domain.Court, error) {
	if courtID != f.courtID || sportID != f.sportID {
		return nil, centreRepo.ErrCourtNotFound
	}
	return &domain.Court{ID: courtID, Name: "Court 1", SportID: sportID}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testPolicy(t *testing.T) domain.SlotPolicy {
	t.Helper()
	policy := domain.SlotPolicy{OpenTime: "08:00", CloseTime: "20:00", StepMinutes: 60}
	require.NoError(t, policy.Validate())
	return policy
}

func testDate() time.Time {
	return time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
}

func booking(courtID int64, start, end types.TimeString) *domain.Booking {
	return &domain.Booking{
		ID:          1,
		CentreID:    1,
		SportID:     2,
		CourtID:     courtID,
		UserID:      42,
		BookingDate: testDate(),
		StartTime:   start,
		EndTime:     end,
	}
}

func newTestUseCase(bookings []*domain.Booking) *UseCase {
	return NewUseCase(
		&fakeBookingRepo{bookings: bookings},
		&fakeCentreRepo{centreID: 1, sportID: 2, courtID: 3},
		domain.SlotPolicy{OpenTime: "08:00", CloseTime: "20:00", StepMinutes: 60},
		nopLogger{},
	)
}

func TestExecute_EmptyDay_AllSlotsFree(t *testing.T) {
	uc := newTestUseCase(nil)

	resp, err := uc.Execute(context.Background(), &Request{CentreID: 1, SportID: 2, CourtID: 3, Date: testDate()})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 12)
	for _, slot := range resp.Slots {
		assert.False(t, slot.Booked, "slot %s should be free", slot.StartTime)
	}
}

func TestExecute_ExactSlotBooking_MarksOnlyThatSlot(t *testing.T) {
	uc := newTestUseCase([]*domain.Booking{booking(3, "14:00", "15:00")})

	resp, err := uc.Execute(context.Background(), &Request{CentreID: 1, SportID: 2, CourtID: 3, Date: testDate()})
	require.NoError(t, err)

	booked := map[types.TimeString]bool{}
	for _, slot := range resp.Slots {
		booked[slot.StartTime] = slot.Booked
	}

	assert.True(t, booked["14:00"])
	// Смежные слоты не задеты, границы интервалов не считаются пересечением
	assert.False(t, booked["13:00"])
	assert.False(t, booked["15:00"])
}

func TestExecute_MisalignedBooking_MarksBothTouchedSlots(t *testing.T) {
	// Бронирование 14:30-15:30 пересекает слоты 14:00-15:00 и 15:00-16:00
	uc := newTestUseCase([]*domain.Booking{booking(3, "14:30", "15:30")})

	resp, err := uc.Execute(context.Background(), &Request{CentreID: 1, SportID: 2, CourtID: 3, Date: testDate()})
	require.NoError(t, err)

	booked := map[types.TimeString]bool{}
	for _, slot := range resp.Slots {
		booked[slot.StartTime] = slot.Booked
	}

	assert.True(t, booked["14:00"])
	assert.True(t, booked["15:00"])
	assert.False(t, booked["13:00"])
	assert.False(t, booked["16:00"])
}

func TestExecute_SlotsCarryISTInstants(t *testing.T) {
	uc := newTestUseCase(nil)

	resp, err := uc.Execute(context.Background(), &Request{CentreID: 1, SportID: 2, CourtID: 3, Date: testDate()})
	require.NoError(t, err)

	// 08:00 IST это 02:30 UTC
	first := resp.Slots[0]
	start, err := time.Parse(time.RFC3339, first.StartDateTimeIST)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 10, 15, 2, 30, 0, 0, time.UTC), start.UTC())
}

func TestExecute_Deterministic(t *testing.T) {
	uc := newTestUseCase([]*domain.Booking{booking(3, "09:00", "10:00")})
	req := &Request{CentreID: 1, SportID: 2, CourtID: 3, Date: testDate()}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Slots, second.Slots)
}

func TestExecute_UnknownChain(t *testing.T) {
	uc := newTestUseCase(nil)

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{"unknown centre", &Request{CentreID: 99, SportID: 2, CourtID: 3, Date: testDate()}, ErrCentreNotFound},
		{"sport not in centre", &Request{CentreID: 1, SportID: 99, CourtID: 3, Date: testDate()}, ErrSportNotFound},
		{"court not in sport", &Request{CentreID: 1, SportID: 2, CourtID: 99, Date: testDate()}, ErrCourtNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(nil)

	_, err := uc.Execute(context.Background(), &Request{CentreID: 0, SportID: 2, CourtID: 3, Date: testDate()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{CentreID: 1, SportID: 2, CourtID: 3})
	assert.ErrorIs(t, err, ErrInvalidDate)
}
