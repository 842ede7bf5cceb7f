package centres

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	centreRepo "github.com/quickcourt/QC-BookingService/internal/infra/storage/centre"
)

type fakeCentreRepo struct {
	centres map[int64]*domain.Centre
	sports  map[int64]*domain.Sport
	courts  map[int64]*domain.Court
	nextID  int64
}

func newFakeCentreRepo() *fakeCentreRepo {
	return &fakeCentreRepo{
		centres: map[int64]*domain.Centre{},
		sports:  map[int64]*domain.Sport{},
		courts:  map[int64]*domain.Court{},
	}
}

func (f *fakeCentreRepo) CreateCentre(_ context.Context, c *domain.Centre) (*domain.Centre, error) {
	f.nextID++
	c.ID = f.nextID
	f.centres[c.ID] = c
	return c, nil
}

func (f *fakeCentreRepo) CreateSport(_ context.Context, s *domain.Sport) (*domain.Sport, error) {
	f.nextID++
	s.ID = f.nextID
	f.sports[s.ID] = s
	return s, nil
}

func (f *fakeCentreRepo) CreateCourt(_ context.Context, c *domain.Court) (*domain.Court, error) {
	f.nextID++
	c.ID = f.nextID
	f.courts[c.ID] = c
	return c, nil
}

func (f *fakeCentreRepo) GetCentreByID(_ context.Context, id int64) (*domain.Centre, error) {
	c, ok := f.centres[id]
	if !ok {
		return nil, centreRepo.ErrCentreNotFound
	}
	return c, nil
}

func (f *fakeCentreRepo) GetSportByID(_ context.Context, id int64) (*domain.Sport, error) {
	s, ok := f.sports[id]
	if !ok {
		return nil, centreRepo.ErrSportNotFound
	}
	return s, nil
}

func (f *fakeCentreRepo) ListCentres(_ context.Context) ([]*domain.Centre, error) {
	result := make([]*domain.Centre, 0, len(f.centres))
	for _, c := range f.centres {
		result = append(result, c)
	}
	return result, nil
}

func (f *fakeCentreRepo) ListSportsByCentre(_ context.Context, centreID int64) ([]*domain.Sport, error) {
	result := make([]*domain.Sport, 0)
	for _, s := range f.sports {
		if s.CentreID == centreID {
			result = append(result, s)
		}
	}
	return result, nil
}

func (f *fakeCentreRepo) ListCourtsBySport(_ context.Context, sportID int64) ([]*domain.Court, error) {
	result := make([]*domain.Court, 0)
	for _, c := range f.courts {
		if c.SportID == sportID {
			result = append(result, c)
		}
	}
	return result, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCreateCentre_TrimsAndStores(t *testing.T) {
	svc := NewService(newFakeCentreRepo(), nopLogger{})

	centre, err := svc.CreateCentre(context.Background(), "  Smash Arena  ", " Indiranagar ")
	require.NoError(t, err)

	assert.Equal(t, "Smash Arena", centre.Name)
	assert.Equal(t, "Indiranagar", centre.Location)
	assert.NotZero(t, centre.ID)
}

func TestCreateCentre_Validation(t *testing.T) {
	svc := NewService(newFakeCentreRepo(), nopLogger{})

	_, err := svc.CreateCentre(context.Background(), "", "Indiranagar")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateCentre(context.Background(), strings.Repeat("x", domain.MaxNameLength+1), "Indiranagar")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateCentre(context.Background(), "Smash Arena", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateSport_RequiresExistingCentre(t *testing.T) {
	repo := newFakeCentreRepo()
	svc := NewService(repo, nopLogger{})

	_, err := svc.CreateSport(context.Background(), 99, "Badminton")
	assert.ErrorIs(t, err, ErrCentreNotFound)

	centre, err := svc.CreateCentre(context.Background(), "Smash Arena", "Indiranagar")
	require.NoError(t, err)

	sport, err := svc.CreateSport(context.Background(), centre.ID, "Badminton")
	require.NoError(t, err)
	assert.Equal(t, centre.ID, sport.CentreID)
}

func TestCreateCourt_RequiresExistingSport(t *testing.T) {
	repo := newFakeCentreRepo()
	svc := NewService(repo, nopLogger{})

	_, err := svc.CreateCourt(context.Background(), 99, "Court 1")
	assert.ErrorIs(t, err, ErrSportNotFound)

	centre, err := svc.CreateCentre(context.Background(), "Smash Arena", "Indiranagar")
	require.NoError(t, err)
	sport, err := svc.CreateSport(context.Background(), centre.ID, "Badminton")
	require.NoError(t, err)

	court, err := svc.CreateCourt(context.Background(), sport.ID, "Court 1")
	require.NoError(t, err)
	assert.Equal(t, sport.ID, court.SportID)
}

func TestListCentreSports_UnknownCentre(t *testing.T) {
	svc := NewService(newFakeCentreRepo(), nopLogger{})

	_, err := svc.ListCentreSports(context.Background(), 99)
	assert.ErrorIs(t, err, ErrCentreNotFound)
}

func TestListCentreSports_EmptyListIsValid(t *testing.T) {
	repo := newFakeCentreRepo()
	svc := NewService(repo, nopLogger{})

	centre, err := svc.CreateCentre(context.Background(), "Smash Arena", "Indiranagar")
	require.NoError(t, err)

	sports, err := svc.ListCentreSports(context.Background(), centre.ID)
	require.NoError(t, err)
	assert.Empty(t, sports)
}
