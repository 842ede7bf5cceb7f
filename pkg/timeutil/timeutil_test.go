package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickcourt/QC-BookingService/pkg/types"
)

var ist = time.FixedZone("IST", 5*3600+30*60)

func TestCombineDateAndTime(t *testing.T) {
	date := time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)

	got, err := CombineDateAndTime(date, "09:00", ist)
	require.NoError(t, err)

	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.December, got.Month())
	assert.Equal(t, 25, got.Day())
	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, 0, got.Minute())
	assert.Equal(t, ist.String(), got.Location().String())

	// 09:00 IST == 03:30 UTC, независимо от пояса машины
	assert.Equal(t, "2024-12-25T03:30:00Z", got.UTC().Format(time.RFC3339))
}

func TestCombineDateAndTime_InvalidTime(t *testing.T) {
	date := time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)
	_, err := CombineDateAndTime(date, "25:00", ist)
	assert.ErrorIs(t, err, types.ErrInvalidTimeFormat)
}

func TestOverlaps(t *testing.T) {
	at := func(h, m int) time.Time {
		return time.Date(2024, 12, 25, h, m, 0, 0, ist)
	}

	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{name: "partial overlap", aStart: at(14, 0), aEnd: at(15, 0), bStart: at(14, 30), bEnd: at(15, 30), want: true},
		{name: "contained", aStart: at(14, 0), aEnd: at(16, 0), bStart: at(14, 30), bEnd: at(15, 0), want: true},
		{name: "identical", aStart: at(14, 0), aEnd: at(15, 0), bStart: at(14, 0), bEnd: at(15, 0), want: true},
		{name: "touching ends", aStart: at(14, 0), aEnd: at(15, 0), bStart: at(15, 0), bEnd: at(16, 0), want: false},
		{name: "touching starts", aStart: at(15, 0), aEnd: at(16, 0), bStart: at(14, 0), bEnd: at(15, 0), want: false},
		{name: "disjoint", aStart: at(8, 0), aEnd: at(9, 0), bStart: at(12, 0), bEnd: at(13, 0), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Пересечение симметрично
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestOverlapsTimeOfDay(t *testing.T) {
	assert.True(t, OverlapsTimeOfDay("14:00", "15:00", "14:30", "15:30"))
	assert.False(t, OverlapsTimeOfDay("14:00", "15:00", "15:00", "16:00"))
	assert.False(t, OverlapsTimeOfDay("11:00", "11:30", "11:30", "12:00"))
}
