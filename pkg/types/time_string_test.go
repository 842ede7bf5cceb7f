package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "already normalized", input: "08:00", want: "08:00"},
		{name: "single digit hour", input: "8:00", want: "08:00"},
		{name: "seconds are truncated", input: "14:30:45", want: "14:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "last minute of day", input: "23:59", want: "23:59"},
		{name: "surrounding whitespace", input: " 09:15 ", want: "09:15"},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "missing minutes", input: "10", wantErr: true},
		{name: "garbage", input: "ten o'clock", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		minutes int
		want    TimeString
		wantErr bool
	}{
		{name: "one hour step", start: "08:00", minutes: 60, want: "09:00"},
		{name: "half hour step", start: "14:30", minutes: 30, want: "15:00"},
		{name: "crosses hour boundary", start: "09:45", minutes: 30, want: "10:15"},
		{name: "negative shift", start: "10:00", minutes: -15, want: "09:45"},
		{name: "crosses midnight forward", start: "23:30", minutes: 60, wantErr: true},
		{name: "crosses midnight backward", start: "00:10", minutes: -20, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrTimeOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("08:01"))
	assert.False(t, TimeString("08:00").IsBefore("08:00"))
	assert.True(t, TimeString("20:00").IsAfter("19:59"))
	assert.False(t, TimeString("20:00").IsAfter("20:00"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:30:00"))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan([]byte("07:05")))
	assert.Equal(t, TimeString("07:05"), ts)

	require.NoError(t, ts.Scan(time.Date(2024, 12, 25, 18, 45, 12, 0, time.UTC)))
	assert.Equal(t, TimeString("18:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("09:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "09:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("25:00").Value()
	assert.Error(t, err)
}
