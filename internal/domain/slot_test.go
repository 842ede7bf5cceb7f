package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickcourt/QC-BookingService/pkg/types"
)

func TestSlotPolicy_GenerateSlots_HourlyGrid(t *testing.T) {
	policy := SlotPolicy{OpenTime: "08:00", CloseTime: "20:00", StepMinutes: 60}

	slots, err := policy.GenerateSlots()
	require.NoError(t, err)

	require.Len(t, slots, 12)
	assert.Equal(t, Slot{StartTime: "08:00", EndTime: "09:00"}, slots[0])
	assert.Equal(t, Slot{StartTime: "19:00", EndTime: "20:00"}, slots[11])

	// Сетка непрерывна: конец каждого слота совпадает с началом следующего
	for i := 1; i < len(slots); i++ {
		assert.Equal(t, slots[i-1].EndTime, slots[i].StartTime)
	}
}

func TestSlotPolicy_GenerateSlots_DropsPartialTrailingSlot(t *testing.T) {
	// Остаток 20:00-20:30 не кратен шагу и не должен давать слот
	policy := SlotPolicy{OpenTime: "08:00", CloseTime: "20:30", StepMinutes: 60}

	slots, err := policy.GenerateSlots()
	require.NoError(t, err)

	require.Len(t, slots, 12)
	assert.Equal(t, types.TimeString("20:00"), slots[11].EndTime)
}

func TestSlotPolicy_GenerateSlots_HalfHourGrid(t *testing.T) {
	policy := SlotPolicy{OpenTime: "13:30", CloseTime: "16:30", StepMinutes: 30}

	slots, err := policy.GenerateSlots()
	require.NoError(t, err)

	require.Len(t, slots, 6)
	assert.Equal(t, Slot{StartTime: "13:30", EndTime: "14:00"}, slots[0])
	assert.Equal(t, Slot{StartTime: "16:00", EndTime: "16:30"}, slots[5])
}

func TestSlotPolicy_GenerateSlots_Deterministic(t *testing.T) {
	policy := DefaultSlotPolicy()

	first, err := policy.GenerateSlots()
	require.NoError(t, err)
	second, err := policy.GenerateSlots()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSlotPolicy_Validate(t *testing.T) {
	tests := []struct {
		name   string
		policy SlotPolicy
	}{
		{name: "open equals close", policy: SlotPolicy{OpenTime: "10:00", CloseTime: "10:00", StepMinutes: 60}},
		{name: "open after close", policy: SlotPolicy{OpenTime: "20:00", CloseTime: "08:00", StepMinutes: 60}},
		{name: "zero step", policy: SlotPolicy{OpenTime: "08:00", CloseTime: "20:00", StepMinutes: 0}},
		{name: "negative step", policy: SlotPolicy{OpenTime: "08:00", CloseTime: "20:00", StepMinutes: -30}},
		{name: "step above limit", policy: SlotPolicy{OpenTime: "08:00", CloseTime: "20:00", StepMinutes: 481}},
		{name: "bad open time", policy: SlotPolicy{OpenTime: "25:00", CloseTime: "20:00", StepMinutes: 60}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.Validate()
			assert.ErrorIs(t, err, ErrInvalidSlotPolicy)

			_, err = tt.policy.GenerateSlots()
			assert.ErrorIs(t, err, ErrInvalidSlotPolicy)
		})
	}
}
