package domain

import (
	"errors"
	"fmt"

	"github.com/quickcourt/QC-BookingService/pkg/types"
)

var (
	// ErrInvalidSlotPolicy возвращается для политики, по которой нельзя построить сетку слотов
	ErrInvalidSlotPolicy = errors.New("invalid slot policy")
)

// SlotPolicy описывает рабочую сетку бронирования площадки:
// время открытия, время закрытия и фиксированный шаг слота.
type SlotPolicy struct {
	OpenTime    types.TimeString
	CloseTime   types.TimeString
	StepMinutes int
}

// DefaultSlotPolicy возвращает политику по умолчанию (08:00-20:00, шаг 60 минут)
func DefaultSlotPolicy() SlotPolicy {
	return SlotPolicy{
		OpenTime:    DefaultOpenTime,
		CloseTime:   DefaultCloseTime,
		StepMinutes: DefaultSlotStepMinutes,
	}
}

// Validate проверяет корректность политики
func (p SlotPolicy) Validate() error {
	if err := p.OpenTime.Validate(); err != nil {
		return fmt.Errorf("%w: open time: %v", ErrInvalidSlotPolicy, err)
	}
	if err := p.CloseTime.Validate(); err != nil {
		return fmt.Errorf("%w: close time: %v", ErrInvalidSlotPolicy, err)
	}
	if !p.OpenTime.IsBefore(p.CloseTime) {
		return fmt.Errorf("%w: open time %s must be before close time %s",
			ErrInvalidSlotPolicy, p.OpenTime, p.CloseTime)
	}
	if p.StepMinutes < MinSlotStepMinutes || p.StepMinutes > MaxSlotStepMinutes {
		return fmt.Errorf("%w: step must be within [%d, %d] minutes, got %d",
			ErrInvalidSlotPolicy, MinSlotStepMinutes, MaxSlotStepMinutes, p.StepMinutes)
	}
	return nil
}

// Slot один кандидат-слот сетки, полуоткрытый интервал [StartTime, EndTime)
type Slot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}

// GenerateSlots строит упорядоченную сетку слотов от открытия до закрытия
// с фиксированным шагом. Слот, выходящий за время закрытия, отбрасывается
// целиком, а не усекается. Функция детерминирована: одна политика всегда
// даёт одну и ту же последовательность.
func (p SlotPolicy) GenerateSlots() ([]Slot, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	slots := make([]Slot, 0)
	current := p.OpenTime

	for current.IsBefore(p.CloseTime) {
		end, err := current.AddMinutes(p.StepMinutes)
		if err != nil {
			// Следующий слот пересёк бы полночь
			break
		}
		if end.IsAfter(p.CloseTime) {
			break
		}

		slots = append(slots, Slot{StartTime: current, EndTime: end})
		current = end
	}

	return slots, nil
}
