package create_booking

import (
	"fmt"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	"github.com/quickcourt/QC-BookingService/pkg/types"
)

func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userId must be positive", ErrInvalidInput)
	}
	if req.CentreID <= 0 {
		return fmt.Errorf("%w: centreId must be positive", ErrInvalidInput)
	}
	if req.SportID <= 0 {
		return fmt.Errorf("%w: sportId must be positive", ErrInvalidInput)
	}
	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtId must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}
	if req.Start.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.Start.Validate(); err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}
	if !req.End.IsZero() {
		if err := req.End.Validate(); err != nil {
			return fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
		}
	}
	return nil
}

// resolveEnd возвращает конец интервала: явный из запроса либо
// start + шаг сетки, когда конец не указан
func resolveEnd(start, end types.TimeString, policy domain.SlotPolicy) (types.TimeString, error) {
	if !end.IsZero() {
		return end, nil
	}
	resolved, err := start.AddMinutes(policy.StepMinutes)
	if err != nil {
		return "", fmt.Errorf("%w: booking cannot cross midnight", ErrInvalidTimeRange)
	}
	return resolved, nil
}

// validateTimeRange проверяет порядок границ и попадание в рабочие часы
func validateTimeRange(start, end types.TimeString, policy domain.SlotPolicy) error {
	if !start.IsBefore(end) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidTimeRange)
	}
	if start.IsBefore(policy.OpenTime) || end.IsAfter(policy.CloseTime) {
		return fmt.Errorf("%w: slot must be within %s-%s", ErrOutsideOperatingHours, policy.OpenTime, policy.CloseTime)
	}
	return nil
}
