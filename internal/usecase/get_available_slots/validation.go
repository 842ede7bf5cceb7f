package get_available_slots

import "fmt"

func validateRequest(req *Request) error {
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
	return nil
}
