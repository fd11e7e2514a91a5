package bulk_block

import "fmt"

func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if req.EmployeeID == "" {
		return fmt.Errorf("%w: employeeId is required", ErrInvalidInput)
	}
	if req.Day.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if len(req.Slots) == 0 {
		return fmt.Errorf("%w: at least one slot is required", ErrInvalidInput)
	}
	return nil
}
