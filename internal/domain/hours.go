package domain

import (
	"fmt"

	"github.com/m04kA/barber-frontdesk/pkg/types"
)

// BusinessHours opening hours of one surface (booking page, admin grid, kiosk, block)
type BusinessHours struct {
	Open  types.TimeString
	Close types.TimeString
	Step  int // minutes
}

// Validate open < close and step > 0
func (h BusinessHours) Validate() error {
	if err := h.Open.Validate(); err != nil {
		return fmt.Errorf("%w: open: %v", ErrInvalidInput, err)
	}
	if err := h.Close.Validate(); err != nil {
		return fmt.Errorf("%w: close: %v", ErrInvalidInput, err)
	}
	if !h.Open.IsBefore(h.Close) {
		return fmt.Errorf("%w: open %s must be before close %s", ErrInvalidInput, h.Open, h.Close)
	}
	if h.Step <= 0 {
		return fmt.Errorf("%w: step must be positive, got %d", ErrInvalidInput, h.Step)
	}
	return nil
}
