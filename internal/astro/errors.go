package astro

import "fmt"

// ComputationError означает, что расчёт невозможен для данного входа:
// момент вне поддерживаемых эпох, дома не определены на полярных широтах.
type ComputationError struct {
	Op     string
	Reason string
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// InvalidRangeError означает некорректный интервал поиска.
type InvalidRangeError struct {
	Reason string
}

func (e *InvalidRangeError) Error() string {
	return e.Reason
}
