package roster

import (
	"strings"
	"unicode"
)

// ShiftType is a canonical duty code
type ShiftType string

const (
	ShiftDay        ShiftType = "D"
	ShiftEvening    ShiftType = "E"
	ShiftNight      ShiftType = "N"
	ShiftMid        ShiftType = "M"
	ShiftDayEvening ShiftType = "DE"
	ShiftOff        ShiftType = "/"
)

// ParseDutyCode maps a stored duty code to its canonical shift.
// Overtime annotations such as "4+E", "N+2" or "3+D" reduce to the base letters.
// Empty or unrecognised codes are treated as off.
func ParseDutyCode(code string) ShiftType {
	base := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) || unicode.IsSpace(r) || r == '+' {
			return -1
		}
		return unicode.ToUpper(r)
	}, code)

	switch shift := ShiftType(base); shift {
	case ShiftDay, ShiftEvening, ShiftNight, ShiftMid, ShiftDayEvening:
		return shift
	}
	return ShiftOff
}

// IsWork returns true for every shift except off
func (s ShiftType) IsWork() bool {
	return s != ShiftOff && s != ""
}

// CoversDay returns true if the shift counts toward day coverage
func (s ShiftType) CoversDay() bool {
	return s == ShiftDay || s == ShiftMid || s == ShiftDayEvening
}

// CoversEvening returns true if the shift counts toward evening coverage
func (s ShiftType) CoversEvening() bool {
	return s == ShiftEvening || s == ShiftMid || s == ShiftDayEvening
}

// CoversNight returns true if the shift counts toward night coverage
func (s ShiftType) CoversNight() bool {
	return s == ShiftNight
}

// Coverage counts staff satisfying each shift category on one date
type Coverage struct {
	D int
	E int
	N int
}

// Add counts a shift toward every category it covers
func (c *Coverage) Add(shift ShiftType) {
	if shift.CoversDay() {
		c.D++
	}
	if shift.CoversEvening() {
		c.E++
	}
	if shift.CoversNight() {
		c.N++
	}
}

// Meets returns true when all three categories reach required
func (c Coverage) Meets(required int) bool {
	return c.D >= required && c.E >= required && c.N >= required
}
