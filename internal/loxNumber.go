package internal

import "strconv"

type loxNumber float64

// String prints integral numbers without a fractional part
func (n loxNumber) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

// magnitude returns the value used by comparison operators
func (n loxNumber) magnitude() float64 {
	return float64(n)
}
