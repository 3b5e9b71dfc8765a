package internal

// Value is a runtime value. The language has exactly four kinds of
// values: loxNumber, loxString, loxBool and loxNil.
type Value interface {
	// String returns the display form used for output and for mixed
	// type concatenation.
	String() string
}

var (
	_ Value = loxNumber(0)
	_ Value = loxString("")
	_ Value = loxBool(false)
	_ Value = loxNil{}
)

// truthy: nil and false are false, everything else is true
func truthy(value Value) bool {
	switch v := value.(type) {
	case nil, loxNil:
		return false
	case loxBool:
		return bool(v)
	default:
		return true
	}
}

// equal compares values of the same kind with their natural equality.
// Values of different kinds are never equal.
func equal(a, b Value) bool {
	return a == b
}

// stringify returns the display text of a value
func stringify(value Value) string {
	if value == nil {
		return nilValue.String()
	}
	return value.String()
}
