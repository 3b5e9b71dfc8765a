package internal

type loxNil struct{}

var nilValue = loxNil{}

func (loxNil) String() string {
	return "nil"
}
