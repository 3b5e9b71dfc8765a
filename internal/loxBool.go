package internal

import "strconv"

type loxBool bool

func (b loxBool) String() string {
	return strconv.FormatBool(bool(b))
}
