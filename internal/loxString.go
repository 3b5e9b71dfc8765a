package internal

import (
	"strings"
	"unicode/utf8"
)

type loxString string

func (s loxString) String() string {
	return string(s)
}

// magnitude is the character count; comparison operators order strings by length
func (s loxString) magnitude() float64 {
	return float64(utf8.RuneCountInString(string(s)))
}

// repeat appends the string to itself while the loop index stays below
// count. Counts up to one, and fractional parts, follow from that loop:
// 0 and 1 leave the string unchanged and 2.5 yields three copies.
func (s loxString) repeat(count loxNumber) loxString {
	var b strings.Builder
	b.WriteString(string(s))
	for i := 1; float64(i) < float64(count); i++ {
		b.WriteString(string(s))
	}
	return loxString(b.String())
}
