package internal

import "lox/internal/tokens"

type operator string

const (
	opAdd operator = "add"
	opSub operator = "sub"
	opDiv operator = "div"
	opMul operator = "mul"
	opEq  operator = "eq"
	opNeq operator = "neq"
	opLt  operator = "lt"
	opLte operator = "lte"
	opGt  operator = "gt"
	opGte operator = "gte"
)

var binaryOperators = map[tokens.TokenType]operator{
	tokens.PLUS:          opAdd,
	tokens.MINUS:         opSub,
	tokens.SLASH:         opDiv,
	tokens.STAR:          opMul,
	tokens.EQUAL_EQUAL:   opEq,
	tokens.BANG_EQUAL:    opNeq,
	tokens.LESS:          opLt,
	tokens.LESS_EQUAL:    opLte,
	tokens.GREATER:       opGt,
	tokens.GREATER_EQUAL: opGte,
}

// operatorApply returns one of the runtime error kinds on a contract
// violation; the caller attaches the operator token.
type operatorApply func(left, right Value) (Value, error)

var binaryOperations = map[operator]operatorApply{
	opAdd: add,
	opSub: func(left, right Value) (Value, error) {
		l, r, err := numbers(left, right)
		if err != nil {
			return nil, err
		}
		return l - r, nil
	},
	opDiv: func(left, right Value) (Value, error) {
		l, r, err := numbers(left, right)
		if err != nil {
			return nil, err
		}
		if r == 0 {
			return nil, ErrDivisionByZero
		}
		return l / r, nil
	},
	opMul: multiply,
	opEq: func(left, right Value) (Value, error) {
		return loxBool(equal(left, right)), nil
	},
	opNeq: func(left, right Value) (Value, error) {
		return loxBool(!equal(left, right)), nil
	},
	opLt:  compare(func(x, y float64) bool { return x < y }),
	opLte: compare(func(x, y float64) bool { return x <= y }),
	opGt:  compare(func(x, y float64) bool { return x > y }),
	opGte: compare(func(x, y float64) bool { return x >= y }),
}

func numbers(left, right Value) (loxNumber, loxNumber, error) {
	l, ok := left.(loxNumber)
	if !ok {
		return 0, 0, ErrOperandsNumbers
	}
	r, ok := right.(loxNumber)
	if !ok {
		return 0, 0, ErrOperandsNumbers
	}
	return l, r, nil
}

func add(left, right Value) (Value, error) {
	switch l := left.(type) {
	case loxNumber:
		switch r := right.(type) {
		case loxNumber:
			return l + r, nil
		case loxString:
			return loxString(l.String()) + r, nil
		}
	case loxString:
		switch r := right.(type) {
		case loxString:
			return l + r, nil
		case loxNumber:
			return l + loxString(r.String()), nil
		}
	}
	return nil, ErrInvalidAddition
}

func multiply(left, right Value) (Value, error) {
	switch l := left.(type) {
	case loxNumber:
		switch r := right.(type) {
		case loxNumber:
			return l * r, nil
		case loxString:
			return r.repeat(l), nil
		}
	case loxString:
		if r, ok := right.(loxNumber); ok {
			return l.repeat(r), nil
		}
	}
	return nil, ErrInvalidRepeat
}

// magnitudes are implemented by the kinds that comparison operators accept
type magnitude interface {
	magnitude() float64
}

func compare(cmp func(x, y float64) bool) operatorApply {
	return func(left, right Value) (Value, error) {
		l, ok := left.(magnitude)
		if !ok {
			return nil, ErrInvalidComparison
		}
		r, ok := right.(magnitude)
		if !ok {
			return nil, ErrInvalidComparison
		}
		return loxBool(cmp(l.magnitude(), r.magnitude())), nil
	}
}
