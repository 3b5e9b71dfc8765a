package internal

import "fmt"

// env is one lexical scope. The enclosing scope is shared with its other
// children and outlives them.
type env struct {
	enclosing *env
	values    map[string]Value
}

func newEnv(enclosing *env) *env {
	return &env{
		enclosing: enclosing,
		values:    make(map[string]Value),
	}
}

func (e *env) get(name *Token) (Value, error) {
	if value, ok := e.values[name.Lexeme]; ok {
		return value, nil
	}
	if e.enclosing != nil {
		return e.enclosing.get(name)
	}
	return nil, undefinedVariable(name)
}

// define binds name in this scope only, replacing any previous binding
func (e *env) define(name string, value Value) {
	e.values[name] = value
}

// assign updates the nearest scope that already binds name. It never
// creates a binding.
func (e *env) assign(name *Token, value Value) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.assign(name, value)
	}
	return undefinedVariable(name)
}

func undefinedVariable(name *Token) *RuntimeError {
	return &RuntimeError{
		Token:   name,
		Kind:    ErrUndefinedVariable,
		Message: fmt.Sprintf("Undefined variable '%s'.", name.Lexeme),
	}
}
