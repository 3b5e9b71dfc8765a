package internal

import (
	"errors"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseSource(t *testing.T, source string) ([]Stmt, ErrorList, *testReporter) {
	t.Helper()
	reporter := &testReporter{}
	tks, lexErrs := Scan(source, reporter)
	require.Empty(t, lexErrs)
	stmts, errs := Parse(tks, reporter)
	return stmts, errs, reporter
}

func checkTree(t *testing.T, source, tree string) {
	t.Helper()
	stmts, errs, _ := parseSource(t, source)
	require.Empty(t, errs, "source: %s", source)
	assert.Equal(t, tree+"\n", PrintTree(stmts), "source: %s\n%s", source, pretty.Sprint(stmts))
}

func TestParsePrecedence(t *testing.T) {
	checkTree(t, "1 + 2 * 3", "(; (+ 1 (* 2 3)))")
	checkTree(t, "1 - 2 - 3", "(; (- (- 1 2) 3))")
	checkTree(t, "8 / 4 * 2", "(; (* (/ 8 4) 2))")
	checkTree(t, "1 < 2 == 3 >= 4", "(; (== (< 1 2) (>= 3 4)))")
	checkTree(t, "1 != 2 == 3", "(; (== (!= 1 2) 3))")
	checkTree(t, "-(1 + 2)", "(; (- (group (+ 1 2))))")
	checkTree(t, "!!true", "(; (! (! true)))")
	checkTree(t, "- -1", "(; (- (- 1)))")
	checkTree(t, `"a" + nil`, `(; (+ "a" nil))`)
}

func TestParseTernary(t *testing.T) {
	checkTree(t, `1 == 1 ? "a" : "b"`, `(; (?: (== 1 1) "a" "b"))`)
	checkTree(t, `a ? b : c ? d : e`, `(; (?: a b (?: c d e)))`)
	checkTree(t, `a ? b ? c : d : e`, `(; (?: a (?: b c d) e))`)
	checkTree(t, `x = a ? b : c`, `(; (= x (?: a b c)))`)
}

func TestParseStatements(t *testing.T) {
	checkTree(t, "var a = 1; var b; print a + b;", "(var a 1)\n(var b)\n(print (+ a b))")
	checkTree(t, "{ var a = 1; { a = 2; } }", "(block (var a 1) (block (; (= a 2))))")
	checkTree(t, "a = b = 3;", "(; (= a (= b 3)))")
	checkTree(t, "1;\n2", "(; 1)\n(; 2)")
}

func TestParseMissingParen(t *testing.T) {
	stmts, errs, reporter := parseSource(t, "(1 + 2;\nprint 3;")
	require.Len(t, errs, 1)
	assert.True(t, errors.Is(errs[0], errUnclosedParen))
	assert.Equal(t, []string{"[line 1] Error at ';': Expect ')' after expression."}, reporter.reports)
	assert.Equal(t, "(print 3)\n", PrintTree(stmts))
}

func TestParseMissingColon(t *testing.T) {
	stmts, errs, reporter := parseSource(t, "true ? 1;\nvar a = 2;")
	require.Len(t, errs, 1)
	assert.True(t, errors.Is(errs[0], errExpectedColon))
	assert.Equal(t, 1, reporter.lines[0])
	assert.Equal(t, "(var a 2)\n", PrintTree(stmts))
}

func TestParseErrorAtEnd(t *testing.T) {
	_, errs, reporter := parseSource(t, "1 +")
	require.Len(t, errs, 1)
	assert.Equal(t, " at end", errs[0].Where)
	assert.Equal(t, []string{"[line 1] Error at end: Expect expression."}, reporter.reports)
}

func TestParseRecoversPerStatement(t *testing.T) {
	source := "print 1;\nprint 2;\nprint (3;\nprint 4;\nvar = 5;\nprint 6;"
	stmts, errs, reporter := parseSource(t, source)

	require.Len(t, errs, 2, pretty.Sprint(reporter.reports))
	assert.Equal(t, []int{3, 5}, reporter.lines)
	assert.Equal(t, "(print 1)\n(print 2)\n(print 4)\n(print 6)\n", PrintTree(stmts))
}

func TestParseSynchronizesAtKeyword(t *testing.T) {
	stmts, errs, _ := parseSource(t, "1 + + var a = 1;")
	require.Len(t, errs, 1)
	assert.Equal(t, "(var a 1)\n", PrintTree(stmts))
}

func TestParseMissingSemicolon(t *testing.T) {
	stmts, errs, reporter := parseSource(t, "print 1 2; print 3;")
	require.Len(t, errs, 1)
	assert.Equal(t, []string{"[line 1] Error at '2': Expect ';' after value."}, reporter.reports)
	assert.Equal(t, "(print 3)\n", PrintTree(stmts))
}

func TestParseInvalidAssignment(t *testing.T) {
	stmts, errs, reporter := parseSource(t, "1 = 2;\nprint 3;")
	require.Len(t, errs, 1)
	assert.True(t, errors.Is(errs[0], errInvalidAssignment))
	assert.Equal(t, []string{"[line 1] Error at '=': Invalid assignment target."}, reporter.reports)
	// The statement itself is kept since the parser did not lose its place
	assert.Equal(t, "(; 1)\n(print 3)\n", PrintTree(stmts))
}

func TestParseUnclosedBlock(t *testing.T) {
	_, errs, reporter := parseSource(t, "{ var a = 1;")
	require.Len(t, errs, 1)
	assert.Equal(t, []string{"[line 1] Error at end: Expect '}' after block."}, reporter.reports)
}

func TestParseEmpty(t *testing.T) {
	stmts, errs, _ := parseSource(t, "  // nothing here\n")
	assert.Empty(t, errs)
	assert.Empty(t, stmts)
	assert.Nil(t, errs.Err())
}
