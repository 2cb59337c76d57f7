// Package tt supports table-driven tests with little boilerplate.
//
// See the test case for this package for example usage.
package tt

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Table represents a test table.
type Table []*Case

// Case represents a test case. It is created by the Args function, and
// offers setters that augment and return itself, so calls can be chained
// like Args(...).Rets(...).
type Case struct {
	args     []any
	wantRets []any
}

// Args returns a new Case with the given arguments.
func Args(args ...any) *Case {
	return &Case{args: args}
}

// Rets modifies the test case so that it requires the return values to
// match the given values, and returns the receiver. An argument may
// implement the Matcher interface, in which case its Match method decides;
// otherwise go-cmp decides.
func (c *Case) Rets(rets ...any) *Case {
	c.wantRets = rets
	return c
}

// FnToTest describes a function to test.
type FnToTest struct {
	name string
	body any
}

// Fn makes a new FnToTest with the given function name and body.
func Fn(name string, body any) *FnToTest {
	return &FnToTest{name: name, body: body}
}

// T is the interface for accessing testing.T.
type T interface {
	Helper()
	Errorf(format string, args ...any)
}

// Test tests a function against test cases.
func Test(t T, fn *FnToTest, tests Table) {
	t.Helper()
	for _, test := range tests {
		rets := call(fn.body, test.args)
		if !match(test.wantRets, rets) {
			t.Errorf("%s(%s) -> %s, want %s", fn.name,
				sprintList(test.args), sprintList(rets), sprintList(test.wantRets))
		}
	}
}

// Matcher wraps the Match method.
type Matcher interface {
	// Match reports whether an actual return value is considered a match.
	Match(v any) bool
}

// Any is a Matcher that matches any value.
var Any Matcher = anyMatcher{}

type anyMatcher struct{}

func (anyMatcher) Match(any) bool { return true }

func match(want, got []any) bool {
	if len(want) != len(got) {
		return false
	}
	for i := range want {
		if !matchOne(want[i], got[i]) {
			return false
		}
	}
	return true
}

func matchOne(want, got any) bool {
	if m, ok := want.(Matcher); ok {
		return m.Match(got)
	}
	return cmp.Equal(want, got)
}

func sprintList(values []any) string {
	var sb strings.Builder
	for i, value := range values {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", value)
	}
	return sb.String()
}

func call(fn any, args []any) []any {
	argsReflect := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			// reflect.ValueOf(nil) returns a zero Value; work around by
			// taking the ValueOf a pointer to nil and getting its Elem.
			var v any
			argsReflect[i] = reflect.ValueOf(&v).Elem()
		} else {
			argsReflect[i] = reflect.ValueOf(arg)
		}
	}
	retsReflect := reflect.ValueOf(fn).Call(argsReflect)
	rets := make([]any, len(retsReflect))
	for i, retReflect := range retsReflect {
		rets[i] = retReflect.Interface()
	}
	return rets
}
