package typeid

import (
	"reflect"
	"strings"
)

// Token identifies a concrete Go type at runtime. Two tokens are equal iff
// they identify the same type. Token is comparable and usable as a map key.
//
// The zero Token identifies no type at all; it equals only itself and orders
// before every non-zero token.
type Token struct {
	rt reflect.Type
}

// For returns the token identifying T.
func For[T any]() Token {
	return Token{rt: reflect.TypeFor[T]()}
}

// Of returns the token identifying an already-obtained reflect.Type.
// A nil type yields the zero Token.
func Of(rt reflect.Type) Token {
	return Token{rt: rt}
}

// Type returns the reflect.Type the token identifies, or nil for the zero
// Token.
func (t Token) Type() reflect.Type { return t.rt }

// IsZero reports whether t is the zero Token.
func (t Token) IsZero() bool { return t.rt == nil }

// String returns a human-readable name for the identified type, such as
// "int" or "pkg.Widget". It is intended for diagnostics only: distinct types
// may share a string form, while tokens themselves never collide.
func (t Token) String() string {
	if t.rt == nil {
		return "<none>"
	}
	return t.rt.String()
}

// Compare orders t relative to other, returning -1, 0, or +1. The order is
// consistent within a process run but otherwise arbitrary; see the package
// documentation.
func (t Token) Compare(other Token) int {
	return Compare(t, other)
}

// Compare orders two tokens; see [Token.Compare].
func Compare(a, b Token) int {
	if a.rt == b.rt {
		return 0
	}
	// Zero tokens sort first.
	if a.rt == nil {
		return -1
	}
	if b.rt == nil {
		return 1
	}
	if c := strings.Compare(a.rt.String(), b.rt.String()); c != 0 {
		return c
	}
	// Distinct types with the same string form (e.g. same-named types from
	// different packages). Fall back to package paths, which disambiguate
	// named types; remaining ties are broken by kind so the order stays
	// deterministic within a run.
	if c := strings.Compare(a.rt.PkgPath(), b.rt.PkgPath()); c != 0 {
		return c
	}
	if ka, kb := a.rt.Kind(), b.rt.Kind(); ka != kb {
		if ka < kb {
			return -1
		}
		return 1
	}
	return 0
}
