package svg

import "github.com/matzehuels/svgkit/pkg/markup"

// Equal reports whether a and b are structurally equal: the same element
// type, the same attribute values position by position (an absent value
// only equals an absent value), the same text body and pairwise equal
// children in the same order.
//
// Equality is the only criterion the canvas uses to drop duplicate
// registrations; ids are compared separately.
func Equal(a, b Node) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	if a == b {
		return true
	}
	if a.Tag() != b.Tag() {
		return false
	}

	fa, fb := a.form(), b.form()
	if fa.hasText != fb.hasText || fa.text != fb.text || fa.open != fb.open {
		return false
	}
	if !equalAttrs(flatten(fa.bags), flatten(fb.bags)) {
		return false
	}
	if len(fa.children) != len(fb.children) {
		return false
	}
	for i := range fa.children {
		if !Equal(fa.children[i], fb.children[i]) {
			return false
		}
	}
	return true
}

func flatten(bags []markup.Bag) []markup.Attr {
	var out []markup.Attr
	for _, b := range bags {
		out = append(out, b...)
	}
	return out
}

func equalAttrs(a, b []markup.Attr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Key != b[i].Key {
			return false
		}
		va, oka := markup.Format(a[i].Value)
		vb, okb := markup.Format(b[i].Value)
		if oka != okb || va != vb {
			return false
		}
	}
	return true
}
