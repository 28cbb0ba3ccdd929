// SPDX-License-Identifier: MIT

package spline

import (
	"fmt"
	"strings"
)

var kindNames = [...]string{
	Natural:            "Natural",
	NotAKnot:           "NotAKnot",
	Clamped:            "Clamped",
	Monotone:           "Monotone",
	Nonnegative:        "Nonnegative",
	QuinticNonnegative: "QuinticNonnegative",
}

func kindName(k Kind) string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// String returns the Kind name, e.g. "NotAKnot".
func (k Kind) String() string { return kindName(k) }

// String renders m in the form accepted by ParseMethod, e.g.
// "Monotone(Natural)". A filter with a default primary prints bare.
func (m Method) String() string {
	if m.Primary == nil {
		return kindName(m.Kind)
	}

	return kindName(m.Kind) + "(" + m.Primary.String() + ")"
}

// aliases maps lower-cased names to methods. The long names are those used
// by curve-building configuration files.
var aliases = map[string]Method{
	"natural":            {Kind: Natural},
	"notaknot":           {Kind: NotAKnot},
	"clamped":            {Kind: Clamped},
	"monotone":           {Kind: Monotone},
	"monotonic":          {Kind: Monotone},
	"nonnegative":        {Kind: Nonnegative},
	"quinticnonnegative": {Kind: QuinticNonnegative},

	"naturalcubicspline":                {Kind: Natural},
	"notaknotcubicspline":               {Kind: NotAKnot},
	"clampedcubicspline":                {Kind: Clamped},
	"monotonicitypreservingcubicspline": {Kind: Monotone},

	"naturalcubicsplinewithmonotonicity":  WithMonotonicity(Method{Kind: Natural}),
	"notaknotcubicsplinewithmonotonicity": WithMonotonicity(Method{Kind: NotAKnot}),
	"clampedcubicsplinewithmonotonicity":  WithMonotonicity(Method{Kind: Clamped}),

	"naturalcubicsplinewithnonnegativity":  WithNonnegativity(Method{Kind: Natural}),
	"notaknotcubicsplinewithnonnegativity": WithNonnegativity(Method{Kind: NotAKnot}),
	"clampedcubicsplinewithnonnegativity":  WithNonnegativity(Method{Kind: Clamped}),

	"naturalquinticsplinewithnonnegativity":  WithQuinticNonnegativity(Method{Kind: Natural}),
	"notaknotquinticsplinewithnonnegativity": WithQuinticNonnegativity(Method{Kind: NotAKnot}),
	"clampedquinticsplinewithnonnegativity":  WithQuinticNonnegativity(Method{Kind: Clamped}),
}

// ParseMethod parses a strategy name. Names are case-insensitive; a filter
// may name its primary in parentheses and filters nest:
//
//	"NotAKnot"
//	"Monotone(Natural)"
//	"Nonnegative(Monotone(Clamped))"
//	"NaturalCubicSplineWithMonotonicity"
//
// Only the cubic filters and QuinticNonnegative accept a primary, and the
// primary itself must be cubic.
func ParseMethod(name string) (Method, error) {
	m, rest, err := parseMethod(strings.TrimSpace(name))
	if err != nil {
		return Method{}, err
	}
	if rest != "" {
		return Method{}, unknownName(name, fmt.Sprintf("trailing %q", rest))
	}
	if _, err = m.requirements(); err != nil {
		return Method{}, err
	}

	return m, nil
}

func parseMethod(s string) (Method, string, error) {
	open := strings.IndexAny(s, "()")
	head := s
	if open >= 0 {
		head = s[:open]
	}
	m, ok := aliases[strings.ToLower(strings.TrimSpace(head))]
	if !ok {
		return Method{}, "", unknownName(s, fmt.Sprintf("no method %q", strings.TrimSpace(head)))
	}
	m = m.clone()
	if open < 0 {
		return m, "", nil
	}
	if s[open] == ')' {
		return m, s[open:], nil
	}
	if m.Kind != Monotone && m.Kind != Nonnegative && m.Kind != QuinticNonnegative {
		return Method{}, "", unknownName(s, fmt.Sprintf("%s takes no primary", m))
	}
	if m.Primary != nil {
		return Method{}, "", unknownName(s, fmt.Sprintf("%s already names its primary", strings.TrimSpace(head)))
	}
	inner, rest, err := parseMethod(strings.TrimSpace(s[open+1:]))
	if err != nil {
		return Method{}, "", err
	}
	rest = strings.TrimSpace(rest)
	if !strings.HasPrefix(rest, ")") {
		return Method{}, "", unknownName(s, "missing ')'")
	}
	m.Primary = &inner

	return m, strings.TrimSpace(rest[1:]), nil
}

// clone copies the primary chain so callers never share alias entries.
func (m Method) clone() Method {
	if m.Primary != nil {
		p := m.Primary.clone()
		m.Primary = &p
	}

	return m
}

func unknownName(name, why string) error {
	return inputErr("method", -1, fmt.Errorf("%q: %s: %w", name, why, ErrUnknownMethod))
}
