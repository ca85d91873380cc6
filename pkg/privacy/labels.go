// Package privacy builds the display list of data scrubbing rules.
package privacy

import "github.com/FengLee1113/sentry/pkg/core"

// Labels maps rule methods and types to display strings.
type Labels struct {
	Methods map[core.MethodType]string
	Types   map[core.RuleType]string
}

// DefaultLabels returns the standard display labels.
func DefaultLabels() Labels {
	return Labels{
		Methods: map[core.MethodType]string{
			core.MethodMask:    "Mask",
			core.MethodRemove:  "Remove",
			core.MethodHash:    "Hash",
			core.MethodReplace: "Replace",
		},
		Types: map[core.RuleType]string{
			core.RuleTypeAnything:   "Anything",
			core.RuleTypeIMEI:       "IMEI numbers",
			core.RuleTypeMAC:        "MAC addresses",
			core.RuleTypeUUID:       "UUIDs",
			core.RuleTypeEmail:      "Email addresses",
			core.RuleTypeIP:         "IP addresses",
			core.RuleTypeCreditCard: "Credit card numbers",
			core.RuleTypePEMKey:     "PEM keys",
			core.RuleTypeURLAuth:    "Auth in URLs",
			core.RuleTypeUSSSN:      "US social security numbers",
			core.RuleTypeUserPath:   "Usernames in filepaths",
			core.RuleTypePassword:   "Password fields",
			core.RuleTypePattern:    "Regex matches",
		},
	}
}

// WithOverrides returns a copy of l with the given labels replaced.
// Keys that are not valid methods or types are ignored.
func (l Labels) WithOverrides(methods, types map[string]string) Labels {
	out := Labels{
		Methods: make(map[core.MethodType]string, len(l.Methods)),
		Types:   make(map[core.RuleType]string, len(l.Types)),
	}
	for k, v := range l.Methods {
		out.Methods[k] = v
	}
	for k, v := range l.Types {
		out.Types[k] = v
	}

	for k, v := range methods {
		if m, err := core.ParseMethodType(k); err == nil && v != "" {
			out.Methods[m] = v
		}
	}
	for k, v := range types {
		if t, err := core.ParseRuleType(k); err == nil && v != "" {
			out.Types[t] = v
		}
	}
	return out
}

// MethodLabel returns the display label of a method, or the raw value when unknown.
func (l Labels) MethodLabel(m core.MethodType) string {
	if label, ok := l.Methods[m]; ok {
		return label
	}
	return m.String()
}

// TypeLabel returns the display label of a rule type, or the raw value when unknown.
func (l Labels) TypeLabel(t core.RuleType) string {
	if label, ok := l.Types[t]; ok {
		return label
	}
	return t.String()
}
