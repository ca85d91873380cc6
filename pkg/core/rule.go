package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownEnum is returned when a rule method or type string is not recognized.
var ErrUnknownEnum = errors.New("unknown value")

// =============================================================================
// MethodType
// =============================================================================

// MethodType is the scrubbing method applied to matched data.
type MethodType string

// Scrubbing methods.
const (
	MethodMask    MethodType = "mask"
	MethodRemove  MethodType = "remove"
	MethodHash    MethodType = "hash"
	MethodReplace MethodType = "replace"
)

// AllMethodTypes lists the scrubbing methods in display order.
var AllMethodTypes = []MethodType{MethodMask, MethodRemove, MethodHash, MethodReplace}

// String returns the string representation of the method.
func (m MethodType) String() string {
	return string(m)
}

// ParseMethodType converts a string to a MethodType.
func ParseMethodType(s string) (MethodType, error) {
	candidate := MethodType(strings.ToLower(strings.TrimSpace(s)))
	for _, m := range AllMethodTypes {
		if m == candidate {
			return m, nil
		}
	}
	return "", fmt.Errorf("method %q: %w", s, ErrUnknownEnum)
}

// =============================================================================
// RuleType
// =============================================================================

// RuleType is the kind of data a scrubbing rule matches.
type RuleType string

// Rule types.
const (
	RuleTypePattern    RuleType = "pattern"
	RuleTypeCreditCard RuleType = "creditcard"
	RuleTypePassword   RuleType = "password"
	RuleTypeIP         RuleType = "ip"
	RuleTypeIMEI       RuleType = "imei"
	RuleTypeEmail      RuleType = "email"
	RuleTypeUUID       RuleType = "uuid"
	RuleTypePEMKey     RuleType = "pemkey"
	RuleTypeURLAuth    RuleType = "url_auth"
	RuleTypeUSSSN      RuleType = "usssn"
	RuleTypeUserPath   RuleType = "userpath"
	RuleTypeMAC        RuleType = "mac"
	RuleTypeAnything   RuleType = "anything"
)

// AllRuleTypes lists the rule types in display order.
var AllRuleTypes = []RuleType{
	RuleTypeAnything,
	RuleTypeIMEI,
	RuleTypeMAC,
	RuleTypeUUID,
	RuleTypeEmail,
	RuleTypeIP,
	RuleTypeCreditCard,
	RuleTypePEMKey,
	RuleTypeURLAuth,
	RuleTypeUSSSN,
	RuleTypeUserPath,
	RuleTypePassword,
	RuleTypePattern,
}

// String returns the string representation of the rule type.
func (t RuleType) String() string {
	return string(t)
}

// ParseRuleType converts a string to a RuleType.
func ParseRuleType(s string) (RuleType, error) {
	candidate := RuleType(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range AllRuleTypes {
		if t == candidate {
			return t, nil
		}
	}
	return "", fmt.Errorf("rule type %q: %w", s, ErrUnknownEnum)
}

// =============================================================================
// ScrubRule
// =============================================================================

// ScrubRule is a data scrubbing rule: apply Method to data of Type found in Source.
type ScrubRule struct {
	ID          string     `json:"id" yaml:"id" koanf:"id"`
	Method      MethodType `json:"method" yaml:"method" koanf:"method"`
	Type        RuleType   `json:"type" yaml:"type" koanf:"type"`
	Source      string     `json:"source" yaml:"source" koanf:"source"`
	Pattern     string     `json:"pattern,omitempty" yaml:"pattern,omitempty" koanf:"pattern"`
	Placeholder string     `json:"placeholder,omitempty" yaml:"placeholder,omitempty" koanf:"placeholder"`
}

// Validate checks the fields a rule needs to be applied.
func (r ScrubRule) Validate() error {
	if r.Source == "" {
		return fmt.Errorf("rule %s: source is required", r.ID)
	}
	if r.Type == RuleTypePattern && r.Pattern == "" {
		return fmt.Errorf("rule %s: pattern rules need a pattern", r.ID)
	}
	return nil
}
