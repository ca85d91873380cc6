// Package core defines the shared language of groupinfo.
//
// This package contains:
//   - Grouping diagnostics (GroupComponent, Value, Leaf, GroupingVariant)
//   - Data scrubbing rules (ScrubRule, MethodType, RuleType)
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
