package privacy

import (
	"fmt"

	"github.com/FengLee1113/sentry/pkg/core"
	"golang.org/x/text/message"
)

// Action names a per-row operation.
type Action string

// Row actions.
const (
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// Actions holds the optional callback factories of the rule list.
// Each factory receives a rule ID and returns the handler bound to it.
type Actions struct {
	OnEdit   func(id string) func()
	OnDelete func(id string) func()
}

// Row is one displayed rule.
type Row struct {
	Key     string   `json:"key" yaml:"key"`
	Summary string   `json:"summary" yaml:"summary"`
	Method  string   `json:"method" yaml:"method"`
	Type    string   `json:"type" yaml:"type"`
	Source  string   `json:"source" yaml:"source"`
	Actions []Action `json:"actions,omitempty" yaml:"actions,omitempty"`

	edit   func()
	delete func()
}

// Edit invokes the edit handler of the row. It reports whether one was set.
func (r Row) Edit() bool {
	if r.edit == nil {
		return false
	}
	r.edit()
	return true
}

// Delete invokes the delete handler of the row. It reports whether one was set.
func (r Row) Delete() bool {
	if r.delete == nil {
		return false
	}
	r.delete()
	return true
}

// Summary composes the one-line description of a rule,
// e.g. "[Mask] [Credit card numbers] from [$message]".
func Summary(rule core.ScrubRule, labels Labels, p *message.Printer) string {
	from := msgFrom
	if p != nil {
		from = p.Sprintf(msgFrom)
	}
	return fmt.Sprintf("[%s] [%s] %s [%s]",
		labels.MethodLabel(rule.Method),
		labels.TypeLabel(rule.Type),
		from,
		rule.Source,
	)
}

// BuildList turns rules into display rows, keeping their order.
func BuildList(rules []core.ScrubRule, labels Labels, p *message.Printer, actions Actions) []Row {
	rows := make([]Row, 0, len(rules))
	for _, rule := range rules {
		row := Row{
			Key:     rule.ID,
			Summary: Summary(rule, labels, p),
			Method:  labels.MethodLabel(rule.Method),
			Type:    labels.TypeLabel(rule.Type),
			Source:  rule.Source,
		}
		if actions.OnEdit != nil {
			row.edit = actions.OnEdit(rule.ID)
			row.Actions = append(row.Actions, ActionEdit)
		}
		if actions.OnDelete != nil {
			row.delete = actions.OnDelete(rule.ID)
			row.Actions = append(row.Actions, ActionDelete)
		}
		rows = append(rows, row)
	}
	return rows
}
