// Package output renders command results for terminals, pipes and machines.
//
// Commands write through a Renderer. In auto mode the Renderer picks styled
// text when stdout is a terminal and markdown otherwise, so piped output stays
// free of ANSI escape codes.
package output

import (
	"fmt"
	"strings"
)

// Mode selects how command output is formatted.
type Mode string

// Output modes.
const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
	ModeYAML     Mode = "yaml"
)

// AllModes lists the modes accepted by --output.
var AllModes = []Mode{ModeAuto, ModeText, ModeMarkdown, ModeJSON, ModeYAML}

// ParseMode validates a mode string. An empty string is auto.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAuto, nil
	case "text":
		return ModeText, nil
	case "markdown", "md":
		return ModeMarkdown, nil
	case "json":
		return ModeJSON, nil
	case "yaml", "yml":
		return ModeYAML, nil
	default:
		return "", fmt.Errorf("invalid output format %q (expected auto, text, markdown, json or yaml)", s)
	}
}

// Strings returns the mode names, for flag completion.
func Strings() []string {
	out := make([]string, len(AllModes))
	for i, m := range AllModes {
		out[i] = string(m)
	}
	return out
}
