package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/FengLee1113/sentry/pkg/core"
)

// ErrEmptyInput is returned when an input file has no content.
var ErrEmptyInput = errors.New("empty input")

// DefaultVariantKey names the variant synthesized for a bare component file.
const DefaultVariantKey = "default"

// readInput reads path, or stdin when path is "-".
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		if stdin == nil {
			return nil, fmt.Errorf("read stdin: no reader")
		}
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

// ReadGroupingInfo reads grouping diagnostics from path.
// See ParseGroupingInfo for the accepted formats.
func ReadGroupingInfo(path string, stdin io.Reader) (core.GroupingInfo, error) {
	data, err := readInput(path, stdin)
	if err != nil {
		return nil, fmt.Errorf("read grouping info: %w", err)
	}
	info, err := ParseGroupingInfo(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return info, nil
}

// ParseGroupingInfo decodes grouping diagnostics. It accepts either the
// server's map of variants or a single component tree, which is wrapped in a
// contributing component variant named "default".
func ParseGroupingInfo(data []byte) (core.GroupingInfo, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrEmptyInput
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		return nil, fmt.Errorf("decode grouping info: %w", err)
	}

	if isComponent(probe) {
		var c core.GroupComponent
		if err := json.Unmarshal(trimmed, &c); err != nil {
			return nil, fmt.Errorf("decode component: %w", err)
		}
		return core.GroupingInfo{{
			Key:         DefaultVariantKey,
			Type:        core.VariantComponent,
			Contributes: true,
			Component:   &c,
		}}, nil
	}

	var info core.GroupingInfo
	if err := json.Unmarshal(trimmed, &info); err != nil {
		return nil, err
	}
	return info, nil
}

// isComponent reports whether a decoded object is a bare component rather
// than a variant map. Components carry a string id; a variant keyed "id"
// holds an object.
func isComponent(probe map[string]json.RawMessage) bool {
	raw, ok := probe["id"]
	if !ok {
		return false
	}
	var id string
	return json.Unmarshal(raw, &id) == nil
}
