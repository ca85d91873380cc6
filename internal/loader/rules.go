package loader

import (
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/google/uuid"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/FengLee1113/sentry/pkg/core"
)

// ruleFile is the on-disk layout of a rules file.
// YAML and JSON are both accepted since JSON is valid YAML.
type ruleFile struct {
	Rules []core.ScrubRule `koanf:"rules"`
}

var (
	methodTypeType = reflect.TypeOf(core.MethodType(""))
	ruleTypeType   = reflect.TypeOf(core.RuleType(""))
)

// enumHook parses method and type strings into their enums, rejecting unknown values.
func enumHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String {
		return data, nil
	}
	switch to {
	case methodTypeType:
		return core.ParseMethodType(data.(string))
	case ruleTypeType:
		return core.ParseRuleType(data.(string))
	}
	return data, nil
}

// ReadRules reads scrubbing rules from path ("-" for stdin).
// Rules without an ID get a generated one. Every rule is validated.
func ReadRules(path string, stdin io.Reader) ([]core.ScrubRule, error) {
	k := koanf.New(".")

	var err error
	if path == "-" {
		var data []byte
		data, err = readInput(path, stdin)
		if err == nil {
			err = k.Load(rawbytes.Provider(data), yaml.Parser())
		}
	} else {
		err = k.Load(file.Provider(path), yaml.Parser())
	}
	if err != nil {
		return nil, fmt.Errorf("read rules %s: %w", path, err)
	}

	return decodeRules(k, path)
}

// ParseRules decodes scrubbing rules from YAML or JSON bytes.
func ParseRules(data []byte) ([]core.ScrubRule, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}
	return decodeRules(k, "input")
}

func decodeRules(k *koanf.Koanf, name string) ([]core.ScrubRule, error) {
	var rf ruleFile
	if err := k.UnmarshalWithConf("", &rf, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:       mapstructure.ComposeDecodeHookFunc(enumHook),
			Result:           &rf,
			WeaklyTypedInput: true,
		},
	}); err != nil {
		return nil, fmt.Errorf("decode rules %s: %w", name, err)
	}

	var errs []error
	for i := range rf.Rules {
		if rf.Rules[i].ID == "" {
			rf.Rules[i].ID = uuid.NewString()
		}
		if err := rf.Rules[i].Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	if rf.Rules == nil {
		rf.Rules = []core.ScrubRule{}
	}
	return rf.Rules, nil
}
