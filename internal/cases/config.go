// Package cases loads dispatch case files and runs them through package
// dispatch.
//
// A case file lists receiver/argument pairs, the method to dispatch, and an
// optional expectation:
//
//	cases:
//	  - name: numeric less
//	    method: compareTo
//	    receiver: 3
//	    argument: 5
//	    expect: negative
//
// YAML and JSON files are accepted. Records are read with
// interop.GetProperty, so an omitted argument reaches the dispatcher as
// interop.Undefined.
package cases

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/funvibe/devirt/internal/config"
	"github.com/funvibe/devirt/pkg/interop"
	"github.com/funvibe/devirt/pkg/lang"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"
)

// File is a parsed case file.
type File struct {
	// Path is the file the cases were read from.
	Path  string
	Cases []Case
}

// Case is one dispatch to perform.
type Case struct {
	Name   string
	Method string

	// Receiver and Argument are decoded values: float64, bool, string, nil,
	// interop.Undefined, or an object from lang.
	Receiver any
	Argument any

	// Expect is interop.Undefined when the case only reports its result.
	Expect any
}

// LoadConfig reads and parses a case file.
func LoadConfig(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading cases %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses case file content. The path selects the format by
// extension and prefixes error messages.
func ParseConfig(data []byte, path string) (*File, error) {
	root, err := parseDocument(data, path)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	raw, ok := interop.GetProperty(root, "cases").([]any)
	if !ok || len(raw) == 0 {
		return nil, fmt.Errorf("%s: no cases defined", path)
	}

	f := &File{Path: path}
	for i, item := range raw {
		c, err := parseCase(item)
		if err != nil {
			return nil, fmt.Errorf("%s: cases[%d]: %w", path, i, err)
		}
		f.Cases = append(f.Cases, c)
	}

	f.setDefaults()
	if err := f.validate(); err != nil {
		return nil, err
	}
	return f, nil
}

func parseDocument(data []byte, path string) (any, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		s := &structpb.Struct{}
		if err := protojson.Unmarshal(data, s); err != nil {
			return nil, err
		}
		return s, nil
	}
	var root map[string]any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	return root, nil
}

func parseCase(item any) (Case, error) {
	if _, ok := item.(map[string]any); !ok {
		return Case{}, fmt.Errorf("expected a mapping, got %T", item)
	}

	var c Case
	var err error

	if name, ok := interop.GetProperty(item, "name").(string); ok {
		c.Name = name
	}
	method, ok := interop.GetProperty(item, "method").(string)
	if !ok || method == "" {
		return Case{}, fmt.Errorf("method is required")
	}
	c.Method = method

	recv := interop.GetProperty(item, "receiver")
	if interop.IsUndefined(recv) {
		return Case{}, fmt.Errorf("receiver is required")
	}
	if c.Receiver, err = DecodeValue(recv); err != nil {
		return Case{}, fmt.Errorf("receiver: %w", err)
	}
	if c.Argument, err = DecodeValue(interop.GetProperty(item, "argument")); err != nil {
		return Case{}, fmt.Errorf("argument: %w", err)
	}
	if c.Expect, err = DecodeValue(interop.GetProperty(item, "expect")); err != nil {
		return Case{}, fmt.Errorf("expect: %w", err)
	}
	return c, nil
}

// DecodeValue converts a value decoded from YAML or JSON into the value
// model used by package dispatch. Numbers become float64; mappings describe
// objects.
func DecodeValue(v any) (any, error) {
	switch v := v.(type) {
	case nil, bool, string, float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case map[string]any:
		return decodeObject(v)
	}
	if interop.IsUndefined(v) {
		return v, nil
	}
	return nil, fmt.Errorf("unsupported value %v (%T)", v, v)
}

func decodeObject(m map[string]any) (any, error) {
	if u := interop.GetProperty(m, config.UUIDKey); !interop.IsUndefined(u) {
		s, ok := u.(string)
		if !ok {
			return nil, fmt.Errorf("%s must be a string", config.UUIDKey)
		}
		id, err := lang.ParseUUID(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", config.UUIDKey, err)
		}
		return id, nil
	}

	if u, ok := interop.GetProperty(m, config.UndefinedKey).(bool); ok && u {
		return interop.Undefined, nil
	}

	kind := interop.GetProperty(m, config.BoxedKey)
	if interop.IsUndefined(kind) {
		return nil, fmt.Errorf("object needs one of %s, %s or %s", config.UUIDKey, config.BoxedKey, config.UndefinedKey)
	}
	inner, err := DecodeValue(interop.GetProperty(m, config.ValueKey))
	if err != nil {
		return nil, err
	}

	switch kind {
	case config.BoxedDouble:
		if f, ok := inner.(float64); ok {
			return lang.Double(f), nil
		}
	case config.BoxedBoolean:
		if b, ok := inner.(bool); ok {
			return lang.Boolean(b), nil
		}
	case config.BoxedString:
		if s, ok := inner.(string); ok {
			return lang.String(s), nil
		}
	default:
		return nil, fmt.Errorf("unknown boxed type %v", kind)
	}
	return nil, fmt.Errorf("boxed %v needs a matching %s, got %T", kind, config.ValueKey, inner)
}

// FindConfig searches for a default case file starting from dir and walking
// up to parent directories. It returns "" and a nil error when none exists.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		for _, name := range config.CaseFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// IsCaseFile reports whether path has a recognized case file extension.
func IsCaseFile(path string) bool {
	return slices.Contains(config.CaseFileExtensions, strings.ToLower(filepath.Ext(path)))
}

// setDefaults names unnamed cases after their position.
func (f *File) setDefaults() {
	for i := range f.Cases {
		if f.Cases[i].Name == "" {
			f.Cases[i].Name = fmt.Sprintf("#%d", i+1)
		}
	}
}

// validate checks methods, expectations and name uniqueness.
func (f *File) validate() error {
	seen := make(map[string]int)
	for i, c := range f.Cases {
		if prev, ok := seen[c.Name]; ok {
			return fmt.Errorf("%s: cases[%d]: name %q already used by cases[%d]", f.Path, i, c.Name, prev)
		}
		seen[c.Name] = i

		if !slices.Contains(config.MethodNames, c.Method) {
			return fmt.Errorf("%s: cases[%d] (%s): unknown method %q", f.Path, i, c.Name, c.Method)
		}
		if err := validateExpect(c.Method, c.Expect); err != nil {
			return fmt.Errorf("%s: cases[%d] (%s): %w", f.Path, i, c.Name, err)
		}
	}
	return nil
}

func validateExpect(method string, expect any) error {
	if interop.IsUndefined(expect) {
		return nil
	}
	switch method {
	case config.CompareToMethod:
		switch e := expect.(type) {
		case float64:
			return nil
		case string:
			if e == config.ExpectNegative || e == config.ExpectZero || e == config.ExpectPositive {
				return nil
			}
		}
		return fmt.Errorf("expect must be %s, %s, %s or a number",
			config.ExpectNegative, config.ExpectZero, config.ExpectPositive)
	case config.EqualsMethod:
		if _, ok := expect.(bool); !ok {
			return fmt.Errorf("expect must be a boolean")
		}
	case config.HashCodeMethod:
		if _, ok := expect.(float64); !ok {
			return fmt.Errorf("expect must be a number")
		}
	case config.ToStringMethod:
		if _, ok := expect.(string); !ok {
			return fmt.Errorf("expect must be a string")
		}
	}
	return nil
}
