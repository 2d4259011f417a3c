package cases

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/funvibe/devirt/pkg/interop"
	"github.com/funvibe/devirt/pkg/lang"
)

const scenarioYAML = `
cases:
  - name: numeric
    method: compareTo
    receiver: 3
    argument: 5
    expect: negative
  - name: textual
    method: compareTo
    receiver: b
    argument: a
    expect: positive
  - name: boolean
    method: compareTo
    receiver: false
    argument: true
    expect: negative
  - name: uuid self
    method: compareTo
    receiver: {uuid: 6ba7b810-9dad-11d1-80b4-00c04fd430c8}
    argument: {uuid: 6ba7b810-9dad-11d1-80b4-00c04fd430c8}
    expect: zero
  - name: exact difference
    method: compareTo
    receiver: A
    argument: a
    expect: -32
  - name: nan equals nan
    method: equals
    receiver: .nan
    argument: .nan
    expect: true
  - name: hash
    method: hashCode
    receiver: hello
    expect: 99162322
  - name: render
    method: toString
    receiver: 1
    expect: "1.0"
`

func TestRunScenarios(t *testing.T) {
	f, err := ParseConfig([]byte(scenarioYAML), "scenarios.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	results, err := Run(context.Background(), f.Cases, 3)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != len(f.Cases) {
		t.Fatalf("got %d results for %d cases", len(results), len(f.Cases))
	}
	for i, r := range results {
		if r.Case.Name != f.Cases[i].Name {
			t.Errorf("results[%d] is %q, want %q", i, r.Case.Name, f.Cases[i].Name)
		}
		if !r.Passed() {
			t.Errorf("%s failed: %v", r.Case.Name, r.Err)
		}
	}
}

func TestRunReportsFailures(t *testing.T) {
	cs := []Case{
		{Name: "wrong sign", Method: "compareTo", Receiver: 1.0, Argument: 2.0, Expect: "positive"},
		{Name: "wrong hash", Method: "hashCode", Receiver: true, Argument: interop.Undefined, Expect: 1.0},
		{Name: "wrong string", Method: "toString", Receiver: lang.Boolean(true), Argument: interop.Undefined, Expect: "false"},
		{Name: "nil receiver", Method: "compareTo", Receiver: nil, Argument: 1.0, Expect: interop.Undefined},
		{Name: "unknown", Method: "length", Receiver: "x", Expect: interop.Undefined},
		{Name: "report only", Method: "hashCode", Receiver: 1.0, Expect: interop.Undefined},
	}
	results, err := Run(context.Background(), cs, 0)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	wantErr := []string{
		"got negative (-1), want positive",
		"got 1231, want 1",
		`got "true", want "false"`,
		"panic:",
		`unknown method "length"`,
		"",
	}
	for i, r := range results {
		if wantErr[i] == "" {
			if !r.Passed() {
				t.Errorf("%s: unexpected error %v", r.Case.Name, r.Err)
			}
			continue
		}
		if r.Passed() || !strings.Contains(r.Err.Error(), wantErr[i]) {
			t.Errorf("%s: error = %v, want it to contain %q", r.Case.Name, r.Err, wantErr[i])
		}
	}
	if results[5].Value != lang.HashDouble(1) {
		t.Errorf("report only value = %v", results[5].Value)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cs := []Case{{Name: "a", Method: "hashCode", Receiver: 1.0, Expect: interop.Undefined}}
	_, err := Run(ctx, cs, 1)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestInvoke(t *testing.T) {
	v, err := Invoke("equals", "a", "a")
	if err != nil || v != true {
		t.Errorf("Invoke(equals) = %v, %v", v, err)
	}
	if _, err := Invoke("nope", 1.0, 1.0); err == nil {
		t.Error("Invoke accepted an unknown method")
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, "null"},
		{interop.Undefined, "undefined"},
		{"s", `"s"`},
		{2.0, "2.0"},
		{true, "true"},
		{lang.String("boxed"), "boxed"},
	}
	for _, tt := range tests {
		if got := Format(tt.in); got != tt.want {
			t.Errorf("Format(%#v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
