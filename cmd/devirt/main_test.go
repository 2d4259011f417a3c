package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/funvibe/devirt/internal/config"
	"github.com/funvibe/devirt/pkg/shape"
	"github.com/google/go-cmp/cmp"
)

func TestParseRunArgs(t *testing.T) {
	got, err := parseRunArgs([]string{"-j", "2", "-v", "cases.yaml", "-watch"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := runOptions{path: "cases.yaml", workers: 2, verbose: true, watch: true}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(runOptions{})); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}

	got, err = parseRunArgs(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.workers != config.DefaultWorkers || got.path != "" {
		t.Errorf("defaults = %+v", got)
	}
}

func TestParseRunArgs_Errors(t *testing.T) {
	for _, args := range [][]string{
		{"-j"},
		{"-j", "0"},
		{"-j", "x"},
		{"-x"},
		{"a.yaml", "b.yaml"},
	} {
		if _, err := parseRunArgs(args); err == nil {
			t.Errorf("parseRunArgs(%q) accepted bad arguments", args)
		}
	}
}

func TestClassifyLiteral(t *testing.T) {
	tests := []struct {
		lit  string
		want shape.Shape
	}{
		{"3", shape.Numeric},
		{"-0.5", shape.Numeric},
		{".nan", shape.Numeric},
		{"true", shape.Boolean},
		{"hello", shape.Textual},
		{`"3"`, shape.Textual},
		{"null", shape.Object},
		{"{boxed: double, value: 1}", shape.Object},
		{"{uuid: 00000000-0000-0000-0000-000000000000}", shape.Object},
	}
	for _, tt := range tests {
		got, err := classifyLiteral(tt.lit)
		if err != nil {
			t.Errorf("classifyLiteral(%q): %v", tt.lit, err)
			continue
		}
		if got != tt.want {
			t.Errorf("classifyLiteral(%q) = %s, want %s", tt.lit, got, tt.want)
		}
	}
	if _, err := classifyLiteral("[1, 2]"); err == nil {
		t.Error("classifyLiteral accepted a sequence")
	}
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devirt.yaml")
	doc := `
cases:
  - name: less
    method: compareTo
    receiver: 1
    argument: 2
    expect: negative
  - name: wrong
    method: equals
    receiver: a
    argument: b
    expect: true
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	p := &printer{w: &buf}
	passed, err := runFile(context.Background(), p, runOptions{path: path, workers: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if passed {
		t.Error("runFile reported success with a failing case")
	}

	want := "PASS less = -1\nFAIL wrong: got false, want true\nFAIL 1 of 2 cases failed\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRunFile_Errors(t *testing.T) {
	p := &printer{w: &bytes.Buffer{}}
	_, err := runFile(context.Background(), p, runOptions{path: filepath.Join(t.TempDir(), "none.yaml"), workers: 1})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want not-exist", err)
	}
}

func TestPrinterColor(t *testing.T) {
	var buf bytes.Buffer
	p := &printer{w: &buf, color: true}
	p.summary(3, 0)
	if !strings.Contains(buf.String(), ansiGreen) || !strings.Contains(buf.String(), ansiReset) {
		t.Errorf("summary not coloured: %q", buf.String())
	}
}

func TestColorDisabledByEnv(t *testing.T) {
	t.Setenv(config.NoColorEnv, "")
	if colorEnabled(os.Stdout) {
		t.Error("colour enabled with NO_COLOR set")
	}
}
