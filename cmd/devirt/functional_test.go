package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestFunctional runs every case file in testdata that has a .want file
// next to it and compares the printed report.
func TestFunctional(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	found := 0
	for _, path := range paths {
		wantFile := strings.TrimSuffix(path, filepath.Ext(path)) + ".want"
		want, err := os.ReadFile(wantFile)
		if err != nil {
			continue
		}
		found++

		t.Run(filepath.Base(path), func(t *testing.T) {
			var buf bytes.Buffer
			passed, err := runFile(context.Background(), &printer{w: &buf}, runOptions{path: path, workers: 2})
			if err != nil {
				t.Fatalf("runFile: %v", err)
			}
			if diff := cmp.Diff(string(want), buf.String()); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
			if wantPassed := strings.HasPrefix(lastLine(string(want)), "ok "); passed != wantPassed {
				t.Errorf("passed = %v, want %v", passed, wantPassed)
			}
		})
	}
	if found == 0 {
		t.Fatal("no case files with .want files in testdata")
	}
}

func lastLine(s string) string {
	s = strings.TrimRight(s, "\n")
	return s[strings.LastIndex(s, "\n")+1:]
}
