package main

import (
	"fmt"
	"io"
	"os"

	"github.com/funvibe/devirt/internal/config"
	"github.com/mattn/go-isatty"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiDim   = "\x1b[2m"
)

// colorEnabled reports whether f should receive ANSI colour codes.
func colorEnabled(f *os.File) bool {
	// NO_COLOR convention: https://no-color.org/
	if _, ok := os.LookupEnv(config.NoColorEnv); ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}

// printer writes case results, coloured when enabled.
type printer struct {
	w     io.Writer
	color bool
}

func newPrinter(f *os.File) *printer {
	return &printer{w: f, color: colorEnabled(f)}
}

func (p *printer) paint(code, s string) string {
	if !p.color {
		return s
	}
	return code + s + ansiReset
}

func (p *printer) pass(name, value string) {
	fmt.Fprintf(p.w, "%s %s %s\n", p.paint(ansiGreen, "PASS"), name, p.paint(ansiDim, "= "+value))
}

func (p *printer) fail(name string, err error) {
	fmt.Fprintf(p.w, "%s %s: %v\n", p.paint(ansiRed, "FAIL"), name, err)
}

func (p *printer) summary(total, failed int) {
	if failed == 0 {
		fmt.Fprintf(p.w, "%s %d cases\n", p.paint(ansiGreen, "ok"), total)
		return
	}
	fmt.Fprintf(p.w, "%s %d of %d cases failed\n", p.paint(ansiRed, "FAIL"), failed, total)
}
