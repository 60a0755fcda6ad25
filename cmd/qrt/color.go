package main

import (
	"os"

	"github.com/mattn/go-isatty"
)

// colorEnabled gates ANSI warning/error coloring on stdout being a real
// terminal, matching the teacher's own isatty idiom (internal/evaluator/
// builtins_term.go) rather than an unconditional color.NoColor toggle.
func colorEnabled() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

const (
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiReset  = "\x1b[0m"
)

func colorize(code, s string) string {
	if !colorEnabled() {
		return s
	}
	return code + s + ansiReset
}
