package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	reset = "\033[0m"
	bold  = "\033[1m"
	dim   = "\033[2m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgRed    = "\033[31m"

	symCheck = "✔"
	symCross = "✖"
)

// ColorMode is the --color setting.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

var (
	mode         = ColorAuto
	disableColor bool // set by the mono theme
)

// SetColorMode switches between terminal detection and a forced setting.
func SetColorMode(m string) error {
	switch ColorMode(m) {
	case ColorAuto, ColorAlways, ColorNever:
		mode = ColorMode(m)
	case "":
		mode = ColorAuto
	default:
		return fmt.Errorf("unknown color mode %q (want auto, always or never)", m)
	}
	return nil
}

// colorOn decides per call; auto follows NO_COLOR and whether stdout is a terminal.
func colorOn() bool {
	switch {
	case disableColor || mode == ColorNever:
		return false
	case mode == ColorAlways:
		return true
	case os.Getenv("NO_COLOR") != "":
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func C(color, s string) string {
	if color == "" || !colorOn() {
		return s
	}
	return color + s + reset
}

// Dim renders secondary text such as ids and hints.
func Dim(s string) string { return C(dim, s) }

func OK(w io.Writer, msg string)   { fmt.Fprintln(w, C(fgGreen, symCheck+" "+msg)) }
func Fail(w io.Writer, msg string) { fmt.Fprintln(w, C(fgRed, symCross+" "+msg)) }
