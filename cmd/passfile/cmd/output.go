package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/passfile/passfile-go/internal/status"
)

var (
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed)
	cyan  = color.New(color.FgCyan)
	bold  = color.New(color.Bold)
)

func init() {
	if os.Getenv("NO_COLOR") != "" || !isTerminal(os.Stdout) {
		color.NoColor = true
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// successf prints a status line prefixed with a checkmark.
func successf(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, green.Sprint("✓")+" "+format+"\n", a...)
}

// infof prints an informational status line.
func infof(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, cyan.Sprint("→")+" "+format+"\n", a...)
}

// errorf prints an error status line in the "Ошибка: ..." form.
func errorf(w io.Writer, msg string) {
	fmt.Fprintln(w, red.Sprint(status.ErrorPrefix+msg))
}
