package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// confirmFunc asks the operator to approve a destructive action. It returns
// true only on explicit approval.
type confirmFunc func(prompt string) bool

// stdinConfirmer builds the interactive confirmation used by destructive
// commands. Without a terminal on stdin it refuses instead of blocking, so
// scripted invocations must pass --yes explicitly.
func stdinConfirmer(in io.Reader, out io.Writer) confirmFunc {
	return func(prompt string) bool {
		if file, ok := in.(*os.File); ok && !isTerminal(file.Fd()) {
			fmt.Fprintln(out, "Refusing to prompt without a terminal; pass --yes to confirm")
			return false
		}
		fmt.Fprint(out, prompt)
		scanner := bufio.NewScanner(in)
		if !scanner.Scan() {
			return false
		}
		return strings.EqualFold(strings.TrimSpace(scanner.Text()), "yes")
	}
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
