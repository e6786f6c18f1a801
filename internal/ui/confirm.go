package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Confirm prompts the user with a yes/no question on stdin. Returns true for yes.
func Confirm(prompt string) bool {
	return ask(os.Stdin, StyleWarning.Render(prompt))
}

// ConfirmDanger is Confirm in the error color, for the vault's destructive
// owner operations (pause, emergency withdrawal, ownership transfer/renounce).
func ConfirmDanger(prompt string) bool {
	return ask(os.Stdin, StyleError.Render("⚠ "+prompt))
}

// ask answers no unless the reply is "y" or "yes" (case-insensitive). EOF or
// a read error counts as no.
func ask(in io.Reader, styledPrompt string) bool {
	fmt.Printf("%s [y/N]: ", styledPrompt)
	line, _ := bufio.NewReader(in).ReadString('\n')
	line = strings.TrimSpace(strings.ToLower(line))
	return line == "y" || line == "yes"
}
