// Package ui provides terminal output helpers for pacctl.
package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Info    = color.New(color.FgCyan)
	Header  = color.New(color.FgMagenta, color.Bold)
	Muted   = color.New(color.FgHiBlack)

	PackageName    = color.New(color.FgWhite, color.Bold)
	PackageVersion = color.New(color.FgGreen)
	PackageRepo    = color.New(color.FgCyan)
	UpgradeVersion = color.New(color.FgYellow)
	Installed      = color.New(color.FgGreen)
)

// UseUnicode controls whether unicode symbols are used.
var UseUnicode = true

// Symbols for status indicators.
var (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
	SymbolWarning = "!"
	SymbolInfo    = "→"
	SymbolArrow   = "→"
)

// Init applies the output configuration.
func Init(useColors, useUnicode bool) {
	UseUnicode = useUnicode

	if !useColors || os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}

	if !useUnicode {
		SymbolSuccess = "[OK]"
		SymbolError = "[ERROR]"
		SymbolWarning = "[WARN]"
		SymbolInfo = "->"
		SymbolArrow = "->"
	}
}

// SuccessMsg prints a success message.
func SuccessMsg(format string, args ...interface{}) {
	Success.Printf(SymbolSuccess+" "+format+"\n", args...)
}

// ErrorMsg prints an error message.
func ErrorMsg(format string, args ...interface{}) {
	Error.Printf(SymbolError+" "+format+"\n", args...)
}

// WarningMsg prints a warning message.
func WarningMsg(format string, args ...interface{}) {
	Warning.Printf(SymbolWarning+" "+format+"\n", args...)
}

// InfoMsg prints an info message.
func InfoMsg(format string, args ...interface{}) {
	Info.Printf(SymbolInfo+" "+format+"\n", args...)
}

// HeaderMsg prints a section header.
func HeaderMsg(format string, args ...interface{}) {
	Header.Printf(format+"\n", args...)
}

// MutedMsg prints de-emphasized text.
func MutedMsg(format string, args ...interface{}) {
	Muted.Printf(format+"\n", args...)
}

// Bold returns the string in bold.
func Bold(s string) string {
	return color.New(color.Bold).Sprint(s)
}

// Cyan returns the string in cyan.
func Cyan(s string) string {
	return color.New(color.FgCyan).Sprint(s)
}

// Plain prints unstyled text.
func Plain(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}
