// Package ui provides theme and color support for the CLI output.
// It defines lipgloss styles for result signs and errors so presentation
// code never hard-codes colors.
//
// This package is designed to be a shared dependency for packages that need
// color output, reducing coupling between business logic and presentation.
package ui
