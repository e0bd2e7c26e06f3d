// Package controller provides output adapters for displaying fixtkit results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "fixtkit.dev/pkg/fixtkit/internal/model"
)

// UI defines how workflow results reach the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayDates(ctx context.Context, dates []m.DateResult) error
	DisplayHashes(ctx context.Context, hashes []m.HashResult) error
	DisplayConstants(ctx context.Context, constants m.Constants) error
	DisplayFixtures(ctx context.Context, list []m.Fixture) error
	DisplayExport(ctx context.Context, path m.Path, count int) error
	DisplayCheck(ctx context.Context, path m.Path, diff string) error
}

// NewUI returns a TUI when useTTY is set and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout(), cmd.InOrStdin(), true)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
