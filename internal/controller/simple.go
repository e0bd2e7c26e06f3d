package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "fixtkit.dev/pkg/fixtkit/internal/model"
)

// SimpleUI implements UI using the cobra command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayDates prints one formatted date per line.
func (s *SimpleUI) DisplayDates(ctx context.Context, dates []m.DateResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, date := range dates {
		s.printf("%s\n", date.Date)
	}

	return nil
}

// DisplayHashes prints "digest  input" lines, like sha256sum.
func (s *SimpleUI) DisplayHashes(ctx context.Context, hashes []m.HashResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, hash := range hashes {
		s.printf("%s  %s\n", hash.Digest, hash.Input)
	}

	return nil
}

// DisplayConstants prints the constants bag as a two column table.
func (s *SimpleUI) DisplayConstants(ctx context.Context, constants m.Constants) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rows := [][]string{
		{"MAX_RETRIES", strconv.Itoa(constants.MaxRetries)},
		{"TIMEOUT_MS", strconv.Itoa(constants.TimeoutMS)},
		{"API_VERSION", constants.APIVersion},
		{"REQUEST_ID", constants.RequestID},
	}

	s.printf("%s", renderTable([]string{"Name", "Value"}, rows, nil))

	return nil
}

// DisplayFixtures prints the fixture bag as a table.
func (s *SimpleUI) DisplayFixtures(ctx context.Context, list []m.Fixture) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rows := make([][]string, 0, len(list))
	for _, fixture := range list {
		rows = append(rows, []string{fixture.Name, string(fixture.Kind), fixture.Value})
	}

	footer := []string{fmt.Sprintf("Total %d", len(list)), "", ""}
	s.printf("%s", renderTable([]string{"Name", "Kind", "Value"}, rows, footer))

	return nil
}

// DisplayExport confirms a written fixture file.
func (s *SimpleUI) DisplayExport(ctx context.Context, path m.Path, count int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("Wrote %d fixture(s) to %s\n", count, path)

	return nil
}

// DisplayCheck prints the drift diff, or a match message when diff is empty.
func (s *SimpleUI) DisplayCheck(ctx context.Context, path m.Path, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if diff == "" {
		s.printf("%s matches the built-in fixtures\n", path)
		return nil
	}

	s.printf("%s differs from the built-in fixtures:\n%s", path, diff)

	return nil
}

func renderTable(header []string, rows [][]string, footer []string) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetAutoFormatHeaders(false)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(rows)

	if footer != nil {
		table.SetFooter(footer)
	}

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
