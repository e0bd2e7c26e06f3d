// Package domain holds fixtkit's date, hash, constants and fixture logic and
// the workflow that drives them from the CLI.
package domain

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"fixtkit.dev/pkg/fixtkit/internal/adapter"
	"fixtkit.dev/pkg/fixtkit/internal/controller"
	"fixtkit.dev/pkg/fixtkit/internal/fixtures"
	m "fixtkit.dev/pkg/fixtkit/internal/model"
)

// DatesArgs contains the values to format. No values means today.
type DatesArgs struct {
	Values []string
}

// HashArgs contains the inputs to hash.
type HashArgs struct {
	Inputs    []string
	Mode      m.HashMode
	FromFiles bool // treat each input as a file path and hash its contents
	Threads   int
}

// ExportArgs names the file the fixture bag is written to.
type ExportArgs struct {
	Path m.Path
}

// CheckArgs names the fixture file compared against the built-in bag.
type CheckArgs struct {
	Path m.Path
}

// Workflow defines the operations exposed by the CLI.
type Workflow interface {
	Dates(ctx context.Context, args DatesArgs) error
	Hash(ctx context.Context, args HashArgs) error
	ShowConstants(ctx context.Context) error
	ShowFixtures(ctx context.Context) error
	ExportFixtures(ctx context.Context, args ExportArgs) error
	CheckFixtures(ctx context.Context, args CheckArgs) error
}

type workflow struct {
	adapter.FSAdapter
	adapter.FixtureStore
	controller.UI
	Clock
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.FSAdapter,
	fixtureStore adapter.FixtureStore,
	ui controller.UI,
	clock Clock,
) Workflow {
	return &workflow{
		FSAdapter:    fsAdapter,
		FixtureStore: fixtureStore,
		UI:           ui,
		Clock:        clock,
	}
}

func (w *workflow) Dates(ctx context.Context, args DatesArgs) error {
	if len(args.Values) == 0 {
		today, err := Today(w.Clock)
		if err != nil {
			return err
		}

		return w.DisplayDates(ctx, []m.DateResult{{Date: today}})
	}

	results := make([]m.DateResult, 0, len(args.Values))

	for _, value := range args.Values {
		date, err := FormatDateString(value)
		if err != nil {
			slog.Debug("date rejected", "value", value, "error", err)

			if displayErr := w.DisplayDates(ctx, results); displayErr != nil {
				return displayErr
			}

			return err
		}

		results = append(results, m.DateResult{Input: value, Date: date})
	}

	return w.DisplayDates(ctx, results)
}

func (w *workflow) Hash(ctx context.Context, args HashArgs) error {
	hasher, err := NewHasher(args.Mode)
	if err != nil {
		return err
	}

	threads := args.Threads
	if threads < 1 {
		threads = 1
	}

	results := make([]m.HashResult, len(args.Inputs))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for i, input := range args.Inputs {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			data := []byte(input)

			if args.FromFiles {
				content, err := w.ReadFile(m.Path(input))
				if err != nil {
					return fmt.Errorf("hash %s: %w", input, err)
				}

				data = content
			}

			results[i] = m.HashResult{Input: input, Mode: hasher.Mode(), Digest: hasher.Hash(data)}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		slog.Error("hashing failed", "error", err)
		return err
	}

	slog.Debug("hashed inputs", "count", len(results), "mode", hasher.Mode(), "threads", threads)

	return w.DisplayHashes(ctx, results)
}

func (w *workflow) ShowConstants(ctx context.Context) error {
	constants := Constants()

	if err := ValidateConstants(constants); err != nil {
		return err
	}

	return w.DisplayConstants(ctx, constants)
}

func (w *workflow) ShowFixtures(ctx context.Context) error {
	return w.DisplayFixtures(ctx, fixtures.List())
}

func (w *workflow) ExportFixtures(ctx context.Context, args ExportArgs) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	list := fixtures.List()

	if err := w.Save(args.Path, list); err != nil {
		slog.Error("failed to export fixtures", "path", args.Path, "error", err)
		return fmt.Errorf("export fixtures: %w", err)
	}

	slog.Info("exported fixtures", "path", args.Path, "count", len(list))

	return w.DisplayExport(ctx, args.Path, len(list))
}

func (w *workflow) CheckFixtures(ctx context.Context, args CheckArgs) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	loaded, err := w.Load(args.Path)
	if err != nil {
		return fmt.Errorf("check fixtures: %w", err)
	}

	diff, err := DiffFixtures(fixtures.List(), loaded, string(args.Path))
	if err != nil {
		return fmt.Errorf("check fixtures: %w", err)
	}

	if err := w.DisplayCheck(ctx, args.Path, diff); err != nil {
		return err
	}

	if diff != "" {
		slog.Warn("fixture drift detected", "path", args.Path)
		return fmt.Errorf("%w: %s", ErrFixtureDrift, args.Path)
	}

	return nil
}

// DiffFixtures returns a unified diff from want to got, one "NAME: "value""
// line per fixture. Bags holding the same name to value pairs produce an
// empty string.
func DiffFixtures(want, got []m.Fixture, gotName string) (string, error) {
	if maps.Equal(fixtureValues(want), fixtureValues(got)) {
		return "", nil
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(fixtureLines(want)),
		B:        difflib.SplitLines(fixtureLines(got)),
		FromFile: "built-in",
		ToFile:   gotName,
		Context:  1,
	})
}

func fixtureValues(list []m.Fixture) map[string]string {
	return lo.SliceToMap(list, func(fixture m.Fixture) (string, string) {
		return fixture.Name, fixture.Value
	})
}

// fixtureLines quotes values so a multi-line value stays on its own line.
func fixtureLines(list []m.Fixture) string {
	var b strings.Builder

	for _, fixture := range list {
		fmt.Fprintf(&b, "%s: %q\n", fixture.Name, fixture.Value)
	}

	return b.String()
}
