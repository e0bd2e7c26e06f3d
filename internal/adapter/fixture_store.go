package adapter

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"fixtkit.dev/pkg/fixtkit/internal/fixtures"
	m "fixtkit.dev/pkg/fixtkit/internal/model"
)

// FixtureFileVersion is the document version written by YAMLFixtureStore.
const FixtureFileVersion = 1

// ErrUnsupportedVersion is returned when a fixture file carries an unknown version.
var ErrUnsupportedVersion = errors.New("unsupported fixture file version")

// FixtureStore persists fixture bags.
type FixtureStore interface {
	Save(path m.Path, list []m.Fixture) error
	Load(path m.Path) ([]m.Fixture, error)
}

type fixtureDocument struct {
	Version  int               `yaml:"version"`
	Fixtures map[string]string `yaml:"fixtures"`
}

// YAMLFixtureStore stores fixtures as a YAML document through an FSAdapter.
type YAMLFixtureStore struct {
	fs FSAdapter
}

// NewYAMLFixtureStore returns a store backed by fs.
func NewYAMLFixtureStore(fs FSAdapter) *YAMLFixtureStore {
	return &YAMLFixtureStore{fs: fs}
}

// Save writes list to path. Later entries win when names repeat.
func (s *YAMLFixtureStore) Save(path m.Path, list []m.Fixture) error {
	doc := fixtureDocument{
		Version:  FixtureFileVersion,
		Fixtures: make(map[string]string, len(list)),
	}

	for _, fixture := range list {
		doc.Fixtures[fixture.Name] = fixture.Value
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("encode fixtures: %w", err)
	}

	if err := s.fs.WriteFile(path, data, 0o644); err != nil {
		return err
	}

	slog.Debug("saved fixtures", "path", path, "count", len(doc.Fixtures))

	return nil
}

// Load reads the fixtures stored at path, sorted by name.
func (s *YAMLFixtureStore) Load(path m.Path) ([]m.Fixture, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc fixtureDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode fixtures %s: %w", path, err)
	}

	if doc.Version != FixtureFileVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.Version)
	}

	names := lo.Keys(doc.Fixtures)
	sort.Strings(names)

	list := lo.Map(names, func(name string, _ int) m.Fixture {
		return m.Fixture{Name: name, Value: doc.Fixtures[name], Kind: fixtures.KindOf(name)}
	})

	slog.Debug("loaded fixtures", "path", path, "count", len(list))

	return list, nil
}
