package core

import (
	"context"
	"fmt"
	"io/fs"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

// FixtureSource serves records decoded from a YAML document. The document is
// a sequence of records, or a mapping with a "records" key holding one.
// It is decoded once; every Load returns a fresh copy of the slice.
type FixtureSource[T any] struct {
	fsys fs.FS
	name string

	once    sync.Once
	records []T
	err     error
}

// NewFixtureSource returns a source reading name from fsys.
func NewFixtureSource[T any](fsys fs.FS, name string) *FixtureSource[T] {
	return &FixtureSource[T]{fsys: fsys, name: name}
}

// Load implements Source.
func (s *FixtureSource[T]) Load(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.once.Do(func() {
		s.records, s.err = decodeFixture[T](s.fsys, s.name)
	})
	if s.err != nil {
		return nil, s.err
	}
	return slices.Clone(s.records), nil
}

func decodeFixture[T any](fsys fs.FS, name string) ([]T, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", name, err)
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", name, err)
	}
	if len(node.Content) == 0 {
		return []T{}, nil
	}

	doc := node.Content[0]
	if doc.Kind == yaml.MappingNode {
		var wrapped struct {
			Records []T `yaml:"records"`
		}
		if err := doc.Decode(&wrapped); err != nil {
			return nil, fmt.Errorf("decode fixture %s: %w", name, err)
		}
		if wrapped.Records == nil {
			wrapped.Records = []T{}
		}
		return wrapped.Records, nil
	}

	records := []T{}
	if err := doc.Decode(&records); err != nil {
		return nil, fmt.Errorf("decode fixture %s: %w", name, err)
	}
	return records, nil
}

// StaticSource serves a fixed slice. Useful for tests and embedded data.
func StaticSource[T any](records []T) Source[T] {
	return SourceFunc[T](func(ctx context.Context) ([]T, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return slices.Clone(records), nil
	})
}
