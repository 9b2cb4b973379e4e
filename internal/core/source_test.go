package core

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtureSource(t *testing.T) {
	fsys := fstest.MapFS{
		"list.yaml": {Data: []byte(`
- id: a1
  name: Northwind
  status: open
  balance: 1200.50
  opened: 2023-04-01
  active: true
- id: a2
  name: Contoso
  status: closed
  balance: -50
  opened: 2021-01-15
`)},
		"wrapped.yaml": {Data: []byte(`
records:
  - id: a9
    name: Litware
`)},
		"empty.yaml": {Data: []byte(``)},
		"broken.yaml": {Data: []byte("- id: [unterminated\n")},
	}
	ctx := context.Background()

	t.Run("sequence", func(t *testing.T) {
		src := NewFixtureSource[account](fsys, "list.yaml")
		recs, err := src.Load(ctx)
		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Equal(t, "Northwind", recs[0].Name)
		assert.Equal(t, 1200.50, recs[0].Balance)
		assert.Equal(t, day("2023-04-01"), recs[0].Opened.UTC())
		assert.True(t, recs[0].Active)
		assert.False(t, recs[1].Active)
	})

	t.Run("load returns a copy", func(t *testing.T) {
		src := NewFixtureSource[account](fsys, "list.yaml")
		first, err := src.Load(ctx)
		require.NoError(t, err)
		first[0].Name = "mutated"

		second, err := src.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Northwind", second[0].Name)
	})

	t.Run("records key", func(t *testing.T) {
		recs, err := NewFixtureSource[account](fsys, "wrapped.yaml").Load(ctx)
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, "a9", recs[0].ID)
	})

	t.Run("empty document", func(t *testing.T) {
		recs, err := NewFixtureSource[account](fsys, "empty.yaml").Load(ctx)
		require.NoError(t, err)
		assert.NotNil(t, recs)
		assert.Empty(t, recs)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewFixtureSource[account](fsys, "nope.yaml").Load(ctx)
		assert.ErrorContains(t, err, "read fixture nope.yaml")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := NewFixtureSource[account](fsys, "broken.yaml").Load(ctx)
		assert.ErrorContains(t, err, "broken.yaml")
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := NewFixtureSource[account](fsys, "list.yaml").Load(cctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestStaticSource(t *testing.T) {
	recs := testAccounts()
	src := StaticSource(recs)

	got, err := src.Load(context.Background())
	require.NoError(t, err)
	got[0].Name = "changed"
	assert.Equal(t, "Northwind", recs[0].Name)
}
