// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cache

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/crossref-mcp/pkg/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleWork() *types.Work {
	return &types.Work{
		DOI:            "10.1234/example",
		Title:          []string{"A Sample Paper"},
		Author:         []types.Author{{Family: "Doe", Given: "Jane"}},
		ContainerTitle: []string{"Journal of Samples"},
		Volume:         "1",
		Issue:          "2",
		Page:           "3-4",
		PublishedPrint: &types.DateParts{DateParts: [][]int{{2020}}},
	}
}

func TestWorkByDOIRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, ok, err := s.WorkByDOI(ctx, "10.1234/example")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.PutWork(ctx, sampleWork()))

	got, ok, err := s.WorkByDOI(ctx, "10.1234/example")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, sampleWork(), got)
}

func TestWorkByQueryRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	w := sampleWork()
	require.NoError(t, s.PutWork(ctx, w))
	require.NoError(t, s.PutQuery(ctx, "a sample paper doe 2020", w.DOI))

	got, ok, err := s.WorkByQuery(ctx, "a sample paper doe 2020")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, w.DOI, got.DOI)

	_, ok, err = s.WorkByQuery(ctx, "some other query")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPutWorkIgnoresMissingDOI(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.PutWork(ctx, nil))
	require.NoError(t, s.PutWork(ctx, &types.Work{Title: []string{"no doi"}}))

	var count int
	require.NoError(t, s.db.QueryRow(`SELECT count(*) FROM works`).Scan(&count))
	assert.Zero(t, count)
}

func TestPutWorkReplacesExisting(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	w := sampleWork()
	require.NoError(t, s.PutWork(ctx, w))

	w.Title = []string{"Revised Title"}
	require.NoError(t, s.PutWork(ctx, w))

	got, ok, err := s.WorkByDOI(ctx, w.DOI)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Revised Title", got.FirstTitle())
}
