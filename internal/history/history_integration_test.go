package history

import (
	"context"
	"os"
	"testing"

	"github.com/jonathan/resume-optimizer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	store, err := Connect(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(store.Close)
	require.NoError(t, store.EnsureSchema(ctx))
	return store
}

func testJob() types.JobRequirement {
	return types.JobRequirement{
		Title:        "后端开发工程师",
		Company:      "某科技公司",
		Description:  "负责后端服务开发",
		Requirements: []string{"三年以上Python经验"},
		KeySkills:    []string{"Python"},
	}
}

func TestIntegration_SaveGetDelete(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	id, err := store.Save(ctx, TypeURL, testJob(), "/tmp/out.txt", 70.5, []string{"suggestion one"})
	require.NoError(t, err)

	record, err := store.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "后端开发工程师", record.JobTitle)
	assert.Equal(t, TypeURL, record.GenerationType)
	assert.Equal(t, 70.5, record.MatchScore)
	assert.Equal(t, []string{"suggestion one"}, record.Suggestions)

	deleted, err := store.Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, deleted)

	record, err = store.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestIntegration_ListAndSearch(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	id1, err := store.Save(ctx, TypeDescription, testJob(), "", 55.0, nil)
	require.NoError(t, err)
	defer func() { _, _ = store.Delete(ctx, id1) }()

	records, err := store.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, records)

	matched, err := store.Search(ctx, "后端", 10)
	require.NoError(t, err)
	assert.NotEmpty(t, matched)
}

func TestIntegration_Stats(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	id, err := store.Save(ctx, TypeTemplate, testJob(), "", 80.0, nil)
	require.NoError(t, err)
	defer func() { _, _ = store.Delete(ctx, id) }()

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.TotalGenerations, 1)
	assert.GreaterOrEqual(t, stats.ByType[string(TypeTemplate)], 1)
	assert.Greater(t, stats.AverageScore, 0.0)
	assert.GreaterOrEqual(t, stats.RecentWeek, 1)
}
