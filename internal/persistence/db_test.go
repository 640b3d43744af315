package persistence

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/wedgesim/internal/city"
	"github.com/talgya/wedgesim/internal/engine"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSaveAndLoadTrace(t *testing.T) {
	db := openTestDB(t)

	res := engine.Result{
		Investment: 1.2e9,
		Damage:     3.4e8,
		Trace: []engine.EpochRecord{
			{Epoch: 0, Investment: 1.2e9, Damage: 2.0e8, Vector: city.DefenseVector{D: 3, B: 1}},
			{Epoch: 1, Investment: 0, Damage: 1.4e8, Vector: city.DefenseVector{D: 3, B: 1}},
		},
	}

	id, err := db.SaveRun("baseline", 2, 0.03, false, res)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := db.LoadTrace(id)
	require.NoError(t, err)
	assert.Equal(t, res.Trace, got)
}

func TestLoadTraceUnknownRun(t *testing.T) {
	db := openTestDB(t)

	got, err := db.LoadTrace("no-such-run")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRecentRuns(t *testing.T) {
	db := openTestDB(t)

	for _, label := range []string{"a", "b", "c"} {
		_, err := db.SaveRun(label, 10, 0.03, true, engine.Result{Investment: 1, Damage: 2})
		require.NoError(t, err)
	}

	runs, err := db.RecentRuns(2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	for _, r := range runs {
		assert.Equal(t, 10, r.Horizon)
		assert.Equal(t, 0.03, r.DiscountRate)
		assert.True(t, r.EventMode)
		assert.False(t, r.Infeasible)
	}
}

func TestSaveInfeasibleRun(t *testing.T) {
	db := openTestDB(t)

	// Infeasible runs carry no trace; the summary row still lands.
	id, err := db.SaveRun("over-limit", 10, 0.03, false, engine.Result{Infeasible: true})
	require.NoError(t, err)

	runs, err := db.RecentRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, id, runs[0].ID)
	assert.True(t, runs[0].Infeasible)

	trace, err := db.LoadTrace(id)
	require.NoError(t, err)
	assert.Empty(t, trace)
}
