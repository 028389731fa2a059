package jps_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jumpgrid/jps"
)

func TestStepper_ReachesSamePathAsFind(t *testing.T) {
	g := mustGrid(t,
		"......",
		".####.",
		".#....",
		".#.##.",
		"......",
	)
	start, end := at(0, 0), at(2, 3)
	want, err := jps.FindPath(g, start, end)
	require.NoError(t, err)

	st, err := jps.NewStepper(context.Background(), g, start, end)
	require.NoError(t, err)

	var snap jps.Snapshot
	for i := 0; i < 100 && !st.Done(); i++ {
		snap, err = st.Step()
		require.NoError(t, err)
		assert.Equal(t, i+1, snap.Step)
	}
	require.True(t, st.Done())
	assert.Equal(t, jps.Found, snap.State)
	assert.Equal(t, end, snap.Current)
	assert.Equal(t, want.Path, snap.Path)
	assert.Equal(t, want.Stats, snap.Stats)

	// Further steps repeat the final snapshot.
	again, err := st.Step()
	require.NoError(t, err)
	assert.Equal(t, snap, again)
}

func TestStepper_FirstStepExpandsStart(t *testing.T) {
	g := mustGrid(t, ".....", ".....", ".....", ".....", ".....")
	st, err := jps.NewStepper(context.Background(), g, at(0, 0), at(4, 4))
	require.NoError(t, err)

	snap, err := st.Step()
	require.NoError(t, err)
	assert.Equal(t, jps.Running, snap.State)
	assert.Equal(t, at(0, 0), snap.Current)
	assert.Contains(t, snap.Closed, at(0, 0))
	assert.Contains(t, snap.Open, at(4, 4))

	snap, err = st.Step()
	require.NoError(t, err)
	assert.Equal(t, jps.Found, snap.State)
	assert.Equal(t, jps.Path{at(0, 0), at(4, 4)}, snap.Path)
}

func TestStepper_Exhausted(t *testing.T) {
	g := mustGrid(t, ".#.")
	st, err := jps.NewStepper(context.Background(), g, at(0, 0), at(2, 0))
	require.NoError(t, err)

	snap, err := st.Step()
	assert.ErrorIs(t, err, jps.ErrUnreachable)
	assert.Equal(t, jps.Exhausted, snap.State)
	assert.True(t, st.Done())
	assert.True(t, snap.State.Terminal())
}

func TestStepper_InvalidEndpoint(t *testing.T) {
	g := mustGrid(t, ".#.")
	_, err := jps.NewStepper(context.Background(), g, at(1, 0), at(2, 0))
	assert.ErrorIs(t, err, jps.ErrStartInvalid)
}

func TestStepper_Cancelled(t *testing.T) {
	g := mustGrid(t, "...")
	ctx, cancel := context.WithCancel(context.Background())
	st, err := jps.NewStepper(ctx, g, at(0, 0), at(2, 0))
	require.NoError(t, err)
	cancel()
	_, err = st.Step()
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, st.Done())
}
