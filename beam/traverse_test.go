package beam_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/beamgrid/beam"
	"github.com/katalvlaran/beamgrid/builder"
	"github.com/katalvlaran/beamgrid/grid"
)

func TestTraverse_Sample(t *testing.T) {
	g := mustParse(t, sampleContraption)

	res, err := beam.Traverse(g, beam.DefaultEntry())
	require.NoError(t, err)
	assert.Equal(t, 46, res.Count())
	assert.Equal(t, beam.DefaultEntry(), res.Entry)
	assert.Equal(t, strings.TrimPrefix(sampleEnergized, "\n"), render(g, res.Coverage))
	assert.Equal(t, 51, res.States)
}

func TestCoverageFrom_Deterministic(t *testing.T) {
	g := mustParse(t, sampleContraption)
	first, err := beam.CoverageFrom(g, beam.DefaultEntry())
	require.NoError(t, err)
	second, err := beam.CoverageFrom(g, beam.DefaultEntry())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 46, first)
}

func TestCoverageFrom_OtherEntries(t *testing.T) {
	g := mustParse(t, sampleContraption)
	cases := []struct {
		entry beam.State
		want  int
	}{
		{beam.At(0, 3, beam.South), 51},
		{beam.At(9, 3, beam.North), 47},
		{beam.At(0, 9, beam.West), 5},
	}
	for _, tc := range cases {
		got, err := beam.CoverageFrom(g, tc.entry)
		require.NoError(t, err, tc.entry.String())
		assert.Equal(t, tc.want, got, tc.entry.String())
	}
}

// TestTraverse_ClosedMirrorLoop: a ring built from mirrors only must still terminate.
func TestTraverse_ClosedMirrorLoop(t *testing.T) {
	g, err := builder.Loop(2)
	require.NoError(t, err)

	res, err := beam.Traverse(g, beam.At(0, 0, beam.North))
	require.NoError(t, err)
	assert.Equal(t, 4, res.Count())
	assert.Equal(t, 4, res.States)
}

func TestTraverse_LargeLoop(t *testing.T) {
	for _, n := range []int{3, 5, 64} {
		g, err := builder.Loop(n)
		require.NoError(t, err)
		got, err := beam.CoverageFrom(g, beam.At(0, 0, beam.North))
		require.NoError(t, err)
		assert.Equal(t, 4*n-4, got, "n=%d", n)
	}
}

// TestTraverse_SplitterCycle: two facing splitters feed each other forever.
func TestTraverse_SplitterCycle(t *testing.T) {
	g := mustParse(t, `
.|.-
....
.-.|
`)
	res, err := beam.Traverse(g, beam.DefaultEntry())
	require.NoError(t, err)
	assert.Positive(t, res.Count())
	assert.LessOrEqual(t, res.States, 4*g.Size())
}

func TestTraverse_Corridor(t *testing.T) {
	g, err := builder.Corridor(5, grid.Dash)
	require.NoError(t, err)
	got, err := beam.CoverageFrom(g, beam.DefaultEntry())
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	got, err = beam.CoverageFrom(g, beam.At(0, 4, beam.West))
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	// Hit across its axis, a lone splitter sends both halves off the grid.
	g, err = builder.Corridor(3, grid.Pipe)
	require.NoError(t, err)
	got, err = beam.CoverageFrom(g, beam.DefaultEntry())
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestTraverse_Errors(t *testing.T) {
	g := mustParse(t, "...")

	_, err := beam.Traverse(nil, beam.DefaultEntry())
	assert.ErrorIs(t, err, beam.ErrGridNil)

	_, err = beam.Traverse(g, beam.At(1, 0, beam.East))
	assert.ErrorIs(t, err, beam.ErrEntryOutOfBounds)

	_, err = beam.Traverse(g, beam.At(0, -1, beam.East))
	assert.ErrorIs(t, err, beam.ErrEntryOutOfBounds)

	_, err = beam.Traverse(g, beam.At(0, 0, beam.Direction(4)))
	assert.ErrorIs(t, err, beam.ErrInvalidDirection)
}

func TestTraverse_InvalidCell(t *testing.T) {
	bad, err := grid.New([]string{
		"..\\",
		"..#",
	})
	require.NoError(t, err)

	res, err := beam.Traverse(bad, beam.DefaultEntry())
	assert.Nil(t, res)
	var ice *beam.InvalidCellError
	require.ErrorAs(t, err, &ice)
	assert.Equal(t, beam.Position{Row: 1, Col: 2}, ice.Pos)
	assert.Equal(t, beam.South, ice.Dir)
	assert.Equal(t, byte('#'), ice.Cell)
	assert.ErrorIs(t, err, beam.ErrInvalidCell)

	// Grid untouched by the failed run.
	assert.Equal(t, "..\\\n..#", bad.String())

	// A beam that never reaches the bad cell is fine.
	got, err := beam.CoverageFrom(bad, beam.At(1, 0, beam.West))
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestTraverse_OnVisit(t *testing.T) {
	g := mustParse(t, "...")
	var seen []beam.State
	_, err := beam.Traverse(g, beam.DefaultEntry(), beam.WithOnVisit(func(s beam.State) error {
		seen = append(seen, s)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []beam.State{
		beam.At(0, 0, beam.East),
		beam.At(0, 1, beam.East),
		beam.At(0, 2, beam.East),
	}, seen)
}

func TestTraverse_OnVisitAborts(t *testing.T) {
	g := mustParse(t, sampleContraption)
	stop := errors.New("stop")
	calls := 0
	res, err := beam.Traverse(g, beam.DefaultEntry(), beam.WithOnVisit(func(beam.State) error {
		calls++
		if calls == 3 {
			return stop
		}
		return nil
	}))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 3, calls)
}

func TestTraverse_Canceled(t *testing.T) {
	g := mustParse(t, sampleContraption)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := beam.Traverse(g, beam.DefaultEntry(), beam.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestTraverse_RandomGridsTerminate runs seeded random layouts and checks
// the state-space bound.
func TestTraverse_RandomGridsTerminate(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g, err := builder.Random(30, 40, builder.WithSeed(seed), builder.WithDensity(0.35))
		require.NoError(t, err)
		res, err := beam.Traverse(g, beam.DefaultEntry())
		require.NoError(t, err)
		assert.LessOrEqual(t, res.States, 4*g.Size())
		assert.LessOrEqual(t, res.Count(), g.Size())
		assert.GreaterOrEqual(t, res.Count(), 1)
	}
}
