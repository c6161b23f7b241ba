//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//

package tt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ggeorgochess/chessengine/internal/tt"
	. "github.com/ggeorgochess/chessengine/internal/types"
)

func TestTableStoreProbeRoundTrip(t *testing.T) {
	table := tt.NewTable(1)
	h := Key(0xdeadbeefcafef00d)

	_, _, ok := table.Probe(h, 4, -1000, 1000, false)
	require.False(t, ok, "empty table should never report a cutoff")

	table.Store(h, 6, tt.BoundExact, 123, Move(42))
	value, best, ok := table.Probe(h, 4, -1000, 1000, false)
	require.True(t, ok)
	require.Equal(t, Value(123), value)
	require.Equal(t, Move(42), best)
}

func TestTableProbeRejectsShallowerStoredDepth(t *testing.T) {
	table := tt.NewTable(1)
	h := Key(1234567)
	table.Store(h, 2, tt.BoundExact, 50, Move(1))

	_, best, ok := table.Probe(h, 8, -1000, 1000, false)
	require.False(t, ok, "a shallower stored depth must not satisfy a deeper probe")
	require.Equal(t, Move(1), best, "the hash move should still surface even when the bound can't")
}

func TestTableLowerBoundOnlyCutsOffAboveBeta(t *testing.T) {
	table := tt.NewTable(1)
	h := Key(99)
	table.Store(h, 10, tt.BoundLower, 80, Move(7))

	_, _, ok := table.Probe(h, 5, -1000, 90, false)
	require.False(t, ok, "a fail-high bound of 80 should not cut off with beta=90")

	value, _, ok := table.Probe(h, 5, -1000, 70, false)
	require.True(t, ok)
	require.Equal(t, Value(80), value)
}

func TestTablePVNodeIgnoresInexactBounds(t *testing.T) {
	table := tt.NewTable(1)
	h := Key(4242)
	table.Store(h, 10, tt.BoundLower, 500, Move(3))

	_, _, ok := table.Probe(h, 5, -1000, 1000, true)
	require.False(t, ok, "PV nodes must not accept a non-exact bound as a cutoff")
}

func TestTableStoreRefinesExistingTagRatherThanDuplicating(t *testing.T) {
	table := tt.NewTable(1)
	h := Key(55)
	table.Store(h, 3, tt.BoundUpper, 10, Move(1))
	table.Store(h, 9, tt.BoundExact, 20, Move(2))

	value, best, ok := table.Probe(h, 9, -1000, 1000, false)
	require.True(t, ok)
	require.Equal(t, Value(20), value)
	require.Equal(t, Move(2), best)
}

func TestPawnTableRoundTripAndClear(t *testing.T) {
	pt := tt.NewPawnTable(1)
	h := Key(0x1111)

	_, ok := pt.Probe(h)
	require.False(t, ok)

	pt.Store(h, 37)
	v, ok := pt.Probe(h)
	require.True(t, ok)
	require.Equal(t, Value(37), v)

	pt.Clear()
	_, ok = pt.Probe(h)
	require.False(t, ok)
}

func TestTablesForPicksByPlyParity(t *testing.T) {
	tables := tt.NewTables(4, 1)
	require.Same(t, tables.Ours, tables.For(0))
	require.Same(t, tables.Opponent, tables.For(1))
	require.Same(t, tables.Ours, tables.For(2))
}
