/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package perftsuite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkane/bitchess/internal/attacks"
	"github.com/rkane/bitchess/internal/position"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func TestPerftStartingPositionDepth123(t *testing.T) {
	tables := attacks.NewTables()
	pos, err := position.FromFEN(tables, startFEN)
	require.NoError(t, err)

	assert.EqualValues(t, 20, Perft(pos, 1))
	assert.EqualValues(t, 400, Perft(pos, 2))
	assert.EqualValues(t, 8902, Perft(pos, 3))
}

func TestParseLineExtractsFenAndDepths(t *testing.T) {
	c := parseLine(startFEN + " ;D1 20 ;D2 400 ;D3 8902")
	require.NotNil(t, c)
	assert.Equal(t, startFEN, c.FEN)
	assert.Equal(t, map[int]uint64{1: 20, 2: 400, 3: 8902}, c.Depths)
}

func TestParseLineSkipsLinesWithNoDepths(t *testing.T) {
	assert.Nil(t, parseLine(startFEN))
	assert.Nil(t, parseLine("# just a comment"))
}

func TestRunFileReportsPassAndFail(t *testing.T) {
	tables := attacks.NewTables()

	dir := t.TempDir()
	path := filepath.Join(dir, "suite.epd")
	contents := startFEN + " ;D1 20 ;D2 400 ;D3 1\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	result, err := RunFile(tables, path)
	require.NoError(t, err)
	require.Len(t, result.Cases, 3)
	assert.Equal(t, 2, result.Passed())
	assert.Equal(t, 1, result.Failed())
	assert.NotEmpty(t, result.Summary())
}
