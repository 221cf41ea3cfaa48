package crane_test

import (
	"os"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/arthur-debert/cranes/pkg/crane"
	"github.com/arthur-debert/cranes/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readSample(t *testing.T) (*crane.Platform, *crane.LiftReader) {
	t.Helper()
	f, err := os.Open("testdata/sample.txt")
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	p, lifts, err := crane.ReadDrawing(f)
	require.NoError(t, err)
	return p, lifts
}

func TestReadDrawing(t *testing.T) {
	p, lifts := readSample(t)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, p.Layout().IDs())
	assert.Equal(t, 9, lifts.Pos(), "lift reader continues after the layout line")

	first, ok, err := lifts.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "move 3 from 4 to 6", first.String())
	assert.Equal(t, 11, lifts.Pos())
}

func TestRun(t *testing.T) {
	tests := []struct {
		mode   crane.Mode
		answer string
	}{
		{crane.SingleCrate, "MFHDVFL M"},
		{crane.Block, "NNHDGFH L"},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			p, lifts := readSample(t)
			require.NoError(t, p.Run(lifts, tt.mode))
			assert.Equal(t, tt.answer, p.TopRow())
			assert.Equal(t, crane.Stats{Lifts: 13, Moved: 52}, p.Stats())
		})
	}
}

func TestRunReportsRouteLine(t *testing.T) {
	input := "[A]     [B]\n 1   2   3\n\nmove 1 from 1 to 2\nmove 1 from 99 to 1\nmove 1 from 3 to 1\n"
	p, lifts, err := crane.ReadDrawing(strings.NewReader(input))
	require.NoError(t, err)

	err = p.Run(lifts, crane.SingleCrate)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRouteInvalid))
	assert.Contains(t, err.Error(), "line 5: move 1 from 99 to 1")

	line, ok := errors.LineOf(err)
	require.True(t, ok)
	assert.Equal(t, 5, line)

	var routeErr *crane.RouteError
	require.ErrorAs(t, err, &routeErr)
	assert.Equal(t, crane.Origin, routeErr.Side)
	assert.Equal(t, 99, routeErr.ID)

	assert.Equal(t, " AB", p.TopRow(), "the first lift was applied")
}

func TestReadDrawingErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.ErrorCode
		line  int
	}{
		{"empty_input", "", errors.ErrLayoutDecode, 0},
		{"malformed_row", "[A]\n[B\n 1 \n", errors.ErrRowDecode, 2},
		{"unclosed_last_slot", "[A] [B\n 1   2 \n", errors.ErrRowDecode, 1},
		{"layout_garbage", "[A]\n x \n", errors.ErrLayoutDecode, 2},
		{"duplicate_id", "[A] [B]\n 1   1 \n", errors.ErrLayoutDecode, 2},
		{"row_wider_than_layout", "[A] [B]\n 1 \n", errors.ErrRowDecode, 1},
		{"upper_row_wider_than_layout", "[A]\n[A] [B]\n 1\n\n", errors.ErrRowDecode, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := crane.ReadDrawing(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
			line, ok := errors.LineOf(err)
			require.True(t, ok)
			assert.Equal(t, tt.line, line)
		})
	}
}

func TestReadDrawingReadFailure(t *testing.T) {
	r := iotest.TimeoutReader(strings.NewReader("[A]\n"))
	_, _, err := crane.ReadDrawing(r)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
}

func TestDraw(t *testing.T) {
	t.Run("sample_round_trip", func(t *testing.T) {
		p, _ := readSample(t)
		drawn := p.Draw()

		again, _, err := crane.ReadDrawing(strings.NewReader(drawn))
		require.NoError(t, err)
		assert.Equal(t, stackLabels(p), stackLabels(again))
		assert.Equal(t, p.Layout().IDs(), again.Layout().IDs())
		assert.Equal(t, drawn, again.Draw())
	})

	t.Run("exact_output", func(t *testing.T) {
		p := newPlatform(t, "1 2 3", "  C", "A B")
		want := "        [C]\n" +
			"[A]     [B]\n" +
			" 1   2   3\n"
		assert.Equal(t, want, p.Draw())
	})

	t.Run("after_lifts", func(t *testing.T) {
		p, lifts := readSample(t)
		require.NoError(t, p.Run(lifts, crane.Block))

		again, _, err := crane.ReadDrawing(strings.NewReader(p.Draw()))
		require.NoError(t, err)
		assert.Equal(t, "NNHDGFH L", again.TopRow())
	})
}
