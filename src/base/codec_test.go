package base_test

import (
	"testing"

	"blokus/src/base"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for owner := 0; owner < base.MaxPlayers; owner++ {
		for mask := 0; mask < 16; mask++ {
			v, err := base.Encode(owner, mask)
			require.NoError(t, err)
			assert.NotEqual(t, base.EmptyCell, v)

			gotOwner, gotMask, ok := base.Decode(v)
			require.True(t, ok)
			assert.Equal(t, owner, gotOwner)
			assert.Equal(t, mask, gotMask)
		}
	}
}

func TestEncodeLayout(t *testing.T) {
	v, err := base.Encode(0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), v)

	v, err = base.Encode(2, 5)
	require.NoError(t, err)
	assert.Equal(t, uint32(2*16+5+1), v)
}

func TestDecodeEmpty(t *testing.T) {
	_, _, ok := base.Decode(base.EmptyCell)
	assert.False(t, ok)
}

func TestEncodeRejects(t *testing.T) {
	_, err := base.Encode(-1, 0)
	assert.ErrorIs(t, err, base.ErrInvalidOwner)

	_, err = base.Encode(0, 16)
	assert.ErrorIs(t, err, base.ErrInvalidVariant)

	_, err = base.Encode(0, -1)
	assert.ErrorIs(t, err, base.ErrInvalidVariant)
}

func TestEightBitCodec(t *testing.T) {
	for owner := 0; owner < base.MaxPlayers; owner++ {
		for variant := 0; variant < 47; variant++ {
			v, err := base.EightBitCodec.Encode(owner, variant)
			require.NoError(t, err)
			o, m, ok := base.EightBitCodec.Decode(v)
			require.True(t, ok)
			assert.Equal(t, owner, o)
			assert.Equal(t, variant, m)
		}
	}
	assert.Equal(t, base.EightBitCodec, base.CodecFor(base.EightBit))
	assert.Equal(t, base.FourBitCodec, base.CodecFor(base.FourBit))
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    base.Direction
		dx, dy int
	}{
		{base.MoveEast, 1, 0},
		{base.MoveNorth, 0, 1},
		{base.MoveWest, -1, 0},
		{base.MoveSouth, 0, -1},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			dx, dy := tt.dir.Delta()
			assert.Equal(t, tt.dx, dx)
			assert.Equal(t, tt.dy, dy)
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, base.MinBoardSize, base.ClampBoardSize(3))
	assert.Equal(t, base.MaxBoardSize, base.ClampBoardSize(1000))
	assert.Equal(t, 42, base.ClampBoardSize(42))
	assert.Equal(t, base.MinPlayers, base.ClampPlayers(0))
	assert.Equal(t, base.MaxPlayers, base.ClampPlayers(9))
}

func TestTilerModeFromString(t *testing.T) {
	m, err := base.TilerModeFromString("8bit")
	require.NoError(t, err)
	assert.Equal(t, base.EightBit, m)
	assert.Equal(t, 48, m.Frames())

	m, err = base.TilerModeFromString("4")
	require.NoError(t, err)
	assert.Equal(t, base.FourBit, m)
	assert.Equal(t, 16, m.Frames())

	_, err = base.TilerModeFromString("nine")
	assert.Error(t, err)
}
