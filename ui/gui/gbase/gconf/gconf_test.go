package gconf_test

import (
	"os"
	"path/filepath"
	"testing"

	"blokus/src/base"
	"blokus/src/polyomino"
	"blokus/ui/gui/gbase/gconf"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestMissingFileDefaults(t *testing.T) {
	c, err := gconf.NewGUIConfig(filepath.Join(t.TempDir(), "none.json"))
	require.NoError(t, err)
	assert.Equal(t, gconf.Default(), c)
	assert.NoError(t, c.Validate())
	assert.Equal(t, base.FourBit, c.Mode())
}

func TestLoadCorrects(t *testing.T) {
	path := filepath.Join(t.TempDir(), gconf.DefaultFile)
	data := `{"theme": "pink", "board_size": 7, "players": 9, "tiler": "8bit", "sets": [40, 3], "shapes": {"bogus": "x.txt"}}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	c, err := gconf.NewGUIConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "light", c.Theme)
	assert.Equal(t, base.MinBoardSize, c.BoardSize)
	assert.Equal(t, base.MaxPlayers, c.Players)
	assert.Equal(t, base.EightBit, c.Mode())
	assert.Equal(t, []int{12, 3, 0, 0, 0, 0}, c.Sets)
	assert.Empty(t, c.Shapes)
	assert.NoError(t, c.Validate())
}

func TestLoadBrokenJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), gconf.DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))
	_, err := gconf.NewGUIConfig(path)
	assert.Error(t, err)
}

func TestValidateCollects(t *testing.T) {
	c := gconf.Default()
	c.Theme = "pink"
	c.BoardSize = 500
	c.Tiler = "16bit"
	err := c.Validate()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 3)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), gconf.DefaultFile)
	c := gconf.Default()
	c.Theme = "dark"
	c.Solid = true
	require.NoError(t, c.Save(path))

	got, err := gconf.NewGUIConfig(path)
	require.NoError(t, err)
	assert.Equal(t, c, got)
	assert.True(t, got.BoardOptions().SolidBoundaries)
}

func TestAddShapes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hex.txt")
	require.NoError(t, os.WriteFile(path, []byte("111111;\n11111:10000\n"), 0644))

	c := gconf.Default()
	s, err := c.AddShapes(path)
	require.NoError(t, err)
	assert.Equal(t, polyomino.SetHexomino, s)
	assert.Equal(t, 1, c.Copies()[polyomino.SetHexomino])

	lib, err := c.Library()
	require.NoError(t, err)
	assert.Equal(t, 2, lib.Loaded(polyomino.SetHexomino))
	assert.Equal(t, 21, lib.Loaded(polyomino.SetBase))

	_, err = c.AddShapes(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}
