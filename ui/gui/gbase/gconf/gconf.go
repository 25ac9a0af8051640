package gconf

import (
	"encoding/json"
	"fmt"
	"os"

	"blokus/src/base"
	"blokus/src/logic/board"
	"blokus/src/polyomino"

	"go.uber.org/multierr"
)

const DefaultFile = "blokus.json"

type Config struct {
	Theme     string            `json:"theme"`            // light/dark
	Lang      string            `json:"language"`         // en/ru
	BoardSize int               `json:"board_size"`       // 20..100
	Players   int               `json:"players"`          // 2..4
	Sets      []int             `json:"sets"`             // copies per set, base first
	Tiler     string            `json:"tiler"`            // 4bit/8bit
	Solid     bool              `json:"solid_boundaries"` // edges count as neighbours
	Shapes    map[string]string `json:"shapes"`           // set name -> shape file
	WindowW   int               `json:"window_w"`
	WindowH   int               `json:"window_h"`
	Debug     bool              `json:"debug"`            // true/false
}

func defaultConfig() Config {
	return Config{
		Theme:     "light",
		Lang:      "en",
		BoardSize: base.DefaultBoardSize,
		Players:   base.DefaultPlayers,
		Sets:      []int{1, 0, 0, 0, 0, 0},
		Tiler:     base.FourBit.String(),
		Shapes:    map[string]string{},
		WindowW:   1100,
		WindowH:   800,
	}
}

func Default() *Config {
	c := defaultConfig()
	return &c
}

// NewGUIConfig reads path, falling back to defaults when it does not exist.
// The result is corrected into range.
func NewGUIConfig(path string) (*Config, error) {
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return Default(), nil
	} else if err != nil {
		return nil, err
	}

	conf, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer conf.Close()

	c := defaultConfig()
	dec := json.NewDecoder(conf)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("error decode config: %s", err)
	}
	c.Correct()
	return &c, nil
}

func (c *Config) Save(path string) error {
	jsonData, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, jsonData, 0644)
}

// Validate reports every out-of-range value.
func (c *Config) Validate() error {
	var err error
	if c.Theme != "light" && c.Theme != "dark" {
		err = multierr.Append(err, fmt.Errorf("theme %q is not light or dark", c.Theme))
	}
	if c.Lang != "en" && c.Lang != "ru" {
		err = multierr.Append(err, fmt.Errorf("language %q is not en or ru", c.Lang))
	}
	if c.BoardSize != base.ClampBoardSize(c.BoardSize) {
		err = multierr.Append(err, fmt.Errorf("board size %d outside %d..%d", c.BoardSize, base.MinBoardSize, base.MaxBoardSize))
	}
	if c.Players != base.ClampPlayers(c.Players) {
		err = multierr.Append(err, fmt.Errorf("players %d outside %d..%d", c.Players, base.MinPlayers, base.MaxPlayers))
	}
	if _, e := base.TilerModeFromString(c.Tiler); e != nil {
		err = multierr.Append(err, fmt.Errorf("tiler %q: %v", c.Tiler, e))
	}
	if len(c.Sets) > polyomino.SetCount {
		err = multierr.Append(err, fmt.Errorf("%d set counts given, at most %d", len(c.Sets), polyomino.SetCount))
	}
	for i, n := range c.Sets {
		s := polyomino.SetType(i)
		if s.Valid() && n != polyomino.ClampSets(s, n) {
			err = multierr.Append(err, fmt.Errorf("%s copies %d out of range", s, n))
		}
	}
	for name := range c.Shapes {
		if _, ok := polyomino.SetFromString(name); !ok {
			err = multierr.Append(err, fmt.Errorf("unknown shape set %q", name))
		}
	}
	def := defaultConfig()
	if c.WindowW < def.WindowW || c.WindowH < def.WindowH {
		err = multierr.Append(err, fmt.Errorf("window %dx%d smaller than %dx%d", c.WindowW, c.WindowH, def.WindowW, def.WindowH))
	}
	return err
}

// Correct pulls every value back into range.
func (c *Config) Correct() {
	def := defaultConfig()
	if c.Theme != "light" && c.Theme != "dark" {
		c.Theme = def.Theme
	}
	if c.Lang != "en" && c.Lang != "ru" {
		c.Lang = def.Lang
	}
	c.BoardSize = base.ClampBoardSize(c.BoardSize)
	c.Players = base.ClampPlayers(c.Players)
	if m, err := base.TilerModeFromString(c.Tiler); err != nil {
		c.Tiler = def.Tiler
	} else {
		c.Tiler = m.String()
	}
	sets := make([]int, polyomino.SetCount)
	for s := polyomino.SetBase; s < polyomino.SetCount; s++ {
		n := 0
		if int(s) < len(c.Sets) {
			n = c.Sets[s]
		}
		sets[s] = polyomino.ClampSets(s, n)
	}
	c.Sets = sets
	for name := range c.Shapes {
		if _, ok := polyomino.SetFromString(name); !ok {
			delete(c.Shapes, name)
		}
	}
	if c.WindowH < def.WindowH || c.WindowW < def.WindowW {
		c.WindowH = def.WindowH
		c.WindowW = def.WindowW
	}
}

func (c *Config) Mode() base.TilerMode {
	m, _ := base.TilerModeFromString(c.Tiler)
	return m
}

func (c *Config) BoardOptions() board.Options {
	return board.Options{Size: c.BoardSize, Players: c.Players, Mode: c.Mode(), SolidBoundaries: c.Solid}
}

func (c *Config) Copies() [polyomino.SetCount]int {
	var out [polyomino.SetCount]int
	copy(out[:], c.Sets)
	return out
}

// Library loads the embedded base set plus every configured shape file.
func (c *Config) Library() (*polyomino.Library, error) {
	lib := polyomino.Default()
	var err error
	for name, path := range c.Shapes {
		s, ok := polyomino.SetFromString(name)
		if !ok {
			continue
		}
		err = multierr.Append(err, lib.LoadFile(s, path))
	}
	return lib, err
}

// AddShapes registers a shape file under the set its piece size belongs
// to and makes sure at least one copy of that set is dealt.
func (c *Config) AddShapes(path string) (polyomino.SetType, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	shapes, err := polyomino.Read(f)
	if err != nil {
		return 0, err
	}
	if len(shapes) == 0 {
		return 0, fmt.Errorf("%s: %w", path, polyomino.ErrFormat)
	}
	s, ok := polyomino.SetForTiles(shapes[0].Count())
	if !ok {
		return 0, fmt.Errorf("%s: %w", path, polyomino.ErrWrongTiles)
	}
	if err := polyomino.NewLibrary().LoadFile(s, path); err != nil {
		return 0, err
	}
	if c.Shapes == nil {
		c.Shapes = map[string]string{}
	}
	c.Shapes[s.String()] = path
	if len(c.Sets) < polyomino.SetCount {
		c.Correct()
	}
	c.Sets[s] = polyomino.ClampSets(s, max(c.Sets[s], 1))
	return s, nil
}
