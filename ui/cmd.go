package ui

import (
	"context"
	"fmt"
	"image/color"
	"os"

	"blokus/src"
	"blokus/src/base"
	"blokus/src/logx"
	clic "blokus/ui/cli"
	"blokus/ui/gui"
	"blokus/ui/gui/gbase/gconf"
	"blokus/ui/sprites"

	"github.com/urfave/cli/v3"
)

const logfile string = "blokus.log"

func GetLogger(file *os.File, c *cli.Command) *logx.Logx {
	return logx.New(file, logx.Options{
		Level:   logx.LevelFromString(c.String("level")),
		Dev:     c.Bool("debug"),
		Console: c.Bool("console"),
	})
}

// LoadConfig reads the config file and applies command line overrides.
// Problems are logged and corrected rather than returned.
func LoadConfig(c *cli.Command, l logx.Logger) (*gconf.Config, error) {
	conf, err := gconf.NewGUIConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	if c.IsSet("size") {
		conf.BoardSize = int(c.Int("size"))
	}
	if c.IsSet("players") {
		conf.Players = int(c.Int("players"))
	}
	if c.IsSet("tiler") {
		conf.Tiler = c.String("tiler")
	}
	if c.IsSet("solid") {
		conf.Solid = c.Bool("solid")
	}
	if c.Bool("debug") {
		conf.Debug = true
	}
	if path := c.String("shapes"); path != "" {
		if _, err := conf.AddShapes(path); err != nil {
			l.Errorf("error load shapes %s: %v", path, err)
		}
	}
	if err := conf.Validate(); err != nil {
		l.Warnf("config corrected: %v", err)
		conf.Correct()
	}
	return conf, nil
}

func newGame(conf *gconf.Config, l logx.Logger) (*src.GameBuilder, error) {
	lib, err := conf.Library()
	if err != nil {
		l.Warnf("shape files: %v", err)
	}
	gb := src.NewBuilderGame(l)
	err = gb.Create(src.GameOptions{Board: conf.BoardOptions(), Copies: conf.Copies(), Library: lib})
	return gb, err
}

// withLog opens the log file and runs fn with a logger and the config.
func withLog(c *cli.Command, fn func(l *logx.Logx, conf *gconf.Config) error) error {
	file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("error open logfile: %v", err)
	}
	defer file.Close()
	l := GetLogger(file, c)
	defer l.Sync() //nolint:errcheck

	conf, err := LoadConfig(c, l)
	if err != nil {
		return err
	}
	return fn(l, conf)
}

func RunGUI(c *cli.Command) error {
	return withLog(c, func(l *logx.Logx, conf *gconf.Config) error {
		g, err := gui.NewGUI(src.NewBuilderGame(l), conf, c.String("config"), l)
		if err != nil {
			return err
		}
		return g.Run()
	})
}

func RunCLI(c *cli.Command) error {
	return withLog(c, func(l *logx.Logx, conf *gconf.Config) error {
		gb, err := newGame(conf, l)
		if err != nil {
			return err
		}
		clic.EnableANSI()
		return clic.NewCLI(gb, clic.PrintBoard).Run()
	})
}

func RunSheet(c *cli.Command) error {
	mode, err := base.TilerModeFromString(c.String("mode"))
	if err != nil {
		return err
	}
	colour := src.DefaultColours[0]
	if i := int(c.Int("player")); i >= 1 && i <= base.MaxPlayers {
		colour = src.DefaultColours[i-1]
	}
	s, err := sprites.NewSheet(mode, int(c.Int("cell")), colour)
	if err != nil {
		return err
	}
	if err := s.SavePNG(c.String("out")); err != nil {
		return err
	}
	fmt.Printf("%s sheet: %d frames, %dx%d cells -> %s\n", mode, mode.Frames(), s.Cols, s.Rows, c.String("out"))
	return nil
}

func RunRender(c *cli.Command) error {
	return withLog(c, func(l *logx.Logx, conf *gconf.Config) error {
		gb, err := newGame(conf, l)
		if err != nil {
			return err
		}
		placed := placeDemo(gb)

		colours := make([]color.RGBA, len(gb.Players()))
		for i, p := range gb.Players() {
			colours[i] = p.Colour()
		}
		img, err := sprites.RenderBoard(gb.Board(), int(c.Int("cell")), colours, color.RGBA{0xff, 0xff, 0xff, 0xff})
		if err != nil {
			return err
		}
		if err := sprites.SavePNG(c.String("out"), img); err != nil {
			return err
		}
		fmt.Printf("rendered %d pieces -> %s\n", placed, c.String("out"))
		fmt.Println(gb.Log())
		return nil
	})
}

// placeDemo walks every player clockwise along the board edge from its own
// corner, dropping its largest pieces. It returns the pieces placed.
func placeDemo(gb *src.GameBuilder) int {
	last := gb.Board().Size() - 1
	walks := []struct{ x, y, dx, dy int }{
		{0, 0, 1, 0}, {last, 0, 0, 1}, {last, last, -1, 0}, {0, last, 0, -1},
	}
	placed := 0
	for i := range gb.Players() {
		if err := gb.SetActive(i); err != nil {
			continue
		}
		w := walks[i%len(walks)]
		ids := gb.CurrentPlayer().Pieces()
		for k := 0; k < 4 && k < len(ids); k++ {
			if gb.SelectPiece(ids[len(ids)-1-k]) != nil {
				continue
			}
			if gb.MoveTo(w.x+w.dx*k*4, w.y+w.dy*k*4) != nil {
				continue
			}
			if gb.Place() == nil {
				placed++
			}
		}
	}
	return placed
}

func RunBlokus() error {
	return NewApp().Run(context.Background(), os.Args)
}

// NewApp builds the command tree; the root action opens the GUI.
func NewApp() *cli.Command {
	df := &cli.BoolFlag{
		Name:    "debug",
		Aliases: []string{"d"},
		Usage:   "enable debug mod",
	}
	lf := &cli.StringFlag{
		Name:    "level",
		Aliases: []string{"l"},
		Value:   "info",
		Usage:   "logger level",
	}
	cf := &cli.BoolFlag{
		Name:    "console",
		Aliases: []string{"c"},
		Usage:   "console logger encoding",
	}
	conff := &cli.StringFlag{
		Name:  "config",
		Value: gconf.DefaultFile,
		Usage: "path to JSON config",
	}
	sf := &cli.StringFlag{
		Name:  "shapes",
		Usage: "extra polyomino shape file",
	}
	gameff := []cli.Flag{
		&cli.IntFlag{Name: "size", Usage: "board size (20..100)"},
		&cli.IntFlag{Name: "players", Usage: "player count (2..4)"},
		&cli.StringFlag{Name: "tiler", Usage: "autotiler: 4bit or 8bit"},
		&cli.BoolFlag{Name: "solid", Usage: "board edges join tiles"},
	}
	cellf := &cli.IntFlag{Name: "cell", Value: 32, Usage: "cell size in pixels"}
	outf := &cli.StringFlag{Name: "out", Aliases: []string{"o"}, Required: true, Usage: "output PNG"}

	flags := append([]cli.Flag{df, lf, cf, conff, sf}, gameff...)

	return &cli.Command{
		Name:  "blokus",
		Usage: "polyomino tiling game",
		Flags: flags,
		Commands: []*cli.Command{
			{
				Name:  "cli",
				Usage: "terminal game",
				Action: func(ctx context.Context, c *cli.Command) error {
					return RunCLI(c)
				},
			},
			{
				Name:  "gui",
				Usage: "window game",
				Action: func(ctx context.Context, c *cli.Command) error {
					return RunGUI(c)
				},
			},
			{
				Name:  "sheet",
				Usage: "export a procedural sprite sheet",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "mode", Aliases: []string{"m"}, Value: "4", Usage: "4 or 8"},
					&cli.IntFlag{Name: "player", Value: 1, Usage: "colour of player N"},
					cellf, outf,
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return RunSheet(c)
				},
			},
			{
				Name:  "render",
				Usage: "place a demo layout and export the board",
				Flags: []cli.Flag{cellf, outf},
				Action: func(ctx context.Context, c *cli.Command) error {
					return RunRender(c)
				},
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return RunGUI(c)
		},
	}
}
