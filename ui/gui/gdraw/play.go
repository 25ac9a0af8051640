package gdraw

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"
	"time"

	"blokus/src"
	"blokus/src/base"
	"blokus/src/geometry"
	"blokus/src/hitgrid"
	"blokus/src/logic/board"
	"blokus/src/logic/history"
	"blokus/ui/gui/gbase"
	"blokus/ui/gui/gctx"
	"blokus/ui/gui/ghelper"
	"blokus/ui/gui/ghelper/gclipboard"
	"blokus/ui/gui/ghelper/glayout"
	"blokus/ui/sprites"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

const (
	btnNew = iota
	btnUndo
	btnRedo
	btnBack
)

var (
	playLabels = []string{"play.new", "play.undo", "play.redo", "play.back"}
	playerKeys = [base.MaxPlayers]ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}
)

type GUIPlayDrawer struct {
	// layout
	hit     *hitgrid.HitGrid
	cell    int // pixel size per board cell
	panel   image.Rectangle
	players *glayout.PaddedGrid
	preview *glayout.PaddedGrid
	tools   *glayout.PaddedGrid

	previewIDs []uint16
	lastHover  uint32

	buttons []*ghelper.Button
	msg     ghelper.MessageBox
	toast   ghelper.Toast

	mouse    mouse
	prevTime time.Time
}

func NewGUIPlayDrawer(ctx *gctx.GUIGameContext) *GUIPlayDrawer {
	pd := &GUIPlayDrawer{lastHover: hitgrid.NoHit, prevTime: time.Now()}
	if ctx.Builder.Board() == nil {
		if err := ctx.NewGame(); err != nil {
			ctx.Logx.Errorf("error create game: %v", err)
		}
	}
	pd.recalcLayout(ctx)
	pd.makeLayoutButtons(ctx)
	return pd
}

func (pd *GUIPlayDrawer) recalcLayout(ctx *gctx.GUIGameContext) {
	ww, wh := ctx.Config.WindowW, ctx.Config.WindowH
	size := ctx.Builder.Board().Size()

	area := image.Rect(gbase.Margin, gbase.Margin, ww-gbase.PanelW-2*gbase.Margin, wh-gbase.Margin)
	cell := min(area.Dx(), area.Dy()) / size
	if cell != pd.cell {
		ctx.AssetsWorker.DropSheets()
	}
	pd.cell = cell
	px := cell * size
	top := area.Min.Y + (area.Dy()-px)/2
	pd.hit = hitgrid.NewHitGrid(area.Min.X, top, area.Min.X+px, top+px, size, size)

	pd.panel = image.Rect(ww-gbase.PanelW-gbase.Margin, gbase.Margin, ww-gbase.Margin, wh-gbase.Margin)
	x0, x1 := pd.panel.Min.X+12, pd.panel.Max.X-12
	y := pd.panel.Min.Y + 40
	pd.players = glayout.NewPaddedGrid(image.Rect(x0, y, x1, y+4*28), 1, base.MaxPlayers, 0, 4, glayout.AlignTopLeft)
	y += 4*28 + 28
	pd.preview = glayout.NewPaddedGrid(image.Rect(x0, y, x1, y+2*84), gbase.PreviewCols, gbase.PreviewRows, 8, 8, glayout.AlignTopCenter)
	pd.preview.SetSquareCells(true)
	y += 2*84 + 20
	pd.tools = glayout.NewPaddedGrid(image.Rect(x0, y, x1, y+2*44+10), 2, 2, 10, 10, glayout.AlignCenter)
}

func (pd *GUIPlayDrawer) makeLayoutButtons(ctx *gctx.GUIGameContext) {
	pd.buttons = make([]*ghelper.Button, len(playLabels))
	for i, key := range playLabels {
		r := pd.tools.Cell(i%2, i/2)
		pd.buttons[i] = ghelper.NewButton(ctx.AssetsWorker.Lang().T(key), r, ctx.Theme)
	}
}

func (pd *GUIPlayDrawer) Update(ctx *gctx.GUIGameContext) (SceneType, error) {
	gb := ctx.Builder
	mx, my, justClicked, justReleased := pd.mouse.poll()

	now := time.Now()
	dt := now.Sub(pd.prevTime).Seconds()
	pd.prevTime = now
	pd.toast.Tick()

	if pd.msg.Open {
		if justClicked {
			pd.msg.HandleClick(mx, my)
		}
		pd.msg.Animate()
		return SceneNotChanged, nil
	}

	for i, b := range pd.buttons {
		clicked := b.HandleInput(mx, my, justClicked, justReleased)
		b.UpdateAnim(dt)
		if !clicked {
			continue
		}
		switch i {
		case btnNew:
			pd.report(ctx, ctx.NewGame())
			pd.recalcLayout(ctx)
		case btnUndo:
			pd.report(ctx, gb.Undo())
		case btnRedo:
			pd.report(ctx, gb.Redo())
		case btnBack:
			return SceneMenu, nil
		}
		return SceneNotChanged, nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return SceneMenu, nil
	}
	pd.handleKeys(ctx)

	p := image.Pt(mx, my)
	pos := pd.hit.CheckPos(p)
	if col, row, ok := pd.hit.Cell(pos); ok {
		// the piece anchor follows the hovered cell
		if pos != pd.lastHover && gb.Piece() != nil {
			pd.report(ctx, gb.MoveTo(col, row))
		}
		pd.lastHover = pos
		if justClicked {
			pd.report(ctx, gb.Place())
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
			pd.report(ctx, gb.Rotate(base.Clockwise))
		}
		if _, wy := ebiten.Wheel(); wy > 0 {
			pd.report(ctx, gb.Rotate(base.Clockwise))
		} else if wy < 0 {
			pd.report(ctx, gb.Rotate(base.CounterClockwise))
		}
		return SceneNotChanged, nil
	}
	pd.lastHover = hitgrid.NoHit

	if justClicked {
		if i := pd.players.Index(p); i >= 0 && i < len(gb.Players()) {
			pd.report(ctx, gb.SetActive(i))
		} else if i := pd.preview.Index(p); i >= 0 && i < len(pd.previewIDs) {
			pd.report(ctx, gb.SelectPiece(pd.previewIDs[i]))
		}
	}
	return SceneNotChanged, nil
}

func (pd *GUIPlayDrawer) handleKeys(ctx *gctx.GUIGameContext) {
	gb := ctx.Builder
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	just := inpututil.IsKeyJustPressed

	switch {
	case just(ebiten.KeyR):
		if shift {
			pd.report(ctx, gb.Rotate(base.CounterClockwise))
		} else {
			pd.report(ctx, gb.Rotate(base.Clockwise))
		}
	case just(ebiten.KeyF):
		if shift {
			pd.report(ctx, gb.Flip(base.AxisHorizontal))
		} else {
			pd.report(ctx, gb.Flip(base.AxisVertical))
		}
	case just(ebiten.KeyTab):
		pd.report(ctx, gb.NextPiece())
	case just(ebiten.KeyU):
		pd.report(ctx, gb.Undo())
	case just(ebiten.KeyY):
		pd.report(ctx, gb.Redo())
	case just(ebiten.KeyEnter), just(ebiten.KeySpace):
		pd.report(ctx, gb.Place())
	case just(ebiten.KeyUp): // rows grow downward on screen
		pd.report(ctx, gb.Move(base.MoveSouth))
	case just(ebiten.KeyDown):
		pd.report(ctx, gb.Move(base.MoveNorth))
	case just(ebiten.KeyLeft):
		pd.report(ctx, gb.Move(base.MoveWest))
	case just(ebiten.KeyRight):
		pd.report(ctx, gb.Move(base.MoveEast))
	case just(ebiten.KeyC):
		pd.copyLog(ctx)
	case just(ebiten.KeyL):
		msg, err := loadShapes(ctx)
		if err != nil {
			pd.msg.Show(err.Error(), nil)
		} else if msg != "" {
			pd.recalcLayout(ctx)
			pd.toast.Show(msg)
		}
	}
	for i, k := range playerKeys {
		if just(k) {
			pd.report(ctx, gb.SetActive(i))
		}
	}
}

func (pd *GUIPlayDrawer) copyLog(ctx *gctx.GUIGameContext) {
	lw := ctx.AssetsWorker.Lang()
	if gclipboard.Unsupported() {
		pd.toast.Show(lw.T("play.no_clipboard"))
		return
	}
	if err := gclipboard.WriteAll(ctx.Builder.Log()); err != nil {
		ctx.Logx.Errorf("error copy log: %v", err)
		pd.toast.Show(err.Error())
		return
	}
	pd.toast.Show(lw.T("play.copied"))
}

// report turns a failed action into a toast.
func (pd *GUIPlayDrawer) report(ctx *gctx.GUIGameContext, err error) {
	if err == nil {
		return
	}
	lw := ctx.AssetsWorker.Lang()
	switch {
	case errors.Is(err, board.ErrCellOccupied), errors.Is(err, board.ErrOutOfBoard):
		pd.toast.Show(lw.T("play.bad_place"))
	case errors.Is(err, src.ErrNoSelection):
		pd.toast.Show(lw.T("play.none"))
	case errors.Is(err, history.ErrNothingToUndo), errors.Is(err, history.ErrNothingToRedo):
		pd.toast.Show(err.Error())
	default:
		ctx.Logx.Warnf("gui action: %v", err)
		pd.toast.Show(err.Error())
	}
}

func (pd *GUIPlayDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)
	pd.drawBoard(ctx, screen)
	pd.drawGhost(ctx, screen)
	pd.drawPanel(ctx, screen)
	pd.msg.Draw(screen, ctx.AssetsWorker.Fonts().Normal, ctx.AssetsWorker.Lang().T("button.ok"), ctx.Theme)

	if ctx.Config.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()))
	}
}

func (pd *GUIPlayDrawer) drawBoard(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	b := ctx.Builder.Board()
	r := pd.hit.Rect()

	border := ghelper.RenderRoundedRect(r.Dx()+8, r.Dy()+8, 6, ctx.Theme.BoardBg, ctx.Theme.ButtonStroke, 2)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(r.Min.X-4), float64(r.Min.Y-4))
	screen.DrawImage(border, op)
	for i := 1; i < b.Size(); i++ {
		v := i * pd.cell
		ghelper.DrawRect(screen, image.Rect(r.Min.X+v, r.Min.Y, r.Min.X+v+1, r.Max.Y), ctx.Theme.GridLine)
		ghelper.DrawRect(screen, image.Rect(r.Min.X, r.Min.Y+v, r.Max.X, r.Min.Y+v+1), ctx.Theme.GridLine)
	}

	players := ctx.Builder.Players()
	sheets := make([]*ghelper.SpriteSheet, len(players))
	for i, p := range players {
		s, err := ctx.AssetsWorker.Sheet(b.Mode(), pd.cell, p.Colour())
		if err != nil {
			ctx.Logx.Errorf("error build sheet: %v", err)
			return
		}
		sheets[i] = s
	}
	for y := 0; y < b.Size(); y++ {
		for x := 0; x < b.Size(); x++ {
			owner, variant, ok := b.Cell(x, y)
			if !ok || owner >= len(sheets) {
				continue
			}
			pd.drawFrame(screen, sheets[owner], variant, pd.hit.CellRect(x, y).Min, 1)
		}
	}
}

func (pd *GUIPlayDrawer) drawFrame(screen *ebiten.Image, s *ghelper.SpriteSheet, variant int, at image.Point, alpha float32) {
	frame := s.Frame(variant)
	if frame == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	op.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(frame, op)
}

// drawGhost draws the selected piece at its anchor, red when it cannot go there.
func (pd *GUIPlayDrawer) drawGhost(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	gb := ctx.Builder
	piece := gb.Piece()
	if piece == nil {
		return
	}
	colour := gb.CurrentPlayer().Colour()
	if !gb.CanPlace() {
		colour = ctx.Theme.Invalid
	}
	pd.drawShape(ctx, screen, piece.Grid(), pd.cell, colour, func(col, row int) image.Point {
		return pd.hit.CellRect(piece.X()+col, piece.Y()+row).Min
	}, 0.65)
}

func (pd *GUIPlayDrawer) drawShape(ctx *gctx.GUIGameContext, screen *ebiten.Image, shape geometry.ShapeGrid, cell int, colour color.RGBA, at func(col, row int) image.Point, alpha float32) {
	mode := ctx.Builder.Board().Mode()
	tiles, err := sprites.TileShape(mode, shape)
	if err != nil {
		ctx.Logx.Errorf("error tile shape: %v", err)
		return
	}
	sheet, err := ctx.AssetsWorker.Sheet(mode, cell, colour)
	if err != nil {
		ctx.Logx.Errorf("error build sheet: %v", err)
		return
	}
	for row := 0; row < tiles.Height(); row++ {
		for col := 0; col < tiles.Width(); col++ {
			if tiles.Occupied(col, row) {
				pd.drawFrame(screen, sheet, tiles.At(col, row), at(col, row), alpha)
			}
		}
	}
}

func (pd *GUIPlayDrawer) drawPanel(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	gb := ctx.Builder
	lw := ctx.AssetsWorker.Lang()
	fonts := ctx.AssetsWorker.Fonts()

	bg := ghelper.RenderRoundedRect(pd.panel.Dx(), pd.panel.Dy(), 12, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 2)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(pd.panel.Min.X), float64(pd.panel.Min.Y))
	screen.DrawImage(bg, op)

	x := pd.panel.Min.X + 12
	cur := gb.CurrentPlayer()
	text.Draw(screen, fmt.Sprintf("%s: %s", lw.T("play.active"), cur.Name()), fonts.Bold, x, pd.panel.Min.Y+28, ctx.Theme.MenuText)

	for i, p := range gb.Players() {
		r := pd.players.Cell(0, i)
		ghelper.DrawRect(screen, image.Rect(r.Min.X, r.Min.Y+4, r.Min.X+16, r.Min.Y+20), p.Colour())
		if i == gb.Current() {
			ghelper.DrawRectStroke(screen, r, 2, ctx.Theme.Accent)
		}
		line := fmt.Sprintf("%d. %s  %d %s, %d %s", i+1, p.Name(), p.TotalPieces(), lw.T("play.pieces"), p.TotalTiles(), lw.T("play.tiles"))
		text.Draw(screen, line, fonts.Normal, r.Min.X+24, r.Min.Y+18, ctx.Theme.MenuText)
	}

	pd.drawPreview(ctx, screen)
	for _, b := range pd.buttons {
		b.Draw(screen, fonts.Normal, ctx.Theme)
	}

	y := pd.buttons[len(pd.buttons)-1].Rect.Max.Y + 24
	for _, l := range strings.Split(lw.T("play.help"), ", ") {
		text.Draw(screen, l, fonts.Small, x, y, ctx.Theme.MenuText)
		y += 15
	}

	bottom := pd.panel.Max.Y - 12
	text.Draw(screen, fmt.Sprintf("%s: %s", lw.T("play.log"), logTail(gb.Log(), 3)), fonts.Small, x, bottom, ctx.Theme.MenuText)
	pd.toast.Draw(screen, fonts.Normal, x, bottom-20, ctx.Theme)
}

// drawPreview shows the selected piece and the ones after it.
func (pd *GUIPlayDrawer) drawPreview(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	gb := ctx.Builder
	pd.previewIDs = pd.previewIDs[:0]
	if gb.Piece() == nil {
		text.Draw(screen, ctx.AssetsWorker.Lang().T("play.none"), ctx.AssetsWorker.Fonts().Normal, pd.preview.Cell(0, 0).Min.X, pd.preview.Cell(0, 0).Min.Y+20, ctx.Theme.MenuText)
		return
	}

	id := gb.Piece().ID()
	n := pd.preview.Cols() * pd.preview.Rows()
	for i := 0; i < n; i++ {
		pd.previewIDs = append(pd.previewIDs, id)
		next, ok := gb.CurrentPlayer().Next(id)
		if !ok || next == pd.previewIDs[0] {
			break
		}
		id = next
	}

	colour := gb.CurrentPlayer().Colour()
	for i, id := range pd.previewIDs {
		r := pd.preview.Cell(i%pd.preview.Cols(), i/pd.preview.Cols())
		stroke := ctx.Theme.GridLine
		if i == 0 {
			stroke = ctx.Theme.Accent
		}
		ghelper.DrawRectStroke(screen, r, 2, stroke)

		shape := gb.Piece().Grid()
		if i > 0 {
			s, _, err := gb.Library().Shape(id)
			if err != nil {
				continue
			}
			shape = s
		}
		side := max(shape.Width(), shape.Height())
		mini := max((r.Dx()-8)/max(side, 1), sprites.MinCell)
		ox := r.Min.X + (r.Dx()-mini*shape.Width())/2
		oy := r.Min.Y + (r.Dy()-mini*shape.Height())/2
		pd.drawShape(ctx, screen, shape, mini, colour, func(col, row int) image.Point {
			return image.Pt(ox+col*mini, oy+row*mini)
		}, 1)
	}
}

// logTail keeps the last n "k. entry" pairs of a placement log.
func logTail(log string, n int) string {
	f := strings.Fields(log)
	if len(f) > 2*n {
		f = f[len(f)-2*n:]
	}
	return strings.Join(f, " ")
}
