package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strconv"

	"github.com/jaminalder/codex-gess/internal/domain"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DefaultCellPx is the cell edge length used when Options leaves it unset.
const DefaultCellPx = 28

// Options tunes PNG output.
type Options struct {
	CellPx int
	// Highlight, when set, tints the start and destination footprints of a move.
	Highlight *domain.Move
}

var (
	boardColor    = color.RGBA{222, 184, 135, 255}
	marginColor   = color.RGBA{58, 44, 32, 255}
	gridColor     = color.RGBA{120, 90, 60, 255}
	borderColor   = color.RGBA{90, 66, 44, 255}
	labelColor    = color.NRGBA{R: 236, G: 225, B: 200, A: 255}
	fromHighlight = color.NRGBA{R: 148, G: 207, B: 255, A: 90}
	toHighlight   = color.NRGBA{R: 255, G: 228, B: 120, A: 120}
)

// stones leave 1/stoneInsetFrac of the cell free on each side
const stoneInsetFrac = 10

// PNG draws the board as a PNG image with file and rank labels around it.
func PNG(ctx context.Context, b domain.Board, opts Options) ([]byte, error) {
	cell := opts.CellPx
	if cell <= 0 {
		cell = DefaultCellPx
	}
	margin := cell
	boardPx := cell * domain.BoardSize
	origin := image.Point{X: margin, Y: margin}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	img := image.NewRGBA(image.Rect(0, 0, boardPx+2*margin, boardPx+2*margin))
	draw.Draw(img, img.Bounds(), image.NewUniform(marginColor), image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(origin.X, origin.Y, origin.X+boardPx, origin.Y+boardPx), image.NewUniform(boardColor), image.Point{}, draw.Src)

	drawGrid(img, cell, origin)
	if opts.Highlight != nil {
		drawFootprint(img, opts.Highlight.From, cell, origin, fromHighlight)
		drawFootprint(img, opts.Highlight.To, cell, origin, toHighlight)
	}
	if err := drawStones(img, b, cell, origin); err != nil {
		return nil, err
	}
	drawLabels(img, cell, origin)

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func cellRect(c domain.Coord, cell int, origin image.Point) image.Rectangle {
	x := origin.X + c.Col*cell
	y := origin.Y + c.Row*cell
	return image.Rect(x, y, x+cell, y+cell)
}

func drawGrid(img *image.RGBA, cell int, origin image.Point) {
	size := cell * domain.BoardSize
	line := image.NewUniform(gridColor)
	for i := 0; i <= domain.BoardSize; i++ {
		off := i * cell
		clr := line
		if i == 1 || i == domain.BoardSize-1 {
			// the outermost rows and columns can only hold a footprint's edge
			clr = image.NewUniform(borderColor)
		}
		draw.Draw(img, image.Rect(origin.X+off, origin.Y, origin.X+off+1, origin.Y+size), clr, image.Point{}, draw.Src)
		draw.Draw(img, image.Rect(origin.X, origin.Y+off, origin.X+size, origin.Y+off+1), clr, image.Point{}, draw.Src)
	}
}

func drawFootprint(img *image.RGBA, f domain.Footprint, cell int, origin image.Point, clr color.Color) {
	src := image.NewUniform(clr)
	for _, c := range f {
		if !c.InBounds() {
			continue
		}
		draw.Draw(img, cellRect(c, cell, origin), src, image.Point{}, draw.Over)
	}
}

func drawStones(img *image.RGBA, b domain.Board, cell int, origin image.Point) error {
	inset := cell / stoneInsetFrac
	size := cell - 2*inset
	if size <= 0 {
		size, inset = cell, 0
	}
	for r := 0; r < domain.BoardSize; r++ {
		for c := 0; c < domain.BoardSize; c++ {
			v := b[r][c]
			if v == domain.Empty {
				continue
			}
			stone, err := renderStoneImage(v, size)
			if err != nil {
				return err
			}
			rect := cellRect(domain.Coord{Row: r, Col: c}, cell, origin).Inset(inset)
			draw.Draw(img, rect, stone, image.Point{}, draw.Over)
		}
	}
	return nil
}

func drawLabels(img *image.RGBA, cell int, origin image.Point) {
	face := basicfont.Face7x13
	drawer := &font.Drawer{Dst: img, Src: image.NewUniform(labelColor), Face: face}
	ascent := face.Metrics().Ascent.Ceil()
	size := cell * domain.BoardSize

	for i := 0; i < domain.BoardSize; i++ {
		center := i*cell + cell/2
		file := string(rune('a' + i))
		drawCenteredText(drawer, file, origin.X+center, origin.Y-cell/2+ascent/2)
		drawCenteredText(drawer, file, origin.X+center, origin.Y+size+cell/2+ascent/2)

		rank := strconv.Itoa(domain.BoardSize - i)
		drawCenteredText(drawer, rank, origin.X-cell/2, origin.Y+center+ascent/2)
		drawCenteredText(drawer, rank, origin.X+size+cell/2, origin.Y+center+ascent/2)
	}
}

func drawCenteredText(drawer *font.Drawer, text string, centerX, baseline int) {
	width := drawer.MeasureString(text).Ceil()
	drawer.Dot = fixed.P(centerX-width/2, baseline)
	drawer.DrawString(text)
}
