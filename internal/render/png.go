package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/lgbarn/ludo-go/internal/ludo"
)

// DefaultPNGSize is the edge length used when PNGOptions.Size is zero.
const DefaultPNGSize = 640

// The board is laid out in a square viewBox of this many units and scaled
// to the requested size.
const viewBox = 1000.0

const (
	centre       = viewBox / 2
	trackRadius  = 360.0
	cellRadius   = 22.0
	homeStep     = 46.0
	homeRadius   = 18.0
	pieceRadius  = 15.0
	finishRadius = 52.0
	yardDistance = 610.0
	yardHalf     = 85.0
)

var (
	boardFill  = "#f4efe4"
	trackFill  = "#ffffff"
	lineColour = "#8a8170"
	pieceEdge  = "#222222"

	playerFills = [ludo.MaxPlayers]string{"#d32f2f", "#388e3c", "#1976d2", "#fbc02d"}
	playerTints = [ludo.MaxPlayers]string{"#f6c9c9", "#cde6cf", "#c7def5", "#fdedb8"}

	labelColour = color.NRGBA{R: 40, G: 36, B: 30, A: 255}
)

// PNGOptions controls PNG.
type PNGOptions struct {
	Size  int      // Edge length in pixels; DefaultPNGSize when zero
	Names []string // Seat labels drawn under each yard
}

// PNG draws the board as a square image: the main track as a ring of cells
// running clockwise from the top, each home stretch as a spoke towards the
// finish in the middle, and each yard beside its player's start cell.
func PNG(ctx context.Context, b *ludo.Board, opts PNGOptions) ([]byte, error) {
	if b == nil {
		return nil, fmt.Errorf("board is nil")
	}
	size := opts.Size
	if size <= 0 {
		size = DefaultPNGSize
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	icon, err := oksvg.ReadIconStream(strings.NewReader(boardSVG(b)))
	if err != nil {
		return nil, fmt.Errorf("parse board svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	drawLabels(img, b, opts.Names, float64(size)/viewBox)

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

// SavePNG renders the board and writes it to path.
func SavePNG(ctx context.Context, path string, b *ludo.Board, opts PNGOptions) error {
	data, err := PNG(ctx, b, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

// boardSVG builds the board and its pieces as an SVG document in viewBox
// units.
func boardSVG(b *ludo.Board) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%[1]g" height="%[1]g" viewBox="0 0 %[1]g %[1]g">`, viewBox)
	fmt.Fprintf(&sb, `<rect x="0" y="0" width="%[1]g" height="%[1]g" fill="%s"/>`, viewBox, boardFill)
	circle(&sb, centre, centre, trackRadius, "none", lineColour, 2)
	circle(&sb, centre, centre, finishRadius, "#e0dbd0", lineColour, 3)

	starts := make(map[int]int, b.PlayerCount())
	for p := 0; p < b.PlayerCount(); p++ {
		starts[b.StartPosition(ludo.PlayerID(p))] = p
	}
	for pos := 0; pos < ludo.MainTrackSpaces; pos++ {
		x, y := polar(trackRadius, cellAngle(pos))
		fill := trackFill
		if p, ok := starts[pos]; ok {
			fill = playerTints[p]
		}
		circle(&sb, x, y, cellRadius, fill, lineColour, 2)
	}

	for p := 0; p < b.PlayerCount(); p++ {
		player := ludo.PlayerID(p)
		for slot := 0; slot < ludo.HomeSpaces; slot++ {
			x, y := homeCentre(b, player, slot)
			circle(&sb, x, y, homeRadius, playerTints[p], lineColour, 2)
		}
		yx, yy := yardCentre(b, player)
		fmt.Fprintf(&sb, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="18" ry="18" fill="%s" stroke="%s" stroke-width="3"/>`,
			yx-yardHalf, yy-yardHalf, 2*yardHalf, 2*yardHalf, playerTints[p], lineColour)
		for piece := 0; piece < ludo.PiecesPerPlayer; piece++ {
			x, y := yardSlot(yx, yy, piece)
			circle(&sb, x, y, pieceRadius+4, trackFill, lineColour, 2)
		}
	}

	for p := 0; p < b.PlayerCount(); p++ {
		pieces(&sb, b, ludo.PlayerID(p))
	}

	sb.WriteString(`</svg>`)
	return sb.String()
}

func pieces(sb *strings.Builder, b *ludo.Board, player ludo.PlayerID) {
	fill := playerFills[player]
	yx, yy := yardCentre(b, player)
	for piece, loc := range b.Pieces(player) {
		var x, y float64
		switch loc.Kind {
		case ludo.InYard:
			x, y = yardSlot(yx, yy, piece)
		case ludo.OnMainTrack:
			x, y = polar(trackRadius, cellAngle(loc.Pos))
			// Fan out stacked pieces so each stays visible.
			cell := b.Cell(loc.Pos)
			for i, ref := range cell {
				if ref == (ludo.PieceRef{Player: player, Piece: piece}) {
					offset := float64(i) - float64(len(cell)-1)/2
					x += offset * 7
					y += offset * 7
					break
				}
			}
		case ludo.InHomeTrack:
			x, y = homeCentre(b, player, loc.Pos)
		case ludo.AtFinish:
			a := homeAngle(b, player) + (float64(piece)-1.5)*0.35
			x, y = polar(finishRadius*0.55, a)
			circle(sb, x, y, pieceRadius*0.6, fill, pieceEdge, 2)
			continue
		}
		circle(sb, x, y, pieceRadius, fill, pieceEdge, 2)
	}
}

func circle(sb *strings.Builder, cx, cy, r float64, fill, stroke string, width float64) {
	fmt.Fprintf(sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" stroke="%s" stroke-width="%g"/>`,
		cx, cy, r, fill, stroke, width)
}

// cellAngle is the clockwise angle of a main-track cell from twelve o'clock.
func cellAngle(pos int) float64 {
	return float64(pos) * 2 * math.Pi / ludo.MainTrackSpaces
}

func polar(r, angle float64) (float64, float64) {
	return centre + r*math.Sin(angle), centre - r*math.Cos(angle)
}

// homeAngle is the angle of the player's last shared cell, where the home
// stretch branches off.
func homeAngle(b *ludo.Board, player ludo.PlayerID) float64 {
	return cellAngle((b.StartPosition(player) + ludo.HomeEntryDistance) % ludo.MainTrackSpaces)
}

func homeCentre(b *ludo.Board, player ludo.PlayerID, slot int) (float64, float64) {
	return polar(trackRadius-float64(slot+1)*homeStep, homeAngle(b, player))
}

// yardCentre places the yard outside the ring, just behind the start cell.
func yardCentre(b *ludo.Board, player ludo.PlayerID) (float64, float64) {
	a := cellAngle(b.StartPosition(player)) - math.Pi/4
	x, y := polar(yardDistance, a)
	lo, hi := yardHalf+10, viewBox-yardHalf-10
	return math.Max(lo, math.Min(hi, x)), math.Max(lo, math.Min(hi, y))
}

func yardSlot(yx, yy float64, piece int) (float64, float64) {
	const d = 36.0
	dx := float64(piece%2)*2 - 1
	dy := float64(piece/2)*2 - 1
	return yx + dx*d, yy + dy*d
}

// drawLabels writes seat names under the yards and every thirteenth cell
// number inside the ring.
func drawLabels(img *image.RGBA, b *ludo.Board, names []string, scale float64) {
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelColour),
		Face: basicfont.Face7x13,
	}
	text := func(s string, x, y float64) {
		width := drawer.MeasureString(s).Round()
		px := int(x*scale) - width/2
		py := int(y * scale)
		if px < 2 {
			px = 2
		}
		if limit := img.Bounds().Dx() - width - 2; px > limit {
			px = limit
		}
		if limit := img.Bounds().Dy() - 3; py > limit {
			py = limit
		}
		drawer.Dot = fixed.P(px, py)
		drawer.DrawString(s)
	}

	for p := 0; p < b.PlayerCount(); p++ {
		player := ludo.PlayerID(p)
		yx, yy := yardCentre(b, player)
		text(playerLabel(player, names), yx, yy+yardHalf+30)
	}
	for pos := 0; pos < ludo.MainTrackSpaces; pos += TrackRowWidth {
		x, y := polar(trackRadius-cellRadius-24, cellAngle(pos))
		text(fmt.Sprintf("%d", pos), x, y+5)
	}
}
