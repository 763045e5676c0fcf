package render

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/ludo-go/internal/ludo"
	"github.com/lgbarn/ludo-go/internal/testutil"
)

func sampleBoard(t *testing.T) *ludo.Board {
	t.Helper()
	b := testutil.NewBoard(t, 4)
	testutil.Enter(t, b, 0, 1)
	testutil.Walk(t, b, 0, 1, 7)
	testutil.Enter(t, b, 2, 3)
	testutil.Enter(t, b, 1, 0)
	testutil.Walk(t, b, 1, 0, 49) // home slot 2
	testutil.Enter(t, b, 3, 2)
	testutil.FinishAll(t, b, 3)
	return b
}

func TestText_Layout(t *testing.T) {
	b := sampleBoard(t)
	out := Text(b, TextOptions{Names: []string{"Ada"}})

	testutil.AssertContains(t, out, "=== LUDO BOARD ===")
	testutil.AssertContains(t, out, "Main Track:\n[ 0][ 1][ 2][ 3][ 4][ 5][ 6][P01][ 8]")
	testutil.AssertContains(t, out, "[P23]")
	testutil.AssertContains(t, out, "Ada: Yard: 0 2 3 | Home: | Finished: \n")
	testutil.AssertContains(t, out, "Player 1: Yard: 1 2 3 | Home: 2:0 | Finished: \n")
	testutil.AssertContains(t, out, "Player 3: Yard: | Home: | Finished: 0 1 2 3 \n")
	testutil.AssertNotContains(t, out, "\x1b[")

	lines := strings.Split(out, "\n")
	var trackRows int
	for _, l := range lines {
		if strings.HasPrefix(l, "[") {
			trackRows++
			testutil.AssertEqual(t, strings.Count(l, "["), TrackRowWidth, l)
		}
	}
	testutil.AssertEqual(t, trackRows, ludo.MainTrackSpaces/TrackRowWidth)
}

func TestText_Colour(t *testing.T) {
	b := sampleBoard(t)
	out := Text(b, TextOptions{Colour: true})
	testutil.AssertContains(t, out, "\x1b[")
}

func TestPNG(t *testing.T) {
	b := sampleBoard(t)
	data, err := PNG(context.Background(), b, PNGOptions{Size: 320, Names: []string{"Ada", "Bo"}})
	testutil.RequireNoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, img.Bounds().Dx(), 320)
	testutil.AssertEqual(t, img.Bounds().Dy(), 320)

	// The centre is the finish circle, not background.
	r, g, bl, _ := img.At(160, 160).RGBA()
	testutil.AssertFalse(t, r == 0xffff && g == 0xffff && bl == 0xffff, "centre should be drawn")
}

func TestPNG_DefaultSizeAndErrors(t *testing.T) {
	b := testutil.NewBoard(t, 2)
	data, err := PNG(context.Background(), b, PNGOptions{})
	testutil.RequireNoError(t, err)
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, cfg.Width, DefaultPNGSize)

	_, err = PNG(context.Background(), nil, PNGOptions{})
	testutil.AssertTrue(t, err != nil, "nil board should fail")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = PNG(ctx, b, PNGOptions{})
	testutil.AssertErrorIs(t, err, context.Canceled)
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.png")
	testutil.RequireNoError(t, SavePNG(context.Background(), path, testutil.NewBoard(t, 3), PNGOptions{Size: 240}))

	data, err := os.ReadFile(path)
	testutil.RequireNoError(t, err)
	_, err = png.DecodeConfig(bytes.NewReader(data))
	testutil.AssertNoError(t, err)
}

func TestBoardSVG_CountsShapes(t *testing.T) {
	b := testutil.NewBoard(t, 2)
	svg := boardSVG(b)
	// Track cells, home slots, yard slots and pieces, plus ring and finish.
	want := ludo.MainTrackSpaces + 2*ludo.HomeSpaces + 2*2*ludo.PiecesPerPlayer + 2
	testutil.AssertEqual(t, strings.Count(svg, "<circle"), want)
}
