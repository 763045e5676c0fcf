package ludo

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/ludo-go/internal/errors"
)

// place relocates a piece directly, bypassing the move rules.
func place(t *testing.T, b *Board, player PlayerID, piece int, loc Location) {
	t.Helper()
	from := b.Locate(player, piece)
	b.commit(PieceRef{player, piece}, MovePreview{From: from, To: loc, Result: Moved})
}

// checkInvariants verifies that every piece has exactly one location, that
// the cell indexes agree with it, and that no home slot is shared.
func checkInvariants(t *testing.T, b *Board) {
	t.Helper()
	onTrack := 0
	for pos := 0; pos < MainTrackSpaces; pos++ {
		for _, ref := range b.track[pos] {
			onTrack++
			if got := b.Locate(ref.Player, ref.Piece); got != MainTrack(pos) {
				t.Errorf("%v indexed on cell %d but located at %v", ref, pos, got)
			}
		}
	}

	counts := map[LocationKind]int{}
	for p := 0; p < b.PlayerCount(); p++ {
		seen := map[int]bool{}
		for i := 0; i < PiecesPerPlayer; i++ {
			loc := b.Locate(PlayerID(p), i)
			counts[loc.Kind]++
			if loc.Kind == InHomeTrack {
				if seen[loc.Pos] {
					t.Errorf("player %d has two pieces on home slot %d", p, loc.Pos)
				}
				seen[loc.Pos] = true
			}
		}
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	if want := PiecesPerPlayer * b.PlayerCount(); total != want {
		t.Errorf("located %d pieces; want %d", total, want)
	}
	if counts[OnMainTrack] != onTrack {
		t.Errorf("%d pieces located on track but %d indexed", counts[OnMainTrack], onTrack)
	}
}

func TestNewBoard(t *testing.T) {
	tests := []struct {
		players    int
		wantStarts []int
	}{
		{2, []int{0, 26}},
		{3, []int{0, 17, 34}},
		{4, []int{0, 13, 26, 39}},
	}

	for _, tt := range tests {
		b, err := NewBoard(tt.players)
		if err != nil {
			t.Fatalf("NewBoard(%d) error: %v", tt.players, err)
		}
		if b.PlayerCount() != tt.players {
			t.Errorf("PlayerCount() = %d; want %d", b.PlayerCount(), tt.players)
		}
		for p, want := range tt.wantStarts {
			if got := b.StartPosition(PlayerID(p)); got != want {
				t.Errorf("NewBoard(%d): start(%d) = %d; want %d", tt.players, p, got, want)
			}
		}

		for p := 0; p < tt.players; p++ {
			for i := 0; i < PiecesPerPlayer; i++ {
				if !b.IsInYard(PlayerID(p), i) {
					t.Errorf("piece (%d,%d) not in yard at start", p, i)
				}
				if b.IsFinished(PlayerID(p), i) {
					t.Errorf("piece (%d,%d) finished at start", p, i)
				}
			}
			if diff := cmp.Diff([HomeSpaces]int{-1, -1, -1, -1, -1, -1}, b.HomeSlots(PlayerID(p))); diff != "" {
				t.Errorf("HomeSlots(%d) mismatch (-want +got):\n%s", p, diff)
			}
			if b.HasWon(PlayerID(p)) {
				t.Errorf("HasWon(%d) = true on a new board", p)
			}
		}
		checkInvariants(t, b)
	}
}

func TestNewBoard_InvalidPlayerCount(t *testing.T) {
	for _, n := range []int{-1, 0, 1, 5, 52} {
		b, err := NewBoard(n)
		if err == nil {
			t.Errorf("NewBoard(%d) = %v; want error", n, b)
			continue
		}
		if !stderrors.Is(err, errors.ErrInvalidConfig) {
			t.Errorf("NewBoard(%d) error = %v; want ErrInvalidConfig", n, err)
		}
	}
}

func TestMustNewBoard_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNewBoard(1) did not panic")
		}
	}()
	MustNewBoard(1)
}

func TestLocate(t *testing.T) {
	b := MustNewBoard(4)
	place(t, b, 0, 1, MainTrack(7))
	place(t, b, 1, 2, HomeTrack(3))
	place(t, b, 2, 3, Finish())

	tests := []struct {
		player PlayerID
		piece  int
		want   Location
	}{
		{0, 0, Yard()},
		{0, 1, MainTrack(7)},
		{1, 2, HomeTrack(3)},
		{2, 3, Finish()},
		{3, 0, Yard()},
	}
	for _, tt := range tests {
		if got := b.Locate(tt.player, tt.piece); got != tt.want {
			t.Errorf("Locate(%d, %d) = %v; want %v", tt.player, tt.piece, got, tt.want)
		}
	}
	checkInvariants(t, b)
}

func TestLocate_CorruptStatePanics(t *testing.T) {
	tests := []struct {
		name   string
		tamper func(b *Board)
	}{
		{"missing from track cell", func(b *Board) { b.track[5] = nil }},
		{"missing from home slot", func(b *Board) { b.home[1][2] = NoPiece }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := MustNewBoard(2)
			place(t, b, 0, 0, MainTrack(5))
			place(t, b, 1, 0, HomeTrack(2))
			tt.tamper(b)

			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok {
					t.Fatalf("recovered %v; want a corrupt state error", r)
				}
				var cse *errors.CorruptStateError
				if !stderrors.As(err, &cse) || !stderrors.Is(err, errors.ErrCorruptState) {
					t.Errorf("recovered %v; want *CorruptStateError", err)
				}
			}()
			b.Locate(0, 0)
			b.Locate(1, 0)
		})
	}
}

func TestHasWon(t *testing.T) {
	b := MustNewBoard(2)
	for i := 0; i < PiecesPerPlayer-1; i++ {
		place(t, b, 1, i, Finish())
	}
	if b.HasWon(1) {
		t.Error("HasWon(1) = true with three pieces finished")
	}
	place(t, b, 1, 3, Finish())
	if !b.HasWon(1) {
		t.Error("HasWon(1) = false with all pieces finished")
	}
	if b.HasWon(0) {
		t.Error("HasWon(0) = true; player 0 has not finished any piece")
	}
}

func TestRendererViews(t *testing.T) {
	b := MustNewBoard(2)
	place(t, b, 0, 0, MainTrack(10))
	place(t, b, 1, 2, MainTrack(10))
	place(t, b, 0, 1, HomeTrack(4))
	place(t, b, 0, 3, Finish())

	if diff := cmp.Diff([]PieceRef{{0, 0}, {1, 2}}, b.Cell(10)); diff != "" {
		t.Errorf("Cell(10) mismatch (-want +got):\n%s", diff)
	}
	if got := b.Cell(11); got != nil {
		t.Errorf("Cell(11) = %v; want nil", got)
	}
	if diff := cmp.Diff([]int{2}, b.YardPieces(0)); diff != "" {
		t.Errorf("YardPieces(0) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 1, 3}, b.YardPieces(1)); diff != "" {
		t.Errorf("YardPieces(1) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{3}, b.FinishedPieces(0)); diff != "" {
		t.Errorf("FinishedPieces(0) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([HomeSpaces]int{-1, -1, -1, -1, 1, -1}, b.HomeSlots(0)); diff != "" {
		t.Errorf("HomeSlots(0) mismatch (-want +got):\n%s", diff)
	}
	want := [PiecesPerPlayer]Location{MainTrack(10), HomeTrack(4), Yard(), Finish()}
	if diff := cmp.Diff(want, b.Pieces(0)); diff != "" {
		t.Errorf("Pieces(0) mismatch (-want +got):\n%s", diff)
	}

	t.Run("views are copies", func(t *testing.T) {
		cell := b.Cell(10)
		cell[0] = PieceRef{1, 3}
		slots := b.HomeSlots(0)
		slots[4] = NoPiece
		if b.Locate(0, 0) != MainTrack(10) || b.Locate(0, 1) != HomeTrack(4) {
			t.Error("mutating a view changed the board")
		}
		checkInvariants(t, b)
	})
}

func TestCopy(t *testing.T) {
	b := MustNewBoard(2)
	place(t, b, 0, 0, MainTrack(20))
	place(t, b, 1, 0, MainTrack(26))

	c := b.Copy()
	if _, err := c.MovePiece(0, 0, 6); err != nil {
		t.Fatalf("MovePiece on copy: %v", err)
	}

	if got := b.Locate(0, 0); got != MainTrack(20) {
		t.Errorf("original (0,0) = %v; want MainTrack(20)", got)
	}
	if got := b.Locate(1, 0); got != MainTrack(26) {
		t.Errorf("original (1,0) = %v; want MainTrack(26)", got)
	}
	if got := c.Locate(1, 0); got != Yard() {
		t.Errorf("copy (1,0) = %v; want Yard", got)
	}
	checkInvariants(t, b)
	checkInvariants(t, c)
}

func TestLocationString(t *testing.T) {
	tests := []struct {
		loc  Location
		want string
	}{
		{Yard(), "Yard"},
		{MainTrack(12), "MainTrack(12)"},
		{HomeTrack(3), "HomeTrack(3)"},
		{Finish(), "Finished"},
	}
	for _, tt := range tests {
		if got := tt.loc.String(); got != tt.want {
			t.Errorf("String() = %q; want %q", got, tt.want)
		}
	}
}
