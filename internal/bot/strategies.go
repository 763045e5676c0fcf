package bot

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/lgbarn/ludo-go/internal/game"
	"github.com/lgbarn/ludo-go/internal/ludo"
)

// First always moves the lowest-numbered selectable piece.
type First struct{}

// ChoosePiece implements game.Chooser.
func (First) ChoosePiece(view game.TurnView) (int, error) {
	return view.Choices[0], nil
}

// Random picks uniformly among the selectable pieces.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandom creates a Random bot. A zero seed picks a time-based one.
func NewRandom(seed uint64) *Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Random{rng: rand.New(rand.NewPCG(seed, seed>>1|1))}
}

// ChoosePiece implements game.Chooser.
func (r *Random) ChoosePiece(view game.TurnView) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return view.Choices[r.rng.IntN(len(view.Choices))], nil
}

// Aggressive prefers, in order: capturing, finishing, entering the home
// stretch, leaving the yard, then the move that leaves the piece furthest
// along. Moves the board would reject are only chosen when nothing else is
// selectable. Ties go to the lowest piece index.
type Aggressive struct{}

// ChoosePiece implements game.Chooser.
func (Aggressive) ChoosePiece(view game.TurnView) (int, error) {
	best, bestScore := view.Choices[0], -1
	for _, piece := range view.Choices {
		if s := score(view.Board, view.Player.ID, piece, view.Roll); s > bestScore {
			best, bestScore = piece, s
		}
	}
	return best, nil
}

// Score tiers, each above the largest progress value.
const (
	tierProgress = 100 * iota
	tierLeaveYard
	tierEnterHome
	tierFinish
	tierCapture
)

func score(b *ludo.Board, player ludo.PlayerID, piece, roll int) int {
	p, err := b.Preview(player, piece, roll)
	if err != nil || p.Result == ludo.InvalidMove {
		return 0
	}
	switch {
	case p.Result == ludo.Captured:
		return tierCapture + len(p.Captures)
	case p.Result == ludo.Finished:
		return tierFinish
	case p.From.Kind == ludo.OnMainTrack && p.To.Kind == ludo.InHomeTrack:
		return tierEnterHome + p.To.Pos
	case p.From.Kind == ludo.InYard:
		return tierLeaveYard
	default:
		return tierProgress + 1 + progressAt(b, player, p.To)
	}
}

// progressAt mirrors ludo.Board.Progress for a location that is not yet
// occupied.
func progressAt(b *ludo.Board, player ludo.PlayerID, loc ludo.Location) int {
	switch loc.Kind {
	case ludo.OnMainTrack:
		return b.DistanceFromStart(player, loc.Pos) + 1
	case ludo.InHomeTrack:
		return ludo.HomeEntryDistance + 2 + loc.Pos
	default:
		return 0
	}
}
