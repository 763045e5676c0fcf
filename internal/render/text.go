// Package render draws a ludo.Board for people: a coloured text layout for
// terminals and a PNG snapshot.
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/ludo-go/internal/ludo"
)

// TrackRowWidth is the number of main-track cells printed per line.
const TrackRowWidth = 13

var playerAttrs = [ludo.MaxPlayers]color.Attribute{
	color.FgRed,
	color.FgGreen,
	color.FgBlue,
	color.FgYellow,
}

// TextOptions controls Text.
type TextOptions struct {
	// Colour enables ANSI colour regardless of whether the output is a
	// terminal.
	Colour bool

	// Names labels player lines; missing entries print as "Player N" with
	// the zero-based seat number used in cell labels.
	Names []string
}

// PlayerColour returns the terminal colour of a seat.
func PlayerColour(player ludo.PlayerID, enabled bool) *color.Color {
	c := color.New(playerAttrs[int(player)%len(playerAttrs)])
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// Text renders the board as the console layout: the main track in rows of
// TrackRowWidth cells, then one line per player listing yard, home-stretch
// and finished pieces. An occupied cell shows the first piece that arrived.
func Text(b *ludo.Board, opts TextOptions) string {
	var sb strings.Builder

	sb.WriteString("\n=== LUDO BOARD ===\n\n")
	sb.WriteString("Main Track:\n")
	for pos := 0; pos < ludo.MainTrackSpaces; pos++ {
		cell := b.Cell(pos)
		if len(cell) == 0 {
			fmt.Fprintf(&sb, "[%2d]", pos)
		} else {
			ref := cell[0]
			sb.WriteString("[" + PlayerColour(ref.Player, opts.Colour).Sprint(ref.String()) + "]")
		}
		if (pos+1)%TrackRowWidth == 0 {
			sb.WriteByte('\n')
		}
	}

	sb.WriteString("\nPlayers:\n")
	for p := 0; p < b.PlayerCount(); p++ {
		player := ludo.PlayerID(p)
		c := PlayerColour(player, opts.Colour)

		sb.WriteString(c.Sprint(playerLabel(player, opts.Names) + ": "))
		sb.WriteString("Yard: ")
		for _, piece := range b.YardPieces(player) {
			sb.WriteString(c.Sprintf("%d ", piece))
		}
		sb.WriteString("| Home: ")
		for pos, piece := range b.HomeSlots(player) {
			if piece != ludo.NoPiece {
				sb.WriteString(c.Sprintf("%d:%d ", pos, piece))
			}
		}
		sb.WriteString("| Finished: ")
		for _, piece := range b.FinishedPieces(player) {
			sb.WriteString(c.Sprintf("%d ", piece))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func playerLabel(player ludo.PlayerID, names []string) string {
	if int(player) < len(names) && names[player] != "" {
		return names[player]
	}
	return fmt.Sprintf("Player %d", player)
}
