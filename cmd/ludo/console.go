// console.go - Interactive terminal play
package main

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/ludo-go/internal/errors"
	"github.com/lgbarn/ludo-go/internal/game"
	"github.com/lgbarn/ludo-go/internal/ludo"
	"github.com/lgbarn/ludo-go/internal/render"
)

// errQuit is returned when the user types q or quit at any prompt.
var errQuit = stderrors.New("quit")

// console reads answers line by line and writes the game to out.
type console struct {
	in     *bufio.Reader
	out    io.Writer
	colour bool
	names  []string // Seat names for the board layout
}

func newConsole(in io.Reader, out io.Writer, colour bool) *console {
	return &console{in: bufio.NewReader(in), out: out, colour: colour}
}

func (c *console) paint(attrs ...color.Attribute) *color.Color {
	p := color.New(attrs...)
	if c.colour {
		p.EnableColor()
	} else {
		p.DisableColor()
	}
	return p
}

func (c *console) playerName(p game.Player) string {
	return render.PlayerColour(p.ID, c.colour).Add(color.Bold).Sprint(p.Name)
}

// readLine returns the next trimmed line. End of input with nothing read
// is errors.ErrInputClosed.
func (c *console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			return "", errors.ErrInputClosed
		}
		return "", err
	}
	line = strings.TrimSpace(line)
	if strings.EqualFold(line, "q") || strings.EqualFold(line, "quit") {
		return "", errQuit
	}
	return line, nil
}

func (c *console) welcome() {
	fmt.Fprintln(c.out, c.paint(color.FgGreen, color.Bold).Sprint("Welcome to Ludo Game!"))
	fmt.Fprintln(c.out, "Get all your pieces from the yard to the finish line.")
	fmt.Fprintln(c.out, "Roll a 6 to move a piece out of the yard.")
	fmt.Fprintln(c.out, "Capture opponent pieces by landing on their space.")
	fmt.Fprintln(c.out, "Roll a 6 or capture to get an extra turn.")
	fmt.Fprintln(c.out)
}

func (c *console) askPlayerCount() (int, error) {
	for {
		fmt.Fprintf(c.out, "Enter the number of players (%d-%d): ", ludo.MinPlayers, ludo.MaxPlayers)
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil && n >= ludo.MinPlayers && n <= ludo.MaxPlayers {
			return n, nil
		}
		fmt.Fprintf(c.out, "Please enter a number between %d and %d.\n", ludo.MinPlayers, ludo.MaxPlayers)
	}
}

// askName prompts for a seat's name; an empty answer keeps the default.
func (c *console) askName(seat ludo.PlayerID) (string, error) {
	fmt.Fprintf(c.out, "Enter name for %s: ", game.DefaultName(seat))
	line, err := c.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return game.DefaultName(seat), nil
	}
	return line, nil
}

func (c *console) showBoard(b *ludo.Board) {
	fmt.Fprintln(c.out, render.Text(b, render.TextOptions{Colour: c.colour, Names: c.names}))
}

func (c *console) waitForRoll() error {
	fmt.Fprint(c.out, "Press Enter to roll the dice...")
	_, err := c.readLine()
	return err
}

func (c *console) showTurn(p game.Player) {
	fmt.Fprintf(c.out, "\n%s's turn\n", c.playerName(p))
}

func (c *console) showRoll(roll int) {
	fmt.Fprintf(c.out, "You rolled a %s!\n", c.paint(color.FgYellow, color.Bold).Sprint(roll))
}

// ChoosePiece asks the player to pick one of the selectable pieces.
func (c *console) ChoosePiece(view game.TurnView) (int, error) {
	fmt.Fprintln(c.out, "Choose a piece to move:")
	for i, piece := range view.Choices {
		fmt.Fprintf(c.out, "%d. Piece %d\n", i+1, piece)
	}
	for {
		fmt.Fprintf(c.out, "Enter choice (1-%d): ", len(view.Choices))
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		choice, err := strconv.Atoi(line)
		if err == nil && choice >= 1 && choice <= len(view.Choices) {
			return view.Choices[choice-1], nil
		}
		fmt.Fprintln(c.out, "Invalid choice. Please try again.")
	}
}

// showReport prints what a turn did.
func (c *console) showReport(rep game.TurnReport) {
	switch rep.Outcome {
	case game.TurnSkipped:
		fmt.Fprintln(c.out, c.paint(color.FgYellow).Sprint("No valid moves available. Turn skipped."))
		return
	case game.TurnForfeited:
		fmt.Fprintln(c.out, c.paint(color.FgYellow).Sprint("Too many sixes in a row. Turn forfeited."))
		return
	}

	var msg string
	switch rep.Result {
	case ludo.Moved:
		msg = "moved successfully"
	case ludo.Captured:
		msg = "captured an opponent's piece"
		if len(rep.Captures) > 1 {
			msg = fmt.Sprintf("captured %d opponent pieces", len(rep.Captures))
		}
	case ludo.Finished:
		msg = "reached the finish"
	default:
		msg = "couldn't move (invalid move)"
	}
	fmt.Fprintf(c.out, "%s's piece %d %s\n", rep.Player.Name, rep.Piece, msg)

	if rep.ExtraTurn {
		fmt.Fprintln(c.out, c.paint(color.FgGreen).Sprint("You get an extra turn!"))
	}
}

func (c *console) gameOver(winner game.Player) {
	fmt.Fprintf(c.out, "\n%s\n", c.paint(color.Bold).Sprint("=== GAME OVER ==="))
	congrats := c.paint(color.FgGreen, color.Bold)
	fmt.Fprintf(c.out, "%s %s %s\n", congrats.Sprint("Congratulations!"), c.playerName(winner), congrats.Sprint("has won the game!"))
}

func (c *console) goodbye() {
	fmt.Fprintln(c.out, "Quitting game. Goodbye!")
}
