package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/vancomm/sudoku-server/internal/sudoku"
)

// Maps known commands to number of arguments:
//
//	s row col value  play a value (0 erases)
//	r                reset to the bare puzzle
//	!                run the solver over the current state
var commandNargs = map[string]int{
	"s": 3,
	"r": 0,
	"!": 0,
}

func parseCellArgs(args []string) (row int, column int, value uint8, err error) {
	if row, err = strconv.Atoi(args[0]); err != nil {
		err = errors.New("row must be an int")
		return
	}
	if column, err = strconv.Atoi(args[1]); err != nil {
		err = errors.New("col must be an int")
		return
	}
	v, err := strconv.Atoi(args[2])
	if err != nil || v < 0 {
		err = errors.New("value must be a non-negative int")
		return
	}
	value = uint8(v)
	return
}

func (g GameHandler) executeCommand(game *sudoku.GameState, c string) error {
	parts := strings.Split(c, " ")
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return errors.New("unknown command")
	}
	if nargs != len(parts)-1 {
		return errors.New("invalid number of arguments")
	}
	switch parts[0] {
	case "s":
		row, column, value, err := parseCellArgs(parts[1:])
		if err != nil {
			return err
		}
		if !game.ValidateCell(row, column) {
			return errors.New("invalid cell coordinates")
		}
		return game.SetCell(row, column, value)
	case "r":
		game.Reset()
		return nil
	case "!":
		return game.Solve(g.rnd)
	}
	return errors.New("invalid command")
}
