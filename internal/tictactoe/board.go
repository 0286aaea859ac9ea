package tictactoe

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-rest/internal/apperror"
)

// Size is the length of every row and column.
const Size = 3

type Cell string

const (
	Empty Cell = ""
	X     Cell = "X"
	O     Cell = "O"
)

var ErrInvalidMark = errors.New("invalid mark")

// Board is a 3x3 grid addressed as board[row][col].
type Board [Size][Size]Cell

func NewBoard() Board {
	return Board{}
}

// IsCellEmpty - reports whether the cell at row, col holds no mark.
func IsCellEmpty(board *Board, row, col int) (bool, error) {
	if err := validateCoordinate(row, col); err != nil {
		return false, err
	}

	return board[row][col] == Empty, nil
}

// PlaceMark - writes mark into an empty cell. It returns false and leaves the board untouched when the cell is occupied.
func PlaceMark(board *Board, row, col int, mark Cell) (bool, error) {
	if mark != X && mark != O {
		return false, fmt.Errorf("%w: %q", ErrInvalidMark, mark)
	}

	empty, err := IsCellEmpty(board, row, col)
	if err != nil {
		return false, err
	}

	if !empty {
		return false, nil
	}

	board[row][col] = mark

	return true, nil
}

// NextMark - the mark that moves next: X opens, marks then alternate.
func NextMark(board *Board) Cell {
	var xs, os int
	for _, row := range board {
		for _, cell := range row {
			switch cell {
			case X:
				xs++
			case O:
				os++
			}
		}
	}

	if xs > os {
		return O
	}
	return X
}

func (that *Board) String() string {
	var out []byte
	for i, row := range that {
		for j, cell := range row {
			if cell == Empty {
				out = append(out, '.')
			} else {
				out = append(out, string(cell)...)
			}
			if j < Size-1 {
				out = append(out, ' ')
			}
		}
		if i < Size-1 {
			out = append(out, '\n')
		}
	}
	return string(out)
}

func validateCoordinate(row, col int) error {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidCoordinate, row, col)
	}
	return nil
}
