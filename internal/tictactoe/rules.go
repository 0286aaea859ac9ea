package tictactoe

// lines - every row, column and diagonal as row/col pairs.
var lines = [8][3][2]int{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Winner - the mark holding a complete line, or Empty when there is none.
func Winner(board *Board) Cell {
	for _, line := range lines {
		a := board[line[0][0]][line[0][1]]
		b := board[line[1][0]][line[1][1]]
		c := board[line[2][0]][line[2][1]]
		if a != Empty && a == b && b == c {
			return a
		}
	}

	return Empty
}

// CheckWin - true iff one of the 8 lines is uniformly X or uniformly O.
func CheckWin(board *Board) bool {
	return Winner(board) != Empty
}

func IsBoardFull(board *Board) bool {
	for _, row := range board {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}

	return true
}

func IsGameOver(board *Board) bool {
	return CheckWin(board) || IsBoardFull(board)
}

// SwitchPlayer - toggles between the two player identities.
// A current value matching neither player falls back to playerX.
func SwitchPlayer(current, playerX, playerO string) string {
	if current == playerX {
		return playerO
	}
	return playerX
}
