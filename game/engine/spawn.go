package engine

// SpawnPositions computes the starting position for each player in a new
// game. Players are spaced evenly along the bottom row of the board, in
// session member order; the client starts everyone heading up, away from
// the edge.
//
// The result is deterministic for a given player count and board, and the
// slice index corresponds to the session's member index.
func SpawnPositions(playerCount int, board Board) []Position {
	if playerCount <= 0 {
		return nil
	}

	positions := make([]Position, playerCount)
	row := board.Rows - 1
	if row < 0 {
		row = 0
	}

	for i := 0; i < playerCount; i++ {
		col := board.Cols * (i + 1) / (playerCount + 1)
		if col > board.Cols-1 {
			col = board.Cols - 1
		}
		if col < 0 {
			col = 0
		}
		positions[i] = Position{Col: col, Row: row}
	}

	return positions
}
