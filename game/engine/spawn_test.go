package engine

import "testing"

func TestSpawnPositions_TwoPlayers(t *testing.T) {
	board := Board{Cols: 25, Rows: 25}
	positions := SpawnPositions(2, board)

	if len(positions) != 2 {
		t.Fatalf("Expected 2 positions, got %d", len(positions))
	}

	for i, pos := range positions {
		if pos.Row != board.Rows-1 {
			t.Errorf("Position %d: expected bottom row %d, got %d", i, board.Rows-1, pos.Row)
		}
		if pos.Col < 0 || pos.Col >= board.Cols {
			t.Errorf("Position %d: col %d outside board", i, pos.Col)
		}
	}

	if positions[0] == positions[1] {
		t.Error("Expected distinct spawn positions for the two players")
	}
}

func TestSpawnPositions_Deterministic(t *testing.T) {
	board := Board{Cols: 30, Rows: 20}

	first := SpawnPositions(2, board)
	second := SpawnPositions(2, board)

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Position %d differs between calls: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestSpawnPositions_EvenSpread(t *testing.T) {
	board := Board{Cols: 24, Rows: 24}
	positions := SpawnPositions(2, board)

	// Two players split the bottom row into thirds.
	if positions[0].Col != 8 {
		t.Errorf("Expected first player at col 8, got %d", positions[0].Col)
	}
	if positions[1].Col != 16 {
		t.Errorf("Expected second player at col 16, got %d", positions[1].Col)
	}
}

func TestSpawnPositions_NoPlayers(t *testing.T) {
	if got := SpawnPositions(0, Board{Cols: 10, Rows: 10}); got != nil {
		t.Errorf("Expected nil for zero players, got %v", got)
	}
	if got := SpawnPositions(-1, Board{Cols: 10, Rows: 10}); got != nil {
		t.Errorf("Expected nil for negative player count, got %v", got)
	}
}

func TestSpawnPositions_TinyBoard(t *testing.T) {
	positions := SpawnPositions(2, Board{Cols: 1, Rows: 1})

	for i, pos := range positions {
		if pos.Col != 0 || pos.Row != 0 {
			t.Errorf("Position %d: expected (0,0) on 1x1 board, got %v", i, pos)
		}
	}
}
