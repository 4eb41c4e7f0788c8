package matchmaking

import (
	"sync"

	"github.com/tronweb/gameserver/game/engine"
)

// PendingGame is a waiting, unmatched join request. It lives from the join
// call until it is either paired or stored.
type PendingGame struct {
	Player engine.Player
	Board  engine.Board
}

// Queue holds pending join requests awaiting an opponent.
type Queue struct {
	pending []PendingGame
	mu      sync.Mutex
}

// NewQueue creates an empty matchmaking queue.
func NewQueue() *Queue {
	return &Queue{}
}

// TryFind pairs the given join request with the first stored entry whose
// board shape matches exactly, removing it from the queue. If no entry
// matches, the request is stored instead.
//
// Exactly one of the two outcomes happens per call: either a match is
// returned (and the caller owns starting the game), or ok is false and the
// request now waits in the queue.
func (q *Queue) TryFind(game PendingGame) (PendingGame, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, pending := range q.pending {
		if pending.Board == game.Board {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return pending, true
		}
	}

	q.pending = append(q.pending, game)
	return PendingGame{}, false
}

// Remove drops the pending entry owned by the given connection, if any.
// It reports whether an entry was removed. Used when a waiting player
// disconnects before a match is found.
func (q *Queue) Remove(connectionID string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, pending := range q.pending {
		if pending.Player.ConnectionID == connectionID {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return true
		}
	}

	return false
}

// Len returns the number of players currently waiting for an opponent.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
