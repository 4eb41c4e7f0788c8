package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/tronweb/gameserver/game/config"
	"github.com/tronweb/gameserver/game/engine"
	"github.com/tronweb/gameserver/game/matchmaking"
	"github.com/tronweb/gameserver/validate"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	queue       PendingQueue
	registry    SessionRegistry
	broadcaster Broadcaster
	settings    *config.Settings
}

// NewGameService creates a new game service instance
func NewGameService(queue PendingQueue, registry SessionRegistry, broadcaster Broadcaster, settings *config.Settings) GameService {
	if settings == nil {
		settings = config.Default()
	}
	return &gameServiceImpl{
		queue:       queue,
		registry:    registry,
		broadcaster: broadcaster,
		settings:    settings,
	}
}

// FindGame pairs the connection with a waiting player requesting the same
// board shape, or stores it to wait for one. The caller hears nothing until
// a pair forms; an unmatched request simply waits.
func (s *gameServiceImpl) FindGame(ctx context.Context, connectionID string, req FindGameRequest) error {
	if err := validate.PlayerName(req.PlayerName, s.settings); err != nil {
		return fmt.Errorf("rejecting findGame from %s: %w", connectionID, err)
	}
	if err := validate.Board(req.Board, s.settings); err != nil {
		return fmt.Errorf("rejecting findGame from %s: %w", connectionID, err)
	}

	player := engine.Player{ConnectionID: connectionID, Name: req.PlayerName}
	matched, ok := s.queue.TryFind(matchmaking.PendingGame{
		Player: player,
		Board:  req.Board,
	})
	if !ok {
		log.Printf("Player %s waiting for opponent on %s board", req.PlayerName, req.Board)
		return nil
	}

	sess := &Session{
		Group:     uuid.NewString(),
		State:     StatePlaying,
		CreatedAt: time.Now(),
		Players:   []engine.Player{player, matched.Player},
		Board:     req.Board,
	}

	s.registry.Register(sess)

	for _, p := range sess.Players {
		s.broadcaster.AddToGroup(sess.Group, p.ConnectionID)
	}

	log.Printf("Game %s started on %s board: %s vs %s",
		sess.Group, sess.Board, player.Name, matched.Player.Name)

	return s.startGame(sess)
}

// startGame computes spawn positions and privately tells each member their
// own position plus every opponent's name and position.
func (s *gameServiceImpl) startGame(sess *Session) error {
	positions := engine.SpawnPositions(len(sess.Players), sess.Board)

	for i, player := range sess.Players {
		msg := GameStartedMessage{
			Position: positions[i],
			Enemies:  make([]EnemyPlayer, 0, len(sess.Players)-1),
		}

		for j, other := range sess.Players {
			if i == j {
				continue
			}
			msg.Enemies = append(msg.Enemies, EnemyPlayer{
				Name:     other.Name,
				Position: positions[j],
			})
		}

		if err := s.broadcaster.SendToConnection(player.ConnectionID, EventGameStarted, msg); err != nil {
			return fmt.Errorf("failed to send gameStarted to %s: %w", player.ConnectionID, err)
		}
	}

	return nil
}

// DirectionChanged relays the sender's new heading to every other member of
// its session. Events from connections with no active session are dropped.
func (s *gameServiceImpl) DirectionChanged(ctx context.Context, connectionID string, req DirectionChangedRequest) error {
	sess, ok := s.registry.Lookup(connectionID)
	if !ok {
		// Not currently in a game; stale events are not an error.
		return nil
	}

	playerName, ok := sess.PlayerName(connectionID)
	if !ok {
		return nil
	}

	return s.broadcaster.BroadcastToGroupExcept(sess.Group, connectionID, EventPlayerDirectionChanged,
		PlayerDirectionChangedMessage{
			Direction:  req.Direction,
			PlayerName: playerName,
		})
}

// GameFinished tears the session down and forwards the result payload to the
// other members. The registry eviction happens before any notification, so a
// concurrent finish from the peer observes the session already gone and
// becomes a no-op.
func (s *gameServiceImpl) GameFinished(ctx context.Context, connectionID string, payload json.RawMessage) error {
	sess, ok := s.registry.Lookup(connectionID)
	if !ok {
		return nil
	}

	removed := s.registry.Evict(sess)
	if len(removed) == 0 {
		// Lost the race against another finish.
		return nil
	}

	log.Printf("Game %s finished, reported by %s", sess.Group, connectionID)

	err := s.broadcaster.BroadcastToGroupExcept(sess.Group, connectionID, EventGameFinished, payload)

	for _, id := range removed {
		s.broadcaster.RemoveFromGroup(sess.Group, id)
	}

	return err
}

// Disconnected cleans up after an abruptly closed connection: any pending
// queue entry is dropped, and an active session is evicted with the
// remaining members told the player left.
func (s *gameServiceImpl) Disconnected(ctx context.Context, connectionID string) error {
	if s.queue.Remove(connectionID) {
		log.Printf("Removed disconnected player %s from matchmaking queue", connectionID)
	}

	sess, ok := s.registry.Lookup(connectionID)
	if !ok {
		return nil
	}

	removed := s.registry.Evict(sess)
	if len(removed) == 0 {
		return nil
	}

	playerName, _ := sess.PlayerName(connectionID)
	log.Printf("Game %s abandoned: %s disconnected", sess.Group, playerName)

	err := s.broadcaster.BroadcastToGroupExcept(sess.Group, connectionID, EventPlayerLeft,
		PlayerLeftMessage{PlayerName: playerName})

	for _, id := range removed {
		s.broadcaster.RemoveFromGroup(sess.Group, id)
	}

	return err
}

// ListGames summarizes the active sessions for monitoring surfaces.
func (s *gameServiceImpl) ListGames(ctx context.Context) []*GameInfo {
	sessions := s.registry.Sessions()

	games := make([]*GameInfo, 0, len(sessions))
	for _, sess := range sessions {
		names := make([]string, 0, len(sess.Players))
		for _, p := range sess.Players {
			names = append(names, p.Name)
		}
		games = append(games, &GameInfo{
			Group:     sess.Group,
			State:     sess.State,
			Board:     sess.Board,
			Players:   names,
			CreatedAt: sess.CreatedAt,
		})
	}

	return games
}

// Stats returns a point-in-time load snapshot.
func (s *gameServiceImpl) Stats(ctx context.Context) *ServerStats {
	return &ServerStats{
		ActiveGames:    len(s.registry.Sessions()),
		WaitingPlayers: s.queue.Len(),
	}
}
