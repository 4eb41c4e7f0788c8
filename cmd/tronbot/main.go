// Command tronbot is a headless websocket client for exercising the duel
// server. It joins matchmaking, announces random direction changes at a fixed
// interval, and concedes after a configurable number of turns. Run two of
// them against a local server to watch a full duel without a browser.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gorilla/websocket"
	"github.com/tronweb/gameserver/game/engine"
	"github.com/tronweb/gameserver/game/service"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "tronbot",
		Usage: "Headless Tron duel client for testing the game server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "server",
				Value: "ws://localhost:8080/ws",
				Usage: "WebSocket URL of the game server",
			},
			&cli.StringFlag{
				Name:  "name",
				Value: fmt.Sprintf("bot-%04d", rand.Intn(10000)),
				Usage: "Player name to join with",
			},
			&cli.IntFlag{
				Name:  "cols",
				Value: 25,
				Usage: "Board columns",
			},
			&cli.IntFlag{
				Name:  "rows",
				Value: 25,
				Usage: "Board rows",
			},
			&cli.DurationFlag{
				Name:  "interval",
				Value: 500 * time.Millisecond,
				Usage: "Time between direction changes",
			},
			&cli.IntFlag{
				Name:  "turns",
				Value: 20,
				Usage: "Number of turns before conceding (0 = play until the opponent finishes)",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

type envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

func run(ctx context.Context, cmd *cli.Command) error {
	serverURL := cmd.String("server")
	name := cmd.String("name")
	board := engine.Board{
		Cols: int(cmd.Int("cols")),
		Rows: int(cmd.Int("rows")),
	}

	log.Printf("Connecting to %s as %q (board %s)", serverURL, name, board)

	conn, _, err := websocket.DefaultDialer.Dial(serverURL, nil)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer conn.Close()

	if err := send(conn, service.EventFindGame, service.FindGameRequest{
		PlayerName: name,
		Board:      board,
	}); err != nil {
		return err
	}
	log.Printf("Waiting for an opponent...")

	// inbound carries server events to the play loop.
	inbound := make(chan envelope)
	readErr := make(chan error, 1)
	go func() {
		defer close(inbound)
		for {
			var msg envelope
			if err := conn.ReadJSON(&msg); err != nil {
				readErr <- err
				return
			}
			select {
			case inbound <- msg:
			case <-ctx.Done():
				return
			}
		}
	}()

	// Wait for the duel to start.
	var started service.GameStartedMessage
	select {
	case msg, ok := <-inbound:
		if !ok {
			return fmt.Errorf("connection closed while waiting: %w", <-readErr)
		}
		if msg.Type != service.EventGameStarted {
			return fmt.Errorf("expected %s, got %s", service.EventGameStarted, msg.Type)
		}
		if err := json.Unmarshal(msg.Data, &started); err != nil {
			return fmt.Errorf("malformed %s: %w", service.EventGameStarted, err)
		}
	case <-ctx.Done():
		return ctx.Err()
	}

	opponent := "?"
	if len(started.Enemies) > 0 {
		opponent = started.Enemies[0].Name
	}
	log.Printf("Duel started against %s, spawning at (%d,%d)",
		opponent, started.Position.Col, started.Position.Row)

	return play(ctx, conn, inbound, readErr, cmd, opponent)
}

// play announces random turns until the turn budget runs out or the opponent
// ends the game.
func play(ctx context.Context, conn *websocket.Conn, inbound <-chan envelope, readErr <-chan error, cmd *cli.Command, opponent string) error {
	ticker := time.NewTicker(cmd.Duration("interval"))
	defer ticker.Stop()

	maxTurns := int(cmd.Int("turns"))
	heading := engine.Up
	turns := 0

	for {
		select {
		case msg, ok := <-inbound:
			if !ok {
				return fmt.Errorf("connection lost: %w", <-readErr)
			}
			switch msg.Type {
			case service.EventPlayerDirectionChanged:
				var turn service.PlayerDirectionChangedMessage
				if err := json.Unmarshal(msg.Data, &turn); err == nil {
					log.Printf("%s turned %s", turn.PlayerName, turn.Direction)
				}
			case service.EventGameFinished:
				log.Printf("Opponent reported the game finished: %s", msg.Data)
				return nil
			case service.EventPlayerLeft:
				log.Printf("Opponent left the game")
				return nil
			}

		case <-ticker.C:
			heading = nextDirection(heading)
			if err := send(conn, service.EventDirectionChanged, service.DirectionChangedRequest{
				Direction: heading,
			}); err != nil {
				return err
			}
			log.Printf("Turned %s", heading)

			turns++
			if maxTurns > 0 && turns >= maxTurns {
				log.Printf("Turn budget spent, conceding to %s", opponent)
				return send(conn, service.EventGameFinished, map[string]string{
					"winner": opponent,
				})
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// nextDirection picks a random new heading. Reversing into yourself is an
// instant loss in Tron, so the opposite of the current heading is excluded.
func nextDirection(current engine.Direction) engine.Direction {
	opposite := map[engine.Direction]engine.Direction{
		engine.Left:  engine.Right,
		engine.Right: engine.Left,
		engine.Up:    engine.Down,
		engine.Down:  engine.Up,
	}

	candidates := make([]engine.Direction, 0, 3)
	for _, d := range []engine.Direction{engine.Left, engine.Up, engine.Right, engine.Down} {
		if d == opposite[current] {
			continue
		}
		candidates = append(candidates, d)
	}

	return candidates[rand.Intn(len(candidates))]
}

func send(conn *websocket.Conn, event string, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return conn.WriteJSON(envelope{Type: event, Data: raw})
}
