package session

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/tronweb/gameserver/game/engine"
	"github.com/tronweb/gameserver/game/service"
)

func newTestSession(group string, connIDs ...string) *service.Session {
	players := make([]engine.Player, len(connIDs))
	for i, id := range connIDs {
		players[i] = engine.Player{ConnectionID: id, Name: "player-" + id}
	}
	return &service.Session{
		Group:     group,
		State:     service.StatePlaying,
		CreatedAt: time.Now(),
		Players:   players,
		Board:     engine.Board{Cols: 25, Rows: 25},
	}
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	registry := NewRegistry()
	sess := newTestSession("group-1", "conn-a", "conn-b")

	registry.Register(sess)

	for _, player := range sess.Players {
		got, ok := registry.Lookup(player.ConnectionID)
		if !ok {
			t.Fatalf("Expected lookup for %s to succeed", player.ConnectionID)
		}
		if got != sess {
			t.Errorf("Expected lookup for %s to return the same session instance", player.ConnectionID)
		}
	}

	if registry.Len() != 2 {
		t.Errorf("Expected 2 registered connections, got %d", registry.Len())
	}
}

func TestRegistry_LookupUnknownConnection(t *testing.T) {
	registry := NewRegistry()

	if _, ok := registry.Lookup("no-such-conn"); ok {
		t.Error("Expected lookup for unknown connection to fail")
	}
}

func TestRegistry_Evict(t *testing.T) {
	registry := NewRegistry()
	sess := newTestSession("group-1", "conn-a", "conn-b")
	registry.Register(sess)

	removed := registry.Evict(sess)

	if len(removed) != 2 {
		t.Fatalf("Expected 2 removed connection IDs, got %d", len(removed))
	}
	if sess.State != service.StatePlaying {
		t.Errorf("Expected eviction to leave the session struct untouched, state is %s", sess.State)
	}
	for _, player := range sess.Players {
		if _, ok := registry.Lookup(player.ConnectionID); ok {
			t.Errorf("Expected %s to be evicted", player.ConnectionID)
		}
	}
}

func TestRegistry_EvictIdempotent(t *testing.T) {
	registry := NewRegistry()
	sess := newTestSession("group-1", "conn-a", "conn-b")
	registry.Register(sess)

	first := registry.Evict(sess)
	second := registry.Evict(sess)

	if len(first) != 2 {
		t.Errorf("Expected first eviction to remove 2 connections, got %d", len(first))
	}
	if len(second) != 0 {
		t.Errorf("Expected second eviction to remove nothing, got %d", len(second))
	}
}

func TestRegistry_EvictSkipsReplacedMapping(t *testing.T) {
	registry := NewRegistry()
	old := newTestSession("group-old", "conn-a", "conn-b")
	registry.Register(old)

	// conn-b has since been mapped to a newer session.
	current := newTestSession("group-new", "conn-b", "conn-c")
	registry.Register(current)

	removed := registry.Evict(old)

	if len(removed) != 1 || removed[0] != "conn-a" {
		t.Errorf("Expected eviction of old session to remove only conn-a, got %v", removed)
	}
	if got, ok := registry.Lookup("conn-b"); !ok || got != current {
		t.Error("Expected conn-b to still map to its current session")
	}
}

func TestRegistry_Sessions(t *testing.T) {
	registry := NewRegistry()
	sess1 := newTestSession("group-1", "conn-a", "conn-b")
	sess2 := newTestSession("group-2", "conn-c", "conn-d")
	registry.Register(sess1)
	registry.Register(sess2)

	sessions := registry.Sessions()
	if len(sessions) != 2 {
		t.Fatalf("Expected 2 distinct sessions, got %d", len(sessions))
	}

	found := make(map[string]bool)
	for _, s := range sessions {
		found[s.Group] = true
	}
	if !found["group-1"] || !found["group-2"] {
		t.Errorf("Expected both groups in session list, got %v", found)
	}
}

func TestRegistry_AtomicVisibility(t *testing.T) {
	registry := NewRegistry()
	sess := newTestSession("group-1", "conn-a", "conn-b")

	done := make(chan struct{})
	go func() {
		defer close(done)
		// A concurrent reader must never observe one member without the
		// other.
		for i := 0; i < 1000; i++ {
			_, okA := registry.Lookup("conn-a")
			_, okB := registry.Lookup("conn-b")
			if okA && !okB {
				// conn-a registered first in Players order, so seeing it
				// without conn-b is only possible between the two map
				// writes, which share one critical section.
				t.Error("Observed partially registered session")
				return
			}
		}
	}()

	registry.Register(sess)
	<-done
}

func TestRegistry_ConcurrentRegisterEvict(t *testing.T) {
	registry := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			sess := newTestSession(
				fmt.Sprintf("group-%d", n),
				fmt.Sprintf("conn-%d-a", n),
				fmt.Sprintf("conn-%d-b", n),
			)
			registry.Register(sess)
			removed := registry.Evict(sess)
			if len(removed) != 2 {
				t.Errorf("Session %d: expected 2 removals, got %d", n, len(removed))
			}
		}(i)
	}

	wg.Wait()

	if registry.Len() != 0 {
		t.Errorf("Expected empty registry, got %d connections", registry.Len())
	}
}
