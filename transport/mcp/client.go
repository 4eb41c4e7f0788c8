package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/tronweb/gameserver/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Tron Duel Server",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Tron Duel Server - MCP Interface

This is a thin client that proxies all requests to the REST API server.

The server pairs anonymous players into 2-player Tron duels by board shape
and relays gameplay events between them over websockets. Gameplay itself is
not reachable over MCP; these tools observe the live server.

AVAILABLE TOOLS:
- list_games: List active game sessions
- game_details: Get details of one game session
- server_stats: Active games, waiting players, open connections
- protocol_reference: The websocket protocol for writing bot clients`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_games",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"order": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"asc", "desc"},
					"description": "Sort order by creation time (default desc)",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of games to return",
				},
			},
		},
	}, c.handleListGames)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_details",
		Description: "Get details of a specific game session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"group": map[string]interface{}{
					"type":        "string",
					"description": "Group ID of the game session",
				},
			},
			Required: []string{"group"},
		},
	}, c.handleGameDetails)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "server_stats",
		Description: "Get server load: active games, waiting players, open connections",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleServerStats)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "protocol_reference",
		Description: "Get the websocket protocol reference for writing bot clients",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleProtocolReference)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleListGames(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	// Arguments may be omitted entirely; a nil map reads as empty.
	args, _ := request.Params.Arguments.(map[string]interface{})

	params := "?"
	if order, ok := args["order"].(string); ok && order != "" {
		params += fmt.Sprintf("order=%s&", order)
	}
	if limit, ok := args["limit"].(float64); ok {
		params += fmt.Sprintf("limit=%d&", int(limit))
	}

	var response struct {
		Count int                `json:"count"`
		Games []service.GameInfo `json:"games"`
	}

	err := c.apiCall("GET", "/api/games"+params, nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Games (%d):\n\n", response.Count)
	for _, g := range response.Games {
		result += fmt.Sprintf("- %s (%s, board %s, players: %s, started %s)\n",
			g.Group, g.State, g.Board,
			strings.Join(g.Players, " vs "),
			g.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameDetails(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	group, _ := args["group"].(string)

	var game service.GameInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/games/%s", group), nil, &game)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatGameInfo(&game)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleServerStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var stats service.ServerStats
	err := c.apiCall("GET", "/api/stats", nil, &stats)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatStats(&stats)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleProtocolReference(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	reference := `Tron Duel Server - WebSocket Protocol Reference

Connect to /ws. Every frame is a JSON envelope: {"type": "...", "data": {...}}

CLIENT -> SERVER:

findGame
  {"type":"findGame","data":{"playerName":"Alice","playerBoard":{"cols":25,"rows":25}}}
  Requests a duel. You are paired with the first waiting player whose board
  has the exact same cols x rows; otherwise you wait for the next one.

directionChanged
  {"type":"directionChanged","data":{"direction":2}}
  Announces your new heading. Directions: 0=none 1=left 2=up 3=right 4=down.
  Relayed to your opponent as playerDirectionChanged; you never receive an
  echo of your own turn.

gameFinished
  {"type":"gameFinished","data":{...}}
  Reports the game result. The data payload is forwarded to your opponent
  verbatim and the game session is torn down. Only the first report per game
  is relayed.

SERVER -> CLIENT:

gameStarted
  {"type":"gameStarted","data":{"position":{"col":8,"row":24},"enemies":[{"name":"Bob","position":{"col":16,"row":24}}]}}
  Your spawn position plus each opponent's name and spawn.

playerDirectionChanged
  {"type":"playerDirectionChanged","data":{"direction":2,"playerName":"Bob"}}

gameFinished
  Opponent's result payload, forwarded verbatim.

playerLeft
  {"type":"playerLeft","data":{"playerName":"Bob"}}
  The opponent disconnected mid-game; the session is over.

NOTES:
- Simulation runs client-side. The server pairs, relays, and tears down; it
  never validates moves or decides winners.
- Events sent while you are not in a game are ignored silently.`

	return mcp.NewToolResultText(reference), nil
}

// Formatting helpers

func formatGameInfo(game *service.GameInfo) string {
	return fmt.Sprintf(`Game: %s
State: %s
Board: %s
Players: %s
Started: %s`,
		game.Group,
		game.State,
		game.Board,
		strings.Join(game.Players, " vs "),
		game.CreatedAt.Format("2006-01-02 15:04:05"))
}

func formatStats(stats *service.ServerStats) string {
	return fmt.Sprintf(`Server Stats:
Active games: %d
Waiting players: %d
Open connections: %d`,
		stats.ActiveGames, stats.WaitingPlayers, stats.Connections)
}
