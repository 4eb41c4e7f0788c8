// Package config holds the tunable server settings for the Tron duel server.
//
// Settings cover the board shapes the server accepts from findGame requests,
// player name limits, and websocket connection tuning. Defaults work out of
// the box; an optional JSON file overrides them for deployments that need
// different limits.
//
// Usage:
//
//	settings := config.Default()
//	if *configFile != "" {
//		settings, err = config.Load(*configFile)
//	}
package config
