// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for devguide.
//
// Configuration is TOML with sensible defaults, environment variable
// overrides, and validation. A Watcher re-reads the file when it changes so
// a running session can pick up a new endpoint.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - APIConfig: Recommendation service endpoint and timeout
//   - ValidationError / ValidateErrors: Aggregated validation failures
//   - Watcher: fsnotify-based reloader
//
// # Configuration Precedence
//
// The service endpoint is resolved from (highest first):
//   - The --api-url flag
//   - DEVGUIDE_API_URL (also read from .env)
//   - ~/.devguide/config.toml [api] url
//   - BuildAPIURL, set with -ldflags -X
//   - http://127.0.0.1:3000/predict
//
// # Usage
//
//	_ = config.LoadDotEnv()
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	client := predict.NewClient(&predict.ClientConfig{URL: cfg.API.URL, Timeout: cfg.Timeout()})
package config
