// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging builds the zap loggers used by devguide.
//
// Messages are upper-case event names with structured fields, for example
// REQUEST_START with request_id and url.
//
// # Usage
//
//	log, err := logging.New(cfg, logging.SinkFile)
//	if err != nil {
//	    return err
//	}
//	defer log.Sync()
package logging
