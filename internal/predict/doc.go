// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package predict provides the HTTP transport to the recommendation service.
//
// Each call to Submit performs exactly one POST. There are no retries and no
// caching. Every failure (network error, non-2xx status, unreadable body,
// body that is not a JSON object) collapses into the same tagged Result with
// ErrUnreachable; the cause is only logged.
//
// # Key Types
//
//   - Client: thread-safe transport with a swappable endpoint
//   - ClientConfig: endpoint, timeout, user agent and logger
//   - Result: either a decoded envelope or an error message
//
// # Usage
//
//	client := predict.NewClient(&predict.ClientConfig{URL: cfg.API.URL})
//	res := client.Submit(ctx, "An inventory system for a small bakery")
//	if res.Failed() {
//	    fmt.Println(res.Err)
//	    return
//	}
//	fmt.Println(res.Envelope.Succeeded())
package predict
