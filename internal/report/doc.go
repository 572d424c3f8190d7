// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package report defines the request payload and the response envelope
// exchanged with the recommendation service.
//
// The service's reply is loosely typed: every field is optional and fields of
// an unexpected JSON type are treated as absent rather than as a decode
// failure. Only a body that is not a JSON object fails to decode.
//
// # Key Types
//
//   - Request: the single-field payload sent per submission
//   - Envelope: success flag, message, report and example code
//   - Report: introduction, technologies, database, architecture,
//     installation and recommendations
//   - TechDetail: one recommended technology
//   - InstallCommands: a single command or an ordered platform mapping
//
// # Field Names
//
// English keys are canonical and are what Envelope marshals to. The Spanish keys
// the recommendation service emits (introduccion, explicacion_tecnologias, nombre, ...)
// are accepted as aliases when decoding.
//
// # Usage
//
//	var env report.Envelope
//	if err := json.Unmarshal(body, &env); err != nil {
//	    return err
//	}
//	if env.Succeeded() && env.Report != nil {
//	    fmt.Println(env.Report.Introduction)
//	}
package report
