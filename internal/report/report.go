// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package report

// =============================================================================
// REQUEST
// =============================================================================

// Request is the payload sent for one submission.
type Request struct {
	Description string `json:"description"`
}

// NewRequest builds a fresh request for a description.
func NewRequest(description string) Request {
	return Request{Description: description}
}

// =============================================================================
// ENVELOPE
// =============================================================================

// Envelope is the top-level response object returned by the service.
type Envelope struct {
	// Success is the service's success flag. HasSuccess reports whether the
	// flag was present at all.
	Success    bool `json:"success"`
	HasSuccess bool `json:"-"`

	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`

	Report      *Report      `json:"report,omitempty"`
	CodeExample *CodeExample `json:"code_example,omitempty"`

	Metadata *Metadata `json:"metadata,omitempty"`
	Warnings *Warnings `json:"warnings,omitempty"`
}

// Succeeded reports whether the envelope carries a true success flag.
// A nil envelope never succeeds.
func (e *Envelope) Succeeded() bool {
	return e != nil && e.Success
}

// HasCode reports whether the envelope carries non-empty example code.
func (e *Envelope) HasCode() bool {
	return e != nil && e.CodeExample != nil && e.CodeExample.Content != ""
}

// Code returns the raw example code, or "" when there is none.
func (e *Envelope) Code() string {
	if !e.HasCode() {
		return ""
	}
	return e.CodeExample.Content
}

// =============================================================================
// REPORT
// =============================================================================

// Report is the structured recommendation produced by the service.
type Report struct {
	// Error is set when the service could not build the report; Message
	// then explains why and every other section is ignored.
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`

	Introduction    string        `json:"introduction,omitempty"`
	Technologies    *Technologies `json:"technologies,omitempty"`
	Database        *TechDetail   `json:"database,omitempty"`
	Architecture    *Architecture `json:"architecture,omitempty"`
	Installation    *Installation `json:"installation,omitempty"`
	Recommendations []string      `json:"recommendations,omitempty"`
}

// Failed reports whether the report is an error report.
func (r *Report) Failed() bool {
	return r != nil && r.Error != ""
}

// Technologies groups the explanations of the recommended stack.
type Technologies struct {
	Language  *TechDetail  `json:"language,omitempty"`
	Framework *TechDetail  `json:"framework,omitempty"`
	Libraries []TechDetail `json:"libraries,omitempty"`
}

// TechDetail describes one recommended technology.
type TechDetail struct {
	Name        string           `json:"name,omitempty"`
	Description string           `json:"description,omitempty"`
	Rationale   string           `json:"rationale,omitempty"`
	Usage       string           `json:"usage,omitempty"`
	Install     *InstallCommands `json:"installCommands,omitempty"`
	KeyFeatures []string         `json:"keyFeatures,omitempty"`
	UseCases    []string         `json:"useCases,omitempty"`
}

// Architecture holds the architecture notes.
type Architecture struct {
	Diagram    string   `json:"diagram,omitempty"`
	Components []string `json:"components,omitempty"`
}

// Installation holds the installation notes.
type Installation struct {
	Requirements []string             `json:"requirements,omitempty"`
	Libraries    *LibraryInstallation `json:"libraries,omitempty"`
}

// LibraryInstallation is the dependency install command plus a usage example.
type LibraryInstallation struct {
	Command string `json:"command,omitempty"`
	Example string `json:"example,omitempty"`
}

// =============================================================================
// CODE EXAMPLE AND SERVICE NOTES
// =============================================================================

// CodeExample holds example source text.
type CodeExample struct {
	Content  string `json:"content,omitempty"`
	Language string `json:"language,omitempty"`
	Lines    int    `json:"lines,omitempty"`
}

// Metadata describes how the service produced the response.
type Metadata struct {
	Version   string `json:"version,omitempty"`
	Model     string `json:"model,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	CacheHit  bool   `json:"cache_hit,omitempty"`
}

// IsZero reports whether no metadata field is set.
func (m *Metadata) IsZero() bool {
	return m == nil || (m.Version == "" && m.Model == "" && m.Timestamp == "" && !m.CacheHit)
}

// Warnings carries non-fatal notes from the service.
type Warnings struct {
	Code   string `json:"code,omitempty"`
	Report string `json:"report,omitempty"`
}

// IsZero reports whether there is no warning to show.
func (w *Warnings) IsZero() bool {
	return w == nil || (w.Code == "" && w.Report == "")
}
