// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package controller

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/jeranaias/devguide-tui/internal/predict"
	"github.com/jeranaias/devguide-tui/internal/report"
	"github.com/jeranaias/devguide-tui/internal/util"
)

// MinDescriptionLength is the minimum number of characters, after trimming,
// a description needs before it is sent.
const MinDescriptionLength = 20

// PreviewRunes bounds the description excerpt written to the log.
const PreviewRunes = 40

// User-facing messages.
const (
	MsgDescriptionTooShort = "please enter a detailed description (minimum 20 characters)"
	MsgGenerationFailed    = "error generating recommendations"
	MsgConnectionFailed    = "error connecting to server"
)

// =============================================================================
// PHASE
// =============================================================================

// Phase is the position of the controller in the submission cycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseValidating
	PhaseLoading
	PhaseSuccess
	PhaseFailed
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseValidating:
		return "validating"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// =============================================================================
// STATE
// =============================================================================

// State is a snapshot of the controller.
type State struct {
	Draft    string
	Response *report.Envelope
	Loading  bool
	Err      string
	Phase    Phase
}

// Transport sends one description to the service.
type Transport interface {
	Submit(ctx context.Context, description string) predict.Result
}

// TransitionFunc observes phase changes.
type TransitionFunc func(from, to Phase, st State)

// Controller implements the submission state machine.
type Controller struct {
	transport Transport
	log       *zap.Logger
	hook      TransitionFunc

	state State
	seq   uint64
}

// New creates a controller in the Idle phase. A nil logger disables logging.
func New(transport Transport, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{transport: transport, log: log}
}

// OnTransition registers a hook called after every phase change.
func (c *Controller) OnTransition(fn TransitionFunc) {
	c.hook = fn
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	return c.state
}

// Seq returns the sequence number of the latest submission that passed
// validation.
func (c *Controller) Seq() uint64 {
	return c.seq
}

// SetDraft replaces the draft description. It does not change the phase.
func (c *Controller) SetDraft(draft string) {
	c.state.Draft = draft
}

// ValidDescription reports whether a draft is long enough to submit.
func ValidDescription(draft string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(draft)) >= MinDescriptionLength
}

// =============================================================================
// TRANSITIONS
// =============================================================================

// Begin validates the draft. On failure it enters Failed with
// MsgDescriptionTooShort and leaves Response untouched. On success it clears
// the previous error and response, raises the loading flag and returns the
// description to send.
func (c *Controller) Begin() (string, bool) {
	c.transition(PhaseValidating)

	if !ValidDescription(c.state.Draft) {
		c.state.Err = MsgDescriptionTooShort
		c.transition(PhaseFailed)
		return "", false
	}

	c.seq++
	c.state.Err = ""
	c.state.Response = nil
	c.state.Loading = true
	c.log.Info("SUBMIT",
		zap.Uint64("seq", c.seq),
		zap.Int("chars", utf8.RuneCountInString(c.state.Draft)),
		zap.String("preview", util.TruncateRunes(strings.TrimSpace(c.state.Draft), PreviewRunes)),
	)
	c.transition(PhaseLoading)
	return c.state.Draft, true
}

// Complete applies a transport result. The loading flag is cleared in every
// branch. A result that arrives after a newer Begin still overwrites state.
func (c *Controller) Complete(res predict.Result) State {
	c.state.Loading = false

	switch {
	case res.Failed():
		c.state.Err = MsgConnectionFailed
		c.transition(PhaseFailed)
	case res.Envelope.Succeeded():
		c.state.Response = res.Envelope
		c.state.Err = ""
		c.transition(PhaseSuccess)
	default:
		msg := ""
		if res.Envelope != nil {
			msg = res.Envelope.Message
		}
		if msg == "" {
			msg = MsgGenerationFailed
		}
		c.state.Err = msg
		c.transition(PhaseFailed)
	}
	return c.state
}

// Submit runs a full cycle synchronously. When validation fails no request
// is made.
func (c *Controller) Submit(ctx context.Context) State {
	desc, ok := c.Begin()
	if !ok {
		return c.state
	}
	return c.Complete(c.transport.Submit(ctx, desc))
}

func (c *Controller) transition(to Phase) {
	from := c.state.Phase
	c.state.Phase = to
	c.log.Debug("STATE",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.Uint64("seq", c.seq),
		zap.Bool("loading", c.state.Loading),
	)
	if c.hook != nil {
		c.hook(from, to, c.state)
	}
}
