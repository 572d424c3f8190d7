// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package report

import (
	"bytes"
	"encoding/json"
)

// InstallCommands is either a single command or a mapping from platform name
// to command. The mapping keeps the order in which the service sent it.
type InstallCommands struct {
	// Command is set for the single-string form.
	Command string
	// Platforms is set for the mapping form, in document order.
	Platforms []PlatformCommand

	mapped bool
}

// PlatformCommand is one entry of the mapping form. Platform is empty for the
// single-string form.
type PlatformCommand struct {
	Platform string
	Command  string
}

// SingleCommand builds the single-string form.
func SingleCommand(cmd string) *InstallCommands {
	return &InstallCommands{Command: cmd}
}

// PlatformCommands builds the mapping form from ordered entries.
func PlatformCommands(entries ...PlatformCommand) *InstallCommands {
	return &InstallCommands{Platforms: entries, mapped: true}
}

// IsMapping reports whether the commands came as a platform mapping.
func (c *InstallCommands) IsMapping() bool {
	return c != nil && c.mapped
}

// IsSet reports whether there is anything to show: a non-empty single
// command, or a mapping (even one whose commands are all empty).
func (c *InstallCommands) IsSet() bool {
	return c != nil && (c.mapped || c.Command != "")
}

// Blocks returns the commands that should be shown, one per code block.
// Empty commands in a mapping are skipped.
func (c *InstallCommands) Blocks() []PlatformCommand {
	if c == nil {
		return nil
	}
	if !c.mapped {
		if c.Command == "" {
			return nil
		}
		return []PlatformCommand{{Command: c.Command}}
	}
	var out []PlatformCommand
	for _, p := range c.Platforms {
		if p.Command != "" {
			out = append(out, p)
		}
	}
	return out
}

// MarshalJSON writes the single form as a string and the mapping form as an
// object with its original key order.
func (c InstallCommands) MarshalJSON() ([]byte, error) {
	if !c.mapped {
		return json.Marshal(c.Command)
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range c.Platforms {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(p.Platform)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(p.Command)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts a string or an object; any other type leaves c empty.
func (c *InstallCommands) UnmarshalJSON(data []byte) error {
	ic, ok := installCommandsFrom(data)
	if !ok {
		*c = InstallCommands{}
		return nil
	}
	*c = ic
	return nil
}

func installCommandsFrom(data json.RawMessage) (InstallCommands, bool) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return InstallCommands{}, false
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil || s == "" {
			return InstallCommands{}, false
		}
		return InstallCommands{Command: s}, true
	case '{':
		pairs, ok := orderedMembers(trimmed)
		if !ok {
			return InstallCommands{}, false
		}
		ic := InstallCommands{mapped: true}
		for _, p := range pairs {
			cmd := ""
			if isTruthy(p.value) {
				cmd = scalarText(p.value)
			}
			ic.Platforms = append(ic.Platforms, PlatformCommand{Platform: p.key, Command: cmd})
		}
		return ic, true
	default:
		return InstallCommands{}, false
	}
}

type member struct {
	key   string
	value json.RawMessage
}

// orderedMembers walks a JSON object and returns its members in document order.
func orderedMembers(data []byte) ([]member, bool) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return nil, false
	}
	var out []member
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return nil, false
		}
		key, ok := kt.(string)
		if !ok {
			return nil, false
		}
		var v json.RawMessage
		if err := dec.Decode(&v); err != nil {
			return nil, false
		}
		out = append(out, member{key: key, value: v})
	}
	return out, true
}
