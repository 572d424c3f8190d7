// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

// ErrNotObject is returned when a response body is valid JSON but not an object.
var ErrNotObject = errors.New("response is not a JSON object")

// =============================================================================
// FIELD ALIASES
// =============================================================================

// Each list holds the canonical English key first, then the variants the
// Spanish-language service and older clients emit.
var (
	keySuccess     = []string{"success"}
	keyMessage     = []string{"message"}
	keyError       = []string{"error"}
	keyReport      = []string{"report", "informe"}
	keyCodeExample = []string{"code_example", "codeExample"}
	keyMetadata    = []string{"metadata"}
	keyWarnings    = []string{"warnings"}

	keyIntroduction    = []string{"introduction", "introduccion"}
	keyTechnologies    = []string{"technologies", "technology_explanations", "explicacion_tecnologias"}
	keyDatabase        = []string{"database", "base_datos"}
	keyArchitecture    = []string{"architecture", "arquitectura"}
	keyInstallation    = []string{"installation", "instalacion"}
	keyRecommendations = []string{"recommendations", "recomendaciones"}

	keyLanguage  = []string{"language", "lenguaje"}
	keyFramework = []string{"framework"}
	keyLibraries = []string{"libraries", "librerias"}

	keyName        = []string{"name", "nombre"}
	keyDescription = []string{"description", "descripcion"}
	keyRationale   = []string{"rationale", "justificacion"}
	keyUsage       = []string{"usage", "uso"}
	keyInstall     = []string{"installCommands", "install_commands", "instalacion"}
	keyKeyFeatures = []string{"keyFeatures", "key_features", "caracteristicas"}
	keyUseCases    = []string{"useCases", "use_cases", "casos_uso"}

	keyDiagram    = []string{"diagram", "diagrama"}
	keyComponents = []string{"components", "componentes"}

	keyRequirements = []string{"requirements", "requisitos"}
	keyCommand      = []string{"command", "comando"}
	keyExample      = []string{"example", "ejemplo"}

	keyContent  = []string{"content", "codigo"}
	keyLines    = []string{"lines"}
	keyVersion  = []string{"version"}
	keyModel    = []string{"model"}
	keyTime     = []string{"timestamp"}
	keyCacheHit = []string{"cache_hit", "cacheHit"}
	keyCode     = []string{"code"}
)

// =============================================================================
// TOLERANT FIELD ACCESS
// =============================================================================

// fields is a decoded JSON object whose members are read lazily. Accessors
// never fail: a missing, null or wrongly typed member reads as absent.
type fields map[string]json.RawMessage

// objectFields decodes data as a JSON object.
func objectFields(data []byte) (fields, bool) {
	var f fields
	if err := json.Unmarshal(data, &f); err != nil || f == nil {
		return nil, false
	}
	return f, true
}

// raw returns the first non-null member found under any of keys.
func (f fields) raw(keys []string) (json.RawMessage, bool) {
	for _, k := range keys {
		v, ok := f[k]
		if ok && !isNull(v) {
			return v, true
		}
	}
	return nil, false
}

// text reads a scalar member as display text.
func (f fields) text(keys []string) string {
	v, ok := f.raw(keys)
	if !ok {
		return ""
	}
	return scalarText(v)
}

// truthy reads a member with JavaScript truthiness, reporting presence.
func (f fields) truthy(keys []string) (value, present bool) {
	v, ok := f.raw(keys)
	if !ok {
		return false, false
	}
	return isTruthy(v), true
}

// list reads an array member, keeping its non-empty scalar items.
func (f fields) list(keys []string) []string {
	v, ok := f.raw(keys)
	if !ok {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(v, &items); err != nil {
		return nil
	}
	var out []string
	for _, item := range items {
		if s := scalarText(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// object reads an object member.
func (f fields) object(keys []string) (fields, bool) {
	v, ok := f.raw(keys)
	if !ok {
		return nil, false
	}
	return objectFields(v)
}

// objects reads an array member, keeping only its object items.
func (f fields) objects(keys []string) []fields {
	v, ok := f.raw(keys)
	if !ok {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(v, &items); err != nil {
		return nil
	}
	var out []fields
	for _, item := range items {
		if obj, ok := objectFields(item); ok {
			out = append(out, obj)
		}
	}
	return out
}

// integer reads a numeric member, truncating fractions.
func (f fields) integer(keys []string) int {
	v, ok := f.raw(keys)
	if !ok {
		return 0
	}
	var n float64
	if err := json.Unmarshal(v, &n); err != nil {
		return 0
	}
	return int(n)
}

func isNull(v json.RawMessage) bool {
	return len(bytes.TrimSpace(v)) == 0 || string(bytes.TrimSpace(v)) == "null"
}

// scalarText renders strings, numbers and booleans; anything else is "".
func scalarText(v json.RawMessage) string {
	var x any
	if err := json.Unmarshal(v, &x); err != nil {
		return ""
	}
	switch t := x.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// isTruthy mirrors JavaScript truthiness for decoded JSON values.
func isTruthy(v json.RawMessage) bool {
	var x any
	if err := json.Unmarshal(v, &x); err != nil {
		return false
	}
	switch t := x.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	default:
		return true
	}
}

// =============================================================================
// UNMARSHALERS
// =============================================================================

// UnmarshalJSON decodes an envelope field by field. It fails only when data
// is not a JSON object.
func (e *Envelope) UnmarshalJSON(data []byte) error {
	f, ok := objectFields(data)
	if !ok {
		if !json.Valid(data) {
			var x any
			return json.Unmarshal(data, &x)
		}
		return ErrNotObject
	}
	*e = envelopeFrom(f)
	return nil
}

func envelopeFrom(f fields) Envelope {
	var e Envelope
	e.Success, e.HasSuccess = f.truthy(keySuccess)
	e.Message = f.text(keyMessage)
	e.Error = errorText(f)

	if r, ok := f.object(keyReport); ok {
		rep := reportFrom(r)
		e.Report = &rep
	}
	if c, ok := f.object(keyCodeExample); ok {
		e.CodeExample = &CodeExample{
			Content:  c.text(keyContent),
			Language: c.text(keyLanguage),
			Lines:    c.integer(keyLines),
		}
	}
	if m, ok := f.object(keyMetadata); ok {
		hit, _ := m.truthy(keyCacheHit)
		e.Metadata = &Metadata{
			Version:   m.text(keyVersion),
			Model:     m.text(keyModel),
			Timestamp: m.text(keyTime),
			CacheHit:  hit,
		}
	}
	if w, ok := f.object(keyWarnings); ok {
		e.Warnings = &Warnings{
			Code:   w.text(keyCode),
			Report: w.text(keyReport),
		}
	}
	return e
}

// errorText reads an "error" member. A truthy non-scalar error still counts.
func errorText(f fields) string {
	truthy, present := f.truthy(keyError)
	if !present || !truthy {
		return ""
	}
	if s := f.text(keyError); s != "" {
		return s
	}
	return "error"
}

// UnmarshalJSON decodes a report field by field.
func (r *Report) UnmarshalJSON(data []byte) error {
	f, ok := objectFields(data)
	if !ok {
		return ErrNotObject
	}
	*r = reportFrom(f)
	return nil
}

func reportFrom(f fields) Report {
	r := Report{
		Error:           errorText(f),
		Message:         f.text(keyMessage),
		Introduction:    f.text(keyIntroduction),
		Recommendations: f.list(keyRecommendations),
	}

	if t, ok := f.object(keyTechnologies); ok {
		techs := &Technologies{}
		if l, ok := t.object(keyLanguage); ok {
			d := techDetailFrom(l)
			techs.Language = &d
		}
		if fw, ok := t.object(keyFramework); ok {
			d := techDetailFrom(fw)
			techs.Framework = &d
		}
		for _, lib := range t.objects(keyLibraries) {
			techs.Libraries = append(techs.Libraries, techDetailFrom(lib))
		}
		r.Technologies = techs
	}

	if db, ok := f.object(keyDatabase); ok {
		d := techDetailFrom(db)
		r.Database = &d
	}

	if a, ok := f.object(keyArchitecture); ok {
		r.Architecture = &Architecture{
			Diagram:    a.text(keyDiagram),
			Components: a.list(keyComponents),
		}
	}

	if in, ok := f.object(keyInstallation); ok {
		inst := &Installation{Requirements: in.list(keyRequirements)}
		if libs, ok := in.object(keyLibraries); ok {
			inst.Libraries = &LibraryInstallation{
				Command: libs.text(keyCommand),
				Example: libs.text(keyExample),
			}
		}
		r.Installation = inst
	}

	return r
}

// UnmarshalJSON decodes a technology detail field by field.
func (t *TechDetail) UnmarshalJSON(data []byte) error {
	f, ok := objectFields(data)
	if !ok {
		return ErrNotObject
	}
	*t = techDetailFrom(f)
	return nil
}

func techDetailFrom(f fields) TechDetail {
	d := TechDetail{
		Name:        f.text(keyName),
		Description: f.text(keyDescription),
		Rationale:   f.text(keyRationale),
		Usage:       f.text(keyUsage),
		KeyFeatures: f.list(keyKeyFeatures),
		UseCases:    f.list(keyUseCases),
	}
	if v, ok := f.raw(keyInstall); ok {
		if ic, ok := installCommandsFrom(v); ok {
			d.Install = &ic
		}
	}
	return d
}
