// Package template composes naming templates from selected spreadsheet
// fields and literal separator text, and expands them against table rows.
//
// A template is an ordered list of typed tokens rather than a flat string:
// substring relationships between field names (Year vs FiscalYear) can never
// bleed into each other's substitutions.
package template

import (
	"regexp"
	"strings"

	"batchrename/internal/errors"
)

// TokenKind discriminates template tokens.
type TokenKind int

const (
	// FieldRef substitutes a table column's row value.
	FieldRef TokenKind = iota
	// Literal is separator text inserted verbatim.
	Literal
)

// Token is one element of a naming template.
type Token struct {
	Kind TokenKind
	Text string // column name for FieldRef, separator text for Literal
}

// Template is an ordered token sequence plus the fixed trailing extension.
// The extension is display-only: generated names never include it, the
// original file's own extension is reattached at rename time.
type Template struct {
	Tokens    []Token
	Extension string
}

// String renders the template's textual form, extension included.
func (t Template) String() string {
	var sb strings.Builder
	for _, tok := range t.Tokens {
		sb.WriteString(tok.Text)
	}
	sb.WriteString(t.Extension)
	return sb.String()
}

// Fields returns the referenced column names in token order.
func (t Template) Fields() []string {
	var out []string
	for _, tok := range t.Tokens {
		if tok.Kind == FieldRef {
			out = append(out, tok.Text)
		}
	}
	return out
}

// IsEmpty reports whether the template references no fields.
func (t Template) IsEmpty() bool {
	return len(t.Fields()) == 0
}

// separatorPattern is the allow-listed character set for literal separator
// text, checked at acceptance time and again before generation.
var separatorPattern = regexp.MustCompile(`^[\w\-.,; ]*$`)

// ValidSeparator reports whether text uses only allow-listed characters.
func ValidSeparator(text string) bool {
	return separatorPattern.MatchString(text)
}

// Builder arranges the selected fields into an order and interleaves them
// with literal separator text: one entry after each field except the last.
type Builder struct {
	fields []string
	seps   []string // len(fields)-1, seps[i] follows fields[i]
	ext    string
}

// NewBuilder creates a Builder over the selected fields in their current
// order. ext is the extension displayed after the last slot.
func NewBuilder(selected []string, ext string) *Builder {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	fields := make([]string, len(selected))
	copy(fields, selected)
	seps := make([]string, 0)
	if len(fields) > 1 {
		seps = make([]string, len(fields)-1)
	}
	return &Builder{fields: fields, seps: seps, ext: ext}
}

// Fields returns the fields in their current order.
func (b *Builder) Fields() []string {
	out := make([]string, len(b.fields))
	copy(out, b.fields)
	return out
}

// Separator returns the literal text following the field at index i.
func (b *Builder) Separator(i int) string {
	if i < 0 || i >= len(b.seps) {
		return ""
	}
	return b.seps[i]
}

// SetSeparator stores the literal text following the field at index i.
// The last field has no trailing entry. Character validation is deferred to
// Validate, matching acceptance-time checking.
func (b *Builder) SetSeparator(i int, text string) error {
	if i < 0 || i >= len(b.seps) {
		return errors.Newf("no separator slot %d for %d fields", i, len(b.fields))
	}
	b.seps[i] = text
	return nil
}

// Extension returns the fixed trailing extension.
func (b *Builder) Extension() string {
	return b.ext
}

// ClampSlot maps an arbitrary drop slot onto a valid position. Drops beyond
// the last slot land on the last position, drops before the first on zero.
func ClampSlot(slot, numFields int) int {
	if slot < 0 {
		return 0
	}
	if slot > numFields-1 {
		return numFields - 1
	}
	return slot
}

// DropSlot maps a drop position (in cells of cellWidth, two cells per
// field+separator pair) to the nearest slot index. The result still needs
// clamping against the field count.
func DropSlot(dropX, cellWidth int) int {
	if cellWidth <= 0 {
		return 0
	}
	pair := cellWidth * 2
	// round to nearest slot
	return (dropX + pair/2) / pair
}

// Move reorders the field at index from to the clamped drop slot and
// re-lays-out the field list. Separators keep their positional meaning:
// slot i still trails field i after the move.
func (b *Builder) Move(from, dropSlot int) {
	if from < 0 || from >= len(b.fields) {
		return
	}
	to := ClampSlot(dropSlot, len(b.fields))
	if to == from {
		return
	}
	field := b.fields[from]
	b.fields = append(b.fields[:from], b.fields[from+1:]...)
	rest := make([]string, 0, len(b.fields)+1)
	rest = append(rest, b.fields[:to]...)
	rest = append(rest, field)
	rest = append(rest, b.fields[to:]...)
	b.fields = rest
}

// Validate checks every separator entry against the allow-listed character
// set, enumerating the offending entries in one failure.
func (b *Builder) Validate() error {
	var bad []string
	for _, sep := range b.seps {
		if !ValidSeparator(sep) {
			bad = append(bad, sep)
		}
	}
	if len(bad) > 0 {
		return errors.NewKind(errors.InvalidCharacters,
			"separator text contains characters outside the allowed set: "+strings.Join(bad, ", "))
	}
	return nil
}

// Build assembles the template: each field in current order followed by its
// trailing separator entry (the last field has none), extension appended.
func (b *Builder) Build() Template {
	tpl := Template{Extension: b.ext}
	for i, f := range b.fields {
		tpl.Tokens = append(tpl.Tokens, Token{Kind: FieldRef, Text: f})
		if i < len(b.seps) && b.seps[i] != "" {
			tpl.Tokens = append(tpl.Tokens, Token{Kind: Literal, Text: b.seps[i]})
		}
	}
	return tpl
}
