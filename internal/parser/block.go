// Package parser splits the free text of one listing into its description and
// requirements sections using the literal headers the site renders.
package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Section is the state of the block scanner
type Section int

const (
	SectionNone Section = iota
	SectionDescription
	SectionRequirements
)

func (s Section) String() string {
	switch s {
	case SectionDescription:
		return "description"
	case SectionRequirements:
		return "requirements"
	default:
		return "none"
	}
}

// Markers are the literal strings that delimit sections inside a block.
// Description, Requirements and JobNumber match at line start, SendResume anywhere.
type Markers struct {
	Description  string `yaml:"description"`
	Requirements string `yaml:"requirements"`
	JobNumber    string `yaml:"job_number"`
	SendResume   string `yaml:"send_resume"`
}

// DefaultMarkers are the Hebrew headers used by gotfriends.co.il
var DefaultMarkers = Markers{
	Description:  "תיאור המשרה",
	Requirements: "דרישות המשרה",
	JobNumber:    "מס' משרה",
	SendResume:   "שלחו קורות חיים",
}

// Result holds the accumulated sections. Every kept line ends with "\n".
type Result struct {
	Description  string
	Requirements string
}

// Parser is stateless between calls and safe to reuse
type Parser struct {
	markers Markers
}

// New builds a parser. Empty fields in m fall back to DefaultMarkers.
func New(m Markers) *Parser {
	if m.Description == "" {
		m.Description = DefaultMarkers.Description
	}
	if m.Requirements == "" {
		m.Requirements = DefaultMarkers.Requirements
	}
	if m.JobNumber == "" {
		m.JobNumber = DefaultMarkers.JobNumber
	}
	if m.SendResume == "" {
		m.SendResume = DefaultMarkers.SendResume
	}
	return &Parser{
		markers: Markers{
			Description:  norm.NFC.String(m.Description),
			Requirements: norm.NFC.String(m.Requirements),
			JobNumber:    norm.NFC.String(m.JobNumber),
			SendResume:   norm.NFC.String(m.SendResume),
		},
	}
}

var defaultParser = New(DefaultMarkers)

// ParseBlock parses block with DefaultMarkers
func ParseBlock(block string) Result {
	return defaultParser.Parse(block)
}

// Classify applies one transition of the scanner to an already trimmed line.
// It returns the next section and whether the line was consumed as a marker.
// Header checks run before the terminator check.
func (p *Parser) Classify(current Section, line string) (Section, bool) {
	normalized := norm.NFC.String(line)
	switch {
	case strings.HasPrefix(normalized, p.markers.Description):
		return SectionDescription, true
	case strings.HasPrefix(normalized, p.markers.Requirements):
		return SectionRequirements, true
	case strings.HasPrefix(normalized, p.markers.JobNumber),
		strings.Contains(normalized, p.markers.SendResume):
		return SectionNone, true
	}
	return current, false
}

// Parse never fails; a block without markers yields an empty Result
func (p *Parser) Parse(block string) Result {
	var desc, reqs strings.Builder
	state := SectionNone

	for _, line := range splitLines(trimLine(block)) {
		line = trimLine(line)

		next, consumed := p.Classify(state, line)
		state = next
		if consumed {
			continue
		}

		switch state {
		case SectionDescription:
			desc.WriteString(line)
			desc.WriteString("\n")
		case SectionRequirements:
			reqs.WriteString(line)
			reqs.WriteString("\n")
		}
	}

	return Result{
		Description:  desc.String(),
		Requirements: reqs.String(),
	}
}

// isLineBreak matches \n and \r plus the control and Unicode separators that
// also end a line in rendered text (VT, FF, FS, GS, RS, NEL, U+2028, U+2029).
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// splitLines keeps empty lines; "\r\n" counts as one break and a trailing break
// does not produce an extra empty line.
func splitLines(s string) []string {
	var lines []string
	start := 0
	for i, r := range s {
		if i < start || !isLineBreak(r) {
			continue
		}
		lines = append(lines, s[start:i])
		start = i + utf8.RuneLen(r)
		if r == '\r' && strings.HasPrefix(s[start:], "\n") {
			start++
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

func trimLine(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || isLineBreak(r) || r == '\x1f'
	})
}
