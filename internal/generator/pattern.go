package generator

import (
	"strconv"
	"strings"
)

// DefaultPattern is substituted when a pattern is empty or absent.
const DefaultPattern = "{adjective}{noun}{number}"

// word placeholder tokens
const (
	tokenAdjective = "{adjective}"
	tokenNoun      = "{noun}"
	tokenNumber    = "{number}"
)

// SynthesizeUsername expands a template into a username. Word placeholders
// ({adjective}, {noun}, {number}) are expanded first, each occurrence drawing
// an independent random value; the character wildcards # (random digit) and
// ? (random lowercase letter) are then substituted over the expanded text.
// Expanding words first keeps a word's own characters from being
// reinterpreted as wildcards.
func (g *Generator) SynthesizeUsername(pattern string) string {
	if pattern == "" {
		pattern = DefaultPattern
	}
	return g.substituteWildcards(g.expandWords(pattern))
}

// expandWords replaces every word placeholder with an independent draw.
func (g *Generator) expandWords(pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); {
		rest := pattern[i:]
		switch {
		case strings.HasPrefix(rest, tokenAdjective):
			b.WriteString(adjectives[g.src.Intn(len(adjectives))])
			i += len(tokenAdjective)
		case strings.HasPrefix(rest, tokenNoun):
			b.WriteString(nouns[g.src.Intn(len(nouns))])
			i += len(tokenNoun)
		case strings.HasPrefix(rest, tokenNumber):
			// [0, 999], no zero-padding
			b.WriteString(strconv.Itoa(g.src.Intn(1000)))
			i += len(tokenNumber)
		default:
			b.WriteByte(pattern[i])
			i++
		}
	}
	return b.String()
}

// substituteWildcards scans left to right, replacing # and ? characters.
func (g *Generator) substituteWildcards(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '#':
			b.WriteByte(digitChars[g.src.Intn(len(digitChars))])
		case '?':
			b.WriteByte(lowerChars[g.src.Intn(len(lowerChars))])
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
