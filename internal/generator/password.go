package generator

import "strings"

// password character classes
const (
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// Username mode values for Config.
const (
	ModeManual  = "manual"
	ModePattern = "pattern"
)

// Config describes one generation request.
type Config struct {
	UsernameMode   string `json:"username_mode"`
	ManualUsername string `json:"manual_username"`
	Pattern        string `json:"pattern"`

	Length       int  `json:"length"`
	UseUppercase bool `json:"use_uppercase"`
	UseNumbers   bool `json:"use_numbers"`
	UseSymbols   bool `json:"use_symbols"`

	Remark string `json:"remark"`
	Group  string `json:"group"`
}

// Generator produces random credentials from an injected Source.
type Generator struct {
	src Source
}

// New creates a generator. A nil source falls back to crypto/rand.
func New(src Source) *Generator {
	if src == nil {
		src = CryptoSource{}
	}
	return &Generator{src: src}
}

// Password generates a password of cfg.Length characters drawn uniformly and
// independently from the union of the enabled character classes. Lowercase is
// always included; there is no per-class minimum. Character reuse is allowed.
func (g *Generator) Password(cfg Config) string {
	charset := lowerChars
	if cfg.UseUppercase {
		charset += upperChars
	}
	if cfg.UseNumbers {
		charset += digitChars
	}
	if cfg.UseSymbols {
		charset += symbolChars
	}
	// unreachable with lowercase always present, but don't trust the charset
	if charset == "" {
		charset = lowerChars
	}

	if cfg.Length <= 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(cfg.Length)
	for i := 0; i < cfg.Length; i++ {
		b.WriteByte(charset[g.src.Intn(len(charset))])
	}
	return b.String()
}

// Username resolves the username for a generation request: the trimmed manual
// name when manual mode provides one, otherwise a pattern synthesis.
func (g *Generator) Username(cfg Config) string {
	if cfg.UsernameMode == ModeManual {
		if manual := strings.TrimSpace(cfg.ManualUsername); manual != "" {
			return manual
		}
	}
	return g.SynthesizeUsername(cfg.Pattern)
}
