package generator

import (
	"regexp"
	"strings"
	"testing"
)

func TestSynthesizeUsernameWildcards(t *testing.T) {
	g := New(nil)
	re := regexp.MustCompile(`^user_\d{4}$`)
	for i := 0; i < 100; i++ {
		name := g.SynthesizeUsername("user_####")
		if len(name) != len("user_")+4 || !re.MatchString(name) {
			t.Fatalf("expected user_ plus 4 digits, got %q", name)
		}
	}
}

func TestSynthesizeUsernameLetterWildcard(t *testing.T) {
	g := New(nil)
	re := regexp.MustCompile(`^[a-z]{3}-\d$`)
	for i := 0; i < 100; i++ {
		name := g.SynthesizeUsername("???-#")
		if !re.MatchString(name) {
			t.Fatalf("expected 3 lowercase letters, dash, digit; got %q", name)
		}
	}
}

func TestSynthesizeUsernameDefaultPattern(t *testing.T) {
	g := New(nil)
	re := regexp.MustCompile(`^[a-z]+\d{1,3}$`)
	for i := 0; i < 100; i++ {
		name := g.SynthesizeUsername("")
		if name == "" {
			t.Fatalf("expected non-empty username")
		}
		if strings.Contains(name, "{") || strings.Contains(name, "}") {
			t.Fatalf("placeholder text leaked into %q", name)
		}
		if !re.MatchString(name) {
			t.Fatalf("expected adjective+noun+number shape, got %q", name)
		}
	}
}

func TestSynthesizeUsernameNumberRange(t *testing.T) {
	g := New(nil)
	re := regexp.MustCompile(`^n(0|[1-9]\d{0,2})$`)
	for i := 0; i < 200; i++ {
		name := g.SynthesizeUsername("n{number}")
		if !re.MatchString(name) {
			t.Fatalf("expected unpadded number in [0,999], got %q", name)
		}
	}
}

func TestSynthesizeUsernameIndependentDraws(t *testing.T) {
	g := New(nil)

	// repeated tokens must draw independently: over many trials the two
	// nouns cannot always be equal
	differed := false
	for i := 0; i < 100; i++ {
		name := g.SynthesizeUsername("{noun}-{noun}")
		parts := strings.SplitN(name, "-", 2)
		if len(parts) != 2 {
			t.Fatalf("expected two segments, got %q", name)
		}
		if parts[0] != parts[1] {
			differed = true
			break
		}
	}
	if !differed {
		t.Fatalf("repeated {noun} tokens always produced identical words")
	}
}

func TestSynthesizeUsernameLiteralPassthrough(t *testing.T) {
	g := New(nil)
	if name := g.SynthesizeUsername("plain.name_42"); name != "plain.name_42" {
		t.Fatalf("literal text should pass through unchanged, got %q", name)
	}
}

func TestSynthesizeUsernameWordsExpandBeforeWildcards(t *testing.T) {
	// a deterministic source makes the draw order observable: adjective
	// first, then the wildcard digit
	g := New(&seqSource{vals: []int{0, 7}})
	name := g.SynthesizeUsername("{adjective}#")
	want := adjectives[0] + "7"
	if name != want {
		t.Fatalf("expected %q, got %q", want, name)
	}
}

func TestWordListSizes(t *testing.T) {
	if len(adjectives) < 10 {
		t.Fatalf("adjective list too small: %d", len(adjectives))
	}
	if len(nouns) < 10 {
		t.Fatalf("noun list too small: %d", len(nouns))
	}
}
