package generator

// Strength labels, weakest to strongest.
const (
	LabelWeak       = "Weak"
	LabelModerate   = "Moderate"
	LabelStrong     = "Strong"
	LabelVeryStrong = "Very Strong"
)

// Strength is an advisory score for a password configuration.
type Strength struct {
	Score int    `json:"score"`
	Label string `json:"label"`
}

// EstimateStrength scores a configuration heuristically. It never rejects a
// config; the result is display advice only.
func EstimateStrength(cfg Config) Strength {
	score := cfg.Length * 4
	if score > 50 {
		score = 50
	}

	variety := 1 // lowercase is always present
	if cfg.UseUppercase {
		score += 15
		variety++
	}
	if cfg.UseNumbers {
		score += 15
		variety++
	}
	if cfg.UseSymbols {
		score += 20
		variety++
	}

	if cfg.Length < 8 {
		if score > 20 {
			score = 20
		}
	} else if variety < 2 && cfg.Length < 20 {
		score -= 10
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return Strength{Score: score, Label: strengthLabel(score)}
}

// strengthLabel maps a score to its band; boundary values belong to the
// higher band.
func strengthLabel(score int) string {
	switch {
	case score < 40:
		return LabelWeak
	case score < 70:
		return LabelModerate
	case score < 90:
		return LabelStrong
	default:
		return LabelVeryStrong
	}
}
