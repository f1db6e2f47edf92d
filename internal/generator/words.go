package generator

// word lists for pattern placeholders

var adjectives = []string{
	"swift", "bold", "calm", "keen", "wild", "warm", "cool", "fast",
	"deep", "tall", "wide", "soft", "pure", "rare", "safe", "fair",
	"glad", "kind", "vast", "wise", "pale", "gold", "blue", "gray",
	"jade", "ruby", "sage", "teal", "mint", "dusk", "dawn", "snow",
}

var nouns = []string{
	"wolf", "hawk", "bear", "deer", "lynx", "fox", "owl", "crow",
	"wren", "dove", "lark", "swan", "moth", "frog", "crab", "orca",
	"seal", "hare", "mole", "newt", "ibis", "kite", "oak", "elm",
	"ash", "fir", "ivy", "moss", "lily", "rose", "iris", "fern",
}
