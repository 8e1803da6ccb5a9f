package models

// GameType identifies a playable game variant
type GameType string

const (
	// GameTypeImposter is the social deduction game: one player does not
	// receive the secret word and must blend in
	GameTypeImposter GameType = "imposter"
)

// GameTypeRules holds the matchmaking and session bounds for a game type
type GameTypeRules struct {
	// MinPlayers is the smallest roster that can start a game
	MinPlayers int

	// MaxPlayers is the largest roster a session or queue may admit
	MaxPlayers int

	// PopularityWeight feeds the trending score for sessions of this type
	PopularityWeight float64
}

// gameTypeRules maps each supported game type to its bounds
var gameTypeRules = map[GameType]GameTypeRules{
	GameTypeImposter: {
		MinPlayers:       3,
		MaxPlayers:       10,
		PopularityWeight: 10,
	},
}

// RulesFor returns the rules for a game type, falling back to the imposter
// defaults for unknown types
func RulesFor(gameType GameType) GameTypeRules {
	if rules, ok := gameTypeRules[gameType]; ok {
		return rules
	}
	return gameTypeRules[GameTypeImposter]
}
