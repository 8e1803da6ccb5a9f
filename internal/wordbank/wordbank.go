package wordbank

import (
	"errors"

	"github.com/partyround/gamecore/internal/random"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_wordbank.go github.com/partyround/gamecore/internal/wordbank WordBank

// ErrUnknownCategory is returned when a category has no words
var ErrUnknownCategory = errors.New("unknown word category")

// WordBank supplies a secret word for a category. Pure lookup, no state.
type WordBank interface {
	// GetWord returns a word from the given category
	GetWord(category string) (string, error)

	// Categories lists every category the bank can serve
	Categories() []string
}

// staticBank serves words from an in-memory table
type staticBank struct {
	words      map[string][]string
	categories []string
	src        random.Source
}

// Config for the static word bank
type Config struct {
	// Source drives word selection. Required.
	Source random.Source

	// Words overrides the built-in table when set
	Words map[string][]string
}

// New creates a static word bank
func New(cfg *Config) (*staticBank, error) {
	if cfg == nil || cfg.Source == nil {
		return nil, errors.New("random source cannot be nil")
	}

	words := cfg.Words
	if words == nil {
		words = defaultWords
	}

	categories := make([]string, 0, len(words))
	for category := range words {
		categories = append(categories, category)
	}

	return &staticBank{
		words:      words,
		categories: categories,
		src:        cfg.Source,
	}, nil
}

// GetWord returns a random word from the category. An empty category
// picks a random category first.
func (b *staticBank) GetWord(category string) (string, error) {
	if category == "" {
		category = b.categories[b.src.Intn(len(b.categories))]
	}

	candidates, ok := b.words[category]
	if !ok || len(candidates) == 0 {
		return "", ErrUnknownCategory
	}

	return candidates[b.src.Intn(len(candidates))], nil
}

// Categories lists every category the bank can serve
func (b *staticBank) Categories() []string {
	return b.categories
}

var defaultWords = map[string][]string{
	"animals": {
		"elephant", "giraffe", "penguin", "octopus", "kangaroo",
		"hedgehog", "dolphin", "flamingo", "raccoon", "chameleon",
	},
	"food": {
		"pizza", "sushi", "pancake", "burrito", "croissant",
		"dumpling", "lasagna", "waffle", "ramen", "pretzel",
	},
	"places": {
		"beach", "library", "airport", "casino", "hospital",
		"circus", "submarine", "space station", "castle", "desert",
	},
	"objects": {
		"umbrella", "telescope", "hammock", "typewriter", "compass",
		"lantern", "accordion", "anchor", "kaleidoscope", "hourglass",
	},
	"sports": {
		"curling", "fencing", "badminton", "water polo", "archery",
		"bobsled", "cricket", "handball", "rowing", "snooker",
	},
}
