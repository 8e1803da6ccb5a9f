package wordbank

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/partyround/gamecore/internal/random"
)

type WordBankTestSuite struct {
	suite.Suite
	bank WordBank
}

func (s *WordBankTestSuite) SetupTest() {
	bank, err := New(&Config{
		Source: random.New(&random.Config{Seed: 42}),
	})
	s.Require().NoError(err)
	s.bank = bank
}

func TestWordBankTestSuite(t *testing.T) {
	suite.Run(t, new(WordBankTestSuite))
}

func (s *WordBankTestSuite) TestGetWordFromCategory() {
	word, err := s.bank.GetWord("animals")
	s.NoError(err)
	s.Contains(defaultWords["animals"], word)
}

func (s *WordBankTestSuite) TestGetWordRandomCategory() {
	word, err := s.bank.GetWord("")
	s.NoError(err)
	s.NotEmpty(word)
}

func (s *WordBankTestSuite) TestGetWordUnknownCategory() {
	_, err := s.bank.GetWord("quantum physics")
	s.ErrorIs(err, ErrUnknownCategory)
}

func (s *WordBankTestSuite) TestCategories() {
	s.ElementsMatch(
		[]string{"animals", "food", "places", "objects", "sports"},
		s.bank.Categories(),
	)
}

func (s *WordBankTestSuite) TestCustomWordTable() {
	bank, err := New(&Config{
		Source: random.New(&random.Config{Seed: 7}),
		Words:  map[string][]string{"test": {"only"}},
	})
	s.Require().NoError(err)

	word, err := bank.GetWord("test")
	s.NoError(err)
	s.Equal("only", word)

	_, err = bank.GetWord("animals")
	s.ErrorIs(err, ErrUnknownCategory)
}

func (s *WordBankTestSuite) TestNilSource() {
	_, err := New(&Config{})
	s.Error(err)
}
