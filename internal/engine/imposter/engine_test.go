package imposter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/partyround/gamecore/internal/common/clock/mocks"
	"github.com/partyround/gamecore/internal/models"
	randomMocks "github.com/partyround/gamecore/internal/random/mocks"
	wordbankMocks "github.com/partyround/gamecore/internal/wordbank/mocks"
)

type EngineTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockWordBank *wordbankMocks.MockWordBank
	mockRandom   *randomMocks.MockSource
	mockClock    *clockMocks.MockClock
	engine       Service
	ctx          context.Context

	testTime  time.Time
	playerIDs []string
}

func (s *EngineTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockWordBank = wordbankMocks.NewMockWordBank(s.mockCtrl)
	s.mockRandom = randomMocks.NewMockSource(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)

	s.ctx = context.Background()
	s.testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.playerIDs = []string{"p1", "p2", "p3", "p4"}

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	engine, err := New(&Config{
		WordBank: s.mockWordBank,
		Random:   s.mockRandom,
		Clock:    s.mockClock,
	})
	s.Require().NoError(err)
	s.engine = engine
}

func (s *EngineTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

// initRound builds a round with p1 as imposter and speaking order
// p2, p1, p3, p4
func (s *EngineTestSuite) initRound() *models.ImposterGameState {
	s.mockRandom.EXPECT().Intn(4).Return(0)
	s.mockWordBank.EXPECT().GetWord("animals").Return("penguin", nil)
	s.mockRandom.EXPECT().Perm(4).Return([]int{1, 0, 2, 3})

	out, err := s.engine.InitRound(s.ctx, &InitRoundInput{
		PlayerIDs: s.playerIDs,
		Round:     1,
		Category:  "animals",
	})
	s.Require().NoError(err)
	return out.State
}

// toSpeaking advances a fresh round past the word-assignment window
func (s *EngineTestSuite) toSpeaking(state *models.ImposterGameState) {
	_, err := s.engine.AdvancePhase(s.ctx, &AdvancePhaseInput{State: state})
	s.Require().NoError(err)
	s.Require().Equal(models.ImposterPhaseSpeaking, state.Phase)
}

// toVoting runs a full speaking pass
func (s *EngineTestSuite) toVoting(state *models.ImposterGameState) {
	s.toSpeaking(state)
	for _, id := range append([]string{}, state.SpeakingOrder...) {
		_, err := s.engine.RecordSpokenWord(s.ctx, &RecordSpokenWordInput{
			State:    state,
			PlayerID: id,
			Word:     "something",
		})
		s.Require().NoError(err)
	}
	s.Require().Equal(models.ImposterPhaseVoting, state.Phase)
}

func (s *EngineTestSuite) TestInitRound() {
	state := s.initRound()

	s.Equal(1, state.Round)
	s.Equal("p1", state.ImposterID)
	s.Equal("penguin", state.Word)
	s.Equal(models.ImposterPhaseWordAssignment, state.Phase)

	// The imposter never receives the word
	s.ElementsMatch([]string{"p2", "p3", "p4"}, state.PlayersWithWord)
	s.NotContains(state.PlayersWithWord, state.ImposterID)

	// Speaking order is a permutation of all players, imposter included
	s.ElementsMatch(s.playerIDs, state.SpeakingOrder)
	s.Equal("p2", state.CurrentSpeakerID)

	// The read window is stamped from the injected clock
	s.Require().NotNil(state.PhaseDeadline)
	s.Equal(s.testTime.Add(DefaultReadTime), *state.PhaseDeadline)
}

func (s *EngineTestSuite) TestInitRoundInsufficientPlayers() {
	_, err := s.engine.InitRound(s.ctx, &InitRoundInput{
		PlayerIDs: []string{"p1", "p2"},
		Round:     1,
	})
	s.ErrorIs(err, ErrInsufficientPlayers)
}

func (s *EngineTestSuite) TestRecordSpokenWordBeforeSpeakingPhase() {
	state := s.initRound()

	_, err := s.engine.RecordSpokenWord(s.ctx, &RecordSpokenWordInput{
		State:    state,
		PlayerID: "p2",
		Word:     "waddles",
	})
	s.ErrorIs(err, ErrInvalidPhase)
}

func (s *EngineTestSuite) TestRecordSpokenWordOutOfTurn() {
	state := s.initRound()
	s.toSpeaking(state)

	_, err := s.engine.RecordSpokenWord(s.ctx, &RecordSpokenWordInput{
		State:    state,
		PlayerID: "p4",
		Word:     "waddles",
	})
	s.ErrorIs(err, ErrNotYourTurn)
	s.Empty(state.SpokenWords)
}

func (s *EngineTestSuite) TestRecordSpokenWordUnknownPlayer() {
	state := s.initRound()
	s.toSpeaking(state)

	_, err := s.engine.RecordSpokenWord(s.ctx, &RecordSpokenWordInput{
		State:    state,
		PlayerID: "intruder",
		Word:     "waddles",
	})
	s.ErrorIs(err, ErrNotAPlayer)
}

func (s *EngineTestSuite) TestSpeakingAdvancesTurnAndPhase() {
	state := s.initRound()
	s.toSpeaking(state)

	out, err := s.engine.RecordSpokenWord(s.ctx, &RecordSpokenWordInput{
		State:    state,
		PlayerID: "p2",
		Word:     "waddles",
	})
	s.Require().NoError(err)
	s.Equal("p1", out.NextSpeakerID)
	s.False(out.SpeakingComplete)

	for _, id := range []string{"p1", "p3"} {
		_, err = s.engine.RecordSpokenWord(s.ctx, &RecordSpokenWordInput{
			State:    state,
			PlayerID: id,
			Word:     "words",
		})
		s.Require().NoError(err)
	}

	out, err = s.engine.RecordSpokenWord(s.ctx, &RecordSpokenWordInput{
		State:    state,
		PlayerID: "p4",
		Word:     "words",
	})
	s.Require().NoError(err)
	s.True(out.SpeakingComplete)
	s.Equal(models.ImposterPhaseVoting, state.Phase)
	s.Len(state.SpokenWords, 4)

	// Every utterance carries the round it was spoken in
	for _, spoken := range state.SpokenWords {
		s.Equal(1, spoken.Round)
	}
}

func (s *EngineTestSuite) TestCastVoteDuplicate() {
	state := s.initRound()
	s.toVoting(state)

	_, err := s.engine.CastVote(s.ctx, &CastVoteInput{
		State:    state,
		VoterID:  "p2",
		TargetID: "p1",
	})
	s.Require().NoError(err)

	_, err = s.engine.CastVote(s.ctx, &CastVoteInput{
		State:    state,
		VoterID:  "p2",
		TargetID: "p3",
	})
	s.ErrorIs(err, ErrDuplicateVote)
	s.Equal("p1", state.Votes["p2"].TargetID)
}

func (s *EngineTestSuite) TestCastVoteOverwrite() {
	state := s.initRound()
	s.toVoting(state)

	_, err := s.engine.CastVote(s.ctx, &CastVoteInput{
		State:    state,
		VoterID:  "p2",
		TargetID: "p1",
	})
	s.Require().NoError(err)

	out, err := s.engine.CastVote(s.ctx, &CastVoteInput{
		State:     state,
		VoterID:   "p2",
		TargetID:  "p3",
		Overwrite: true,
	})
	s.Require().NoError(err)
	s.Equal(1, out.VotesCast)
	s.Equal("p3", state.Votes["p2"].TargetID)
}

func (s *EngineTestSuite) vote(state *models.ImposterGameState, voterID, targetID string) {
	_, err := s.engine.CastVote(s.ctx, &CastVoteInput{
		State:    state,
		VoterID:  voterID,
		TargetID: targetID,
	})
	s.Require().NoError(err)
}

func (s *EngineTestSuite) participants() []*models.GameParticipant {
	names := map[string]string{"p1": "Ana", "p2": "Ben", "p3": "Cleo", "p4": "Dev"}
	participants := make([]*models.GameParticipant, 0, len(names))
	for _, id := range s.playerIDs {
		participants = append(participants, &models.GameParticipant{
			UserID:   id,
			UserName: names[id],
			Role:     models.RolePlayer,
			Active:   true,
		})
	}
	return participants
}

func (s *EngineTestSuite) TestTallyTieEliminatesNobody() {
	state := s.initRound()
	s.toVoting(state)

	// 2-2 split between the imposter and p3
	s.vote(state, "p2", "p1")
	s.vote(state, "p3", "p1")
	s.vote(state, "p1", "p3")
	s.vote(state, "p4", "p3")

	out, err := s.engine.Tally(s.ctx, &TallyInput{
		State:        state,
		Participants: s.participants(),
	})
	s.Require().NoError(err)

	results := out.Results
	s.Empty(results.VotedOutID)
	s.False(results.WasImposterVotedOut)
	s.Equal([]string{"p1"}, results.WinnerIDs)
	s.Equal(models.ImposterPhaseResults, state.Phase)
	s.Nil(state.PhaseDeadline)
}

func (s *EngineTestSuite) TestTallyImposterVotedOut() {
	state := s.initRound()
	s.toVoting(state)

	// 3 votes on the imposter, 1 elsewhere
	s.vote(state, "p2", "p1")
	s.vote(state, "p3", "p1")
	s.vote(state, "p4", "p1")
	s.vote(state, "p1", "p2")

	out, err := s.engine.Tally(s.ctx, &TallyInput{
		State:        state,
		Participants: s.participants(),
	})
	s.Require().NoError(err)

	results := out.Results
	s.Equal("p1", results.VotedOutID)
	s.True(results.WasImposterVotedOut)
	s.ElementsMatch([]string{"p2", "p3", "p4"}, results.WinnerIDs)
	s.Equal(3, results.VoteCounts["p1"])
	s.Equal(1, results.VoteCounts["p2"])

	// Details resolve ids to display names, in speaking order
	s.Require().Len(results.Details, 4)
	s.Equal("Ben", results.Details[0].VoterName)
	s.Equal("Ana", results.Details[0].TargetName)
}

func (s *EngineTestSuite) TestTallyDepartedPlayerDoesNotWin() {
	state := s.initRound()
	s.toVoting(state)

	s.vote(state, "p2", "p1")
	s.vote(state, "p3", "p1")
	s.vote(state, "p4", "p1")

	participants := s.participants()
	participants[3].Active = false // p4 left mid-round

	out, err := s.engine.Tally(s.ctx, &TallyInput{
		State:        state,
		Participants: participants,
	})
	s.Require().NoError(err)
	s.ElementsMatch([]string{"p2", "p3"}, out.Results.WinnerIDs)
}

func (s *EngineTestSuite) TestAdvancePhaseRunsTallyFromVoting() {
	state := s.initRound()
	s.toVoting(state)
	s.vote(state, "p2", "p1")

	out, err := s.engine.AdvancePhase(s.ctx, &AdvancePhaseInput{
		State:        state,
		Participants: s.participants(),
	})
	s.Require().NoError(err)
	s.Equal(models.ImposterPhaseResults, out.Phase)
	s.Require().NotNil(out.Results)
	s.Equal("p1", out.Results.VotedOutID)
	s.True(out.Results.WasImposterVotedOut)
}

func (s *EngineTestSuite) TestAdvancePhaseTerminal() {
	state := s.initRound()
	s.toVoting(state)

	_, err := s.engine.AdvancePhase(s.ctx, &AdvancePhaseInput{
		State:        state,
		Participants: s.participants(),
	})
	s.Require().NoError(err)

	out, err := s.engine.AdvancePhase(s.ctx, &AdvancePhaseInput{State: state})
	s.Require().NoError(err)
	s.Equal(models.ImposterPhaseGameOver, out.Phase)

	_, err = s.engine.AdvancePhase(s.ctx, &AdvancePhaseInput{State: state})
	s.ErrorIs(err, ErrInvalidPhase)
}

func (s *EngineTestSuite) TestVotingDeadlineStamped() {
	state := s.initRound()
	s.toSpeaking(state)

	for i, id := range append([]string{}, state.SpeakingOrder...) {
		input := &RecordSpokenWordInput{
			State:    state,
			PlayerID: id,
			Word:     "words",
		}
		if i == len(state.SpeakingOrder)-1 {
			input.VotingTimeLimit = time.Minute
		}
		_, err := s.engine.RecordSpokenWord(s.ctx, input)
		s.Require().NoError(err)
	}

	s.Require().Equal(models.ImposterPhaseVoting, state.Phase)
	s.Require().NotNil(state.PhaseDeadline)
	s.Equal(s.testTime.Add(time.Minute), *state.PhaseDeadline)
}
