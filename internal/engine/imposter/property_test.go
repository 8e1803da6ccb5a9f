package imposter

import (
	"context"
	"fmt"
	"testing"

	"pgregory.net/rapid"

	"github.com/partyround/gamecore/internal/common/clock"
	"github.com/partyround/gamecore/internal/models"
	"github.com/partyround/gamecore/internal/random"
	"github.com/partyround/gamecore/internal/wordbank"
)

func newSeededEngine(t *rapid.T, seed int64) Service {
	src := random.New(&random.Config{Seed: seed})
	bank, err := wordbank.New(&wordbank.Config{Source: src})
	if err != nil {
		t.Fatalf("word bank: %v", err)
	}
	engine, err := New(&Config{
		WordBank: bank,
		Random:   src,
		Clock:    &clock.DefaultClock{},
	})
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	return engine
}

func playerIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("p%d", i+1)
	}
	return ids
}

func TestInitRoundProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Int64Range(1, 1<<30).Draw(t, "seed")
		n := rapid.IntRange(3, 10).Draw(t, "players")

		engine := newSeededEngine(t, seed)
		out, err := engine.InitRound(context.Background(), &InitRoundInput{
			PlayerIDs: playerIDs(n),
			Round:     1,
		})
		if err != nil {
			t.Fatalf("init round: %v", err)
		}
		state := out.State

		// Speaking order is a permutation of exactly the round's players
		if len(state.SpeakingOrder) != n {
			t.Fatalf("order has %d entries, want %d", len(state.SpeakingOrder), n)
		}
		seen := make(map[string]bool, n)
		for _, id := range state.SpeakingOrder {
			if seen[id] {
				t.Fatalf("duplicate %q in speaking order", id)
			}
			seen[id] = true
		}
		for _, id := range playerIDs(n) {
			if !seen[id] {
				t.Fatalf("player %q missing from speaking order", id)
			}
		}

		// The imposter never receives the word
		for _, id := range state.PlayersWithWord {
			if id == state.ImposterID {
				t.Fatalf("imposter %q is in players-with-word", id)
			}
		}
		if len(state.PlayersWithWord) != n-1 {
			t.Fatalf("%d players with word, want %d", len(state.PlayersWithWord), n-1)
		}
	})
}

func TestTallyProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Int64Range(1, 1<<30).Draw(t, "seed")
		n := rapid.IntRange(3, 8).Draw(t, "players")

		engine := newSeededEngine(t, seed)
		ctx := context.Background()

		out, err := engine.InitRound(ctx, &InitRoundInput{
			PlayerIDs: playerIDs(n),
			Round:     1,
		})
		if err != nil {
			t.Fatalf("init round: %v", err)
		}
		state := out.State

		if _, err := engine.AdvancePhase(ctx, &AdvancePhaseInput{State: state}); err != nil {
			t.Fatalf("advance to speaking: %v", err)
		}
		for _, id := range append([]string{}, state.SpeakingOrder...) {
			if _, err := engine.RecordSpokenWord(ctx, &RecordSpokenWordInput{
				State:    state,
				PlayerID: id,
				Word:     "w",
			}); err != nil {
				t.Fatalf("speak %q: %v", id, err)
			}
		}

		ids := playerIDs(n)
		voters := rapid.IntRange(0, n).Draw(t, "voters")
		votesCast := 0
		for i := 0; i < voters; i++ {
			target := ids[rapid.IntRange(0, n-1).Draw(t, fmt.Sprintf("target%d", i))]
			if _, err := engine.CastVote(ctx, &CastVoteInput{
				State:    state,
				VoterID:  ids[i],
				TargetID: target,
			}); err != nil {
				t.Fatalf("vote %q: %v", ids[i], err)
			}
			votesCast++
		}

		participants := make([]*models.GameParticipant, n)
		for i, id := range ids {
			participants[i] = &models.GameParticipant{UserID: id, UserName: id, Active: true}
		}

		tallyOut, err := engine.Tally(ctx, &TallyInput{State: state, Participants: participants})
		if err != nil {
			t.Fatalf("tally: %v", err)
		}
		results := tallyOut.Results

		// Vote counts sum to votes cast
		sum := 0
		maxCount := 0
		atMax := 0
		for _, count := range results.VoteCounts {
			sum += count
			if count > maxCount {
				maxCount = count
				atMax = 1
			} else if count == maxCount {
				atMax++
			}
		}
		if sum != votesCast {
			t.Fatalf("counts sum to %d, want %d", sum, votesCast)
		}

		// A tied maximum eliminates nobody and the imposter survives
		if votesCast == 0 || atMax > 1 {
			if results.VotedOutID != "" {
				t.Fatalf("voted out %q on a tie", results.VotedOutID)
			}
			if len(results.WinnerIDs) != 1 || results.WinnerIDs[0] != state.ImposterID {
				t.Fatalf("tie winners = %v, want imposter %q alone", results.WinnerIDs, state.ImposterID)
			}
		}

		// The winner list is never empty and matches the caught flag
		if len(results.WinnerIDs) == 0 {
			t.Fatal("winner list is empty")
		}
		if results.WasImposterVotedOut {
			for _, id := range results.WinnerIDs {
				if id == state.ImposterID {
					t.Fatal("imposter listed among winners after being voted out")
				}
			}
		}
	})
}
