package tracker

import (
	"fmt"

	"github.com/0x4D44/mdhearts-sub002/card"
	"github.com/0x4D44/mdhearts-sub002/rules"
	"github.com/0x4D44/mdhearts-sub002/internal/randutil"
)

// maxSampleRetries bounds how many times sample_world retries a rejected
// deal before relaxing the weakest (most recently inferred) void
// constraint, per spec.md §4.1.
const maxSampleRetries = 8

// World is one candidate deal of the tracker's unseen cards across the
// three seats other than the observer.
type World struct {
	Hands [rules.NumSeats]card.Hand
}

// SampleWorld deals the tracker's unseen cards to the three seats other
// than the observer, honouring counts (each seat's resulting hand size)
// and the tracker's known-void matrix. Sampling is pseudo-random but fully
// determined by seed: the same tracker state and seed always produce the
// same world.
//
// counts must sum to u.unseen.Count() and must not include an entry for
// the observer (it is ignored).
//
// When repeated rejection sampling cannot satisfy the void matrix (rare,
// from aggressive void inference compounding across retries), the weakest
// constraint — the most recently inferred void flag — is dropped and
// sampling retries. Failure to ever produce a feasible deal is reported via
// the returned error rather than panicking.
func (u *UnseenTracker) SampleWorld(counts [rules.NumSeats]int, seed int64) (World, error) {
	working := u.Clone()

	total := 0
	for s := rules.Seat(0); s < rules.NumSeats; s++ {
		if s == u.observer {
			continue
		}
		total += counts[s]
	}
	if total != working.unseen.Count() {
		return World{}, fmt.Errorf("tracker: counts sum %d does not match unseen count %d", total, working.unseen.Count())
	}

	for attempt := 0; ; attempt++ {
		world, ok := tryDeal(working, counts, randutil.Derive(seed, attempt))
		if ok {
			return world, nil
		}
		if attempt > 0 && attempt%maxSampleRetries == 0 {
			if !working.relaxWeakestVoid() {
				return World{}, fmt.Errorf("tracker: no feasible deal for seed %d after %d attempts", seed, attempt+1)
			}
		}
		if attempt >= maxSampleRetries*4 {
			return World{}, fmt.Errorf("tracker: sampling exhausted for seed %d", seed)
		}
	}
}

// relaxWeakestVoid drops the most recently inferred void constraint still
// recorded on working, returning false if none remain to drop.
func (u *UnseenTracker) relaxWeakestVoid() bool {
	if len(u.order) == 0 {
		return false
	}
	last := u.order[len(u.order)-1]
	u.order = u.order[:len(u.order)-1]
	u.void[last.seat][last.suit] = false
	return true
}

// tryDeal attempts one rejection-sampling pass: shuffle the unseen cards
// with a seeded Fisher-Yates pass, then give each card, in shuffle order,
// to the non-void seat with the most remaining capacity (see pickSeat). The
// pass fails when some card has no eligible seat or a seat ends short of
// its count.
func tryDeal(u *UnseenTracker, counts [rules.NumSeats]int, seed int64) (World, bool) {
	rng := randutil.New(seed)
	cards := u.unseen.Cards()
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}

	remaining := counts
	var world World
	for _, c := range cards {
		seat, ok := pickSeat(u, remaining, c)
		if !ok {
			return World{}, false
		}
		world.Hands[seat] = world.Hands[seat].Add(c)
		remaining[seat]--
	}
	for s := rules.Seat(0); s < rules.NumSeats; s++ {
		if s != u.observer && remaining[s] != 0 {
			return World{}, false
		}
	}
	return world, true
}

// pickSeat chooses a seat to receive c: any seat with remaining capacity
// that is not known void in c's suit. When every eligible seat is void
// (infeasible deal) it reports failure rather than violating the void
// matrix.
func pickSeat(u *UnseenTracker, remaining [rules.NumSeats]int, c card.Card) (rules.Seat, bool) {
	best := rules.Seat(255)
	bestRemaining := -1
	for s := rules.Seat(0); s < rules.NumSeats; s++ {
		if s == u.observer || remaining[s] <= 0 {
			continue
		}
		if u.void[s][c.Suit()] {
			continue
		}
		if remaining[s] > bestRemaining {
			best = s
			bestRemaining = remaining[s]
		}
	}
	if bestRemaining < 0 {
		return 0, false
	}
	return best, true
}
