// Package card models the 52-card deck shared by every component of the
// decision engine: ranks, suits, penalty values, and a compact Card type.
package card

import "fmt"

// Suit identifies one of the four suits. Values are chosen so that Clubs
// sorts before Diamonds before Hearts before Spades, matching the canonical
// tie-break order used throughout the engine (suit then rank).
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	case Hearts:
		return "h"
	case Spades:
		return "s"
	default:
		return "?"
	}
}

// Rank identifies a card's rank. Two is the lowest, Ace the highest.
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

func (r Rank) String() string {
	switch r {
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return fmt.Sprintf("%d", int(r)+2)
	}
}

// NumSuits and NumRanks are the fixed dimensions of a standard deck.
const (
	NumSuits = 4
	NumRanks = 13
	NumCards = NumSuits * NumRanks
)

// Card packs a rank and suit into a single byte: index = suit*13 + rank.
// This layout lets a Hand's bitmask carve out each suit as a contiguous
// 13-bit segment, mirroring the teacher's Hand.GetSuitMask technique.
type Card uint8

// New builds a Card from a rank and suit.
func New(rank Rank, suit Suit) Card {
	return Card(uint8(suit)*NumRanks + uint8(rank))
}

// Rank returns the card's rank.
func (c Card) Rank() Rank { return Rank(uint8(c) % NumRanks) }

// Suit returns the card's suit.
func (c Card) Suit() Suit { return Suit(uint8(c) / NumRanks) }

// Index returns the card's position in [0, NumCards), identical to its
// underlying byte value — exposed for bitmask code that wants a plain int.
func (c Card) Index() int { return int(c) }

// PenaltyValue returns the card's scoring weight: 13 for the Queen of
// Spades, 1 per Heart, 0 otherwise.
func (c Card) PenaltyValue() int {
	switch {
	case c == QueenOfSpades:
		return 13
	case c.Suit() == Hearts:
		return 1
	default:
		return 0
	}
}

// QueenOfSpades and TwoOfClubs are referenced often enough by the rules
// kernel and planners to warrant named constants.
var (
	QueenOfSpades = New(Queen, Spades)
	TwoOfClubs    = New(Two, Clubs)
)

func (c Card) String() string {
	return c.Rank().String() + c.Suit().String()
}

// Less implements the canonical tie-break order: suit first, then rank.
func (c Card) Less(other Card) bool {
	if c.Suit() != other.Suit() {
		return c.Suit() < other.Suit()
	}
	return c.Rank() < other.Rank()
}

// Parse reads a two-character card string such as "Qs" or "Th".
func Parse(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("card: invalid card string %q", s)
	}
	var rank Rank
	switch s[0] {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		rank = Rank(s[0] - '2')
	case 'T', 't':
		rank = Ten
	case 'J', 'j':
		rank = Jack
	case 'Q', 'q':
		rank = Queen
	case 'K', 'k':
		rank = King
	case 'A', 'a':
		rank = Ace
	default:
		return 0, fmt.Errorf("card: invalid rank in %q", s)
	}
	var suit Suit
	switch s[1] {
	case 'c', 'C':
		suit = Clubs
	case 'd', 'D':
		suit = Diamonds
	case 'h', 'H':
		suit = Hearts
	case 's', 'S':
		suit = Spades
	default:
		return 0, fmt.Errorf("card: invalid suit in %q", s)
	}
	return New(rank, suit), nil
}
