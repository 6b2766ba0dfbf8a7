// Package poker models playing cards and classifies five-card poker hands.
package poker

import "fmt"

// Suit represents a card suit
type Suit uint8

const (
	Spades Suit = iota
	Clubs
	Hearts
	Diamonds
)

// NumSuits is the number of suits in a standard deck
const NumSuits = 4

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s <= Diamonds
}

// String returns the single-letter notation for the suit (s, c, h, d)
func (s Suit) String() string {
	switch s {
	case Spades:
		return "s"
	case Clubs:
		return "c"
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	default:
		return "?"
	}
}

// Name returns the display name of the suit
func (s Suit) Name() string {
	switch s {
	case Spades:
		return "Spades"
	case Clubs:
		return "Clubs"
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	default:
		return "Undefined"
	}
}

// Symbol returns the unicode suit symbol
func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Clubs:
		return "♣"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. Ranks use their face value, with aces high (14).
type Rank uint8

const (
	Two Rank = iota + 2
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

// NumRanks is the number of distinct ranks in a standard deck
const NumRanks = 13

// Valid reports whether r lies in the Two..Ace range
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// String returns the single-character notation for the rank (2-9, T, J, Q, K, A)
func (r Rank) String() string {
	switch {
	case r >= Two && r <= Nine:
		return string(rune('0' + r))
	case r == Ten:
		return "T"
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	default:
		return "?"
	}
}

// Name returns the display name of the rank: numeric for 2-10, the face name otherwise
func (r Rank) Name() string {
	switch {
	case r >= Two && r <= Ten:
		return fmt.Sprintf("%d", r)
	case r == Jack:
		return "Jack"
	case r == Queen:
		return "Queen"
	case r == King:
		return "King"
	case r == Ace:
		return "Ace"
	default:
		return "Undefined"
	}
}

// Card represents a playing card. Cards are plain values and compare with ==.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card. Ranks and suits are not validated here; see Hand.Validate.
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Valid reports whether both rank and suit are in range
func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit.Valid()
}

// String returns the short notation of a card (e.g., "As")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Name returns the long form of a card (e.g., "Ace of Spades")
func (c Card) Name() string {
	return c.Rank.Name() + " of " + c.Suit.Name()
}

// Symbol returns the rank followed by the suit symbol (e.g., "A♠")
func (c Card) Symbol() string {
	return c.Rank.String() + c.Suit.Symbol()
}
