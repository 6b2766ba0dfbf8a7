package poker

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// HandSize is the number of cards in a classifiable hand
const HandSize = 5

// ErrInvalidHand is returned when a hand does not hold exactly five in-range cards
var ErrInvalidHand = errors.New("invalid hand")

// Hand is an ordered sequence of cards. Its length is not fixed by the type so that
// malformed hands can be rejected explicitly rather than truncated.
type Hand []Card

// NewHand creates a hand from the given cards
func NewHand(cards ...Card) Hand {
	return slices.Clone(Hand(cards))
}

// Sorted returns a copy of the hand ordered by rank ascending. Cards of equal rank keep
// their relative order. The receiver is not modified.
func (h Hand) Sorted() Hand {
	sorted := slices.Clone(h)
	slices.SortStableFunc(sorted, func(a, b Card) int {
		return int(a.Rank) - int(b.Rank)
	})
	return sorted
}

// Validate checks that the hand holds exactly HandSize cards with valid ranks and suits
func (h Hand) Validate() error {
	if len(h) != HandSize {
		return fmt.Errorf("%w: expected %d cards, got %d", ErrInvalidHand, HandSize, len(h))
	}
	for i, c := range h {
		if !c.Rank.Valid() {
			return fmt.Errorf("%w: card %d has rank %d outside 2-14", ErrInvalidHand, i+1, c.Rank)
		}
		if !c.Suit.Valid() {
			return fmt.Errorf("%w: card %d has unknown suit %d", ErrInvalidHand, i+1, c.Suit)
		}
	}
	return nil
}

// String returns the hand in short notation separated by spaces (e.g., "As Ks Qs Js Ts")
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
