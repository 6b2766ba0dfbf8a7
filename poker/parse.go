package poker

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when card notation cannot be parsed
var ErrInvalidCard = errors.New("invalid card")

// ParseCard parses a single card in [Rank][Suit] notation, e.g. "As" or "Td".
// "10" is accepted as an alternative to "T".
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "10") {
		s = "T" + s[2:]
	}
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q must be two characters", ErrInvalidCard, s)
	}

	rank, err := parseRank(s[0])
	if err != nil {
		return Card{}, err
	}
	suit, err := parseSuit(s[1])
	if err != nil {
		return Card{}, err
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses a run of card notation into a Hand.
// Format: "AsKsQsJsTs" where each card is [Rank][Suit]; spaces and commas are ignored.
// Ranks: A, K, Q, J, T (or 10), 9, 8, 7, 6, 5, 4, 3, 2
// Suits: s (spades), c (clubs), h (hearts), d (diamonds)
func ParseCards(s string) (Hand, error) {
	s = strings.NewReplacer(" ", "", ",", "", "10", "T").Replace(s)
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: card string length %d must be even", ErrInvalidCard, len(s))
	}

	cards := make(Hand, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		rank, err := parseRank(s[i])
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		suit, err := parseSuit(s[i+1])
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i+1, err)
		}
		cards = append(cards, Card{Rank: rank, Suit: suit})
	}

	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) Hand {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

func parseRank(c byte) (Rank, error) {
	switch c {
	case 'A', 'a':
		return Ace, nil
	case 'K', 'k':
		return King, nil
	case 'Q', 'q':
		return Queen, nil
	case 'J', 'j':
		return Jack, nil
	case 'T', 't':
		return Ten, nil
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return Rank(c - '0'), nil
	default:
		return 0, fmt.Errorf("%w: unknown rank '%c'", ErrInvalidCard, c)
	}
}

func parseSuit(c byte) (Suit, error) {
	switch c {
	case 's', 'S':
		return Spades, nil
	case 'c', 'C':
		return Clubs, nil
	case 'h', 'H':
		return Hearts, nil
	case 'd', 'D':
		return Diamonds, nil
	default:
		return 0, fmt.Errorf("%w: unknown suit '%c'", ErrInvalidCard, c)
	}
}
