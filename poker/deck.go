package poker

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// DeckSize is the number of cards in a standard deck
const DeckSize = NumSuits * NumRanks

// ErrDeckExhausted is returned when a deal asks for more cards than remain
var ErrDeckExhausted = errors.New("deck exhausted")

// Deck represents a standard 52-card deck
type Deck struct {
	cards [DeckSize]Card // Fixed size array
	next  int
	rng   *rand.Rand // Random source for deterministic shuffling
}

// NewDeck creates a new shuffled deck with explicit RNG. A nil rng falls back to the
// global source.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	d.fill()
	d.Shuffle()
	return d
}

func (d *Deck) fill() {
	i := 0
	for suit := Spades; suit <= Diamonds; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards[i] = NewCard(rank, suit)
			i++
		}
	}
}

// Shuffle shuffles the undealt and dealt cards together using Fisher-Yates and
// restarts dealing from the top
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal deals n cards from the deck as a new hand
func (d *Deck) Deal(n int) (Hand, error) {
	if n < 0 || d.next+n > len(d.cards) {
		return nil, fmt.Errorf("%w: %d requested, %d remaining", ErrDeckExhausted, n, d.CardsRemaining())
	}
	hand := make(Hand, n)
	copy(hand, d.cards[d.next:d.next+n])
	d.next += n
	return hand, nil
}

// DealHand deals a five-card hand
func (d *Deck) DealHand() (Hand, error) {
	return d.Deal(HandSize)
}

// Reset restores the full deck order and reshuffles
func (d *Deck) Reset() {
	d.fill()
	d.Shuffle()
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}
