package poker

import (
	"errors"
	"testing"

	"github.com/lox/handclass/internal/randutil"
)

func TestDeck(t *testing.T) {
	t.Parallel()
	deck := NewDeck(randutil.New(42))

	if deck.CardsRemaining() != DeckSize {
		t.Fatalf("Expected %d cards, got %d", DeckSize, deck.CardsRemaining())
	}

	seen := make(map[Card]bool)
	for i := 0; i < DeckSize/HandSize; i++ {
		hand, err := deck.DealHand()
		if err != nil {
			t.Fatalf("DealHand() #%d: %v", i+1, err)
		}
		if err := hand.Validate(); err != nil {
			t.Errorf("Dealt invalid hand %s: %v", hand, err)
		}
		for _, c := range hand {
			if seen[c] {
				t.Errorf("Dealt %s twice", c)
			}
			seen[c] = true
		}
	}

	if deck.CardsRemaining() != 2 {
		t.Errorf("Expected 2 remaining cards, got %d", deck.CardsRemaining())
	}

	// Should not be able to deal another hand
	if _, err := deck.DealHand(); !errors.Is(err, ErrDeckExhausted) {
		t.Errorf("Expected ErrDeckExhausted, got %v", err)
	}

	last, err := deck.Deal(2)
	if err != nil || len(last) != 2 {
		t.Fatalf("Deal(2) = %v, %v", last, err)
	}

	deck.Reset()
	if deck.CardsRemaining() != DeckSize {
		t.Errorf("Expected full deck after reset, got %d", deck.CardsRemaining())
	}
	if _, err := deck.DealHand(); err != nil {
		t.Errorf("Should be able to deal after reset: %v", err)
	}
}

func TestDeckDeterministic(t *testing.T) {
	t.Parallel()
	a := NewDeck(randutil.New(7))
	b := NewDeck(randutil.New(7))

	for i := 0; i < 10; i++ {
		ha, errA := a.DealHand()
		hb, errB := b.DealHand()
		if errA != nil || errB != nil {
			t.Fatalf("DealHand() errors: %v, %v", errA, errB)
		}
		if ha.String() != hb.String() {
			t.Errorf("Hand %d differs for same seed: %s vs %s", i+1, ha, hb)
		}
	}
}

func TestDeckDealNegative(t *testing.T) {
	t.Parallel()
	deck := NewDeck(nil)
	if _, err := deck.Deal(-1); !errors.Is(err, ErrDeckExhausted) {
		t.Errorf("Deal(-1) should fail, got %v", err)
	}
}

func TestDealtHandIsIndependent(t *testing.T) {
	t.Parallel()
	deck := NewDeck(randutil.New(1))
	hand, err := deck.DealHand()
	if err != nil {
		t.Fatal(err)
	}
	first := hand[0]
	hand[0] = NewCard(Two, Clubs)

	deck.Shuffle()
	found := false
	for deck.CardsRemaining() > 0 {
		c, _ := deck.Deal(1)
		if c[0] == first {
			found = true
		}
	}
	if !found {
		t.Errorf("Mutating a dealt hand must not change the deck")
	}
}
