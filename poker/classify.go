package poker

// Result describes the category of a five-card hand together with the ranks needed to
// break ties between hands of the same category. Fields that do not apply to the
// category are zero.
type Result struct {
	Category Category
	// HighCard is the deciding card for straights and flushes, and the top card of the
	// hand for grouped categories. Zero for HighCard hands, which use Primary instead.
	HighCard Rank
	// Primary is the rank of the named group (quads, trips, the higher pair, the pair),
	// or the top card of a HighCard hand.
	Primary Rank
	// Secondary is the lower pair of TwoPair or the pair of a FullHouse.
	Secondary Rank
}

// analysis holds the per-call working state: a rank-sorted copy of the hand and the
// rank and suit histograms. It lives on the caller's stack.
type analysis struct {
	cards [HandSize]Card
	ranks [NumRanks]uint8 // index rank-2
	suits [NumSuits]uint8 // index suit id
}

// predicate reports whether an analysed hand belongs to a category
type predicate func(a *analysis) bool

// classifiers is checked top to bottom and the first predicate that holds decides the
// category. The order runs strongest to weakest and must stay that way: a full house
// also has trips, a royal flush is also a flush and a straight.
var classifiers = [...]struct {
	category Category
	holds    predicate
}{
	{RoyalFlush, (*analysis).isRoyalFlush},
	{StraightFlush, (*analysis).isStraightFlush},
	{FourOfAKind, (*analysis).isFourOfAKind},
	{FullHouse, (*analysis).isFullHouse},
	{Flush, (*analysis).isFlush},
	{Straight, (*analysis).isStraight},
	{ThreeOfAKind, (*analysis).isThreeOfAKind},
	{TwoPair, (*analysis).isTwoPair},
	{Pair, (*analysis).isPair},
}

// Classify determines the category and tie-break ranks of a five-card hand.
// The hand may be in any order and is not modified. A hand that does not hold exactly
// five cards with valid ranks and suits is rejected with an error wrapping
// ErrInvalidHand. Classify is safe for concurrent use.
func Classify(h Hand) (Result, error) {
	if err := h.Validate(); err != nil {
		return Result{}, err
	}

	var a analysis
	a.load(h)

	category := HighCard
	for _, c := range classifiers {
		if c.holds(&a) {
			category = c.category
			break
		}
	}

	return a.result(category), nil
}

// MustClassify classifies a hand and panics on error (for tests and literals)
func MustClassify(h Hand) Result {
	r, err := Classify(h)
	if err != nil {
		panic(err)
	}
	return r
}

// load copies the hand, sorts it by rank and fills the histograms. h must be valid.
func (a *analysis) load(h Hand) {
	copy(a.cards[:], h)

	// Insertion sort keeps equal ranks in input order and avoids allocating.
	for i := 1; i < len(a.cards); i++ {
		c := a.cards[i]
		j := i - 1
		for j >= 0 && a.cards[j].Rank > c.Rank {
			a.cards[j+1] = a.cards[j]
			j--
		}
		a.cards[j+1] = c
	}

	for _, c := range a.cards {
		a.ranks[c.Rank-Two]++
		a.suits[c.Suit]++
	}
}

func (a *analysis) low() Rank  { return a.cards[0].Rank }
func (a *analysis) high() Rank { return a.cards[len(a.cards)-1].Rank }

// buckets returns how many ranks occur exactly n times
func (a *analysis) buckets(n uint8) int {
	count := 0
	for _, c := range a.ranks {
		if c == n {
			count++
		}
	}
	return count
}

// rankWithCount returns the highest rank occurring exactly n times, or 0 if none does
func (a *analysis) rankWithCount(n uint8) Rank {
	for i := len(a.ranks) - 1; i >= 0; i-- {
		if a.ranks[i] == n {
			return Rank(i) + Two
		}
	}
	return 0
}

// lowestRankWithCount returns the lowest rank occurring exactly n times, or 0 if none does
func (a *analysis) lowestRankWithCount(n uint8) Rank {
	for i, c := range a.ranks {
		if c == n {
			return Rank(i) + Two
		}
	}
	return 0
}

func (a *analysis) isFlush() bool {
	for _, c := range a.suits {
		if c == HandSize {
			return true
		}
	}
	return false
}

// isStraight requires five consecutive ranks. Aces only play high, so A-2-3-4-5 is not
// a straight.
func (a *analysis) isStraight() bool {
	for i := 1; i < len(a.cards); i++ {
		if a.cards[i].Rank != a.cards[i-1].Rank+1 {
			return false
		}
	}
	return true
}

func (a *analysis) isRoyalFlush() bool {
	return a.isFlush() && a.isStraight() && a.low() == Ten
}

func (a *analysis) isStraightFlush() bool {
	return a.isFlush() && a.isStraight() && !a.isRoyalFlush()
}

func (a *analysis) isFourOfAKind() bool {
	return a.buckets(4) > 0
}

func (a *analysis) isFullHouse() bool {
	return a.buckets(3) > 0 && a.buckets(2) > 0
}

func (a *analysis) isThreeOfAKind() bool {
	return a.buckets(3) > 0 && !a.isFullHouse()
}

func (a *analysis) isTwoPair() bool {
	return a.buckets(2) == 2
}

func (a *analysis) isPair() bool {
	return a.buckets(2) == 1 && !a.isFullHouse()
}

// result extracts the tie-break ranks for the winning category
func (a *analysis) result(category Category) Result {
	r := Result{Category: category}

	switch category {
	case RoyalFlush:
		r.HighCard = Ace
	case StraightFlush, Flush, Straight:
		r.HighCard = a.high()
	case FourOfAKind:
		r.HighCard = a.high()
		r.Primary = a.rankWithCount(4)
	case FullHouse:
		r.HighCard = a.high()
		r.Primary = a.rankWithCount(3)
		r.Secondary = a.rankWithCount(2)
	case ThreeOfAKind:
		r.HighCard = a.high()
		r.Primary = a.rankWithCount(3)
	case TwoPair:
		r.HighCard = a.high()
		r.Primary = a.rankWithCount(2)
		r.Secondary = a.lowestRankWithCount(2)
	case Pair:
		r.HighCard = a.high()
		r.Primary = a.rankWithCount(2)
	default:
		r.Primary = a.high()
	}

	return r
}
