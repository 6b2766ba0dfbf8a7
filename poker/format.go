package poker

import "fmt"

// String renders the result in the form "Full house Cards: Three: King Two: 9"
func (r Result) String() string {
	name := r.Category.String()

	switch r.Category {
	case RoyalFlush:
		return name
	case StraightFlush, Flush, Straight:
		return fmt.Sprintf("%s High: %s", name, r.HighCard.Name())
	case FourOfAKind:
		return fmt.Sprintf("%s Cards: %s", name, r.Primary.Name())
	case FullHouse:
		return fmt.Sprintf("%s Cards: Three: %s Two: %s", name, r.Primary.Name(), r.Secondary.Name())
	case ThreeOfAKind, Pair:
		return fmt.Sprintf("%s Card: %s", name, r.Primary.Name())
	case TwoPair:
		return fmt.Sprintf("%s Cards: %s and %s", name, r.Primary.Name(), r.Secondary.Name())
	case HighCard:
		return fmt.Sprintf("%s Card: %s", name, r.Primary.Name())
	default:
		return name
	}
}
