package game

// Distances maps a card type to its allowed travel distances: fixed for
// numbered cards, the mover's choice of 1..4 for either joker. Pure.
func Distances(t CardType) ([]int, *Rejection) {
	switch t {
	case CardRedJoker, CardBlackJoker:
		return []int{1, 2, 3, 4}, nil
	case CardAce:
		return []int{1}, nil
	case CardTwo:
		return []int{2}, nil
	case CardThree:
		return []int{3}, nil
	case CardFour:
		return []int{4}, nil
	}
	return nil, rejectInput(ReasonUnknownCardType, "unknown card type %d", int(t))
}

func distanceAllowed(t CardType, d int) (bool, *Rejection) {
	ds, rej := Distances(t)
	if rej != nil {
		return false, rej
	}
	for _, v := range ds {
		if v == d {
			return true, nil
		}
	}
	return false, nil
}
