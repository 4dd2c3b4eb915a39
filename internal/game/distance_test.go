package game

import (
	"reflect"
	"testing"
)

func TestDistances(t *testing.T) {
	tests := []struct {
		name     string
		card     CardType
		expected []int
	}{
		{"Ace moves one", CardAce, []int{1}},
		{"Two moves two", CardTwo, []int{2}},
		{"Three moves three", CardThree, []int{3}},
		{"Four moves four", CardFour, []int{4}},
		{"Red joker chooses", CardRedJoker, []int{1, 2, 3, 4}},
		{"Black joker chooses", CardBlackJoker, []int{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rej := Distances(tt.card)
			if rej != nil {
				t.Fatalf("unexpected rejection: %v", rej)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Distances(%v) = %v, want %v", tt.card, got, tt.expected)
			}
		})
	}
}

func TestDistancesUnknownType(t *testing.T) {
	_, rej := Distances(CardType(99))
	if rej == nil {
		t.Fatal("expected a rejection for an unknown card type")
	}
	if rej.Kind != KindInput || rej.Code != ReasonUnknownCardType {
		t.Errorf("got %s/%s, want %s/%s", rej.Kind, rej.Code, KindInput, ReasonUnknownCardType)
	}
}
