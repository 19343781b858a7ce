package game

import (
	"strings"
)

// CardCode is the two character wire representation of a card:
// a rank character (2-9, T, J, Q, K, A) followed by a suit character
// (c, d, h, s). Example: "Ah" is the ace of hearts.
type CardCode string

const cardRanks = "23456789TJQKA"
const cardSuits = "cdhs"

func (c CardCode) Valid() bool {
	if len(c) != 2 {
		return false
	}
	return strings.ContainsRune(cardRanks, rune(c[0])) &&
		strings.ContainsRune(cardSuits, rune(c[1]))
}

func (c CardCode) Rank() byte {
	return c[0]
}

func (c CardCode) Suit() byte {
	return c[1]
}

// RankLabel is the rank as shown on the card face. "T" renders as "10".
func (c CardCode) RankLabel() string {
	if c.Rank() == 'T' {
		return "10"
	}
	return string(c.Rank())
}

// ParseCards splits a run-together card string ("AhKd2c") into card codes.
// A trailing odd character is dropped.
func ParseCards(s string) []CardCode {
	if len(s) < 2 {
		return nil
	}
	cards := make([]CardCode, 0, len(s)/2)
	for i := 0; i+1 < len(s); i += 2 {
		cards = append(cards, CardCode(s[i:i+2]))
	}
	return cards
}

// ParseCardList splits a dash-joined card list ("Ah-Kd-2c"), the format the
// server uses for constituent and kicker cards in settlements.
func ParseCardList(s string) []CardCode {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, "-")
	cards := make([]CardCode, 0, len(parts))
	for _, p := range parts {
		cards = append(cards, CardCode(p))
	}
	return cards
}
