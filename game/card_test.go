package game

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseCards(t *testing.T) {
	testCases := []struct {
		input    string
		expected []CardCode
	}{
		{
			input:    "",
			expected: nil,
		},
		{
			input:    "Ah",
			expected: []CardCode{"Ah"},
		},
		{
			input:    "AhKd",
			expected: []CardCode{"Ah", "Kd"},
		},
		{
			input:    "2c9dQh",
			expected: []CardCode{"2c", "9d", "Qh"},
		},
		{
			// A trailing stray character is dropped.
			input:    "AhK",
			expected: []CardCode{"Ah"},
		},
	}

	for i, tc := range testCases {
		result := ParseCards(tc.input)
		if !cmp.Equal(result, tc.expected) {
			t.Errorf("Test case %d input: %q, expected: %v, actual: %v", i, tc.input, tc.expected, result)
		}
	}
}

func TestParseCardList(t *testing.T) {
	testCases := []struct {
		input    string
		expected []CardCode
	}{
		{
			input:    "",
			expected: nil,
		},
		{
			input:    "Ah",
			expected: []CardCode{"Ah"},
		},
		{
			input:    "Ah-Kd-Qd-Jd-Td",
			expected: []CardCode{"Ah", "Kd", "Qd", "Jd", "Td"},
		},
	}

	for i, tc := range testCases {
		result := ParseCardList(tc.input)
		if !cmp.Equal(result, tc.expected) {
			t.Errorf("Test case %d input: %q, expected: %v, actual: %v", i, tc.input, tc.expected, result)
		}
	}
}

func TestRankLabel(t *testing.T) {
	testCases := []struct {
		card     CardCode
		expected string
	}{
		{card: "Ah", expected: "A"},
		{card: "Th", expected: "10"},
		{card: "2c", expected: "2"},
	}

	for i, tc := range testCases {
		result := tc.card.RankLabel()
		if result != tc.expected {
			t.Errorf("Test case %d card: %s, expected: %s, actual: %s", i, tc.card, tc.expected, result)
		}
	}
}
