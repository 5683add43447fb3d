package search

import (
	"reflect"
	"testing"

	"github.com/ytget/snapshot/internal/model"
)

func sampleTokens() []model.Token {
	return []model.Token{
		{Symbol: "WETH", Name: "Wrapped Ether", Address: "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2", ChainID: 1},
		{Symbol: "USDC", Name: "USD Coin", Address: "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", ChainID: 1},
		{Symbol: "DAI", Name: "Dai Stablecoin", Address: "0x6B175474E89094C44Da98b954EedeAC495271d0F", ChainID: 1},
		{Symbol: "stETH", Name: "Lido Staked Ether", Address: "0xae7ab96520DE3A18E5e111B5EaAb095312D7fE84", ChainID: 1},
	}
}

func symbols(tokens []model.Token) []string {
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		out = append(out, token.Symbol)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		term     string
		expected []string
	}{
		{
			name:     "empty term returns everything",
			term:     "",
			expected: []string{"WETH", "USDC", "DAI", "stETH"},
		},
		{
			name:     "whitespace term returns everything",
			term:     "   ",
			expected: []string{"WETH", "USDC", "DAI", "stETH"},
		},
		{
			name:     "match on name",
			term:     "wrapped",
			expected: []string{"WETH"},
		},
		{
			name:     "match on symbol across tokens keeps order",
			term:     "eth",
			expected: []string{"WETH", "stETH"},
		},
		{
			name:     "match on address fragment",
			term:     "6b175474",
			expected: []string{"DAI"},
		},
		{
			name:     "no match",
			term:     "xyz",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := symbols(Filter(sampleTokens(), tt.term))
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Filter(%q) = %v, expected %v", tt.term, result, tt.expected)
			}
		})
	}
}

func TestFilter_CaseInsensitive(t *testing.T) {
	tokens := sampleTokens()

	upper := Filter(tokens, "ETH")
	lower := Filter(tokens, "eth")

	if !reflect.DeepEqual(upper, lower) {
		t.Errorf("Filter is case sensitive: %v vs %v", symbols(upper), symbols(lower))
	}
}

func TestFilter_IsOrderedSubset(t *testing.T) {
	tokens := sampleTokens()
	terms := []string{"e", "coin", "0x", "a", "zz"}

	for _, term := range terms {
		result := Filter(tokens, term)

		// every result must appear in the source after the previous one
		pos := 0
		for _, got := range result {
			found := false
			for pos < len(tokens) {
				if reflect.DeepEqual(tokens[pos], got) {
					found = true
					pos++
					break
				}
				pos++
			}
			if !found {
				t.Errorf("Filter(%q) returned %s out of order or not in source", term, got.Symbol)
			}
		}
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		count    int
		term     string
		expected string
	}{
		{0, "xyz", NoResultsMessage},
		{3, "xyz", ""},
		{0, "", ""},
		{0, "  ", ""},
	}

	for _, test := range tests {
		result := Message(test.count, test.term)
		if result != test.expected {
			t.Errorf("Message(%d, %q) = %q, expected %q", test.count, test.term, result, test.expected)
		}
	}
}
