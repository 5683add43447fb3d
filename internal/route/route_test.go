package route

import (
	"reflect"
	"testing"
)

var knownCategories = []string{"Ethereum", "Arbitrum", "Optimism", "Bsc"}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected Route
		ok       bool
	}{
		{
			name:     "category and term",
			path:     "/Arbitrum/usdc",
			expected: Route{Category: "Arbitrum", Term: "usdc"},
			ok:       true,
		},
		{
			name:     "category only",
			path:     "/Optimism",
			expected: Route{Category: "Optimism"},
			ok:       true,
		},
		{
			name:     "trailing slash",
			path:     "/Optimism/",
			expected: Route{Category: "Optimism"},
			ok:       true,
		},
		{
			name:     "multi segment term joined with spaces",
			path:     "/Ethereum/wrapped/ether",
			expected: Route{Category: "Ethereum", Term: "wrapped ether"},
			ok:       true,
		},
		{
			name:     "escaped term",
			path:     "/Ethereum/usd%20coin",
			expected: Route{Category: "Ethereum", Term: "usd coin"},
			ok:       true,
		},
		{
			name:     "category is matched ignoring case",
			path:     "/bsc/cake",
			expected: Route{Category: "Bsc", Term: "cake"},
			ok:       true,
		},
		{
			name:     "full URL",
			path:     "https://snapshot.example/Arbitrum/usdc",
			expected: Route{Category: "Arbitrum", Term: "usdc"},
			ok:       true,
		},
		{
			name: "unknown category ignores both",
			path: "/Solana/usdc",
			ok:   false,
		},
		{
			name: "empty path",
			path: "/",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := Parse(tt.path, knownCategories)
			if ok != tt.ok {
				t.Fatalf("Parse(%q) ok = %v, expected %v", tt.path, ok, tt.ok)
			}
			if result != tt.expected {
				t.Errorf("Parse(%q) = %+v, expected %+v", tt.path, result, tt.expected)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		category string
		term     string
		fallback string
		expected string
	}{
		{"Arbitrum", "usdc", "Ethereum", "/Arbitrum/usdc"},
		{"Arbitrum", "", "Ethereum", "/Arbitrum/"},
		{"", "usdc", "Ethereum", "/Ethereum/usdc"},
		{"Ethereum", "wrapped ether", "Ethereum", "/Ethereum/wrapped%20ether"},
	}

	for _, test := range tests {
		result := Format(test.category, test.term, test.fallback)
		if result != test.expected {
			t.Errorf("Format(%q, %q) = %q, expected %q", test.category, test.term, result, test.expected)
		}
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	routes := []Route{
		{Category: "Ethereum", Term: "wrapped ether"},
		{Category: "Bsc", Term: ""},
		{Category: "Optimism", Term: "op/usd"},
	}

	for _, r := range routes {
		parsed, ok := Parse(r.String(), knownCategories)
		if !ok {
			t.Fatalf("Parse(%q) failed", r.String())
		}
		if parsed != r {
			t.Errorf("round trip of %+v produced %+v", r, parsed)
		}
	}
}

func TestSegments(t *testing.T) {
	result := Segments("//Ethereum//%20/weth/")
	expected := []string{"Ethereum", "weth"}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Segments() = %v, expected %v", result, expected)
	}
}
