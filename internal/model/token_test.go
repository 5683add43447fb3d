package model

import (
	"encoding/json"
	"testing"
)

func TestToken_Key(t *testing.T) {
	tests := []struct {
		name     string
		token    Token
		expected string
	}{
		{
			name:     "checksum EVM address is lower-cased",
			token:    Token{ChainID: 1, Address: "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"},
			expected: "1:0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2",
		},
		{
			name:     "plain and checksum spellings share a key",
			token:    Token{ChainID: 1, Address: "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2"},
			expected: "1:0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2",
		},
		{
			name:     "non-EVM address is trimmed and lower-cased",
			token:    Token{ChainID: 101, Address: " So11111111111111111111111111111111111111112 "},
			expected: "101:so11111111111111111111111111111111111111112",
		},
		{
			name:     "same address on different chains differs",
			token:    Token{ChainID: 42161, Address: "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"},
			expected: "42161:0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.token.Key(); got != tt.expected {
				t.Errorf("Key() = %s, expected %s", got, tt.expected)
			}
		})
	}
}

func TestToken_SmallestUnit(t *testing.T) {
	tests := []struct {
		decimals int
		expected string
	}{
		{0, "1"},
		{-3, "1"},
		{1, "0.1"},
		{6, "0.000001"},
		{18, "0.000000000000000001"},
	}

	for _, test := range tests {
		token := Token{Decimals: test.decimals}
		result := token.SmallestUnit()
		if result != test.expected {
			t.Errorf("SmallestUnit() with Decimals=%d = %s, expected %s", test.decimals, result, test.expected)
		}
	}
}

func TestToken_GetDisplayName(t *testing.T) {
	tests := []struct {
		token    Token
		expected string
	}{
		{Token{Name: "Wrapped Ether", Symbol: "WETH", Address: "0x1"}, "Wrapped Ether"},
		{Token{Name: "  ", Symbol: "WETH", Address: "0x1"}, "WETH"},
		{Token{Address: "0x1"}, "0x1"},
	}

	for _, test := range tests {
		result := test.token.GetDisplayName()
		if result != test.expected {
			t.Errorf("GetDisplayName() for %+v = '%s', expected '%s'", test.token, result, test.expected)
		}
	}
}

func TestToken_UnmarshalListEntry(t *testing.T) {
	raw := `{
		"symbol": "WETH",
		"name": "Wrapped Ether",
		"address": "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2",
		"decimals": 18,
		"chainId": 1,
		"logoURI": "https://example.com/weth.png",
		"coingeckoId": "weth",
		"listedIn": ["coingecko", "uniswap"]
	}`

	var token Token
	if err := json.Unmarshal([]byte(raw), &token); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if token.ChainID != 1 || token.Decimals != 18 {
		t.Errorf("unexpected numeric fields: chainId=%d decimals=%d", token.ChainID, token.Decimals)
	}
	if token.LogoURI != "https://example.com/weth.png" {
		t.Errorf("unexpected logoURI %s", token.LogoURI)
	}
	if token.CoingeckoID != "weth" {
		t.Errorf("unexpected coingeckoId %s", token.CoingeckoID)
	}
	if len(token.ListedIn) != 2 || token.ListedIn[1] != "uniswap" {
		t.Errorf("unexpected listedIn %v", token.ListedIn)
	}
}
