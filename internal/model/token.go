package model

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Token represents a single token list entry
type Token struct {
	Symbol      string   `json:"symbol"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Decimals    int      `json:"decimals"`
	ChainID     int      `json:"chainId"`
	LogoURI     string   `json:"logoURI"`
	CoingeckoID string   `json:"coingeckoId,omitempty"`
	ListedIn    []string `json:"listedIn,omitempty"`
}

// NormalizeAddress returns a canonical lower-case form of a chain address.
// EVM hex addresses go through go-ethereum so that checksum and plain
// spellings of the same account compare equal.
func NormalizeAddress(address string) string {
	address = strings.TrimSpace(address)
	if common.IsHexAddress(address) {
		return strings.ToLower(common.HexToAddress(address).Hex())
	}
	return strings.ToLower(address)
}

// Key returns the identifier used for render items and image bookkeeping.
// It stays stable when the list is replaced or re-filtered.
func (t Token) Key() string {
	return fmt.Sprintf("%d:%s", t.ChainID, NormalizeAddress(t.Address))
}

// SmallestUnit returns the value of one base unit, e.g. "0.000001" for 6 decimals
func (t Token) SmallestUnit() string {
	if t.Decimals <= 0 {
		return "1"
	}
	return decimal.New(1, int32(-t.Decimals)).String()
}

// GetDisplayName returns name, symbol, or address in order of preference
func (t Token) GetDisplayName() string {
	if name := strings.TrimSpace(t.Name); name != "" {
		return name
	}
	if symbol := strings.TrimSpace(t.Symbol); symbol != "" {
		return symbol
	}
	return t.Address
}
