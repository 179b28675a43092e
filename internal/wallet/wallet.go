// Package wallet validates the wallet identifiers accepted by the trades API.
package wallet

import (
	"errors"
	"regexp"

	"trade-journal/internal/sample"
)

const maxLength = 64

var (
	ErrRequired       = errors.New("wallet query param is required")
	ErrInvalidFormat  = errors.New("invalid wallet format")
	ErrInvalidAddress = errors.New("invalid Solana wallet address")
)

// Base58 public key, 32 to 44 characters.
var pubkeyPattern = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]{32,44}$`)

// Validate checks that w is a Solana public key or the demo wallet.
func Validate(w string) error {
	switch {
	case w == "":
		return ErrRequired
	case len(w) > maxLength:
		return ErrInvalidFormat
	case w == sample.DemoWallet:
		return nil
	case !pubkeyPattern.MatchString(w):
		return ErrInvalidAddress
	}
	return nil
}
