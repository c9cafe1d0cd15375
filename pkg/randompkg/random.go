// Package randompkg provides functionality gor generating random applications common items.
package randompkg

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// Int64Between generates a random integer between min and max.
func Int64Between(min, max int64) int64 {
	return min + Intn(int(max-min))
}

// String generates a random string of length n.
func String(n int) string {
	var sb strings.Builder

	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[Intn(k)]

		_ = sb.WriteByte(c) // The returned err is always nil.
	}

	return sb.String()
}

// Owner generates a random owner name.
func Owner() string {
	return String(6)
}

// AccountNumber generates a random 10-digit account number.
func AccountNumber() string {
	return fmt.Sprintf("%d", Int64Between(1_000_000_000, 9_999_999_999))
}

// Amount generates a random positive amount of money in minor units.
func Amount() int64 {
	return Int64Between(1, 10_000)
}

// HexString generates a random hex string of length n.
func HexString(n int) string {
	const hex = "0123456789abcdef"

	var sb strings.Builder

	for i := 0; i < n; i++ {
		_ = sb.WriteByte(hex[Intn(len(hex))])
	}

	return sb.String()
}
