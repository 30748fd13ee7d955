// Package randompkg provides functionality for generating random applications common items.
package randompkg

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
)

const (
	alphabet = "abcdefghijklmnopqrstuvwxyz"
	digits   = "0123456789"
)

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// IntBetween generates a random integer between min and max inclusive.
func IntBetween(min, max int) int32 {
	return int32(min) + int32(Intn(max-min+1))
}

func fromSet(set string, n int) string {
	var sb strings.Builder

	k := len(set)

	for i := 0; i < n; i++ {
		c := set[Intn(k)]

		_ = sb.WriteByte(c) // The returned err is always nil.
	}

	return sb.String()
}

// String generates a random string of length n.
func String(n int) string {
	return fromSet(alphabet, n)
}

// word generates a random capitalized word of length n.
func word(n int) string {
	s := String(n)
	return strings.ToUpper(s[:1]) + s[1:]
}

// Name generates a random capitalized first and last name.
func Name() string {
	return word(6) + " " + word(8)
}

// Email generates a random email address.
func Email() string {
	return fmt.Sprintf("%s@%s.com", String(8), String(5))
}

// Address generates a random street address.
func Address() string {
	return fmt.Sprintf("%d %s Street, %s", IntBetween(1, 9999), word(7), word(6))
}

// PhoneNumber generates a random phone number.
func PhoneNumber() string {
	return fmt.Sprintf("+1-%s-%s-%s", fromSet(digits, 3), fromSet(digits, 3), fromSet(digits, 4))
}

// Date generates a random date within the last ten years.
func Date() time.Time {
	days := Intn(3650)
	return time.Now().UTC().AddDate(0, 0, -int(days))
}
