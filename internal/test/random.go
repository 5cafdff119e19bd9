package test

import (
	"fmt"
	"math/rand/v2"
)

const asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var couriers = []string{"JNE", "J&T", "SiCepat", "AnterAja", "POS"}

// RandomASCIIString returns an alphanumeric string of length in [minLen, maxLen].
func RandomASCIIString(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	buf := make([]byte, minLen+rand.IntN(maxLen-minLen+1))
	for i := range buf {
		buf[i] = asciiLetters[rand.IntN(len(asciiLetters))]
	}
	return string(buf)
}

// RandomEmail returns a syntactically valid address on example.com.
func RandomEmail() string {
	return RandomASCIIString(6, 12) + "@example.com"
}

// RandomTrackingNumber returns a courier style tracking number unique enough
// for a single test run.
func RandomTrackingNumber() string {
	return fmt.Sprintf("%s%010d", RandomASCIIString(2, 4), rand.Int64N(1e10))
}

// RandomCourier picks one of a handful of well known courier names.
func RandomCourier() string {
	return couriers[rand.IntN(len(couriers))]
}
