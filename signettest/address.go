package signettest

import (
	"crypto/rand"
	"testing"

	"github.com/signet-labs/signet"
)

// RandAddress returns a random, valid address.
func RandAddress() signet.Address {
	b := make([]byte, signet.AddressLength)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return signet.Address(b)
}

// ParseAddress takes an address in the human readable hex format and
// returns its binary representation, failing the test on bad input.
func ParseAddress(t testing.TB, encoded string) signet.Address {
	t.Helper()

	addr, err := signet.ParseAddress(encoded)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encoded, err)
	}
	return addr
}
