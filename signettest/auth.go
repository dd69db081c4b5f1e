package signettest

import "github.com/signet-labs/signet"

// Auth is a mock implementing x.Authenticator interface.
//
// It authenticates any of the referenced addresses. You can use either
// Signer or Signers (or both) and each time all of them are considered.
type Auth struct {
	// Signer represents an authentication of a single signer. This is
	// a convenience attribute when a test needs only one.
	Signer signet.Address

	// Signers represents an authentication of multiple signers.
	Signers []signet.Address
}

func (a *Auth) GetSigners(signet.Context) []signet.Address {
	if a.Signer != nil {
		return append(a.Signers, a.Signer)
	}
	return a.Signers
}

func (a *Auth) HasAddress(ctx signet.Context, addr signet.Address) bool {
	for _, s := range a.Signers {
		if addr.Equals(s) {
			return true
		}
	}
	if a.Signer == nil {
		return false
	}
	return addr.Equals(a.Signer)
}
