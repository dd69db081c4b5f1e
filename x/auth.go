package x

import (
	"context"
	"fmt"

	"github.com/signet-labs/signet"
)

// Authenticator is an interface we can use to extract authentication info
// from the context. This should be passed into the constructor of
// handlers, so we can plug in another authentication system, rather than
// hard-coding one scheme for all extensions.
//
// There is no signature verification anywhere in this repository:
// authorization is by caller identity, which the host establishes on the
// context before dispatching a call.
type Authenticator interface {
	// GetSigners reveals all identities the host vouches for on this call.
	GetSigners(signet.Context) []signet.Address

	// HasAddress checks if any signer matches this address
	HasAddress(signet.Context, signet.Address) bool
}

// MainSigner returns the first signer if any, otherwise nil
func MainSigner(ctx signet.Context, auth Authenticator) signet.Address {
	signers := auth.GetSigners(ctx)
	if len(signers) == 0 {
		return nil
	}
	return signers[0]
}

// HasAllAddresses returns true if all given addresses are authenticated
func HasAllAddresses(ctx signet.Context, auth Authenticator, required []signet.Address) bool {
	for _, addr := range required {
		if !auth.HasAddress(ctx, addr) {
			return false
		}
	}
	return true
}

// MultiAuth chains together many Authenticators into one
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth groups together a series of Authenticator
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls}
}

// GetSigners combines all signers from all Authenticators
func (m MultiAuth) GetSigners(ctx signet.Context) []signet.Address {
	var res []signet.Address
	for _, impl := range m.impls {
		add := impl.GetSigners(ctx)
		if len(add) > 0 {
			res = append(res, add...)
		}
	}
	return res
}

// HasAddress returns true iff any Authenticator supports this
func (m MultiAuth) HasAddress(ctx signet.Context, addr signet.Address) bool {
	for _, impl := range m.impls {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// CtxAuth is an Authenticator backed by the context. The host sets the
// caller identity with SetSigners before dispatching; handlers read it
// back through the Authenticator interface.
type CtxAuth struct {
	// Key used to set and retrieve signers from the context. For
	// convenience only string type keys are allowed.
	Key string
}

var _ Authenticator = CtxAuth{}

type ctxAuthKey string

// SetSigners returns a context carrying given signer addresses.
func (a CtxAuth) SetSigners(ctx signet.Context, signers ...signet.Address) signet.Context {
	return context.WithValue(ctx, ctxAuthKey(a.Key), signers)
}

// GetSigners returns signers previously set on this context
func (a CtxAuth) GetSigners(ctx signet.Context) []signet.Address {
	val := ctx.Value(ctxAuthKey(a.Key))
	if val == nil {
		return nil
	}
	signers, ok := val.([]signet.Address)
	if !ok {
		panic(fmt.Sprintf("instead of []signet.Address got %T", val))
	}
	return signers
}

// HasAddress returns true iff this address is among the signers
func (a CtxAuth) HasAddress(ctx signet.Context, addr signet.Address) bool {
	for _, s := range a.GetSigners(ctx) {
		if addr.Equals(s) {
			return true
		}
	}
	return false
}
