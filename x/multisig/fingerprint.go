package multisig

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/signet-labs/signet"
)

// Fingerprinter derives the opaque hash that binds a proposal's
// destination, amount and payload. It is an injected collaborator: the
// engine only stores and reports the digest, it never inspects it.
type Fingerprinter func(destination signet.Address, amount int64, payload []byte) []byte

// SHA256Fingerprint is the default Fingerprinter.
func SHA256Fingerprint(destination signet.Address, amount int64, payload []byte) []byte {
	h := sha256.New()
	h.Write(destination)
	var amt [8]byte
	binary.BigEndian.PutUint64(amt[:], uint64(amount))
	h.Write(amt[:])
	h.Write(payload)
	return h.Sum(nil)
}
