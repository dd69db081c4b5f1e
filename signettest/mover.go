package signettest

import "github.com/signet-labs/signet"

// Transfer records a single Move call.
type Transfer struct {
	Destination signet.Address
	Amount      int64
}

// Mover is a mock implementing multisig.Mover interface. Every call is
// recorded. Err, when set, is returned by Move and the call is still
// recorded so a test can assert on the attempt.
type Mover struct {
	// Err if set is returned by every Move call.
	Err error

	moves []Transfer
}

func (m *Mover) Move(db signet.KVStore, destination signet.Address, amount int64) error {
	m.moves = append(m.moves, Transfer{Destination: destination, Amount: amount})
	return m.Err
}

// Moves returns all recorded calls, failed ones included.
func (m *Mover) Moves() []Transfer {
	return m.moves
}

// MoveCallCount returns how many times Move was called.
func (m *Mover) MoveCallCount() int {
	return len(m.moves)
}
