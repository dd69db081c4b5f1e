package signettest

import "github.com/signet-labs/signet"

// Handler is a mock implementing signet.Handler interface. It counts
// calls and returns configured results.
type Handler struct {
	checkCall   int
	CheckResult signet.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult signet.DeliverResult
	DeliverErr    error
}

var _ signet.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx signet.Context, db signet.KVStore, tx signet.Tx) (signet.CheckResult, error) {
	h.checkCall++
	return h.CheckResult, h.CheckErr
}

func (h *Handler) Deliver(ctx signet.Context, db signet.KVStore, tx signet.Tx) (signet.DeliverResult, error) {
	h.deliverCall++
	return h.DeliverResult, h.DeliverErr
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
