package app

import (
	"sync"

	"github.com/signet-labs/signet"
	"github.com/signet-labs/signet/errors"
)

// App dispatches transactions to the routed handlers over a shared
// store. It is safe for concurrent use.
//
// A Check runs on a scratch pad that is always discarded. A Deliver
// writes its changes through even when the handler returns an error:
// handlers enforce their own atomicity and a returned error may still
// carry state changes that must survive, such as a recorded
// confirmation whose triggered transfer failed. Only a panic discards
// the scratch pad.
type App struct {
	mu     sync.Mutex
	db     signet.CacheableKVStore
	router *Router
}

// New initializes an App over the given store.
func New(db signet.CacheableKVStore, router *Router) *App {
	return &App{
		db:     db,
		router: router,
	}
}

// InitGenesis applies genesis options through the given initializer. It
// is meant to run once, before the first transaction.
func (a *App) InitGenesis(opts signet.Options, init signet.Initializer) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	cache := a.db.CacheWrap()
	if err := init.FromGenesis(opts, cache); err != nil {
		cache.Discard()
		return err
	}
	return cache.Write()
}

// Check validates the transaction against the current state without
// persisting anything.
func (a *App) Check(ctx signet.Context, tx signet.Tx) (res signet.CheckResult, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	cache := a.db.CacheWrap()
	defer cache.Discard()
	defer errors.Recover(&err)

	h, err := a.handler(tx)
	if err != nil {
		return res, err
	}
	return h.Check(ctx, cache, tx)
}

// Deliver executes the transaction and persists the outcome.
func (a *App) Deliver(ctx signet.Context, tx signet.Tx) (res signet.DeliverResult, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	cache := a.db.CacheWrap()
	defer func() {
		if p := recover(); p != nil {
			cache.Discard()
			err = errors.Wrapf(errors.ErrPanic, "%v", p)
		}
	}()

	h, err := a.handler(tx)
	if err != nil {
		cache.Discard()
		return res, err
	}

	res, err = h.Deliver(ctx, cache, tx)
	if werr := cache.Write(); werr != nil {
		return res, werr
	}
	return res, err
}

// View runs fn with a consistent read view over the committed state.
func (a *App) View(fn func(signet.ReadOnlyKVStore) error) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return fn(a.db)
}

func (a *App) handler(tx signet.Tx) (signet.Handler, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	if msg == nil {
		return nil, errors.Wrap(errors.ErrMsg, "missing msg")
	}
	return a.router.Handler(msg.Path()), nil
}
