package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/signet-labs/signet"
	"github.com/signet-labs/signet/app"
	"github.com/signet-labs/signet/store"
	"github.com/signet-labs/signet/x"
	"github.com/signet-labs/signet/x/cash"
	"github.com/signet-labs/signet/x/multisig"
)

func main() {
	configPath := flag.String("config", "signetd.toml", "path to the configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "signetd: %+v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg := DefaultConfig()
	if _, err := os.Stat(configPath); err == nil {
		var err error
		if cfg, err = LoadConfig(configPath); err != nil {
			return err
		}
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}

	wallet, err := signet.ParseAddress(cfg.WalletAddr)
	if err != nil {
		return err
	}

	db := store.MemStore()
	auth := x.CtxAuth{Key: "signers"}

	emitter := newLogEmitter(log)
	registry := multisig.NewRegistry(emitter)
	controller := cash.NewController()
	mover := cash.NewWalletMover(controller, wallet)
	ledger := multisig.NewLedger(registry, mover, nil, emitter)

	router := app.NewRouter()
	multisig.RegisterRoutes(router, auth, ledger, registry)

	a := app.New(db, router)

	gen, err := app.LoadGenesis(cfg.GenesisPath)
	if err != nil {
		return err
	}
	init := app.ChainInitializers(
		&multisig.Initializer{},
		&cash.Initializer{},
	)
	if err := a.InitGenesis(gen.AppOptions, init); err != nil {
		return err
	}
	log.WithField("genesis", cfg.GenesisPath).Info("genesis applied")

	svc := newService(a, auth, ledger, registry, controller, log)
	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: svc.router(cfg.RunMode),
	}

	errc := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.ListenAddr).Info("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errc:
		return err
	case sig := <-sigc:
		log.WithField("signal", sig.String()).Info("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}

func newLogger(cfg Config) (*logrus.Logger, error) {
	log := logrus.New()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	log.SetLevel(level)
	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	return log, nil
}

// logEmitter writes engine events to the log. Events are observability
// only, losing them never affects engine state.
type logEmitter struct {
	log *logrus.Logger
}

var _ signet.Emitter = logEmitter{}

func newLogEmitter(log *logrus.Logger) logEmitter {
	return logEmitter{log: log}
}

func (e logEmitter) Emit(ev signet.Event) {
	fields := make(logrus.Fields, len(ev.Attributes))
	for _, attr := range ev.Attributes {
		fields[attr.Key] = attr.Value
	}
	e.log.WithFields(fields).Info(ev.Type)
}
