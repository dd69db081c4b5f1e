package main

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/signet-labs/signet"
	"github.com/signet-labs/signet/app"
	"github.com/signet-labs/signet/errors"
	"github.com/signet-labs/signet/orm"
	"github.com/signet-labs/signet/x"
	"github.com/signet-labs/signet/x/cash"
	"github.com/signet-labs/signet/x/multisig"
)

// signerHeader carries the caller identity. There is no signature
// verification, the daemon trusts its local callers the way a contract
// runtime trusts its message sender.
const signerHeader = "X-Signer"

// apiTx adapts a single message to the transaction interface the
// dispatcher consumes.
type apiTx struct {
	msg signet.Msg
}

var _ signet.Tx = (*apiTx)(nil)

func (tx *apiTx) GetMsg() (signet.Msg, error) {
	return tx.msg, nil
}

func (tx *apiTx) Marshal() ([]byte, error) {
	return tx.msg.Marshal()
}

func (tx *apiTx) Unmarshal([]byte) error {
	return errors.Wrap(errors.ErrHuman, "api transactions are never deserialized")
}

// service exposes the engine over HTTP.
type service struct {
	app    *app.App
	auth   x.CtxAuth
	ledger multisig.Ledger
	reg    multisig.Registry
	cash   cash.Controller
	log    *logrus.Logger
}

func newService(a *app.App, auth x.CtxAuth, ledger multisig.Ledger, reg multisig.Registry, ctrl cash.Controller, log *logrus.Logger) *service {
	return &service{
		app:    a,
		auth:   auth,
		ledger: ledger,
		reg:    reg,
		cash:   ctrl,
		log:    log,
	}
}

func (s *service) router(mode string) *gin.Engine {
	gin.SetMode(mode)
	r := gin.New()
	r.Use(requestID())
	r.Use(requestLogger(s.log))
	r.Use(gin.Recovery())

	proposals := r.Group("proposals")
	proposals.POST("", s.propose)
	proposals.GET("", s.proposalCount)
	proposals.GET("/:id", s.getProposal)
	proposals.POST("/:id/confirmations", s.confirm)
	proposals.GET("/:id/confirmations", s.getConfirmations)
	proposals.POST("/:id/execute", s.execute)

	owners := r.Group("owners")
	owners.GET("", s.getOwners)
	owners.POST("", s.addOwner)
	owners.DELETE("/:address", s.removeOwner)

	r.GET("/accounts/:address", s.getBalance)

	return r
}

// requestID tags every request with a unique id so log lines of one
// request can be correlated.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-Id", id)
		c.Next()
	}
}

func requestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		log.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
		}).Info("request served")
	}
}

// signerCtx builds the dispatch context from the signer header. A
// request without the header yields a context without signers, which the
// handlers reject where a signer is required.
func (s *service) signerCtx(c *gin.Context) (signet.Context, error) {
	ctx := context.Background()
	raw := c.GetHeader(signerHeader)
	if raw == "" {
		return ctx, nil
	}
	addr, err := signet.ParseAddress(raw)
	if err != nil {
		return nil, errors.Wrap(err, "signer header")
	}
	return s.auth.SetSigners(ctx, addr), nil
}

func (s *service) deliver(c *gin.Context, msg signet.Msg) (signet.DeliverResult, bool) {
	ctx, err := s.signerCtx(c)
	if err != nil {
		abortWithError(c, err)
		return signet.DeliverResult{}, false
	}
	res, err := s.app.Deliver(ctx, &apiTx{msg: msg})
	if err != nil {
		abortWithError(c, err)
		return res, false
	}
	return res, true
}

type proposeRequest struct {
	Destination string `json:"destination" binding:"required"`
	Amount      int64  `json:"amount"`
	Payload     string `json:"payload"`
}

func (s *service) propose(c *gin.Context) {
	var req proposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, errors.Wrap(errors.ErrInput, err.Error()))
		return
	}
	dest, err := signet.ParseAddress(req.Destination)
	if err != nil {
		abortWithError(c, err)
		return
	}
	payload, err := decodePayload(req.Payload)
	if err != nil {
		abortWithError(c, err)
		return
	}

	res, ok := s.deliver(c, &multisig.ProposeMsg{
		Destination: dest,
		Amount:      req.Amount,
		Payload:     payload,
	})
	if !ok {
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": orm.DecodeSequence(res.Data)})
}

func (s *service) confirm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if _, ok := s.deliver(c, &multisig.ConfirmMsg{TransactionID: id}); !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func (s *service) execute(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if _, ok := s.deliver(c, &multisig.ExecuteMsg{TransactionID: id}); !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

type proposalResponse struct {
	ID                int64    `json:"id"`
	Fingerprint       string   `json:"fingerprint"`
	Destination       string   `json:"destination"`
	Amount            int64    `json:"amount"`
	Payload           string   `json:"payload,omitempty"`
	Executed          bool     `json:"executed"`
	ConfirmationCount uint32   `json:"confirmation_count"`
	Confirmations     []string `json:"confirmations"`
}

func (s *service) getProposal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var p *multisig.Proposal
	err := s.app.View(func(db signet.ReadOnlyKVStore) error {
		var err error
		p, err = s.ledger.Proposal(db, id)
		return err
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	if p == nil {
		abortWithError(c, errors.Wrapf(multisig.ErrInvalidTransactionID, "%d", id))
		return
	}

	resp := proposalResponse{
		ID:                id,
		Fingerprint:       encodeBytes(p.Fingerprint),
		Destination:       p.Destination.String(),
		Amount:            p.Amount,
		Payload:           encodeBytes(p.Payload),
		Executed:          p.Executed,
		ConfirmationCount: p.ConfirmationCount,
		Confirmations:     encodeAddresses(p.Confirmations),
	}
	c.JSON(http.StatusOK, resp)
}

func (s *service) getConfirmations(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var (
		confirmations []signet.Address
		confirmed     bool
	)
	err := s.app.View(func(db signet.ReadOnlyKVStore) error {
		var err error
		if confirmations, err = s.ledger.Confirmations(db, id); err != nil {
			return err
		}
		confirmed, err = s.ledger.IsConfirmed(db, id)
		return err
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":            id,
		"confirmations": encodeAddresses(confirmations),
		"confirmed":     confirmed,
	})
}

func (s *service) proposalCount(c *gin.Context) {
	var count int64
	err := s.app.View(func(db signet.ReadOnlyKVStore) error {
		var err error
		count, err = s.ledger.ProposalCount(db)
		return err
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (s *service) getOwners(c *gin.Context) {
	var (
		owners    []signet.Address
		threshold uint32
	)
	err := s.app.View(func(db signet.ReadOnlyKVStore) error {
		var err error
		if owners, err = s.reg.Owners(db); err != nil {
			return err
		}
		threshold, err = s.reg.Threshold(db)
		return err
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"owners":    encodeAddresses(owners),
		"threshold": threshold,
	})
}

type ownerRequest struct {
	Address string `json:"address" binding:"required"`
}

func (s *service) addOwner(c *gin.Context) {
	var req ownerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, errors.Wrap(errors.ErrInput, err.Error()))
		return
	}
	addr, err := signet.ParseAddress(req.Address)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if _, ok := s.deliver(c, &multisig.AddOwnerMsg{Owner: addr}); !ok {
		return
	}
	c.JSON(http.StatusCreated, gin.H{"address": addr.String()})
}

func (s *service) removeOwner(c *gin.Context) {
	addr, err := signet.ParseAddress(c.Param("address"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	if _, ok := s.deliver(c, &multisig.RemoveOwnerMsg{Owner: addr}); !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"address": addr.String()})
}

func (s *service) getBalance(c *gin.Context) {
	addr, err := signet.ParseAddress(c.Param("address"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	var balance int64
	err = s.app.View(func(db signet.ReadOnlyKVStore) error {
		var err error
		balance, err = s.cash.Balance(db, addr)
		return err
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"address": addr.String(),
		"balance": balance,
	})
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 0 {
		abortWithError(c, errors.Wrapf(errors.ErrInput, "invalid id: %q", c.Param("id")))
		return 0, false
	}
	return id, true
}
