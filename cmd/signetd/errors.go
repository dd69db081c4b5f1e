package main

import (
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/signet-labs/signet"
	"github.com/signet-labs/signet/errors"
	"github.com/signet-labs/signet/x/multisig"
)

// abortWithError translates an engine error into an HTTP response. The
// registered error code is included so clients can react to the exact
// failure without parsing messages.
func abortWithError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(httpStatus(err), gin.H{
		"code":  errors.Code(err),
		"error": err.Error(),
	})
}

func httpStatus(err error) int {
	switch {
	case errors.ErrNotFound.Is(err),
		multisig.ErrInvalidTransactionID.Is(err):
		return http.StatusNotFound
	case errors.ErrUnauthorized.Is(err):
		return http.StatusForbidden
	case multisig.ErrAlreadyConfirmed.Is(err),
		multisig.ErrAlreadyExecuted.Is(err),
		multisig.ErrAlreadyOwner.Is(err),
		multisig.ErrLastOwner.Is(err),
		multisig.ErrNotOwner.Is(err),
		errors.ErrState.Is(err):
		return http.StatusConflict
	case multisig.ErrNotEnoughConfirmations.Is(err),
		multisig.ErrTransferFailed.Is(err),
		errors.ErrAmount.Is(err):
		return http.StatusUnprocessableEntity
	case errors.ErrInput.Is(err), errors.ErrMsg.Is(err), errors.ErrEmpty.Is(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func decodePayload(enc string) ([]byte, error) {
	if enc == "" {
		return nil, nil
	}
	payload, err := hex.DecodeString(enc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, "payload is not hex")
	}
	return payload, nil
}

func encodeBytes(b []byte) string {
	return hex.EncodeToString(b)
}

func encodeAddresses(addrs []signet.Address) []string {
	enc := make([]string, len(addrs))
	for i, a := range addrs {
		enc[i] = a.String()
	}
	return enc
}
