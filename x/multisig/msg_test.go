package multisig

import (
	"bytes"
	"testing"

	"github.com/signet-labs/signet"
	"github.com/signet-labs/signet/errors"
	"github.com/signet-labs/signet/signettest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMsgPaths(t *testing.T) {
	cases := map[string]signet.Msg{
		"multisig/propose":      &ProposeMsg{},
		"multisig/confirm":      &ConfirmMsg{},
		"multisig/execute":      &ExecuteMsg{},
		"multisig/add_owner":    &AddOwnerMsg{},
		"multisig/remove_owner": &RemoveOwnerMsg{},
	}
	for path, msg := range cases {
		assert.Equal(t, path, msg.Path())
	}
}

func TestProposeMsgValidate(t *testing.T) {
	dest := signettest.RandAddress()

	cases := map[string]struct {
		msg     ProposeMsg
		wantErr *errors.Error
	}{
		"valid": {
			msg: ProposeMsg{Destination: dest, Amount: 100, Payload: []byte("data")},
		},
		"valid zero amount no payload": {
			msg: ProposeMsg{Destination: dest},
		},
		"missing destination": {
			msg:     ProposeMsg{Amount: 100},
			wantErr: errors.ErrInput,
		},
		"negative amount": {
			msg:     ProposeMsg{Destination: dest, Amount: -5},
			wantErr: errors.ErrMsg,
		},
		"oversized payload": {
			msg:     ProposeMsg{Destination: dest, Payload: bytes.Repeat([]byte{7}, maxPayloadSize+1)},
			wantErr: errors.ErrMsg,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.msg.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
			}
		})
	}
}

func TestTransactionIDMsgValidate(t *testing.T) {
	cases := map[string]struct {
		msg     signet.Msg
		wantErr *errors.Error
	}{
		"confirm valid":       {msg: &ConfirmMsg{TransactionID: 0}},
		"confirm negative id": {msg: &ConfirmMsg{TransactionID: -1}, wantErr: errors.ErrMsg},
		"execute valid":       {msg: &ExecuteMsg{TransactionID: 5}},
		"execute negative id": {msg: &ExecuteMsg{TransactionID: -2}, wantErr: errors.ErrMsg},
	}

	type validator interface {
		Validate() error
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.msg.(validator).Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
			}
		})
	}
}

func TestOwnerMsgValidate(t *testing.T) {
	owner := signettest.RandAddress()

	assert.NoError(t, (&AddOwnerMsg{Owner: owner}).Validate())
	assert.NoError(t, (&RemoveOwnerMsg{Owner: owner}).Validate())

	err := (&AddOwnerMsg{}).Validate()
	assert.True(t, errors.ErrInput.Is(err), "unexpected error: %+v", err)
	err = (&RemoveOwnerMsg{Owner: []byte("short")}).Validate()
	assert.True(t, errors.ErrInput.Is(err), "unexpected error: %+v", err)
}

func TestProposeMsgSerialization(t *testing.T) {
	msg := ProposeMsg{
		Destination: signettest.RandAddress(),
		Amount:      321,
		Payload:     []byte("call data"),
	}
	raw, err := msg.Marshal()
	require.NoError(t, err)

	var got ProposeMsg
	require.NoError(t, got.Unmarshal(raw))
	assert.Equal(t, msg, got)
}
