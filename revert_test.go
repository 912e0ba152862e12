// Copyright (c) 2022 - for information on the respective copyright owner
// see the NOTICE file and/or the repository at
// https://github.com/hyperledger-labs/eth-adapter
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package adapter_test

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapter "github.com/hyperledger-labs/eth-adapter"
)

// nodeError mimics the error surfaced by JSON-RPC transports that carry the
// node's original error payload.
type nodeError struct {
	msg  string
	data interface{}
}

func (e nodeError) Error() string          { return e.msg }
func (e nodeError) ErrorData() interface{} { return e.data }

func Test_RevertDataFromError(t *testing.T) {
	revertHex := "0x08c379a0deadbeef"
	wantRevert, err := hexutil.Decode(revertHex)
	require.NoError(t, err)
	txHash := "0x414559b6a06b23bd17b2b30bdf77996e9b10b9a61e65ad2fcd3c2dcbdd0dd87b"

	// One synthetic error per supported node format, all carrying the same
	// underlying revert payload.
	tests := []struct {
		name string
		err  error
	}{
		{
			name: "plain_hex_string",
			err:  nodeError{msg: "execution reverted", data: revertHex},
		},
		{
			name: "sentinel_prefixed_string",
			err:  nodeError{msg: "VM execution error.", data: "Reverted " + revertHex},
		},
		{
			name: "tx_hash_keyed_mapping",
			err: nodeError{msg: "VM Exception while processing transaction: revert", data: map[string]interface{}{
				txHash: map[string]interface{}{
					"error":  "revert",
					"return": revertHex,
				},
			}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := adapter.RevertDataFromError(tt.err)
			require.NoError(t, err)
			assert.Equal(t, wantRevert, got)
		})
	}
}

func Test_RevertDataFromError_WrappedCause(t *testing.T) {
	// The payload carrier may sit anywhere on the cause chain, as when a
	// binding wraps the transport error in a ProviderError.
	cause := nodeError{msg: "execution reverted", data: "0x08c379a0deadbeef"}
	wrapped := adapter.NewProviderError("eth_call", cause)

	got, err := adapter.RevertDataFromError(wrapped)
	require.NoError(t, err)
	want, err := hexutil.Decode("0x08c379a0deadbeef")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func Test_RevertDataFromError_Unrecognized(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{
			name: "no_data_carrier",
			err:  errors.New("connection refused"),
		},
		{
			name: "data_of_unknown_type",
			err:  nodeError{msg: "boom", data: 42},
		},
		{
			name: "string_without_hex",
			err:  nodeError{msg: "boom", data: "out of gas"},
		},
		{
			name: "mapping_without_hash_keys",
			err:  nodeError{msg: "boom", data: map[string]interface{}{"code": "-32000"}},
		},
		{
			name: "mapping_entry_without_return_field",
			err: nodeError{msg: "boom", data: map[string]interface{}{
				"0x414559b6a06b23bd17b2b30bdf77996e9b10b9a61e65ad2fcd3c2dcbdd0dd87b": map[string]interface{}{
					"error": "revert",
				},
			}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := adapter.RevertDataFromError(tt.err)
			require.Error(t, err)

			unrecognizedErr := adapter.UnrecognizedRevertFormatError{}
			ok := errors.As(err, &unrecognizedErr)
			require.True(t, ok, "error must be UnrecognizedRevertFormatError, got %+v", err)
			assert.Equal(t, tt.err, unrecognizedErr.Unwrap())
		})
	}
}
