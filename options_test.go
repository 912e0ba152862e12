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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapter "github.com/hyperledger-labs/eth-adapter"
)

func Test_NormalizeGas(t *testing.T) {
	tests := []struct {
		name    string
		opts    adapter.TxOpts
		wantGas interface{}
	}{
		{
			name:    "canonical_key",
			opts:    adapter.TxOpts{"gas": uint64(21000), "from": "0x01"},
			wantGas: uint64(21000),
		},
		{
			name:    "camel_case_key",
			opts:    adapter.TxOpts{"gasLimit": uint64(30000), "from": "0x01"},
			wantGas: uint64(30000),
		},
		{
			name:    "snake_case_key",
			opts:    adapter.TxOpts{"gas_limit": uint64(40000), "nonce": uint64(7)},
			wantGas: uint64(40000),
		},
		{
			name:    "canonical_key_wins_over_other_spellings",
			opts:    adapter.TxOpts{"gas": uint64(1), "gasLimit": uint64(2), "gas_limit": uint64(3)},
			wantGas: uint64(1),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := adapter.NormalizeGas(tt.opts)

			require.Contains(t, got, "gas")
			assert.Equal(t, tt.wantGas, got["gas"])
			for _, k := range []string{"gasLimit", "gas_limit"} {
				assert.NotContains(t, got, k)
			}
			// All non-gas keys must pass through verbatim.
			for k, v := range tt.opts {
				if k == "gas" || k == "gasLimit" || k == "gas_limit" {
					continue
				}
				assert.Equal(t, v, got[k])
			}
		})
	}
}

func Test_NormalizeGas_NoGasKey(t *testing.T) {
	opts := adapter.TxOpts{"from": "0x01", "custom": "passthrough"}
	got := adapter.NormalizeGas(opts)

	assert.NotContains(t, got, "gas", "no default gas must be injected")
	assert.Equal(t, opts["from"], got["from"])
	assert.Equal(t, opts["custom"], got["custom"])
	assert.Len(t, got, len(opts))
}

func Test_NormalizeGas_DoesNotMutateInput(t *testing.T) {
	opts := adapter.TxOpts{"gasLimit": uint64(21000), "from": "0x01"}
	_ = adapter.NormalizeGas(opts)

	require.Len(t, opts, 2)
	assert.Equal(t, uint64(21000), opts["gasLimit"])
	assert.NotContains(t, opts, "gas")
}

func Test_NormalizeGas_Nil(t *testing.T) {
	assert.Nil(t, adapter.NormalizeGas(nil))
}

func Test_MergeSendOptions(t *testing.T) {
	ownerAccount := "0x8626f6940E2eb28930eFb4CeF49B2d1F2C9C1199"

	t.Run("happy_owner_set_as_from", func(t *testing.T) {
		got := adapter.MergeSendOptions(ownerAccount, adapter.TxOpts{"gas": uint64(21000)})
		assert.Equal(t, ownerAccount, got["from"])
		assert.Equal(t, uint64(21000), got["gas"])
	})

	t.Run("happy_nil_opts", func(t *testing.T) {
		got := adapter.MergeSendOptions(ownerAccount, nil)
		require.Len(t, got, 1)
		assert.Equal(t, ownerAccount, got["from"])
	})

	// A caller supplied "from" overrides the owner account. This precedence
	// looks inverted with respect to the method name, but existing callers
	// depend on it; this test pins the behavior so a change is caught, not
	// hidden.
	t.Run("caller_from_overrides_owner", func(t *testing.T) {
		callerFrom := "0xdD2FD4581271e230360230F9337D5c0430Bf44C0"
		got := adapter.MergeSendOptions(ownerAccount, adapter.TxOpts{"from": callerFrom})
		assert.Equal(t, callerFrom, got["from"])
	})
}
