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

//go:build integration
// +build integration

package geth_test

import (
	"context"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapter "github.com/hyperledger-labs/eth-adapter"
	"github.com/hyperledger-labs/eth-adapter/client/geth"
	"github.com/hyperledger-labs/eth-adapter/client/geth/gethtest"
)

// These tests require a blockchain node running at gethtest.ChainURL, such
// as a ganache-cli instance started for the CI run.
func newIntegAdapter(t *testing.T) adapter.Adapter {
	walletSetup := gethtest.NewWalletSetup(t, 1)
	chain, err := geth.NewAdapter(geth.Config{
		ChainURL:         gethtest.ChainURL,
		ChainID:          gethtest.ChainID,
		ChainConnTimeout: gethtest.ChainConnTimeout,
		KeystorePath:     walletSetup.KeystorePath,
		Address:          walletSetup.Accs[0].Address.Hex(),
	})
	require.NoError(t, err)
	return chain
}

func Test_Integ_Adapter_NetworkID(t *testing.T) {
	chain := newIntegAdapter(t)
	id, err := chain.NetworkID(context.Background())
	require.NoError(t, err)
	assert.Zero(t, id.Cmp(big.NewInt(gethtest.ChainID)))
}

func Test_Integ_Adapter_Block(t *testing.T) {
	chain := newIntegAdapter(t)

	t.Run("latest", func(t *testing.T) {
		block, err := chain.Block(context.Background(), adapter.BlockLatest)
		require.NoError(t, err)
		assert.Contains(t, block, "number")
		assert.Contains(t, block, "hash")
	})
	t.Run("by_hash", func(t *testing.T) {
		latest, err := chain.Block(context.Background(), adapter.BlockLatest)
		require.NoError(t, err)
		hash, ok := latest["hash"].(string)
		require.True(t, ok)

		block, err := chain.Block(context.Background(), hash)
		require.NoError(t, err)
		assert.Equal(t, hash, block["hash"])
	})
}

func Test_Integ_Adapter_CodeAt(t *testing.T) {
	chain := newIntegAdapter(t)
	rng := rand.New(rand.NewSource(gethtest.RandSeedForTestAccs))

	code, err := chain.CodeAt(context.Background(), gethtest.NewRandomAddress(rng))
	require.NoError(t, err)
	assert.Empty(t, code)
}
