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

// Package gethtest provides test helpers for the geth binding: a wallet
// setup over a temporary keystore with weak encryption parameters, fakes
// for the consumed transport and client interfaces and parameters for
// running integration tests against a local node.
package gethtest

import (
	"io/ioutil"
	"math/big"
	"math/rand"
	"os"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/hyperledger-labs/eth-adapter/client/geth/internal"
	"github.com/hyperledger-labs/eth-adapter/currency"
)

// Chain related parameters for connecting to a ganache-cli node in
// integration test environments.
const (
	RandSeedForTestAccs = 1729 // Seed for generating accounts used in tests.
	ChainURL            = "ws://127.0.0.1:8545"
	ChainConnTimeout    = 10 * time.Second
	ChainID             = 1337 // Default chain id for ganache-cli private network.
)

// WalletSetup can generate any number of keys for testing. To enable faster
// unlocking of the keys, it uses weak encryption parameters for the storage
// encryption of the keys.
type WalletSetup struct {
	KeystorePath string
	Keystore     *keystore.KeyStore
	Accs         []accounts.Account
}

// NewWalletSetup initializes a keystore in a temporary directory with n
// unlocked accounts. Password for test accounts is always an empty string.
func NewWalletSetup(t *testing.T, n uint) *WalletSetup {
	ksPath, err := ioutil.TempDir("", "eth-adapter-test-keystore-*")
	require.NoErrorf(t, err, "creating temp directory for keystore")
	ks := keystore.NewKeyStore(ksPath, keystore.LightScryptN, keystore.LightScryptP)

	accs := make([]accounts.Account, n)
	for idx := uint(0); idx < n; idx++ {
		accs[idx], err = ks.NewAccount("")
		require.NoErrorf(t, err, "creating account %d", idx)
		require.NoError(t, ks.Unlock(accs[idx], ""))
	}

	t.Cleanup(func() {
		if err := os.RemoveAll(ksPath); err != nil {
			t.Log("error in cleanup -", err)
		}
	})
	return &WalletSetup{
		KeystorePath: ksPath,
		Keystore:     ks,
		Accs:         accs,
	}
}

// NewRandomAddress generates a random address. It generates the address only
// as a byte array and does not generate any keys corresponding to it. If you
// need an address with keys, use WalletSetup.
func NewRandomAddress(rng *rand.Rand) common.Address {
	var a common.Address
	rng.Read(a[:])
	return a
}

// AdapterSetup is a test setup with an adapter wired to a scripted raw
// caller and a stub chain client, with one unlocked account under the
// adapter's control.
type AdapterSetup struct {
	*WalletSetup
	Adapter     *internal.Adapter
	Caller      *ScriptedCaller
	ChainClient *ChainClientStub
}

// NewAdapterSetup returns an adapter over fakes, ready for use in tests that
// require no live node.
func NewAdapterSetup(t *testing.T) *AdapterSetup {
	walletSetup := NewWalletSetup(t, 1)
	caller := NewScriptedCaller()
	chainClient := &ChainClientStub{
		ID:          big.NewInt(ChainID),
		GasPrice:    defaultGasPrice(t),
		GasEstimate: 21000,
	}
	a := &internal.Adapter{
		Caller:  caller,
		Client:  chainClient,
		Ks:      walletSetup.Keystore,
		Acc:     walletSetup.Accs[0],
		ChainID: big.NewInt(ChainID),
	}
	return &AdapterSetup{
		WalletSetup: walletSetup,
		Adapter:     a,
		Caller:      caller,
		ChainClient: chainClient,
	}
}

// defaultGasPrice is 1 gwei, expressed in ETH through the currency parser.
func defaultGasPrice(t *testing.T) *big.Int {
	parser := currency.NewRegistry().Currency(currency.ETHSymbol)
	require.NotNil(t, parser)
	wei, err := parser.Parse("0.000000001")
	require.NoError(t, err)
	return wei
}
