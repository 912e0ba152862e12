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

package geth

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"

	adapter "github.com/hyperledger-labs/eth-adapter"
	"github.com/hyperledger-labs/eth-adapter/client/geth/internal"
	"github.com/hyperledger-labs/eth-adapter/log"
)

// NewAdapter connects to the blockchain node at the configured URL and
// unlocks the configured account for signing transactions.
//
// All construction dependencies are verified here and missing ones fail
// fast with a ConfigurationError; they are never deferred to the first
// operation.
func NewAdapter(cfg Config) (adapter.Adapter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ChainConnTimeout)
	defer cancel()
	rpcClient, err := rpc.DialContext(ctx, cfg.ChainURL)
	if err != nil {
		return nil, adapter.NewConnectivityError(errors.Wrap(err, "dialing node at "+cfg.ChainURL))
	}

	ks := keystore.NewKeyStore(cfg.KeystorePath, keystore.StandardScryptN, keystore.StandardScryptP)
	acc := accounts.Account{Address: common.HexToAddress(cfg.Address)}
	if err = ks.Unlock(acc, cfg.Password); err != nil {
		return nil, adapter.NewConfigurationError("keystore",
			errors.Wrap(err, "unlocking account "+acc.Address.Hex()))
	}

	log.NewLoggerWithField("chain-url", cfg.ChainURL).Debug("connected to blockchain node")
	return &internal.Adapter{
		Caller:  rpcClient,
		Client:  ethclient.NewClient(rpcClient),
		Ks:      ks,
		Acc:     acc,
		ChainID: big.NewInt(int64(cfg.ChainID)),
	}, nil
}

// NewAdapterFromConfigFile parses the binding configuration from the given
// file and connects an adapter with it.
func NewAdapterFromConfigFile(configFile string) (adapter.Adapter, error) {
	cfg, err := ParseConfig(configFile)
	if err != nil {
		return nil, err
	}
	return NewAdapter(cfg)
}
