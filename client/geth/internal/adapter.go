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

package internal

import (
	"context"
	"encoding/json"
	"math/big"
	"strings"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	adapter "github.com/hyperledger-labs/eth-adapter"
)

// ChainClient is the typed subset of the wrapped client library used by the
// adapter. The ethclient.Client of go-ethereum satisfies it.
type ChainClient interface {
	NetworkID(ctx context.Context) (*big.Int, error)
	CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
}

// Adapter binds the go-ethereum client library to the uniform adapter
// contract. All go-ethereum specific behavior of the binding lives in this
// package.
//
// The instance is stateless beyond its immutable bindings and is safe for
// concurrent use.
type Adapter struct {
	// Caller is the raw JSON-RPC transport of the wrapped provider.
	Caller adapter.RawCaller
	// Client is the typed client over the same provider.
	Client ChainClient
	// Ks holds the unlocked key of the controlled account.
	Ks *keystore.KeyStore
	// Acc is the account under the adapter's control for signing.
	Acc accounts.Account
	// ChainID is the chain identifier used as the transaction signer domain.
	ChainID *big.Int
}

// Provider returns the raw JSON-RPC transport the binding wraps.
func (a *Adapter) Provider() adapter.RawCaller {
	return a.Caller
}

// ProviderSend issues a raw JSON-RPC call and returns the raw result.
func (a *Adapter) ProviderSend(ctx context.Context, method string, params ...interface{}) (
	json.RawMessage, error) {
	var result json.RawMessage
	if err := a.Caller.CallContext(ctx, &result, method, params...); err != nil {
		return nil, adapter.NewProviderError(method, err)
	}
	return result, nil
}

// NetworkID resolves the chain identifier of the connected network.
func (a *Adapter) NetworkID(ctx context.Context) (*big.Int, error) {
	id, err := a.Client.NetworkID(ctx)
	if err != nil {
		return nil, adapter.NewConnectivityError(err)
	}
	return id, nil
}

// Account resolves the address controlled by the binding for signing.
func (a *Adapter) Account(_ context.Context) (common.Address, error) {
	return a.Acc.Address, nil
}

// Keccak256 computes the keccak256 digest of the given data.
func (a *Adapter) Keccak256(data []byte) common.Hash {
	return crypto.Keccak256Hash(data)
}

// ABIEncode packs the given values according to the given abi type names.
func (a *Adapter) ABIEncode(typeNames []string, values []interface{}) ([]byte, error) {
	args, err := abiArguments(typeNames)
	if err != nil {
		return nil, err
	}
	data, err := args.Pack(values...)
	if err != nil {
		return nil, adapter.NewDecodingError("abi encode", err)
	}
	return data, nil
}

// ABIDecode unpacks data according to the given abi type names.
func (a *Adapter) ABIDecode(typeNames []string, data []byte) ([]interface{}, error) {
	args, err := abiArguments(typeNames)
	if err != nil {
		return nil, err
	}
	values, err := args.Unpack(data)
	if err != nil {
		return nil, adapter.NewDecodingError("abi decode", err)
	}
	return values, nil
}

func abiArguments(typeNames []string) (abi.Arguments, error) {
	args := make(abi.Arguments, len(typeNames))
	for i, name := range typeNames {
		abiType, err := abi.NewType(name, "", nil)
		if err != nil {
			return nil, errors.Wrap(err, "parsing abi type "+name)
		}
		args[i] = abi.Argument{Type: abiType}
	}
	return args, nil
}

// Contract returns a handle bound to the given abi and address. The zero
// address designates an as-yet-undeployed contract target.
func (a *Adapter) Contract(contractABI abi.ABI, address common.Address) adapter.Contract {
	return &Contract{ABI: contractABI, Addr: address, Backend: a}
}

// CalcCreate2Address computes the deterministic CREATE2 deployment address
// for the given deployer, salt and init code.
func (a *Adapter) CalcCreate2Address(deployer common.Address, salt common.Hash, initCode []byte) common.Address {
	return crypto.CreateAddress2(deployer, [32]byte(salt), crypto.Keccak256(initCode))
}

// CodeAt returns the bytecode deployed at the given address in the latest
// block. The result is empty for non-contract addresses.
func (a *Adapter) CodeAt(ctx context.Context, address common.Address) ([]byte, error) {
	code, err := a.Client.CodeAt(ctx, address, nil)
	if err != nil {
		return nil, adapter.NewProviderError("eth_getCode", err)
	}
	return code, nil
}

// Block returns the metadata of the block identified by the given tag, hex
// number or 32 byte hash.
func (a *Adapter) Block(ctx context.Context, ref string) (map[string]interface{}, error) {
	if ref == "" {
		ref = adapter.BlockLatest
	}
	method := "eth_getBlockByNumber"
	if isBlockHash(ref) {
		method = "eth_getBlockByHash"
	}
	var block map[string]interface{}
	if err := a.Caller.CallContext(ctx, &block, method, ref, false); err != nil {
		return nil, adapter.NewProviderError(method, err)
	}
	return block, nil
}

// isBlockHash reports whether ref is a hex encoded 32 byte hash.
func isBlockHash(ref string) bool {
	return strings.HasPrefix(ref, "0x") && len(ref) == 2+2*common.HashLength
}

// EthCall executes a read-only call against the given block and returns the
// raw return data. The transaction is shaped by the call-transaction
// formatter before dispatch, since some node implementations fail requests
// carrying null valued optional fields.
func (a *Adapter) EthCall(ctx context.Context, tx adapter.CallTx, block string) ([]byte, error) {
	if block == "" {
		block = adapter.BlockLatest
	}
	var out hexutil.Bytes
	if err := a.Caller.CallContext(ctx, &out, "eth_call", adapter.FormatCallTx(tx), block); err != nil {
		return nil, adapter.NewProviderError("eth_call", err)
	}
	return out, nil
}

// CallRevertData executes a read-only call, returning the plain return data
// on success and the recovered revert payload on recognized failures.
// Failures whose shape matches no known node format propagate as
// UnrecognizedRevertFormatError.
func (a *Adapter) CallRevertData(ctx context.Context, tx adapter.CallTx, block string) ([]byte, error) {
	data, err := a.EthCall(ctx, tx, block)
	if err == nil {
		return data, nil
	}
	return adapter.RevertDataFromError(err)
}

// CheckFromAddress fails with AddressMismatchError unless the given address,
// after checksum normalization, equals the controlled account.
func (a *Adapter) CheckFromAddress(_ context.Context, from string) error {
	if !common.IsHexAddress(from) {
		return adapter.NewAddressMismatchError(from, a.Acc.Address.Hex())
	}
	if normalized := common.HexToAddress(from); normalized != a.Acc.Address {
		return adapter.NewAddressMismatchError(normalized.Hex(), a.Acc.Address.Hex())
	}
	return nil
}

// SendTransaction normalizes the gas key of the given transaction bag,
// verifies its "from" entry when present, then signs and submits the
// transaction.
func (a *Adapter) SendTransaction(ctx context.Context, tx adapter.TxOpts) (*adapter.TransactionResult, error) {
	opts := adapter.NormalizeGas(tx)
	if from, ok := opts["from"].(string); ok {
		if err := a.CheckFromAddress(ctx, from); err != nil {
			return nil, err
		}
	}
	return a.sendTx(ctx, opts)
}

// SendOptions merges the owner account into the given options as the "from"
// entry, caller supplied entries taking precedence.
func (a *Adapter) SendOptions(owner string, opts adapter.TxOpts) adapter.TxOpts {
	return adapter.MergeSendOptions(owner, opts)
}

// sendTx assembles a transaction from the (already normalized) bag, fills
// nonce, gas price and gas limit from the node where unset, signs with the
// controlled account and submits. Nonce ordering across concurrent sends is
// the signing identity's concern, not this module's.
func (a *Adapter) sendTx(ctx context.Context, opts adapter.TxOpts) (*adapter.TransactionResult, error) {
	to, data, value, gas, gasPrice, err := txFields(opts)
	if err != nil {
		return nil, err
	}

	nonce, err := a.Client.PendingNonceAt(ctx, a.Acc.Address)
	if err != nil {
		return nil, adapter.NewProviderError("eth_getTransactionCount", err)
	}
	if gasPrice == nil {
		if gasPrice, err = a.Client.SuggestGasPrice(ctx); err != nil {
			return nil, adapter.NewProviderError("eth_gasPrice", err)
		}
	}
	if gas == 0 {
		msg := ethereum.CallMsg{From: a.Acc.Address, To: to, Value: value, Data: data}
		if gas, err = a.Client.EstimateGas(ctx, msg); err != nil {
			return nil, adapter.NewProviderError("eth_estimateGas", err)
		}
	}
	if value == nil {
		value = new(big.Int)
	}

	var rawTx *types.Transaction
	if to == nil {
		rawTx = types.NewContractCreation(nonce, value, gas, gasPrice, data)
	} else {
		rawTx = types.NewTransaction(nonce, *to, value, gas, gasPrice, data)
	}
	signedTx, err := a.Ks.SignTx(a.Acc, rawTx, a.ChainID)
	if err != nil {
		return nil, errors.Wrap(err, "signing transaction")
	}
	if err := a.Client.SendTransaction(ctx, signedTx); err != nil {
		return nil, adapter.NewProviderError("eth_sendRawTransaction", err)
	}
	return &adapter.TransactionResult{Hash: signedTx.Hash(), Tx: signedTx}, nil
}

// txFields reads the transaction fields out of an option bag.
func txFields(opts adapter.TxOpts) (
	to *common.Address, data []byte, value *big.Int, gas uint64, gasPrice *big.Int, err error) {
	if v, ok := opts["to"]; ok {
		switch t := v.(type) {
		case common.Address:
			addr := t
			to = &addr
		case string:
			if !common.IsHexAddress(t) {
				err = errors.New("invalid to address: " + t)
				return
			}
			addr := common.HexToAddress(t)
			to = &addr
		default:
			err = errors.Errorf("unsupported to address type: %T", v)
			return
		}
	}
	data, _ = opts["data"].([]byte)
	value, _ = opts["value"].(*big.Int)
	gasPrice, _ = opts["gasPrice"].(*big.Int)
	gas = gasFromOpts(opts)
	return to, data, value, gas, gasPrice, nil
}

// gasFromOpts reads the canonical gas entry, accepting the numeric types a
// caller plausibly supplies. Zero means unset.
func gasFromOpts(opts adapter.TxOpts) uint64 {
	switch v := opts["gas"].(type) {
	case uint64:
		return v
	case int:
		return uint64(v)
	case int64:
		return uint64(v)
	case float64:
		return uint64(v)
	case *big.Int:
		return v.Uint64()
	default:
		return 0
	}
}
