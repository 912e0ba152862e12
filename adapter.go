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

package adapter

import (
	"context"
	"encoding/json"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Block reference tags accepted wherever an operation takes a block
// parameter. A block parameter can also be a hex encoded block number or a
// 32 byte block hash.
const (
	BlockEarliest = "earliest"
	BlockLatest   = "latest"
	BlockPending  = "pending"
)

// TxOpts is the option bag accepted by call, send and estimate operations.
//
// Recognized keys:
//   - "from": sender address as a hex string.
//   - "gas", "gasLimit", "gas_limit": gas limit, normalized to "gas" by
//     NormalizeGas before dispatch.
//   - "gasPrice": gas price as a *big.Int.
//   - "value": amount in wei as a *big.Int.
//   - "to": recipient address as a hex string or common.Address.
//   - "data": call payload as a byte slice.
//
// All other keys are binding specific passthroughs. No key is required.
type TxOpts map[string]interface{}

// Clone returns a shallow copy of the option bag. Cloning a nil bag returns
// an empty, non-nil bag.
func (o TxOpts) Clone() TxOpts {
	c := make(TxOpts, len(o))
	for k, v := range o {
		c[k] = v
	}
	return c
}

// RawCaller is the transport level interface of the provider wrapped by a
// binding. It issues a single JSON-RPC call and decodes the result into the
// given value. The rpc.Client of go-ethereum satisfies this interface.
type RawCaller interface {
	CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error
}

// CallTx describes a read-only contract call. It is constructed fresh for
// each call invocation and never mutated after dispatch.
//
// Nil or zero valued fields are omitted from the wire representation
// entirely (see FormatCallTx). To is nil when targeting a contract creation
// simulation.
type CallTx struct {
	From  *common.Address
	To    *common.Address
	Data  []byte
	Value *big.Int
	Gas   uint64
}

// TransactionResult holds the outcome of a successful transaction
// submission. It is immutable; tracking the transaction until it is mined is
// the caller's responsibility.
type TransactionResult struct {
	// Hash of the submitted transaction.
	Hash common.Hash
	// Tx is the signed transaction as submitted by the binding.
	Tx *types.Transaction
}

// Adapter is the uniform contract every concrete client library binding
// implements. Higher level code written against this interface runs
// unmodified regardless of which underlying blockchain access library is
// installed.
//
// Adapters are stateless beyond their immutable bindings (transport, signing
// identity, chain id), so a single instance can serve any number of
// concurrent callers. No operation is retried internally and no operation
// logs: failures surface immediately to the caller as one of the error kinds
// defined in this package.
type Adapter interface {
	// Provider returns the underlying transport the binding wraps.
	Provider() RawCaller

	// ProviderSend issues a raw JSON-RPC call and returns the raw result.
	// Fails with ProviderError carrying the node's original error.
	ProviderSend(ctx context.Context, method string, params ...interface{}) (json.RawMessage, error)

	// NetworkID resolves the chain identifier of the connected network.
	// Fails with ConnectivityError when the node cannot be reached.
	NetworkID(ctx context.Context) (*big.Int, error)

	// Account resolves the address controlled by the binding's signing
	// identity.
	Account(ctx context.Context) (common.Address, error)

	// Keccak256 computes the keccak256 digest of the given data.
	Keccak256(data []byte) common.Hash

	// ABIEncode packs the given values according to the given abi type
	// names. Stateless passthrough to the consumed ABI codec.
	ABIEncode(typeNames []string, values []interface{}) ([]byte, error)

	// ABIDecode unpacks data according to the given abi type names.
	// Stateless passthrough to the consumed ABI codec.
	ABIDecode(typeNames []string, data []byte) ([]interface{}, error)

	// Contract returns a handle bound to the given abi and address. Use the
	// zero address for an as-yet-undeployed contract target.
	Contract(contractABI abi.ABI, address common.Address) Contract

	// CalcCreate2Address computes the deterministic CREATE2 deployment
	// address: last 20 bytes of
	// keccak256(0xff ++ deployer ++ salt ++ keccak256(initCode)).
	CalcCreate2Address(deployer common.Address, salt common.Hash, initCode []byte) common.Address

	// CodeAt returns the bytecode deployed at the given address in the
	// latest block. The result is empty for non-contract addresses.
	CodeAt(ctx context.Context, address common.Address) ([]byte, error)

	// Block returns the metadata of the block identified by the given tag,
	// hex number or 32 byte hash, as an open ended key/value mapping.
	Block(ctx context.Context, ref string) (map[string]interface{}, error)

	// EthCall executes a read-only call against the given block and returns
	// the raw return data. The transaction is shaped by FormatCallTx before
	// dispatch. An empty block defaults to BlockLatest.
	EthCall(ctx context.Context, tx CallTx, block string) ([]byte, error)

	// CallRevertData executes a read-only call and recovers the revert
	// payload when the call fails, across the node error formats understood
	// by RevertDataFromError. On success the plain return data is returned.
	CallRevertData(ctx context.Context, tx CallTx, block string) ([]byte, error)

	// CheckFromAddress fails with AddressMismatchError unless the given
	// address, after checksum normalization, equals the account controlled
	// by the binding's signing identity.
	CheckFromAddress(ctx context.Context, from string) error

	// SendTransaction normalizes the gas key of the given transaction bag,
	// verifies its "from" entry via CheckFromAddress when present, signs and
	// submits the transaction.
	SendTransaction(ctx context.Context, tx TxOpts) (*TransactionResult, error)

	// SendOptions merges the owner account into the given options as the
	// "from" entry. Caller supplied entries take precedence, including any
	// caller supplied "from". See MergeSendOptions.
	SendOptions(owner string, opts TxOpts) TxOpts
}

// Contract is a stateless handle binding one abi, one address and one
// adapter instance. It is safe to retain and reuse across many concurrent
// calls.
type Contract interface {
	// Address returns the bound contract address.
	Address() common.Address

	// Call invokes a read-only method and decodes the return data against
	// the method's declared output types. When the method declares exactly
	// one return value, that value is returned directly; otherwise the full
	// ordered list of decoded values is returned.
	//
	// Fails with MethodNotFoundError for unknown methods and DecodingError
	// on malformed return data. A nil opts is allowed.
	Call(ctx context.Context, method string, params []interface{}, opts TxOpts) (interface{}, error)

	// Send submits a state-changing transaction invoking the method. When
	// opts is non-nil, its gas key is normalized and any "from" entry is
	// verified before dispatch. A nil opts dispatches with the binding's
	// own signing identity without the from check.
	Send(ctx context.Context, method string, params []interface{}, opts TxOpts) (*TransactionResult, error)

	// EstimateGas returns the gas estimate for invoking the method. Options
	// are handled as in Send, but no transaction is submitted.
	EstimateGas(ctx context.Context, method string, params []interface{}, opts TxOpts) (uint64, error)

	// Encode packs a method invocation into call data for callers building
	// raw transactions, such as deployments.
	Encode(method string, params []interface{}) ([]byte, error)
}
