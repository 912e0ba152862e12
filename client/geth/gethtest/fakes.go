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

package gethtest

import (
	"context"
	"math/big"
	"sync"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
)

// RPCHandler computes the response for one raw JSON-RPC call. The handler
// writes the response into result, which is the pointer passed by the
// caller of CallContext.
type RPCHandler func(result interface{}, args ...interface{}) error

// ScriptedCaller is a raw caller with canned per-method handlers. Methods
// without a registered handler fail the call.
type ScriptedCaller struct {
	mtx      sync.Mutex
	handlers map[string]RPCHandler
	calls    []string
}

// NewScriptedCaller returns a scripted caller with no handlers registered.
func NewScriptedCaller() *ScriptedCaller {
	return &ScriptedCaller{handlers: make(map[string]RPCHandler)}
}

// Handle registers the handler for the given method, replacing any previous
// one.
func (c *ScriptedCaller) Handle(method string, handler RPCHandler) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.handlers[method] = handler
}

// CallContext dispatches the call to the registered handler and records the
// method name.
func (c *ScriptedCaller) CallContext(
	_ context.Context, result interface{}, method string, args ...interface{}) error {
	c.mtx.Lock()
	c.calls = append(c.calls, method)
	handler, ok := c.handlers[method]
	c.mtx.Unlock()

	if !ok {
		return errors.New("no handler registered for method " + method)
	}
	return handler(result, args...)
}

// Calls returns the method names of all calls dispatched so far, in order.
func (c *ScriptedCaller) Calls() []string {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	calls := make([]string, len(c.calls))
	copy(calls, c.calls)
	return calls
}

// ReturnData returns a handler that writes the given bytes into the result,
// for methods that respond with hex encoded data such as eth_call.
func ReturnData(data []byte) RPCHandler {
	return func(result interface{}, _ ...interface{}) error {
		out, ok := result.(*hexutil.Bytes)
		if !ok {
			return errors.Errorf("unexpected result type %T", result)
		}
		*out = data
		return nil
	}
}

// Fail returns a handler that fails every call with the given error.
func Fail(err error) RPCHandler {
	return func(interface{}, ...interface{}) error {
		return err
	}
}

// NodeError mimics the data carrying errors surfaced by the JSON-RPC
// transport when a node rejects a call.
type NodeError struct {
	Msg  string
	Data interface{}
}

// Error implements the error interface.
func (e NodeError) Error() string { return e.Msg }

// ErrorData returns the error data attached by the node.
func (e NodeError) ErrorData() interface{} { return e.Data }

// ChainClientStub is a chain client with canned responses. When Err is set,
// every operation fails with it.
type ChainClientStub struct {
	ID          *big.Int
	Code        []byte
	Nonce       uint64
	GasPrice    *big.Int
	GasEstimate uint64
	Err         error

	mtx     sync.Mutex
	sentTxs []*types.Transaction
}

// NetworkID returns the canned network id.
func (c *ChainClientStub) NetworkID(context.Context) (*big.Int, error) {
	return c.ID, c.Err
}

// CodeAt returns the canned contract code for every address.
func (c *ChainClientStub) CodeAt(
	context.Context, common.Address, *big.Int) ([]byte, error) {
	return c.Code, c.Err
}

// PendingNonceAt returns the canned nonce for every account.
func (c *ChainClientStub) PendingNonceAt(
	context.Context, common.Address) (uint64, error) {
	return c.Nonce, c.Err
}

// SuggestGasPrice returns the canned gas price.
func (c *ChainClientStub) SuggestGasPrice(context.Context) (*big.Int, error) {
	return c.GasPrice, c.Err
}

// EstimateGas returns the canned gas estimate for every call.
func (c *ChainClientStub) EstimateGas(
	context.Context, ethereum.CallMsg) (uint64, error) {
	return c.GasEstimate, c.Err
}

// SendTransaction records the transaction instead of submitting it.
func (c *ChainClientStub) SendTransaction(
	_ context.Context, tx *types.Transaction) error {
	if c.Err != nil {
		return c.Err
	}
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.sentTxs = append(c.sentTxs, tx)
	return nil
}

// SentTxs returns all transactions recorded so far, in submission order.
func (c *ChainClientStub) SentTxs() []*types.Transaction {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	txs := make([]*types.Transaction, len(c.sentTxs))
	copy(txs, c.sentTxs)
	return txs
}
