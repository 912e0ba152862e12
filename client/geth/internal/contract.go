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
	"math/big"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	adapter "github.com/hyperledger-labs/eth-adapter"
)

// Contract is a stateless handle binding one abi, one address and one
// adapter instance. The abi is owned by the caller and only referenced here.
type Contract struct {
	ABI     abi.ABI
	Addr    common.Address
	Backend *Adapter
}

// Address returns the bound contract address.
func (c *Contract) Address() common.Address {
	return c.Addr
}

// Encode packs a method invocation into call data.
func (c *Contract) Encode(method string, params []interface{}) ([]byte, error) {
	if _, ok := c.ABI.Methods[method]; !ok {
		return nil, adapter.NewMethodNotFoundError(method)
	}
	data, err := c.ABI.Pack(method, params...)
	if err != nil {
		return nil, adapter.NewDecodingError(method, err)
	}
	return data, nil
}

// Call invokes a read-only method and decodes the return data against the
// method's declared output types. A single declared return value is
// unwrapped and returned directly; otherwise the ordered list of decoded
// values is returned.
func (c *Contract) Call(ctx context.Context, method string, params []interface{}, opts adapter.TxOpts) (
	interface{}, error) {
	data, err := c.Encode(method, params)
	if err != nil {
		return nil, err
	}

	to := c.Addr
	tx := adapter.CallTx{To: &to, Data: data}
	applyCallOpts(&tx, adapter.NormalizeGas(opts))

	out, err := c.Backend.EthCall(ctx, tx, adapter.BlockLatest)
	if err != nil {
		return nil, err
	}
	values, err := c.ABI.Unpack(method, out)
	if err != nil {
		return nil, adapter.NewDecodingError(method, err)
	}
	if len(c.ABI.Methods[method].Outputs) == 1 {
		return values[0], nil
	}
	return values, nil
}

// Send submits a state-changing transaction invoking the method. A nil opts
// dispatches with the binding's own signing identity without the from check;
// a non-nil opts is gas normalized and any "from" entry is verified before
// dispatch.
func (c *Contract) Send(ctx context.Context, method string, params []interface{}, opts adapter.TxOpts) (
	*adapter.TransactionResult, error) {
	data, err := c.Encode(method, params)
	if err != nil {
		return nil, err
	}

	bag := adapter.NormalizeGas(opts)
	if bag == nil {
		bag = adapter.TxOpts{}
	}
	bag["to"] = c.Addr
	bag["data"] = data

	if opts != nil {
		if from, ok := bag["from"].(string); ok {
			if err := c.Backend.CheckFromAddress(ctx, from); err != nil {
				return nil, err
			}
		}
	}
	return c.Backend.sendTx(ctx, bag)
}

// EstimateGas returns the gas estimate for invoking the method, handling
// options as in Send but submitting nothing.
func (c *Contract) EstimateGas(ctx context.Context, method string, params []interface{}, opts adapter.TxOpts) (
	uint64, error) {
	data, err := c.Encode(method, params)
	if err != nil {
		return 0, err
	}

	bag := adapter.NormalizeGas(opts)
	from := c.Backend.Acc.Address
	var value *big.Int
	if opts != nil {
		if f, ok := bag["from"].(string); ok {
			if err := c.Backend.CheckFromAddress(ctx, f); err != nil {
				return 0, err
			}
			from = common.HexToAddress(f)
		}
		value, _ = bag["value"].(*big.Int)
	}

	to := c.Addr
	msg := ethereum.CallMsg{From: from, To: &to, Value: value, Data: data, Gas: gasFromOpts(bag)}
	gas, err := c.Backend.Client.EstimateGas(ctx, msg)
	if err != nil {
		return 0, adapter.NewProviderError("eth_estimateGas", err)
	}
	return gas, nil
}

// applyCallOpts writes the recognized entries of a normalized option bag
// onto a call transaction.
func applyCallOpts(tx *adapter.CallTx, opts adapter.TxOpts) {
	if opts == nil {
		return
	}
	if from, ok := opts["from"].(string); ok && common.IsHexAddress(from) {
		addr := common.HexToAddress(from)
		tx.From = &addr
	}
	if value, ok := opts["value"].(*big.Int); ok {
		tx.Value = value
	}
	tx.Gas = gasFromOpts(opts)
}
