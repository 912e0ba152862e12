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
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// FormatCallTx shapes a read-only call transaction into the object expected
// by a raw eth_call JSON-RPC request. Fields without a value are left out
// entirely rather than sent as null: some node implementations reject calls
// carrying null valued optional fields.
//
// Every binding must route eth_call dispatch through this function instead
// of passing its transaction object unformatted.
func FormatCallTx(tx CallTx) map[string]interface{} {
	arg := map[string]interface{}{}
	if tx.From != nil {
		arg["from"] = *tx.From
	}
	if tx.To != nil {
		arg["to"] = *tx.To
	}
	if len(tx.Data) > 0 {
		arg["data"] = hexutil.Bytes(tx.Data)
	}
	if tx.Value != nil {
		arg["value"] = (*hexutil.Big)(tx.Value)
	}
	if tx.Gas != 0 {
		arg["gas"] = hexutil.Uint64(tx.Gas)
	}
	return arg
}
