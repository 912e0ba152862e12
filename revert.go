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
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// revertedSentinel prefixes the revert hex in the error data of
// openethereum family nodes.
const revertedSentinel = "Reverted "

// dataCarrier is the shape of transport errors that carry the node's
// original error payload. The rpc.DataError of go-ethereum satisfies it.
type dataCarrier interface {
	ErrorData() interface{}
}

// RevertDataFromError recovers the raw revert payload from a failed call
// error. Node implementations surface revert payloads in incompatible error
// shapes, so the payload carried by the error is tried against each known
// format in priority order:
//
//  1. a hex string, decoded directly (geth family),
//  2. a hex string prefixed by the "Reverted " sentinel, decoded after
//     stripping the sentinel (openethereum family),
//  3. a mapping keyed by transaction hash whose entry carries the revert hex
//     under "return" (ganache family).
//
// When the error carries no payload or the payload matches none of the known
// formats, an UnrecognizedRevertFormatError wrapping the original error is
// returned; unexpected error shapes are never swallowed.
func RevertDataFromError(err error) ([]byte, error) {
	data, ok := errorData(err)
	if !ok {
		return nil, NewUnrecognizedRevertFormatError(err)
	}

	switch v := data.(type) {
	case string:
		if revertHex, ok := parseRevertHex(v); ok {
			return revertHex, nil
		}
	case map[string]interface{}:
		if revertHex, ok := parseTxHashKeyedData(v); ok {
			return revertHex, nil
		}
	}
	return nil, NewUnrecognizedRevertFormatError(err)
}

// errorData walks the cause chain of err for a transport error carrying the
// node's original error payload.
func errorData(err error) (interface{}, bool) {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if carrier, ok := e.(dataCarrier); ok {
			return carrier.ErrorData(), true
		}
	}
	return nil, false
}

func parseRevertHex(s string) ([]byte, bool) {
	s = strings.TrimPrefix(s, revertedSentinel)
	if !strings.HasPrefix(s, "0x") {
		return nil, false
	}
	revertHex, err := hexutil.Decode(s)
	if err != nil {
		return nil, false
	}
	return revertHex, true
}

// parseTxHashKeyedData handles nodes that report failed calls as a mapping
// from transaction hash to per-transaction results.
func parseTxHashKeyedData(data map[string]interface{}) ([]byte, bool) {
	for key, entry := range data {
		if !strings.HasPrefix(key, "0x") {
			continue
		}
		fields, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		ret, ok := fields["return"].(string)
		if !ok {
			continue
		}
		revertHex, err := hexutil.Decode(ret)
		if err != nil {
			continue
		}
		return revertHex, true
	}
	return nil, false
}
