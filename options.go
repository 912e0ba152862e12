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

// gasKeys lists the accepted spellings of the gas limit key, in the priority
// order applied when more than one spelling is present.
var gasKeys = []string{"gas", "gasLimit", "gas_limit"}

// NormalizeGas returns a copy of the given option bag in which the gas limit
// appears under the single canonical "gas" key, whichever accepted spelling
// it was supplied under. All other keys pass through unchanged. When no gas
// limit key is present, the output carries no "gas" key at all; no default
// is injected. The input bag is never mutated. A nil bag yields nil.
func NormalizeGas(opts TxOpts) TxOpts {
	if opts == nil {
		return nil
	}
	out := make(TxOpts, len(opts))
	for k, v := range opts {
		if isGasKey(k) {
			continue
		}
		out[k] = v
	}
	for _, k := range gasKeys {
		if v, ok := opts[k]; ok {
			out["gas"] = v
			break
		}
	}
	return out
}

func isGasKey(key string) bool {
	for _, k := range gasKeys {
		if key == k {
			return true
		}
	}
	return false
}

// MergeSendOptions merges the owner account into the given options as the
// "from" entry: the caller options are spread over a base bag containing
// only "from", so every caller supplied entry takes precedence.
//
// This means a caller supplied "from" silently overrides the owner account.
// Existing callers depend on this precedence; it is pinned by a test so any
// future change is caught, not hidden.
func MergeSendOptions(owner string, opts TxOpts) TxOpts {
	merged := TxOpts{"from": owner}
	for k, v := range opts {
		merged[k] = v
	}
	return merged
}
