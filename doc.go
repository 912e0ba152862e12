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

// Package adapter defines a uniform abstraction over divergent ethereum
// client libraries.
//
// The Adapter interface is the contract every concrete client library
// binding implements; the Contract interface is the per-deployed-contract
// handle obtained from an adapter. Higher level code (transaction senders,
// call encoders, deployment address calculators) is written against these
// two interfaces and runs unmodified on any binding.
//
// Besides the interfaces, this package holds the pure building blocks shared
// by all bindings: option bag gas normalization (NormalizeGas), eth_call
// wire shaping (FormatCallTx), revert payload recovery across incompatible
// node error formats (RevertDataFromError) and the error taxonomy of the
// module. All library specific behavior lives in the binding packages under
// client/.
package adapter
