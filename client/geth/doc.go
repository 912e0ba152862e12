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

// Package geth provides the adapter binding to the go-ethereum client
// library. The actual implementation of the functionality is done in the
// internal package, over two narrow consumed interfaces (the raw JSON-RPC
// transport and a typed subset of the client), so that it can be configured
// for both real and test uses and shared by this package and the gethtest
// package.
//
// All field level poking at go-ethereum types is isolated inside this
// binding; code written against the root package interfaces never touches
// the wrapped library directly.
package geth
