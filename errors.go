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
	"fmt"

	"github.com/pkg/errors"
)

// ConfigurationError indicates a required construction dependency of a
// binding is missing or invalid. Bindings raise it at construction time,
// never deferred.
type ConfigurationError struct {
	Name string
	err  error
}

// Error implements the error interface.
func (e ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration for %s: %v", e.Name, e.err)
}

// Unwrap returns the original error.
func (e ConfigurationError) Unwrap() error {
	return e.err
}

// NewConfigurationError constructs and returns a ConfigurationError.
func NewConfigurationError(name string, err error) error {
	return errors.WithStack(ConfigurationError{Name: name, err: err})
}

// AddressMismatchError indicates a supplied from address does not resolve,
// after checksum normalization, to the account controlled by the binding's
// signing identity. It is raised before any transaction is submitted.
type AddressMismatchError struct {
	Got  string
	Want string
}

// Error implements the error interface.
func (e AddressMismatchError) Error() string {
	return fmt.Sprintf("from address %s does not match the controlled account %s", e.Got, e.Want)
}

// NewAddressMismatchError constructs and returns an AddressMismatchError.
func NewAddressMismatchError(got, want string) error {
	return errors.WithStack(AddressMismatchError{Got: got, Want: want})
}

// ProviderError indicates a raw provider call failed. The node's original
// error is carried unchanged and can be recovered via Unwrap.
type ProviderError struct {
	Method string
	err    error
}

// Error implements the error interface.
func (e ProviderError) Error() string {
	return fmt.Sprintf("provider call %s: %v", e.Method, e.err)
}

// Unwrap returns the original error surfaced by the transport.
func (e ProviderError) Unwrap() error {
	return e.err
}

// NewProviderError constructs and returns a ProviderError.
func NewProviderError(method string, err error) error {
	return errors.WithStack(ProviderError{Method: method, err: err})
}

// ConnectivityError indicates the blockchain node could not be reached.
type ConnectivityError struct {
	err error
}

// Error implements the error interface.
func (e ConnectivityError) Error() string {
	return fmt.Sprintf("connecting to blockchain node: %v", e.err)
}

// Unwrap returns the original error.
func (e ConnectivityError) Unwrap() error {
	return e.err
}

// NewConnectivityError constructs and returns a ConnectivityError.
func NewConnectivityError(err error) error {
	return errors.WithStack(ConnectivityError{err: err})
}

// DecodingError indicates a malformed or mismatched abi interaction: packing
// arguments or unpacking return data failed for the named operation.
type DecodingError struct {
	Op  string
	err error
}

// Error implements the error interface.
func (e DecodingError) Error() string {
	return fmt.Sprintf("abi coding for %s: %v", e.Op, e.err)
}

// Unwrap returns the original error.
func (e DecodingError) Unwrap() error {
	return e.err
}

// NewDecodingError constructs and returns a DecodingError.
func NewDecodingError(op string, err error) error {
	return errors.WithStack(DecodingError{Op: op, err: err})
}

// MethodNotFoundError indicates the requested method is absent from the abi
// bound to a contract handle.
type MethodNotFoundError struct {
	Method string
}

// Error implements the error interface.
func (e MethodNotFoundError) Error() string {
	return fmt.Sprintf("method %s not found in contract abi", e.Method)
}

// NewMethodNotFoundError constructs and returns a MethodNotFoundError.
func NewMethodNotFoundError(method string) error {
	return errors.WithStack(MethodNotFoundError{Method: method})
}

// UnrecognizedRevertFormatError indicates a failed call carried an error
// payload matching none of the known node error formats. It is propagated,
// never swallowed, so that genuinely unexpected error shapes reach the
// caller.
type UnrecognizedRevertFormatError struct {
	err error
}

// Error implements the error interface.
func (e UnrecognizedRevertFormatError) Error() string {
	return fmt.Sprintf("unrecognized revert data format: %v", e.err)
}

// Unwrap returns the original error whose shape was not recognized.
func (e UnrecognizedRevertFormatError) Unwrap() error {
	return e.err
}

// NewUnrecognizedRevertFormatError constructs and returns an
// UnrecognizedRevertFormatError.
func NewUnrecognizedRevertFormatError(err error) error {
	return errors.WithStack(UnrecognizedRevertFormatError{err: err})
}
