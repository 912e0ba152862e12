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

package adapter_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapter "github.com/hyperledger-labs/eth-adapter"
)

func Test_ConfigurationError(t *testing.T) {
	cause := errors.New("keystore directory does not exist")
	err := adapter.NewConfigurationError("keystore", cause)
	require.Error(t, err)

	configErr := adapter.ConfigurationError{}
	ok := errors.As(err, &configErr)
	require.True(t, ok)
	assert.Equal(t, "keystore", configErr.Name)
	assert.Equal(t, cause, configErr.Unwrap())
	assert.Contains(t, err.Error(), "keystore directory does not exist")
}

func Test_AddressMismatchError(t *testing.T) {
	got := "0xdD2FD4581271e230360230F9337D5c0430Bf44C0"
	want := "0x8626f6940E2eb28930eFb4CeF49B2d1F2C9C1199"
	err := adapter.NewAddressMismatchError(got, want)
	require.Error(t, err)

	mismatchErr := adapter.AddressMismatchError{}
	ok := errors.As(err, &mismatchErr)
	require.True(t, ok)
	assert.Equal(t, got, mismatchErr.Got)
	assert.Equal(t, want, mismatchErr.Want)
}

func Test_ProviderError(t *testing.T) {
	cause := errors.New("the method eth_foo does not exist/is not available")
	err := adapter.NewProviderError("eth_foo", cause)
	require.Error(t, err)

	providerErr := adapter.ProviderError{}
	ok := errors.As(err, &providerErr)
	require.True(t, ok)
	assert.Equal(t, "eth_foo", providerErr.Method)
	assert.Equal(t, cause, providerErr.Unwrap(), "node's original error must be carried unchanged")
}

func Test_ConnectivityError(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:8545: connect: connection refused")
	err := adapter.NewConnectivityError(cause)
	require.Error(t, err)

	connErr := adapter.ConnectivityError{}
	ok := errors.As(err, &connErr)
	require.True(t, ok)
	assert.Equal(t, cause, connErr.Unwrap())
}

func Test_DecodingError(t *testing.T) {
	cause := errors.New("abi: cannot marshal in to go type")
	err := adapter.NewDecodingError("balanceOf", cause)
	require.Error(t, err)

	decodingErr := adapter.DecodingError{}
	ok := errors.As(err, &decodingErr)
	require.True(t, ok)
	assert.Equal(t, "balanceOf", decodingErr.Op)
}

func Test_MethodNotFoundError(t *testing.T) {
	err := adapter.NewMethodNotFoundError("transferFrom")
	require.Error(t, err)

	notFoundErr := adapter.MethodNotFoundError{}
	ok := errors.As(err, &notFoundErr)
	require.True(t, ok)
	assert.Equal(t, "transferFrom", notFoundErr.Method)
}
