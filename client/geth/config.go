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

package geth

import (
	"path/filepath"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	adapter "github.com/hyperledger-labs/eth-adapter"
)

// Config defines the parameters required to connect this binding.
type Config struct {
	// ChainURL is the URL of the blockchain node.
	ChainURL string
	// ChainID is the unique identifier of the chain, used as the signer
	// domain for transactions.
	ChainID int
	// ChainConnTimeout is the timeout used when dialing the node.
	ChainConnTimeout time.Duration

	// KeystorePath is the directory holding the key of the controlled
	// account.
	KeystorePath string
	// Address is the controlled account, as a hex string.
	Address string
	// Password unlocks the controlled account. May be empty.
	Password string
}

// ParseConfig parses the binding configuration from a file. File format can
// be any of the formats supported by the viper library.
func ParseConfig(configFile string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(filepath.Clean(configFile))

	var cfg Config
	if err := v.ReadInConfig(); err != nil {
		return cfg, errors.Wrap(err, "reading config file")
	}
	return cfg, errors.Wrap(v.Unmarshal(&cfg), "unmarshaling config file")
}

// Validate checks the construction dependencies of the binding, failing
// with a ConfigurationError on the first missing or invalid entry.
func (cfg Config) Validate() error {
	if cfg.ChainURL == "" {
		return adapter.NewConfigurationError("chain url", errors.New("missing"))
	}
	if cfg.ChainConnTimeout <= 0 {
		return adapter.NewConfigurationError("chain connection timeout", errors.New("missing or not positive"))
	}
	if cfg.KeystorePath == "" {
		return adapter.NewConfigurationError("keystore path", errors.New("missing"))
	}
	if !common.IsHexAddress(cfg.Address) {
		return adapter.NewConfigurationError("address", errors.New("not a hex address: "+cfg.Address))
	}
	return nil
}
