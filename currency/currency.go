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

// Package currency provides parsers for converting between the string
// representation of a currency amount and its value in base unit (such as
// wei for ETH), for use when populating the value entry of transaction
// option bags.
package currency

import (
	"math/big"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Define symbol and max decimals for ETH, because there is no token contract
// for ETH, from which these details can be fetched from.
const (
	// ETHSymbol is the symbol for ethereum's native currency.
	ETHSymbol = "ETH"

	// ETHMaxDecimals is the maximum number of decimal places allowed in ETH
	// representation.
	ETHMaxDecimals uint8 = 18
)

// placesToRound is the number of decimal places in the string
// representation returned by Print.
const placesToRound = 6

// Currency represents a parser that can convert between string
// representation of a currency and its equivalent value in base unit
// represented as a big integer.
type Currency interface {
	Parse(string) (*big.Int, error)
	Print(*big.Int) string
	Symbol() string
}

type currency struct {
	symbol   string
	decimals decimal.Decimal
}

// Parse parses the given amount string in the currency's standard unit,
// converts it to the base unit and returns a big.Int representation of it.
//
// It can parse decimal values up to the currency's max decimals without loss
// of accuracy. Smaller amounts result in an error.
func (c currency) Parse(input string) (*big.Int, error) {
	amount, err := decimal.NewFromString(input)
	if err != nil {
		return nil, errors.Wrap(err, "invalid decimal string")
	}

	amountBaseUnit := amount.Mul(c.decimals)
	if amountBaseUnit.LessThan(decimal.NewFromInt(1)) {
		return nil, errors.New("amount smaller than smallest unit of currency")
	}
	return amountBaseUnit.BigInt(), nil
}

// Print converts the input amount in base unit to the currency's standard
// unit and returns a string representation of it, rounded off to 6 decimal
// places.
func (c currency) Print(input *big.Int) string {
	amount := decimal.NewFromBigInt(input, 0)
	return amount.Div(c.decimals).StringFixedBank(placesToRound)
}

// Symbol returns the symbol of this currency.
func (c currency) Symbol() string {
	return c.symbol
}
