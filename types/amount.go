// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var coinDecimal = decimal.NewFromInt(Coin)

//FormatAmount 最小单位转换成币的字符串, 保留 4 位小数
func FormatAmount(amount int64) string {
	return decimal.NewFromInt(amount).Div(coinDecimal).StringFixed(4)
}

//ParseAmount "1.25" -> 125000000, 超过 8 位小数的部分报错
func ParseAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, errors.Wrap(ErrAmount, err.Error())
	}
	units := d.Mul(coinDecimal)
	if !units.Equal(units.Truncate(0)) {
		return 0, errors.Wrapf(ErrAmount, "too many decimals %s", s)
	}
	if units.Sign() < 0 || units.GreaterThanOrEqual(decimal.NewFromInt(MaxCoin)) {
		return 0, errors.Wrapf(ErrAmount, "out of range %s", s)
	}
	return units.IntPart(), nil
}
