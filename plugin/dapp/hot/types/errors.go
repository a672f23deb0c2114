// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	ErrHotNotOpen             = errors.New("ErrHotNotOpen")
	ErrHotNotEnoughETHEntered = errors.New("ErrHotNotEnoughETHEntered")
	ErrHotUpkeepNotNeeded     = errors.New("ErrHotUpkeepNotNeeded")
	ErrHotUnauthorizedCaller  = errors.New("ErrHotUnauthorizedCaller")
	ErrHotUnknownRequest      = errors.New("ErrHotUnknownRequest")
	ErrHotPayoutFailed        = errors.New("ErrHotPayoutFailed")
	ErrHotNotFound            = errors.New("ErrHotNotFound")
	ErrHotOutcome             = errors.New("ErrHotOutcome")
	ErrHotParam               = errors.New("ErrHotParam")
)
