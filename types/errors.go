// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

//error
var (
	ErrNotFound                = errors.New("ErrNotFound")
	ErrNoBalance               = errors.New("ErrNoBalance")
	ErrAmount                  = errors.New("ErrAmount")
	ErrSendSameToRecv          = errors.New("ErrSendSameToRecv")
	ErrInvalidAddress          = errors.New("ErrInvalidAddress")
	ErrInvalidParam            = errors.New("ErrInvalidParam")
	ErrDecode                  = errors.New("ErrDecode")
	ErrSign                    = errors.New("ErrSign")
	ErrNoSignature             = errors.New("ErrNoSignature")
	ErrTxExist                 = errors.New("ErrTxExist")
	ErrTxMsgSizeTooBig         = errors.New("ErrTxMsgSizeTooBig")
	ErrExecNameNotAllow        = errors.New("ErrExecNameNotAllow")
	ErrUnRegistedDriver        = errors.New("ErrUnRegistedDriver")
	ErrActionNotSupport        = errors.New("ErrActionNotSupport")
	ErrQueryNotSupport         = errors.New("ErrQueryNotSupport")
	ErrMethodReturnType        = errors.New("ErrMethodReturnType")
	ErrMethodNotFound          = errors.New("ErrMethodNotFound")
	ErrTypeAsset               = errors.New("ErrTypeAsset")
	ErrToAddrNotSameToExecAddr = errors.New("ErrToAddrNotSameToExecAddr")
	ErrBlockHeight             = errors.New("ErrBlockHeight")
	ErrBlockTime               = errors.New("ErrBlockTime")
	ErrEmptyTx                 = errors.New("ErrEmptyTx")
	ErrTooManyTxs              = errors.New("ErrTooManyTxs")
	ErrConfig                  = errors.New("ErrConfig")
	ErrGenesis                 = errors.New("ErrGenesis")
)
