// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	ErrNonexistentRequest          = errors.New("ErrNonexistentRequest")
	ErrInvalidSubscription         = errors.New("ErrInvalidSubscription")
	ErrInvalidConsumer             = errors.New("ErrInvalidConsumer")
	ErrConsumerExists              = errors.New("ErrConsumerExists")
	ErrTooManyConsumers            = errors.New("ErrTooManyConsumers")
	ErrMustBeSubOwner              = errors.New("ErrMustBeSubOwner")
	ErrInvalidRequestConfirmations = errors.New("ErrInvalidRequestConfirmations")
	ErrGasLimitTooBig              = errors.New("ErrGasLimitTooBig")
	ErrNumWordsTooBig              = errors.New("ErrNumWordsTooBig")
	ErrInsufficientBalance         = errors.New("ErrInsufficientBalance")
	ErrRequestNotConfirmed         = errors.New("ErrRequestNotConfirmed")
	ErrVrfKey                      = errors.New("ErrVrfKey")
	ErrConsumerNotSupport          = errors.New("ErrConsumerNotSupport")
)
