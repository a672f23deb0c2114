// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import "fmt"

func calcSubCountKey() []byte {
	return []byte("mavl-vrf-subcount")
}

func calcReqCountKey() []byte {
	return []byte("mavl-vrf-reqcount")
}

func calcSubKey(subID int64) []byte {
	return []byte(fmt.Sprintf("mavl-vrf-sub-%018d", subID))
}

func calcRequestKey(requestID int64) []byte {
	return []byte(fmt.Sprintf("mavl-vrf-req-%018d", requestID))
}

func calcProofKey(requestID int64) []byte {
	return []byte(fmt.Sprintf("mavl-vrf-proof-%018d", requestID))
}

func calcOwnerSubKey(owner string, subID int64) []byte {
	return []byte(fmt.Sprintf("LODB-vrf-owner:%s:%018d", owner, subID))
}

func calcOwnerSubPrefix(owner string) []byte {
	return []byte(fmt.Sprintf("LODB-vrf-owner:%s:", owner))
}
