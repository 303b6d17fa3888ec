// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Argentite Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockdigest_test

import (
	"math/big"
	"testing"

	"github.com/argentite/argentd/blockdigest"
	"github.com/argentite/argentd/difficulty"
)

func TestDigestDeterministic(t *testing.T) {

	record := []byte("a block header to hash")

	d1 := blockdigest.NewDigest(record)
	d2 := blockdigest.NewDigest(record)
	if d1 != d2 {
		t.Fatalf("digest not deterministic: %s != %s", d1, d2)
	}

	d3 := blockdigest.NewDigest(append(record, 0))
	if d1 == d3 {
		t.Fatal("different records give the same digest")
	}
}

func TestDigestCmp(t *testing.T) {

	d := blockdigest.NewDigest([]byte("cmp test"))

	// any digest meets the testing difficulty
	easy := difficulty.New().SetBits(difficulty.TestingUint32)
	if d.Cmp(easy.BigInt()) > 0 {
		t.Fatalf("digest %s fails the testing difficulty", d)
	}

	// no digest meets a zero threshold
	if d.Cmp(big.NewInt(0)) <= 0 {
		t.Fatalf("digest %s meets an impossible difficulty", d)
	}
}

func TestDigestText(t *testing.T) {

	d := blockdigest.NewDigest([]byte("text round trip"))

	text, err := d.MarshalText()
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}

	var back blockdigest.Digest
	err = back.UnmarshalText(text)
	if nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}
	if d != back {
		t.Fatalf("round trip failed: %s != %s", d, back)
	}
}
