// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Argentite Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

// Root - compute the merkle root from a set of transaction ids
//
// pairs of digests are hashed together level by level, an odd digest
// at the end of a level is paired with itself; an empty set yields
// the zero digest
func Root(txIds []Digest) Digest {

	count := len(txIds)
	if 0 == count {
		return Digest{}
	}

	level := make([]Digest, count)
	copy(level, txIds)

	for count > 1 {
		next := 0
		for i := 0; i < count; i += 2 {
			j := i + 1
			if j == count {
				j = i // compensate for odd number
			}
			level[next] = NewDigest(append(level[i][:], level[j][:]...))
			next += 1
		}
		count = next
	}
	return level[0]
}
