// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainutil

const (
	// GrainsPerDidacent is the number of grains in one didacoin cent.
	GrainsPerDidacent = 1e6

	// GrainsPerDidacoin is the number of grains in one didacoin (1 DDC).
	GrainsPerDidacoin = 1e8

	// MaxGrains is a sanity ceiling on a single transaction output
	// amount. It is not a consensus-enforced supply cap: the economic
	// policy knobs (halving schedule, total issuance) are named but not
	// specified further.
	MaxGrains = 21e6 * GrainsPerDidacoin
)
