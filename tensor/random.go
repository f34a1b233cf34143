// SPDX-License-Identifier: MIT
// File: random.go
// Role: Deterministic random tensors for tests and benchmarks.
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.

package tensor

import "math/rand"

// defaultRNGSeed is used when Random is called with a nil generator.
const defaultRNGSeed int64 = 1

// Random returns a tensor of the given shape with entries uniform in [-1, 1).
// If rng is nil a generator seeded with defaultRNGSeed is used, so the
// result is reproducible.
// Complexity: O(Volume(shape)).
func Random(rng *rand.Rand, shape ...int) (*Dense, error) {
	t, err := Zeros(shape...)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultRNGSeed))
	}
	var i int
	for i = range t.data {
		t.data[i] = 2*rng.Float64() - 1
	}

	return t, nil
}
