package layout

import "hash/fnv"

// unitHash maps (id, salt) deterministically onto [0, 1). Used in place of
// an RNG for jitter and initial velocity, so a layout run is reproducible
// bit-exactly from the same snapshot and config.
func unitHash(id, salt string) float64 {
	h := fnv.New64a()
	h.Write([]byte(id))
	h.Write([]byte{0})
	h.Write([]byte(salt))
	const mask = 1<<53 - 1
	return float64(h.Sum64()&mask) / float64(mask+1)
}

// signedHash maps (id, salt) onto [-1, 1).
func signedHash(id, salt string) float64 {
	return unitHash(id, salt)*2 - 1
}
