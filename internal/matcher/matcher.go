// Package matcher assigns each job a deterministic match percentage so
// the same job always renders with the same score.
package matcher

// Score hashes the job id to a match percentage between 60 and 100
// inclusive. The hash is the classic shift-and-subtract string hash
// evaluated in 32-bit arithmetic.
func Score(jobID string) int {
	var hash int32
	for _, r := range jobID {
		hash = (hash << 5) - hash + int32(r)
	}
	h := int64(hash)
	if h < 0 {
		h = -h
	}
	return 60 + int(h%41)
}
