package model

// HashMode selects how input is hashed.
type HashMode string

const (
	// HashModeStub returns the fixed placeholder digest for every input.
	HashModeStub HashMode = "stub"
	// HashModeSHA256 returns the SHA-256 digest of the input.
	HashModeSHA256 HashMode = "sha256"
)

// DateResult pairs a raw input with its formatted calendar date.
type DateResult struct {
	Input string
	Date  string
}

// HashResult pairs an input with its digest.
type HashResult struct {
	Input  string
	Mode   HashMode
	Digest string
}
