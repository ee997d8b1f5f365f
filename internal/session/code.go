package session

import (
	"math/rand"
)

const codeLength = 4
const maxRetries = 100

var letters = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// GenerateCode creates a random 4-letter uppercase session code that is not
// in existing.
func GenerateCode(rng *rand.Rand, existing map[string]bool) string {
	for range maxRetries {
		code := randomCode(rng)
		if !existing[code] {
			return code
		}
	}
	return randomCode(rng)
}

func randomCode(rng *rand.Rand) string {
	b := make([]rune, codeLength)
	for i := range b {
		b[i] = letters[rng.Intn(len(letters))]
	}
	return string(b)
}
