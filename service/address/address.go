package address

import (
	"math/rand"

	"github.com/mr-tron/base58"
	"github.com/pandodao/spl-minter/core"
)

// Alphabet is the base-58 alphabet used by Solana addresses: digits and
// letters without 0, O, I and l.
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz123456789"

const Length = 44

type generator struct {
	intN func(n int) int
}

func New() core.AddressGenerator {
	return &generator{intN: rand.Intn}
}

// Generate returns Length characters drawn uniformly, with replacement, from Alphabet.
func (g *generator) Generate() string {
	b := make([]byte, Length)
	for i := range b {
		b[i] = Alphabet[g.intN(len(Alphabet))]
	}

	return string(b)
}

// Valid reports whether s has the shape of a generated mint address.
func Valid(s string) bool {
	return len(s) == Length && IsBase58(s)
}

// IsBase58 reports whether s is a non-empty base-58 string of any length.
func IsBase58(s string) bool {
	if s == "" {
		return false
	}

	_, err := base58.Decode(s)
	return err == nil
}
