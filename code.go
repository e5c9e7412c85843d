package grpy

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"math/big"

	"github.com/t73fde/grpy/types"
)

// codeAlphabet is the 32-character alphabet for grouping access codes. It
// omits I, L, O and U to avoid misreadings.
const codeAlphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// codeLength is the number of characters in a grouping access code.
const codeLength = 6

// MakeCode builds a short code for accessing a grouping.
//
// The code is derived from the grouping's identifying fields, so the same
// grouping yields the same code. With unique set, random entropy is mixed in
// and every call yields a fresh code; hosts use this to resolve collisions
// between similar groupings.
//
// Parameters:
//   - grouping: The grouping to build a code for
//   - unique: Mix in random entropy for a one-off code
//
// Returns:
//   - string: 6-character code over a 32-character alphabet
func MakeCode(grouping types.Grouping, unique bool) string {
	hash := sha256.New()
	fmt.Fprint(hash, grouping.Name)
	fmt.Fprint(hash, grouping.BeginDate)
	fmt.Fprint(hash, grouping.FinalDate)
	if grouping.CloseDate != nil {
		fmt.Fprint(hash, *grouping.CloseDate)
	}
	fmt.Fprint(hash, grouping.Policy)
	if unique {
		entropy := make([]byte, 8)
		// rand.Read never fails on supported platforms.
		_, _ = rand.Read(entropy)
		hash.Write(entropy)
	}

	value := new(big.Int).SetBytes(hash.Sum(nil))
	base := big.NewInt(int64(len(codeAlphabet)))
	digit := new(big.Int)

	code := make([]byte, codeLength)
	for i := range code {
		value.DivMod(value, base, digit)
		code[i] = codeAlphabet[digit.Int64()]
	}

	return string(code)
}
