package lifecycle

import (
	"math/rand/v2"
	"strconv"
)

// CodeGenerator returns a 6-digit pickup code.
type CodeGenerator func() string

// GenerateCode draws uniformly from 100000..999999. Codes are not unique across
// pickups; verification is always scoped to one pickup id.
func GenerateCode() string {
	return strconv.Itoa(100000 + rand.IntN(900000))
}
