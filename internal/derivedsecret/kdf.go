package derivedsecret

import (
	"crypto/sha256"
	"fmt"
	"math/big"

	"golang.org/x/crypto/argon2"

	"github.com/zengarden-space/homelab-operators/internal/config"
)

const base62Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Derive computes the deterministic value for one field of one identifier:
// raw = Argon2id(master, SHA-256(field+":"+id), t, m, p, max(64,
// 2*length)), re-expressed in base62 and shaped to exactly length
// characters.
func Derive(master, id, field string, length int, params config.Argon2Params) string {
	salt := sha256.Sum256([]byte(field + ":" + id))
	keyLen := uint32(length * 2)
	if keyLen < 64 {
		keyLen = 64
	}
	raw := argon2.IDKey([]byte(master), salt[:], params.TimeCost, params.MemoryCost, params.Parallelism, keyLen)
	return toBase62(raw, length)
}

// toBase62 converts data (read as a big-endian unsigned integer) into its
// base62 representation, producing exactly length characters: low-order
// digits are extracted one at a time until length digits are collected (or
// the value is exhausted), the buffer is reversed, and the result is
// left-padded with the alphabet's zero digit.
func toBase62(data []byte, length int) string {
	if length <= 0 {
		return ""
	}

	num := new(big.Int).SetBytes(data)
	if num.Sign() == 0 {
		return repeatByte(base62Alphabet[0], length)
	}

	base := big.NewInt(62)
	mod := new(big.Int)
	digits := make([]byte, 0, length)
	for num.Sign() > 0 && len(digits) < length {
		num.DivMod(num, base, mod)
		digits = append(digits, base62Alphabet[mod.Int64()])
	}

	reverse(digits)

	if len(digits) < length {
		pad := repeatByte(base62Alphabet[0], length-len(digits))
		digits = append([]byte(pad), digits...)
	}
	return string(digits[:length])
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

func repeatByte(c byte, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = c
	}
	return string(b)
}

// Identity builds the derivation identifier "<namespace>/<name>" used as
// the id component of the salt.
func Identity(namespace, name string) string {
	return fmt.Sprintf("%s/%s", namespace, name)
}
