// Package dealid generates sortable identifiers for deals: a UUIDv7
// (48-bit millisecond timestamp + random tail) encoded as a 26-character
// Crockford base32 string. IDs created later sort later, which keeps deal
// histories naturally ordered.
package dealid

import (
	"crypto/rand"
	"fmt"
	"time"
)

const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// RandSource supplies the random tail; injectable for deterministic tests
type RandSource interface {
	Intn(n int) int
}

// Generator creates deal IDs with configurable randomness
type Generator struct {
	randSource RandSource
}

// NewGenerator creates a Generator. A nil RandSource uses crypto/rand.
func NewGenerator(randSource RandSource) *Generator {
	return &Generator{randSource: randSource}
}

// Generate creates a new deal ID using crypto/rand
func Generate() string {
	return NewGenerator(nil).Generate()
}

// Generate creates a new deal ID
func (g *Generator) Generate() string {
	var id [16]byte

	now := time.Now().UnixMilli()
	id[0] = byte(now >> 40)
	id[1] = byte(now >> 32)
	id[2] = byte(now >> 24)
	id[3] = byte(now >> 16)
	id[4] = byte(now >> 8)
	id[5] = byte(now)

	if g.randSource != nil {
		for i := 6; i < 16; i++ {
			id[i] = byte(g.randSource.Intn(256))
		}
	} else {
		if _, err := rand.Read(id[6:]); err != nil {
			panic("dealid: failed to read random bytes: " + err.Error())
		}
	}

	// UUIDv7 version and variant bits.
	id[6] = (id[6] & 0x0f) | 0x70
	id[8] = (id[8] & 0x3f) | 0x80

	return encodeBase32(id)
}

// encodeBase32 encodes 128 bits as 26 base32 characters, 5 bits at a time
func encodeBase32(data [16]byte) string {
	result := make([]byte, 26)
	for i := 0; i < 26; i++ {
		bitOffset := i * 5
		byteIndex := bitOffset / 8
		bitIndex := bitOffset % 8

		var value uint8
		if byteIndex < 16 {
			if bitIndex <= 3 {
				value = (data[byteIndex] >> (3 - bitIndex)) & 0x1f
			} else {
				value = (data[byteIndex] << (bitIndex - 3)) & 0x1f
				if byteIndex+1 < 16 {
					value |= data[byteIndex+1] >> (11 - bitIndex)
				}
			}
		}
		result[i] = alphabet[value]
	}
	return string(result)
}

// Validate checks that id is a well-formed deal ID
func Validate(id string) error {
	if len(id) != 26 {
		return fmt.Errorf("deal ID must be exactly 26 characters, got %d", len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("deal ID first character must be 0-7, got %c", id[0])
	}
	for i := 0; i < len(id); i++ {
		valid := false
		for j := 0; j < len(alphabet); j++ {
			if id[i] == alphabet[j] {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("invalid character %c at position %d", id[i], i)
		}
	}
	return nil
}
