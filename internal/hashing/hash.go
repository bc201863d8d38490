// Package hashing fingerprints column schemas so generators can be
// compared for equality independent of column order.
package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
)

// Fingerprint hashes a set of column names order-insensitively. Names
// are length-prefixed so concatenation ambiguity cannot collide.
func Fingerprint(names []string) string {
	canon := append([]string(nil), names...)
	sort.Strings(canon)

	h := sha256.New()
	for _, n := range canon {
		fmt.Fprintf(h, "%d:%s;", len(n), n)
	}
	return hex.EncodeToString(h.Sum(nil))
}
