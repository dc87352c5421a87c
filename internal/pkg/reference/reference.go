// Package reference generates human-facing payment reference codes and
// validates matriculation numbers.
package reference

import (
	"fmt"
	"math/rand"
	"regexp"
	"time"
)

// Prefix is the institutional transaction prefix
const Prefix = "BU-TXN"

// refPattern matches BU-TXN-<4-digit year>-<6-digit number>
var refPattern = regexp.MustCompile(`^BU-TXN-\d{4}-\d{6}$`)

// matricPattern matches BU/<2 digits>/<5 digits>
var matricPattern = regexp.MustCompile(`^BU/\d{2}/\d{5}$`)

// Generate builds a reference code of the form BU-TXN-<year>-<random>.
// The random component is a 6-digit number in [100000, 999999]. No collision
// check is performed; the space is large enough for the ledger's scale.
func Generate(rng *rand.Rand, now time.Time) string {
	n := rng.Intn(900000) + 100000
	return fmt.Sprintf("%s-%d-%06d", Prefix, now.Year(), n)
}

// IsValid reports whether s is a well-formed reference code
func IsValid(s string) bool {
	return refPattern.MatchString(s)
}

// IsValidMatric reports whether s is a well-formed matriculation number
func IsValidMatric(s string) bool {
	return matricPattern.MatchString(s)
}
