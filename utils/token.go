package utils

import (
	"fmt"
	"math/rand"
	"strings"
)

// GenerateEmployeeID builds a short readable staff id from the user's name
// plus a random numeric suffix, e.g. "anita48213".
func GenerateEmployeeID(name string) string {
	base := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	if len(base) > 8 {
		base = base[:8]
	}
	return fmt.Sprintf("%s%05d", base, rand.Intn(100000))
}
