package utils

import (
	"fmt"
	"math/rand"
)

// GenerateOTPCode returns a 6-digit numeric sign-in code.
func GenerateOTPCode() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}
