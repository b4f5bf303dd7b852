package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// GenerateOrderID produces a human-readable order reference of the
// form T<yymmdd><6 random digits>. Uniqueness is enforced by the
// database; callers retry on conflict.
func GenerateOrderID() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	suffix := int64(0)
	if err == nil {
		suffix = n.Int64()
	}
	return fmt.Sprintf("T%s%06d", time.Now().Format("060102"), suffix)
}
