package ids

import (
	"fmt"
	"math/rand"
	"time"
)

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

const suffixLength = 6

// orderIDBase keeps customer-facing order numbers looking established.
const orderIDBase = 1001

// New returns a prefixed id built from the current unix-millisecond clock and
// a short random suffix. Good enough for demo-scale uniqueness, not
// cryptographic; there is no concurrent multi-writer here.
func New(prefix string) string {
	suffix := make([]byte, suffixLength)
	for i := range suffix {
		suffix[i] = suffixAlphabet[rand.Intn(len(suffixAlphabet))]
	}
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), suffix)
}

// OrderID derives the next sequential-looking order id from the current
// order count.
func OrderID(existingOrders int) string {
	return fmt.Sprintf("ORD-%d", orderIDBase+existingOrders)
}
