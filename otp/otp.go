package otp

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

// Validity is how long an issued code stays in the store. The emailed
// message promises the same window.
const Validity = 5 * time.Minute

// Generate returns a uniformly random 6-digit code in [100000, 999999].
func Generate() string {
	n := 100000 + rand.Intn(900000)
	return strconv.Itoa(n)
}

// Store keeps issued codes keyed by email. Entries expire after Validity;
// re-issuing for the same email overwrites the previous code.
type Store struct {
	c *cache.Cache
}

// NewStore creates a store with expiry and background cleanup.
func NewStore() *Store {
	return &Store{c: cache.New(Validity, 10*time.Minute)}
}

// Put records a code for an email, replacing any earlier one.
func (s *Store) Put(email, code string) {
	s.c.Set(email, code, cache.DefaultExpiration)
}

// Get returns the live code for an email, if any.
func (s *Store) Get(email string) (string, bool) {
	v, ok := s.c.Get(email)
	if !ok {
		return "", false
	}
	return v.(string), true
}
