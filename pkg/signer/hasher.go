package signer

import "golang.org/x/crypto/bcrypt"

// Hasher provides one-way adaptive hashing for stored credentials.
type Hasher struct {
	cost int
}

// HasherOption configures a Hasher.
type HasherOption func(*Hasher)

// WithCost sets the bcrypt cost parameter.
func WithCost(cost int) HasherOption {
	return func(h *Hasher) {
		h.cost = cost
	}
}

// NewHasher creates a Hasher with bcrypt.DefaultCost unless overridden.
func NewHasher(opts ...HasherOption) *Hasher {
	h := &Hasher{cost: bcrypt.DefaultCost}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Hash returns the bcrypt hash of the given plaintext.
func (h *Hasher) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plain matches the stored hash. The comparison is
// constant-time (guaranteed by bcrypt). A malformed hash yields false, never
// an error or panic.
func (h *Hasher) Verify(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
