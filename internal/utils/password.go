package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a bcrypt hash of an artisan's password. The cost is
// caller-supplied (BCRYPT_COST, 10 in production) so tests can run at the
// minimum without a separate code path.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword reports whether plain matches the stored hash. The
// underlying comparison is constant-time, so a mismatch reveals nothing
// about where the guess diverged.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
