package utils // package utils provides helper functions for token creation and hashing

import (
    "errors" // sentinel error for failed verification
    "time"   // time utilities for generating expirations

    "github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// ErrInvalidToken is the single error returned for every verification
// failure: malformed input, wrong signature, unexpected algorithm or an
// expired token.  Callers cannot distinguish the cases, which keeps the
// verifier from acting as an oracle on the signing secret.
var ErrInvalidToken = errors.New("invalid token")

// AccessToken represents a signed JWT session token along with its expiry.
// The Token field contains the JWT string.  Exp stores the expiration
// timestamp as a time.Time.  Tokens are stateless: nothing is persisted
// server-side and validity is determined purely by signature and expiry.
type AccessToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
}

// NewAccessToken builds and signs an HS256 JWT for an artisan.  It takes the
// signing secret, the artisan ID and a TTL, and returns an AccessToken
// containing the signed token and its expiration time.  The JWT carries the
// standard claims: subject (sub), expiration (exp) and issued at (iat).
func NewAccessToken(secret string, artisanID uint64, ttl time.Duration) (AccessToken, error) {
    exp := time.Now().UTC().Add(ttl)
    claims := jwt.MapClaims{
        "sub": artisanID,
        "exp": exp.Unix(),
        "iat": time.Now().UTC().Unix(),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return AccessToken{}, err
    }
    return AccessToken{Token: signed, Exp: exp}, nil
}

// VerifyAccessToken parses and validates a session token and returns the
// artisan ID it was issued for.  The signing method must be HMAC and the
// embedded expiry must be in the future; any failure yields ErrInvalidToken.
func VerifyAccessToken(secret, raw string) (uint64, error) {
    tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrInvalidToken
        }
        return []byte(secret), nil
    })
    if err != nil || !tok.Valid {
        return 0, ErrInvalidToken
    }
    claims, ok := tok.Claims.(jwt.MapClaims)
    if !ok {
        return 0, ErrInvalidToken
    }
    // Numeric JSON claims decode as float64.
    sub, ok := claims["sub"].(float64)
    if !ok || sub < 0 {
        return 0, ErrInvalidToken
    }
    return uint64(sub), nil
}
