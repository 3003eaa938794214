package auth

import "errors"

// ErrInvalidToken is returned for every verification failure: malformed,
// expired, wrong issuer or audience, wrong token use, bad signature, or a
// failure fetching the signing keys.
var ErrInvalidToken = errors.New("invalid token")
