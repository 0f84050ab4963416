package tnid

import "errors"

// Errors.
var (
	ErrInvalidLength    = errors.New("tnid: name must be 1 to 4 characters")
	ErrInvalidCharacter = errors.New("tnid: name must use lowercase letters a-z")
	ErrMalformedString  = errors.New("tnid: malformed TNID string")
	ErrMalformedUUID    = errors.New("tnid: malformed UUID string")
	ErrUnknownVariant   = errors.New("tnid: unknown variant")
	ErrWrongVariant     = errors.New("tnid: wrong variant")
	ErrInvalidKeyLength = errors.New("tnid: key must be exactly 16 bytes")
)
