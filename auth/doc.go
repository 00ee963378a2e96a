// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password credential helpers.

Passwords are stored only as bcrypt hashes:

	hash, err := auth.HashPassword("secret")
	err = auth.CheckPassword(hash, "secret")

CheckPassword returns ErrInvalidCredentials on mismatch so callers can
distinguish a bad password from an internal failure.
*/
package auth
