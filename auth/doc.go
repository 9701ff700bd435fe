// Copyright (c) 2025 Marco Profi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and session token utilities.

# Password Hashing

Passwords are hashed with scrypt (N=16384, r=8, p=1) into a 64-byte key,
hex encoded for storage alongside a per-user random salt:

	salt, err := auth.GenerateSalt()
	hash, err := auth.HashPassword(password, salt)

Verification is constant time:

	ok, err := auth.VerifyPassword(password, salt, storedHash)

A wrong password is (false, nil); errors are reserved for corrupt hashes
and derivation failures.

# Session Tokens

Sessions use HMAC-SHA256 signed tokens carrying the user ID:

	token := auth.GenerateSessionToken(userID, salt)
	userID, err := auth.ParseSessionToken(token, salt)

The token format is "userID.signature" with a URL-safe base64 signature.
Since the signature is deterministic from (userID, salt), no session table
is needed: any token that verifies was issued by this server.

The token travels in the SessionCookie http-only cookie.

# ID Generation

Random UUIDs for database records:

	id := auth.NewID()
*/
package auth
