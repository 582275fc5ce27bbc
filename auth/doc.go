// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides authentication and token generation utilities.

# Admin Keys

Admin keys use HMAC-SHA256 to create deterministic, verifiable keys:

	adminKey := auth.GenerateAdminKey(serviceID, salt)
	err := auth.ValidateAdminKey(serviceID, adminKey, salt)

The key is URL-safe base64 encoded without padding. Since it's deterministic,
the same service ID and salt always produce the same key. This allows
validation without storing the key in the database. The admin key gates the
dataset reload endpoint.

# Visitor Tokens

Visitor tokens are opaque UUIDs:

	token := auth.GenerateVisitorToken()

A visitor claims a token once, persists it client-side, and replays it
across sessions; together with the dataset version it enforces the
one-submission-per-dataset guard.

# ID Generation

Random hex IDs for database records:

	id, err := auth.GenerateID(16)  // 32 hex characters

# IP Hashing

For privacy-preserving deduplication:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
