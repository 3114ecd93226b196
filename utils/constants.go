// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis token-revocation keys.
const AuthCachePrefix = "auth:revoked:"

// AuthCacheTTL is the time-to-live for token-revocation entries.
const AuthCacheTTL = 24 * time.Hour
