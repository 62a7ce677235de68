// File: utils/constants.go
package utils

import "time"

// SessionCachePrefix is the prefix used for Redis booking session keys.
const SessionCachePrefix = "session:"

// TelemetryCacheKey is the key holding the latest filtered position report.
const TelemetryCacheKey = "telemetry:position"

// TelemetryCacheTTL bounds how stale a cached position report may be.
const TelemetryCacheTTL = 15 * time.Second

// OutageCacheKey is the key holding the latest outage status snapshot.
const OutageCacheKey = "outage:status"

// OutageCacheTTL bounds how stale a cached outage snapshot may be. The
// refresh worker repolls well inside this window.
const OutageCacheTTL = 45 * time.Minute
