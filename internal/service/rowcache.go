// File: internal/service/rowcache.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"excelviz/internal/cache"
)

// rowCacheTTL bounds staleness for cached parses. Stored bytes never
// change in place, so the TTL only limits memory held for idle files.
const rowCacheTTL = 10 * time.Minute

// RowCache keeps parsed row records keyed by file id so repeated reads
// skip the re-parse. Every cache failure degrades to a miss; a read
// must never fail because redis did.
type RowCache struct {
	cache cache.Cache
}

func NewRowCache(c cache.Cache) *RowCache {
	return &RowCache{cache: c}
}

func rowCacheKey(fileID int) string {
	return fmt.Sprintf("file:rows:%d", fileID)
}

func (rc *RowCache) Get(ctx context.Context, fileID int) ([]Row, bool) {
	payload, err := rc.cache.Get(ctx, rowCacheKey(fileID)).Result()
	if err != nil {
		return nil, false
	}
	var rows []Row
	if err := json.Unmarshal([]byte(payload), &rows); err != nil {
		return nil, false
	}
	return rows, true
}

func (rc *RowCache) Set(ctx context.Context, fileID int, rows []Row) {
	payload, err := json.Marshal(rows)
	if err != nil {
		return
	}
	rc.cache.Set(ctx, rowCacheKey(fileID), payload, rowCacheTTL)
}

// Invalidate drops the cached rows for a file. Called on file delete.
func (rc *RowCache) Invalidate(ctx context.Context, fileID int) {
	rc.cache.Del(ctx, rowCacheKey(fileID))
}
