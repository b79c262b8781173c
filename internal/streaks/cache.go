package streaks

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	statusCacheSize       = 1024 * 1024 // 1MB
	statusCacheExpireSecs = 60
)

// StatusCache keeps per owner today-status snapshots for a short while,
// so repeated dashboard polls do not hammer the events table.
type StatusCache struct {
	cache *freecache.Cache
}

func NewStatusCache() *StatusCache {
	return &StatusCache{
		cache: freecache.NewCache(statusCacheSize),
	}
}

func statusCacheKey(ownerID string, now time.Time) []byte {
	return []byte(fmt.Sprintf("today-status::%s::%s", ownerID, now.Format("2006-01-02")))
}

func (c *StatusCache) Get(ownerID string, now time.Time) (*TodayStatus, bool) {
	cached, err := c.cache.Get(statusCacheKey(ownerID, now))
	if err != nil {
		// freecache returns an error for a plain miss too
		return nil, false
	}
	var status TodayStatus
	if err := json.Unmarshal(cached, &status); err != nil {
		log.Errorf("status cache: unmarshal cached status: %s", err)
		return nil, false
	}
	return &status, true
}

func (c *StatusCache) Set(ownerID string, now time.Time, status *TodayStatus) {
	statusBytes, err := json.Marshal(status)
	if err != nil {
		log.Errorf("status cache: marshal status: %s", err)
		return
	}
	if err := c.cache.Set(statusCacheKey(ownerID, now), statusBytes, statusCacheExpireSecs); err != nil {
		log.Errorf("status cache: set: %s", err)
	}
}

func (c *StatusCache) Invalidate(ownerID string, now time.Time) {
	c.cache.Del(statusCacheKey(ownerID, now))
}
