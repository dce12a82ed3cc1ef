package config

import "fmt"

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// HeroContentKey returns the cache key for the hero banner singleton.
func (r *CacheKeyStruct) HeroContentKey() string {
	return "hero:content"
}

// AssetCleanupQueue returns the Redis list holding public IDs of stored
// images whose deletion failed and needs to be retried out-of-band.
func (r *CacheKeyStruct) AssetCleanupQueue() string {
	return "asset_cleanup_queue"
}

// BeneficiaryCardKey returns the cache key for a rendered card image.
func (r *CacheKeyStruct) BeneficiaryCardKey(uniqueID, format string) string {
	return fmt.Sprintf("card:%s:%s", uniqueID, format)
}

var CacheKey = NewCacheKeyStruct()
