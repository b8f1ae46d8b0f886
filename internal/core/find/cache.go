package find

import (
	"time"

	"github.com/dlclark/regexp2"
	gocache "github.com/patrickmn/go-cache"

	"github.com/bethropolis/tidehx/internal/logger"
)

const (
	defaultExpiration = 10 * time.Minute
	cleanupInterval   = 30 * time.Minute
)

type compiled struct {
	re  *regexp2.Regexp
	err error
}

// PatternCache remembers compiled patterns, failures included, so that
// retyping a prefix during incremental search does not recompile it.
type PatternCache struct {
	cache *gocache.Cache
}

// NewPatternCache creates an empty cache.
func NewPatternCache() *PatternCache {
	return &PatternCache{cache: gocache.New(defaultExpiration, cleanupInterval)}
}

// Compile returns the compiled form of pattern. Matching is case sensitive
// and ^/$ anchor at line boundaries.
func (c *PatternCache) Compile(pattern string, timeout time.Duration) (*regexp2.Regexp, error) {
	if v, found := c.cache.Get(pattern); found {
		if entry, ok := v.(compiled); ok {
			logger.DebugTagf("search", "Search: pattern cache hit for '%s'", pattern)
			return withTimeout(entry.re, timeout), entry.err
		}
	}
	re, err := regexp2.Compile(pattern, regexp2.Multiline)
	c.cache.SetDefault(pattern, compiled{re: re, err: err})
	return withTimeout(re, timeout), err
}

func withTimeout(re *regexp2.Regexp, timeout time.Duration) *regexp2.Regexp {
	if re != nil && timeout > 0 {
		re.MatchTimeout = timeout
	}
	return re
}
