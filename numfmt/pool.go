// numfmt/pool.go
package numfmt

import (
	"sync"
	"time"

	"github.com/cybanjar/intl-formatter/cache"
)

// pool caches constructed Formatters process-wide. Construction probes the
// native primitive several times, so hot paths that format for many locales
// should go through Get rather than New.
var (
	poolOnce sync.Once
	pool     *cache.Memory[*Formatter]
)

func formatterPool() *cache.Memory[*Formatter] {
	poolOnce.Do(func() {
		pool = cache.NewMemoryWithConfig[*Formatter](cache.Config{
			TTL:             30 * time.Minute,
			CleanupInterval: 5 * time.Minute,
		})
	})
	return pool
}

// Get returns a shared Formatter for the locale and options, building and
// caching it on first use. The returned Formatter must be treated as
// read-only; use FormatWith for per-call variation.
func Get(loc string, opts Options) (*Formatter, error) {
	merged := Merge(DefaultOptions(), opts)
	return formatterPool().GetOrCompute(loc+"|"+merged.key(), func() (*Formatter, error) {
		return New(loc, opts)
	})
}

// PoolLen reports how many Formatters the shared pool currently holds.
func PoolLen() int {
	return formatterPool().Len()
}
