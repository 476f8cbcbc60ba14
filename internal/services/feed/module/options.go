package module

import (
	"mingle/internal/core/scoring"
	"mingle/internal/platform/config"
	"mingle/internal/services/feed/service"
)

// Options holds configuration settings for the feed module
type Options struct {
	Service service.Config
}

// FromConfig reads the feed tunables under the FEED_ prefix
func FromConfig(cfg config.Conf) Options {
	f := cfg.Prefix("FEED_")
	return Options{
		Service: service.Config{
			DefaultCount:   f.MayInt("DEFAULT_COUNT", 20),
			MaxCount:       f.MayInt("MAX_COUNT", 50),
			PoolMultiplier: f.MayInt("POOL_MULTIPLIER", 3),
			WindowDays:     f.MayInt("WINDOW_DAYS", 30),
			BaselineMode:   scoring.BaselineMode(f.MayString("BASELINE_MODE", string(scoring.BaselineMedian))),
			BaselineFixed:  f.MayFloat("BASELINE_FIXED", 0),
			Jitter:         f.MayFloat("JITTER", 0.05),
		},
	}
}
