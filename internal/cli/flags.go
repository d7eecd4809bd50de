package cli

import (
	"github.com/alexanderramin/moodwheel/internal/config"
	"github.com/spf13/pflag"
)

// bindStoreFlags registers the flags that override where state is kept.
// Defaults come from cfg, so flags win over the environment.
func bindStoreFlags(fs *pflag.FlagSet, cfg *config.Config) {
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite database path (env MOODWHEEL_DB)")
	fs.StringVar(&cfg.WheelPath, "wheel", cfg.WheelPath, "YAML wheel definition; empty uses the built-in wheel (env MOODWHEEL_WHEEL)")
}

// limitFlag registers an --limit flag defaulting to def.
func limitFlag(fs *pflag.FlagSet, limit *int, def int) {
	fs.IntVarP(limit, "limit", "n", def, "Maximum number of rows to show")
}
