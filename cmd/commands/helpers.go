package commands

import (
	"github.com/muxcfg/muxcfg/pkg/config"
	"github.com/muxcfg/muxcfg/pkg/store"
)

// openStore loads the effective settings and returns the filesystem store
// every one-shot command operates on.
func openStore() (store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return store.NewFS(cfg.SnapshotsDir, cfg.LiveConfig, cfg.TmuxBin), nil
}
