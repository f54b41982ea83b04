package bulc

import (
	"sync"

	"github.com/effective-security/xlog"
	"github.com/lydakis/bulcmcp/internal/config"
)

var (
	defaultOnce   sync.Once
	defaultClient *Client
)

// Default returns the process-wide client. Its configuration is resolved
// on first use and never changes afterwards, even if the environment does.
func Default() *Client {
	defaultOnce.Do(func() {
		cfg, err := config.LoadClientConfig()
		if err != nil {
			logger.KV(xlog.ERROR,
				"reason", "config",
				"path", config.ExampleConfigPath(),
				"err", err.Error())
		}
		defaultClient = New(cfg)
		logger.KV(xlog.DEBUG, "addr", defaultClient.Addr())
	})
	return defaultClient
}
