package bootstrap

import (
	"fmt"
	"sync"
	"time"

	"github.com/tbeaudouin05/stripe-mirror/api/app"
	"github.com/tbeaudouin05/stripe-mirror/api/config"
	"github.com/tbeaudouin05/stripe-mirror/api/gateway"
	"github.com/tbeaudouin05/stripe-mirror/api/gateway/sim"
	"github.com/tbeaudouin05/stripe-mirror/api/gateway/stripegw"
	"github.com/tbeaudouin05/stripe-mirror/api/store"
)

var gatewayService app.Service
var initOnce sync.Once
var initErr error

// Init loads config and wires backend -> store -> service.
func Init() error {
	// If a service has already been injected (e.g., tests), do not override it.
	if gatewayService != nil {
		return nil
	}
	var err error
	if config.AppConfig == nil {
		config.AppConfig, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	cfg := config.AppConfig

	var backend gateway.Backend
	switch cfg.Backend {
	case config.BackendLive:
		stripegw.SetKey(cfg.StripeSecretKey)
		stripegw.Configure(time.Duration(cfg.TimeoutSeconds)*time.Second, cfg.MaxNetworkRetries)
		backend = stripegw.New()
	default:
		backend = sim.New()
	}

	st := store.New()
	st.SetAPIVersion(cfg.APIVersion)
	st.SetLivemode(cfg.Livemode())

	gatewayService = app.NewService(backend, st)
	return nil
}

func GetService() app.Service { return gatewayService }

// SetService allows tests to inject a stub implementation.
func SetService(s app.Service) { gatewayService = s }

// Ensure runs Init() once per process and returns any initialization error.
func Ensure() error {
	initOnce.Do(func() {
		initErr = Init()
	})
	return initErr
}
