package web

import (
	"time"

	"github.com/auroraair/formkit/pkg/httpserver"
	"github.com/auroraair/formkit/pkg/ratelimiter"
)

// Config is the environment configuration of the portal.
type Config struct {
	Env            string        `env:"APP_ENV" envDefault:"development"`
	AppName        string        `env:"APP_NAME" envDefault:"formkit"`
	DefaultLang    string        `env:"DEFAULT_LANG" envDefault:"en"`
	NotifyDisplay  time.Duration `env:"NOTIFY_DISPLAY" envDefault:"5s"`
	NotifyExit     time.Duration `env:"NOTIFY_EXIT" envDefault:"300ms"`
	UploadMaxBytes int64         `env:"UPLOAD_MAX_BYTES" envDefault:"16777216"`
	MetricsEnabled bool          `env:"METRICS_ENABLED" envDefault:"true"`
	// LogLevel and LogFormat override the APP_ENV logging preset when set.
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	// Live limits field validation and notification streams per client.
	// LIVE_RATE_BURST=0 disables the limit.
	Live ratelimiter.Config `envPrefix:"LIVE_"`

	HTTP httpserver.Config
}
