package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "STOREFRONT"

// Config is resolved once at startup from the environment (optionally
// seeded from a .env file) and not expected to change during the
// process lifetime.
type Config struct {
	LogLevel           slog.Level    `mapstructure:"log_level"`
	HTTPServerAddr     string        `mapstructure:"http_server_addr"`
	SiteName           string        `mapstructure:"site_name"`
	StoreDomain        string        `mapstructure:"store_domain"`
	AccessToken        string        `mapstructure:"access_token"`
	RevalidationSecret string        `mapstructure:"revalidation_secret"`
	HiddenProductTag   string        `mapstructure:"hidden_product_tag"`
	BackendTimeout     time.Duration `mapstructure:"backend_timeout"`
}

func Load() Config {
	loadDotEnv()

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	setDefaults()

	var cfg Config
	err := viper.Unmarshal(&cfg, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
	))
	if err != nil {
		die(err)
	}

	validate(cfg)

	return cfg
}

func loadDotEnv() {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("env-file", ".env", "env file")
	_ = cmdLine.Parse(os.Args[1:])

	// A missing .env file is fine, the environment wins anyway.
	_ = godotenv.Load(*arg)
}

func setDefaults() {
	viper.SetDefault("log_level", "INFO")
	viper.SetDefault("http_server_addr", ":8080")
	viper.SetDefault("site_name", "Storefront")
	viper.SetDefault("store_domain", "")
	viper.SetDefault("access_token", "")
	viper.SetDefault("revalidation_secret", "")
	viper.SetDefault("hidden_product_tag", "frontend-hidden")
	viper.SetDefault("backend_timeout", "10s")
}

func validate(cfg Config) {
	var missing []string
	if cfg.StoreDomain == "" {
		missing = append(missing, envPrefix+"_STORE_DOMAIN")
	}
	if cfg.AccessToken == "" {
		missing = append(missing, envPrefix+"_ACCESS_TOKEN")
	}
	if cfg.RevalidationSecret == "" {
		missing = append(missing, envPrefix+"_REVALIDATION_SECRET")
	}
	if len(missing) != 0 {
		die(fmt.Errorf("missing required: %s", strings.Join(missing, ", ")))
	}
}

func die(err error) {
	fmt.Printf("failed to load config: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q
	SiteName=%q

	Backend:
	StoreDomain=%q
	AccessToken=set:%t
	RevalidationSecret=set:%t
	HiddenProductTag=%q
	BackendTimeout=%v

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.SiteName,
		c.StoreDomain,
		c.AccessToken != "",
		c.RevalidationSecret != "",
		c.HiddenProductTag,
		c.BackendTimeout,
	)
}
