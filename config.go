package solarsystem

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// ConfigEnv is the environment variable holding the configuration directory.
	ConfigEnv = "SOLARSIM_CONFIG"
	// DefaultSolarDistance is the margin kept between the camera and a body surface.
	DefaultSolarDistance = 5.0
)

// Config is the configuration of an Engine and of its surroundings.
type Config struct {
	Start               time.Time
	SpeedScale          float64 // days per frame scale
	BurstStep           float64
	BurstMax            float64
	Scale               float64 // initial user scale
	FocusedMinimumScale float64
	FocusedScaling      bool
	AUScale             float64 // scene units per AU
	SolarDistance       float64
	DefaultZoomLimit    float64
	DefaultZoomSpeed    float64
	LogLevel            string
	OutputDir           string
	CatalogPath         string
	StreamAddr          string
	StreamRate          float64 // frames per second
	MetricsAddr         string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("general.start", "2000-01-01T12:00:00Z")
	v.SetDefault("general.output_path", "./output")
	v.SetDefault("time.speed", 1.0)
	v.SetDefault("time.burst_step", DefaultBurstStep)
	v.SetDefault("time.burst_max", DefaultBurstMax)
	v.SetDefault("scale.initial", 1.0)
	v.SetDefault("scale.focused_minimum", DefaultFocusedMinimumScale)
	v.SetDefault("scale.focused_scaling", false)
	v.SetDefault("scale.au", DefaultAUScale)
	v.SetDefault("scale.solar_distance", DefaultSolarDistance)
	v.SetDefault("camera.zoom_limit", 100.0)
	v.SetDefault("camera.zoom_speed", 1.0)
	v.SetDefault("log.level", "info")
	v.SetDefault("catalog.path", "")
	v.SetDefault("stream.address", "localhost:8080")
	v.SetDefault("stream.rate", 30.0)
	v.SetDefault("metrics.address", "")
}

func fromViper(v *viper.Viper) (Config, error) {
	start, err := time.Parse(time.RFC3339, v.GetString("general.start"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid general.start: %w", err)
	}
	conf := Config{
		Start:               start.UTC(),
		SpeedScale:          v.GetFloat64("time.speed"),
		BurstStep:           v.GetFloat64("time.burst_step"),
		BurstMax:            v.GetFloat64("time.burst_max"),
		Scale:               v.GetFloat64("scale.initial"),
		FocusedMinimumScale: v.GetFloat64("scale.focused_minimum"),
		FocusedScaling:      v.GetBool("scale.focused_scaling"),
		AUScale:             v.GetFloat64("scale.au"),
		SolarDistance:       v.GetFloat64("scale.solar_distance"),
		DefaultZoomLimit:    v.GetFloat64("camera.zoom_limit"),
		DefaultZoomSpeed:    v.GetFloat64("camera.zoom_speed"),
		LogLevel:            v.GetString("log.level"),
		OutputDir:           v.GetString("general.output_path"),
		CatalogPath:         v.GetString("catalog.path"),
		StreamAddr:          v.GetString("stream.address"),
		StreamRate:          v.GetFloat64("stream.rate"),
		MetricsAddr:         v.GetString("metrics.address"),
	}
	if conf.BurstStep <= 1 {
		return Config{}, errors.New("time.burst_step must be greater than 1")
	}
	if conf.BurstMax < 1 {
		return Config{}, errors.New("time.burst_max must be at least 1")
	}
	return conf, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("SOLARSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// DefaultConfig returns the configuration used when no configuration file is provided.
func DefaultConfig() Config {
	conf, err := fromViper(newViper())
	if err != nil {
		// The defaults are valid.
		panic(err)
	}
	return conf
}

// LoadConfig reads the `solarsim` configuration file (toml, yaml or json) from the provided directory.
func LoadConfig(dir string) (Config, error) {
	v := newViper()
	v.SetConfigName("solarsim")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("error reading config file in %s: %w", dir, err)
	}
	return fromViper(v)
}

// ConfigFromEnv loads the configuration from the directory in SOLARSIM_CONFIG, or returns
// the default configuration if that variable is empty.
func ConfigFromEnv() (Config, error) {
	dir := os.Getenv(ConfigEnv)
	if dir == "" {
		return DefaultConfig(), nil
	}
	return LoadConfig(dir)
}
