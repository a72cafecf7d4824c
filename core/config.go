package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type (
	ServerConfig struct {
		Host            string        `mapstructure:"host"`
		DebugHost       string        `mapstructure:"debugHost"`
		ReadTimeout     time.Duration `mapstructure:"readTimeout"`
		WriteTimeout    time.Duration `mapstructure:"writeTimeout"`
		ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout"`
		DisableReqLogs  bool          `mapstructure:"disableReqLogs"`
	}

	// TimetableConfig holds generation settings.
	// A Seed of 0 means the random source is seeded from the clock.
	TimetableConfig struct {
		Seed          int64 `mapstructure:"seed"`
		MaxTeachers   int   `mapstructure:"maxTeachers"`
		MaxSubjects   int   `mapstructure:"maxSubjects"`
		MaxNameLength int   `mapstructure:"maxNameLength"`
	}

	Config struct {
		Env          string          `mapstructure:"-"`
		Debug        bool            `mapstructure:"debug"`
		TestMode     bool            `mapstructure:"testMode"`
		AppName      string          `mapstructure:"appName"`
		Build        string          `mapstructure:"build"`
		RollbarToken string          `mapstructure:"rollbarToken"`
		Server       ServerConfig    `mapstructure:"server"`
		Timetable    TimetableConfig `mapstructure:"timetable"`
	}
)

// NewConfig loads the configuration for the current ENV (DEV by default).
// Values come from defaults, then config/.env.<env> (if present), then environment variables
// prefixed with the ENV name, e.g. PROD_SERVER_HOST.
func NewConfig() *Config {
	conf, err := loadConfig(os.Getenv("ENV"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return conf
}

func loadConfig(env string) (*Config, error) {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("appName", "Ratiba")
	v.SetDefault("build", "develop")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("server.host", ":3000")
	v.SetDefault("server.debugHost", ":4000")
	v.SetDefault("server.readTimeout", 5*time.Second)
	v.SetDefault("server.writeTimeout", 5*time.Second)
	v.SetDefault("server.shutdownTimeout", 5*time.Second)
	v.SetDefault("server.disableReqLogs", false)
	v.SetDefault("timetable.seed", int64(0))
	v.SetDefault("timetable.maxTeachers", 100)
	v.SetDefault("timetable.maxSubjects", 100)
	v.SetDefault("timetable.maxNameLength", 120)

	env = strings.ToUpper(CleanString(env)) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "loading %s", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "stat %s", dotEnvPath)
	}
	v.AutomaticEnv()

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, errors.Wrap(err, "unmarshalling config")
	}
	conf.Env = env
	return &conf, nil
}
