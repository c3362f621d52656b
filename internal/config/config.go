package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env            string        `mapstructure:"ENV"`
	Port           string        `mapstructure:"PORT"`
	DatabaseURL    string        `mapstructure:"DATABASE_URL"`
	RecoveryAPIURL string        `mapstructure:"RECOVERY_API_URL"`
	AdminKey       string        `mapstructure:"ADMIN_KEY"`
	CORSAllowed    string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	RequestTimeout time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	LogLevel       string        `mapstructure:"LOG_LEVEL"`
	RosterFile     string        `mapstructure:"ROSTER_FILE"`

	Policy Policy `mapstructure:",squash"`
}

// Policy carries the engine's operational thresholds. The defaults come
// from current ops guidance and are deliberately overridable: they are
// tuning knobs, not regulation.
type Policy struct {
	DutyHourLimit      float64 `mapstructure:"POLICY_DUTY_HOUR_LIMIT"`
	FuelFloorPercent   int     `mapstructure:"POLICY_FUEL_FLOOR_PERCENT"`
	ReferenceDelayMin  float64 `mapstructure:"POLICY_REFERENCE_DELAY_MINUTES"`
	LowFuelCost        float64 `mapstructure:"POLICY_LOW_FUEL_COST"`
	FerryCost          float64 `mapstructure:"POLICY_FERRY_COST"`
	CrewCalloutCost    float64 `mapstructure:"POLICY_CREW_CALLOUT_COST"`
	PersonnelRate      float64 `mapstructure:"POLICY_PERSONNEL_RATE"`
	BaselinePersonnel  int     `mapstructure:"POLICY_BASELINE_PERSONNEL"`
	DefaultBaseCost    float64 `mapstructure:"POLICY_DEFAULT_BASE_COST"`
	DefaultBaseMinutes float64 `mapstructure:"POLICY_DEFAULT_BASE_MINUTES"`
}

func Load() (Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	_ = v.ReadInConfig()

	v.SetDefault("ENV", "dev")
	v.SetDefault("PORT", "8080")
	v.SetDefault("REQUEST_TIMEOUT", "30s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.SetDefault("POLICY_DUTY_HOUR_LIMIT", 10.0)
	v.SetDefault("POLICY_FUEL_FLOOR_PERCENT", 70)
	v.SetDefault("POLICY_REFERENCE_DELAY_MINUTES", 240.0)
	v.SetDefault("POLICY_LOW_FUEL_COST", 1200.0)
	v.SetDefault("POLICY_FERRY_COST", 3500.0)
	v.SetDefault("POLICY_CREW_CALLOUT_COST", 800.0)
	v.SetDefault("POLICY_PERSONNEL_RATE", 150.0)
	v.SetDefault("POLICY_BASELINE_PERSONNEL", 15)
	v.SetDefault("POLICY_DEFAULT_BASE_COST", 50000.0)
	v.SetDefault("POLICY_DEFAULT_BASE_MINUTES", 120.0)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultPolicy returns the policy used when no config is loaded,
// e.g. in tests and library callers.
func DefaultPolicy() Policy {
	return Policy{
		DutyHourLimit:      10,
		FuelFloorPercent:   70,
		ReferenceDelayMin:  240,
		LowFuelCost:        1200,
		FerryCost:          3500,
		CrewCalloutCost:    800,
		PersonnelRate:      150,
		BaselinePersonnel:  15,
		DefaultBaseCost:    50000,
		DefaultBaseMinutes: 120,
	}
}
