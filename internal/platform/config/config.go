package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Regulatory parameters. Defaults follow the current regulation; each is
	// overridable by environment so a rule change does not need a release.
	DomesticWaitingDays     int     // calendar days before a futility certificate may be requested
	PermitValidityDays      int     // default permit validity window from issue date
	AdditionalQuotaRate     float64 // additional-quota allocation rate
	TotalRateCeiling        float64 // statutory ceiling on base+extra+additional
	LaborAvgWindowMonths    int     // months averaged for the labor count
	ExcludeExpiredFromTotal bool    // drop expired permits from the cached employer total
}

// LoadConfig reads configuration from environment variables.
// It prioritizes environment variables over .env file values.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file (useful for local development)
	// Errors are ignored as .env might not exist in production
	_ = godotenv.Load()

	viper.AutomaticEnv() // Read environment variables

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", true)
	viper.SetDefault("DOMESTIC_WAITING_DAYS", 14)
	viper.SetDefault("PERMIT_VALIDITY_DAYS", 90)
	viper.SetDefault("ADDITIONAL_QUOTA_RATE", 0.20)
	viper.SetDefault("TOTAL_RATE_CEILING", 0.30)
	viper.SetDefault("LABOR_AVG_WINDOW_MONTHS", 3)
	viper.SetDefault("EXCLUDE_EXPIRED_FROM_TOTAL", true)

	cfg := &Config{
		DatabaseURL:             viper.GetString("PGSQL_URL"),
		Port:                    viper.GetString("PORT"),
		IsProduction:            viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:           viper.GetBool("ENABLE_DB_CHECK"),
		DomesticWaitingDays:     viper.GetInt("DOMESTIC_WAITING_DAYS"),
		PermitValidityDays:      viper.GetInt("PERMIT_VALIDITY_DAYS"),
		AdditionalQuotaRate:     viper.GetFloat64("ADDITIONAL_QUOTA_RATE"),
		TotalRateCeiling:        viper.GetFloat64("TOTAL_RATE_CEILING"),
		LaborAvgWindowMonths:    viper.GetInt("LABOR_AVG_WINDOW_MONTHS"),
		ExcludeExpiredFromTotal: viper.GetBool("EXCLUDE_EXPIRED_FROM_TOTAL"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if cfg.DomesticWaitingDays < 0 {
		log.Printf("Warning: DOMESTIC_WAITING_DAYS is negative (%d). Defaulting to 14.\n", cfg.DomesticWaitingDays)
		cfg.DomesticWaitingDays = 14
	}
	if cfg.PermitValidityDays <= 0 {
		log.Printf("Warning: PERMIT_VALIDITY_DAYS is not positive (%d). Defaulting to 90.\n", cfg.PermitValidityDays)
		cfg.PermitValidityDays = 90
	}
	if cfg.LaborAvgWindowMonths <= 0 {
		log.Printf("Warning: LABOR_AVG_WINDOW_MONTHS is not positive (%d). Defaulting to 3.\n", cfg.LaborAvgWindowMonths)
		cfg.LaborAvgWindowMonths = 3
	}

	return cfg, nil
}
