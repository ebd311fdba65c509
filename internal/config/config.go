// Package config reads the environment of the arbeitsnachweis tools.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the settings read from the environment. Drive upload and
// each translator stay disabled while their variables are unset.
type Config struct {
	TemplatePath string
	DBPath       string
	OutputDir    string

	DriveServiceAccountJSON string
	DriveFolderID           string

	AzureEndpoint string
	AzureKey      string
	AzureRegion   string

	LTEndpoint       string
	LTBackupEndpoint string
	LTVirtualHost    string
	LTTimeout        time.Duration
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getSeconds(k string, def float64) time.Duration {
	secs := def
	if v := getEnv(k, ""); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			secs = f
		}
	}
	return time.Duration(secs * float64(time.Second))
}

// Load reads the environment, applying defaults for unset variables.
func Load() *Config {
	return &Config{
		TemplatePath: getEnv("NACHWEIS_TEMPLATE", "GP-t.xlsx"),
		DBPath:       getEnv("NACHWEIS_DB", "data/app.db"),
		OutputDir:    getEnv("NACHWEIS_OUTPUT_DIR", "generated"),

		DriveServiceAccountJSON: getEnv("GDRIVE_SERVICE_ACCOUNT_JSON", ""),
		DriveFolderID:           getEnv("GDRIVE_FOLDER_ID", ""),

		AzureEndpoint: strings.TrimRight(getEnv("AZURE_TRANSLATOR_ENDPOINT", ""), "/"),
		AzureKey:      getEnv("AZURE_TRANSLATOR_KEY", ""),
		AzureRegion:   getEnv("AZURE_TRANSLATOR_REGION", ""),

		LTEndpoint:       getEnv("LT_ENDPOINT", ""),
		LTBackupEndpoint: getEnv("LT_BACKUP_ENDPOINT", ""),
		LTVirtualHost:    getEnv("LT_VIRTUAL_HOST", "libretranslate.com"),
		LTTimeout:        getSeconds("LT_TIMEOUT", 12),
	}
}

// DriveEnabled reports whether both the service account and the target
// folder are configured.
func (c *Config) DriveEnabled() bool {
	return c.DriveServiceAccountJSON != "" && c.DriveFolderID != ""
}

// AzureEnabled reports whether the Azure translator is fully configured.
func (c *Config) AzureEnabled() bool {
	return c.AzureEndpoint != "" && c.AzureKey != "" && c.AzureRegion != ""
}
