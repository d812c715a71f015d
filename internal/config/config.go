package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Storage  StorageConfig
	Hospital HospitalConfig
	Invoice  InvoiceConfig
}

type AppConfig struct {
	Name     string
	Env      string
	LogLevel string
	Debug    bool
}

type StorageConfig struct {
	DataDir     string
	ArtifactDir string
	Seed        bool
}

type HospitalConfig struct {
	Name    string
	Address string
	Phone   string
}

type InvoiceConfig struct {
	// Renderer is the capability flag resolved once at startup: "pdf" for
	// the rich document backend, "image" for the raster fallback.
	Renderer string
	Currency string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "carebill")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("ARTIFACT_DIR", "./artifacts")
	viper.SetDefault("SEED_SAMPLE_DATA", true)
	viper.SetDefault("HOSPITAL_NAME", "Smart Hospital")
	viper.SetDefault("HOSPITAL_ADDRESS", "")
	viper.SetDefault("HOSPITAL_PHONE", "")
	viper.SetDefault("INVOICE_RENDERER", "pdf")
	viper.SetDefault("CURRENCY", "KSh ")

	return &Config{
		App: AppConfig{
			Name:     viper.GetString("APP_NAME"),
			Env:      viper.GetString("APP_ENV"),
			LogLevel: viper.GetString("LOG_LEVEL"),
			Debug:    viper.GetBool("APP_DEBUG"),
		},
		Storage: StorageConfig{
			DataDir:     viper.GetString("DATA_DIR"),
			ArtifactDir: viper.GetString("ARTIFACT_DIR"),
			Seed:        viper.GetBool("SEED_SAMPLE_DATA"),
		},
		Hospital: HospitalConfig{
			Name:    viper.GetString("HOSPITAL_NAME"),
			Address: viper.GetString("HOSPITAL_ADDRESS"),
			Phone:   viper.GetString("HOSPITAL_PHONE"),
		},
		Invoice: InvoiceConfig{
			Renderer: viper.GetString("INVOICE_RENDERER"),
			Currency: viper.GetString("CURRENCY"),
		},
	}
}
