package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	FormatLegacy = "legacy"
	FormatWide   = "wide"
	FormatXLSX   = "xlsx"
)

type Config struct {
	CatalogueURL string
	CSVMember    string
	OutputPath   string
	OutputFormat string

	HTTPTimeoutMs int
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		CatalogueURL: getEnv("CATALOGUE_URL", "https://www.data.gouv.fr/fr/datasets/donnees-ouvertes-du-catalogue-e-phy-des-produits-phytopharmaceutiques-matieres-fertilisantes-et-supports-de-culture-adjuvants-produits-mixtes-et-melanges/"),
		CSVMember:    getEnv("CSV_MEMBER", "usages_des_produits_autorises_utf8.csv"),
		OutputPath:   getEnv("OUTPUT_PATH", "intrants_final.csv"),
		OutputFormat: getEnv("OUTPUT_FORMAT", FormatLegacy),

		HTTPTimeoutMs: getEnvInt("HTTP_TIMEOUT_MS", 60000),
	}

	switch cfg.OutputFormat {
	case FormatLegacy, FormatWide, FormatXLSX:
	default:
		return Config{}, fmt.Errorf("unsupported OUTPUT_FORMAT: %s", cfg.OutputFormat)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
