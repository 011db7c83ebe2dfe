package cmd

import (
	"os"

	"fieldops/internal/core/domain/services"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTPPort      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSslMode     string
	TaxonomyPath  string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPassword  string
	SMTPFrom      string
}

// LoadTaxonomy reads the classification taxonomy from a YAML file.
func LoadTaxonomy(path string) (services.Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return services.Taxonomy{}, err
	}

	var taxonomy services.Taxonomy
	if err = yaml.Unmarshal(data, &taxonomy); err != nil {
		return services.Taxonomy{}, err
	}

	return taxonomy, nil
}
