package credentials

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	apiKeyField = "api_key"
	// envAPIKey is also accepted in .env files
	envAPIKey = "OPENAI_API_KEY"
)

var errMissingKey = errors.New("api_key is missing or empty")

// parseSecrets extracts the api_key field. The format follows the file
// extension: .json, .yaml/.yml or .env. Anything else is tried as JSON, then YAML.
func parseSecrets(path string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return parseJSON(data)
	case ".yaml", ".yml":
		return parseYAML(data)
	case ".env":
		return parseDotenv(data)
	}

	key, err := parseJSON(data)
	if err == nil {
		return key, nil
	}
	if key, yamlErr := parseYAML(data); yamlErr == nil {
		return key, nil
	}
	return "", err
}

func parseJSON(data []byte) (string, error) {
	var s struct {
		APIKey string `json:"api_key"`
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return "", err
	}
	return checkKey(s.APIKey)
}

func parseYAML(data []byte) (string, error) {
	var s struct {
		APIKey string `yaml:"api_key"`
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return "", err
	}
	return checkKey(s.APIKey)
}

func parseDotenv(data []byte) (string, error) {
	env, err := godotenv.Unmarshal(string(data))
	if err != nil {
		return "", err
	}
	if key := env[apiKeyField]; key != "" {
		return checkKey(key)
	}
	return checkKey(env[envAPIKey])
}

func checkKey(key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", errMissingKey
	}
	return key, nil
}
