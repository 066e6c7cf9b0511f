package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MeKo-Tech/langid/internal/language"
	"github.com/MeKo-Tech/langid/internal/textproc"
)

// Default models directory.
const DefaultModelsDir = "models"

// Environment variable for models directory override.
const EnvModelsDir = "LANGID_MODELS_DIR"

// GetModelsDir returns the models directory path.
// Priority: 1. Explicit modelsDir parameter, 2. Environment variable, 3. Default.
func GetModelsDir(modelsDir string) string {
	if modelsDir != "" {
		return modelsDir
	}
	if envDir := os.Getenv(EnvModelsDir); envDir != "" {
		return envDir
	}
	return DefaultModelsDir
}

// ProbabilityModelPath resolves the file holding the probability model for
// one (language, order), e.g. models/en/models/trigrams.json.br.
func ProbabilityModelPath(modelsDir string, lang language.Language, order int) string {
	file := fmt.Sprintf("%ss.json.br", textproc.NgramName(order))
	return filepath.Join(GetModelsDir(modelsDir), lang.IsoCode639_1(), "models", file)
}

// CountModelPath resolves the file holding a count model for one
// (language, order, kind), e.g. models/en/models/unique_trigrams.json.br.
func CountModelPath(modelsDir string, lang language.Language, order int, kind Kind) string {
	file := fmt.Sprintf("%s_%ss.json.br", kind, textproc.NgramName(order))
	return filepath.Join(GetModelsDir(modelsDir), lang.IsoCode639_1(), "models", file)
}

// ValidateModelExists checks that a model file exists at the given path.
func ValidateModelExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("model file not found: %s", path)
	}
	return nil
}
