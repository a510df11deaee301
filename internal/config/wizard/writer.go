package wizard

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ccmc-tools/kamodoctl/internal/config"
)

// WriteConfig writes the settings to a JSON file. All fields are written
// explicitly so the generated file doubles as documentation of the
// available options.
func WriteConfig(cfg *config.Config, outputPath string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(outputPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
