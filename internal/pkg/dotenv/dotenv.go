package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Load читает .env (если он есть) и применяет флаги командной строки поверх окружения.
func Load() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	var portFlag, registryFlag string
	flag.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	flag.StringVar(&registryFlag, "couriers", "", "Courier registry file (overrides COURIER_REGISTRY_PATH)")
	flag.Parse()

	overrides := map[string]string{
		"PORT":                  portFlag,
		"COURIER_REGISTRY_PATH": registryFlag,
	}
	for key, value := range overrides {
		if value == "" {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to set %s environment variable: %w", key, err)
		}
	}
	return nil
}
