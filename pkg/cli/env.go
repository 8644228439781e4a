package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// EnvContextName is the name given to contexts built from the environment.
const EnvContextName = "env"

// ContextFromEnv builds a context from environment variables.
//
// The dotenv files are loaded first (".env" when none are given); missing
// files are skipped and variables already set in the process win.
// baseURLVar may be empty.
func ContextFromEnv(apiKeyVar, baseURLVar string, files ...string) (*Context, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	apiKey := strings.TrimSpace(os.Getenv(apiKeyVar))
	if apiKey == "" {
		return nil, fmt.Errorf("%s is not set", apiKeyVar)
	}

	ctx := &Context{
		Name:   EnvContextName,
		APIKey: apiKey,
	}
	if baseURLVar != "" {
		ctx.BaseURL = strings.TrimSpace(os.Getenv(baseURLVar))
	}
	return ctx, nil
}
