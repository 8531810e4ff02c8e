package util

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cch137/gokv/lib/logging"
)

const (
	// Wrap is the number of characters to Wrap the help text at.
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters.
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// InitConfig loads .env/.env.local and wires viper to read GOKV_-prefixed
// environment variables, dashes mapped to underscores so flag names like
// "db-path" bind to GOKV_DB_PATH.
func InitConfig() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	viper.SetEnvPrefix("gokv")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// BindCommandFlags binds a command's flags to viper, so env vars and
// command-line flags both resolve through the same GetX calls.
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}

// HashSeed returns the configured hash seed, or 0 to request a random one.
func HashSeed() uint32 {
	return uint32(viper.GetInt64("hash-seed"))
}

// DBPath returns the configured snapshot file path.
func DBPath() string {
	return viper.GetString("db-path")
}

// LogLevel parses the configured log level, falling back to Info on an
// unrecognized value so a CLI invocation never refuses to run over a
// logging typo.
func LogLevel() logging.Level {
	level, err := logging.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		return logging.LevelInfo
	}
	return level
}
