/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jfmyers9/topfm/internal/chart"
	"github.com/jfmyers9/topfm/internal/config"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	artistsLogFile  string
	artistsLogLevel string
)

// artistsCmd represents the artists command
var artistsCmd = &cobra.Command{
	Use:   "artists",
	Short: "Print your most played artists as an announcement",
	Long: `Fetch your most played Last.fm artists for a period and print them
as a single shareable announcement.

The output looks like:

  ♫ My Top 5 played artists in the past week via #LastFM ♫:
   Alpha (120), Bravo (88), Charlie (61), Delta (40), & Echo (12).

Credentials and defaults come from the config file (see 'topfm configure')
and can be overridden per invocation with flags.`,
	RunE: runArtists,
}

func init() {
	rootCmd.AddCommand(artistsCmd)

	artistsCmd.Flags().String("api-key", "", "Last.fm API key (overrides config)")
	artistsCmd.Flags().String("username", "", "Last.fm username (overrides config)")
	artistsCmd.Flags().IntP("limit", "l", 0, "Number of artists to include (overrides config)")
	artistsCmd.Flags().StringP("period", "p", "", "Lookback period: overall, 7day, 1month, 3month, 6month, 12month (overrides config)")
	artistsCmd.Flags().IntP("width", "w", 0, "Pad or truncate output to a fixed display width (implies --oneline)")
	artistsCmd.Flags().Bool("oneline", false, "Collapse the announcement to a single line")
	artistsCmd.Flags().StringVar(&artistsLogFile, "log-file", "", "Log file path (default: stderr only)")
	artistsCmd.Flags().StringVar(&artistsLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

func runArtists(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Apply flag overrides
	if apiKey, _ := cmd.Flags().GetString("api-key"); apiKey != "" {
		cfg.LastFM.APIKey = apiKey
	}
	if username, _ := cmd.Flags().GetString("username"); username != "" {
		cfg.LastFM.Username = username
	}
	if cmd.Flags().Changed("limit") {
		cfg.Limit, _ = cmd.Flags().GetInt("limit")
	}
	if cmd.Flags().Changed("period") {
		cfg.Period, _ = cmd.Flags().GetString("period")
	}

	if cfg.LastFM.APIKey == "" || cfg.LastFM.Username == "" {
		return fmt.Errorf("Last.fm credentials not configured. Run 'topfm configure' first")
	}
	if cfg.Limit < 1 {
		return fmt.Errorf("limit must be at least 1, got %d", cfg.Limit)
	}

	logger := setupLogger(artistsLogFile, artistsLogLevel)

	logger.Debug().
		Str("username", cfg.LastFM.Username).
		Int("limit", cfg.Limit).
		Str("period", cfg.Period).
		Msg("Fetching top artists")

	chartCfg := chart.Config{
		APIKey:   cfg.LastFM.APIKey,
		Username: cfg.LastFM.Username,
		Limit:    cfg.Limit,
		Period:   cfg.Period,
	}

	client := chart.NewWithLogger(chartCfg.APIKey, sdkLogger{logger})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	doc, err := client.TopArtists(ctx, chartCfg)
	if err != nil {
		return err
	}

	out, err := chart.Summary(chartCfg, doc)
	if err != nil {
		return err
	}

	width, _ := cmd.Flags().GetInt("width")
	oneline, _ := cmd.Flags().GetBool("oneline")

	if width > 0 || oneline {
		fmt.Println(compactText(out, width))
		return nil
	}

	fmt.Printf("\n%s\n\n", out)
	return nil
}

// sdkLogger adapts zerolog to the lastfm.Logger interface.
type sdkLogger struct {
	logger zerolog.Logger
}

func (l sdkLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug().Msgf(format, args...)
}

// setupLogger creates a logger with the specified configuration
func setupLogger(logFile, logLevel string) zerolog.Logger {
	// Parse log level
	level := zerolog.InfoLevel
	switch logLevel {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	// The announcement goes to stdout, so all logging stays on stderr.
	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

	var output io.Writer = console
	if logFile != "" {
		output = io.MultiWriter(console, &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    100, // megabytes
			MaxBackups: 3,
			MaxAge:     30, // days
		})
	}

	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// compactText flattens the announcement onto one line for status bars.
// The header already ends in ":" and each entry carries its own leading
// space, so the newline is simply dropped.
func compactText(text string, width int) string {
	flat := strings.ReplaceAll(text, "\n", "")
	return padToWidth(flat, width)
}

// padToWidth pads or truncates text to a fixed display width.
// Width is measured in display columns, accounting for Unicode characters.
// If width <= 0, returns text unchanged.
// If text is longer than width, truncates with "..." suffix.
// If text is shorter than width, pads with spaces.
func padToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}

	currentWidth := runewidth.StringWidth(text)

	if currentWidth > width {
		ellipsis := "..."
		ellipsisWidth := runewidth.StringWidth(ellipsis)

		if width <= ellipsisWidth {
			return runewidth.Truncate(ellipsis, width, "")
		}

		result := runewidth.Truncate(text, width-ellipsisWidth, "") + ellipsis

		// Truncate can undershoot on wide runes, so pad back to exact width.
		if resultWidth := runewidth.StringWidth(result); resultWidth < width {
			return result + strings.Repeat(" ", width-resultWidth)
		}
		return result
	}

	if currentWidth < width {
		return text + strings.Repeat(" ", width-currentWidth)
	}

	return text
}
