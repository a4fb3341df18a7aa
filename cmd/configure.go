package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jfmyers9/topfm/internal/config"
	"github.com/spf13/cobra"
)

// configureCmd represents the configure command
var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Store Last.fm credentials and query defaults",
	Long: `Store the Last.fm API key, username, and query defaults in the
config file.

This command will prompt for:
1. Your Last.fm API key
2. The username whose charts should be queried
3. Default limit and period for the artists command

You can get an API key from: https://www.last.fm/api/account/create`,
	RunE: runConfigure,
}

func init() {
	rootCmd.AddCommand(configureCmd)
}

func runConfigure(cmd *cobra.Command, args []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println("topfm Configuration")
	fmt.Println("===================")
	fmt.Println()
	fmt.Println("You can get an API key from: https://www.last.fm/api/account/create")
	fmt.Println()

	// Check if we already have an API key
	if cfg.LastFM.APIKey != "" {
		fmt.Printf("Found existing API key: %s\n", cfg.LastFM.APIKey)
		fmt.Print("\nUse existing key? [Y/n]: ")

		response, err := reader.ReadString('\n')
		if err != nil {
			response = "y"
		}
		response = strings.TrimSpace(strings.ToLower(response))

		if response != "" && response != "y" && response != "yes" {
			cfg.LastFM.APIKey = ""
		}
	}

	if cfg.LastFM.APIKey == "" {
		fmt.Print("Enter your Last.fm API Key: ")
		apiKey, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read API key: %w", err)
		}
		cfg.LastFM.APIKey = strings.TrimSpace(apiKey)
	}

	if cfg.LastFM.APIKey == "" {
		return fmt.Errorf("API key is required")
	}

	// Prompt for username, keeping the current value on empty input
	prompt := "Enter your Last.fm username: "
	if cfg.LastFM.Username != "" {
		prompt = fmt.Sprintf("Enter your Last.fm username [%s]: ", cfg.LastFM.Username)
	}
	fmt.Print(prompt)
	username, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}
	if username = strings.TrimSpace(username); username != "" {
		cfg.LastFM.Username = username
	}

	if cfg.LastFM.Username == "" {
		return fmt.Errorf("username is required")
	}

	fmt.Printf("Default number of artists [%d]: ", cfg.Limit)
	limitInput, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read limit: %w", err)
	}
	if limitInput = strings.TrimSpace(limitInput); limitInput != "" {
		limit, err := strconv.Atoi(limitInput)
		if err != nil || limit < 1 {
			return fmt.Errorf("limit must be a positive number, got %q", limitInput)
		}
		cfg.Limit = limit
	}

	fmt.Printf("Default period (overall, 7day, 1month, 3month, 6month, 12month) [%s]: ", cfg.Period)
	periodInput, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read period: %w", err)
	}
	if periodInput = strings.TrimSpace(periodInput); periodInput != "" {
		cfg.Period = periodInput
	}

	// Save config
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("\n✓ Configuration saved to %s/config.yaml\n", config.GetConfigDir())
	fmt.Println("\nYou can now run 'topfm artists' to share your top artists.")

	return nil
}
