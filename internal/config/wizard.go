package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .resourceboard.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to resourceboard! Let's configure your widget.")
	fmt.Println()

	cfg := DefaultConfig()

	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port prompt: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	perGroupPrompt := promptui.Prompt{
		Label:   fmt.Sprintf("Items per group on the grouped view (1-%d)", MaxPerGroup),
		Default: strconv.Itoa(cfg.PerGroup),
	}
	if s, err := perGroupPrompt.Run(); err == nil {
		if n, err := strconv.Atoi(s); err == nil {
			cfg.PerGroup = n
		}
	}

	perPagePrompt := promptui.Prompt{
		Label:   fmt.Sprintf("Items per page on a single category view (1-%d)", MaxPerPage),
		Default: strconv.Itoa(cfg.PerPage),
	}
	if s, err := perPagePrompt.Run(); err == nil {
		if n, err := strconv.Atoi(s); err == nil {
			cfg.PerPage = n
		}
	}

	placeholderPrompt := promptui.Prompt{
		Label:   "Custom video placeholder image URL (empty for built-in)",
		Default: "",
	}
	if s, err := placeholderPrompt.Run(); err == nil {
		cfg.VideoPlaceholder = s
	}

	archivePrompt := promptui.Prompt{
		Label:   "Listing page base URL",
		Default: cfg.ArchiveURL,
	}
	if s, err := archivePrompt.Run(); err == nil && s != "" {
		cfg.ArchiveURL = s
	}

	cfg.Clamp()
	if err := cfg.Save(".resourceboard.yml"); err != nil {
		return nil, err
	}

	fmt.Println()
	fmt.Println("Configuration saved to .resourceboard.yml")
	return cfg, nil
}
