package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if err := c.Progress.validate(); err != nil {
		return fmt.Errorf("progress: %w", err)
	}

	if c.LLM.Enabled() && c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be > 0 (got %d)", c.LLM.MaxTokens)
	}

	if c.Mail.BaseURL != "" && !strings.HasPrefix(c.Mail.BaseURL, "http") {
		return fmt.Errorf("mail.base_url must be an http(s) URL (got %q)", c.Mail.BaseURL)
	}

	return nil
}

func (p *ProgressConfig) validate() error {
	if p.DefaultWindowDays < 1 || p.DefaultWindowDays > 365 {
		return fmt.Errorf("default_window_days must be in [1, 365] (got %d)", p.DefaultWindowDays)
	}

	thresholds, err := ParseThresholds(p.MilestoneThresholdsRaw)
	if err != nil {
		return fmt.Errorf("milestone_thresholds: %w", err)
	}
	p.MilestoneThresholds = thresholds

	return nil
}

// ParseThresholds parses a comma-separated list of positive day counts
// (e.g. "3,7,14") into an ascending, duplicate-free slice. An empty string
// returns a nil slice.
func ParseThresholds(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	days := make([]int, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid day count %q: %w", p, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("day count must be positive (got %d)", n)
		}
		days = append(days, n)
	}

	slices.Sort(days)
	return slices.Compact(days), nil
}
