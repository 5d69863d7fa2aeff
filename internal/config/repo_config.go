// Package config provides repository configuration management,
// reading and writing the per-repository hubsync configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const configFileName = ".hubsync_config"

// RepoConfig represents the repository configuration
type RepoConfig struct {
	// DefaultBranch overrides default-branch detection for this repository.
	DefaultBranch *string `json:"defaultBranch,omitempty"`
	// Protected lists branches that are never deleted, even when the
	// remote has deleted them.
	Protected []string `json:"protected,omitempty"`
}

// GetRepoConfig reads the repository configuration
func GetRepoConfig(repoRoot string) (*RepoConfig, error) {
	configPath := filepath.Join(repoRoot, ".git", configFileName)

	data, err := os.ReadFile(configPath)
	if err != nil {
		// Config doesn't exist - return default
		return &RepoConfig{}, nil
	}

	var config RepoConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}

	return &config, nil
}

// DefaultBranchName returns the configured default branch, or "" when the
// repository relies on detection.
func (c *RepoConfig) DefaultBranchName() string {
	if c.DefaultBranch != nil {
		return *c.DefaultBranch
	}
	return ""
}

// IsProtected checks if a branch is configured as protected
func (c *RepoConfig) IsProtected(branchName string) bool {
	return contains(c.Protected, branchName)
}

// Protect adds a branch to the protected list
func Protect(repoRoot string, branchName string) error {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		config = &RepoConfig{}
	}

	if contains(config.Protected, branchName) {
		return fmt.Errorf("'%s' is already protected", branchName)
	}
	config.Protected = append(config.Protected, branchName)

	return writeRepoConfig(repoRoot, config)
}

// Unprotect removes a branch from the protected list
func Unprotect(repoRoot string, branchName string) error {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return err
	}

	if !contains(config.Protected, branchName) {
		return fmt.Errorf("'%s' is not protected", branchName)
	}

	var kept []string
	for _, name := range config.Protected {
		if name != branchName {
			kept = append(kept, name)
		}
	}
	config.Protected = kept

	return writeRepoConfig(repoRoot, config)
}

func writeRepoConfig(repoRoot string, config *RepoConfig) error {
	configPath := filepath.Join(repoRoot, ".git", configFileName)

	configJSON, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, configJSON, 0600)
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
