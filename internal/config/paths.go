package config

import (
	"os"
	"path/filepath"
)

// GetConfigPath returns $GITTREE_CONFIG or the default config file location
func GetConfigPath() string {
	if path := os.Getenv("GITTREE_CONFIG"); path != "" {
		return ExpandPath(path)
	}
	return filepath.Join(GetConfigDir(), "config.yml")
}

// GetConfigDir returns $XDG_CONFIG_HOME/gittree or ~/.config/gittree
func GetConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gittree")
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "gittree")
	}
	return filepath.Join(homeDir, ".config", "gittree")
}

// GetCacheDBPath returns the commit details cache database path
func GetCacheDBPath() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "gittree", "details.db")
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".cache", "gittree", "details.db")
	}
	return filepath.Join(homeDir, ".cache", "gittree", "details.db")
}

// GetSSHDir returns the directory holding the SSH server host key
func GetSSHDir() string {
	return filepath.Join(GetConfigDir(), "ssh")
}

// ExpandPath expands a leading ~ to the home directory
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if len(path) == 1 {
		return homeDir
	}
	return filepath.Join(homeDir, path[1:])
}
