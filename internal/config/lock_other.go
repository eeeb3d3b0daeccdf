//go:build !unix

package config

import "os"

// lockFile is a no-op where advisory locks are not available
func lockFile(file *os.File) error {
	return nil
}

// unlockFile is a no-op where advisory locks are not available
func unlockFile(file *os.File) error {
	return nil
}
