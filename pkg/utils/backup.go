package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// BackupFile copies src into the system temporary directory as
// "<name>.<unix-timestamp>.bak" and returns the backup path. Backups
// are not cleaned up automatically.
func BackupFile(src string) (string, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return "", err
	}

	dst := filepath.Join(os.TempDir(), fmt.Sprintf("%s.%d.bak", filepath.Base(src), time.Now().Unix()))
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return "", err
	}

	return dst, nil
}
