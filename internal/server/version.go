package server

import (
	"io/fs"
	"path/filepath"
	"strconv"

	"github.com/renato0307/gitdash/internal/logging"
)

// AssetVersion returns a function computing the freshness token for /api/version.
// With an asset directory the token is the newest file mtime in milliseconds, so it
// changes whenever a rebuilt bundle lands; otherwise it is the fallback.
func AssetVersion(assetDir, fallback string) func() string {
	return func() string {
		if assetDir == "" {
			return fallback
		}

		var newest int64
		err := filepath.WalkDir(assetDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			info, err := d.Info()
			if err != nil {
				return nil
			}
			if ms := info.ModTime().UnixMilli(); ms > newest {
				newest = ms
			}
			return nil
		})
		if err != nil {
			logging.Logger.Warn("Failed to scan asset directory", "dir", assetDir, "error", err)
		}
		if newest == 0 {
			return fallback
		}
		return strconv.FormatInt(newest, 10)
	}
}
