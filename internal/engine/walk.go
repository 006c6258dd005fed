package engine

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/accrava/codesweep/internal/ignore"
	"github.com/accrava/codesweep/internal/logging"
)

var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"__pycache__":  true,
}

func walk(cfg Config, ign ignore.Matcher, handle func(path string, data []byte)) {
	_ = filepath.WalkDir(cfg.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if p != cfg.Root && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		rel, _ := filepath.Rel(cfg.Root, p)
		if ign.Match(filepath.ToSlash(rel)) {
			return nil
		}
		info, _ := d.Info()
		if info != nil && info.Size() > cfg.MaxBytes {
			logging.Logger.Debugw("skipping oversized file", "file", p, "bytes", info.Size())
			return nil
		}
		b, err := os.ReadFile(p)
		if err != nil {
			logging.Logger.Debugw("skipping unreadable file", "file", p, "err", err)
			return nil
		}
		if looksBinary(b) {
			return nil
		}
		handle(p, b)
		return nil
	})
}

// crude binary skip
func looksBinary(b []byte) bool {
	const sniff = 800
	n := sniff
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if b[i] == 0 {
			return true
		}
	}
	return false
}
