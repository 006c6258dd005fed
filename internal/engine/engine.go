package engine

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/accrava/codesweep/internal/ignore"
	"github.com/accrava/codesweep/internal/scanner"
	"github.com/accrava/codesweep/internal/types"
)

type Config struct {
	Root     string
	MaxBytes int64
}

// Scan walks cfg.Root and routes each file to the scanner for its
// extension. Per-file read and parse failures contribute zero findings and
// never abort the walk; the only returned error is an invalid root.
func Scan(cfg Config) (*types.ResultSet, error) {
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = 1 << 20
	}
	info, err := os.Stat(cfg.Root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%s is not a valid directory", cfg.Root)
	}

	ign, _ := ignore.Load(filepath.Join(cfg.Root, ".codesweepignore"))

	rs := &types.ResultSet{}
	walk(cfg, ign, func(path string, data []byte) {
		switch filepath.Ext(path) {
		case ".py":
			scanner.Python(path, data, rs)
		case ".js", ".jsx", ".ts", ".tsx":
			scanner.Script(path, data, rs)
		}
	})
	return rs, nil
}
