package format

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/suzumura-ss/color-converter/internal/ir"
)

// writeFileAtomic replaces path with data. The bytes go to a temporary file
// in the same directory which is renamed over path only after a complete,
// synced write, so a failed encode never leaves a truncated file behind.
func writeFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: creating %s: %v", ir.ErrIO, path, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	n, err := f.Write(data)
	if err == nil && n < len(data) {
		err = fmt.Errorf("short write: %d of %d bytes", n, len(data))
	}
	if err != nil {
		return fmt.Errorf("%w: writing %s: %v", ir.ErrIO, path, err)
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("%w: syncing %s: %v", ir.ErrIO, path, err)
	}
	if err = f.Chmod(perm); err != nil {
		return fmt.Errorf("%w: chmod %s: %v", ir.ErrIO, path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %v", ir.ErrIO, path, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: renaming onto %s: %v", ir.ErrIO, path, err)
	}
	return nil
}
