package step

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/bitrise-io/go-utils/pathutil"
)

// DoneLogger ...
type DoneLogger interface {
	Donef(format string, v ...interface{})
}

// Relocator copies a finished build artifact to the directory other tooling expects it in.
type Relocator struct {
	logger DoneLogger
}

// NewRelocator ...
func NewRelocator(logger DoneLogger) Relocator {
	return Relocator{logger: logger}
}

// Relocate copies sourcePath to destinationDir/destinationFileName and returns the destination path.
// A missing source is not an error: nothing is written and an empty path is returned.
func (r Relocator) Relocate(sourcePath, destinationDir, destinationFileName string) (string, error) {
	if destinationFileName == "" {
		return "", errors.New("destination file name not provided")
	}

	// Stat follows symlinks, a link to a directory must fail before anything is created.
	info, err := os.Stat(sourcePath)
	if err != nil {
		if os.IsNotExist(err) || errors.Is(err, syscall.ENOTDIR) {
			return "", nil
		}
		return "", fmt.Errorf("failed to check source path (%s): %w", sourcePath, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("source is a directory: %s", sourcePath)
	}

	if err := pathutil.EnsureDirExist(destinationDir); err != nil {
		return "", fmt.Errorf("failed to create destination dir (%s): %w", destinationDir, err)
	}

	destinationPath := filepath.Join(destinationDir, destinationFileName)
	if err := copyFile(sourcePath, destinationPath); err != nil {
		return "", err
	}

	r.logger.Donef("APK copied to: %s", destinationPath)

	return destinationPath, nil
}

func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer func() {
		if cerr := in.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", src, cerr)
		}
	}()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", dst, cerr)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}

	return nil
}
