package scex

import (
	"fmt"
	"os"
	"path/filepath"
)

// ExtractCSV inflates a compressed .csv package and writes the plain table
// to outDir under the given name. Unlike texture packages there is no
// version header: the whole blob is the compressed stream.
//
// The path of the written file is returned on success.
func ExtractCSV(data []byte, name string, outDir string) (string, error) {
	out, err := Decompress(data)
	if err != nil {
		return "", err
	}

	path := filepath.Join(outDir, name)
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrWriteOutput, path, err)
	}

	return path, nil
}
