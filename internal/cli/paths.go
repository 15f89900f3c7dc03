package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/wordspin/pkg/errors"
	"github.com/matzehuels/wordspin/pkg/pipeline"
)

// stdinBase is the output base name when the input comes from stdin.
const stdinBase = "wordcloud"

// readInput returns the text to process. An empty path or "-" reads
// stdin.
func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.New(errors.ErrCodeFileNotFound, "input file not found: %s", path)
		}
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// outputBase derives the base output path from the output flag and the
// input file path. If output is empty, the input name without its
// extension is used; stdin input falls back to "wordcloud". A known
// format extension on the output flag is stripped.
func outputBase(output, input string) string {
	if output == "" {
		if input == "" || input == "-" {
			return stdinBase
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// artifactPath builds the output file path for one format. When only
// one format is requested and the output flag already carries that
// extension, the flag value is used verbatim.
func artifactPath(base, format string, singleFormat bool, output string) string {
	if singleFormat && output != "" && strings.TrimPrefix(filepath.Ext(output), ".") == format {
		return output
	}
	return base + "." + format
}

// writeArtifact validates the path and writes data to it.
func writeArtifact(path string, data []byte) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	return os.WriteFile(path, data, 0644)
}
