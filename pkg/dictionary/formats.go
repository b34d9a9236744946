package dictionary

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
)

// FileFormat classifies the text-based source formats a Dictionary can
// be built from. There is no binary format in scope: every Dictionary is
// built once from an already-opened text stream, never a chunked
// on-disk cache.
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatWordList
	FormatAffix
)

// FormatInfo carries descriptive metadata about a FileFormat.
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
	MinSize     int64
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatWordList: {
		Format:      FormatWordList,
		Description: "Word List (flat or Hunspell .dic)",
		Extensions:  []string{".txt", ".dic"},
		MinSize:     1,
	},
	FormatAffix: {
		Format:      FormatAffix,
		Description: "Hunspell Affix Rules",
		Extensions:  []string{".aff"},
		MinSize:     1,
	},
}

// ValidateFileFormat checks that filename exists, is large enough, and
// carries an extension recognized for expectedFormat.
func ValidateFileFormat(filename string, expectedFormat FileFormat) error {
	info, err := os.Stat(filename)
	if err != nil {
		log.Errorf("failed to stat file %s: %v", filename, err)
		return err
	}
	formatInfo, exists := supportedFormats[expectedFormat]
	if !exists {
		log.Errorf("unknown format: %v", expectedFormat)
		return errors.New("unknown format")
	}
	if info.Size() < formatInfo.MinSize {
		log.Errorf("file %s is too small (%d bytes) for format %s (minimum: %d bytes)",
			filename, info.Size(), formatInfo.Description, formatInfo.MinSize)
		return errors.New("file too small")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !slices.Contains(formatInfo.Extensions, ext) {
		log.Errorf("file %s has invalid extension %s for format %s (expected: %v)",
			filename, ext, formatInfo.Description, formatInfo.Extensions)
		return errors.New("invalid file extension")
	}
	return validateReadable(filename)
}

// validateReadable just confirms the file opens and yields at least one
// byte; detailed grammar validation happens in the loader itself, which
// can report a line number on failure.
func validateReadable(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		log.Errorf("failed to open file %s: %v", filename, err)
		return err
	}
	defer file.Close()

	buf := make([]byte, 1)
	if _, err := file.Read(buf); err != nil {
		log.Errorf("failed to read from file %s: %v", filename, err)
		return err
	}
	return nil
}

// DetectFileFormat guesses a FileFormat from filename's extension.
func DetectFileFormat(filename string) (FileFormat, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".aff":
		if err := ValidateFileFormat(filename, FormatAffix); err == nil {
			return FormatAffix, nil
		}
	case ".txt", ".dic":
		if err := ValidateFileFormat(filename, FormatWordList); err == nil {
			return FormatWordList, nil
		}
	}
	log.Errorf("unable to detect format for file %s", filename)
	return FormatUnknown, errors.New("unable to detect format")
}

// GetFormatInfo returns the metadata for a specific format.
func GetFormatInfo(format FileFormat) (FormatInfo, bool) {
	info, exists := supportedFormats[format]
	return info, exists
}

// ListSupportedFormats returns every format spellkit recognizes.
func ListSupportedFormats() []FormatInfo {
	formats := make([]FormatInfo, 0, len(supportedFormats))
	for _, info := range supportedFormats {
		formats = append(formats, info)
	}
	return formats
}
