package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tidwall/gjson"
)

// FileFormat represents the data file formats found in the data directory
type FileFormat int

const (
	FormatUnknown     FileFormat = iota
	FormatWordList               // one entry per line
	FormatThesaurus              // head,related,related
	FormatDefinitions            // word|definition
	FormatWordset                // wordset JSON dump
)

// FormatInfo contains metadata about a data file format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
	// Separator is the field separator every data line must contain, if any.
	Separator string
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatWordList: {
		Format:      FormatWordList,
		Description: "Word List",
		Extensions:  []string{".txt"},
	},
	FormatThesaurus: {
		Format:      FormatThesaurus,
		Description: "Thesaurus",
		Extensions:  []string{".txt", ".csv"},
		Separator:   ",",
	},
	FormatDefinitions: {
		Format:      FormatDefinitions,
		Description: "Definitions",
		Extensions:  []string{".txt"},
		Separator:   "|",
	},
	FormatWordset: {
		Format:      FormatWordset,
		Description: "Wordset JSON",
		Extensions:  []string{".json"},
	},
}

func (f FileFormat) String() string {
	if info, ok := supportedFormats[f]; ok {
		return info.Description
	}
	return "Unknown"
}

// ValidateFileFormat checks if a file matches the expected format
func ValidateFileFormat(filename string, expectedFormat FileFormat) error {
	formatInfo, exists := supportedFormats[expectedFormat]
	if !exists {
		return fmt.Errorf("unknown format: %v", expectedFormat)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	validExt := false
	for _, validExtension := range formatInfo.Extensions {
		if ext == validExtension {
			validExt = true
			break
		}
	}
	if !validExt {
		return fmt.Errorf("file %s has invalid extension %s for format %s (expected: %v)",
			filename, ext, formatInfo.Description, formatInfo.Extensions)
	}

	if expectedFormat == FormatWordset {
		return validateJSONFormat(filename)
	}
	return validateTextFormat(filename, formatInfo)
}

// validateJSONFormat checks the wordset dump is well formed JSON.
func validateJSONFormat(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("file %s is not valid JSON", filename)
	}
	log.Debugf("JSON file %s validated", filename)
	return nil
}

// validateTextFormat looks at the first data line and checks it carries the
// format's separator.
func validateTextFormat(filename string, info FormatInfo) error {
	line, err := firstDataLine(filename)
	if err != nil {
		return err
	}
	if info.Separator != "" && !strings.Contains(line, info.Separator) {
		return fmt.Errorf("file %s does not look like %s: first line %q has no %q",
			filename, info.Description, line, info.Separator)
	}
	log.Debugf("Text file %s validated as %s", filename, info.Description)
	return nil
}

func firstDataLine(filename string) (string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return "", fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			return line, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read from text file %s: %w", filename, err)
	}
	return "", fmt.Errorf("file %s has no data lines", filename)
}

// DetectFileFormat guesses the format from the extension and the first data
// line: '|' means definitions, ',' a thesaurus, anything else a word list.
func DetectFileFormat(filename string) (FileFormat, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".json" {
		if err := ValidateFileFormat(filename, FormatWordset); err != nil {
			return FormatUnknown, err
		}
		return FormatWordset, nil
	}
	if ext != ".txt" && ext != ".csv" {
		return FormatUnknown, fmt.Errorf("unable to detect format for file %s", filename)
	}

	line, err := firstDataLine(filename)
	if err != nil {
		return FormatUnknown, err
	}
	switch {
	case strings.Contains(line, "|"):
		return FormatDefinitions, nil
	case strings.Contains(line, ","):
		return FormatThesaurus, nil
	case ext == ".txt":
		return FormatWordList, nil
	}
	return FormatUnknown, fmt.Errorf("unable to detect format for file %s", filename)
}

// GetFormatInfo returns information about a specific format
func GetFormatInfo(format FileFormat) (FormatInfo, bool) {
	info, exists := supportedFormats[format]
	return info, exists
}
