package validator

import (
	"fmt"
	"strings"
)

const (
	maxProjectNameLen = 255
	maxRecordIDLen    = 128
	maxImageNameLen   = 255
	asciiControlStart = 32
	asciiDelete       = 127

	errProjectNameEmptyFmt      = "project name cannot be empty"
	errProjectNameMaxLengthFmt  = "project name must not exceed %d characters"
	errProjectNameControlFmt    = "project name cannot contain control characters"
	errRecordIDMaxLengthFmt     = "project id must not exceed %d characters"
	errRecordIDPathSepFmt       = "project id cannot contain path separators"
	errRecordIDControlCharsFmt  = "project id cannot contain control characters"
	errImageNameEmptyFmt        = "image file name cannot be empty"
	errImageNameMaxLengthFmt    = "image file name must not exceed %d characters"
	errImageNamePathSepFmt      = "image file name cannot contain path separators"
	errImageNameControlCharsFmt = "image file name cannot contain control characters"
)

func ProjectName(name string) error {
	if name == "" {
		return fmt.Errorf(errProjectNameEmptyFmt)
	}

	if len(name) > maxProjectNameLen {
		return fmt.Errorf(errProjectNameMaxLengthFmt, maxProjectNameLen)
	}

	for _, char := range name {
		if char < asciiControlStart || char == asciiDelete {
			return fmt.Errorf(errProjectNameControlFmt)
		}
	}

	return nil
}

// RecordID accepts the empty string: a fresh id is assigned by the store
// when the caller does not supply one.
func RecordID(id string) error {
	if id == "" {
		return nil
	}

	if len(id) > maxRecordIDLen {
		return fmt.Errorf(errRecordIDMaxLengthFmt, maxRecordIDLen)
	}

	if strings.Contains(id, "..") || strings.Contains(id, "/") || strings.Contains(id, "\\") {
		return fmt.Errorf(errRecordIDPathSepFmt)
	}

	for _, char := range id {
		if char < asciiControlStart || char == asciiDelete {
			return fmt.Errorf(errRecordIDControlCharsFmt)
		}
	}

	return nil
}

func ImageFileName(name string) error {
	if name == "" {
		return fmt.Errorf(errImageNameEmptyFmt)
	}

	if len(name) > maxImageNameLen {
		return fmt.Errorf(errImageNameMaxLengthFmt, maxImageNameLen)
	}

	if strings.Contains(name, "..") || strings.Contains(name, "/") || strings.Contains(name, "\\") {
		return fmt.Errorf(errImageNamePathSepFmt)
	}

	for _, char := range name {
		if char < asciiControlStart || char == asciiDelete {
			return fmt.Errorf(errImageNameControlCharsFmt)
		}
	}

	return nil
}
