package assets

import (
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	apperrors "casestudy-service/pkg/errors"
)

const (
	defaultExtension = ".png"
	fallbackBaseName = "project"
	publicPrefix     = "/uploads/projects/"
	filePerm         = 0o644
	dirPerm          = 0o755

	errWriteImageFmt       = "failed to write image file"
	errCreateUploadsDirFmt = "failed to create uploads directory: %w"
	warnDeleteImageLogFmt  = "Warning: failed to delete image %s: %v"
	fileNameFmt            = "%s-%d%s"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Manager owns the image files referenced by project records. References it
// hands out are root-relative paths the public site serves directly.
type Manager struct {
	uploadsDir string
}

// NewManager creates the uploads directory if needed. Creation is
// idempotent, matching the ensure-before-use contract the store relies on.
func NewManager(uploadsDir string) (*Manager, error) {
	if err := os.MkdirAll(uploadsDir, dirPerm); err != nil {
		return nil, fmt.Errorf(errCreateUploadsDirFmt, err)
	}
	return &Manager{uploadsDir: uploadsDir}, nil
}

// Slugify lowercases the input and collapses every run of non-alphanumeric
// characters into a single hyphen, trimming leading and trailing hyphens.
func Slugify(input string) string {
	return strings.Trim(nonAlphanumeric.ReplaceAllString(strings.ToLower(input), "-"), "-")
}

// Save writes the uploaded bytes under a slugified, millisecond-stamped
// name and returns the public reference path. The base name falls back from
// the hint to the upload's own name to a fixed literal; the timestamp makes
// repeated saves with the same hint unique under the single-writer
// assumption.
func (m *Manager) Save(nameHint, originalName string, data []byte) (string, error) {
	ext := path.Ext(originalName)
	if ext == "" {
		ext = defaultExtension
	}

	base := Slugify(nameHint)
	if base == "" {
		base = Slugify(strings.TrimSuffix(path.Base(originalName), ext))
	}
	if base == "" {
		base = fallbackBaseName
	}

	fileName := fmt.Sprintf(fileNameFmt, base, time.Now().UnixMilli(), ext)
	if err := os.WriteFile(filepath.Join(m.uploadsDir, fileName), data, filePerm); err != nil {
		return "", apperrors.AssetWrite(errWriteImageFmt, err)
	}

	return publicPrefix + fileName, nil
}

// Delete removes the image behind a public reference. Cleanup is advisory:
// failures are logged as warnings and swallowed so record mutations never
// hinge on it.
func (m *Manager) Delete(ref string) {
	if ref == "" {
		return
	}

	target := filepath.Join(m.uploadsDir, filepath.Base(ref))
	if err := os.Remove(target); err != nil {
		log.Printf(warnDeleteImageLogFmt, ref, err)
	}
}
