package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"casestudy-service/internal/domain/project"
	apperrors "casestudy-service/pkg/errors"

	"github.com/google/uuid"
)

const (
	projectsFileName = "projects.json"
	tempFileSuffix   = ".tmp"
	filePerm         = 0o644
	dirPerm          = 0o755
	jsonIndent       = "  "

	errProjectNotFound = "project not found"
)

// ImageStore persists and removes the uploaded images project records
// reference. Implemented by assets.Manager.
type ImageStore interface {
	Save(nameHint, originalName string, data []byte) (string, error)
	Delete(ref string)
}

// Upload is a raw image file received from a form.
type Upload struct {
	Filename string
	Data     []byte
}

// CreateInput carries everything needed to create a project record. ID is
// optional; the store assigns a fresh one when it is empty.
type CreateInput struct {
	ID     string
	Fields project.Fields
	Image  *Upload
}

// ProjectStore maintains the authoritative list of project records in a
// single JSON-array file. Every operation re-reads the file, mutates an
// in-memory copy and atomically rewrites the whole sequence, so each call
// sees a fresh view of the world.
//
// There is no locking between writers: two concurrent mutations race on the
// read-modify-write cycle and the last full-sequence snapshot wins. That is
// an accepted trade-off for a single-operator admin tool, not a concurrent
// multi-tenant store.
type ProjectStore struct {
	path   string
	images ImageStore
}

// New creates the data directory if needed and returns a store backed by
// the projects file inside it.
func New(dataDir string, images ImageStore) (*ProjectStore, error) {
	if err := os.MkdirAll(dataDir, dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &ProjectStore{
		path:   filepath.Join(dataDir, projectsFileName),
		images: images,
	}, nil
}

// ListAll returns every stored project. A missing, unreadable or malformed
// backing file reads as an empty collection: the admin panel stays usable
// over a broken file, at the cost of hiding the corruption from callers.
func (s *ProjectStore) ListAll(ctx context.Context) []project.Project {
	items := s.readAll()
	if items == nil {
		return []project.Project{}
	}
	return items
}

// GetByID returns the record with the given id, or ErrNotFound.
func (s *ProjectStore) GetByID(ctx context.Context, id string) (*project.Project, error) {
	items := s.readAll()
	if idx := indexByID(items, id); idx >= 0 {
		record := items[idx]
		return &record, nil
	}

	return nil, apperrors.NotFound(errProjectNotFound)
}

// Create appends a new record and atomically rewrites the file. A record
// matching the candidate by id or by business key already being present is
// not an error: the existing record comes back unchanged with created set
// to false, and nothing is written. Duplicate detection runs before the
// image is persisted, so a duplicate create never wastes a file in the
// uploads tree.
func (s *ProjectStore) Create(ctx context.Context, input CreateInput) (*project.Project, bool, error) {
	id := input.ID
	if id == "" {
		id = uuid.NewString()
	}

	items := s.readAll()
	for i := range items {
		if items[i].ID == id || items[i].Key() == input.Fields.Key() {
			existing := items[i]
			return &existing, false, nil
		}
	}

	var imageURL *string
	if input.Image != nil {
		ref, err := s.images.Save(input.Fields.ProjectName, input.Image.Filename, input.Image.Data)
		if err != nil {
			return nil, false, err
		}
		imageURL = &ref
	}

	record := project.Project{
		ID:        id,
		ImageURL:  imageURL,
		CreatedAt: now(),
	}
	input.Fields.Apply(&record)

	items = append(items, record)
	if err := s.writeAll(items); err != nil {
		return nil, false, err
	}

	return &record, true, nil
}

// Update replaces every caller-settable field of the record wholesale and
// atomically rewrites the file. When a new image is supplied it is fully on
// disk before the record references it; only then is the previous image
// removed, best effort.
func (s *ProjectStore) Update(ctx context.Context, id string, fields project.Fields, image *Upload) (*project.Project, error) {
	items := s.readAll()
	idx := indexByID(items, id)
	if idx < 0 {
		return nil, apperrors.NotFound(errProjectNotFound)
	}

	record := &items[idx]
	if image != nil {
		ref, err := s.images.Save(fields.ProjectName, image.Filename, image.Data)
		if err != nil {
			return nil, err
		}
		if record.ImageURL != nil {
			s.images.Delete(*record.ImageURL)
		}
		record.ImageURL = &ref
	}

	fields.Apply(record)
	record.UpdatedAt = now()

	if err := s.writeAll(items); err != nil {
		return nil, err
	}

	updated := *record
	return &updated, nil
}

// Delete removes the record and atomically rewrites the remaining sequence.
// The associated image is deleted best effort; a missing file never blocks
// the removal.
func (s *ProjectStore) Delete(ctx context.Context, id string) error {
	items := s.readAll()
	idx := indexByID(items, id)
	if idx < 0 {
		return apperrors.NotFound(errProjectNotFound)
	}

	if items[idx].ImageURL != nil {
		s.images.Delete(*items[idx].ImageURL)
	}

	items = append(items[:idx], items[idx+1:]...)
	return s.writeAll(items)
}

func (s *ProjectStore) readAll() []project.Project {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}

	var items []project.Project
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}

	return items
}

// writeAll serializes the entire sequence to a sibling temp file and
// renames it over the canonical path. Readers observe either the old
// complete file or the new complete file, never a truncated one.
func (s *ProjectStore) writeAll(items []project.Project) error {
	if items == nil {
		items = []project.Project{}
	}

	data, err := json.MarshalIndent(items, "", jsonIndent)
	if err != nil {
		return fmt.Errorf("failed to encode projects: %w", err)
	}

	tmpPath := s.path + tempFileSuffix
	if err := os.WriteFile(tmpPath, data, filePerm); err != nil {
		return fmt.Errorf("failed to write projects file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace projects file: %w", err)
	}

	return nil
}

func indexByID(items []project.Project, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
