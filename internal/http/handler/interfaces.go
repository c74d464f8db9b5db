package handler

import (
	"context"

	"casestudy-service/internal/domain/project"
	"casestudy-service/internal/store"
)

// Consumer-side interface defined by the handlers: only the store methods
// the HTTP layer actually calls.

type RecordStore interface {
	ListAll(ctx context.Context) []project.Project
	GetByID(ctx context.Context, id string) (*project.Project, error)
	Create(ctx context.Context, input store.CreateInput) (*project.Project, bool, error)
	Update(ctx context.Context, id string, fields project.Fields, image *store.Upload) (*project.Project, error)
	Delete(ctx context.Context, id string) error
}
