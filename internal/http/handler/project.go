package handler

import (
	"errors"
	"net/http"
	"strings"

	"casestudy-service/internal/store"
	apperrors "casestudy-service/pkg/errors"
	"casestudy-service/pkg/validator"

	"github.com/labstack/echo/v4"
)

type ProjectHandler struct {
	store RecordStore
}

func NewProjectHandler(store RecordStore) *ProjectHandler {
	return &ProjectHandler{store: store}
}

func (h *ProjectHandler) ListProjects(c echo.Context) error {
	items := h.store.ListAll(c.Request().Context())
	return respondItems(c, items)
}

func (h *ProjectHandler) GetProject(c echo.Context) error {
	id := c.Param(paramID)
	if id == "" {
		return respondError(c, http.StatusBadRequest, msgProjectIDRequired)
	}

	record, err := h.store.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return respondError(c, http.StatusNotFound, msgProjectNotFound)
		}
		c.Logger().Errorf("Failed to load project %s: %v", id, err)
		return respondError(c, http.StatusInternalServerError, msgLoadProjectFail)
	}

	return respondItem(c, http.StatusOK, record)
}

func (h *ProjectHandler) CreateProject(c echo.Context) error {
	id := strings.TrimSpace(c.FormValue(formFieldID))
	if err := validator.RecordID(id); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	fields, err := parseProjectForm(c)
	if err != nil {
		return respondInputError(c, err)
	}

	upload, err := readUpload(c)
	if err != nil {
		return respondInputError(c, err)
	}

	record, created, err := h.store.Create(c.Request().Context(), store.CreateInput{
		ID:     id,
		Fields: fields,
		Image:  upload,
	})
	if err != nil {
		c.Logger().Errorf("Failed to create project: %v", err)
		return respondError(c, http.StatusInternalServerError, msgSaveProjectFail)
	}

	if !created {
		return respondExisting(c, record)
	}

	return respondItem(c, http.StatusCreated, record)
}

func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	// The original admin form carried the id in the body; the path param is
	// canonical, the form value a fallback.
	id := c.Param(paramID)
	if id == "" {
		id = strings.TrimSpace(c.FormValue(formFieldID))
	}
	if id == "" {
		return respondError(c, http.StatusBadRequest, msgProjectIDRequired)
	}

	fields, err := parseProjectForm(c)
	if err != nil {
		return respondInputError(c, err)
	}

	upload, err := readUpload(c)
	if err != nil {
		return respondInputError(c, err)
	}

	record, err := h.store.Update(c.Request().Context(), id, fields, upload)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return respondError(c, http.StatusNotFound, msgProjectNotFound)
		}
		c.Logger().Errorf("Failed to update project %s: %v", id, err)
		return respondError(c, http.StatusInternalServerError, msgUpdateProjectFail)
	}

	return respondItem(c, http.StatusOK, record)
}

func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	id := c.Param(paramID)
	if id == "" {
		id = strings.TrimSpace(c.QueryParam(queryID))
	}
	if id == "" {
		return respondError(c, http.StatusBadRequest, msgProjectIDRequired)
	}

	if err := h.store.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return respondError(c, http.StatusNotFound, msgProjectNotFound)
		}
		c.Logger().Errorf("Failed to delete project %s: %v", id, err)
		return respondError(c, http.StatusInternalServerError, msgDeleteProjectFail)
	}

	return respondMessage(c, http.StatusOK, msgProjectDeleted)
}

func respondInputError(c echo.Context, err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return respondError(c, http.StatusBadRequest, appErr.Message)
	}
	return respondError(c, http.StatusBadRequest, msgInvalidFormData)
}
