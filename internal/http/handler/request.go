package handler

import (
	"encoding/json"
	"io"
	"strings"

	"casestudy-service/internal/domain/project"
	"casestudy-service/internal/store"
	apperrors "casestudy-service/pkg/errors"
	"casestudy-service/pkg/validator"

	"github.com/labstack/echo/v4"
)

// parseProjectForm extracts the caller-settable project fields from a
// multipart or urlencoded form. Bad input comes back as a validation
// AppError rather than being coerced to empty strings, so the store only
// ever sees validated fields.
func parseProjectForm(c echo.Context) (project.Fields, error) {
	fields := project.Fields{
		ProjectName:      strings.TrimSpace(c.FormValue(formFieldProjectName)),
		Category:         strings.TrimSpace(c.FormValue(formFieldCategory)),
		Client:           strings.TrimSpace(c.FormValue(formFieldClient)),
		Year:             strings.TrimSpace(c.FormValue(formFieldYear)),
		LiveProjectLink:  strings.TrimSpace(c.FormValue(formFieldLiveProjectLink)),
		ClientIntro:      c.FormValue(formFieldClientIntro),
		ProblemStatement: c.FormValue(formFieldProblemStatement),
		Solution:         c.FormValue(formFieldSolution),
		Result:           c.FormValue(formFieldResult),
	}

	if err := validator.ProjectName(fields.ProjectName); err != nil {
		return project.Fields{}, apperrors.Validation(err.Error())
	}

	challenges, err := parseStringList(c.FormValue(formFieldChallenges))
	if err != nil {
		return project.Fields{}, apperrors.Validation(msgInvalidChallenges)
	}
	fields.Challenges = challenges

	approach, err := parseStringList(c.FormValue(formFieldOurApproach))
	if err != nil {
		return project.Fields{}, apperrors.Validation(msgInvalidApproach)
	}
	fields.OurApproach = approach

	return fields, nil
}

// parseStringList decodes a JSON-encoded string array form value. An absent
// value reads as an empty list; blank entries are dropped before the store
// ever sees them.
func parseStringList(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}, nil
	}

	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}

	filtered := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			filtered = append(filtered, item)
		}
	}

	return filtered, nil
}

// readUpload pulls the optional project image out of the form. A missing
// file field is not an error; records without an image are legitimate.
func readUpload(c echo.Context) (*store.Upload, error) {
	fileHeader, err := c.FormFile(formFieldImage)
	if err != nil {
		return nil, nil
	}
	if fileHeader.Filename == "" {
		return nil, nil
	}

	if err := validator.ImageFileName(fileHeader.Filename); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, apperrors.BadRequest(msgReadImageFail)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, apperrors.BadRequest(msgReadImageFail)
	}

	return &store.Upload{Filename: fileHeader.Filename, Data: data}, nil
}
