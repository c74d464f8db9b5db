package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"casestudy-service/internal/assets"
	"casestudy-service/internal/domain/project"
	"casestudy-service/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*ProjectHandler, *store.ProjectStore) {
	t.Helper()

	images, err := assets.NewManager(t.TempDir())
	require.NoError(t, err)

	s, err := store.New(t.TempDir(), images)
	require.NoError(t, err)

	return NewProjectHandler(s), s
}

func sampleForm() map[string]string {
	return map[string]string{
		formFieldProjectName: "Acme Site",
		formFieldCategory:    "web",
		formFieldClient:      "Acme",
		formFieldYear:        "2024",
		formFieldChallenges:  `["legacy CMS",""]`,
		formFieldOurApproach: `["audit","rebuild"]`,
	}
}

func parseSampleFields(t *testing.T) project.Fields {
	t.Helper()

	return project.Fields{
		ProjectName: "Acme Site",
		Category:    "web",
		Client:      "Acme",
		Year:        "2024",
		Challenges:  []string{"legacy CMS"},
		OurApproach: []string{"audit", "rebuild"},
	}
}

func multipartBody(t *testing.T, fields map[string]string, imageName string, imageData []byte) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	if imageName != "" {
		part, err := writer.CreateFormFile(formFieldImage, imageName)
		require.NoError(t, err)
		_, err = part.Write(imageData)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func newFormContext(t *testing.T, method, target string, body io.Reader, contentType string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCreateProject(t *testing.T) {
	h, s := newTestHandler(t)

	body, contentType := multipartBody(t, sampleForm(), "", nil)
	c, rec := newFormContext(t, http.MethodPost, "/api/projects", body, contentType)

	require.NoError(t, h.CreateProject(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeBody(t, rec)
	assert.Equal(t, true, resp[jsonKeySuccess])

	item, ok := resp[jsonKeyItem].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Acme Site", item["projectName"])
	assert.NotEmpty(t, item["id"])
	assert.Nil(t, item["imageUrl"])
	// Blank array entries are filtered at the boundary.
	assert.Equal(t, []interface{}{"legacy CMS"}, item["challenges"])

	assert.Len(t, s.ListAll(context.Background()), 1)
}

func TestCreateProjectWithImage(t *testing.T) {
	h, _ := newTestHandler(t)

	body, contentType := multipartBody(t, sampleForm(), "hero.jpg", []byte("jpg-bytes"))
	c, rec := newFormContext(t, http.MethodPost, "/api/projects", body, contentType)

	require.NoError(t, h.CreateProject(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	item := decodeBody(t, rec)[jsonKeyItem].(map[string]interface{})
	imageURL, ok := item["imageUrl"].(string)
	require.True(t, ok)
	assert.Contains(t, imageURL, "/uploads/projects/acme-site-")
}

func TestCreateProjectDuplicate(t *testing.T) {
	h, s := newTestHandler(t)

	body, contentType := multipartBody(t, sampleForm(), "", nil)
	c, _ := newFormContext(t, http.MethodPost, "/api/projects", body, contentType)
	require.NoError(t, h.CreateProject(c))

	body, contentType = multipartBody(t, sampleForm(), "", nil)
	c, rec := newFormContext(t, http.MethodPost, "/api/projects", body, contentType)
	require.NoError(t, h.CreateProject(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, true, resp[jsonKeySuccess])
	assert.Equal(t, msgDuplicateProject, resp[jsonKeyMessage])
	assert.NotNil(t, resp[jsonKeyItem])

	assert.Len(t, s.ListAll(context.Background()), 1)
}

func TestCreateProjectMissingName(t *testing.T) {
	h, _ := newTestHandler(t)

	form := sampleForm()
	delete(form, formFieldProjectName)
	body, contentType := multipartBody(t, form, "", nil)
	c, rec := newFormContext(t, http.MethodPost, "/api/projects", body, contentType)

	require.NoError(t, h.CreateProject(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, decodeBody(t, rec)[jsonKeySuccess])
}

func TestCreateProjectMalformedChallenges(t *testing.T) {
	h, _ := newTestHandler(t)

	form := sampleForm()
	form[formFieldChallenges] = "not-json"
	body, contentType := multipartBody(t, form, "", nil)
	c, rec := newFormContext(t, http.MethodPost, "/api/projects", body, contentType)

	require.NoError(t, h.CreateProject(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, msgInvalidChallenges, decodeBody(t, rec)[jsonKeyMessage])
}

func TestListProjects(t *testing.T) {
	h, s := newTestHandler(t)

	c, rec := newFormContext(t, http.MethodGet, "/api/projects", nil, "")
	require.NoError(t, h.ListProjects(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody(t, rec)
	items, ok := resp[jsonKeyItems].([]interface{})
	require.True(t, ok)
	assert.Empty(t, items)

	body, contentType := multipartBody(t, sampleForm(), "", nil)
	createCtx, _ := newFormContext(t, http.MethodPost, "/api/projects", body, contentType)
	require.NoError(t, h.CreateProject(createCtx))

	c, rec = newFormContext(t, http.MethodGet, "/api/projects", nil, "")
	require.NoError(t, h.ListProjects(c))
	resp = decodeBody(t, rec)
	assert.Len(t, resp[jsonKeyItems], 1)

	assert.Len(t, s.ListAll(context.Background()), 1)
}

func TestGetProject(t *testing.T) {
	h, s := newTestHandler(t)

	created, _, err := s.Create(context.Background(), store.CreateInput{ID: "known-id"})
	require.NoError(t, err)

	c, rec := newFormContext(t, http.MethodGet, "/api/projects/known-id", nil, "")
	c.SetParamNames(paramID)
	c.SetParamValues(created.ID)

	require.NoError(t, h.GetProject(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	item := decodeBody(t, rec)[jsonKeyItem].(map[string]interface{})
	assert.Equal(t, "known-id", item["id"])
}

func TestGetProjectNotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	c, rec := newFormContext(t, http.MethodGet, "/api/projects/ghost", nil, "")
	c.SetParamNames(paramID)
	c.SetParamValues("ghost")

	require.NoError(t, h.GetProject(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, msgProjectNotFound, decodeBody(t, rec)[jsonKeyMessage])
}

func TestUpdateProject(t *testing.T) {
	h, s := newTestHandler(t)

	created, _, err := s.Create(context.Background(), store.CreateInput{
		Fields: parseSampleFields(t),
	})
	require.NoError(t, err)

	form := sampleForm()
	form[formFieldYear] = "2025"
	delete(form, formFieldCategory)
	body, contentType := multipartBody(t, form, "", nil)
	c, rec := newFormContext(t, http.MethodPut, "/api/projects/"+created.ID, body, contentType)
	c.SetParamNames(paramID)
	c.SetParamValues(created.ID)

	require.NoError(t, h.UpdateProject(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	item := decodeBody(t, rec)[jsonKeyItem].(map[string]interface{})
	assert.Equal(t, "2025", item["year"])
	// Wholesale replace: the omitted category resets to empty.
	assert.Equal(t, "", item["category"])
	assert.NotEmpty(t, item["updatedAt"])
}

func TestUpdateProjectFormIDFallback(t *testing.T) {
	h, s := newTestHandler(t)

	created, _, err := s.Create(context.Background(), store.CreateInput{
		Fields: parseSampleFields(t),
	})
	require.NoError(t, err)

	form := sampleForm()
	form[formFieldID] = created.ID
	form[formFieldYear] = "2030"
	body, contentType := multipartBody(t, form, "", nil)
	c, rec := newFormContext(t, http.MethodPut, "/api/projects", body, contentType)

	require.NoError(t, h.UpdateProject(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	item := decodeBody(t, rec)[jsonKeyItem].(map[string]interface{})
	assert.Equal(t, "2030", item["year"])
}

func TestUpdateProjectNotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	body, contentType := multipartBody(t, sampleForm(), "", nil)
	c, rec := newFormContext(t, http.MethodPut, "/api/projects/ghost", body, contentType)
	c.SetParamNames(paramID)
	c.SetParamValues("ghost")

	require.NoError(t, h.UpdateProject(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, msgProjectNotFound, decodeBody(t, rec)[jsonKeyMessage])
}

func TestUpdateProjectRequiresID(t *testing.T) {
	h, _ := newTestHandler(t)

	body, contentType := multipartBody(t, sampleForm(), "", nil)
	c, rec := newFormContext(t, http.MethodPut, "/api/projects", body, contentType)

	require.NoError(t, h.UpdateProject(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, msgProjectIDRequired, decodeBody(t, rec)[jsonKeyMessage])
}

func TestDeleteProject(t *testing.T) {
	h, s := newTestHandler(t)

	created, _, err := s.Create(context.Background(), store.CreateInput{
		Fields: parseSampleFields(t),
	})
	require.NoError(t, err)

	c, rec := newFormContext(t, http.MethodDelete, "/api/projects/"+created.ID, nil, "")
	c.SetParamNames(paramID)
	c.SetParamValues(created.ID)

	require.NoError(t, h.DeleteProject(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, msgProjectDeleted, decodeBody(t, rec)[jsonKeyMessage])
	assert.Empty(t, s.ListAll(context.Background()))
}

func TestDeleteProjectQueryFallback(t *testing.T) {
	h, s := newTestHandler(t)

	created, _, err := s.Create(context.Background(), store.CreateInput{
		Fields: parseSampleFields(t),
	})
	require.NoError(t, err)

	c, rec := newFormContext(t, http.MethodDelete, "/api/projects?id="+created.ID, nil, "")

	require.NoError(t, h.DeleteProject(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, s.ListAll(context.Background()))
}

func TestDeleteProjectRequiresID(t *testing.T) {
	h, _ := newTestHandler(t)

	c, rec := newFormContext(t, http.MethodDelete, "/api/projects", nil, "")

	require.NoError(t, h.DeleteProject(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, msgProjectIDRequired, decodeBody(t, rec)[jsonKeyMessage])
}

func TestDeleteProjectNotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	c, rec := newFormContext(t, http.MethodDelete, "/api/projects/ghost", nil, "")
	c.SetParamNames(paramID)
	c.SetParamValues("ghost")

	require.NoError(t, h.DeleteProject(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
