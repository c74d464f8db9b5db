package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectName(t *testing.T) {
	assert.NoError(t, ProjectName("Acme Site"))
	assert.NoError(t, ProjectName("2024 Relaunch (v2)"))

	assert.Error(t, ProjectName(""))
	assert.Error(t, ProjectName(strings.Repeat("a", 256)))
	assert.Error(t, ProjectName("bad\nname"))
}

func TestRecordID(t *testing.T) {
	assert.NoError(t, RecordID(""))
	assert.NoError(t, RecordID("3f8e9b2c-1111-2222-3333-444455556666"))
	assert.NoError(t, RecordID("custom-id"))

	assert.Error(t, RecordID(strings.Repeat("a", 129)))
	assert.Error(t, RecordID("../escape"))
	assert.Error(t, RecordID("with/slash"))
	assert.Error(t, RecordID("with\\backslash"))
	assert.Error(t, RecordID("ctrl\x01char"))
}

func TestImageFileName(t *testing.T) {
	assert.NoError(t, ImageFileName("photo.png"))
	assert.NoError(t, ImageFileName("Team Photo.JPG"))

	assert.Error(t, ImageFileName(""))
	assert.Error(t, ImageFileName(strings.Repeat("a", 256)))
	assert.Error(t, ImageFileName("../../etc/passwd"))
	assert.Error(t, ImageFileName("dir/photo.png"))
	assert.Error(t, ImageFileName("bad\x00.png"))
}
