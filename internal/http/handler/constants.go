package handler

const (
	paramID = "id"
	queryID = "id"

	formFieldID               = "id"
	formFieldProjectName      = "projectName"
	formFieldCategory         = "category"
	formFieldClient           = "client"
	formFieldYear             = "year"
	formFieldLiveProjectLink  = "liveProjectLink"
	formFieldClientIntro      = "clientIntro"
	formFieldProblemStatement = "problemStatement"
	formFieldSolution         = "solution"
	formFieldResult           = "result"
	formFieldChallenges       = "challenges"
	formFieldOurApproach      = "ourApproach"
	formFieldImage            = "projectImage"

	jsonKeySuccess = "success"
	jsonKeyMessage = "message"
	jsonKeyItem    = "item"
	jsonKeyItems   = "items"
)

const (
	msgProjectIDRequired = "Project ID is required"
	msgProjectNotFound   = "Project not found"
	msgDuplicateProject  = "Project already exists. Skipping duplicate save."
	msgProjectDeleted    = "Project deleted successfully"
	msgLoadProjectFail   = "Failed to load project"
	msgSaveProjectFail   = "Failed to save project"
	msgUpdateProjectFail = "Failed to update project"
	msgDeleteProjectFail = "Failed to delete project"
	msgInvalidFormData   = "Invalid form data"
	msgInvalidChallenges = "challenges must be a JSON array of strings"
	msgInvalidApproach   = "ourApproach must be a JSON array of strings"
	msgReadImageFail     = "failed to read uploaded image"
)
