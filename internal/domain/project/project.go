package project

// Project is a single case-study entry as persisted in the projects file.
// The JSON field names are load-bearing: the public site reads the same
// file, so they never change.
type Project struct {
	ID               string   `json:"id"`
	ProjectName      string   `json:"projectName"`
	Category         string   `json:"category"`
	Client           string   `json:"client"`
	Year             string   `json:"year"`
	LiveProjectLink  string   `json:"liveProjectLink"`
	ClientIntro      string   `json:"clientIntro"`
	ProblemStatement string   `json:"problemStatement"`
	Solution         string   `json:"solution"`
	Result           string   `json:"result"`
	Challenges       []string `json:"challenges"`
	OurApproach      []string `json:"ourApproach"`
	ImageURL         *string  `json:"imageUrl"`
	CreatedAt        string   `json:"createdAt"`
	UpdatedAt        string   `json:"updatedAt,omitempty"`
}

// Fields holds every caller-settable field of a project. The ID, image
// reference and timestamps are owned by the store.
type Fields struct {
	ProjectName      string
	Category         string
	Client           string
	Year             string
	LiveProjectLink  string
	ClientIntro      string
	ProblemStatement string
	Solution         string
	Result           string
	Challenges       []string
	OurApproach      []string
}

// Key is the business key used for duplicate detection, independent of ID.
// Year is numeric-shaped but compared as the free-text string it is stored as.
type Key struct {
	ProjectName string
	Client      string
	Year        string
	Category    string
}

func (f Fields) Key() Key {
	return Key{
		ProjectName: f.ProjectName,
		Client:      f.Client,
		Year:        f.Year,
		Category:    f.Category,
	}
}

func (p *Project) Key() Key {
	return Key{
		ProjectName: p.ProjectName,
		Client:      p.Client,
		Year:        p.Year,
		Category:    p.Category,
	}
}

// Apply replaces every caller-settable field of p wholesale. Fields absent
// from f reset to their zero value; there is no per-field merge.
func (f Fields) Apply(p *Project) {
	p.ProjectName = f.ProjectName
	p.Category = f.Category
	p.Client = f.Client
	p.Year = f.Year
	p.LiveProjectLink = f.LiveProjectLink
	p.ClientIntro = f.ClientIntro
	p.ProblemStatement = f.ProblemStatement
	p.Solution = f.Solution
	p.Result = f.Result
	p.Challenges = f.Challenges
	p.OurApproach = f.OurApproach

	// The persisted file always carries arrays, never null.
	if p.Challenges == nil {
		p.Challenges = []string{}
	}
	if p.OurApproach == nil {
		p.OurApproach = []string{}
	}
}
