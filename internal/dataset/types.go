package dataset

// Review is one review submitted on a pull request, flattened to the
// fields the analysers use.
type Review struct {
	Author      string `json:"author"`
	State       string `json:"state"`
	SubmittedAt string `json:"submittedAt"`
}

// PullRequest mirrors one element of the fetch collaborator's JSON
// output: the fields requested from the code-hosting API, tagged with
// the owning repo.
type PullRequest struct {
	Number         int      `json:"number"`
	Title          string   `json:"title"`
	State          string   `json:"state"`
	IsDraft        bool     `json:"isDraft"`
	CreatedAt      string   `json:"createdAt"`
	MergedAt       string   `json:"mergedAt"`
	ClosedAt       string   `json:"closedAt"`
	Additions      int      `json:"additions"`
	Deletions      int      `json:"deletions"`
	ChangedFiles   int      `json:"changedFiles"`
	BaseRefName    string   `json:"baseRefName"`
	HeadRefName    string   `json:"headRefName"`
	ReviewDecision string   `json:"reviewDecision"`
	Reviews        []Review `json:"reviews"`
	Labels         []string `json:"labels"`
	Author         string   `json:"author"`
	Repo           string   `json:"repo"`
	URL            string   `json:"url"`
}

// ReviewedPullRequest is a pull request someone else authored, annotated
// with the reviews the identity under analysis submitted on it.
type ReviewedPullRequest struct {
	PullRequest
	YourReviews []Review `json:"your_reviews"`
}

// Page is one wiki-style page from the documentation platform export.
type Page struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Space         string `json:"space"`
	Created       string `json:"created"`
	LastModified  string `json:"last_modified"`
	VersionNumber *int   `json:"version_number"`
	URL           string `json:"url"`
}

// PagesExport is the documentation-platform dataset: pages the identity
// created, pages they edited but did not create, and the export's
// lower-bound date.
type PagesExport struct {
	Since       string `json:"since"`
	Created     []Page `json:"created"`
	Contributed []Page `json:"contributed"`
}
