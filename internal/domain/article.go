package domain

// FeedItem is a lightweight article stub pulled from an RSS/Atom feed.
type FeedItem struct {
	Title     string
	Link      string
	Published string
	Source    string
}

// Article holds the full scraped (and later model-cleaned) page content.
type Article struct {
	Title       string
	Text        string
	Authors     []string
	PublishDate string
	URL         string
}

// Fallback provenance values for Evaluation records.
const (
	FallbackNone  = ""
	FallbackParse = "parse"
	FallbackCall  = "call"
)

// Evaluation is the structured credibility assessment for one article.
// Fallback marks synthesized records: "parse" when the model reply could
// not be decoded, "call" when the model call itself failed.
type Evaluation struct {
	Score     float64  `json:"score"`
	Reasoning string   `json:"reasoning"`
	RedFlags  []string `json:"red_flags"`
	Strengths []string `json:"strengths"`
	Fallback  string   `json:"-"`
}

// Genuine reports whether the evaluation came from a parsed model reply.
func (e Evaluation) Genuine() bool {
	return e.Fallback == FallbackNone
}

// TrustScore attaches an evaluation to the article it describes.
type TrustScore struct {
	ArticleTitle string
	URL          string
	Evaluation   Evaluation
}

// FactSheet carries the facts extracted from a single article.
type FactSheet struct {
	SourceTitle string
	URL         string
	Facts       string
}

// RunStats summarizes one pipeline execution for the CLI output.
type RunStats struct {
	Gathered  int
	Cleaned   int
	Scored    int
	Extracted int
	Errors    int
}
