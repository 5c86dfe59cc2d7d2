package models

// Difficulty level of a question.
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Question is a multiple-choice question with four lettered options.
// Options keep their display labels ("A. ..." .. "D. ..."); the label
// prefix encodes the letter and the order is meaningful.
type Question struct {
	Text       string     `json:"question"`
	Options    []string   `json:"options"`
	Answer     string     `json:"answer"`
	Topic      string     `json:"topic"`
	Difficulty Difficulty `json:"difficulty"`
}

// FillInQuestion is a free-text question. Answer may hold several
// accepted variants separated by "|".
type FillInQuestion struct {
	Text       string     `json:"question"`
	Answer     string     `json:"answer"`
	Topic      string     `json:"topic"`
	Difficulty Difficulty `json:"difficulty"`
}

// ScoreRecord is one completed quiz run. Records are append-only; a
// user's first and latest attempts are defined by list position after
// filtering by normalized name.
type ScoreRecord struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Assessment is a user-created quiz: three parallel lists indexed by
// position. Questions, Options and Answers must stay the same length.
type Assessment struct {
	Name      string     `json:"name"`
	Questions []string   `json:"questions"`
	Options   [][]string `json:"options"`
	Answers   []string   `json:"answers"`
}

// CertResult is one certification exam outcome, append-only.
type CertResult struct {
	Name           string `json:"name"`
	Score          int    `json:"score"`
	Passed         bool   `json:"passed"`
	PassMark       int    `json:"pass_mark"`
	TotalQuestions int    `json:"total_questions"`
	Timestamp      string `json:"timestamp"`
}
