package dataset

// Record is one scored query.
type Record struct {
	Request     string   `json:"request"`
	Gold        string   `json:"gold"`
	Guess       string   `json:"guess"`
	Probability float64  `json:"probability"`
	Verdict     string   `json:"verdict"`
	Query       string   `json:"query"`
	Premises    []string `json:"premises"`
	BestPremise string   `json:"bestPremise"`
	Updated     bool     `json:"updated"` // the cost vector changed after this query
}

type ResultsRepository interface {
	Append(rec Record)
	Close()
}

// Discard is a repository that drops every record.
type Discard struct{}

func (Discard) Append(Record) {}

func (Discard) Close() {}
