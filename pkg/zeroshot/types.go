package zeroshot

// ClassifyRequest is a single zero-shot classification call.
type ClassifyRequest struct {
	Text            string
	CandidateLabels []string
	MultiLabel      bool
}

// Result holds ranked labels with their scores, highest score first.
type Result struct {
	Labels []string
	Scores []float64
}

// Top returns the winning label and its score.
// Callers must check len(Labels) > 0 first; the client never returns an
// empty Result without an error.
func (r Result) Top() (string, float64) {
	return r.Labels[0], r.Scores[0]
}

// apiRequest is the HuggingFace Inference API request body.
type apiRequest struct {
	Inputs     string        `json:"inputs"`
	Parameters apiParameters `json:"parameters"`
	Options    apiOptions    `json:"options"`
}

type apiParameters struct {
	CandidateLabels    []string `json:"candidate_labels"`
	HypothesisTemplate string   `json:"hypothesis_template,omitempty"`
	MultiLabel         bool     `json:"multi_label"`
}

type apiOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

// apiResponse is the HuggingFace Inference API response body.
type apiResponse struct {
	Sequence string    `json:"sequence"`
	Labels   []string  `json:"labels"`
	Scores   []float64 `json:"scores"`
}
