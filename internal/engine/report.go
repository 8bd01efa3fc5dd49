package engine

// Status is the terminal state of one selected tweak.
type Status string

const (
	StatusApplied        Status = "applied"
	StatusManualRequired Status = "manual_required"
	StatusFailed         Status = "failed"
)

// Selection is the set of tweak ids chosen for one apply cycle.
type Selection map[string]struct{}

// NewSelection builds a selection from ids. Duplicates collapse.
func NewSelection(ids ...string) Selection {
	s := make(Selection, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is selected.
func (s Selection) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Outcome is the result of attempting one selected tweak.
type Outcome struct {
	TweakID     string `json:"tweakId"`
	DisplayName string `json:"displayName"`
	Status      Status `json:"status"`
	// Detail holds the error text for failed tweaks and the instructions for
	// manual ones. Empty for applied tweaks.
	Detail string `json:"detail,omitempty"`
}

// Report aggregates the outcomes of one apply cycle in catalog order.
type Report struct {
	Outcomes []Outcome `json:"outcomes"`
}

// Counts summarizes a report by status.
type Counts struct {
	Applied        int `json:"applied"`
	ManualRequired int `json:"manualRequired"`
	Failed         int `json:"failed"`
}

func (r *Report) Empty() bool {
	return len(r.Outcomes) == 0
}

func (r *Report) Applied() []Outcome        { return r.filter(StatusApplied) }
func (r *Report) ManualRequired() []Outcome { return r.filter(StatusManualRequired) }
func (r *Report) Failed() []Outcome         { return r.filter(StatusFailed) }

func (r *Report) Counts() Counts {
	var c Counts
	for _, o := range r.Outcomes {
		switch o.Status {
		case StatusApplied:
			c.Applied++
		case StatusManualRequired:
			c.ManualRequired++
		case StatusFailed:
			c.Failed++
		}
	}
	return c
}

func (r *Report) filter(status Status) []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}
