package verdict

// VerdictStatus is the outcome of checking the k+1 hypothesis on one M.
type VerdictStatus string

const (
	StatusMatch        VerdictStatus = "match"
	StatusMismatch     VerdictStatus = "mismatch"
	StatusInconclusive VerdictStatus = "inconclusive"
	StatusUndefined    VerdictStatus = "undefined"
)

// Reason explains the status in a machine-readable way
type Reason string

const (
	ReasonCountsAgree        Reason = "counts_agree"
	ReasonCountsDiffer       Reason = "counts_differ"
	ReasonWindowInsufficient Reason = "window_insufficient"
	ReasonTooFewMidpoints    Reason = "too_few_midpoints"
)

// Verdict represents a judgment on a hypothesis
type Verdict struct {
	Status VerdictStatus `json:"status"`
	Reason Reason        `json:"reason"`
}

// Undefined is the verdict for M with fewer than two elements.
func Undefined() Verdict {
	return Verdict{Status: StatusUndefined, Reason: ReasonTooFewMidpoints}
}

// Decide maps a count comparison onto a verdict. A mismatch observed through
// an insufficient window cannot falsify the formula and is inconclusive.
func Decide(match bool, windowInsufficient bool) Verdict {
	switch {
	case match:
		return Verdict{Status: StatusMatch, Reason: ReasonCountsAgree}
	case windowInsufficient:
		return Verdict{Status: StatusInconclusive, Reason: ReasonWindowInsufficient}
	default:
		return Verdict{Status: StatusMismatch, Reason: ReasonCountsDiffer}
	}
}

// IsConclusive reports whether the verdict says something about the formula.
func (v Verdict) IsConclusive() bool {
	return v.Status == StatusMatch || v.Status == StatusMismatch
}

func (v Verdict) String() string {
	return string(v.Status)
}
