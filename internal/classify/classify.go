package classify

// Kind describes the outcome of classifying one extraction result.
type Kind int

const (
	// Skip marks files whose profile could not be extracted.
	Skip Kind = iota
	// NoMatch marks files with a profile outside the target set.
	NoMatch
	// Match marks files whose profile equals a target set member.
	Match
)

// Outcome is the classification of a single candidate file.
type Outcome struct {
	Kind    Kind
	Profile string
}

// Classifier tests extracted profiles against a fixed target set.
// Comparison is case-sensitive exact equality; no normalization is applied.
type Classifier struct {
	targets []string
	set     map[string]struct{}
}

// New builds a Classifier from an ordered list of target profiles.
func New(targets []string) *Classifier {
	c := &Classifier{
		targets: append([]string(nil), targets...),
		set:     make(map[string]struct{}, len(targets)),
	}
	for _, target := range targets {
		c.set[target] = struct{}{}
	}
	return c
}

// Classify decides membership for one extraction result. present reports
// whether the extractor produced a profile at all; when false the file is
// skipped regardless of the profile value.
func (c *Classifier) Classify(profile string, present bool) Outcome {
	if !present {
		return Outcome{Kind: Skip}
	}
	if _, ok := c.set[profile]; ok {
		return Outcome{Kind: Match, Profile: profile}
	}
	return Outcome{Kind: NoMatch, Profile: profile}
}

// Targets returns a copy of the configured target profiles.
func (c *Classifier) Targets() []string {
	return append([]string(nil), c.targets...)
}
