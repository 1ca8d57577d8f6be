package quiz

// Question is a single multiple-choice prompt.
type Question struct {
	ID      int
	Prompt  string
	Options []string

	// CorrectIndex is zero-based. An index outside Options means the
	// question has no correct answer text to show.
	CorrectIndex int

	Explanation Optional[string]
}

// IsCorrect reports whether selected is the correct option.
func (q Question) IsCorrect(selected int) bool {
	return selected == q.CorrectIndex
}

// CorrectAnswer returns the text of the correct option, or "" when the
// correct index does not point at an option.
func (q Question) CorrectAnswer() string {
	if !q.hasValidAnswer() {
		return ""
	}
	return q.Options[q.CorrectIndex]
}

// HasOption reports whether i is a valid option index.
func (q Question) HasOption(i int) bool {
	return i >= 0 && i < len(q.Options)
}

func (q Question) hasValidAnswer() bool {
	return q.HasOption(q.CorrectIndex)
}
