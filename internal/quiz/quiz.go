package quiz

// Quiz is an ordered, fixed set of questions with metadata.
type Quiz struct {
	// Slug is a short stable key used to pick the quiz from the command line.
	Slug        string
	Title       string
	Description string
	Questions   []Question

	// TimeLimit is in minutes. It is shown to the player but never enforced.
	TimeLimit Optional[int]
}

// TotalQuestions returns the number of questions in the quiz.
func (q *Quiz) TotalQuestions() int {
	return len(q.Questions)
}

// Question returns the question at index i.
func (q *Quiz) Question(i int) (Question, bool) {
	if i < 0 || i >= len(q.Questions) {
		return Question{}, false
	}
	return q.Questions[i], true
}

// Answers maps a question ID to the selected option index.
type Answers map[int]int

// Clone returns an independent copy of a.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for id, idx := range a {
		out[id] = idx
	}
	return out
}
