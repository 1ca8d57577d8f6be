package session

// Number returns the 1-based number of the current question.
func (s State) Number() int {
	return s.Index + 1
}

// Total returns the number of questions in the session's quiz.
func (s State) Total() int {
	if s.Quiz == nil {
		return 0
	}
	return s.Quiz.TotalQuestions()
}

// ProgressPercent returns how far through the quiz the current question
// is, counting the current question as reached.
func (s State) ProgressPercent() int {
	total := s.Total()
	if total == 0 {
		return 0
	}
	if s.Finished() {
		return 100
	}
	return s.Number() * 100 / total
}

// IsLast reports whether the current question is the final one.
func (s State) IsLast() bool {
	return s.Index == s.Total()-1
}

// AnsweredCount returns how many questions have a recorded answer.
func (s State) AnsweredCount() int {
	return len(s.Answers)
}

// CorrectSoFar counts recorded answers that are correct.
func (s State) CorrectSoFar() int {
	if s.Quiz == nil {
		return 0
	}
	n := 0
	for _, q := range s.Quiz.Questions {
		if idx, ok := s.Answers[q.ID]; ok && q.IsCorrect(idx) {
			n++
		}
	}
	return n
}
