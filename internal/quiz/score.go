package quiz

// QuestionResult is the outcome of a single question.
type QuestionResult struct {
	Question Question

	// Selected is absent when the question was skipped.
	Selected Optional[int]
	Correct  bool
}

// Result is the computed outcome of a completed session.
type Result struct {
	Quiz            *Quiz
	CorrectAnswers  int
	TotalQuestions  int
	Percentage      int
	QuestionResults []QuestionResult
}

// Grade returns the grade for the result's percentage.
func (r *Result) Grade() Grade {
	return GradeFor(r.Percentage)
}

// Skipped returns the number of questions with no recorded answer.
func (r *Result) Skipped() int {
	n := 0
	for _, qr := range r.QuestionResults {
		if !qr.Selected.IsPresent() {
			n++
		}
	}
	return n
}

// Score grades answers against q. Questions missing from answers count as
// skipped and incorrect. The percentage truncates; an empty quiz scores 0.
func Score(q *Quiz, answers Answers) *Result {
	if q == nil {
		return &Result{}
	}
	results := make([]QuestionResult, 0, len(q.Questions))
	correct := 0

	for _, question := range q.Questions {
		qr := QuestionResult{Question: question}
		if selected, ok := answers[question.ID]; ok {
			qr.Selected = Some(selected)
			qr.Correct = question.IsCorrect(selected)
		}
		if qr.Correct {
			correct++
		}
		results = append(results, qr)
	}

	total := len(q.Questions)
	percentage := 0
	if total > 0 {
		percentage = correct * 100 / total
	}

	return &Result{
		Quiz:            q,
		CorrectAnswers:  correct,
		TotalQuestions:  total,
		Percentage:      percentage,
		QuestionResults: results,
	}
}
