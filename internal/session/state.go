package session

import "github.com/abhisek/quickquiz/internal/quiz"

// Phase is the sub-state of the current question, or Finished.
type Phase int

const (
	PhaseAwaiting Phase = iota // Waiting for the player to pick and submit
	PhaseRevealed              // Answer submitted and feedback shown
	PhaseFinished              // Past the last question; Result is set
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaiting:
		return "awaiting"
	case PhaseRevealed:
		return "revealed"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// State is a snapshot of one player's traversal of a quiz. States are
// values: transitions return a new State and never mutate the old one.
type State struct {
	Quiz *quiz.Quiz

	// Index is the zero-based position of the current question.
	Index int

	Phase Phase

	// Pending is the highlighted option that has not been submitted yet.
	Pending quiz.Optional[int]

	// Answers holds one entry per submitted question, keyed by question ID.
	Answers quiz.Answers

	// Result is set once, on the transition into PhaseFinished.
	Result *quiz.Result
}

// Current returns the question at Index.
func (s State) Current() (quiz.Question, bool) {
	if s.Quiz == nil {
		return quiz.Question{}, false
	}
	return s.Quiz.Question(s.Index)
}

// Finished reports whether the session has been scored.
func (s State) Finished() bool {
	return s.Phase == PhaseFinished
}

// SubmittedAnswer returns the recorded answer for the current question.
func (s State) SubmittedAnswer() (int, bool) {
	q, ok := s.Current()
	if !ok {
		return 0, false
	}
	idx, ok := s.Answers[q.ID]
	return idx, ok
}

// LastAnswerCorrect reports whether the current question's recorded answer
// is correct. It is false when nothing was recorded.
func (s State) LastAnswerCorrect() bool {
	q, ok := s.Current()
	if !ok {
		return false
	}
	idx, ok := s.Answers[q.ID]
	return ok && q.IsCorrect(idx)
}
