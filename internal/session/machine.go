package session

import (
	"errors"

	"github.com/abhisek/quickquiz/internal/quiz"
)

var (
	ErrEmptyQuiz        = errors.New("quiz has no questions")
	ErrFinished         = errors.New("session already finished")
	ErrAlreadyRevealed  = errors.New("answer already submitted")
	ErrNotRevealed      = errors.New("answer not submitted yet")
	ErrNoSelection      = errors.New("no option selected")
	ErrOptionOutOfRange = errors.New("option out of range")
	ErrDuplicateAnswer  = errors.New("question already answered")
)

// Event is an input to the state machine.
type Event interface {
	isEvent()
}

// Select highlights an option for the current question.
type Select struct {
	Option int
}

// Submit records the highlighted option as the answer.
type Submit struct{}

// Advance moves past a revealed question.
type Advance struct{}

// Skip moves past the current question without recording an answer.
type Skip struct{}

func (Select) isEvent()  {}
func (Submit) isEvent()  {}
func (Advance) isEvent() {}
func (Skip) isEvent()    {}

// Scorer turns a finished set of answers into a result.
type Scorer func(*quiz.Quiz, quiz.Answers) *quiz.Result

// Machine applies events to session states. The zero value scores with
// quiz.Score.
type Machine struct {
	score Scorer
}

// NewMachine returns a Machine that finishes sessions with score.
func NewMachine(score Scorer) Machine {
	return Machine{score: score}
}

// Start returns the initial state for q.
func (m Machine) Start(q *quiz.Quiz) (State, error) {
	if q == nil || q.TotalQuestions() == 0 {
		return State{}, ErrEmptyQuiz
	}
	return State{
		Quiz:    q,
		Phase:   PhaseAwaiting,
		Answers: quiz.Answers{},
	}, nil
}

// Apply returns the state that follows s after ev. A rejected event
// returns s unchanged together with the reason.
func (m Machine) Apply(s State, ev Event) (State, error) {
	if s.Quiz == nil || s.Quiz.TotalQuestions() == 0 {
		return s, ErrEmptyQuiz
	}
	if s.Phase == PhaseFinished {
		return s, ErrFinished
	}

	switch ev := ev.(type) {
	case Select:
		return m.selectOption(s, ev.Option)
	case Submit:
		return m.submit(s)
	case Advance:
		if s.Phase != PhaseRevealed {
			return s, ErrNotRevealed
		}
		return m.advance(s), nil
	case Skip:
		if s.Phase != PhaseAwaiting {
			return s, ErrAlreadyRevealed
		}
		return m.advance(s), nil
	}
	return s, nil
}

func (m Machine) selectOption(s State, option int) (State, error) {
	if s.Phase != PhaseAwaiting {
		return s, ErrAlreadyRevealed
	}
	q, _ := s.Current()
	if !q.HasOption(option) {
		return s, ErrOptionOutOfRange
	}
	s.Pending = quiz.Some(option)
	return s, nil
}

func (m Machine) submit(s State) (State, error) {
	if s.Phase != PhaseAwaiting {
		return s, ErrAlreadyRevealed
	}
	selected, ok := s.Pending.Get()
	if !ok {
		return s, ErrNoSelection
	}
	q, _ := s.Current()
	if _, dup := s.Answers[q.ID]; dup {
		return s, ErrDuplicateAnswer
	}

	answers := s.Answers.Clone()
	answers[q.ID] = selected

	s.Answers = answers
	s.Phase = PhaseRevealed
	return s, nil
}

func (m Machine) advance(s State) State {
	s.Pending = quiz.None[int]()
	if s.Index+1 < s.Total() {
		s.Index++
		s.Phase = PhaseAwaiting
		return s
	}

	score := m.score
	if score == nil {
		score = quiz.Score
	}
	s.Phase = PhaseFinished
	s.Result = score(s.Quiz, s.Answers)
	return s
}
