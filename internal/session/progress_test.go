package session

import "testing"

func TestProgressPercent(t *testing.T) {
	var m Machine
	s, _ := m.Start(testQuiz(4))

	want := []int{25, 50, 75, 100}
	for i, w := range want {
		if got := s.ProgressPercent(); got != w {
			t.Errorf("question %d: ProgressPercent = %d, want %d", i+1, got, w)
		}
		if s.Number() != i+1 {
			t.Errorf("Number = %d, want %d", s.Number(), i+1)
		}
		if s.IsLast() != (i == 3) {
			t.Errorf("question %d: IsLast = %v", i+1, s.IsLast())
		}
		s, _ = m.Apply(s, Skip{})
	}
	if !s.Finished() || s.ProgressPercent() != 100 {
		t.Errorf("finished progress = %d, want 100", s.ProgressPercent())
	}
}

func TestCorrectSoFar(t *testing.T) {
	var m Machine
	s, _ := m.Start(testQuiz(3))

	s, _ = m.Apply(s, Select{Option: 1})
	s, _ = m.Apply(s, Submit{})
	s, _ = m.Apply(s, Advance{})
	s, _ = m.Apply(s, Select{Option: 2})
	s, _ = m.Apply(s, Submit{})

	if got := s.CorrectSoFar(); got != 1 {
		t.Errorf("CorrectSoFar = %d, want 1", got)
	}
	if got := s.AnsweredCount(); got != 2 {
		t.Errorf("AnsweredCount = %d, want 2", got)
	}
	if s.LastAnswerCorrect() {
		t.Error("LastAnswerCorrect = true for wrong answer")
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseRevealed.String() != "revealed" {
		t.Errorf("PhaseRevealed = %q", PhaseRevealed.String())
	}
}
