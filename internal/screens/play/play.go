// Package play is the screen that walks the player through one quiz.
package play

import (
	"context"
	"errors"
	"fmt"
	"io"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quickquiz/internal/feedback"
	"github.com/abhisek/quickquiz/internal/quiz"
	"github.com/abhisek/quickquiz/internal/router"
	"github.com/abhisek/quickquiz/internal/screen"
	"github.com/abhisek/quickquiz/internal/screens/results"
	"github.com/abhisek/quickquiz/internal/session"
	"github.com/abhisek/quickquiz/internal/stats"
	"github.com/abhisek/quickquiz/internal/ui/components"
	"github.com/abhisek/quickquiz/internal/ui/keys"
	"github.com/abhisek/quickquiz/internal/ui/layout"
)

// Deps are the collaborators the quiz screen needs.
type Deps struct {
	Stats stats.Store
	// Bell receives the terminal bell when sound is enabled.
	Bell io.Writer
}

// PlayScreen implements screen.Screen for an active quiz.
type PlayScreen struct {
	deps    Deps
	machine session.Machine
	state   session.State
	choice  components.MultiChoice
	player  feedback.Player

	pulsing  bool
	pulseSeq int

	confirmQuit bool
	finishing   bool
	notice      string
	errMsg      string
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.BackHandler = (*PlayScreen)(nil)

// New starts q. An empty quiz yields a screen that only shows the error.
func New(q *quiz.Quiz, deps Deps) *PlayScreen {
	s := &PlayScreen{deps: deps}
	state, err := s.machine.Start(q)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.state = state
	s.resetChoice()
	return s
}

func (s *PlayScreen) Init() tea.Cmd {
	if s.errMsg != "" || s.deps.Stats == nil {
		return nil
	}
	st := s.deps.Stats
	return func() tea.Msg {
		ctx := context.Background()
		sound, err := st.SoundEnabled(ctx)
		if err != nil {
			return settingsLoadedMsg{Err: err}
		}
		vibration, err := st.VibrationEnabled(ctx)
		return settingsLoadedMsg{Sound: sound, Vibration: vibration, Err: err}
	}
}

func (s *PlayScreen) Title() string {
	if s.state.Quiz == nil {
		return "Quiz"
	}
	return s.state.Quiz.Title
}

// HandlesBack is true while a quiz is running so Esc opens the quit
// dialog instead of leaving.
func (s *PlayScreen) HandlesBack() bool {
	return s.errMsg == ""
}

// State returns the current session state.
func (s *PlayScreen) State() session.State {
	return s.state
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case s.confirmQuit:
		return []layout.KeyHint{keys.Hint(keys.Yes, "Exit quiz"), keys.Hint(keys.No, "Keep playing")}
	case s.finishing:
		return nil
	case s.state.Phase == session.PhaseRevealed:
		return []layout.KeyHint{keys.Hint(keys.Enter, s.advanceLabel()), keys.Hint(keys.Back, "Quit")}
	}
	return []layout.KeyHint{
		{Key: "↑↓/1-9", Description: "Choose"},
		keys.Hint(keys.Enter, "Submit"),
		keys.Hint(keys.Skip),
		keys.Hint(keys.Back, "Quit"),
	}
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsLoadedMsg:
		s.player = feedback.Player{Bell: s.deps.Bell, Sound: msg.Sound, Vibration: msg.Vibration}
		return s, screen.Warn(wrap("load settings", msg.Err))

	case feedback.PulseDoneMsg:
		if msg.Seq == s.pulseSeq {
			s.pulsing = false
		}
		return s, nil

	case recordedMsg:
		return s, tea.Batch(
			screen.Warn(wrap("save statistics", msg.Err)),
			router.ReplaceCmd(results.New(msg.Result, msg.Outcome, s.retakeFactory())),
		)

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *PlayScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.errMsg != "" {
		return s, router.PopCmd()
	}
	if s.finishing {
		return s, nil
	}

	if s.confirmQuit {
		switch {
		case key.Matches(msg, keys.Yes):
			// Abandoned quizzes are not recorded.
			return s, router.PopCmd()
		case key.Matches(msg, keys.No):
			s.confirmQuit = false
		}
		return s, nil
	}

	if key.Matches(msg, keys.Back) {
		s.confirmQuit = true
		return s, nil
	}

	s.notice = ""
	switch s.state.Phase {
	case session.PhaseAwaiting:
		if idx, ok := s.choice.Move(msg); ok {
			return s.apply(session.Select{Option: idx}, feedback.Light)
		}
		switch {
		case key.Matches(msg, keys.Enter):
			return s.submit()
		case key.Matches(msg, keys.Skip):
			return s.apply(session.Skip{}, feedback.Medium)
		}
	case session.PhaseRevealed:
		if key.Matches(msg, keys.Enter) {
			return s.apply(session.Advance{}, feedback.Light)
		}
	}
	return s, nil
}

func (s *PlayScreen) submit() (screen.Screen, tea.Cmd) {
	next, err := s.machine.Apply(s.state, session.Submit{})
	if err != nil {
		s.notice = noticeFor(err)
		return s, nil
	}
	s.state = next
	s.choice.Revealed = true

	kind := feedback.Error
	if s.state.LastAnswerCorrect() {
		kind = feedback.Success
	}
	return s, s.play(kind)
}

// apply runs ev through the machine and syncs the view state.
func (s *PlayScreen) apply(ev session.Event, kind feedback.Kind) (screen.Screen, tea.Cmd) {
	prevIndex := s.state.Index
	next, err := s.machine.Apply(s.state, ev)
	if err != nil {
		s.notice = noticeFor(err)
		return s, nil
	}
	s.state = next

	if s.state.Finished() {
		return s, tea.Batch(s.play(kind), s.finish())
	}
	if s.state.Index != prevIndex {
		s.resetChoice()
	} else if sel, ok := s.state.Pending.Get(); ok {
		s.choice.Cursor = sel
		s.choice.Chosen = sel
	}
	return s, s.play(kind)
}

func (s *PlayScreen) play(kind feedback.Kind) tea.Cmd {
	s.pulseSeq++
	pulse, cmd := s.player.Play(kind, s.pulseSeq)
	s.pulsing = pulse
	return cmd
}

// finish writes the aggregate counters before the results screen is
// shown.
func (s *PlayScreen) finish() tea.Cmd {
	s.finishing = true
	result := s.state.Result
	st := s.deps.Stats
	return func() tea.Msg {
		if st == nil {
			return recordedMsg{Result: result}
		}
		outcome, err := stats.Record(context.Background(), st, result)
		return recordedMsg{Result: result, Outcome: outcome, Err: err}
	}
}

func (s *PlayScreen) retakeFactory() func() screen.Screen {
	q, deps := s.state.Quiz, s.deps
	return func() screen.Screen { return New(q, deps) }
}

func (s *PlayScreen) resetChoice() {
	q, _ := s.state.Current()
	s.choice = components.NewMultiChoice(q.Options, q.CorrectIndex)
}

func (s *PlayScreen) advanceLabel() string {
	if s.state.IsLast() {
		return "Finish Quiz"
	}
	return "Next Question"
}

func noticeFor(err error) string {
	switch {
	case errors.Is(err, session.ErrNoSelection):
		return "Choose an option first."
	case errors.Is(err, session.ErrAlreadyRevealed), errors.Is(err, session.ErrDuplicateAnswer):
		return "This question has already been answered."
	default:
		return err.Error()
	}
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
