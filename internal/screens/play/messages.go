package play

import (
	"github.com/abhisek/quickquiz/internal/quiz"
	"github.com/abhisek/quickquiz/internal/stats"
)

// settingsLoadedMsg carries the feedback toggles read at start-up.
type settingsLoadedMsg struct {
	Sound     bool
	Vibration bool
	Err       error
}

// recordedMsg is sent once the finished quiz has been written to the
// statistics store.
type recordedMsg struct {
	Result  *quiz.Result
	Outcome stats.Outcome
	Err     error
}
