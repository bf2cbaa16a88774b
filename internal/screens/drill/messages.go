package drill

import (
	"github.com/abhisek/skilldrill/internal/gateway"
)

// startedMsg is sent when the start-or-resume call settles.
type startedMsg struct {
	Err error
}

// questionMsg is sent when a next-question fetch settles. Exhausted means
// the platform has no more questions planned for this session.
type questionMsg struct {
	Question  *gateway.Question
	Exhausted bool
	Err       error
}

// answerMsg is sent when an answer submission settles.
type answerMsg struct {
	Result *gateway.AnswerResult
	Err    error
}

// pauseToggledMsg is sent when a pause or resume mutation settles.
type pauseToggledMsg struct {
	Err error
}

// endedMsg is sent when the end mutation settles.
type endedMsg struct {
	Err error
}

// reconciledMsg is sent when a reconcile round trip settles.
type reconciledMsg struct {
	Err error
}
