// Package reflection implements the four-step retrospective wizard that
// closes out a task. The wizard is a value type: transitions return a new
// state and nothing here touches rendering or persistence.
package reflection

import (
	"time"

	"github.com/cyclehq/cycle/pkg/task"
)

// Step identifies one of the four wizard questions, in order.
type Step int

const (
	StepFact Step = iota
	StepEmotion
	StepLearning
	StepNextStep

	stepCount
)

// Steps returns the wizard steps in walking order.
func Steps() []Step {
	return []Step{StepFact, StepEmotion, StepLearning, StepNextStep}
}

// Info carries the display copy for one step.
type Info struct {
	Number   int
	Title    string
	Question string
	Hint     string
}

// Info returns the display copy for the step.
func (s Step) Info() Info {
	switch s {
	case StepFact:
		return Info{1, "Confirm the facts", "What did you do?", "Describe the action you tried this time."}
	case StepEmotion:
		return Info{2, "Observe the emotion", "How did it feel?", "How did you feel during and after?"}
	case StepLearning:
		return Info{3, "Extract the learning", "What did you notice?", "What did this experience show you?"}
	case StepNextStep:
		return Info{4, "Adjust for next time", "What will you try next?", "If you tried again, what would you change?"}
	}
	return Info{}
}

func (s Step) String() string {
	return s.Info().Title
}

// Wizard is the linear four-step state machine. Back navigation never loses
// text entered on other steps, and every answer may stay empty: if nothing
// comes to mind, that's fine.
type Wizard struct {
	step    Step
	answers [stepCount]string
}

// Start begins a fresh wizard at the first step.
func Start() Wizard {
	return Wizard{}
}

// Resume begins an edit pass at the first step, pre-populated from the
// existing reflection. Saving afterwards replaces the record wholesale.
func Resume(r task.Reflection) Wizard {
	w := Wizard{}
	w.answers[StepFact] = r.Fact
	w.answers[StepEmotion] = r.Emotion
	w.answers[StepLearning] = r.Learning
	w.answers[StepNextStep] = r.NextStep
	return w
}

// Step returns the current step.
func (w Wizard) Step() Step {
	return w.step
}

// Answer returns the text entered for the given step.
func (w Wizard) Answer(s Step) string {
	if s < 0 || s >= stepCount {
		return ""
	}
	return w.answers[s]
}

// SetAnswer records text for the current step.
func (w Wizard) SetAnswer(text string) Wizard {
	w.answers[w.step] = text
	return w
}

// Next advances one step. On the last step it stays put; finishing the
// wizard happens through Save or Skip.
func (w Wizard) Next() Wizard {
	if w.step < stepCount-1 {
		w.step++
	}
	return w
}

// Back returns to the previous step without discarding anything.
func (w Wizard) Back() Wizard {
	if w.step > 0 {
		w.step--
	}
	return w
}

// AtStart reports whether the wizard is on the first step.
func (w Wizard) AtStart() bool {
	return w.step == 0
}

// AtEnd reports whether the wizard is on the last step.
func (w Wizard) AtEnd() bool {
	return w.step == stepCount-1
}

// Save builds the immutable reflection record from the four answers.
func (w Wizard) Save(now time.Time) task.Reflection {
	return task.Reflection{
		Fact:      w.answers[StepFact],
		Emotion:   w.answers[StepEmotion],
		Learning:  w.answers[StepLearning],
		NextStep:  w.answers[StepNextStep],
		CreatedAt: now,
	}
}
