package reflect

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/cyclehq/cycle/pkg/app"
	"github.com/cyclehq/cycle/pkg/printers"
	"github.com/cyclehq/cycle/pkg/reflection"
)

// back steps to the previous question when typed as an answer.
const back = "<"

// Reflect completes a task through the four reflection steps. Answers
// supplied up front fill their steps; any step still blank is asked on
// the terminal.
type Reflect struct {
	ID       string
	Fact     string
	Emotion  string
	Learning string
	NextStep string
	Edit     bool
	In       io.Reader
	Service  *app.Service
	ShowID   bool
}

func (r *Reflect) Do(ctx context.Context) error {
	t, err := r.Service.FindTask(r.ID)
	if err != nil {
		return err
	}
	if r.Edit && t.Reflection == nil {
		return errors.New("task has no reflection to edit")
	}

	var w reflection.Wizard
	if r.Edit {
		w = reflection.Resume(*t.Reflection)
	} else {
		w = reflection.Start()
	}

	for _, answer := range []string{r.Fact, r.Emotion, r.Learning, r.NextStep} {
		if answer != "" {
			w = w.SetAnswer(answer)
		}
		if !w.AtEnd() {
			w = w.Next()
		}
	}
	for !w.AtStart() {
		w = w.Back()
	}

	if !r.allGiven() {
		w, err = r.ask(w)
		if err != nil {
			return err
		}
	}

	if err := r.Service.CompleteWithReflection(t.ID, w.Save(time.Now())); err != nil {
		return err
	}

	done, err := r.Service.FindTask(t.ID.String())
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: r.ShowID}
	pp.Title("Reflected")
	pp.Tasks(*done)
	return nil
}

// ask walks the wizard on the terminal. Typing "<" returns to the
// previous question with its answer kept.
func (r *Reflect) ask(w reflection.Wizard) (reflection.Wizard, error) {
	scanner := bufio.NewScanner(r.In)

	title := color.New(color.Bold)
	faint := color.New(color.Faint)

	for {
		step := w.Step()
		info := step.Info()
		_, _ = title.Printf("%d/%d %s\n", info.Number, len(reflection.Steps()), info.Title)
		fmt.Println(info.Question)
		if cur := w.Answer(step); cur != "" {
			_, _ = faint.Printf("  [%s]\n", cur)
		}
		_, _ = faint.Println("  " + info.Hint)
		fmt.Print("> ")

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return w, err
			}
			return w, errors.New("reflection cancelled")
		}
		line := strings.TrimSpace(scanner.Text())

		if line == back {
			w = w.Back()
			continue
		}
		if line != "" {
			w = w.SetAnswer(line)
		}
		if w.AtEnd() {
			return w, nil
		}
		w = w.Next()
	}
}

func (r *Reflect) allGiven() bool {
	return r.Fact != "" && r.Emotion != "" && r.Learning != "" && r.NextStep != ""
}
