package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/Aut-Labs/nova-showcase/internal/domain/config"
	"github.com/Aut-Labs/nova-showcase/internal/usecase"
)

// SpinnerProgressReporter implements progress reporting with a spinner
type SpinnerProgressReporter struct {
	mu           sync.Mutex
	spinner      *spinner.Spinner
	out          io.Writer
	stages       []stageInfo
	currentStage string
}

type stageInfo struct {
	Stage     string
	StartTime time.Time
	EndTime   time.Time
	Message   string
}

// NewSpinnerProgressReporter creates a new spinner-based progress reporter writing to out
func NewSpinnerProgressReporter(out io.Writer) *SpinnerProgressReporter {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerProgressReporter{
		spinner: s,
		out:     out,
	}
}

// OnProgress handles progress events
func (r *SpinnerProgressReporter) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if event.Stage != "" && event.Stage != r.currentStage {
		r.completeCurrentStage()
		r.currentStage = event.Stage
		r.stages = append(r.stages, stageInfo{Stage: event.Stage, StartTime: time.Now()})
	}
	if len(r.stages) > 0 {
		r.stages[len(r.stages)-1].Message = event.Message
	}

	// Handle spinner states
	if event.Spinner {
		r.spinner.Suffix = " " + event.Message
		if !r.spinner.Active() {
			r.spinner.Start()
		}
	} else if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Info prints an info message
func (r *SpinnerProgressReporter) Info(message string) {
	r.pause(func() {
		color.New(color.FgCyan).Fprintln(r.out, message)
	})
}

// Error prints an error message
func (r *SpinnerProgressReporter) Error(message string) {
	r.pause(func() {
		color.New(color.FgRed).Fprintln(r.out, message)
	})
}

// Stop halts the spinner and closes the running stage
func (r *SpinnerProgressReporter) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completeCurrentStage()
	r.currentStage = ""
	if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Summary describes each stage and how long it took
func (r *SpinnerProgressReporter) Summary() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := make([]string, 0, len(r.stages))
	for _, stage := range r.stages {
		if stage.EndTime.IsZero() {
			lines = append(lines, fmt.Sprintf("● %s (running)", stage.Stage))
			continue
		}
		lines = append(lines, fmt.Sprintf("✓ %s (%s)", stage.Stage, stage.EndTime.Sub(stage.StartTime).Round(time.Millisecond)))
	}
	return lines
}

// pause stops the spinner while fn writes, then restarts it
func (r *SpinnerProgressReporter) pause(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}
	fn()
	if wasActive {
		r.spinner.Start()
	}
}

// completeCurrentStage marks the current stage as completed
func (r *SpinnerProgressReporter) completeCurrentStage() {
	if len(r.stages) > 0 {
		idx := len(r.stages) - 1
		if r.stages[idx].EndTime.IsZero() {
			r.stages[idx].EndTime = time.Now()
		}
	}
}

// Sink is the progress sink handed to use cases; Stop ends any running spinner
type Sink interface {
	usecase.ProgressSink
	Stop()
}

// NewSink picks a spinner for interactive terminals and a no-op sink otherwise
func NewSink(cfg *config.RuntimeConfig) Sink {
	if cfg.NonInteractive || cfg.StructuredOutput() {
		return &NopSink{}
	}
	return NewSpinnerProgressReporter(os.Stderr)
}

// Ensure SpinnerProgressReporter implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerProgressReporter)(nil)
