// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"io"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
)

const spinnerInterval = 100 * time.Millisecond

// Spinner animates an indeterminate progress indicator until stopped.
type Spinner struct {
	bar  *progressbar.ProgressBar
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// StartSpinner draws a spinner labelled with description on w.
func StartSpinner(w io.Writer, description string) *Spinner {
	s := &Spinner{
		bar: progressbar.NewOptions(-1,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription(description),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionClearOnFinish(),
		),
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go s.loop()
	return s
}

func (s *Spinner) loop() {
	defer close(s.done)
	t := time.NewTicker(spinnerInterval)
	defer t.Stop()

	_ = s.bar.Add(1)
	for {
		select {
		case <-s.stop:
			return
		case <-t.C:
			_ = s.bar.Add(1)
		}
	}
}

// Stop clears the spinner. It is safe to call more than once.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		close(s.stop)
		<-s.done
		_ = s.bar.Finish()
	})
}
