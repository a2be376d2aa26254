package workers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingWorker struct {
	runs int
}

func (w *countingWorker) Run() {
	w.runs++
}

func TestWorkers_RunStartsEveryWorker(t *testing.T) {
	first := &countingWorker{}
	second := &countingWorker{}

	NewWorkers(first, second).Run()

	assert.Equal(t, 1, first.runs)
	assert.Equal(t, 1, second.runs)
}

func TestWorkers_RunWithNoWorkers(t *testing.T) {
	assert.NotPanics(t, func() {
		NewWorkers().Run()
	})
}
