package pipeline

// Completion is the handle of a started run. It resolves once every output
// has been written or the run has failed.
type Completion struct {
	done    chan struct{}
	summary Summary
	err     error
}

func newCompletion() *Completion {
	return &Completion{done: make(chan struct{})}
}

func (c *Completion) resolve(summary Summary, err error) {
	c.summary = summary
	c.err = err
	close(c.done)
}

// Done is closed when the run has finished
func (c *Completion) Done() <-chan struct{} {
	return c.done
}

// Wait blocks until the run finishes and returns its error. Failures of
// individual items are aggregated in an *errors.MultipleErrors.
func (c *Completion) Wait() error {
	<-c.done
	return c.err
}

// Summary blocks until the run finishes and returns its statistics
func (c *Completion) Summary() Summary {
	<-c.done
	return c.summary
}
