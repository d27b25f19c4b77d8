package pipeline

// queue is an unbounded FIFO joining two stages. Push never waits for the
// consumer; items are buffered until the consumer reads them. Out is closed
// after Close once every buffered item has been delivered.
type queue[T any] struct {
	in  chan T
	out chan T
}

func newQueue[T any]() *queue[T] {
	q := &queue[T]{
		in:  make(chan T),
		out: make(chan T),
	}
	go q.pump()
	return q
}

// Push appends v. It must not be called after Close.
func (q *queue[T]) Push(v T) {
	q.in <- v
}

// Close marks the end of input
func (q *queue[T]) Close() {
	close(q.in)
}

// Out delivers items in push order
func (q *queue[T]) Out() <-chan T {
	return q.out
}

func (q *queue[T]) pump() {
	defer close(q.out)

	var buf []T
	in := q.in
	for in != nil || len(buf) > 0 {
		var out chan T
		var next T
		if len(buf) > 0 {
			out = q.out
			next = buf[0]
		}

		select {
		case v, ok := <-in:
			if !ok {
				in = nil
				continue
			}
			buf = append(buf, v)
		case out <- next:
			var zero T
			buf[0] = zero
			buf = buf[1:]
		}
	}
}
