package pipeline

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/toyz/scaffold/internal/errors"
	"github.com/toyz/scaffold/internal/logger"
)

// stage runs work for every item of its input with at most limit items in
// flight. Once halt is closed the remaining input is drained without being
// processed; items already started run to completion. run returns after the
// input is closed and every started item has finished.
type stage[In any] struct {
	name  string
	limit int
	work  func(ctx context.Context, item In) error
	fail  func(err error)
	log   *zap.SugaredLogger
}

func (s *stage[In]) run(ctx context.Context, halt <-chan struct{}, in <-chan In) {
	halted := func() bool {
		select {
		case <-halt:
			return true
		default:
			return false
		}
	}

	var g errgroup.Group
	g.SetLimit(s.limit)

	skipped := 0
	for item := range in {
		if halted() {
			skipped++
			continue
		}

		item := item
		g.Go(func() error {
			if halted() {
				return nil
			}
			if err := s.work(ctx, item); err != nil {
				s.log.Errorw("item failed",
					logger.FieldStage, s.name,
					logger.FieldError, err,
					logger.FieldErrorCode, errors.CodeOf(err).String(),
				)
				s.fail(err)
			}
			return nil
		})
	}

	_ = g.Wait()

	if skipped > 0 {
		s.log.Debugw("skipped items after cancellation",
			logger.FieldStage, s.name,
			logger.FieldCount, skipped,
		)
	}
}
