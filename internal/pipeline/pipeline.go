// Package pipeline moves source files through three concurrent stages:
// read, generate and write. Each stage has its own worker limit and the
// stages are joined by unbounded queues, so one file can be generating while
// the previous file's units are being written.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/toyz/scaffold/internal/config"
	"github.com/toyz/scaffold/internal/errors"
	"github.com/toyz/scaffold/internal/generator"
	"github.com/toyz/scaffold/internal/logger"
	"github.com/toyz/scaffold/internal/models"
	"github.com/toyz/scaffold/internal/parser"
	"github.com/toyz/scaffold/internal/utils/fileops"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// sourceText is a file read by the read stage
type sourceText struct {
	path string
	text []byte
}

// renderedUnit is one generated test class waiting to be written
type renderedUnit struct {
	sourcePath  string
	sourceClass string
	text        string
}

// Pipeline runs the generator over a fixed configuration
type Pipeline struct {
	cfg       *config.Config
	fileOps   *fileops.FileOps
	generator generator.TestGenerator
	names     parser.ClassNameExtractor
	log       *zap.SugaredLogger
}

// Option customizes a Pipeline
type Option func(*Pipeline)

// WithFs runs the pipeline on fs instead of the OS filesystem
func WithFs(fs afero.Fs) Option {
	return func(p *Pipeline) {
		p.fileOps = fileops.NewFileOps(fs)
	}
}

// WithGenerator replaces the generate stage's work
func WithGenerator(g generator.TestGenerator) Option {
	return func(p *Pipeline) {
		p.generator = g
	}
}

// WithClassNameExtractor replaces how the write stage names output files
func WithClassNameExtractor(e parser.ClassNameExtractor) Option {
	return func(p *Pipeline) {
		p.names = e
	}
}

// WithLogger sets the pipeline logger
func WithLogger(l *zap.SugaredLogger) Option {
	return func(p *Pipeline) {
		p.log = l
	}
}

// New creates a pipeline for cfg. The configuration is validated here.
func New(cfg *config.Config, opts ...Option) (*Pipeline, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Pipeline{cfg: cfg}
	for _, opt := range opts {
		opt(p)
	}

	if p.fileOps == nil {
		p.fileOps = fileops.NewOsFileOps()
	}
	if p.names == nil {
		p.names = parser.NewCSharpParser()
	}
	if p.generator == nil {
		g, err := generator.NewGenerator()
		if err != nil {
			return nil, err
		}
		p.generator = g
	}
	if p.log == nil {
		p.log = logger.ComponentLogger(logger.ComponentPipeline)
	}

	return p, nil
}

// Config returns the pipeline configuration
func (p *Pipeline) Config() *config.Config {
	return p.cfg
}

// Start begins processing every configured input and returns immediately
func (p *Pipeline) Start(ctx context.Context) *Completion {
	c := newCompletion()
	runID := uuid.NewString()
	go func() {
		summary, err := p.run(ctx, runID)
		c.resolve(summary, err)
	}()
	return c
}

// Run processes every configured input and waits for the result
func (p *Pipeline) Run(ctx context.Context) (Summary, error) {
	c := p.Start(ctx)
	err := c.Wait()
	return c.Summary(), err
}

func (p *Pipeline) run(parent context.Context, runID string) (Summary, error) {
	tracker := newSummaryTracker(runID)
	log := p.log.With(logger.FieldRunID, runID)

	if err := p.fileOps.EnsureDir(p.cfg.OutputDir); err != nil {
		return tracker.snapshot(), err
	}

	// halt stops new items from starting; started items keep running on
	// the caller's context so they can finish cleanly
	halt, cancel := context.WithCancel(parent)
	defer cancel()

	failures := errors.NewMultipleErrors()
	fail := func(err error) {
		failures.AddError(err)
		cancel()
	}

	paths := make(chan string, len(p.cfg.Inputs))
	for _, path := range p.cfg.Inputs {
		paths <- path
	}
	close(paths)

	texts := newQueue[sourceText]()
	units := newQueue[renderedUnit]()
	claims := newOutputClaims(p.cfg.OnCollision)

	read := &stage[string]{
		name:  logger.ComponentRead,
		limit: p.cfg.Parallelism.Read,
		log:   log.Named(logger.ComponentRead),
		fail:  fail,
		work: func(ctx context.Context, path string) error {
			content, err := p.fileOps.ReadFile(path)
			if err != nil {
				return err
			}
			tracker.read()
			texts.Push(sourceText{path: path, text: bytes.TrimPrefix(content, utf8BOM)})
			return nil
		},
	}

	generate := &stage[sourceText]{
		name:  logger.ComponentGenerate,
		limit: p.cfg.Parallelism.Generate,
		log:   log.Named(logger.ComponentGenerate),
		fail:  fail,
		work: func(ctx context.Context, src sourceText) error {
			return p.generator.Generate(ctx, src.path, src.text, func(unit *models.Unit, text string) error {
				tracker.generated()
				units.Push(renderedUnit{
					sourcePath:  unit.SourcePath,
					sourceClass: unit.SourceClass,
					text:        text,
				})
				return nil
			})
		},
	}

	writeLog := log.Named(logger.ComponentWrite)
	write := &stage[renderedUnit]{
		name:  logger.ComponentWrite,
		limit: p.cfg.Parallelism.Write,
		log:   writeLog,
		fail:  fail,
		work: func(ctx context.Context, unit renderedUnit) error {
			path, err := p.write(ctx, claims, tracker, unit)
			if err != nil {
				return err
			}
			tracker.wrote(path)
			writeLog.Debugw("test class written",
				logger.FieldPath, unit.sourcePath,
				logger.FieldClass, unit.sourceClass,
				logger.FieldOutput, path,
			)
			return nil
		},
	}

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		defer texts.Close()
		read.run(parent, halt.Done(), paths)
	}()
	go func() {
		defer wg.Done()
		defer units.Close()
		generate.run(parent, halt.Done(), texts.Out())
	}()
	go func() {
		defer wg.Done()
		write.run(parent, halt.Done(), units.Out())
	}()
	wg.Wait()

	summary := tracker.snapshot()
	if err := failures.ErrorOrNil(); err != nil {
		log.Errorw("run failed", logger.FieldCount, failures.Count())
		return summary, err
	}
	if err := parent.Err(); err != nil {
		return summary, err
	}

	log.Infow("run complete",
		logger.FieldCount, summary.FilesWritten,
		logger.FieldDurationMS, summary.Duration.Milliseconds(),
	)
	return summary, nil
}

// write names the unit after its first class declaration and persists it
func (p *Pipeline) write(ctx context.Context, claims *outputClaims, tracker *summaryTracker, unit renderedUnit) (string, error) {
	className, err := p.names.FirstClassName(ctx, []byte(unit.text))
	if err != nil {
		return "", err
	}

	path := filepath.Join(p.cfg.OutputDir, p.cfg.OutputFileName(className))
	previous, err := claims.claim(path, className, unit.sourcePath)
	if err != nil {
		return "", err
	}
	if previous != "" {
		tracker.overwrote(path)
		p.log.Warnw("overwriting test class generated earlier in this run",
			logger.FieldOutput, path,
			logger.FieldClass, className,
			logger.FieldPath, unit.sourcePath,
			"previous", previous,
		)
	}

	if err := p.fileOps.WriteFile(path, []byte(unit.text)); err != nil {
		return "", err
	}
	return path, nil
}

// outputClaims records which source produced each output path in one run
type outputClaims struct {
	policy config.CollisionPolicy
	mu     sync.Mutex
	owners map[string]string
}

func newOutputClaims(policy config.CollisionPolicy) *outputClaims {
	return &outputClaims{policy: policy, owners: make(map[string]string)}
}

// claim registers path for source. It returns the previous owner when the
// path was already claimed and the policy allows overwriting.
func (c *outputClaims) claim(path, className, source string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	previous, taken := c.owners[path]
	if taken && c.policy == config.CollisionError {
		collision := errors.NewCollisionError(path, className)
		collision.WithContext("source", source).WithContext("previous_source", previous)
		return "", collision
	}
	c.owners[path] = source
	if taken {
		return previous, nil
	}
	return "", nil
}
