package planner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/jumpgrid/gridgraph"
	"github.com/katalvlaran/jumpgrid/jps"
	"github.com/katalvlaran/jumpgrid/pathcache"
)

var (
	// ErrNilGrid indicates a nil *gridgraph.Grid.
	ErrNilGrid = errors.New("planner: grid is nil")

	// ErrBadWorkers indicates a worker count below 1.
	ErrBadWorkers = errors.New("planner: workers must be at least 1")
)

// Planner answers path queries on one grid. Safe for concurrent use.
type Planner struct {
	grid   *gridgraph.Grid
	labels []int
	fp     string

	cache pathcache.Cache
	ttl   time.Duration

	searchOpts []jps.Option
	pool       sync.Pool

	workers int
	snap    bool
	logger  *log.Logger
}

// Option configures a Planner.
type Option func(*Planner)

// WithCache stores answers in c for ttl (0 = no expiry).
func WithCache(c pathcache.Cache, ttl time.Duration) Option {
	return func(p *Planner) {
		if c == nil {
			c = pathcache.NewNull()
		}
		p.cache = c
		p.ttl = ttl
	}
}

// WithWorkers bounds Batch parallelism. Panics with ErrBadWorkers for n < 1.
func WithWorkers(n int) Option {
	return func(p *Planner) {
		if n < 1 {
			panic(ErrBadWorkers.Error())
		}
		p.workers = n
	}
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(p *Planner) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithSearchOptions passes options to every pooled jps.Searcher.
func WithSearchOptions(opts ...jps.Option) Option {
	return func(p *Planner) {
		p.searchOpts = append(p.searchOpts, opts...)
	}
}

// WithSnap moves blocked or off-map endpoints to the nearest walkable cell
// (gridgraph.Grid.Nearest) instead of rejecting them.
func WithSnap(on bool) Option {
	return func(p *Planner) { p.snap = on }
}

// New builds a Planner for g, labelling its components up front.
func New(g *gridgraph.Grid, opts ...Option) (*Planner, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	p := &Planner{
		grid:    g,
		fp:      g.Fingerprint(),
		cache:   pathcache.NewNull(),
		workers: 1,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.labels, _ = g.Labels()

	// Fail on bad search options here rather than inside the pool.
	first, err := jps.NewSearcher(g, p.searchOpts...)
	if err != nil {
		return nil, err
	}
	p.pool.New = func() any {
		s, _ := jps.NewSearcher(g, p.searchOpts...)
		return s
	}
	p.pool.Put(first)

	return p, nil
}

// Grid returns the planner's grid.
func (p *Planner) Grid() *gridgraph.Grid { return p.grid }

// Query is one from→to request.
type Query struct {
	ID       string
	From, To gridgraph.Coord
}

// Answer is the outcome of one query. From and To are the endpoints actually
// searched, after snapping.
type Answer struct {
	ID       string
	From, To gridgraph.Coord
	Path     jps.Path
	Cost     float64
	Found    bool
	Cached   bool
	Stats    jps.Stats
	Err      error
}

// Find answers one query. No-path outcomes return an error matching
// jps.ErrNoPath together with the Answer describing them.
func (p *Planner) Find(ctx context.Context, from, to gridgraph.Coord) (Answer, error) {
	ans := p.find(ctx, from, to)

	return ans, ans.Err
}

func (p *Planner) find(ctx context.Context, from, to gridgraph.Coord) Answer {
	if p.snap {
		from, to = p.snapTo(from), p.snapTo(to)
	}
	ans := Answer{From: from, To: to}

	if !p.grid.CanEnter(from) {
		ans.Err = fmt.Errorf("%w: %w: %v", jps.ErrNoPath, jps.ErrStartInvalid, from)
		return ans
	}
	if !p.grid.CanEnter(to) {
		ans.Err = fmt.Errorf("%w: %w: %v", jps.ErrNoPath, jps.ErrEndInvalid, to)
		return ans
	}
	if p.labels[p.grid.Index(from)] != p.labels[p.grid.Index(to)] {
		p.logger.Debug("different components", "from", from, "to", to)
		ans.Err = unreachable(from, to)
		return ans
	}

	key := pathcache.Key(p.fp, from, to)
	if e, ok, err := pathcache.Lookup(ctx, p.cache, key); err != nil {
		p.logger.Warn("cache lookup failed", "err", err)
	} else if ok {
		ans.Cached = true
		if !e.Found {
			ans.Err = unreachable(from, to)
			return ans
		}
		ans.Found, ans.Path, ans.Cost = true, e.Path, e.Cost
		p.logger.Debug("cache hit", "from", from, "to", to)
		return ans
	}

	s := p.pool.Get().(*jps.Searcher)
	res, err := s.FindContext(ctx, from, to)
	p.pool.Put(s)

	ans.Stats = res.Stats
	switch {
	case err == nil:
		ans.Found, ans.Path, ans.Cost = true, res.Path, res.Cost
		p.store(ctx, key, pathcache.Entry{Found: true, Path: res.Path, Cost: res.Cost})
	case errors.Is(err, jps.ErrUnreachable):
		ans.Err = err
		p.store(ctx, key, pathcache.Entry{Found: false})
	default:
		ans.Err = err
	}
	p.logger.Debug("searched",
		"from", from, "to", to,
		"found", ans.Found, "cost", ans.Cost,
		"expanded", res.Stats.Expanded, "touched", res.Stats.Touched,
	)

	return ans
}

func (p *Planner) store(ctx context.Context, key string, e pathcache.Entry) {
	if err := pathcache.Store(ctx, p.cache, key, e, p.ttl); err != nil {
		p.logger.Warn("cache store failed", "err", err)
	}
}

func (p *Planner) snapTo(c gridgraph.Coord) gridgraph.Coord {
	if p.grid.CanEnter(c) {
		return c
	}
	if n, ok := p.grid.Nearest(c); ok {
		p.logger.Debug("snapped endpoint", "from", c, "to", n)
		return n
	}

	return c
}

func unreachable(from, to gridgraph.Coord) error {
	return fmt.Errorf("%w: %w: %v→%v", jps.ErrNoPath, jps.ErrUnreachable, from, to)
}
