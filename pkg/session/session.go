package session

import (
	"context"
	"sync"

	"github.com/versescope/versescope/pkg/catalog"
	"github.com/versescope/versescope/pkg/fragments"
	"github.com/versescope/versescope/pkg/reference"
)

// Fetcher retrieves and decodes the fragments of ref for every translation in sel.
type Fetcher interface {
	Fetch(ctx context.Context, sel catalog.Selection, ref reference.Reference) ([]fragments.TextFragment, error)
}

// Logger abstracts logging so callers can use logrus, stdlib log, or any
// other logger that satisfies this interface.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// nopLogger silently discards all messages.
type nopLogger struct{}

func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Debugf(string, ...interface{}) {}

// Options tunes a Controller.
type Options struct {
	// DiscardStale drops responses to any fetch but the most recently issued one.
	// When false, the last response to arrive wins whichever request it answers.
	DiscardStale bool

	Log Logger // optional; nil = no logging

	// OnTransition is called after every state change while transitions are
	// serialized, so it sees them in order. It must not call back into the Controller.
	OnTransition func(from, to State)
}

// Controller owns the session state and issues fetches. All transitions are
// serialized; fetches run on their own goroutines and are never cancelled.
type Controller struct {
	ctx     context.Context
	fetcher Fetcher
	opts    Options
	log     Logger

	mu         sync.Mutex
	state      State
	generation uint64
	inflight   sync.WaitGroup
}

// New returns a Controller in Idle with the given selection and reference.
// ctx bounds every fetch the controller issues.
func New(ctx context.Context, fetcher Fetcher, sel catalog.Selection, ref reference.Reference, opts Options) *Controller {
	log := opts.Log
	if log == nil {
		log = nopLogger{}
	}
	return &Controller{
		ctx:     ctx,
		fetcher: fetcher,
		opts:    opts,
		log:     log,
		state:   State{Kind: Idle, Selection: sel, Reference: ref},
	}
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// RequestFetch moves to Fetching from any state and issues one fetch for the
// current selection and reference. Earlier fetches keep running.
func (c *Controller) RequestFetch() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startFetchLocked(c.state.Selection, c.state.Reference)
}

// ChangeSelection replaces the selection. Idle and Ready keep their shape
// (a Ready state keeps its old fragments); Fetching re-issues the fetch.
func (c *Controller) ChangeSelection(sel catalog.Selection) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.state
	next.Selection = sel
	c.replaceLocked(next)
}

// ChangeReference replaces the reference, with the same rules as ChangeSelection.
func (c *Controller) ChangeReference(ref reference.Reference) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.state
	next.Reference = ref
	c.replaceLocked(next)
}

// Wait blocks until every issued fetch has delivered its result.
func (c *Controller) Wait() {
	c.inflight.Wait()
}

func (c *Controller) replaceLocked(next State) {
	if next.Kind == Fetching {
		c.startFetchLocked(next.Selection, next.Reference)
		return
	}
	c.transitionLocked(next)
}

func (c *Controller) startFetchLocked(sel catalog.Selection, ref reference.Reference) {
	c.generation++
	gen := c.generation

	c.transitionLocked(State{Kind: Fetching, Selection: sel, Reference: ref})
	c.log.Infof("Fetching %s for %s", ref, sel.ModulesParam())

	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		frags, err := c.fetcher.Fetch(c.ctx, sel, ref)
		c.deliver(gen, frags, err)
	}()
}

// deliver applies a fetch result to whatever the state is now.
func (c *Controller) deliver(gen uint64, frags []fragments.TextFragment, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.opts.DiscardStale && gen != c.generation {
		c.log.Debugf("Discarding response of superseded fetch #%d (latest #%d)", gen, c.generation)
		return
	}

	next := State{Selection: c.state.Selection, Reference: c.state.Reference}
	if err != nil {
		c.log.Warnf("Fetch #%d failed: %v", gen, err)
		next.Kind = Idle
		next.Err = err
	} else {
		next.Kind = Ready
		next.Fragments = frags
	}
	c.transitionLocked(next)
}

func (c *Controller) transitionLocked(next State) {
	prev := c.state
	c.state = next
	c.log.Debugf("Session %s -> %s (%s, %s)", prev.Kind, next.Kind, next.Reference, next.Selection.ModulesParam())
	if c.opts.OnTransition != nil {
		c.opts.OnTransition(prev, next)
	}
}
