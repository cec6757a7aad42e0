package game

import (
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// EventSink receives the events of each completed tick. Implementations must
// not block: the runner calls them from the tick goroutine.
type EventSink interface {
	HandleEvents(events []Event)
}

// MetricsSink receives per-tick gauges. The concrete Prometheus wiring lives
// outside the simulation so this package stays transport-free.
type MetricsSink interface {
	ObserveTick(d time.Duration)
	SetAlive(n int)
	SetProjectiles(n int)
	CountEvents(n int)
}

// Runner drives a World on a fixed tick and owns all mutation of it. Reads
// from other goroutines go through the atomically published snapshot, never
// through the world itself.
type Runner struct {
	mu    sync.Mutex
	world *World

	tickRate int
	running  bool
	ticker   *time.Ticker
	stopChan chan struct{}
	done     chan struct{}

	snapshot atomic.Pointer[Snapshot]

	sinks   []EventSink
	metrics MetricsSink
}

// NewRunner wraps a world with a tick loop at the given rate (ticks/second).
func NewRunner(world *World, tickRate int) *Runner {
	if tickRate <= 0 {
		tickRate = 30
	}
	r := &Runner{
		world:    world,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
	snap := world.Snapshot()
	r.snapshot.Store(&snap)
	return r
}

// AddSink registers an event consumer. Call before Start.
func (r *Runner) AddSink(s EventSink) { r.sinks = append(r.sinks, s) }

// SetMetrics registers the metrics consumer. Call before Start.
func (r *Runner) SetMetrics(m MetricsSink) { r.metrics = m }

// Start launches the tick loop.
func (r *Runner) Start() {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return
	}
	r.running = true
	r.mu.Unlock()

	r.ticker = time.NewTicker(time.Second / time.Duration(r.tickRate))
	log.Printf("🎮 match started: level=%s tick_rate=%d", r.world.level, r.tickRate)

	go func() {
		for {
			select {
			case <-r.ticker.C:
				r.tick()
			case <-r.stopChan:
				return
			}
		}
	}()
}

// Stop halts the tick loop. Idempotent.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.running {
		return
	}
	r.running = false
	r.ticker.Stop()
	close(r.stopChan)
}

// Done is closed when the match reaches its terminal phase.
func (r *Runner) Done() <-chan struct{} { return r.done }

// Snapshot returns the most recently published world snapshot. Lock-free.
func (r *Runner) Snapshot() *Snapshot { return r.snapshot.Load() }

// QueueIntent forwards player input to the world for the next tick.
func (r *Runner) QueueIntent(actorID string, intent Intent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.world.QueueIntent(actorID, intent)
}

// AddActor joins an actor mid-loop.
func (r *Runner) AddActor(id, name string, controller ControllerKind, team Team) (*Actor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.world.AddActor(id, name, controller, team)
}

func (r *Runner) tick() {
	start := time.Now()
	dt := 1.0 / float64(r.tickRate)

	r.mu.Lock()
	wasDone := r.world.Match().Done()
	events := r.world.Step(dt)
	snap := r.world.Snapshot()
	nowDone := r.world.Match().Done()
	r.mu.Unlock()

	r.snapshot.Store(&snap)

	for _, s := range r.sinks {
		s.HandleEvents(events)
	}
	for _, ev := range events {
		switch ev.Kind {
		case EventDeath:
			log.Printf("💀 %s fragged %s", ev.Actor, ev.Target)
		case EventMatchEnd:
			log.Printf("🏆 match over: winner=%s", ev.Actor)
		}
	}

	if r.metrics != nil {
		alive := 0
		for i := range snap.Actors {
			if snap.Actors[i].State != StateDead {
				alive++
			}
		}
		r.metrics.ObserveTick(time.Since(start))
		r.metrics.SetAlive(alive)
		r.metrics.SetProjectiles(len(snap.Projectiles))
		r.metrics.CountEvents(len(events))
	}

	if nowDone && !wasDone {
		close(r.done)
	}
}
