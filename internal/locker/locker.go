// Package locker implements the confinement state machine: a polling
// loop that keeps the cursor clipped to one monitor, arms an
// edge-triggered release on the release hotkey, and retargets the lock
// on the switch hotkey.
package locker

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/bjornsen/mouselock/internal/clip"
	"github.com/bjornsen/mouselock/internal/geometry"
	"github.com/bjornsen/mouselock/internal/input"
	"github.com/bjornsen/mouselock/internal/models"
	"github.com/bjornsen/mouselock/internal/monitor"
)

// State is the lock condition of the state machine.
type State int

const (
	StateLocked State = iota
	StateReleased
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateLocked:
		return "locked"
	case StateReleased:
		return "released"
	case StatePaused:
		return "paused"
	}
	return "unknown"
}

// Event describes a transition reported through Options.OnEvent. The
// callback runs synchronously on the loop goroutine; the reported
// monitor is the lock target after the transition.
type Event int

const (
	EventEngaged     Event = iota // initial clip applied
	EventReleaseArmed             // release key pressed, waiting for the edge
	EventReleased                 // cursor reached the edge, clip removed
	EventRelocked                 // cursor re-entered the target, clip re-applied
	EventRetargeted               // lock moved to another monitor
	EventPaused
	EventResumed
)

// Defaults match the polling rate and edge margin the tool has always used.
const (
	DefaultInterval  = 16 * time.Millisecond
	DefaultThreshold = 1
)

// Options configures a Locker. Zero-value dependencies fall back to the
// platform implementations.
type Options struct {
	Clipper   clip.Clipper
	Cursor    func() (models.CursorPosition, error)
	Keys      input.Sampler
	Interval  time.Duration
	Threshold int32
	Debug     bool
	OnEvent   func(Event, models.Monitor)
}

type commandKind int

const (
	cmdPause commandKind = iota
	cmdResume
	cmdRetarget
)

type command struct {
	kind    commandKind
	monitor models.Monitor
}

// Locker confines the cursor to one monitor. All state is owned by the
// Run goroutine; control from other goroutines goes through the command
// channel.
type Locker struct {
	clipper  clip.Clipper
	cursor   func() (models.CursorPosition, error)
	keys     input.Sampler
	monitors []models.Monitor
	opts     Options

	target         models.Monitor
	state          State
	clipped        bool
	releasePending bool
	prevRelease    bool
	prevSwitch     bool

	commands chan command

	lastClipErr time.Time
}

// New creates a Locker targeting the given monitor. monitors is the full
// enumeration the switch hotkey chooses from.
func New(target models.Monitor, monitors []models.Monitor, opts Options) *Locker {
	if opts.Clipper == nil {
		opts.Clipper = clip.New()
	}
	if opts.Cursor == nil {
		opts.Cursor = monitor.CursorPosition
	}
	if opts.Keys == nil {
		opts.Keys = input.New()
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Threshold <= 0 {
		opts.Threshold = DefaultThreshold
	}

	return &Locker{
		clipper:  opts.Clipper,
		cursor:   opts.Cursor,
		keys:     opts.Keys,
		monitors: monitors,
		opts:     opts,
		target:   target,
		state:    StateLocked,
		commands: make(chan command, 4),
	}
}

// Pause lifts the clip and suspends the state machine until Resume.
func (l *Locker) Pause() {
	l.commands <- command{kind: cmdPause}
}

// Resume re-applies the clip to the current target.
func (l *Locker) Resume() {
	l.commands <- command{kind: cmdResume}
}

// Retarget moves the lock to the given monitor.
func (l *Locker) Retarget(m models.Monitor) {
	l.commands <- command{kind: cmdRetarget, monitor: m}
}

// Run applies the initial clip and polls until ctx is cancelled. The
// clip is always removed on the way out so the cursor is never left
// confined after the process exits.
func (l *Locker) Run(ctx context.Context) error {
	if err := l.engage(); err != nil {
		return err
	}
	defer l.clipper.Clear()

	ticker := time.NewTicker(l.opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case cmd := <-l.commands:
			l.handleCommand(cmd)
		case <-ticker.C:
			l.tick()
		}
	}
}

// engage applies the initial clip. A failure here is fatal: unlike the
// per-tick calls there is no prior working state to fall back to.
func (l *Locker) engage() error {
	if err := l.clipper.Apply(l.target.Rect); err != nil {
		return fmt.Errorf("initial lock failed: %w", err)
	}
	l.clipped = true
	l.state = StateLocked
	l.emit(EventEngaged)
	return nil
}

// tick runs one step of the state machine. Errors never escape: a
// failed OS call leaves the logical state untouched and is retried on
// the next tick.
func (l *Locker) tick() {
	if l.state == StatePaused {
		return
	}

	pt, err := l.cursor()
	if err != nil {
		l.debugf("cursor position unavailable: %v", err)
		return
	}

	keys := l.keys.Sample()

	// Re-assert the clip every tick while locked with no release
	// pending: the region is desktop-global and another process or a
	// focus change (alt-tab) may have cleared it since last tick.
	if l.state == StateLocked && l.clipped && !l.releasePending {
		if err := l.clipper.Apply(l.target.Rect); err != nil {
			l.clipErr(err)
		}
	}

	// Rising edge on the release key arms a deferred release; the clip
	// stays until the cursor actually reaches the monitor edge, so an
	// accidental tap mid-screen never drops the confinement there.
	if keys.Release && !l.prevRelease && l.state == StateLocked && !l.releasePending {
		l.releasePending = true
		l.emit(EventReleaseArmed)
	}
	l.prevRelease = keys.Release

	switch l.state {
	case StateLocked:
		if l.releasePending && geometry.AtEdge(pt, l.target.Rect, l.opts.Threshold) {
			if err := l.clipper.Clear(); err != nil {
				l.clipErr(err)
				break
			}
			l.clipped = false
			l.releasePending = false
			l.state = StateReleased
			l.emit(EventReleased)
		}

	case StateReleased:
		if l.target.Rect.Contains(pt) {
			if err := l.clipper.Apply(l.target.Rect); err != nil {
				l.clipErr(err)
				break
			}
			l.clipped = true
			l.state = StateLocked
			l.emit(EventRelocked)
		}
	}

	// Rising edge on the switch key retargets to the monitor under the
	// cursor. Pressing it on the monitor already locked is a no-op: no
	// state change and no extra OS call.
	if keys.Switch && !l.prevSwitch {
		if m, ok := geometry.Locate(pt, l.monitors); ok && m.Index != l.target.Index {
			l.retarget(m)
		}
	}
	l.prevSwitch = keys.Switch
}

func (l *Locker) retarget(m models.Monitor) {
	if err := l.clipper.Apply(m.Rect); err != nil {
		l.clipErr(err)
		return
	}
	l.target = m
	l.state = StateLocked
	l.clipped = true
	l.releasePending = false
	l.emit(EventRetargeted)
}

func (l *Locker) handleCommand(cmd command) {
	switch cmd.kind {
	case cmdPause:
		if l.state == StatePaused {
			return
		}
		if err := l.clipper.Clear(); err != nil {
			l.clipErr(err)
			return
		}
		l.clipped = false
		l.releasePending = false
		l.state = StatePaused
		l.emit(EventPaused)

	case cmdResume:
		if l.state != StatePaused {
			return
		}
		if err := l.clipper.Apply(l.target.Rect); err != nil {
			l.clipErr(err)
			return
		}
		l.clipped = true
		l.state = StateLocked
		l.emit(EventResumed)

	case cmdRetarget:
		if cmd.monitor.Index == l.target.Index && l.state == StateLocked {
			return
		}
		l.retarget(cmd.monitor)
	}
}

func (l *Locker) emit(ev Event) {
	if l.opts.OnEvent != nil {
		l.opts.OnEvent(ev, l.target)
	}
}

// clipErr reports transient clip failures at most once per second; the
// state machine retries on every tick regardless.
func (l *Locker) clipErr(err error) {
	if time.Since(l.lastClipErr) < time.Second {
		return
	}
	l.lastClipErr = time.Now()
	fmt.Fprintf(os.Stderr, "clip call failed (will retry): %v\n", err)
}

func (l *Locker) debugf(format string, args ...any) {
	if !l.opts.Debug {
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
