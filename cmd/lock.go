package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/bjornsen/mouselock/internal/config"
	"github.com/bjornsen/mouselock/internal/locker"
	"github.com/bjornsen/mouselock/internal/models"
	"github.com/bjornsen/mouselock/internal/monitor"
	"github.com/bjornsen/mouselock/internal/notify"
	"github.com/bjornsen/mouselock/internal/status"
	"github.com/bjornsen/mouselock/internal/systray"
	"github.com/bjornsen/mouselock/internal/tui"
)

var (
	lockMonitorIdx int
	lockInterval   int
	lockThreshold  int
	noNotify       bool
	noBeep         bool
)

var lockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Lock the cursor to a monitor",
	Long: `Confine the mouse cursor to one monitor until the process exits.

Without --monitor an interactive picker is shown, preselecting the
monitor currently under the cursor. --monitor 0 locks to the monitor
under the cursor without asking.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLock(false)
	},
}

func registerLockFlags(c *cobra.Command) {
	c.Flags().IntVarP(&lockMonitorIdx, "monitor", "m", -1, "Monitor to lock to (0 = monitor under cursor; default: ask)")
	c.Flags().IntVar(&lockInterval, "interval", 0, "Poll interval in milliseconds (default from config)")
	c.Flags().IntVar(&lockThreshold, "threshold", 0, "Edge threshold in pixels (default from config)")
	c.Flags().BoolVar(&noNotify, "no-notify", false, "Disable desktop notifications")
	c.Flags().BoolVar(&noBeep, "no-beep", false, "Disable audible cues")
}

func init() {
	registerLockFlags(lockCmd)
}

// runLock wires config, monitor selection and the locker together. In
// tray mode the locker runs in the background and the tray loop owns
// the main goroutine.
func runLock(tray bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	notify.Enabled = cfg.Notifications && !noNotify
	notify.BeepEnabled = cfg.Beep && !noBeep

	interval := cfg.Interval()
	if lockInterval > 0 {
		interval = time.Duration(lockInterval) * time.Millisecond
	}
	threshold := cfg.EdgeThreshold
	if lockThreshold > 0 {
		threshold = int32(lockThreshold)
	}

	monitors, err := monitor.List()
	if err != nil {
		return fmt.Errorf("failed to list monitors: %w", err)
	}

	idx := lockMonitorIdx
	if idx < 0 && cfg.DefaultMonitor > 0 {
		idx = cfg.DefaultMonitor
	}

	target, err := selectTarget(monitors, idx)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	defer status.Clear()

	start := time.Now()

	var mgr *systray.Manager
	if tray {
		mgr = systray.New(monitors, target)
	}

	lk := locker.New(target, monitors, locker.Options{
		Interval:  interval,
		Threshold: threshold,
		Debug:     debugMode,
		OnEvent:   lockEventHandler(start, mgr),
	})

	if !tray {
		return lk.Run(ctx)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- lk.Run(runCtx)
	}()

	// Forward tray interactions to the locker
	go func() {
		for {
			select {
			case paused := <-mgr.PauseChan():
				if paused {
					lk.Pause()
				} else {
					lk.Resume()
				}
			case mon := <-mgr.TargetChan():
				lk.Retarget(mon)
			case <-mgr.QuitChan():
				cancel()
				systray.Quit()
				return
			case <-runCtx.Done():
				systray.Quit()
				return
			}
		}
	}()

	systray.Run(mgr)
	cancel()
	return <-errCh
}

// selectTarget resolves the initial lock target. idx > 0 selects that
// monitor, idx == 0 the monitor under the cursor, anything else asks
// interactively.
func selectTarget(monitors []models.Monitor, idx int) (models.Monitor, error) {
	cursorOn := 0
	if m, err := monitor.CursorMonitor(monitors); err == nil {
		cursorOn = m.Index
	}

	switch {
	case idx > 0:
		m, ok := monitor.ByIndex(monitors, idx)
		if !ok {
			return models.Monitor{}, fmt.Errorf("invalid monitor number %d (have %d monitors)", idx, len(monitors))
		}
		return m, nil

	case idx == 0:
		if m, ok := monitor.ByIndex(monitors, cursorOn); ok {
			return m, nil
		}
		return monitors[0], nil
	}

	m, ok, err := tui.Pick(monitors, cursorOn)
	if err != nil {
		return models.Monitor{}, err
	}
	if !ok {
		return models.Monitor{}, fmt.Errorf("no monitor selected")
	}
	return m, nil
}

// lockEventHandler reports state transitions to the console, the
// notification daemon, the status file and (when present) the tray.
func lockEventHandler(start time.Time, mgr *systray.Manager) func(locker.Event, models.Monitor) {
	return func(ev locker.Event, target models.Monitor) {
		switch ev {
		case locker.EventEngaged:
			fmt.Printf("Locked to %s\n", target.Label())
			notify.LockEngaged(target)
			notify.Beep(notify.FreqLock)
			writeStatus(models.LockStateLocked, target, start)
		case locker.EventReleaseArmed:
			fmt.Println("Release armed: the lock lifts when the cursor reaches the monitor edge")
		case locker.EventReleased:
			fmt.Println("Released - returning to the locked monitor re-engages the lock")
			notify.LockReleased()
			notify.Beep(notify.FreqRelease)
			writeStatus(models.LockStateReleased, target, start)
		case locker.EventRelocked:
			fmt.Println("Cursor returned; re-locked")
			notify.Beep(notify.FreqLock)
			writeStatus(models.LockStateLocked, target, start)
		case locker.EventRetargeted:
			fmt.Printf("Lock moved to %s\n", target.Label())
			notify.TargetChanged(target)
			writeStatus(models.LockStateLocked, target, start)
		case locker.EventPaused:
			fmt.Println("Lock paused")
			notify.Paused()
			writeStatus(models.LockStatePaused, target, start)
		case locker.EventResumed:
			fmt.Printf("Lock resumed on %s\n", target.Label())
			writeStatus(models.LockStateLocked, target, start)
		}

		if mgr != nil {
			mgr.SetState(trayState(ev), target)
		}
	}
}

func trayState(ev locker.Event) systray.TrayState {
	switch ev {
	case locker.EventReleased:
		return systray.StateReleased
	case locker.EventPaused:
		return systray.StatePaused
	}
	return systray.StateLocked
}

func writeStatus(state models.LockState, m models.Monitor, start time.Time) {
	_ = status.Write(models.LockStatus{
		PID:       os.Getpid(),
		State:     state,
		Monitor:   m,
		StartTime: start,
	})
}
