package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/minimallist/internal/config"
	"github.com/jask/minimallist/internal/database"
	"github.com/jask/minimallist/internal/database/repository"
	"github.com/jask/minimallist/internal/motion"
	"github.com/jask/minimallist/internal/todo"
	"github.com/jask/minimallist/internal/tui"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "minimallist",
		Short:        "A single-screen task list. Shake to clear completed items.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         run,
	}
	f := root.Flags()
	f.String("config", "", "config file (default $HOME/.config/minimallist/config.toml)")
	f.String("store", "", "task store: memory or sqlite (both in-memory)")
	f.String("sensor", "", "accelerometer: auto, iio, simulated or none")
	f.String("device", "", "iio device directory, e.g. /sys/bus/iio/devices/iio:device0")
	f.Duration("interval", 0, "accelerometer poll interval (default 200ms)")
	f.Float64("threshold", 0, "per-axis shake threshold in g (default 2.0)")
	f.String("log", "", "append logs to this file")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "minimallist", version)
		},
	})
	return root
}

func run(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	closeLog, err := setupLogging(cfg.Log.Path)
	if err != nil {
		return fmt.Errorf("log: %w", err)
	}
	defer closeLog()

	store, closeStore, err := openStore(cfg.Store.Backend)
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	defer closeStore()

	sensor := openSensor(cfg.Motion, motion.DefaultIIORoot)

	opts := []tea.ProgramOption{tea.WithReportFocus(), tea.WithMouseCellMotion()}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(tui.New(ctx, cfg.UI, todo.NewController(store), sensor), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// setupLogging keeps log output off the terminal the UI is drawing on.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "minimallist")
	if err != nil {
		return nil, err
	}
	return func() { _ = f.Close() }, nil
}

func openStore(backend string) (todo.Store, func(), error) {
	switch backend {
	case config.BackendSQLite:
		db, err := database.OpenMemory()
		if err != nil {
			return nil, nil, err
		}
		log.Printf("[store] sqlite in-memory")
		return repository.NewTaskRepo(db), closeDB(db), nil
	case config.BackendMemory, "":
		return todo.NewMemoryStore(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", backend)
	}
}

func closeDB(db *sql.DB) func() {
	return func() { _ = db.Close() }
}

// openSensor resolves the configured accelerometer. A missing device is
// never an error: the detector just stays idle.
func openSensor(cfg config.MotionConfig, iioRoot string) tui.Sensor {
	sensor := tui.Sensor{
		Source:    motion.Unavailable{},
		Interval:  cfg.Interval,
		Threshold: cfg.Threshold,
	}
	switch cfg.Source {
	case config.SourceSimulated:
		sim := motion.NewSimulated()
		sensor.Source = motion.NewPoller(sim)
		sensor.Simulator = sim
	case config.SourceIIO, config.SourceAuto:
		dev, err := findIIO(cfg.Device, iioRoot)
		if err != nil {
			if cfg.Source == config.SourceIIO || !errors.Is(err, motion.ErrUnavailable) {
				log.Printf("[motion] no iio accelerometer: %v", err)
			}
			break
		}
		log.Printf("[motion] using %s", dev.Dir)
		sensor.Source = motion.NewPoller(dev)
	}
	return sensor
}

func findIIO(device, root string) (motion.IIO, error) {
	if device == "" {
		return motion.FindIIO(root)
	}
	dev := motion.IIO{Dir: device}
	if !dev.Available() {
		return motion.IIO{}, fmt.Errorf("%s: %w", device, motion.ErrUnavailable)
	}
	return dev, nil
}
