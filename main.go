package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"go.uber.org/zap"

	"github.com/iburimskiy/pie-chart/internal/chart"
	"github.com/iburimskiy/pie-chart/internal/config"
	"github.com/iburimskiy/pie-chart/internal/game"
	"github.com/iburimskiy/pie-chart/internal/logger"
	"github.com/iburimskiy/pie-chart/internal/snapshot"
)

func main() {
	var (
		modeFlag     = flag.String("mode", "ring", "chart mode: ring or pie")
		snapshotPath = flag.String("snapshot", "", "write the settled chart to this PNG file and exit")
		snapshotSize = flag.Int("size", config.SnapshotSize, "snapshot width and height in pixels")
		logLevel     = flag.String("log-level", "info", "log level: debug, info, warn, error")
		logJSON      = flag.Bool("log-json", false, "log JSON instead of console text")
	)
	flag.Parse()

	log, err := logger.New(logger.Config{Level: *logLevel, EnableJSON: *logJSON})
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	mode, err := chart.ParseMode(*modeFlag)
	if err != nil {
		log.Fatal("bad -mode", zap.Error(err))
	}
	spec := config.DemoSpec(mode)

	if *snapshotPath != "" {
		if err := snapshot.SavePNG(*snapshotPath, spec, snapshot.Options{
			Size:       *snapshotSize,
			Background: config.BackgroundTop,
			LabelColor: config.LabelColor,
		}); err != nil {
			log.Fatal("snapshot failed", zap.Error(err))
		}
		log.Info("snapshot written", zap.String("path", *snapshotPath), zap.Stringer("mode", mode))
		return
	}

	g, err := game.New(spec, log)
	if err != nil {
		showError(log, err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)

	log.Info("starting", zap.Stringer("mode", mode), zap.Int("slices", len(spec.Slices)))
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal("run game", zap.Error(err))
	}
}

// showError reports a start-up failure in a native dialog, falling back to
// the log when no dialog can be shown.
func showError(log *zap.Logger, err error) {
	log.Error("cannot draw chart", zap.Error(err))
	if derr := zenity.Error(err.Error(), zenity.Title("Pie Chart"), zenity.ErrorIcon); derr != nil {
		log.Warn("error dialog unavailable", zap.Error(derr))
	}
}
