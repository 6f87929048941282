package daemon

import (
	"context"
	"log/slog"
	"time"

	"soundboard/internal/board"
	"soundboard/internal/catalog"
	"soundboard/internal/config"
	"soundboard/internal/deps"
	"soundboard/internal/logging"
	"soundboard/internal/media/ffprobe"
	"soundboard/internal/playback"
	"soundboard/internal/upload"
)

// Runtime is the board plus the resources the daemon must release on shutdown.
type Runtime struct {
	Board *board.Board
	Spool *upload.Spool
}

// Close stops playback and removes the session's uploads.
func (r *Runtime) Close() error {
	if r == nil {
		return nil
	}
	var err error
	if r.Board != nil {
		err = r.Board.Close()
	}
	if r.Spool != nil {
		if spoolErr := r.Spool.Close(); err == nil {
			err = spoolErr
		}
	}
	return err
}

// Boot loads the catalog manifest, probes every clip, and assembles the board.
// A missing manifest yields an empty board and a warning.
func Boot(ctx context.Context, cfg *config.Config, base *slog.Logger) (*Runtime, error) {
	logger := logging.NewComponentLogger(base, "boot")

	clips, exists, err := catalog.LoadManifest(cfg.Paths.CatalogPath, cfg.Paths.ClipsDir)
	if err != nil {
		return nil, err
	}
	if !exists {
		logging.WarnWithContext(logger, "catalog manifest not found", "catalog_missing",
			logging.String("path", cfg.Paths.CatalogPath),
			logging.String(logging.FieldImpact, "board starts empty; uploads still work"),
			logging.String(logging.FieldErrorHint, "create the manifest or set paths.catalog_path"),
		)
	}
	cat, err := catalog.FromClips(clips)
	if err != nil {
		return nil, err
	}

	playerBinary, playerArgs := cfg.PlayerCommand()
	prober := ffprobe.Prober{
		Binary:  deps.ResolveCompanion(cfg.Playback.FFprobeBinary, playerBinary),
		Timeout: time.Duration(cfg.Playback.ProbeTimeoutSeconds) * time.Second,
	}

	registry := playback.NewRegistry(prober, base)
	for _, clip := range clips {
		registry.Register(ctx, clip.Entry.ID, clip.Path)
	}

	player := playback.NewExecPlayer(playerBinary, playerArgs, base)
	tracker := playback.NewTracker(registry, player, playback.RealClock(), playback.Windows{
		MaxVisual:      time.Duration(cfg.Playback.MaxVisualMillis) * time.Millisecond,
		FallbackVisual: time.Duration(cfg.Playback.FallbackVisualMillis) * time.Millisecond,
		PressPulse:     time.Duration(cfg.Playback.PressPulseMillis) * time.Millisecond,
	}, base)

	spool, err := upload.Open(cfg.Paths.UploadDir, upload.Options{
		MaxBytes:          cfg.Upload.MaxBytes,
		AllowedExtensions: cfg.Upload.AllowedExtensions,
		Prober:            prober,
	}, base)
	if err != nil {
		_ = tracker.Close()
		return nil, err
	}

	b := board.New(board.Options{
		Catalog: cat,
		Tracker: tracker,
		Storage: spool,
		Logger:  base,
	})
	logger.Info("board ready",
		logging.String(logging.FieldEventType, "board_ready"),
		logging.Int("sounds", cat.Len()),
		logging.String("catalog", cfg.Paths.CatalogPath),
		logging.String("upload_dir", spool.Dir()),
	)
	return &Runtime{Board: b, Spool: spool}, nil
}
