package main

import (
	"context"
	"errors"
	"os"
	"path"

	"github.com/joho/godotenv"

	"github.com/wolfbio/natube/internal/util"
	"github.com/wolfbio/natube/logger"
	"github.com/wolfbio/natube/pkg/db"
	"github.com/wolfbio/natube/pkg/model"
	"github.com/wolfbio/natube/pkg/table"
	"github.com/wolfbio/natube/pkg/workspace"
	"go.uber.org/zap"
)

var (
	natube_data string
)

func main() {

	// Establish logger
	VERSION := "0.1.0"

	if err := logger.InitLogger(logger.ParseLevel(os.Getenv("NATUBE_LOG"))); err != nil {
		panic(err)
	}

	// Try load env
	dotenvErr := godotenv.Load()

	if dotenvErr != nil {
		logger.Warn("No .env found, using local environment")
	}

	defer logger.Sync() // Make sure that the buffered is flushed.

	natube_data = os.Getenv("NATUBE_DATA")

	if natube_data == "" {
		logger.Warn("No local environment (NATUBE_DATA), using default value (./data)")
		natube_data = "./data"
	}

	if err := util.EnsureDir(path.Join(natube_data, "db")); err != nil {
		logger.Fatal("Cannot create data directory", zap.Error(err))
	}

	snapshot_db := path.Join(natube_data, "db/snapshots.db")

	store, err := db.Open(snapshot_db)
	if err != nil {
		logger.Fatal("Cannot open snapshot database", zap.Error(err))
	}
	defer store.Close()

	logger.Info("Start:", zap.String("Version", VERSION))
	logger.Info("Open snapshot database on", zap.String("DB_LOC", snapshot_db))

	ctx := context.Background()
	ws := restoreOrDefault(ctx, store)

	rm := ws.Current()
	logger.Info("Structure computed",
		zap.Int("domains", len(rm.Structure.Domains)),
		zap.Int("M", rm.Structure.M),
		zap.Float64("M/R", rm.Structure.Ratio),
		zap.Float64("target", rm.Structure.TargetRatio),
		zap.Bool("closed", rm.Structure.Closed),
		zap.Int("strands", len(rm.Trace.Strands)),
		zap.Int("junctions", len(rm.Trace.Junctions)))

	exportDomainTable(ws)
	saveSnapshot(ctx, store, ws)
}

// restoreOrDefault rebuilds the workspace from the latest snapshot, or
// seeds the stock B-DNA nanotube when the store is empty.
func restoreOrDefault(ctx context.Context, store *db.Store) *workspace.Workspace {
	snap, err := store.LoadLatest(ctx)

	if errors.Is(err, db.ErrSnapshotNotFound) {
		logger.Warn("No previous snapshot found, seeding defaults")
		ws, err := workspace.Default(model.BDNA())
		if err != nil {
			logger.Fatal("Cannot seed default workspace", zap.Error(err))
		}
		return ws
	}
	if err != nil {
		logger.Fatal("Cannot load latest snapshot", zap.Error(err))
	}

	logger.Info("Restored snapshot", zap.String("name", snap.Name))

	template, err := table.ToSubunit(snap.Rows)
	if err != nil {
		logger.Fatal("Snapshot rows are inconsistent", zap.Error(err))
	}

	mode := model.AutoDirections()
	if !snap.Auto {
		overrides := make(map[int]model.Direction, len(snap.Rows))
		for _, row := range snap.Rows {
			overrides[row.Index] = row.Direction
		}
		mode = model.ManualDirections(overrides)
	}

	ws, err := workspace.New(model.BDNA(), template, snap.Symmetry, snap.TargetRatio, mode)
	if err != nil {
		logger.Fatal("Cannot rebuild workspace from snapshot", zap.Error(err))
	}
	return ws
}

func exportDomainTable(ws *workspace.Workspace) {
	out := path.Join(natube_data, "domains.csv")
	f, err := os.Create(out)
	if err != nil {
		logger.Error("Cannot create domain table export", zap.Error(err))
		return
	}
	defer f.Close()

	if err := table.Write(f, ws.ExportTable()); err != nil {
		logger.Error("Domain table export failed", zap.Error(err))
		return
	}
	logger.Info("Exported domain table", zap.String("path", out))
}

func saveSnapshot(ctx context.Context, store *db.Store, ws *workspace.Workspace) {
	symmetry, target, auto, rows := ws.State()
	id, err := store.Save(ctx, db.Snapshot{
		Name:        "last_used",
		Symmetry:    symmetry,
		TargetRatio: target,
		Auto:        auto,
		Rows:        rows,
	})
	if err != nil {
		logger.Error("Snapshot save failed", zap.Error(err))
		return
	}
	logger.Info("Saved snapshot", zap.String("uuid", id))
}
