// Package audit drives one end-to-end run: read the archive, parse it,
// derive badges, write the report folder and optionally record and diff
// a snapshot.
package audit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"instagram_audit/internal/badges"
	"instagram_audit/internal/parser"
	"instagram_audit/internal/report"
	"instagram_audit/internal/store"
	"instagram_audit/internal/utils"

	"go.uber.org/zap"
)

// Options are the resolved CLI inputs for one run.
type Options struct {
	ArchivePath string
	OutputRoot  string
	// BadgeNames selects which per-badge username lists to emit; empty
	// means all of them.
	BadgeNames []string
	// DBPath, when set, enables snapshot recording and diffing.
	DBPath string
	// Strict makes a no-minimal-data parse an error after the report is
	// written, so the diagnostics are still on disk.
	Strict bool
}

// Run executes one audit. The report folder is datestamped under
// OutputRoot and its path is printed on success.
func Run(opts Options) error {
	logger, loggerErr := zap.NewProduction()
	if loggerErr != nil {
		return fmt.Errorf("init logger: %w", loggerErr)
	}
	defer logger.Sync()

	archiveBytes, readErr := os.ReadFile(opts.ArchivePath)
	if readErr != nil {
		return fmt.Errorf("read archive %q: %w", opts.ArchivePath, readErr)
	}

	result, parseErr := parser.Parse(archiveBytes)
	if parseErr != nil {
		return parseErr
	}
	logWarnings(logger, result.Warnings)
	indexed := badges.Index(result.Data)
	logger.Info("parsed export",
		zap.Int("following", len(result.Data.Following)),
		zap.Int("followers", len(result.Data.Followers)),
		zap.Int("accounts", len(indexed)),
		zap.Bool("hasMinimalData", result.HasMinimalData))

	absoluteOutputRoot, absErr := filepath.Abs(opts.OutputRoot)
	if absErr != nil {
		return fmt.Errorf("resolve output folder: %w", absErr)
	}
	targetFolder := filepath.Join(absoluteOutputRoot, utils.FormatDatestamp(time.Now()))
	if mkErr := utils.EnsureDir(targetFolder); mkErr != nil {
		return fmt.Errorf("create output folder %q: %w", targetFolder, mkErr)
	}

	if writeErr := utils.WriteJSON(filepath.Join(targetFolder, "report.json"), result); writeErr != nil {
		return writeErr
	}
	if writeErr := utils.WriteJSON(filepath.Join(targetFolder, "badges.json"), indexed); writeErr != nil {
		return writeErr
	}
	if writeErr := utils.WriteJSON(filepath.Join(targetFolder, "lists.json"), badgeLists(indexed, opts.BadgeNames)); writeErr != nil {
		return writeErr
	}

	if opts.DBPath != "" {
		if diffErr := recordSnapshot(logger, opts.DBPath, targetFolder, archiveBytes, result.Data); diffErr != nil {
			return diffErr
		}
	}

	utils.PrintLine(targetFolder + string(filepath.Separator))

	if opts.Strict {
		return parser.StrictError(result)
	}
	return nil
}

func logWarnings(logger *zap.Logger, warnings []report.Warning) {
	for _, warning := range warnings {
		fields := []zap.Field{
			zap.String("code", string(warning.Code)),
			zap.String("fix", warning.Fix),
		}
		switch warning.Severity {
		case report.SeverityError:
			logger.Error(warning.Message, fields...)
		case report.SeverityWarning:
			logger.Warn(warning.Message, fields...)
		default:
			logger.Info(warning.Message, fields...)
		}
	}
}

// badgeLists builds the per-badge username lists the report emits.
// Unknown badge names map to empty lists rather than failing the run.
func badgeLists(indexed []badges.AccountBadges, requested []string) map[string][]string {
	names := requested
	if len(names) == 0 {
		names = badges.Names()
	}
	lists := make(map[string][]string, len(names))
	for _, badgeName := range names {
		usernames := badges.Filter(indexed, badgeName)
		if usernames == nil {
			usernames = []string{}
		}
		lists[badgeName] = usernames
	}
	return lists
}

// recordSnapshot appends this parse to the snapshot history and, when a
// previous distinct export exists, writes and logs the diff.
func recordSnapshot(logger *zap.Logger, dbPath, targetFolder string, archiveBytes []byte, data parser.ParsedAll) error {
	snapshots, openErr := store.Open(dbPath)
	if openErr != nil {
		return openErr
	}
	defer snapshots.Close()

	ctx := context.Background()
	digestBytes := sha256.Sum256(archiveBytes)
	digest := hex.EncodeToString(digestBytes[:])

	previous, havePrevious, latestErr := snapshots.LatestOtherDigest(ctx, digest)
	if latestErr != nil {
		return latestErr
	}

	current := store.FromParsed(data, digest, time.Now())
	snapshotID, saveErr := snapshots.Save(ctx, current)
	if saveErr != nil {
		return saveErr
	}
	logger.Info("snapshot recorded", zap.Int64("id", snapshotID), zap.String("digest", digest[:12]))

	if !havePrevious {
		return nil
	}
	diff := store.Diff(previous, current)
	logger.Info("diff against previous export",
		zap.Time("previousTakenAt", previous.TakenAt),
		zap.Int("lostFollowers", len(diff.LostFollowers)),
		zap.Int("gainedFollowers", len(diff.GainedFollowers)),
		zap.Int("stoppedFollowing", len(diff.StoppedFollowing)),
		zap.Int("startedFollowing", len(diff.StartedFollowing)))
	return utils.WriteJSON(filepath.Join(targetFolder, "diff.json"), diff)
}
