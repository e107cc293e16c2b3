package shred

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"shredfile/internal/logging"
)

// DefaultChunkSize is the per-write block size for overwrite passes.
const DefaultChunkSize = 64 * 1024

// EngineConfig параметры движка затирания
type EngineConfig struct {
	Scheme        Scheme
	ChunkSize     int
	MaxSpeedMBps  float64
	ObfuscateName bool
	DryRun        bool
}

// Engine performs destructive multi-pass file overwrites. It is synchronous
// and blocking: Shred runs to completion on the calling goroutine. Distinct
// files may be shredded concurrently from distinct goroutines; concurrent
// calls on the same path must be serialized by the caller beyond the
// exclusive-open check.
type Engine struct {
	cfg     EngineConfig
	backend Backend
	logger  *logging.AuditLogger
}

// NewEngine creates a shred engine bound to an audit logger handle.
func NewEngine(cfg EngineConfig, logger *logging.AuditLogger) *Engine {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultChunkSize
	}
	if len(cfg.Scheme.Passes) == 0 {
		cfg.Scheme = SchemeStandard
	}
	return &Engine{
		cfg:     cfg,
		backend: osBackend{},
		logger:  logger,
	}
}

// Shred overwrites the file's full length once per pass, forcing each pass
// to stable storage, then removes the directory entry. A symlink path is
// resolved first: only the target's contents are shredded, the link entry
// itself is left behind. Failure during a pass aborts immediately and the
// file is deliberately NOT deleted - partially overwritten but present is
// safer than deleting contents that were never destroyed.
func (e *Engine) Shred(ctx context.Context, req Request, progress ProgressFunc) *Result {
	start := time.Now()
	res := &Result{Path: req.Path, Status: StatusFailed}

	if e.logger == nil || !e.logger.Ready() {
		res.Err = errors.Mark(errors.New("audit logger must be initialized before shredding"), ErrNotInitialized)
		return res
	}

	target, size, err := e.validate(req)
	if err != nil {
		res.Err = err
		e.logger.Warn("shred request rejected", zap.String("path", req.Path), zap.Error(err))
		return res
	}

	e.logger.Info("starting shred",
		zap.String("path", target),
		zap.Int("passes", req.Passes),
		zap.String("scheme", e.cfg.Scheme.Name),
		zap.Int64("size", size))

	if e.cfg.DryRun {
		res.Status = StatusCompleted
		res.PassesCompleted = req.Passes
		res.BytesProcessed = uint64(size) * uint64(req.Passes)
		res.Duration = time.Since(start)
		if progress != nil {
			progress(100)
		}
		e.logger.Info("DRY RUN: shred skipped", zap.String("path", target))
		return res
	}

	file, err := e.backend.OpenExclusive(target)
	if err != nil {
		res.Err = accessDenied(err, target)
		e.logger.Error("exclusive open failed", zap.String("path", target), zap.Error(err))
		return res
	}

	pt := &progressTracker{fn: progress}
	writer := NewThrottledWriter(file, e.cfg.MaxSpeedMBps)

	for pass := 1; size > 0 && pass <= req.Passes; pass++ {
		if cerr := ctx.Err(); cerr != nil {
			writer.Close()
			res.Status = StatusCancelled
			res.Err = errors.Mark(cerr, ErrCancelled)
			e.logger.Warn("shred cancelled", zap.String("path", target), zap.Int("pass", pass))
			return res
		}

		if perr := e.writePass(ctx, writer, pass, req.Passes, size); perr != nil {
			writer.Close()
			if errors.Is(perr, ErrCancelled) {
				res.Status = StatusCancelled
			}
			res.Err = perr
			e.logger.Error("shred pass failed",
				zap.String("path", target),
				zap.Int("pass", pass),
				zap.Int("passes_completed", res.PassesCompleted),
				zap.Error(perr))
			return res
		}

		res.PassesCompleted = pass
		res.BytesProcessed += uint64(size)
		pt.report(pass, req.Passes)
		e.logger.Debug("pass complete",
			zap.String("path", target),
			zap.Int("pass", pass),
			zap.String("pattern", e.cfg.Scheme.PassPattern(pass, req.Passes).String()))
	}
	if size == 0 {
		// Nothing to overwrite, the entry still has to go.
		res.PassesCompleted = req.Passes
	}

	if cerr := writer.Close(); cerr != nil {
		e.logger.Warn("error closing file", zap.String("path", target), zap.Error(cerr))
	}

	res.Status = StatusCompleted
	pt.finish()

	e.unlink(res, target)

	res.Duration = time.Since(start)
	if secs := res.Duration.Seconds(); secs > 0 {
		res.SpeedMBps = float64(res.BytesProcessed) / (1024 * 1024) / secs
	}

	e.logger.Info("shred complete",
		zap.String("path", target),
		zap.Uint64("bytes_processed", res.BytesProcessed),
		zap.Int("passes_completed", res.PassesCompleted),
		zap.Float64("speed_mbps", res.SpeedMBps),
		zap.String("warning", res.Warning))

	return res
}

// validate resolves the request path and checks the up-front invariants.
func (e *Engine) validate(req Request) (string, int64, error) {
	if req.Passes < 1 {
		return "", 0, invalidArgf("passes must be >= 1, got %d", req.Passes)
	}
	if req.Path == "" {
		return "", 0, invalidArgf("empty path")
	}

	info, err := e.backend.Lstat(req.Path)
	if err != nil {
		return "", 0, errors.Mark(errors.Wrapf(err, "file does not exist: %s", req.Path), ErrInvalidArgument)
	}

	target := req.Path
	if info.Mode()&os.ModeSymlink != 0 {
		target, err = e.backend.Resolve(req.Path)
		if err != nil {
			return "", 0, errors.Mark(errors.Wrapf(err, "cannot resolve symlink %s", req.Path), ErrInvalidArgument)
		}
		info, err = e.backend.Lstat(target)
		if err != nil {
			return "", 0, errors.Mark(errors.Wrapf(err, "symlink target does not exist: %s", target), ErrInvalidArgument)
		}
	}

	if !info.Mode().IsRegular() {
		return "", 0, invalidArgf("not a regular file: %s", target)
	}

	return target, info.Size(), nil
}

// writePass overwrites the full file length with the pass's pattern and
// forces it to stable storage. The file size is NOT assumed to be a
// multiple of the chunk size.
func (e *Engine) writePass(ctx context.Context, w *ThrottledWriter, pass, totalPasses int, size int64) error {
	if _, err := w.Seek(0, io.SeekStart); err != nil {
		return ioFailure(err, "seek failed on pass %d", pass)
	}

	pattern := e.cfg.Scheme.PassPattern(pass, totalPasses)
	buf := GetBuffer(e.cfg.ChunkSize)
	defer PutBuffer(buf)

	var written int64
	for written < size {
		select {
		case <-ctx.Done():
			return errors.Mark(ctx.Err(), ErrCancelled)
		default:
		}

		toWrite := int64(len(buf))
		if remaining := size - written; remaining < toWrite {
			toWrite = remaining
		}

		chunk := buf[:toWrite]
		if err := pattern.Fill(chunk); err != nil {
			return ioFailure(err, "pattern generation failed on pass %d", pass)
		}

		off := 0
		for off < len(chunk) {
			n, err := w.Write(chunk[off:])
			if n > 0 {
				off += n
				written += int64(n)
			}
			if err != nil {
				return ioFailure(err, "write failed on pass %d at offset %d", pass, written)
			}
			if n == 0 {
				return ioFailure(errors.New("write returned 0 bytes without error"), "write stalled on pass %d", pass)
			}
		}
	}

	if err := w.Sync(); err != nil {
		return ioFailure(err, "sync failed on pass %d", pass)
	}

	return nil
}

// unlink removes the directory entry, first renaming the file to a random
// name so the entry stops leaking the original filename. Overwrite already
// succeeded at this point, so failures here downgrade to a warning on an
// otherwise successful result.
func (e *Engine) unlink(res *Result, target string) {
	finalPath := target
	if e.cfg.ObfuscateName {
		newPath, err := obfuscatedName(target)
		if err == nil {
			err = e.backend.Rename(target, newPath)
		}
		if err != nil {
			e.logger.Warn("rename before unlink failed", zap.String("path", target), zap.Error(err))
		} else {
			finalPath = newPath
			res.RenamedTo = newPath
		}
	}

	if err := e.backend.Remove(finalPath); err != nil {
		uerr := errors.Mark(errors.Wrapf(err, "content destroyed but unlink failed for %s", finalPath), ErrUnlinkFailed)
		res.Warning = uerr.Error()
		e.logger.Error("unlink failed", zap.String("path", finalPath), zap.Error(err))
	}
}

func obfuscatedName(path string) (string, error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	name := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(raw)
	return filepath.Join(filepath.Dir(path), name), nil
}
