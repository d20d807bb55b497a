package audit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"stock-audit/core/manifest"
	"stock-audit/core/reconcile"
	"stock-audit/core/report"
	"stock-audit/core/storage"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrNoManifest is returned when columns are re-selected before any manifest was loaded.
	ErrNoManifest = errors.New("no manifest loaded")

	// ErrStorageUnavailable is returned by bucket operations when no storage is configured.
	ErrStorageUnavailable = errors.New("storage not configured")
)

// Archiver records exported reports.
type Archiver interface {
	Save(ctx context.Context, rep report.Report, objectKey string, format report.Format) error
}

// Options configures the audit service.
type Options struct {
	Manifest manifest.Config
	Export   report.Config
}

// ManifestInfo describes the loaded manifest.
type ManifestInfo struct {
	Source   string           `json:"source"`
	Sheet    string           `json:"sheet,omitempty"`
	Headers  []string         `json:"headers"`
	Columns  manifest.Columns `json:"columns"`
	Rows     int              `json:"rows"`
	Expected int              `json:"expected"`
}

// ExportResult describes an uploaded report.
type ExportResult struct {
	Key    string        `json:"key"`
	Format report.Format `json:"format"`
	Report report.Report `json:"report"`
}

// Service owns one audit session and the manifest it was loaded from.
// All methods are safe for concurrent use; requests are applied one at a time.
type Service struct {
	bucket  *storage.Bucket
	opts    Options
	archive Archiver
	logger  *zap.Logger

	fetches singleflight.Group

	mu      sync.Mutex
	session *reconcile.Session
	table   *manifest.Table
	source  string
	columns manifest.Columns
}

// NewService creates a new audit service. bucket and archive may be nil.
func NewService(bucket *storage.Bucket, opts Options, archive Archiver, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		bucket:  bucket,
		opts:    opts,
		archive: archive,
		logger:  logger,
		session: reconcile.NewSession(),
	}
}

// SelectMode parses mode and resets the session into it.
func (s *Service) SelectMode(mode string) (reconcile.Snapshot, error) {
	m, err := reconcile.ParseMode(mode)
	if err != nil {
		return reconcile.Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.session.SelectMode(m); err != nil {
		return reconcile.Snapshot{}, err
	}
	s.table, s.source, s.columns = nil, "", manifest.Columns{}

	s.logger.Info("Session mode selected", zap.String("mode", m.String()))
	return s.session.Snapshot(), nil
}

// Mode returns the current session mode.
func (s *Service) Mode() reconcile.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Mode()
}

// LoadManifest parses a manifest file and loads it into the session.
// Non-empty fields of override replace the guessed columns. On failure the
// session keeps its previous manifest.
func (s *Service) LoadManifest(filename string, r io.Reader, override manifest.Columns) (ManifestInfo, error) {
	if s.Mode() != reconcile.ModeAudit {
		return ManifestInfo{}, reconcile.ErrNotAuditMode
	}

	table, err := manifest.ParseFile(filename, r)
	if err != nil {
		return ManifestInfo{}, err
	}

	cols := manifest.ResolveColumns(table, s.opts.Manifest, override)

	s.mu.Lock()
	defer s.mu.Unlock()

	info, err := s.apply(table, filename, cols)
	if err != nil {
		return ManifestInfo{}, err
	}

	s.logger.Info("Manifest loaded",
		zap.String("source", filename),
		zap.String("serial_column", cols.Serial),
		zap.String("part_column", cols.Part),
		zap.Int("expected", info.Expected),
	)
	return info, nil
}

// SelectColumns reloads the retained manifest with a new column selection.
func (s *Service) SelectColumns(cols manifest.Columns) (ManifestInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.table == nil {
		return ManifestInfo{}, ErrNoManifest
	}

	info, err := s.apply(s.table, s.source, cols)
	if err != nil {
		return ManifestInfo{}, err
	}

	s.logger.Info("Manifest columns changed",
		zap.String("serial_column", cols.Serial),
		zap.String("part_column", cols.Part),
		zap.Int("expected", info.Expected),
	)
	return info, nil
}

// apply loads table into the session and retains it. Called with mu held.
func (s *Service) apply(table *manifest.Table, source string, cols manifest.Columns) (ManifestInfo, error) {
	expected, err := manifest.LoadExpected(table, cols)
	if err != nil {
		return ManifestInfo{}, err
	}
	if err := s.session.LoadExpected(expected); err != nil {
		return ManifestInfo{}, err
	}

	s.table, s.source, s.columns = table, source, cols
	return s.manifestInfo(), nil
}

// Manifest describes the loaded manifest.
func (s *Service) Manifest() (ManifestInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.table == nil {
		return ManifestInfo{}, ErrNoManifest
	}
	return s.manifestInfo(), nil
}

func (s *Service) manifestInfo() ManifestInfo {
	return ManifestInfo{
		Source:   s.source,
		Sheet:    s.table.Sheet,
		Headers:  s.table.ColumnNames(),
		Columns:  s.columns,
		Rows:     len(s.table.Rows),
		Expected: s.session.Expected(),
	}
}

// LoadManifestFromStorage fetches a manifest from the bucket and loads it.
// Concurrent fetches of the same object share one download.
func (s *Service) LoadManifestFromStorage(ctx context.Context, key string, override manifest.Columns) (ManifestInfo, error) {
	if s.bucket == nil {
		return ManifestInfo{}, ErrStorageUnavailable
	}
	if s.Mode() != reconcile.ModeAudit {
		return ManifestInfo{}, reconcile.ErrNotAuditMode
	}

	v, err, shared := s.fetches.Do(key, func() (any, error) {
		return s.bucket.Get(ctx, key, s.opts.Manifest.MaxUploadBytes)
	})
	if err != nil {
		return ManifestInfo{}, err
	}
	if shared {
		s.logger.Debug("Manifest download shared", zap.String("key", key))
	}

	return s.LoadManifest(key, bytes.NewReader(v.([]byte)), override)
}

// ListManifests lists the manifests stored in the bucket.
func (s *Service) ListManifests(ctx context.Context) ([]storage.Object, error) {
	if s.bucket == nil {
		return nil, ErrStorageUnavailable
	}
	return s.bucket.List(ctx, s.opts.Manifest.Prefix)
}

// Scan observes one scanned or typed value.
// ok is false when the value normalizes to nothing.
func (s *Service) Scan(raw string) (reconcile.Outcome, reconcile.Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out, ok := s.session.Observe(raw)
	if !ok {
		return reconcile.Outcome{}, reconcile.Snapshot{}, false
	}

	if out.Warning() {
		s.logger.Warn(out.Message(), zap.String("kind", string(out.Kind)))
	} else {
		s.logger.Debug(out.Message(), zap.String("kind", string(out.Kind)))
	}
	return out, s.session.Snapshot(), true
}

// Snapshot returns the derived session view.
func (s *Service) Snapshot() reconcile.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Snapshot()
}

// Missing returns the missing work queue.
func (s *Service) Missing() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Missing()
}

// NextMissing takes the head of the missing queue and marks it handled. It
// also returns how many identifiers are still missing afterwards.
func (s *Service) NextMissing() (id string, remaining int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok = s.session.ConsumeNext()
	if !ok {
		return "", 0, false
	}
	return id, len(s.session.Missing()), true
}

// AllMissing returns the whole missing queue without marking anything handled.
func (s *Service) AllMissing() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.ConsumeAll()
}

// Scanned returns the sorted scanned identifiers.
func (s *Service) Scanned() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.ScannedSorted()
}

// BuildReport captures the session as an encoded report.
func (s *Service) BuildReport(format string) (report.Report, []byte, report.Format, error) {
	f, err := report.ParseFormat(format, report.Format(s.opts.Export.Format))
	if err != nil {
		return report.Report{}, nil, "", err
	}

	s.mu.Lock()
	rep := report.New(s.session.Snapshot(), s.source, s.columns)
	s.mu.Unlock()

	data, err := rep.Encode(f)
	if err != nil {
		return report.Report{}, nil, "", err
	}
	return rep, data, f, nil
}

// Export uploads a report of the session to the bucket and archives it.
// An archive failure is logged; the upload still counts as exported.
func (s *Service) Export(ctx context.Context, format string) (ExportResult, error) {
	if s.bucket == nil {
		return ExportResult{}, ErrStorageUnavailable
	}

	rep, data, f, err := s.BuildReport(format)
	if err != nil {
		return ExportResult{}, err
	}

	key := s.opts.Export.ObjectKey(rep, f)
	if _, err := s.bucket.Put(ctx, key, data, f.ContentType()); err != nil {
		return ExportResult{}, fmt.Errorf("failed to export report: %w", err)
	}

	if s.archive != nil {
		if err := s.archive.Save(ctx, rep, key, f); err != nil {
			s.logger.Warn("Report archive failed", zap.String("key", key), zap.Error(err))
		}
	}

	s.logger.Info("Report exported", zap.String("key", key), zap.String("format", string(f)))
	return ExportResult{Key: key, Format: f, Report: rep}, nil
}
