package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/azajakins/lfl-stats/internal/domain/match"
	"github.com/azajakins/lfl-stats/internal/platform/logging"
)

// MatchParser turns one match file into a validated-enough record for
// aggregation. Implemented by the XML parser collaborator.
type MatchParser interface {
	ParseFile(path string) (match.Record, error)
}

// IngestionService drives batch ingestion: parsing match files and
// feeding them to the aggregation engine. Files are parsed
// concurrently, but matches are always aggregated one at a time in
// non-decreasing date order, since aggregates only make sense when
// matches land chronologically.
type IngestionService struct {
	parser     MatchParser
	aggregator *AggregationService
	log        *logging.Logger
	workers    int
}

const defaultIngestWorkers = 4

func NewIngestionService(parser MatchParser, aggregator *AggregationService, workers int, log *logging.Logger) *IngestionService {
	if workers <= 0 {
		workers = defaultIngestWorkers
	}
	if log == nil {
		log = logging.NewNop()
	}
	return &IngestionService{
		parser:     parser,
		aggregator: aggregator,
		log:        log,
		workers:    workers,
	}
}

// BatchResult summarizes one directory ingestion run.
type BatchResult struct {
	Parsed    int
	Processed int
	Skipped   int
	Failed    int
}

// ProcessFile parses and aggregates a single match file.
func (s *IngestionService) ProcessFile(ctx context.Context, path string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.ProcessFile")
	defer span.End()

	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: file path is required", ErrInvalidInput)
	}

	start := time.Now()

	rec, err := s.parser.ParseFile(path)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if _, err := s.aggregator.ProcessMatch(ctx, rec); err != nil {
		return fmt.Errorf("aggregate %s: %w", path, err)
	}

	s.log.InfoContext(ctx, "match file processed",
		"file", path, "duration_ms", time.Since(start).Milliseconds())

	return nil
}

// ProcessDir ingests every .xml file in a directory. Parsing runs on a
// worker pool; aggregation then proceeds sequentially over the parsed
// records sorted by match date. A file that fails to parse or
// aggregate is logged and counted, the batch carries on.
func (s *IngestionService) ProcessDir(ctx context.Context, dir string) (BatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.ProcessDir")
	defer span.End()

	if strings.TrimSpace(dir) == "" {
		return BatchResult{}, fmt.Errorf("%w: directory is required", ErrInvalidInput)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return BatchResult{}, fmt.Errorf("read directory %s: %w", dir, err)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ".xml") {
			s.log.InfoContext(ctx, "skipping non-xml file", "file", entry.Name())
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}

	var result BatchResult

	type parsedFile struct {
		path string
		rec  match.Record
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return BatchResult{}, fmt.Errorf("create parse pool: %w", err)
	}
	defer pool.Release()

	var (
		mu     sync.Mutex
		parsed []parsedFile
		wg     sync.WaitGroup
	)
	for _, path := range paths {
		path := path
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()

			rec, parseErr := s.parser.ParseFile(path)

			mu.Lock()
			defer mu.Unlock()
			if parseErr != nil {
				result.Failed++
				s.log.ErrorContext(ctx, "parse match file failed", "file", path, "error", parseErr)
				return
			}
			result.Parsed++
			parsed = append(parsed, parsedFile{path: path, rec: rec})
		}); err != nil {
			wg.Done()
			return BatchResult{}, fmt.Errorf("submit parse job: %w", err)
		}
	}
	wg.Wait()

	sort.SliceStable(parsed, func(i, j int) bool {
		return matchDateLess(parsed[i].rec.Date, parsed[j].rec.Date)
	})

	for _, item := range parsed {
		procResult, err := s.aggregator.ProcessMatch(ctx, item.rec)
		if err != nil {
			result.Failed++
			s.log.ErrorContext(ctx, "aggregate match failed", "file", item.path, "error", err)
			continue
		}
		if procResult.Skipped {
			result.Skipped++
			continue
		}
		result.Processed++
	}

	s.log.InfoContext(ctx, "directory ingested", "dir", dir,
		"parsed", result.Parsed, "processed", result.Processed,
		"skipped", result.Skipped, "failed", result.Failed)

	return result, nil
}

var matchDateLayouts = []string{"2006/1/2", "2006-01-02", "2006.01.02"}

// matchDateLess orders match dates chronologically when they parse
// under a known layout, lexicographically otherwise.
func matchDateLess(a, b string) bool {
	ta, okA := parseMatchDate(a)
	tb, okB := parseMatchDate(b)
	if okA && okB {
		return ta.Before(tb)
	}
	return a < b
}

func parseMatchDate(value string) (time.Time, bool) {
	for _, layout := range matchDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
