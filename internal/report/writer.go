package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/safecosts/internal/common"
)

// Report is everything a successful run publishes.
type Report struct {
	StartBlock uint64
	EndBlock   uint64
	Ledger     []common.ReceiptRecord
	Costs      []common.CostEntry
}

func (r Report) LedgerFileName() string {
	return fmt.Sprintf("%d-%d-transactions.csv", r.StartBlock, r.EndBlock)
}

func (r Report) CostsFileName() string {
	return fmt.Sprintf("%d-%d-gas-costs.csv", r.StartBlock, r.EndBlock)
}

func (r Report) ParquetFileName() string {
	return fmt.Sprintf("%d-%d-transactions.parquet", r.StartBlock, r.EndBlock)
}

type Uploader interface {
	Upload(ctx context.Context, name string, path string) error
}

type Writer struct {
	dir      string
	parquet  bool
	uploader Uploader
}

// NewWriter returns a writer for dir. uploader may be nil.
func NewWriter(dir string, parquetEnabled bool, uploader Uploader) *Writer {
	return &Writer{dir: dir, parquet: parquetEnabled, uploader: uploader}
}

type renderer struct {
	name   string
	render func(w io.Writer) error
}

type stagedFile struct {
	name string
	temp string
}

// Write renders every report file next to its destination, uploads them when an
// uploader is configured and only then renames them into place. Nothing is left
// in the reports directory if any step fails. It returns the final paths.
func (w *Writer) Write(ctx context.Context, r Report) ([]string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create reports directory %s: %w", w.dir, err)
	}

	renderers := []renderer{
		{name: r.LedgerFileName(), render: func(out io.Writer) error { return WriteLedgerCSV(out, r.Ledger) }},
		{name: r.CostsFileName(), render: func(out io.Writer) error { return WriteCostsCSV(out, r.Costs) }},
	}
	if w.parquet {
		renderers = append(renderers, renderer{name: r.ParquetFileName(), render: func(out io.Writer) error { return WriteLedgerParquet(out, r.Ledger) }})
	}

	staged := make([]stagedFile, 0, len(renderers))
	cleanup := func() {
		for _, f := range staged {
			if err := os.Remove(f.temp); err != nil && !errors.Is(err, os.ErrNotExist) {
				log.Warn().Err(err).Str("file", f.temp).Msg("Failed to remove temporary report file")
			}
		}
	}

	for _, rd := range renderers {
		temp, err := w.stage(rd)
		if temp != "" {
			staged = append(staged, stagedFile{name: rd.name, temp: temp})
		}
		if err != nil {
			cleanup()
			return nil, err
		}
	}

	if w.uploader != nil {
		for _, f := range staged {
			if err := w.uploader.Upload(ctx, f.name, f.temp); err != nil {
				cleanup()
				return nil, fmt.Errorf("failed to upload %s: %w", f.name, err)
			}
		}
	}

	paths := make([]string, 0, len(staged))
	for i, f := range staged {
		final := filepath.Join(w.dir, f.name)
		if err := os.Rename(f.temp, final); err != nil {
			for _, done := range paths {
				_ = os.Remove(done)
			}
			staged = staged[i:]
			cleanup()
			return nil, fmt.Errorf("failed to move %s into place: %w", f.name, err)
		}
		paths = append(paths, final)
	}

	log.Debug().Strs("files", paths).Msg("Reports written")
	return paths, nil
}

func (w *Writer) stage(rd renderer) (string, error) {
	file, err := os.CreateTemp(w.dir, "."+rd.name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file for %s: %w", rd.name, err)
	}
	if err := rd.render(file); err != nil {
		file.Close()
		return file.Name(), fmt.Errorf("failed to render %s: %w", rd.name, err)
	}
	if err := file.Close(); err != nil {
		return file.Name(), fmt.Errorf("failed to close %s: %w", rd.name, err)
	}
	return file.Name(), nil
}
