package ioutils

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/handiism/spotify-analysis/internal/model"
)

// utf8BOM is stripped from the first header cell; spreadsheet exports often add it.
const utf8BOM = "\ufeff"

// ReadDataset reads every row of a CSV dataset into memory.
//
// The file must start with a header line naming at least the Song, Artist,
// Release Date and streamsColumn columns, in any order. Extra columns are
// ignored. A *model.SchemaError is returned before any row is read when a
// required column is missing.
func ReadDataset(ctx context.Context, path, streamsColumn string) ([]model.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseDataset(ctx, f, streamsColumn)
}

// ParseDataset reads a CSV dataset from r. See ReadDataset.
func ParseDataset(ctx context.Context, r io.Reader, streamsColumn string) ([]model.Row, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		header = nil
	} else if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns, err := locateColumns(header, streamsColumn)
	if err != nil {
		return nil, err
	}

	var rows []model.Row
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(rows)+1, err)
		}

		rows = append(rows, model.Row{
			Song:        record[columns.song],
			Artist:      record[columns.artist],
			ReleaseDate: record[columns.releaseDate],
			Streams:     record[columns.streams],
		})
	}

	return rows, nil
}

type columnIndex struct {
	song, artist, releaseDate, streams int
}

func locateColumns(header []string, streamsColumn string) (columnIndex, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		positions[strings.TrimSpace(name)] = i
	}

	var missing []string
	lookup := func(name string) int {
		i, ok := positions[name]
		if !ok {
			missing = append(missing, name)
		}
		return i
	}

	columns := columnIndex{
		song:        lookup(model.ColumnSong),
		artist:      lookup(model.ColumnArtist),
		releaseDate: lookup(model.ColumnReleaseDate),
		streams:     lookup(streamsColumn),
	}

	if len(missing) > 0 {
		return columnIndex{}, &model.SchemaError{Missing: missing}
	}
	return columns, nil
}
