package check

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/voxelforge/blockquery/internal"
)

// CheckEngine is the part of internal.Engine the batch runner needs.
type CheckEngine interface {
	CheckFile(path string) ([]internal.Diagnostic, error)
	CheckSource(filename string, src []byte) []internal.Diagnostic
}

// ProcessFile checks a single query file.
func ProcessFile(engine CheckEngine, path string) ([]internal.Diagnostic, error) {
	return engine.CheckFile(path)
}

// ProcessFiles checks every path, descending into directories, and returns
// the combined diagnostics sorted by file and line.
func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine CheckEngine,
	paths []string,
	processor func(CheckEngine, string) ([]internal.Diagnostic, error),
) ([]internal.Diagnostic, error) {
	var all []internal.Diagnostic
	for _, path := range paths {
		diagnostics, err := ProcessPath(ctx, logger, engine, path, processor)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		all = append(all, diagnostics...)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Filename != all[j].Filename {
			return all[i].Filename < all[j].Filename
		}
		return all[i].Line < all[j].Line
	})
	return all, nil
}

// ProcessPath checks one file, or every query file under one directory. For
// directories the files run on a bounded worker pool with a progress bar,
// since rule sets for a full content pack can hold hundreds of query files.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine CheckEngine,
	path string,
	processor func(CheckEngine, string) ([]internal.Diagnostic, error),
) ([]internal.Diagnostic, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		if !hasQueryExtension(path) {
			return nil, nil
		}
		return processor(engine, path)
	}

	var files []string
	err = filepath.Walk(path, func(filePath string, fileInfo os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fileInfo.IsDir() && hasQueryExtension(filePath) {
			files = append(files, filePath)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking directory %s: %w", path, err)
	}
	if len(files) == 0 {
		return nil, nil
	}

	resultChan := make(chan []internal.Diagnostic, len(files))
	errorChan := make(chan error, len(files))

	maxWorkers := runtime.NumCPU()
	sem := make(chan struct{}, maxWorkers)

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription(path),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	for _, filePath := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			sem <- struct{}{}
			go func(fp string) {
				defer func() { <-sem }()

				diagnostics, err := processor(engine, fp)
				if err != nil {
					if logger != nil {
						logger.Error("Error processing file", zap.String("file", fp), zap.Error(err))
					}
					errorChan <- err
					resultChan <- nil
				} else {
					resultChan <- diagnostics
					errorChan <- nil
				}
				bar.Add(1)
			}(filePath)
		}
	}

	var all []internal.Diagnostic
	for range files {
		if err := <-errorChan; err != nil {
			return nil, err
		}
		all = append(all, <-resultChan...)
	}

	fmt.Println()
	return all, nil
}

func hasQueryExtension(path string) bool {
	return filepath.Ext(path) == internal.QueryFileExt
}
