package internal

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// StartWatching begins re-checking query files whenever they change. Paths
// may be files or directories; directories are watched recursively.
func (e *Engine) StartWatching(paths []string) error {
	if e.isWatching {
		return fmt.Errorf("already watching")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	e.watcher = watcher
	e.watchPaths = paths

	for _, path := range paths {
		err := filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return e.watcher.Add(p)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("error adding path to watcher: %w", err)
		}
		// watch the file's own directory when given a bare file
		if info, statErr := os.Stat(path); statErr == nil && !info.IsDir() {
			if err := e.watcher.Add(filepath.Dir(path)); err != nil {
				return fmt.Errorf("error adding path to watcher: %w", err)
			}
		}
	}

	e.isWatching = true
	go e.watchLoop()
	return nil
}

// StopWatching shuts the watch loop down.
func (e *Engine) StopWatching() error {
	if !e.isWatching {
		log.Println("not watching")
	}

	e.isWatching = false
	return e.watcher.Close()
}

func (e *Engine) watchLoop() {
	for e.isWatching {
		select {
		case event, ok := <-e.watcher.Events:
			if !ok {
				return
			}
			e.handleFileEvent(event)
		case err, ok := <-e.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("error: %v", err)
		}
	}
}

func (e *Engine) handleFileEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Write == fsnotify.Write {
		if strings.HasSuffix(event.Name, QueryFileExt) {
			// editors fire several writes per save; let them settle
			time.Sleep(100 * time.Millisecond)
			diagnostics, err := e.CheckFile(event.Name)
			if err != nil {
				log.Printf("error: %v", err)
				return
			}
			e.reportDiagnostics(event.Name, diagnostics)
		}
	}
}

func (e *Engine) reportDiagnostics(filename string, diagnostics []Diagnostic) {
	if len(diagnostics) == 0 {
		log.Printf("all queries compile in %s", filename)
		return
	}

	log.Printf("found %d bad queries in %s", len(diagnostics), filename)
	for _, d := range diagnostics {
		log.Printf("- line %d: %s", d.Line, d.Err.Error())
	}
}
