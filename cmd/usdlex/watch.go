package main

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
)

// watchAndRender renders the file once, then re-renders on every change
// until interrupted. Editors that replace the file on save emit
// Rename/Remove instead of Write, so the path is re-added to the watcher
// after those events.
func watchAndRender(path string, opts renderOptions) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := renderPath(path, opts); err != nil {
		return err
	}
	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("error watching %s: %w", path, err)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				rerender(path, opts)
			}
			if event.Op&(fsnotify.Rename|fsnotify.Remove) != 0 {
				_ = watcher.Remove(path)
				if err := watcher.Add(path); err != nil {
					return fmt.Errorf("lost track of %s: %w", path, err)
				}
				rerender(path, opts)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watch error: %v\n", err)
		}
	}
}

func rerender(path string, opts renderOptions) {
	if err := renderPath(path, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}
