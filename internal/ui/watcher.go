package ui

import (
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/probelab/latscope/internal/logger"
)

// fileChangedMsg is emitted when the watched input CSV is rewritten.
type fileChangedMsg struct{}

// watchFile watches the directory containing path and forwards write/create
// events for that file onto the returned channel, debounced so a burst of
// writes triggers a single reload. The caller closes the watcher on exit.
func watchFile(path string) (*fsnotify.Watcher, chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}

	// Watch the directory: editors and the simulator replace the file,
	// which drops a watch set on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, nil, err
	}

	changes := make(chan struct{}, 1)
	target := filepath.Base(path)

	go func() {
		var debounce *time.Timer
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != target {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(250*time.Millisecond, func() {
					select {
					case changes <- struct{}{}:
					default:
					}
				})

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("file watcher error", "err", err)
			}
		}
	}()

	return watcher, changes, nil
}

// waitForFileChange returns a command that blocks on the next change event.
func waitForFileChange(changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-changes
		return fileChangedMsg{}
	}
}
