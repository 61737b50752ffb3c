package sniffkit

import (
	"github.com/fsnotify/fsnotify"
)

// Event is a detection triggered by a filesystem change.
type Event struct {
	Path   string
	Result *Result
}

// Watcher classifies files in a directory as they are created or
// rewritten. Events for files that vanish before they can be read are
// dropped silently, matching the detector's soft-failure contract.
type Watcher struct {
	watcher  *fsnotify.Watcher
	detector *Detector
	events   chan Event
	errors   chan error
}

// NewWatcher starts watching dir with the given detector (the default
// detector when nil). Close the watcher to release the underlying handle
// and drain its channels.
func NewWatcher(dir string, d *Detector) (*Watcher, error) {
	if d == nil {
		d = Default()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher:  fw,
		detector: d,
		events:   make(chan Event),
		errors:   make(chan error),
	}

	go w.loop()

	return w, nil
}

func (w *Watcher) loop() {
	watchErrs := w.watcher.Errors
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				close(w.events)
				close(w.errors)
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			res, err := w.detector.Detect(ev.Name)
			if err != nil {
				// Gone already, or a directory.
				continue
			}
			w.events <- Event{Path: ev.Name, Result: res}
		case err, ok := <-watchErrs:
			if !ok {
				watchErrs = nil
				continue
			}
			w.errors <- err
		}
	}
}

// Events returns the channel of detections. Closed when the watcher is.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns the channel of watch errors.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops watching and closes the event channels.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
