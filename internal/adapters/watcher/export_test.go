package watcher

// EmitError feeds an error into the underlying watcher's error stream so
// tests can exercise the error path without provoking a real watch failure.
func (w *Watcher) EmitError(err error) {
	w.fsWatcher.Errors <- err
}
