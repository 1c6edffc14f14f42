// Package app implements the application layer for shutbox.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"shutbox/internal/adapters/watcher"
	"shutbox/internal/core/domain"
	"shutbox/internal/core/ports"
)

// StdoutPath selects standard output instead of a file.
const StdoutPath = "-"

// App represents the main application logic.
type App struct {
	loader   ports.DescriptorLoader
	renderer ports.ShellRenderer
	logger   ports.Logger
	stdout   io.Writer
}

// New creates a new App instance.
func New(loader ports.DescriptorLoader, renderer ports.ShellRenderer, logger ports.Logger, opts ...Option) *App {
	a := &App{
		loader:   loader,
		renderer: renderer,
		logger:   logger,
		stdout:   os.Stdout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Option configures an App.
type Option func(*App)

// WithStdout redirects standard output. Used for testing.
func WithStdout(w io.Writer) Option {
	return func(a *App) { a.stdout = w }
}

// Render loads the descriptor at cfgPath and writes the rendered shell
// expression to outPath. StdoutPath writes to standard output instead.
func (a *App) Render(ctx context.Context, cfgPath, outPath string) error {
	d, err := a.load(cfgPath)
	if err != nil {
		return err
	}
	return a.render(ctx, d, outPath)
}

// Env loads the descriptor at cfgPath and prints the dynamic-library
// search path assignment it declares.
func (a *App) Env(ctx context.Context, cfgPath string) error {
	d, err := a.load(cfgPath)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(a.stdout, "LD_LIBRARY_PATH=%s\n", a.renderer.SearchPath(d))
	return err
}

// Watch renders once, then re-renders whenever the descriptor changes.
// It blocks until ctx is cancelled. A descriptor that becomes invalid mid
// edit is logged and skipped; watching continues.
func (a *App) Watch(ctx context.Context, cfgPath, outPath string) error {
	if err := a.Render(ctx, cfgPath, outPath); err != nil {
		return err
	}

	w, err := watcher.NewWatcher(a.logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := w.Start(ctx, cfgPath); err != nil {
		_ = w.Stop()
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// Closing the watcher ends the event iteration below.
		<-ctx.Done()
		return w.Stop()
	})
	g.Go(func() error {
		for range w.Events() {
			a.logger.Info("descriptor changed, re-rendering")
			if err := a.Render(ctx, cfgPath, outPath); err != nil {
				a.logger.Error(err)
			}
		}
		return nil
	})

	return g.Wait()
}

func (a *App) load(cfgPath string) (*domain.Descriptor, error) {
	d, err := a.loader.Load(cfgPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load descriptor")
	}
	return d, nil
}

func (a *App) render(ctx context.Context, d *domain.Descriptor, outPath string) error {
	expr, err := a.renderer.Render(ctx, d)
	if err != nil {
		return zerr.Wrap(err, "failed to render shell expression")
	}

	if outPath == StdoutPath {
		_, err := io.WriteString(a.stdout, expr)
		return err
	}

	if err := os.WriteFile(outPath, []byte(expr), 0o644); err != nil { //nolint:gosec // expression is world-readable by design
		return zerr.Wrap(err, "failed to write shell expression")
	}
	a.logger.Info("wrote " + outPath)
	return nil
}
