// Package bootstrap wires the adapters shared by the locator binaries.
package bootstrap

import (
	"io"
	"log"
	"os"

	"locator/internal/adapters/desktop"
	"locator/internal/adapters/editor"
	"locator/internal/adapters/filesystem"
	"locator/internal/adapters/iconraster"
	"locator/internal/adapters/icons"
	"locator/internal/adapters/launcher"
	"locator/internal/adapters/osfs"
	"locator/internal/adapters/xdg"
	"locator/internal/application"
	"locator/internal/config"
)

// Services holds one instance of every component. The icon resolver is
// shared so its cache lives as long as the process.
type Services struct {
	Config     *config.Config
	FS         *osfs.Counter
	Icons      *icons.Resolver
	Catalog    *desktop.Catalog
	Scanner    *filesystem.Scanner
	Index      *application.ResourceIndex
	Launcher   *launcher.Dispatcher
	Rasterizer *iconraster.Rasterizer
}

// Logger returns the diagnostics logger: stderr when debug is set,
// otherwise a discarding one
func Logger(debug bool) *log.Logger {
	if debug {
		return log.New(os.Stderr, "[locator] ", log.LstdFlags)
	}
	return log.New(io.Discard, "", 0)
}

// New builds the services for cfg
func New(cfg *config.Config, logger *log.Logger) *Services {
	fsys := osfs.NewCounter(osfs.New())

	resolver := icons.NewResolver(fsys, cfg, icons.WithLogger(logger))
	catalog := desktop.NewCatalog(fsys, resolver, cfg, desktop.WithLogger(logger))
	scanner := filesystem.NewScanner(fsys, cfg, filesystem.WithLogger(logger))

	return &Services{
		Config:     cfg,
		FS:         fsys,
		Icons:      resolver,
		Catalog:    catalog,
		Scanner:    scanner,
		Index:      application.NewResourceIndex(catalog, scanner, application.WithLogger(logger)),
		Rasterizer: iconraster.NewRasterizer(fsys),
		Launcher: launcher.NewDispatcher(cfg,
			editor.NewOpener(cfg.Launch.Editors),
			xdg.NewOpener(),
			launcher.WithLogger(logger),
		),
	}
}
