package ports

import (
	"context"
	"os/exec"

	"locator/internal/domain"
)

// Launcher starts a resource as a detached process
type Launcher interface {
	// Command builds the process that would open r, without starting it
	Command(r domain.Resource) (*exec.Cmd, error)

	// Launch starts r and returns once the process is spawned
	Launch(ctx context.Context, r domain.Resource) error
}

// IconRasterizer turns a resolved icon path into a small embeddable image
type IconRasterizer interface {
	// Rasterize returns a data URL of the icon scaled to a fixed size
	Rasterize(path string) (string, error)
}
