package python

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/freeze/internal/adapters/logger"
	"go.trai.ch/freeze/internal/adapters/shell"
	"go.trai.ch/freeze/internal/core/ports"
)

const (
	// ProberNodeID is the unique identifier for the interpreter probe node.
	ProberNodeID graft.ID = "adapter.python.prober"
	// InstallerNodeID is the unique identifier for the pip installer node.
	InstallerNodeID graft.ID = "adapter.python.installer"
	// PackagerNodeID is the unique identifier for the PyInstaller node.
	PackagerNodeID graft.ID = "adapter.python.packager"
)

func init() {
	graft.Register(graft.Node[ports.Prober]{
		ID:        ProberNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Prober, error) {
			return toolchainFromDeps(ctx)
		},
	})

	graft.Register(graft.Node[ports.PackageManager]{
		ID:        InstallerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.PackageManager, error) {
			return toolchainFromDeps(ctx)
		},
	})

	graft.Register(graft.Node[ports.Packager]{
		ID:        PackagerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Packager, error) {
			return toolchainFromDeps(ctx)
		},
	})
}

func toolchainFromDeps(ctx context.Context) (*Toolchain, error) {
	runner, err := graft.Dep[ports.ProcessRunner](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return NewToolchain(runner, log), nil
}
