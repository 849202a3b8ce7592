package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/freeze/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/freeze/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/freeze/internal/adapters/console"            //nolint:depguard // Wired in app layer
	"go.trai.ch/freeze/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/freeze/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/freeze/internal/adapters/python"             //nolint:depguard // Wired in app layer
	"go.trai.ch/freeze/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/freeze/internal/core/ports"
	"go.trai.ch/freeze/internal/engine/pipeline"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			console.NodeID,
			python.ProberNodeID,
			python.InstallerNodeID,
			python.PackagerNodeID,
			fs.VerifierNodeID,
			fs.HasherNodeID,
			cas.NodeID,
			progrock.RunLogNodeID,
			pipeline.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	out, err := graft.Dep[ports.Console](ctx)
	if err != nil {
		return nil, err
	}

	prober, err := graft.Dep[ports.Prober](ctx)
	if err != nil {
		return nil, err
	}

	installer, err := graft.Dep[ports.PackageManager](ctx)
	if err != nil {
		return nil, err
	}

	packager, err := graft.Dep[ports.Packager](ctx)
	if err != nil {
		return nil, err
	}

	verifier, err := graft.Dep[ports.Verifier](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.BuildRecordStore](ctx)
	if err != nil {
		return nil, err
	}

	runLogs, err := graft.Dep[ports.RunLogStore](ctx)
	if err != nil {
		return nil, err
	}

	pipe, err := graft.Dep[*pipeline.Pipeline](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, out, prober, installer, packager, verifier, hasher, store, runLogs, pipe), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
