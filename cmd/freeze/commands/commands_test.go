package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/freeze/cmd/freeze/commands"
	"go.trai.ch/freeze/internal/app"
	"go.trai.ch/freeze/internal/build"
	"go.trai.ch/freeze/internal/core/domain"
	"go.trai.ch/freeze/internal/core/ports"
	"go.trai.ch/freeze/internal/core/ports/mocks"
	"go.trai.ch/freeze/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	loader    *mocks.MockConfigLoader
	console   *mocks.MockConsole
	prober    *mocks.MockProber
	installer *mocks.MockPackageManager
	packager  *mocks.MockPackager
	verifier  *mocks.MockVerifier
	hasher    *mocks.MockHasher
	store     *mocks.MockBuildRecordStore
	runLogs   *mocks.MockRunLogStore
	log       *mocks.MockLogger
	cli       *commands.CLI
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader:    mocks.NewMockConfigLoader(ctrl),
		console:   mocks.NewMockConsole(ctrl),
		prober:    mocks.NewMockProber(ctrl),
		installer: mocks.NewMockPackageManager(ctrl),
		packager:  mocks.NewMockPackager(ctrl),
		verifier:  mocks.NewMockVerifier(ctrl),
		hasher:    mocks.NewMockHasher(ctrl),
		store:     mocks.NewMockBuildRecordStore(ctrl),
		runLogs:   mocks.NewMockRunLogStore(ctrl),
		log:       mocks.NewMockLogger(ctrl),
	}

	log := f.log
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().SetLevel(domain.LogLevelInfo).AnyTimes()

	telemetry := mocks.NewMockTelemetry(ctrl)
	vertex := mocks.NewMockVertex(ctrl)
	telemetry.EXPECT().Begin(gomock.Any()).Return(nil).AnyTimes()
	telemetry.EXPECT().End().Return(nil).AnyTimes()
	telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ports.ContextWithVertex(ctx, vertex), vertex
		}).AnyTimes()
	vertex.EXPECT().Complete(gomock.Any()).AnyTimes()
	vertex.EXPECT().Log(gomock.Any(), gomock.Any()).AnyTimes()

	a := app.New(
		f.loader, log, f.console,
		f.prober, f.installer, f.packager,
		f.verifier, f.hasher, f.store, f.runLogs,
		pipeline.New(telemetry, log),
	)
	f.cli = commands.New(a)
	return f
}

func (f *fixture) expectInterpreterMissing(configPath string) {
	f.loader.EXPECT().Load(configPath).Return(domain.DefaultBuildConfig(), nil)
	f.prober.EXPECT().Probe(gomock.Any(), domain.DefaultInterpreter).Return("", domain.ErrMissingPrerequisite)
	f.console.EXPECT().Print(domain.MessageFailure, domain.MsgPythonMissing)
}

func TestRoot_NoArgsRunsBuild(t *testing.T) {
	f := newFixture(t)
	f.expectInterpreterMissing(domain.DefaultConfigFile)

	f.cli.SetArgs([]string{})
	err := f.cli.Execute(context.Background())

	require.ErrorIs(t, err, domain.ErrBuildAborted)
}

func TestBuild_ConfigFlag(t *testing.T) {
	f := newFixture(t)
	f.expectInterpreterMissing("custom.yaml")

	f.cli.SetArgs([]string{"build", "--config", "custom.yaml"})
	err := f.cli.Execute(context.Background())

	require.ErrorIs(t, err, domain.ErrBuildAborted)
}

func TestBuild_NoPauseSkipsPrompt(t *testing.T) {
	f := newFixture(t)
	cfg := domain.DefaultBuildConfig()

	f.loader.EXPECT().Load(domain.DefaultConfigFile).Return(cfg, nil)
	f.prober.EXPECT().Probe(gomock.Any(), cfg.Interpreter).Return("Python 3.11.9", nil)
	f.installer.EXPECT().Install(gomock.Any(), cfg.Interpreter, cfg.Packages).Return(nil)
	f.verifier.EXPECT().MissingInputs(cfg.Inputs()).Return(nil, nil)
	f.hasher.EXPECT().HashFile(cfg.ArtifactPath()).Return("", nil).Times(2)
	f.packager.EXPECT().Package(gomock.Any(), cfg).Return(nil)
	f.verifier.EXPECT().Exists(cfg.ArtifactPath()).Return(true, nil)
	f.console.EXPECT().Print(gomock.Any(), gomock.Any()).Times(3)
	f.store.EXPECT().Append(gomock.Any()).Return(nil)
	// No Pause expectation: a call would fail the test.

	f.cli.SetArgs([]string{"--no-pause"})
	err := f.cli.Execute(context.Background())

	require.NoError(t, err)
}

func TestClean_All(t *testing.T) {
	f := newFixture(t)
	cfg := domain.DefaultBuildConfig()
	root := t.TempDir()
	cfg.OutputDir = root + "/dist"
	cfg.WorkDir = root + "/build"

	f.loader.EXPECT().Load(domain.DefaultConfigFile).Return(cfg, nil)
	f.store.EXPECT().Reset().Return(nil)
	f.runLogs.EXPECT().Reset().Return(nil)

	f.cli.SetArgs([]string{"clean", "--all"})
	err := f.cli.Execute(context.Background())

	require.NoError(t, err)
}

func TestHistory_ListsRecords(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().List().Return([]domain.BuildRecord{
		{
			RunID:        "3f1c2a9e-run",
			Artifact:     "dist/tool.exe",
			ArtifactHash: "00000000deadbeef",
			Outcome:      domain.OutcomeSuccess.String(),
			Stale:        true,
			Timestamp:    time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
		},
	}, nil)

	var out bytes.Buffer
	f.cli.SetArgs([]string{"history"})
	f.cli.SetOut(&out)
	err := f.cli.Execute(context.Background())

	require.NoError(t, err)
	assert.Contains(t, out.String(), "3f1c2a9e-run")
	assert.Contains(t, out.String(), "dist/tool.exe")
	assert.Contains(t, out.String(), "00000000deadbeef")
	assert.Contains(t, out.String(), "true")
}

func TestHistory_Empty(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().List().Return(nil, nil)

	var out bytes.Buffer
	f.cli.SetArgs([]string{"history"})
	f.cli.SetOut(&out)
	err := f.cli.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "No builds recorded.\n", out.String())
}

func TestHistory_Error(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().List().Return(nil, errors.New("unexpected end of JSON input"))

	f.cli.SetArgs([]string{"history"})
	err := f.cli.Execute(context.Background())

	require.Error(t, err)
}

func TestLog_LatestRun(t *testing.T) {
	f := newFixture(t)
	started := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	f.runLogs.EXPECT().Read("").Return(domain.RunLog{
		RunID: "3f1c2a9e-run",
		Steps: []domain.StepLog{
			{
				Name:      domain.StepPrerequisite,
				Started:   started,
				Completed: started.Add(120 * time.Millisecond),
				Output:    "[INFO] running python --version\n",
			},
			{
				Name:      domain.StepBuild,
				Started:   started.Add(time.Second),
				Completed: started.Add(3 * time.Second),
				Error:     "exit status 1",
			},
		},
	}, nil)

	t.Setenv("NO_COLOR", "1")
	var out bytes.Buffer
	f.cli.SetArgs([]string{"log"})
	f.cli.SetOut(&out)
	err := f.cli.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Run 3f1c2a9e-run\n"+
		"✓ "+domain.StepPrerequisite+" (120ms)\n"+
		"    [INFO] running python --version\n"+
		"✗ "+domain.StepBuild+" (2s): exit status 1\n", out.String())
}

func TestLog_ByRunID(t *testing.T) {
	f := newFixture(t)
	f.runLogs.EXPECT().Read("older-run").Return(domain.RunLog{RunID: "older-run"}, nil)

	t.Setenv("NO_COLOR", "1")
	var out bytes.Buffer
	f.cli.SetArgs([]string{"log", "older-run"})
	f.cli.SetOut(&out)
	err := f.cli.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Run older-run\nNo steps recorded.\n", out.String())
}

func TestLog_NotFound(t *testing.T) {
	f := newFixture(t)
	f.runLogs.EXPECT().Read("missing").Return(domain.RunLog{}, domain.ErrRunLogNotFound)

	f.cli.SetArgs([]string{"log", "missing"})
	err := f.cli.Execute(context.Background())

	require.ErrorIs(t, err, domain.ErrRunLogNotFound)
}

func TestVerboseRaisesLogLevel(t *testing.T) {
	f := newFixture(t)
	f.log.EXPECT().SetLevel(domain.LogLevelDebug)

	var out bytes.Buffer
	f.cli.SetArgs([]string{"version", "--verbose"})
	f.cli.SetOut(&out)
	err := f.cli.Execute(context.Background())

	require.NoError(t, err)
}

func TestVersion(t *testing.T) {
	f := newFixture(t)

	var out bytes.Buffer
	f.cli.SetArgs([]string{"version"})
	f.cli.SetOut(&out)
	err := f.cli.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, build.String()+"\n", out.String())
}

func TestRoot_RejectsArgs(t *testing.T) {
	f := newFixture(t)

	f.cli.SetArgs([]string{"extra"})
	err := f.cli.Execute(context.Background())

	require.Error(t, err)
}
