package python_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/freeze/internal/adapters/python"
	"go.trai.ch/freeze/internal/core/domain"
	"go.trai.ch/freeze/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*python.Toolchain, *mocks.MockProcessRunner) {
	t.Helper()
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockProcessRunner(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return python.NewToolchain(runner, log), runner
}

func TestProbe_Available(t *testing.T) {
	tc, runner := setup(t)

	runner.EXPECT().Run(gomock.Any(), domain.Command{
		Name:  "python",
		Args:  []string{"--version"},
		Quiet: true,
	}).Return(domain.ProcessResult{Output: "Python 3.12.1\n"}, nil).Times(1)

	version, err := tc.Probe(context.Background(), "python")
	require.NoError(t, err)
	assert.Equal(t, "Python 3.12.1", version)
}

func TestProbe_Unavailable(t *testing.T) {
	tc, runner := setup(t)

	runner.EXPECT().Run(gomock.Any(), gomock.Any()).
		Return(domain.ProcessResult{ExitCode: -1}, domain.ErrCommandFailed).Times(1)

	_, err := tc.Probe(context.Background(), "python")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMissingPrerequisite))
}

func TestInstall_FixedPackageList(t *testing.T) {
	tc, runner := setup(t)

	runner.EXPECT().Run(gomock.Any(), domain.Command{
		Name: "python",
		Args: []string{"-m", "pip", "install", "--quiet", "pyinstaller", "pillow", "pandas", "openpyxl"},
	}).Return(domain.ProcessResult{}, nil).Times(1)

	err := tc.Install(context.Background(), "python", domain.DefaultPackages())
	require.NoError(t, err)
}

func TestInstall_Failure(t *testing.T) {
	tc, runner := setup(t)

	runner.EXPECT().Run(gomock.Any(), gomock.Any()).
		Return(domain.ProcessResult{ExitCode: 1}, domain.ErrCommandFailed).Times(1)

	err := tc.Install(context.Background(), "python", domain.DefaultPackages())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDependencyInstall))
}

func TestPackagerArgs_Defaults(t *testing.T) {
	cfg := domain.DefaultBuildConfig()
	sep := string(os.PathListSeparator)

	assert.Equal(t, []string{
		"-m", "PyInstaller",
		"--onefile",
		"--noconsole",
		"--add-data", "wwfc.png" + sep + ".",
		"loveadmin_fa_reconcile_gui.py",
	}, python.PackagerArgs(cfg))
}

func TestPackagerArgs_CustomDirectories(t *testing.T) {
	cfg := domain.DefaultBuildConfig()
	cfg.OutputDir = "out"
	cfg.WorkDir = "tmp"

	args := python.PackagerArgs(cfg)

	assert.Contains(t, args, "--distpath")
	assert.Contains(t, args, "--workpath")
	assert.Equal(t, cfg.Script, args[len(args)-1])
}

func TestPackage_InvokesOnce(t *testing.T) {
	tc, runner := setup(t)
	cfg := domain.DefaultBuildConfig()

	runner.EXPECT().Run(gomock.Any(), domain.Command{
		Name: "python",
		Args: python.PackagerArgs(cfg),
	}).Return(domain.ProcessResult{}, nil).Times(1)

	require.NoError(t, tc.Package(context.Background(), cfg))
}

func TestPackage_Failure(t *testing.T) {
	tc, runner := setup(t)

	runner.EXPECT().Run(gomock.Any(), gomock.Any()).
		Return(domain.ProcessResult{ExitCode: 1}, domain.ErrCommandFailed).Times(1)

	err := tc.Package(context.Background(), domain.DefaultBuildConfig())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPackagerFailed))
}
