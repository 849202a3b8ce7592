package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

const (
	// DefaultInterpreter is the Python launcher probed and used to run pip and PyInstaller.
	DefaultInterpreter = "python"
	// DefaultScript is the GUI entry script that gets packaged.
	DefaultScript = "loveadmin_fa_reconcile_gui.py"
	// DefaultResource is the icon bundled next to the packaged script.
	DefaultResource = "wwfc.png"
	// DefaultOutputDir is where PyInstaller places the finished executable.
	DefaultOutputDir = "dist"
	// DefaultWorkDir is PyInstaller's intermediate build directory.
	DefaultWorkDir = "build"
	// DefaultExeExtension is the platform executable suffix of the artifact.
	DefaultExeExtension = ".exe"
	// DefaultDataDest is the bundle-relative directory the resource is copied to.
	DefaultDataDest = "."
	// DefaultConfigFile is the optional project configuration file name.
	DefaultConfigFile = "freeze.yaml"
	// DefaultHistoryPath is where the build history is kept, relative to the working directory.
	DefaultHistoryPath = ".freeze/history.json"
	// DefaultRunLogDir holds one step journal per run, named after the run ID.
	DefaultRunLogDir = ".freeze/runs"
)

// DefaultPackages returns the fixed dependency list installed before every build:
// the packaging tool, the image library, the data-table library and the spreadsheet library.
func DefaultPackages() []string {
	return []string{"pyinstaller", "pillow", "pandas", "openpyxl"}
}

// BuildFlags is the packager configuration. It is fixed and never read from user input.
type BuildFlags struct {
	OneFile  bool
	Windowed bool
	DataDest string
}

// FixedBuildFlags returns the only flag set the packager is ever invoked with.
func FixedBuildFlags() BuildFlags {
	return BuildFlags{
		OneFile:  true,
		Windowed: true,
		DataDest: DefaultDataDest,
	}
}

// BuildConfig holds every input of a packaging run.
type BuildConfig struct {
	Interpreter  string
	Script       string
	Resource     string
	Packages     []string
	OutputDir    string
	WorkDir      string
	ExeExtension string
	Flags        BuildFlags
}

// DefaultBuildConfig returns the configuration used when no config file overrides it.
func DefaultBuildConfig() BuildConfig {
	return BuildConfig{
		Interpreter:  DefaultInterpreter,
		Script:       DefaultScript,
		Resource:     DefaultResource,
		Packages:     DefaultPackages(),
		OutputDir:    DefaultOutputDir,
		WorkDir:      DefaultWorkDir,
		ExeExtension: DefaultExeExtension,
		Flags:        FixedBuildFlags(),
	}
}

// ScriptBase returns the script file name without directory and extension.
func (c BuildConfig) ScriptBase() string {
	base := filepath.Base(c.Script)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ArtifactPath returns the path the packager is expected to produce.
// The result depends only on the configuration, so repeated runs agree on it.
func (c BuildConfig) ArtifactPath() string {
	return filepath.Join(c.OutputDir, c.ScriptBase()+c.ExeExtension)
}

// SpecFile returns the path of the spec file PyInstaller writes next to the script.
func (c BuildConfig) SpecFile() string {
	return c.ScriptBase() + ".spec"
}

// Inputs returns the files that must exist before the packager runs.
func (c BuildConfig) Inputs() []string {
	return []string{c.Script, c.Resource}
}

// Validate reports the first missing required setting.
func (c BuildConfig) Validate() error {
	var field string
	switch {
	case c.Interpreter == "":
		field = "interpreter"
	case c.Script == "":
		field = "script"
	case c.Resource == "":
		field = "resource"
	case c.OutputDir == "":
		field = "outputDir"
	case len(c.Packages) == 0:
		field = "packages"
	default:
		return nil
	}
	return zerr.With(zerr.Wrap(ErrInvalidConfig, field+" is required"), "field", field)
}
