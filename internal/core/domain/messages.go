package domain

// MessageLevel selects how a console message is presented.
type MessageLevel int

const (
	// MessageInfo is a progress line.
	MessageInfo MessageLevel = iota
	// MessageSuccess announces a produced artifact.
	MessageSuccess
	// MessageWarning flags something the operator should look at.
	MessageWarning
	// MessageFailure announces a failed or aborted run.
	MessageFailure
)

// User-facing console messages.
const (
	MsgPythonMissing  = "Python is not installed or not in PATH. Please install Python and try again."
	MsgInstalling     = "Installing required Python packages..."
	MsgBuilding       = "Building the executable..."
	MsgBuildSucceeded = "Build succeeded! The executable is located in the dist folder."
	MsgBuildFailed    = "Build failed. Please check the output for errors."
	MsgInputMissing   = "Required input file not found: "
	MsgStaleArtifact  = "The packager reported an error but an unchanged executable from a previous run is present."
	MsgPausePrompt    = "Press Enter to continue . . ."
)
