package cli

// Flag names and descriptions shared across commands
const (
	FlagDebug = "debug"
	DescDebug = "Enable debug output"

	FlagTemplate = "template"
	FlagBranch   = "branch"
	FlagOffline  = "offline"
	FlagForce    = "force"
	FlagVSCode   = "vscode"
	FlagVyper    = "vyper"
	FlagShallow  = "shallow"
	FlagNoGit    = "no-git"
	FlagCommit   = "commit"
)
