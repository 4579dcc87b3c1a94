package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solforge/solforge/internal/app"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Create a new project",
	Long: `Create a new smart-contract project at the given path (default: current
directory).

Without a template, a local skeleton is written: src/, test/ and script/
directories with starter files, foundry.toml, a git repository with
.gitignore and a CI workflow, and the forge-std library under lib/.

With --template, the remote template repository is fetched instead and its
history is collapsed into a single commit recording the template source.

Template references:
  - Full URL:   https://github.com/owner/repo
  - Short form: github.com/owner/repo
  - Owner/repo: owner/repo

Examples:
  solforge init
  solforge init my-project --vscode --commit
  solforge init my-project --vyper
  solforge init my-project --template owner/template-repo
  solforge init my-project --template owner/template-repo --branch v2`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

// Init command flags
var (
	initTemplate string
	initBranch   string
	initOffline  bool
	initForce    bool
	initVSCode   bool
	initVyper    bool
	initShallow  bool
	initNoGit    bool
	initCommit   bool
)

func init() {
	// Flags for init
	initCmd.Flags().StringVarP(&initTemplate, FlagTemplate, "t", "", "Template repository to start from")
	initCmd.Flags().StringVarP(&initBranch, FlagBranch, "b", "", "Template branch (requires --template)")
	initCmd.Flags().BoolVar(&initOffline, FlagOffline, false, "Do not install dependencies from the network")
	initCmd.Flags().BoolVar(&initForce, FlagForce, false, "Create the project even if the directory is not empty")
	initCmd.Flags().BoolVar(&initVSCode, FlagVSCode, false, "Generate remappings.txt and .vscode/settings.json")
	initCmd.Flags().BoolVar(&initVyper, FlagVyper, false, "Initialize a Vyper project template")
	initCmd.Flags().BoolVar(&initShallow, FlagShallow, false, "Initialize submodules without fetching content")
	initCmd.Flags().BoolVar(&initNoGit, FlagNoGit, false, "Skip all version-control setup")
	initCmd.Flags().BoolVar(&initCommit, FlagCommit, false, "Commit the scaffolded files")

	// Template mode excludes the default-mode flags
	initCmd.MarkFlagsMutuallyExclusive(FlagTemplate, FlagOffline)
	initCmd.MarkFlagsMutuallyExclusive(FlagTemplate, FlagForce)
	initCmd.MarkFlagsMutuallyExclusive(FlagTemplate, FlagVSCode)
	initCmd.MarkFlagsMutuallyExclusive(FlagTemplate, FlagVyper)
}

func runInit(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	if initTemplate != "" {
		printInfo(fmt.Sprintf("Initializing %s from %s...", root, initTemplate))
	} else {
		printInfo(fmt.Sprintf("Initializing %s...", root))
	}

	result, err := app.Init(cmd.Context(), app.InitOptions{
		Root:     root,
		Template: initTemplate,
		Branch:   initBranch,
		Offline:  initOffline,
		Force:    initForce,
		VSCode:   initVSCode,
		Vyper:    initVyper,
		Shallow:  initShallow,
		NoGit:    initNoGit,
		Commit:   initCommit,
		Confirm:  confirm(),
	})
	if err != nil {
		printErrorMsg(fmt.Sprintf("Initialization failed: %v", err))
		return err
	}

	for _, warning := range result.Warnings {
		printWarning(warning)
	}

	printSuccess("Initialized solforge project")
	return nil
}
