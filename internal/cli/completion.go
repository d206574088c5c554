package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the command that generates svgkit completion
// scripts for bash, zsh, fish and PowerShell.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for svgkit.

Bash:
  $ source <(svgkit completion bash)

Zsh:
  $ svgkit completion zsh > "${fpath[1]}/_svgkit"

Fish:
  $ svgkit completion fish > ~/.config/fish/completions/svgkit.fish

PowerShell:
  PS> svgkit completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(c.out, true)
			case "zsh":
				return root.GenZshCompletion(c.out)
			case "fish":
				return root.GenFishCompletion(c.out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(c.out)
			}
			return nil
		},
	}
}
