package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the webuectl command tree on top of console.
func NewRootCommand(console *Console) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "webuectl",
		Short:         "CLI client for the WebUE profile management API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var passwordStdin bool
	loginCmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Sign in and store the issued token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !passwordStdin {
				return fmt.Errorf("--password-stdin is required")
			}
			return console.Login(cmd.Context(), args[0], cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	loginCmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "Read the password from stdin (required)")
	_ = loginCmd.MarkFlagRequired("password-stdin")

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return console.Logout(cmd.OutOrStdout())
		},
	}

	whoamiCmd := &cobra.Command{
		Use:   "whoami",
		Short: "Report whether a token is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return console.Whoami(cmd.OutOrStdout())
		},
	}

	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd, newProfilesCommand(console))
	return rootCmd
}

func newProfilesCommand(console *Console) *cobra.Command {
	profilesCmd := &cobra.Command{
		Use:   "profiles",
		Short: "Manage UE profiles",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stored profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return console.ListProfiles(cmd.Context(), cmd.OutOrStdout())
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <supi>",
		Short: "Delete a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return console.DeleteProfile(cmd.Context(), args[0], cmd.OutOrStdout())
		},
	}

	var updateFile string
	updateCmd := &cobra.Command{
		Use:   "update <supi>",
		Short: "Replace a profile from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return console.UpdateProfile(cmd.Context(), args[0], updateFile, cmd.OutOrStdout())
		},
	}
	updateCmd.Flags().StringVarP(&updateFile, "file", "f", "", "Profile YAML file (required)")
	_ = updateCmd.MarkFlagRequired("file")

	var generateFile string
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate profiles from a YAML request file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return console.GenerateProfiles(cmd.Context(), generateFile, cmd.OutOrStdout())
		},
	}
	generateCmd.Flags().StringVarP(&generateFile, "file", "f", "", "Generation request YAML file (required)")
	_ = generateCmd.MarkFlagRequired("file")

	var exportDir string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write every stored profile as a UE configuration YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return console.ExportProfiles(cmd.Context(), exportDir, cmd.OutOrStdout())
		},
	}
	exportCmd.Flags().StringVar(&exportDir, "dir", console.cfg.ExportDir, "Output directory")

	profilesCmd.AddCommand(listCmd, deleteCmd, updateCmd, generateCmd, exportCmd)
	return profilesCmd
}
