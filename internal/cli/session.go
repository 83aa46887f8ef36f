package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Inspect or end sessions",
	Long: `A session scopes the price list. Commands and screens started in the same
session see the same prices until the session ends or goes idle.`,
}

var sessionShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List stored sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		infos, err := appInstance.Snapshots.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}

		fmt.Fprintf(out, "Current session: %s\n\n", appInstance.Session)
		if len(infos) == 0 {
			fmt.Fprintln(out, "No stored sessions")
			return nil
		}

		fmt.Fprintf(out, "%-20s %-20s %-8s %s\n", "Session", "Key", "Bytes", "Updated")
		fmt.Fprintln(out, "----------------------------------------------------------------------")
		for _, info := range infos {
			marker := " "
			if info.SessionID == appInstance.Session {
				marker = "*"
			}
			fmt.Fprintf(out, "%s%-19s %-20s %-8d %s\n",
				marker,
				info.SessionID,
				info.Key,
				info.Size,
				info.UpdatedAt.Local().Format("2006-01-02 15:04"),
			)
		}

		fmt.Fprintf(out, "\nTotal: %d snapshot(s)\n", len(infos))
		return nil
	},
}

var sessionEndCmd = &cobra.Command{
	Use:   "end",
	Short: "End the current session and forget its prices",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirmPrompt(fmt.Sprintf("This will forget all prices of session %q. Continue?", appInstance.Session)) {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}

		if err := appInstance.Bridge.EndSession(cmd.Context()); err != nil {
			return err
		}

		fmt.Fprintf(out, "✓ Session %s ended\n", appInstance.Session)
		return nil
	},
}

func confirmPrompt(message string) bool {
	fmt.Printf("%s [y/N] ", message)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func init() {
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionEndCmd)

	sessionEndCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}
