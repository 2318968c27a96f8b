package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var wipeForce bool

var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Delete all tracked data",
	Long:  "Delete the ledger file: all day entries, goals, budget and history. The config file stays.",
	RunE:  runWipe,
}

func init() {
	wipeCmd.Flags().BoolVar(&wipeForce, "force", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(wipeCmd)
}

func runWipe(_ *cobra.Command, _ []string) error {
	store := openStore()

	if !wipeForce {
		fmt.Printf("This deletes %s and cannot be undone. Type 'yes' to continue: ", store.Path())
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if strings.TrimSpace(line) != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := store.Wipe(); err != nil {
		return fmt.Errorf("wiping ledger: %w", err)
	}
	if !flagQuiet {
		fmt.Println("All data wiped.")
	}
	return nil
}
