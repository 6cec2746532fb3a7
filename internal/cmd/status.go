package cmd

import (
	"context"
	"fmt"
)

// StatusCmd prints a one-line summary for the tmux status bar
type StatusCmd struct{}

// Run executes the status command
func (s *StatusCmd) Run(cli *CLI) error {
	snap, err := cli.Container.SnapshotService.Snapshot(context.Background(), cli.Repo)
	if err != nil {
		// Not a repository: keep the status bar readable
		fmt.Print("+? ~? ?? ↑? ↓?")
		return nil
	}

	c := snap.Counts
	fmt.Printf("%s +%d ~%d ?%d ↑%d ↓%d", snap.Branch, c.Staged, c.Modified, c.Untracked, c.Ahead, c.Behind)
	return nil
}
