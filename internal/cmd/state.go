package cmd

import (
	"context"
	"fmt"
)

// StateCmd prints the full snapshot
type StateCmd struct{}

// Run executes the state command
func (s *StateCmd) Run(cli *CLI) error {
	snap, err := cli.Container.SnapshotService.Snapshot(context.Background(), cli.Repo)
	if err != nil {
		return err
	}
	return printJSON(snap)
}

// BranchesCmd lists local branches
type BranchesCmd struct {
	JSON bool `help:"Print the branch list as JSON"`
}

// Run executes the branches command
func (b *BranchesCmd) Run(cli *CLI) error {
	list, err := cli.Container.SnapshotService.Branches(context.Background(), cli.Repo)
	if err != nil {
		return err
	}
	if b.JSON {
		return printJSON(list)
	}

	for _, name := range list.Branches {
		marker := "  "
		if name == list.Current {
			marker = "* "
		}
		fmt.Println(marker + name)
	}
	return nil
}
