package cmd

import (
	"context"
	"strings"

	"github.com/renato0307/gitdash/internal/domain"
	"github.com/renato0307/gitdash/internal/services"
)

// AddCmd stages changes
type AddCmd struct {
	File     string `arg:"" optional:"" help:"Stage only this file"`
	Modified bool   `help:"Stage modifications of tracked files only" short:"u"`
}

// Run executes the add command
func (a *AddCmd) Run(cli *CLI) error {
	ctx := context.Background()
	svc := cli.Container.MutationService

	switch {
	case a.File != "":
		return printResult(svc.StagePath(ctx, cli.Repo, services.StagePathParams{Path: a.File, Stage: true}))
	case a.Modified:
		return printResult(svc.StageModifiedOnly(ctx, cli.Repo))
	default:
		return printResult(svc.StageAll(ctx, cli.Repo))
	}
}

// UnstageCmd removes changes from the index
type UnstageCmd struct {
	File string `arg:"" optional:"" help:"Unstage only this file"`
}

// Run executes the unstage command
func (u *UnstageCmd) Run(cli *CLI) error {
	ctx := context.Background()
	svc := cli.Container.MutationService

	if u.File != "" {
		return printResult(svc.StagePath(ctx, cli.Repo, services.StagePathParams{Path: u.File, Stage: false}))
	}
	return printResult(svc.UnstageAll(ctx, cli.Repo))
}

// TrackCmd updates the tracked-pending record
type TrackCmd struct {
	All     bool   `help:"Mark every untracked file" short:"a"`
	File    string `arg:"" optional:"" help:"File to mark or unmark"`
	Untrack bool   `help:"Unmark the file instead of marking it"`
}

// Run executes the track command
func (t *TrackCmd) Run(cli *CLI) error {
	ctx := context.Background()
	svc := cli.Container.MutationService

	if t.All {
		return printResult(svc.TrackAllUntracked(ctx, cli.Repo))
	}
	if strings.TrimSpace(t.File) == "" {
		return domain.NewValidationError("file", "a file or --all is required")
	}
	return printResult(svc.TrackPath(ctx, cli.Repo, services.TrackPathParams{Path: t.File, Track: !t.Untrack}))
}

// CommitCmd commits the index
type CommitCmd struct {
	Message string `help:"Commit message" short:"m" required:""`
}

// Run executes the commit command
func (c *CommitCmd) Run(cli *CLI) error {
	return printResult(cli.Container.MutationService.Commit(context.Background(), cli.Repo, c.Message))
}

// PushCmd pushes the current branch
type PushCmd struct{}

// Run executes the push command
func (p *PushCmd) Run(cli *CLI) error {
	return printResult(cli.Container.MutationService.Push(context.Background(), cli.Repo))
}

// CheckoutCmd switches branches
type CheckoutCmd struct {
	Branch string `arg:"" help:"Branch to switch to"`
	Create bool   `help:"Create the branch first" short:"b"`
}

// Run executes the checkout command
func (c *CheckoutCmd) Run(cli *CLI) error {
	params := services.CheckoutParams{Branch: c.Branch, Create: c.Create}
	return printResult(cli.Container.MutationService.Checkout(context.Background(), cli.Repo, params))
}

func printResult(result *domain.MutationResult, err error) error {
	if err != nil {
		return err
	}
	return printJSON(result)
}
