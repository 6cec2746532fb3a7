package integration

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/renato0307/gitdash/internal/cmd"
	"github.com/renato0307/gitdash/internal/config"
)

// newContainer wires the production services over the real git adapters and the JSON store
func newContainer(t *testing.T) *cmd.Container {
	t.Helper()
	container, err := cmd.NewContainer(cmd.ContainerOptions{TrackedStore: config.TrackedStoreJSON})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Close() })
	return container
}
