package commands

import (
	"errors"

	"grocery/internal/pkg/guard"
)

var ErrRefreshSnapshotsCommandIsNotConstructed = errors.New(
	"RefreshSnapshotsCommand must be created via NewRefreshSnapshotsCommand constructor",
)

// RefreshSnapshotsCommand triggers a rebuild of the immutable configuration
// views from storage: the geographic hierarchy, the catalog directory, and
// the vendor assignments with their allocation rules. The rebuilt views are
// published atomically; readers keep the previous generation until the swap.
//
// Example:
//
//	cmd := NewRefreshSnapshotsCommand()
//	err := handler.Handle(ctx, cmd)
type RefreshSnapshotsCommand struct {
	guard guard.ConstructorGuard
}

// NewRefreshSnapshotsCommand creates a parameterless command to rebuild and
// publish all configuration snapshots.
func NewRefreshSnapshotsCommand() RefreshSnapshotsCommand {
	return RefreshSnapshotsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *RefreshSnapshotsCommand) Validate() error {
	return c.guard.Validate(ErrRefreshSnapshotsCommandIsNotConstructed)
}
