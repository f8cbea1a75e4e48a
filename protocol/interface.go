package protocol

import (
	"context"

	"github.com/fireant-io/tap-fireant/types"
)

// Driver is the surface a source connector exposes to the protocol
// commands.
type Driver interface {
	GetConfigRef() any
	Spec() map[string]any
	Type() string
	Setup(ctx context.Context) error
	SetupState(state *types.State)
	Discover(ctx context.Context) ([]*types.Stream, error)
	Sync(ctx context.Context, streams []types.StreamInterface) error
}
