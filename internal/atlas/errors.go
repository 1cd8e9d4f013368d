package atlas

import (
	"errors"
	"fmt"
)

var (
	ErrDoesNotFit      = errors.New("image does not fit within page bounds")
	ErrBuilderConsumed = errors.New("builder already consumed by Build")
)

// UnknownTileError reports a lookup for a tile index that was never
// registered. This is a content bug, not a runtime condition; callers
// should treat it as fatal.
type UnknownTileError struct {
	Index TileIndex
}

func (e *UnknownTileError) Error() string {
	return fmt.Sprintf("tile index %d was never registered", e.Index)
}
