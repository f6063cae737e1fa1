package netgraph

import (
	nerrors "github.com/matzehuels/netgraph/pkg/errors"
)

var (
	// ErrNoActiveNode is returned by [Canvas.StopDynamicLine] when no dynamic
	// line is in progress.
	ErrNoActiveNode = nerrors.New(nerrors.ErrCodeContract, "stop dynamic line: no line in progress")

	// ErrNilEndpoint is returned when an edge is requested with a nil node.
	ErrNilEndpoint = nerrors.New(nerrors.ErrCodeContract, "edge endpoint is nil")
)
