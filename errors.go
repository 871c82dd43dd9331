package artboard

import "errors"

// Sentinel errors for the artboard package.
var (
	// ErrUnknownLayer is returned when a layer id is referenced but not present
	// in the tree.
	ErrUnknownLayer = errors.New("artboard: unknown layer")

	// ErrLayerCycle is returned when a group contains itself, directly or
	// through descendants.
	ErrLayerCycle = errors.New("artboard: layer cycle")

	// ErrParentMismatch is returned when a layer's ParentID disagrees with
	// the group that lists it, or when a layer is listed more than once.
	ErrParentMismatch = errors.New("artboard: parent mismatch")

	// ErrAssetNotFound is returned when an image layer references an asset
	// that the AssetStore does not know.
	ErrAssetNotFound = errors.New("artboard: asset not found")

	// ErrDecode is returned when an asset source cannot be decoded.
	ErrDecode = errors.New("artboard: decode failed")

	// ErrNoSource is returned when an asset source is neither a data URL nor
	// resolvable by the configured Fetcher.
	ErrNoSource = errors.New("artboard: no source")

	// ErrNoBuffer is returned when a layer produced no pixel buffer.
	ErrNoBuffer = errors.New("artboard: no buffer")
)
