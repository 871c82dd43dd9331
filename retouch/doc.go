// Package retouch implements the pixel editing tools of the editor: brush,
// eraser, clone stamp, healing brush, spot healing and sponge.
//
// # Working Buffers
//
// A tool never edits its source bitmap. Start copies the source into a
// private straight-alpha working buffer; every dab of the stroke edits that
// buffer; End hands it back as a [Commit] carrying a fresh asset id. The
// committed image also becomes the tool's source for its next stroke.
// Cancel drops the buffer, so an abandoned stroke changes nothing.
//
// # Dabs
//
// Pointer samples are spaced by a [Sampler] so that the number of dabs
// depends on the distance travelled, not on the pointer event rate. Each
// dab is shaped by a [Mask] whose soft edge is controlled by the hardness
// setting. Dabs whose sample region falls outside the buffer are skipped
// without ending the stroke.
//
// # Quick Start
//
//	clone := retouch.NewCloneStamp(photo, retouch.DefaultCloneSettings())
//	clone.SetSource(50, 50)
//	clone.Start(10, 10, 1)
//	clone.Continue(30, 12, 1)
//	if c, ok := clone.End(); ok {
//	    asset, err := c.Asset()
//	    // store asset and point the image layer at asset.ID
//	}
//
// # Coordinates
//
// Tools take buffer pixel coordinates. [Session] converts artboard
// coordinates for the active tool through the matrix returned by
// artboard.Tree.PixelMatrix.
package retouch
