package retouch

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/gogpu/artboard"
	"github.com/google/uuid"
)

// Commit is the result of a finished stroke: the edited buffer and the id
// the new asset should be stored under.
type Commit struct {
	AssetID string
	Tool    string
	Image   *image.NRGBA
}

func newCommit(tool string, img *image.NRGBA) *Commit {
	c := &Commit{AssetID: uuid.NewString(), Tool: tool, Image: img}
	artboard.Logger().Info("retouch: stroke committed", "tool", tool, "asset", c.AssetID,
		"width", img.Rect.Dx(), "height", img.Rect.Dy())
	return c
}

// Asset encodes the committed image as a PNG data URL asset.
func (c *Commit) Asset() (artboard.MediaAsset, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, c.Image); err != nil {
		return artboard.MediaAsset{}, fmt.Errorf("retouch: encode %s: %w", c.AssetID, err)
	}
	return artboard.MediaAsset{
		ID:     c.AssetID,
		Source: "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
	}, nil
}
