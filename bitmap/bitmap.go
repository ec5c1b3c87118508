/*
Package bitmap compresses rasters into opaque payloads for compressed
bitmap messages.  Image containers (png, jpg, bmp, tiff) suit browser
clients that decode them natively; the raw snappy and gzip formats keep
exact pixel values at lower cost when both ends speak this module.
*/
package bitmap

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/roboviz/gridtransport/gridtransport"
	"github.com/roboviz/gridtransport/msgs"
)

// Fill encodes a raster into the payload of a compressed bitmap message using
// the given format tag.  Image formats follow the "name[:quality]" convention,
// e.g. "png" or "jpg:80".  The message's header, origin, and resolutions are
// the caller's concern; Fill sets only the payload and its content type.
func Fill(img *gridtransport.Image, format string, out *msgs.CompressedBitmap) error {
	name := strings.SplitN(format, ":", 2)[0]

	var data []byte
	var contentType string
	var err error
	switch name {
	case "", "png":
		data, err = img.GetPNG()
		contentType = "image/png"
	case "jpg", "jpeg":
		var buf bytes.Buffer
		err = gridtransport.WriteImage(&buf, img.Get(), format)
		data = buf.Bytes()
		contentType = "image/jpeg"
	case "tiff", "tif":
		var buf bytes.Buffer
		err = gridtransport.WriteImage(&buf, img.Get(), format)
		data = buf.Bytes()
		contentType = "image/tiff"
	case "bmp":
		var buf bytes.Buffer
		err = gridtransport.WriteImage(&buf, img.Get(), format)
		data = buf.Bytes()
		contentType = "image/bmp"
	case "snappy":
		data, err = img.Serialize(gridtransport.Snappy, gridtransport.CRC32)
		contentType = "application/x-snappy-raster"
	case "gzip":
		data, err = img.Serialize(gridtransport.Gzip, gridtransport.CRC32)
		contentType = "application/x-gzip-raster"
	default:
		return fmt.Errorf("illegal compressed bitmap format %q", format)
	}
	if err != nil {
		return err
	}

	nx, ny := img.Size()
	gridtransport.Debugf("compressed %d x %d raster into %s of %s\n",
		nx, ny, contentType, humanize.Bytes(uint64(len(data))))

	out.ContentType = contentType
	out.Data = data
	return nil
}

// Extract decodes a raw snappy or gzip payload produced by Fill back into a
// raster.  Image-container payloads are for external viewers and are not
// decoded here.
func Extract(in *msgs.CompressedBitmap) (*gridtransport.Image, error) {
	switch in.ContentType {
	case "application/x-snappy-raster", "application/x-gzip-raster":
		img := new(gridtransport.Image)
		if err := img.Deserialize(in.Data); err != nil {
			return nil, err
		}
		return img, nil
	default:
		return nil, fmt.Errorf("cannot extract raster from %q payload", in.ContentType)
	}
}
