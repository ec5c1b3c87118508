/*
	This file supports raster operations.  Rasters act as fixed-format pixel
	containers so occupancy data can be transmitted in standard image
	containers that web and robot clients already decode well.
*/

package gridtransport

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"strconv"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// DefaultJPEGQuality is the quality of images returned if requesting JPEG images
// and an explicit quality amount is omitted.
const DefaultJPEGQuality = 80

// PixelFormat is a tag for the pixel layout of a raster.
type PixelFormat string

const (
	// FormatGray is 8-bit grayscale, one byte per pixel.
	FormatGray PixelFormat = "L"

	// FormatRGBA is 4x8-bit color, four bytes per pixel.
	FormatRGBA PixelFormat = "RGBA"
)

// BytesPerPixel returns the pixel stride of the format.
func (f PixelFormat) BytesPerPixel() (int, error) {
	switch f {
	case FormatGray:
		return 1, nil
	case FormatRGBA:
		return 4, nil
	default:
		return 0, fmt.Errorf("unknown pixel format %q", f)
	}
}

// Image contains a standard Go image restricted to the pixel formats used for
// occupancy rasters.  Rasters hold class labels rather than measured
// intensities, so resizing never interpolates: blending an occupied pixel with
// a free pixel would invent a value that is neither.  Better serialization is
// handled by a union of possible image types compared to a generic
// image.Image interface.
type Image struct {
	Which uint8
	Gray  *image.Gray
	NRGBA *image.NRGBA
}

// NewImage returns a zeroed raster of the given size and pixel format.
func NewImage(format PixelFormat, nx, ny int) (*Image, error) {
	if nx <= 0 || ny <= 0 {
		return nil, fmt.Errorf("attempted to create %d x %d raster", nx, ny)
	}
	img := new(Image)
	switch format {
	case FormatGray:
		img.Which = 0
		img.Gray = image.NewGray(image.Rect(0, 0, nx, ny))
	case FormatRGBA:
		img.Which = 1
		img.NRGBA = image.NewNRGBA(image.Rect(0, 0, nx, ny))
	default:
		return nil, fmt.Errorf("unknown pixel format %q", format)
	}
	return img, nil
}

// Set initializes a raster from a Go image.
func (img *Image) Set(src image.Image) error {
	switch s := src.(type) {
	case *image.Gray:
		img.Which = 0
		img.Gray = s
		img.NRGBA = nil
	case *image.NRGBA:
		img.Which = 1
		img.NRGBA = s
		img.Gray = nil
	default:
		return fmt.Errorf("no valid image type received by raster Set(): %T", src)
	}
	return nil
}

// Get returns an image.Image from the union struct.
func (img Image) Get() image.Image {
	switch img.Which {
	case 0:
		return img.Gray
	case 1:
		return img.NRGBA
	default:
		return nil
	}
}

// Format returns the pixel format tag of the raster.
func (img Image) Format() PixelFormat {
	switch img.Which {
	case 0:
		return FormatGray
	default:
		return FormatRGBA
	}
}

// Data returns a slice of bytes corresponding to the raster pixels in
// row-major order.
func (img *Image) Data() []uint8 {
	switch img.Which {
	case 0:
		return img.Gray.Pix
	case 1:
		return img.NRGBA.Pix
	default:
		return nil
	}
}

// Size returns the raster width and height in pixels.
func (img *Image) Size() (nx, ny int) {
	bounds := img.Get().Bounds()
	return bounds.Dx(), bounds.Dy()
}

// Resize returns a raster scaled to the given size without interpolation.
// Resizing to the source size returns the receiver unchanged.
func (img *Image) Resize(dstW, dstH int) (*Image, error) {
	if img == nil {
		return nil, fmt.Errorf("attempted to resize nil raster")
	}
	srcW, srcH := img.Size()
	if srcW == dstW && srcH == dstH {
		return img, nil
	}
	if dstW <= 0 || dstH <= 0 {
		return nil, fmt.Errorf("attempted to resize to %d x %d pixels", dstW, dstH)
	}
	if srcW <= 0 || srcH <= 0 {
		return nil, fmt.Errorf("attempted to resize source raster of %d x %d pixels", srcW, srcH)
	}

	dst := new(Image)
	switch img.Which {
	case 0:
		return dst, dst.Set(resize1x8(img.Gray, dstW, dstH))
	case 1:
		return dst, dst.Set(resize4x8(img.NRGBA, dstW, dstH))
	default:
		return nil, fmt.Errorf("illegal raster type (%d) for resize", img.Which)
	}
}

func resize1x8(src *image.Gray, dstW, dstH int) image.Image {
	srcRect := src.Bounds()
	srcW := srcRect.Dx()
	srcH := srcRect.Dy()

	dstW64, dstH64 := uint64(dstW), uint64(dstH)
	srcW64, srcH64 := uint64(srcW), uint64(srcH)

	dst := image.NewGray(image.Rect(0, 0, dstW, dstH))
	var x, y uint64
	dstI := 0
	for y = 0; y < dstH64; y++ {
		srcY := int(y * srcH64 / dstH64)
		for x = 0; x < dstW64; x++ {
			srcX := int(x * srcW64 / dstW64)
			dst.Pix[dstI] = src.Pix[srcY*srcW+srcX]
			dstI++
		}
	}
	return dst
}

func resize4x8(src *image.NRGBA, dstW, dstH int) image.Image {
	srcRect := src.Bounds()
	srcW := srcRect.Dx()
	srcH := srcRect.Dy()

	dstW64, dstH64 := uint64(dstW), uint64(dstH)
	srcW64, srcH64 := uint64(srcW), uint64(srcH)

	dst := image.NewNRGBA(image.Rect(0, 0, dstW, dstH))
	var x, y uint64
	dstI := 0
	for y = 0; y < dstH64; y++ {
		srcY := int(y * srcH64 / dstH64)
		for x = 0; x < dstW64; x++ {
			srcX := int(x * srcW64 / dstW64)
			srcI := 4 * (srcY*srcW + srcX)
			copy(dst.Pix[dstI:dstI+4], src.Pix[srcI:srcI+4])
			dstI += 4
		}
	}
	return dst
}

// Serialize writes optionally compressed and checksummed bytes representing raster data.
func (img *Image) Serialize(compress Compression, checksum Checksum) ([]byte, error) {
	b, err := img.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return SerializeData(b, compress, checksum)
}

// Deserialize restores a raster from a possibly compressed, checksummed byte slice.
func (img *Image) Deserialize(b []byte) error {
	if img == nil {
		return fmt.Errorf("attempted to deserialize into nil raster")
	}
	data, _, err := DeserializeData(b, true)
	if err != nil {
		return err
	}
	return img.UnmarshalBinary(data)
}

// MarshalBinary fulfills the encoding.BinaryMarshaler interface.
func (img *Image) MarshalBinary() ([]byte, error) {
	var buffer bytes.Buffer

	if err := buffer.WriteByte(byte(img.Which)); err != nil {
		return nil, err
	}

	var stride, bytesPerPixel int
	var rect image.Rectangle
	var pix, src []uint8
	var pixOffset func(x, y int) int

	switch img.Which {
	case 0:
		stride = img.Gray.Stride
		rect = img.Gray.Rect
		bytesPerPixel = 1
		src = img.Gray.Pix
		pixOffset = img.Gray.PixOffset
	case 1:
		stride = img.NRGBA.Stride
		rect = img.NRGBA.Rect
		bytesPerPixel = 4
		src = img.NRGBA.Pix
		pixOffset = img.NRGBA.PixOffset
	default:
		return nil, fmt.Errorf("illegal raster type (%d) for marshaling", img.Which)
	}

	// Make sure the byte slice is compact and not harboring any offsets.
	if stride == bytesPerPixel*rect.Dx() && rect.Min.X == 0 && rect.Min.Y == 0 {
		pix = src
	} else {
		dx := rect.Dx()
		dy := rect.Dy()
		rowbytes := bytesPerPixel * dx
		totbytes := rowbytes * dy
		pix = make([]uint8, totbytes)
		dstI := 0
		for y := rect.Min.Y; y < rect.Max.Y; y++ {
			srcI := pixOffset(rect.Min.X, y)
			copy(pix[dstI:dstI+rowbytes], src[srcI:srcI+rowbytes])
			dstI += rowbytes
		}
		stride = rowbytes
		rect = image.Rect(0, 0, dx, dy)
	}

	if err := binary.Write(&buffer, binary.LittleEndian, int32(stride)); err != nil {
		return nil, err
	}
	if err := binary.Write(&buffer, binary.LittleEndian, int32(rect.Dx())); err != nil {
		return nil, err
	}
	if err := binary.Write(&buffer, binary.LittleEndian, int32(rect.Dy())); err != nil {
		return nil, err
	}
	if _, err := buffer.Write(pix); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// UnmarshalBinary fulfills the encoding.BinaryUnmarshaler interface.
func (img *Image) UnmarshalBinary(b []byte) error {
	buffer := bytes.NewBuffer(b)
	imageType, err := buffer.ReadByte()
	if err != nil {
		return err
	}
	img.Which = uint8(imageType)

	var stride int32
	if err = binary.Read(buffer, binary.LittleEndian, &stride); err != nil {
		return err
	}
	var dx, dy int32
	if err = binary.Read(buffer, binary.LittleEndian, &dx); err != nil {
		return err
	}
	if err = binary.Read(buffer, binary.LittleEndian, &dy); err != nil {
		return err
	}
	rect := image.Rect(0, 0, int(dx), int(dy))
	pix := []uint8(buffer.Bytes())

	switch img.Which {
	case 0:
		img.Gray = &image.Gray{
			Stride: int(stride),
			Rect:   rect,
			Pix:    pix,
		}
	case 1:
		img.NRGBA = &image.NRGBA{
			Stride: int(stride),
			Rect:   rect,
			Pix:    pix,
		}
	default:
		return fmt.Errorf("illegal raster type (%d) in marshaled data", img.Which)
	}
	return nil
}

// GetPNG returns PNG-encoded bytes of the raster.
func (img *Image) GetPNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img.Get()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GetJPEG returns JPEG-encoded bytes of the raster at the given quality.
func (img *Image) GetJPEG(quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img.Get(), &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ImageGrayFromData returns a Gray raster given pixel data and image size.
func ImageGrayFromData(data []uint8, nx, ny int) *Image {
	return &Image{
		Which: 0,
		Gray: &image.Gray{
			Pix:    data,
			Stride: nx,
			Rect:   image.Rect(0, 0, nx, ny),
		},
	}
}

// ImageNRGBAFromData returns an RGBA raster given pixel data and image size.
func ImageNRGBAFromData(data []uint8, nx, ny int) *Image {
	return &Image{
		Which: 1,
		NRGBA: &image.NRGBA{
			Pix:    data,
			Stride: 4 * nx,
			Rect:   image.Rect(0, 0, nx, ny),
		},
	}
}

// WriteImage writes a raster to a writer using a format and optional
// compression strength specified in a string, e.g., "png", "jpg:80".
func WriteImage(w io.Writer, img image.Image, formatStr string) (err error) {
	format := strings.Split(formatStr, ":")
	var compression int = DefaultJPEGQuality
	if len(format) > 1 {
		compression, err = strconv.Atoi(format[1])
		if err != nil {
			return err
		}
	}
	switch format[0] {
	case "", "png":
		err = png.Encode(w, img)
	case "jpg", "jpeg":
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: compression})
	case "tiff", "tif":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case "bmp":
		err = bmp.Encode(w, img)
	default:
		err = fmt.Errorf("illegal image format requested: %s", format[0])
	}
	return
}
