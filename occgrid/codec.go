package occgrid

import (
	"errors"
	"fmt"

	"github.com/roboviz/gridtransport/gridtransport"
	"github.com/roboviz/gridtransport/msgs"
)

// ErrDataLength is returned when a grid's cell data disagrees with its
// width and height.
var ErrDataLength = errors.New("grid data length does not match width * height")

// GridImage renders an occupancy grid into a raster in the configuration's
// pixel format, one pixel per cell in row-major order.  A nil configuration
// selects the grayscale defaults.
func GridImage(grid *msgs.OccupancyGrid, colors *ColorConfiguration) (*gridtransport.Image, error) {
	if colors == nil {
		colors = DefaultColorConfiguration()
	}
	width, height := int(grid.Info.Width), int(grid.Info.Height)
	if len(grid.Data) != width*height {
		return nil, fmt.Errorf("%d cells for %d x %d grid: %w",
			len(grid.Data), width, height, ErrDataLength)
	}
	img, err := gridtransport.NewImage(colors.Format, width, height)
	if err != nil {
		return nil, err
	}
	pix := img.Data()
	i := 0
	it := colors.CellColors(grid.Data)
	for b, ok := it.Next(); ok; b, ok = it.Next() {
		i += copy(pix[i:], b)
	}
	return img, nil
}

// ImageCells reads a raster's pixels in row-major order back into occupancy
// cell values.  A nil configuration selects the grayscale defaults.
func ImageCells(img *gridtransport.Image, colors *ColorConfiguration) ([]int8, error) {
	if colors == nil {
		colors = DefaultColorConfiguration()
	}
	if img.Format() != colors.Format {
		return nil, fmt.Errorf("raster format %q does not match color format %q",
			img.Format(), colors.Format)
	}
	it, err := colors.CellValues(img.Data())
	if err != nil {
		return nil, err
	}
	cells := make([]int8, 0, it.Len())
	for cell, ok := it.Next(); ok; cell, ok = it.Next() {
		cells = append(cells, cell)
	}
	return cells, nil
}
