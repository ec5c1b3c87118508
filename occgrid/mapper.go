package occgrid

import (
	"encoding/binary"
	"fmt"
)

// Canonical cell values for the three occupancy classes.  Any cell value
// other than CellUnknown and CellFree counts as occupied.
const (
	CellUnknown  int8 = -1
	CellFree     int8 = 0
	CellOccupied int8 = 100
)

// CellColorIterator yields the byte encoding of each occupancy cell in turn.
// It is a single-pass cursor over the cell data; restart by creating a new
// iterator on the same input.
type CellColorIterator struct {
	config *ColorConfiguration
	cells  []int8
	i      int
}

// CellColors returns an iterator over the pixel encodings of the given cells.
// Cells equal to -1 map to the unknown color, 0 to the free color, and
// everything else to the occupied color.
func (c *ColorConfiguration) CellColors(cells []int8) *CellColorIterator {
	return &CellColorIterator{config: c, cells: cells}
}

// Len returns the total number of encodings the iterator will yield.
func (it *CellColorIterator) Len() int {
	return len(it.cells)
}

// Next returns the byte encoding of the next cell, or ok == false when the
// cells are exhausted.  The returned slice is shared and must not be modified.
func (it *CellColorIterator) Next() (b []byte, ok bool) {
	if it.i >= len(it.cells) {
		return nil, false
	}
	value := it.cells[it.i]
	it.i++
	switch value {
	case CellUnknown:
		return it.config.Unknown.Bytes, true
	case CellFree:
		return it.config.Free.Bytes, true
	default:
		return it.config.Occupied.Bytes, true
	}
}

// CellValueIterator yields the occupancy cell value of each raster pixel in
// turn.  Pixels are compared by their native integer value; a pixel matching
// neither the unknown nor the free color is classified as occupied, even if
// it does not equal the configured occupied color exactly.
type CellValueIterator struct {
	config        *ColorConfiguration
	pix           []uint8
	bytesPerPixel int
	i             int
}

// CellValues returns an iterator mapping raw raster pixels in row-major order
// back to occupancy cell values.  The pixel data length must be a whole
// number of pixels in the configuration's format.
func (c *ColorConfiguration) CellValues(pix []uint8) (*CellValueIterator, error) {
	bytesPerPixel, err := c.Format.BytesPerPixel()
	if err != nil {
		return nil, err
	}
	if len(pix)%bytesPerPixel != 0 {
		return nil, fmt.Errorf("pixel data length %d is not a multiple of %d bytes/pixel",
			len(pix), bytesPerPixel)
	}
	return &CellValueIterator{config: c, pix: pix, bytesPerPixel: bytesPerPixel}, nil
}

// Len returns the total number of cell values the iterator will yield.
func (it *CellValueIterator) Len() int {
	return len(it.pix) / it.bytesPerPixel
}

// Next returns the occupancy value of the next pixel, or ok == false when the
// pixels are exhausted.
func (it *CellValueIterator) Next() (cell int8, ok bool) {
	if it.i >= len(it.pix) {
		return 0, false
	}
	var value uint32
	if it.bytesPerPixel == 1 {
		value = uint32(it.pix[it.i])
	} else {
		value = binary.LittleEndian.Uint32(it.pix[it.i : it.i+4])
	}
	it.i += it.bytesPerPixel

	switch value {
	case it.config.Unknown.Value:
		return CellUnknown, true
	case it.config.Free.Value:
		return CellFree, true
	default:
		return CellOccupied, true
	}
}
