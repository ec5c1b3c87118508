package occgrid

import (
	"errors"
	"reflect"
	"testing"

	"github.com/roboviz/gridtransport/msgs"
)

func testGrid(width, height uint32, data []int8) *msgs.OccupancyGrid {
	return &msgs.OccupancyGrid{
		Header: msgs.Header{Seq: 7, FrameID: "map"},
		Info: msgs.MapMetaData{
			MapLoadTime: msgs.Time{Sec: 100},
			Resolution:  0.1,
			Width:       width,
			Height:      height,
			Origin: msgs.Pose{
				Position:    msgs.Point{X: -1.5, Y: 3},
				Orientation: msgs.Quaternion{W: 1},
			},
		},
		Data: data,
	}
}

func TestGridImage(t *testing.T) {
	grid := testGrid(3, 2, []int8{-1, 0, 100, 0, 0, -1})
	img, err := GridImage(grid, nil)
	if err != nil {
		t.Fatalf("Unable to decode grid into raster: %v\n", err)
	}
	nx, ny := img.Size()
	if nx != 3 || ny != 2 {
		t.Fatalf("Expected 3 x 2 raster, got %d x %d\n", nx, ny)
	}
	want := []uint8{
		DefaultColorUnknown, DefaultColorFree, DefaultColorOccupied,
		DefaultColorFree, DefaultColorFree, DefaultColorUnknown,
	}
	if !reflect.DeepEqual(img.Data(), want) {
		t.Errorf("Bad raster pixels: %v\n", img.Data())
	}
}

func TestGridImageSizeMismatch(t *testing.T) {
	grid := testGrid(3, 2, []int8{-1, 0, 100})
	if _, err := GridImage(grid, nil); !errors.Is(err, ErrDataLength) {
		t.Errorf("Expected ErrDataLength for short data, got %v\n", err)
	}
}

func TestRoundTripIdentity(t *testing.T) {
	// encode(decode(g)) == g.data when no resize happens, for any data whose
	// cells are already canonical class values.
	data := []int8{
		-1, 0, 100, 0,
		0, 100, -1, -1,
		100, 100, 0, 0,
	}
	grid := testGrid(4, 3, data)

	img, err := GridImage(grid, nil)
	if err != nil {
		t.Fatalf("Unable to decode grid into raster: %v\n", err)
	}
	cells, err := ImageCells(img, nil)
	if err != nil {
		t.Fatalf("Unable to encode raster into cells: %v\n", err)
	}
	if !reflect.DeepEqual(cells, data) {
		t.Errorf("Round trip changed data: expected %v, got %v\n", data, cells)
	}
}

func TestRoundTripRGBA(t *testing.T) {
	occupied := RGBAColor(0, 0, 0, 255)
	free := RGBAColor(255, 255, 255, 255)
	unknown := RGBAColor(128, 128, 128, 255)
	config, err := NewColorConfiguration(Colors{
		Occupied: &occupied,
		Free:     &free,
		Unknown:  &unknown,
	})
	if err != nil {
		t.Fatalf("Unable to create RGBA configuration: %v\n", err)
	}

	data := []int8{-1, 0, 100, 0}
	grid := testGrid(2, 2, data)
	img, err := GridImage(grid, config)
	if err != nil {
		t.Fatalf("Unable to decode grid into RGBA raster: %v\n", err)
	}
	cells, err := ImageCells(img, config)
	if err != nil {
		t.Fatalf("Unable to encode RGBA raster: %v\n", err)
	}
	if !reflect.DeepEqual(cells, data) {
		t.Errorf("RGBA round trip changed data: expected %v, got %v\n", data, cells)
	}
}

func TestImageCellsFormatMismatch(t *testing.T) {
	grid := testGrid(2, 2, []int8{0, 0, 0, 0})
	img, err := GridImage(grid, nil)
	if err != nil {
		t.Fatalf("Unable to decode grid: %v\n", err)
	}
	occupied := RGBAColor(0, 0, 0, 255)
	free := RGBAColor(255, 255, 255, 255)
	unknown := RGBAColor(128, 128, 128, 255)
	rgbaConfig, err := NewColorConfiguration(Colors{
		Occupied: &occupied,
		Free:     &free,
		Unknown:  &unknown,
	})
	if err != nil {
		t.Fatalf("Unable to create RGBA configuration: %v\n", err)
	}
	if _, err := ImageCells(img, rgbaConfig); err == nil {
		t.Errorf("Expected error encoding gray raster with RGBA colors\n")
	}
}
