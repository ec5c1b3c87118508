package occgrid

import (
	"github.com/roboviz/gridtransport/bitmap"
	"github.com/roboviz/gridtransport/gridtransport"
	"github.com/roboviz/gridtransport/msgs"
)

// ScaleGrid rescales an occupancy grid to a new resolution.
//
// The grid is rendered into a raster, resized with nearest-neighbor sampling,
// and read back into cell values.  The returned grid shares the source
// header, carries metadata recomputed for the new resolution, and always
// satisfies len(Data) == Width * Height.  A resolution coarse enough to
// truncate an axis to zero cells yields an empty grid.  A nil color
// configuration selects the grayscale defaults.
func ScaleGrid(grid *msgs.OccupancyGrid, resolution float64, colors *ColorConfiguration) (*msgs.OccupancyGrid, error) {
	if colors == nil {
		colors = DefaultColorConfiguration()
	}
	timedLog := gridtransport.NewTimeLog()

	img, err := GridImage(grid, colors)
	if err != nil {
		return nil, err
	}
	width, height := ScaledSize(grid.Info.Width, grid.Info.Height, grid.Info.Resolution, resolution)
	var data []int8
	if width > 0 && height > 0 {
		resized, err := img.Resize(int(width), int(height))
		if err != nil {
			return nil, err
		}
		if data, err = ImageCells(resized, colors); err != nil {
			return nil, err
		}
	} else {
		data = []int8{}
	}

	timedLog.Debugf("scaled %d x %d grid at %f m/cell to %d x %d at %f m/cell",
		grid.Info.Width, grid.Info.Height, grid.Info.Resolution, width, height, resolution)

	return &msgs.OccupancyGrid{
		Header: grid.Header,
		Info:   ScaledMetadata(grid.Info, resolution),
		Data:   data,
	}, nil
}

// CompressGrid rescales an occupancy grid to a new resolution and compresses
// the resulting raster into a bitmap message with the given payload format,
// e.g. "png" or "jpg:80".  The message carries the grid's header and origin
// and the new resolution on both axes.  A nil color configuration selects the
// grayscale defaults.
func CompressGrid(grid *msgs.OccupancyGrid, resolution float64, format string, colors *ColorConfiguration) (*msgs.CompressedBitmap, error) {
	if colors == nil {
		colors = DefaultColorConfiguration()
	}
	timedLog := gridtransport.NewTimeLog()

	img, err := GridImage(grid, colors)
	if err != nil {
		return nil, err
	}
	width, height := ScaledSize(grid.Info.Width, grid.Info.Height, grid.Info.Resolution, resolution)
	resized, err := img.Resize(int(width), int(height))
	if err != nil {
		return nil, err
	}

	result := &msgs.CompressedBitmap{
		Header:      grid.Header,
		Origin:      grid.Info.Origin,
		ResolutionX: resolution,
		ResolutionY: resolution,
	}
	if err := bitmap.Fill(resized, format, result); err != nil {
		return nil, err
	}

	timedLog.Debugf("compressed %d x %d grid to %q at %f m/pixel",
		grid.Info.Width, grid.Info.Height, format, resolution)

	return result, nil
}
