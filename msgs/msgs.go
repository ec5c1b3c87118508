/*
Package msgs holds the ROS-shaped message types exchanged with mapping
stacks: occupancy grids in, scaled grids or compressed bitmaps out.  The
structs mirror the nav_msgs and compressed bitmap wire schemas field for
field so values can be bridged without translation.
*/
package msgs

// Time is a stamp with separate seconds and nanoseconds, as on the ROS wire.
type Time struct {
	Sec  int32  `json:"sec"`
	Nsec uint32 `json:"nsec"`
}

// Header is a stamped frame reference.
type Header struct {
	Seq     uint32 `json:"seq"`
	Stamp   Time   `json:"stamp"`
	FrameID string `json:"frame_id"`
}

// Point is a position in free space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Quaternion is an orientation in free space.
type Quaternion struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	W float64 `json:"w"`
}

// Pose is a position and orientation pair.
type Pose struct {
	Position    Point      `json:"position"`
	Orientation Quaternion `json:"orientation"`
}

// MapMetaData holds basic information about the characteristics of an
// occupancy grid.
type MapMetaData struct {
	// MapLoadTime is the time at which the map was loaded.
	MapLoadTime Time `json:"map_load_time"`

	// Resolution is the physical edge length of one cell in meters.
	Resolution float64 `json:"resolution"`

	// Width and Height are cell counts per row and column.
	Width  uint32 `json:"width"`
	Height uint32 `json:"height"`

	// Origin is the pose of the cell (0,0) in the map frame.
	Origin Pose `json:"origin"`
}

// OccupancyGrid represents a 2-D grid map in which each cell holds an
// occupancy probability.  Cell values are -1 for unknown, 0 for free, and
// 1-100 for occupied, ordered row-major starting at the origin cell.
type OccupancyGrid struct {
	Header Header      `json:"header"`
	Info   MapMetaData `json:"info"`
	Data   []int8      `json:"data"`
}

// CompressedBitmap carries a raster rendering of a map in an opaque
// compressed payload.  ResolutionX and ResolutionY give the physical size of
// one pixel along each axis.
type CompressedBitmap struct {
	Header      Header  `json:"header"`
	Origin      Pose    `json:"origin"`
	ResolutionX float64 `json:"resolution_x"`
	ResolutionY float64 `json:"resolution_y"`
	ContentType string  `json:"content_type"`
	Data        []byte  `json:"data"`
}
