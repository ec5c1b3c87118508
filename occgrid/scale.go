package occgrid

import "github.com/roboviz/gridtransport/msgs"

// ScaledSize returns the pixel dimensions of a grid after rescaling from its
// current resolution to a new one.  Fractional dimensions are truncated, not
// rounded, so the scaled grid never covers more ground than the source.
func ScaledSize(width, height uint32, oldResolution, newResolution float64) (uint32, uint32) {
	factor := oldResolution / newResolution
	return uint32(float64(width) * factor), uint32(float64(height) * factor)
}

// ScaledMetadata recomputes grid metadata for a new resolution.  The load
// time and origin pose carry over unchanged since rescaling does not move
// the map.
func ScaledMetadata(info msgs.MapMetaData, resolution float64) msgs.MapMetaData {
	width, height := ScaledSize(info.Width, info.Height, info.Resolution, resolution)
	return msgs.MapMetaData{
		MapLoadTime: info.MapLoadTime,
		Resolution:  resolution,
		Width:       width,
		Height:      height,
		Origin:      info.Origin,
	}
}

// ChooseResolution returns the resolution needed to fit a grid of the current
// size within the goal size.  The width-fitting and height-fitting candidates
// are computed independently and the larger (coarser) of the two wins, so the
// scaled image never exceeds the goal on either axis.
func ChooseResolution(goalWidth, goalHeight, currentWidth, currentHeight uint32, currentResolution float64) float64 {
	widthResolution := float64(currentWidth) / float64(goalWidth) * currentResolution
	heightResolution := float64(currentHeight) / float64(goalHeight) * currentResolution
	if widthResolution > heightResolution {
		return widthResolution
	}
	return heightResolution
}
