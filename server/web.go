/*
Package server exposes the grid scaling and compression pipelines over
HTTP so browser visualizers and off-robot tooling can request rescaled
or compressed maps without a ROS connection.
*/
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rs/cors"

	"github.com/roboviz/gridtransport/gridtransport"
	"github.com/roboviz/gridtransport/msgs"
	"github.com/roboviz/gridtransport/occgrid"
)

const webHelp = `
HTTP API:

GET  /api/ping

	Returns "pong" if the server is up.

POST /api/scale?resolution=<meters per cell>

	Takes an occupancy grid message as JSON body and returns the grid
	rescaled to the given resolution.

POST /api/compress?resolution=<meters per pixel>&format=<format>

	Takes an occupancy grid message as JSON body and returns a compressed
	bitmap message whose payload is encoded with the given format:
	"png" (default), "jpg[:quality]", "bmp", "tiff", "snappy", or "gzip".

	Either endpoint also accepts goal_width and goal_height pixel counts in
	place of an explicit resolution; the server then picks the coarsest
	resolution that fits the goal size on both axes.
`

// Serve starts the HTTP server on the configured address and blocks.
func Serve() error {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/help", helpHandler)
	mux.HandleFunc("GET /api/ping", pingHandler)
	mux.HandleFunc("POST /api/scale", scaleHandler)
	mux.HandleFunc("POST /api/compress", compressHandler)

	handler := cors.New(cors.Options{
		AllowedOrigins: tc.Server.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	}).Handler(mux)

	gridtransport.Infof("Web server listening at %s ...\n", HTTPAddress())
	return http.ListenAndServe(HTTPAddress(), handler)
}

// BadRequest logs and writes an error message to the requester.
func BadRequest(w http.ResponseWriter, r *http.Request, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	gridtransport.Errorf("Bad request (%s %s): %s\n", r.Method, r.URL.Path, message)
	http.Error(w, message, http.StatusBadRequest)
}

func helpHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprint(w, webHelp)
}

func pingHandler(w http.ResponseWriter, r *http.Request) {
	fmt.Fprint(w, "pong")
}

// readGrid decodes the posted occupancy grid and resolves the target
// resolution from the query, either given directly or implied by a goal size.
func readGrid(w http.ResponseWriter, r *http.Request) (grid *msgs.OccupancyGrid, resolution float64, ok bool) {
	grid = new(msgs.OccupancyGrid)
	if err := json.NewDecoder(r.Body).Decode(grid); err != nil {
		BadRequest(w, r, "could not decode occupancy grid JSON: %v", err)
		return nil, 0, false
	}

	query := r.URL.Query()
	if s := query.Get("resolution"); s != "" {
		var err error
		if resolution, err = strconv.ParseFloat(s, 64); err != nil || resolution <= 0 {
			BadRequest(w, r, "bad resolution %q", s)
			return nil, 0, false
		}
		return grid, resolution, true
	}

	goalWidth, errW := strconv.ParseUint(query.Get("goal_width"), 10, 32)
	goalHeight, errH := strconv.ParseUint(query.Get("goal_height"), 10, 32)
	if errW != nil || errH != nil || goalWidth == 0 || goalHeight == 0 {
		BadRequest(w, r, "need either resolution or goal_width and goal_height")
		return nil, 0, false
	}
	resolution = occgrid.ChooseResolution(uint32(goalWidth), uint32(goalHeight),
		grid.Info.Width, grid.Info.Height, grid.Info.Resolution)
	return grid, resolution, true
}

func scaleHandler(w http.ResponseWriter, r *http.Request) {
	timedLog := gridtransport.NewTimeLog()
	grid, resolution, ok := readGrid(w, r)
	if !ok {
		return
	}
	scaled, err := occgrid.ScaleGrid(grid, resolution, serverColors)
	if err != nil {
		BadRequest(w, r, "could not scale grid: %v", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(scaled); err != nil {
		gridtransport.Errorf("Error writing scaled grid response: %v\n", err)
		return
	}
	timedLog.Infof("HTTP %s: scaled %d x %d grid to %f m/cell",
		r.URL.Path, grid.Info.Width, grid.Info.Height, resolution)
}

func compressHandler(w http.ResponseWriter, r *http.Request) {
	timedLog := gridtransport.NewTimeLog()
	grid, resolution, ok := readGrid(w, r)
	if !ok {
		return
	}
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "png"
	}
	compressed, err := occgrid.CompressGrid(grid, resolution, format, serverColors)
	if err != nil {
		BadRequest(w, r, "could not compress grid: %v", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(compressed); err != nil {
		gridtransport.Errorf("Error writing compressed bitmap response: %v\n", err)
		return
	}
	timedLog.Infof("HTTP %s: compressed %d x %d grid to %q at %f m/pixel",
		r.URL.Path, grid.Info.Width, grid.Info.Height, format, resolution)
}
