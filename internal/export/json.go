package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/cubesim/internal/render"
)

// FaceCount is the visible cell count of one face in one frame.
type FaceCount struct {
	Face  string `json:"face"`
	Cells int    `json:"cells"`
}

type FrameRecord struct {
	Frame     int         `json:"frame"`
	Emitted   int         `json:"emitted"`
	OffScreen int         `json:"off_screen"`
	Written   int         `json:"written"`
	Occluded  int         `json:"occluded"`
	Visible   int         `json:"visible"`
	Faces     []FaceCount `json:"faces"`
}

type StatsData struct {
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	CubeSize   int           `json:"cube_size"`
	Projection string        `json:"projection"`
	Method     string        `json:"method"`
	Frames     []FrameRecord `json:"frames"`
}

// NewStatsData collects per-frame stats for a renderer built from opts.
func NewStatsData(opts render.Options, stats []render.FrameStats) StatsData {
	data := StatsData{
		Width:      opts.Width,
		Height:     opts.Height,
		CubeSize:   opts.CubeSize,
		Projection: string(opts.Projection),
		Method:     string(opts.Method),
		Frames:     make([]FrameRecord, len(stats)),
	}
	for i, s := range stats {
		faces := make([]FaceCount, len(render.Faces))
		for j, f := range render.Faces {
			faces[j] = FaceCount{Face: f.String(), Cells: s.Faces[f]}
		}
		data.Frames[i] = FrameRecord{
			Frame:     s.Frame,
			Emitted:   s.Emitted,
			OffScreen: s.OffScreen,
			Written:   s.Written,
			Occluded:  s.Occluded,
			Visible:   s.Visible,
			Faces:     faces,
		}
	}
	return data
}

func WriteStatsJSON(w io.Writer, data StatsData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
