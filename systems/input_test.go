package systems

import (
	"testing"

	"github.com/automoto/zoomcam/components"
	cfg "github.com/automoto/zoomcam/config"
)

func TestPollZoomSteps(t *testing.T) {
	type frame struct {
		wheel float64
		held  []cfg.ActionID
		want  int
	}
	cases := []struct {
		name   string
		frames []frame
	}{
		{"wheel_notch", []frame{{wheel: 1, want: 1}, {wheel: -2, want: -2}}},
		{"wheel_partial_carries", []frame{{wheel: 0.6, want: 0}, {wheel: 0.6, want: 1}}},
		{"zoom_in_edge_only", []frame{
			{held: []cfg.ActionID{cfg.ActionZoomIn}, want: 1},
			{held: []cfg.ActionID{cfg.ActionZoomIn}, want: 0},
		}},
		{"zoom_out_with_wheel", []frame{{wheel: 2, held: []cfg.ActionID{cfg.ActionZoomOut}, want: 1}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			input := &components.InputData{}
			for i, f := range c.frames {
				input.Previous = input.Current
				input.Current = [cfg.ActionCount]bool{}
				for _, a := range f.held {
					input.Current[a] = true
				}
				input.WheelY = f.wheel
				pollZoomSteps(input)
				if input.ZoomSteps != f.want {
					t.Fatalf("frame %d: ZoomSteps = %d, want %d", i, input.ZoomSteps, f.want)
				}
			}
		})
	}
}
