package menu

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

type call struct {
	op    string
	args  []float64
	color color.RGBA
	text  string
}

// recorder is a Surface that remembers every call.
type recorder struct {
	calls   []call
	metrics Metrics
}

func (r *recorder) FillWedge(rc Rect, start, sweep float64, c color.RGBA) {
	r.calls = append(r.calls, call{op: "fillWedge", args: []float64{rc.Min.X, rc.Min.Y, rc.Max.X, rc.Max.Y, start, sweep}, color: c})
}

func (r *recorder) ClearWedge(rc Rect, start, sweep float64) {
	r.calls = append(r.calls, call{op: "clearWedge", args: []float64{rc.Min.X, rc.Min.Y, rc.Max.X, rc.Max.Y, start, sweep}})
}

func (r *recorder) FillCircle(c Point, radius float64, clr color.RGBA) {
	r.calls = append(r.calls, call{op: "fillCircle", args: []float64{c.X, c.Y, radius}, color: clr})
}

func (r *recorder) StrokeCircle(c Point, radius float64, clr color.RGBA, width float64) {
	r.calls = append(r.calls, call{op: "strokeCircle", args: []float64{c.X, c.Y, radius, width}, color: clr})
}

func (r *recorder) DrawLine(p1, p2 Point, c color.RGBA, width float64) {
	r.calls = append(r.calls, call{op: "line", args: []float64{p1.X, p1.Y, p2.X, p2.Y, width}, color: c})
}

func (r *recorder) DrawText(s string, pos Point, c color.RGBA, size float64) {
	r.calls = append(r.calls, call{op: "text", args: []float64{pos.X, pos.Y, size}, color: c, text: s})
}

func (r *recorder) Metrics(size float64) Metrics { return r.metrics }

func (r *recorder) ops() []string {
	var ops []string
	for _, c := range r.calls {
		ops = append(ops, c.op)
	}
	return ops
}

func rendered(m *Menu) *recorder {
	r := &recorder{metrics: Metrics{Ascent: 30, Descent: 10}}
	m.Render(r)
	return r
}

func TestRenderOrder(t *testing.T) {
	m := New(DefaultStyle())
	m.Recompute(200, 200)

	var want []string
	for i := 0; i < SectorCount; i++ {
		want = append(want, "fillWedge", "clearWedge", "text", "line")
	}
	want = append(want, "fillCircle", "text")
	require.Equal(t, want, rendered(m).ops())

	m.SetHubBorder(true)
	ops := rendered(m).ops()
	require.Equal(t, []string{"strokeCircle", "fillCircle", "text"}, ops[len(ops)-3:])
}

func TestRenderSectorGeometry(t *testing.T) {
	m := New(DefaultStyle())
	m.Recompute(200, 200) // center 100,100 outer 90 inner 36
	m.SetSectorColor(3, red)
	r := rendered(m)

	for i := 0; i < SectorCount; i++ {
		fill, hole, text, line := r.calls[4*i], r.calls[4*i+1], r.calls[4*i+2], r.calls[4*i+3]
		start := float64(i)*45 - 90

		require.Equal(t, []float64{10, 10, 190, 190, start, 45}, fill.args, "sector %d", i)
		require.Equal(t, []float64{64, 64, 136, 136, start, 45}, hole.args, "sector %d", i)

		wantText := Pt(100, 100).Polar(63, start+22.5)
		require.InDelta(t, wantText.X, text.args[0], 1e-9)
		require.InDelta(t, wantText.Y+10, text.args[1], 1e-9, "baseline shifted by (ascent-descent)/2")
		require.Equal(t, 40.0, text.args[2])
		require.Equal(t, string(rune('A'+i)), text.text)
		require.Equal(t, White, text.color)

		in, out := Pt(100, 100).Polar(36, start+45), Pt(100, 100).Polar(90, start+45)
		require.InDeltaSlice(t, []float64{in.X, in.Y, out.X, out.Y, 4}, line.args, 1e-9)
		require.Equal(t, White, line.color)

		if i == 3 {
			require.Equal(t, red, fill.color)
		} else {
			require.Equal(t, Black, fill.color)
		}
	}
}

func TestRenderHub(t *testing.T) {
	m := New(DefaultStyle())
	m.Recompute(200, 200)
	m.SetCenterLabelAndColor("Go", red)
	m.SetHubBorder(true)
	r := rendered(m)

	n := len(r.calls)
	border, disc, label := r.calls[n-3], r.calls[n-2], r.calls[n-1]
	require.Equal(t, []float64{100, 100, 26, 4}, border.args)
	require.Equal(t, White, border.color)
	require.Equal(t, []float64{100, 100, 26}, disc.args)
	require.Equal(t, red, disc.color)
	require.Equal(t, "Go", label.text)
	require.Equal(t, []float64{100, 110, 40}, label.args)
}

func TestRenderDoesNotMutate(t *testing.T) {
	m := New(DefaultStyle())
	m.Recompute(300, 300)
	before := fmt.Sprintf("%+v", *m)
	rendered(m)
	rendered(m)
	require.Equal(t, before, fmt.Sprintf("%+v", *m))
}

func TestRenderDeterministic(t *testing.T) {
	m := New(DefaultStyle())
	m.Recompute(250, 180)
	require.Equal(t, rendered(m).calls, rendered(m).calls)
}

func TestRenderDegenerate(t *testing.T) {
	m := New(DefaultStyle())
	m.Recompute(0, 0)
	require.NotPanics(t, func() { rendered(m) })
}
