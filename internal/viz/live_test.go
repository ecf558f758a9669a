package viz_test

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/cubesim/internal/geom"
	"github.com/san-kum/cubesim/internal/render"
	"github.com/san-kum/cubesim/internal/viz"
)

func newRenderer() *render.Renderer {
	return render.NewRenderer(render.Options{
		Width:          60,
		Height:         24,
		Background:     ' ',
		Projection:     render.Perspective,
		CameraDistance: 100,
		Scale:          40,
		OrthoScale:     0.5,
		Aspect:         2,
		CubeSize:       10,
		Layout:         render.Centered,
		Method:         geom.Fused,
		Increments:     geom.Increments{A: 0.05, B: 0.05, C: 0.01},
	})
}

func tickN(m tea.Model, n int) tea.Model {
	for i := 0; i < n; i++ {
		m, _ = m.Update(viz.TickMsg(time.Now()))
	}
	return m
}

var _ = Describe("Model", func() {
	var r *render.Renderer

	BeforeEach(func() {
		r = newRenderer()
	})

	It("renders the first frame without advancing", func() {
		m := tickN(viz.NewModel(r, 30, 0, viz.GetTheme("retro")), 1).(viz.Model)

		Expect(m.Frames()).To(Equal(1))
		Expect(m.Stats().Frame).To(Equal(0))
		Expect(m.Stats().Visible).To(BeNumerically(">", 0))
		a, _, _ := r.Rotation().Angles()
		Expect(a).To(BeZero())
	})

	It("advances once per subsequent frame", func() {
		m := tickN(viz.NewModel(r, 30, 0, viz.ThemeOcean), 3).(viz.Model)

		Expect(m.Stats().Frame).To(Equal(2))
		a, _, c := r.Rotation().Angles()
		Expect(a).To(BeNumerically("~", 0.10, 1e-12))
		Expect(c).To(BeNumerically("~", 0.02, 1e-12))
	})

	It("quits after the frame limit", func() {
		m := tickN(viz.NewModel(r, 30, 2, viz.ThemeMinimal), 2)
		_, cmd := m.Update(viz.TickMsg(time.Now()))
		Expect(cmd).NotTo(BeNil())
		Expect(cmd()).To(Equal(tea.Quit()))
	})

	It("quits on q", func() {
		m := viz.NewModel(r, 30, 0, viz.ThemeCyberpunk)
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		Expect(cmd).NotTo(BeNil())
		Expect(cmd()).To(Equal(tea.Quit()))
	})

	It("shows the cube and the stats panel", func() {
		m := tickN(viz.NewModel(r, 30, 0, viz.ThemeRetroGreen), 2)
		view := m.View()

		Expect(view).To(ContainSubstring("CUBESIM"))
		Expect(view).To(ContainSubstring("front"))
		Expect(view).To(ContainSubstring("visible cells"))
		Expect(view).To(ContainSubstring("@"))
	})
})

var _ = Describe("Themes", func() {
	It("falls back to retro for unknown names", func() {
		Expect(viz.GetTheme("nope").Name).To(Equal("retro"))
	})

	It("lists every theme", func() {
		Expect(viz.ThemeNames()).To(ConsistOf("retro", "cyberpunk", "minimal", "ocean"))
	})
})
