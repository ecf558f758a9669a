package present_test

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"github.com/gdamore/tcell/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/cubesim/internal/present"
	"github.com/san-kum/cubesim/internal/render"
)

func sampleFrame() *render.FrameBuffer {
	fb := render.NewFrameBuffer(4, 2, '.')
	fb.WriteIfCloser(0, 0, 0.1, '@')
	fb.WriteIfCloser(3, 1, 0.1, '#')
	return fb
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("broken pipe") }

var _ = Describe("ParseMode", func() {
	It("accepts every known mode", func() {
		for _, s := range []string{"line", "cell", "screen", "live"} {
			m, err := present.ParseMode(s)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(m)).To(Equal(s))
		}
	})

	It("rejects unknown modes", func() {
		_, err := present.ParseMode("hologram")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("LinePresenter", func() {
	var (
		buf *bytes.Buffer
		p   *present.LinePresenter
	)

	BeforeEach(func() {
		buf = &bytes.Buffer{}
		p = present.NewLinePresenter(buf)
	})

	It("homes the cursor and writes one colored line per row", func() {
		Expect(p.Present(sampleFrame())).To(Succeed())

		out := buf.String()
		Expect(out).To(HavePrefix("\x1b[1;1H"))
		Expect(out).To(ContainSubstring("\x1b[32m@...\x1b[0m"))
		Expect(out).To(ContainSubstring("\x1b[32m...#\x1b[0m"))
		Expect(strings.Count(out, "\x1b[1E")).To(Equal(2))
		Expect(strings.Index(out, "@...")).To(BeNumerically("<", strings.Index(out, "...#")))
	})

	It("hides and restores the cursor", func() {
		Expect(p.Start()).To(Succeed())
		Expect(buf.String()).To(ContainSubstring("\x1b[?25l"))
		Expect(p.Close()).To(Succeed())
		Expect(buf.String()).To(ContainSubstring("\x1b[?25h"))
	})

	It("reports write failures", func() {
		p = present.NewLinePresenter(failingWriter{})
		Expect(p.Present(sampleFrame())).To(MatchError(ContainSubstring("broken pipe")))
	})
})

var _ = Describe("CellPresenter", func() {
	It("positions every cell before writing it", func() {
		buf := &bytes.Buffer{}
		p := present.NewCellPresenter(buf)
		Expect(p.Present(sampleFrame())).To(Succeed())

		out := buf.String()
		Expect(strings.Count(out, "H")).To(Equal(8))
		Expect(out).To(ContainSubstring("\x1b[1;1H\x1b[32m@\x1b[0m"))
		Expect(out).To(ContainSubstring("\x1b[2;4H\x1b[32m#\x1b[0m"))
	})
})

var _ = Describe("ScreenPresenter", func() {
	var (
		screen tcell.SimulationScreen
		p      *present.ScreenPresenter
	)

	BeforeEach(func() {
		screen = tcell.NewSimulationScreen("UTF-8")
		Expect(screen.Init()).To(Succeed())
		screen.SetSize(10, 5)
		p = present.NewScreenPresenter(screen)
	})

	AfterEach(func() {
		Expect(p.Close()).To(Succeed())
	})

	It("copies every glyph into the screen", func() {
		Expect(p.Present(sampleFrame())).To(Succeed())

		r, _, style, _ := screen.GetContent(0, 0)
		Expect(r).To(Equal('@'))
		fg, _, _ := style.Decompose()
		Expect(fg).To(Equal(tcell.ColorGreen))

		r, _, _, _ = screen.GetContent(3, 1)
		Expect(r).To(Equal('#'))
		r, _, _, _ = screen.GetContent(1, 0)
		Expect(r).To(Equal('.'))
	})

	It("cancels on q", func() {
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			defer close(done)
			p.WatchQuit(cancel)
		}()

		screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
		Eventually(done).Should(BeClosed())
		Expect(ctx.Err()).To(MatchError(context.Canceled))
	})
})
