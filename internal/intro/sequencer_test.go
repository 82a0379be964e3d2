package intro_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pagefx/internal/intro"
	"github.com/san-kum/pagefx/internal/sched"
)

type fakeOverlay struct {
	texts   []string
	hides   int
	removes int
}

func (o *fakeOverlay) SetText(text string) { o.texts = append(o.texts, text) }
func (o *fakeOverlay) Hide()               { o.hides++ }
func (o *fakeOverlay) Remove()             { o.removes++ }

func (o *fakeOverlay) last() string {
	if len(o.texts) == 0 {
		return ""
	}
	return o.texts[len(o.texts)-1]
}

var _ = Describe("Sequencer", func() {
	var (
		clock   *sched.Virtual
		overlay *fakeOverlay
		seq     *intro.Sequencer
	)

	BeforeEach(func() {
		clock = sched.NewVirtual()
		overlay = &fakeOverlay{}
		seq = intro.New(overlay, clock, intro.DefaultOptions())
	})

	It("starts idle with empty text", func() {
		Expect(seq.Phase()).To(Equal(intro.Idle))
		Expect(seq.Text()).To(BeEmpty())
	})

	Context("with reduced motion", func() {
		It("hides immediately and removes without animating", func() {
			seq.Start(true)

			Expect(overlay.hides).To(Equal(1))
			Expect(seq.Phase()).To(Equal(intro.Done))

			clock.Advance(200 * time.Millisecond)
			Expect(overlay.removes).To(Equal(1))
			Expect(overlay.texts).To(BeEmpty())
		})
	})

	Context("without cancellation", func() {
		It("types the phrase one character per tick", func() {
			seq.Start(false)
			Expect(seq.Phase()).To(Equal(intro.Waiting))

			clock.Advance(120 * time.Millisecond)
			Expect(seq.Text()).To(Equal("O"))
			Expect(seq.Phase()).To(Equal(intro.Typing))

			clock.Advance(60 * time.Millisecond)
			Expect(seq.Text()).To(Equal("OR"))

			clock.Advance(7 * 60 * time.Millisecond)
			Expect(seq.Text()).To(Equal("ORDENAFIX"))
			Expect(seq.Phase()).To(Equal(intro.Pausing))
		})

		It("pauses before deleting", func() {
			seq.Start(false)
			clock.Advance(600 * time.Millisecond)
			Expect(seq.Text()).To(Equal("ORDENAFIX"))

			clock.Advance(649 * time.Millisecond)
			Expect(seq.Phase()).To(Equal(intro.Pausing))

			clock.Advance(time.Millisecond)
			Expect(seq.Phase()).To(Equal(intro.Deleting))
			Expect(seq.Text()).To(Equal("ORDENAFI"))

			clock.Advance(40 * time.Millisecond)
			Expect(seq.Text()).To(Equal("ORDENAF"))
		})

		It("ends with empty text and the overlay removed", func() {
			seq.Start(false)
			clock.Advance(1570 * time.Millisecond)

			Expect(seq.Phase()).To(Equal(intro.Done))
			Expect(seq.Text()).To(BeEmpty())
			Expect(overlay.hides).To(Equal(1))
			Expect(overlay.removes).To(Equal(0))

			clock.Advance(300 * time.Millisecond)
			Expect(overlay.removes).To(Equal(1))
			Expect(seq.Removed()).To(BeTrue())
			Expect(clock.PendingTimers()).To(Equal(0))
		})

		It("writes every prefix exactly once per direction", func() {
			seq.Start(false)
			clock.AdvanceUntilIdle(100)

			Expect(overlay.texts).To(HaveLen(18))
			Expect(overlay.texts[0]).To(Equal("O"))
			Expect(overlay.texts[8]).To(Equal("ORDENAFIX"))
			Expect(overlay.texts[9]).To(Equal("ORDENAFI"))
			Expect(overlay.last()).To(BeEmpty())
		})

		It("reports transitions in order", func() {
			var seen []intro.Phase
			seq.OnPhase = func(_, to intro.Phase) { seen = append(seen, to) }

			seq.Start(false)
			clock.AdvanceUntilIdle(100)

			Expect(seen).To(Equal([]intro.Phase{
				intro.Waiting, intro.Typing, intro.Pausing, intro.Deleting, intro.Done,
			}))
		})
	})

	Context("when cancelled", func() {
		BeforeEach(func() {
			seq.Start(false)
			clock.Advance(240 * time.Millisecond)
			Expect(seq.Text()).To(Equal("ORD"))
		})

		It("clears the text and hides at once", func() {
			seq.HandleClick()

			Expect(seq.Phase()).To(Equal(intro.Cancelled))
			Expect(seq.Text()).To(BeEmpty())
			Expect(overlay.last()).To(BeEmpty())
			Expect(overlay.hides).To(Equal(1))
		})

		It("removes the overlay after the removal delay", func() {
			seq.HandleKey("Escape")

			clock.Advance(299 * time.Millisecond)
			Expect(overlay.removes).To(Equal(0))
			clock.Advance(time.Millisecond)
			Expect(overlay.removes).To(Equal(1))
		})

		It("stops typing", func() {
			seq.Cancel()
			writes := len(overlay.texts)

			clock.Advance(5 * time.Second)
			Expect(overlay.texts).To(HaveLen(writes))
			Expect(seq.Phase()).To(Equal(intro.Cancelled))
		})

		It("ignores further cancellations", func() {
			seq.Cancel()
			writes, hides := len(overlay.texts), overlay.hides

			seq.Cancel()
			seq.HandleKey("Escape")
			clock.Advance(time.Second)

			Expect(overlay.texts).To(HaveLen(writes))
			Expect(overlay.hides).To(Equal(hides))
			Expect(overlay.removes).To(Equal(1))
		})
	})

	It("ignores keys other than Escape", func() {
		seq.Start(false)
		clock.Advance(120 * time.Millisecond)
		seq.HandleKey("Enter")
		Expect(seq.Phase()).To(Equal(intro.Typing))
	})

	It("can be cancelled during the pause", func() {
		seq.Start(false)
		clock.Advance(900 * time.Millisecond)
		Expect(seq.Phase()).To(Equal(intro.Pausing))

		seq.Cancel()
		clock.Advance(time.Second)
		Expect(seq.Phase()).To(Equal(intro.Cancelled))
		Expect(seq.Text()).To(BeEmpty())
		Expect(overlay.removes).To(Equal(1))
	})

	It("does nothing when cancelled after completion", func() {
		seq.Start(false)
		clock.AdvanceUntilIdle(100)
		hides := overlay.hides

		seq.Cancel()
		Expect(seq.Phase()).To(Equal(intro.Done))
		Expect(overlay.hides).To(Equal(hides))
	})
})
