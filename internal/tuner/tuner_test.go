package tuner

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/graspsim/internal/sim"
	"github.com/san-kum/graspsim/internal/tissue"
)

var _ = Describe("Tune", func() {
	It("enumerates the full gain grid", func() {
		combos := grid()
		Expect(combos).To(HaveLen(30))
		for _, g := range combos {
			Expect(g.Ki).To(Equal(KiFixed))
		}
		// Grid order is kp outer, kd inner.
		Expect(combos[0]).To(Equal(sim.Gains{Kp: 0.1, Ki: KiFixed, Kd: 0.0}))
		Expect(combos[1]).To(Equal(sim.Gains{Kp: 0.1, Ki: KiFixed, Kd: 0.1}))
		Expect(combos[29]).To(Equal(sim.Gains{Kp: 10.0, Ki: KiFixed, Kd: 2.0}))
	})

	It("picks a damage-free winner on liver at a gentle target", func() {
		result := New(42).Tune(tissue.Lookup("Liver"), 3.0, false)

		Expect(result.Best).To(Equal(sim.Gains{Kp: 10.0, Ki: 0.1, Kd: 1.0}))
		Expect(result.BestCost).To(BeNumerically("<", damagePenalty))

		confirm := sim.Run(result.Best, 3.0, tissue.Lookup("Liver"), false, TuneDuration)
		Expect(confirm.Damaged).To(BeFalse())
	})

	It("returns the least-bad candidate when the whole grid damages", func() {
		result := New(42).Tune(tissue.Lookup("Intestine"), 50.0, false)

		Expect(result.Best).To(Equal(sim.Gains{Kp: 0.1, Ki: 0.1, Kd: 0.0}))
		Expect(result.BestCost).To(BeNumerically(">=", damagePenalty))
	})

	It("is reproducible for a fixed seed", func() {
		a := New(7).Tune(tissue.Lookup("Liver"), 3.0, false)
		b := New(7).Tune(tissue.Lookup("Liver"), 3.0, false)

		Expect(a.Best).To(Equal(b.Best))
		Expect(a.BestCost).To(Equal(b.BestCost))
		Expect(a.Ghosts).To(HaveLen(len(b.Ghosts)))
		for i := range a.Ghosts {
			Expect(a.Ghosts[i].Gains).To(Equal(b.Ghosts[i].Gains))
		}
	})

	It("selects the same gains regardless of seed", func() {
		a := New(1).Tune(tissue.Lookup("Liver"), 3.0, false)
		b := New(99999).Tune(tissue.Lookup("Liver"), 3.0, false)

		Expect(a.Best).To(Equal(b.Best))
		Expect(a.BestCost).To(Equal(b.BestCost))
	})

	It("keeps ghosts in grid order with full trajectories", func() {
		result := New(3).Tune(tissue.Lookup("Liver"), 3.0, false)

		last := -1
		combos := grid()
		for _, ghost := range result.Ghosts {
			idx := -1
			for i, g := range combos {
				if g == ghost.Gains {
					idx = i
					break
				}
			}
			Expect(idx).To(BeNumerically(">", last), "ghosts must follow grid order")
			last = idx
			Expect(ghost.Times).To(HaveLen(len(ghost.Grips)))
			Expect(ghost.Times).NotTo(BeEmpty())
		}
	})
})

var _ = Describe("Cost", func() {
	It("adds the damage penalty on top of the response score", func() {
		clean := &sim.Trace{
			Times:   []float64{0, 0.1, 0.2},
			Grips:   []float64{0, 12, 10},
			MaxGrip: 12,
		}
		Expect(Cost(clean, 10.0)).To(Equal(2.0 + 0.1))

		damaged := &sim.Trace{
			Times:   clean.Times,
			Grips:   clean.Grips,
			MaxGrip: clean.MaxGrip,
			Damaged: true,
		}
		Expect(Cost(damaged, 10.0)).To(Equal(2.0 + 0.1 + damagePenalty))
	})
})
