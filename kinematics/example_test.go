package kinematics_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spinor/fourvec"
	"github.com/katalvlaran/spinor/kinematics"
)

// ExampleCalcAngles computes the helicity angles of a single two-body
// decay A → B + C with the mother at rest and B emitted at 45° in the
// x-z plane.
func ExampleCalcAngles() {
	a := kinematics.Particle{Name: "A"}
	b := kinematics.Particle{Name: "B"}
	c := kinematics.Particle{Name: "C"}

	chain, err := kinematics.NewDecayChain([]kinematics.Decay{
		{Core: a, Outs: []kinematics.Particle{b, c}},
	})
	if err != nil {
		fmt.Println("chain:", err)
		return
	}
	group, err := kinematics.NewDecayGroup(chain)
	if err != nil {
		fmt.Println("group:", err)
		return
	}

	pm := 1.0
	s := pm / math.Sqrt2
	res, err := kinematics.CalcAngles(map[kinematics.Particle][]fourvec.Vec{
		b: {{E: math.Sqrt(pm*pm + 0.25), Px: s, Pz: s}},
		c: {{E: math.Sqrt(pm*pm + 0.09), Px: -s, Pz: -s}},
	}, group)
	if err != nil {
		fmt.Println("angles:", err)
		return
	}

	ang := res.Chains[0].Decays["A->B+C"].Out[b].Ang
	fmt.Printf("alpha=%.4f beta=%.4f\n", ang.Alpha[0], ang.Beta[0])
	// Output:
	// alpha=0.0000 beta=0.7854
}
