package kinematics

import (
	"errors"
	"sort"
	"strings"

	"github.com/katalvlaran/spinor/spin"
)

// Sentinel errors for topology construction.
var (
	// ErrTopology indicates a decay set that is not a single rooted tree
	// (no unique top, a cycle, or a particle produced twice).
	ErrTopology = errors.New("kinematics: invalid decay topology")

	// ErrGroupMismatch indicates chains whose top or final states differ.
	ErrGroupMismatch = errors.New("kinematics: chains disagree on top or finals")

	// ErrMissingMomentum indicates a final state without a momentum batch.
	ErrMissingMomentum = errors.New("kinematics: missing momentum batch")

	// ErrBatchMismatch indicates momentum batches of unequal event counts.
	ErrBatchMismatch = errors.New("kinematics: momentum batch size mismatch")
)

// Particle is a physical particle label. Identity is by value: two
// Particle structs with equal fields denote the same node, which is what
// lets independently built chains share intermediate states.
type Particle struct {
	Name   string
	Spin   spin.Half
	Parity int // ±1, or 0 when irrelevant
	Mass   float64
}

// Combine builds the unnamed intermediate state of a set of particles,
// named by the sorted member names: Combine(C, B) is "(B, C)". Spin,
// parity and mass are left zero; an intermediate used in amplitudes
// carries its own named Particle instead.
func Combine(parts ...Particle) Particle {
	names := make([]string, len(parts))
	for i, p := range parts {
		names[i] = p.Name
	}
	sort.Strings(names)
	return Particle{Name: "(" + strings.Join(names, ", ") + ")"}
}

// Decay is a single vertex core → outs. Outs order is meaningful: the
// helicity conventions downstream index daughters by position.
type Decay struct {
	Core Particle
	Outs []Particle
}

// ID returns the canonical vertex label "Core->Out1+Out2".
func (d Decay) ID() string {
	var b strings.Builder
	b.WriteString(d.Core.Name)
	b.WriteString("->")
	for i, o := range d.Outs {
		if i > 0 {
			b.WriteByte('+')
		}
		b.WriteString(o.Name)
	}
	return b.String()
}

// DecayChain is a full cascade: a set of decays forming a single rooted
// tree from the top particle down to the final states.
type DecayChain struct {
	Decays []Decay

	top   Particle
	outs  []Particle
	table map[Particle][]Particle
}

// NewDecayChain validates the decay set and precomputes the descendant
// table. The set must form a tree: exactly one core that is never an
// out (the top), every other core produced exactly once, no particle
// produced twice.
func NewDecayChain(decays []Decay) (*DecayChain, error) {
	if len(decays) == 0 {
		return nil, ErrTopology
	}
	produced := map[Particle]bool{}
	cores := map[Particle]bool{}
	for _, d := range decays {
		if len(d.Outs) < 2 {
			return nil, ErrTopology
		}
		if cores[d.Core] {
			return nil, ErrTopology
		}
		cores[d.Core] = true
		for _, o := range d.Outs {
			if produced[o] {
				return nil, ErrTopology
			}
			produced[o] = true
		}
	}
	var top Particle
	nTop := 0
	for c := range cores {
		if !produced[c] {
			top = c
			nTop++
		}
	}
	if nTop != 1 {
		return nil, ErrTopology
	}
	c := &DecayChain{Decays: decays, top: top}
	if err := c.buildTable(); err != nil {
		return nil, err
	}
	return c, nil
}

// buildTable resolves every particle of the chain to its sorted set of
// final-state descendants, detecting dangling cores on the way.
func (c *DecayChain) buildTable() error {
	byCore := map[Particle]Decay{}
	for _, d := range c.Decays {
		byCore[d.Core] = d
	}
	c.table = map[Particle][]Particle{}
	var resolve func(p Particle, depth int) ([]Particle, error)
	resolve = func(p Particle, depth int) ([]Particle, error) {
		if depth > len(c.Decays)+1 {
			return nil, ErrTopology
		}
		if fin, ok := c.table[p]; ok {
			return fin, nil
		}
		d, ok := byCore[p]
		if !ok {
			c.table[p] = []Particle{p}
			return c.table[p], nil
		}
		var fin []Particle
		for _, o := range d.Outs {
			sub, err := resolve(o, depth+1)
			if err != nil {
				return nil, err
			}
			fin = append(fin, sub...)
		}
		sort.Slice(fin, func(i, j int) bool { return fin[i].Name < fin[j].Name })
		c.table[p] = fin
		return fin, nil
	}
	fin, err := resolve(c.top, 0)
	if err != nil {
		return err
	}
	c.outs = fin
	for _, d := range c.Decays {
		for _, o := range d.Outs {
			if _, err := resolve(o, 0); err != nil {
				return err
			}
		}
	}
	return nil
}

// Top returns the chain's root particle.
func (c *DecayChain) Top() Particle { return c.top }

// Outs returns the final states, sorted by name.
func (c *DecayChain) Outs() []Particle { return c.outs }

// Finals returns the sorted final-state descendants of p within the
// chain; a final state maps to itself.
func (c *DecayChain) Finals(p Particle) []Particle { return c.table[p] }

// TopologyKey is a canonical fingerprint of the chain's tree shape in
// terms of final-state sets, ignoring the names of intermediate states.
// Chains through different resonances over the same splitting share a
// key.
func (c *DecayChain) TopologyKey() string {
	ids := make([]string, len(c.Decays))
	for i, d := range c.Decays {
		var b strings.Builder
		b.WriteString(finalsName(c.table[d.Core]))
		b.WriteString("->")
		outs := make([]string, len(d.Outs))
		for j, o := range d.Outs {
			outs[j] = finalsName(c.table[o])
		}
		sort.Strings(outs)
		b.WriteString(strings.Join(outs, "+"))
		ids[i] = b.String()
	}
	sort.Strings(ids)
	return strings.Join(ids, ";")
}

func finalsName(fin []Particle) string {
	if len(fin) == 1 {
		return fin[0].Name
	}
	names := make([]string, len(fin))
	for i, p := range fin {
		names[i] = p.Name
	}
	return "(" + strings.Join(names, ", ") + ")"
}

// topology returns the chain with every strict intermediate renamed to
// its final-state set, so that equal-topology chains become equal
// structures sharing inferred momenta.
func (c *DecayChain) topology() *DecayChain {
	rename := func(p Particle) Particle {
		if p == c.top {
			return p
		}
		if fin := c.table[p]; len(fin) > 1 {
			return Combine(fin...)
		}
		return p
	}
	decays := make([]Decay, len(c.Decays))
	for i, d := range c.Decays {
		nd := Decay{Core: rename(d.Core), Outs: make([]Particle, len(d.Outs))}
		for j, o := range d.Outs {
			nd.Outs[j] = rename(o)
		}
		decays[i] = nd
	}
	t, _ := NewDecayChain(decays)
	return t
}

// DecayGroup is a set of decay chains over the same top and final
// states — the coherent sum structure of an amplitude model.
type DecayGroup struct {
	Chains []*DecayChain

	top  Particle
	outs []Particle
}

// NewDecayGroup validates that all chains share one top particle and one
// final-state set.
func NewDecayGroup(chains ...*DecayChain) (*DecayGroup, error) {
	if len(chains) == 0 {
		return nil, ErrGroupMismatch
	}
	top := chains[0].Top()
	outs := chains[0].Outs()
	for _, c := range chains[1:] {
		if c.Top() != top || !sameParticles(c.Outs(), outs) {
			return nil, ErrGroupMismatch
		}
	}
	return &DecayGroup{Chains: chains, top: top, outs: outs}, nil
}

// Top returns the shared root particle.
func (g *DecayGroup) Top() Particle { return g.top }

// Outs returns the shared final states, sorted by name.
func (g *DecayGroup) Outs() []Particle { return g.outs }

// Topologies returns one canonical chain per distinct tree shape, with
// intermediates renamed to their final-state sets. Chains that differ
// only by resonance content collapse onto one topology, so the angle
// tensors are computed once and shared.
func (g *DecayGroup) Topologies() []*DecayChain {
	seen := map[string]bool{}
	var out []*DecayChain
	for _, c := range g.Chains {
		t := c.topology()
		key := t.TopologyKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
	}
	return out
}

func sameParticles(a, b []Particle) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
