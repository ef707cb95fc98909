package grid

// RadiusPolicy parameterizes the distance arithmetic of the compute engine
// so the same search machinery serves both ordinary Voronoi diagrams and
// radius-weighted (power) diagrams. The engine calls Begin once per cell,
// then Scale on each candidate's squared distance and Cutoff on shell
// bounds when deciding whether the search can stop.
//
// Implementations must keep Cutoff monotonic and Scale order-preserving
// between candidates, or the engine's early termination breaks.
type RadiusPolicy interface {
	// Begin is told which particle's cell is about to be computed.
	Begin(ijk, q int)

	// Cutoff rescales a squared search radius.
	Cutoff(lrs float64) float64

	// Scale rescales the squared distance to the candidate in slot q of
	// block ijk.
	Scale(rs float64, ijk, q int) float64
}

// uniformPolicy leaves all distances untouched: plain Voronoi.
type uniformPolicy struct{}

func (uniformPolicy) Begin(ijk, q int)                     {}
func (uniformPolicy) Cutoff(lrs float64) float64           { return lrs }
func (uniformPolicy) Scale(rs float64, ijk, q int) float64 { return rs }

// powerPolicy implements radical-plane bisectors. Begin derives, from the
// particle's radius and the container-wide maximum, a multiplicative cutoff
// inflation and an additive squared-radius bias; with those, comparisons
// between candidates of different radii order the same way true power
// bisectors do while the uniform shell-termination test keeps working.
type powerPolicy struct {
	con *PolyContainer

	rad float64 // squared radius of the current particle
	mul float64 // cutoff inflation for the current particle
}

func (p *powerPolicy) Begin(ijk, q int) {
	r := p.con.rad[ijk][q]
	max := p.con.maxRadius
	p.mul = 1 + (r*r-max*max)/((max+r)*(max+r))
	p.rad = r * r
}

func (p *powerPolicy) Cutoff(lrs float64) float64 {
	return p.mul * lrs
}

func (p *powerPolicy) Scale(rs float64, ijk, q int) float64 {
	r := p.con.rad[ijk][q]
	return rs + p.rad - r*r
}
