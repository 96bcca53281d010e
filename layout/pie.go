package layout

import (
	"math"
	"sort"

	"github.com/gogpu/gg"

	"github.com/gogpu/chart/dataset"
	"github.com/gogpu/chart/internal/textfmt"
)

// Pie defaults.
const (
	PieMarginX          = 80
	PieMarginY          = 30
	PieInflexionPadding = 15
	PieLeaderLength     = 30
	PieLabelGap         = 2
	PieLabelBudget      = 20
	PieMinLabelSpacing  = 14
	PieHoverGrow        = 5
)

// Side is the half of the pie a label sits on.
type Side int

const (
	SideRight Side = iota
	SideLeft
)

// PieOptions controls pie layout. Zero fields take the Pie* defaults.
type PieOptions struct {
	// Width and Height of the full drawing surface.
	Width, Height float64

	MarginX, MarginY float64

	// InnerRatio turns the pie into a donut; 0 draws a full pie.
	InnerRatio float64

	InflexionPadding float64
	LeaderLength     float64
	LabelGap         float64
	LabelBudget      int
	MinLabelSpacing  float64
	HoverGrow        float64

	// Hovered is the input index of the hovered slice. It only applies when
	// HasHover is set, so the zero value hovers nothing.
	Hovered  int
	HasHover bool

	// SortByValue lays slices out by descending value instead of data order.
	SortByValue bool

	// Format renders the value shown in parentheses after the name. Nil
	// omits the value.
	Format func(float64) string
}

func (o *PieOptions) defaults() {
	if o.MarginX == 0 {
		o.MarginX = PieMarginX
	}
	if o.MarginY == 0 {
		o.MarginY = PieMarginY
	}
	if o.InflexionPadding == 0 {
		o.InflexionPadding = PieInflexionPadding
	}
	if o.LeaderLength == 0 {
		o.LeaderLength = PieLeaderLength
	}
	if o.LabelGap == 0 {
		o.LabelGap = PieLabelGap
	}
	if o.LabelBudget == 0 {
		o.LabelBudget = PieLabelBudget
	}
	if o.MinLabelSpacing == 0 {
		o.MinLabelSpacing = PieMinLabelSpacing
	}
	if o.HoverGrow == 0 {
		o.HoverGrow = PieHoverGrow
	}
}

// Label is the placement of one slice label and its leader line.
type Label struct {
	Text string
	Side Side

	// Start is the centroid of the slice, where the leader begins.
	Start gg.Point
	// Inflexion is the elbow outside the pie.
	Inflexion gg.Point
	// End is where the horizontal leader stops.
	End gg.Point
	// Anchor is the text position; text is start-aligned on the right and
	// end-aligned on the left.
	Anchor gg.Point
}

// Leader returns the polyline from the slice to the label.
func (l Label) Leader() *gg.Path {
	p := gg.NewPath()
	p.MoveTo(l.Start.X, l.Start.Y)
	p.LineTo(l.Inflexion.X, l.Inflexion.Y)
	p.LineTo(l.End.X, l.End.Y)
	return p
}

// Slice is one laid-out pie wedge. Angles are clockwise from 12 o'clock.
type Slice struct {
	Index   int
	Name    string
	Value   float64
	Percent float64

	StartAngle, EndAngle     float64
	InnerRadius, OuterRadius float64

	Centroid gg.Point
	Label    Label
}

// MidAngle returns the bisector of the slice.
func (s Slice) MidAngle() float64 { return (s.StartAngle + s.EndAngle) / 2 }

// Path returns the wedge outline centred on the origin.
func (s Slice) Path() *gg.Path {
	return Wedge(gg.Pt(0, 0), s.InnerRadius, s.OuterRadius, s.StartAngle, s.EndAngle)
}

// PieLayout is the result of Pie.
type PieLayout struct {
	Slices []Slice
	// Center is the pie centre in surface coordinates.
	Center gg.Point
	Radius float64
	Total  float64
}

// Pie lays out slices proportional to value, in data order from angle 0
// unless SortByValue is set. Negative values count as zero. A non-positive
// total produces no slices.
func Pie(points []dataset.Point, o PieOptions) PieLayout {
	o.defaults()
	radius := math.Min(o.Width-2*o.MarginX, o.Height-2*o.MarginY) / 2
	if radius < 0 {
		radius = 0
	}
	l := PieLayout{Center: gg.Pt(o.Width/2, o.Height/2), Radius: radius}

	order := dataset.Order(points, !o.SortByValue)
	for _, idx := range order {
		l.Total += math.Max(points[idx].Value, 0)
	}
	if l.Total <= 0 {
		return l
	}

	inner := radius * o.InnerRatio
	cum := 0.0
	l.Slices = make([]Slice, 0, len(order))
	for _, idx := range order {
		p := points[idx]
		v := math.Max(p.Value, 0)
		start := cum / l.Total * 2 * math.Pi
		cum += v
		s := Slice{
			Index:       idx,
			Name:        p.DisplayName(),
			Value:       p.Value,
			Percent:     v / l.Total * 100,
			StartAngle:  start,
			EndAngle:    cum / l.Total * 2 * math.Pi,
			InnerRadius: inner,
			OuterRadius: radius,
		}
		s.Centroid = Polar(s.MidAngle(), (inner+radius)/2)
		s.Label = placeLabel(s, radius, o)
		if o.HasHover && idx == o.Hovered {
			s.OuterRadius += o.HoverGrow
		}
		l.Slices = append(l.Slices, s)
	}
	AvoidCollisions(l.Slices, o.MinLabelSpacing)
	return l
}

func placeLabel(s Slice, radius float64, o PieOptions) Label {
	mid := s.MidAngle()
	lb := Label{
		Text:      textfmt.Truncate(s.Name, o.LabelBudget),
		Start:     s.Centroid,
		Inflexion: Polar(mid, radius+o.InflexionPadding),
	}
	if o.Format != nil {
		lb.Text += " (" + o.Format(s.Value) + ")"
	}
	dir := 1.0
	if mid >= math.Pi {
		lb.Side = SideLeft
		dir = -1
	}
	lb.End = gg.Pt(lb.Inflexion.X+dir*o.LeaderLength, lb.Inflexion.Y)
	lb.Anchor = gg.Pt(lb.End.X+dir*o.LabelGap, lb.End.Y)
	return lb
}

// AvoidCollisions pushes labels down so that labels on the same side are at
// least spacing apart vertically. It is a single top-to-bottom pass; leaders
// keep their inflexion and bend to the moved label.
func AvoidCollisions(slices []Slice, spacing float64) {
	for _, side := range []Side{SideRight, SideLeft} {
		var idx []int
		for i := range slices {
			if slices[i].Label.Side == side {
				idx = append(idx, i)
			}
		}
		sort.SliceStable(idx, func(a, b int) bool {
			return slices[idx[a]].Label.Anchor.Y < slices[idx[b]].Label.Anchor.Y
		})
		for k := 1; k < len(idx); k++ {
			prev := &slices[idx[k-1]].Label
			cur := &slices[idx[k]].Label
			if cur.Anchor.Y-prev.Anchor.Y < spacing {
				cur.Anchor.Y = prev.Anchor.Y + spacing
				cur.End.Y = cur.Anchor.Y
			}
		}
	}
}
