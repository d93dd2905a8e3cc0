package interval

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/netsec-ethz/isorange/internal/pkg/datepart"
)

var (
	//ErrMismatch is returned when start and end do not cover the same fields.
	ErrMismatch = errors.New("start and end have different formats")
	//ErrEndBeforeStart is returned when the end instant precedes the start instant.
	ErrEndBeforeStart = errors.New("end is before start")
)

//Interval is a start value and an optional end value sharing the components before Diverge.
type Interval struct {
	Start datepart.Parts
	//End is empty if the interval consists of the start value only.
	End datepart.Parts
	//Diverge is the index of the first component where start and end differ. It equals the
	//length of Start if they do not differ at all.
	Diverge int
	UTC     bool
}

//Merge compares start and end component by component and returns the resulting interval. An empty
//end yields a single value interval.
func Merge(start, end datepart.Parts, utc bool) (Interval, error) {
	iv := Interval{Start: start, Diverge: start.Len(), UTC: utc}
	if end.Len() == 0 {
		return iv, nil
	}
	if start.Len() != end.Len() || start.First() != end.First() {
		return Interval{}, errors.Wrapf(ErrMismatch, "%s and %s", start, end)
	}
	if end.Instant().Before(start.Instant()) {
		return Interval{}, errors.Wrapf(ErrEndBeforeStart, "%s before %s", end, start)
	}
	iv.End = end
	sc, ec := start.Components(), end.Components()
	for i := range sc {
		if sc[i] != ec[i] {
			iv.Diverge = i
			break
		}
	}
	return iv, nil
}

//Single returns true if the interval renders as a single value, either because there is no end or
//because end equals start.
func (iv Interval) Single() bool {
	return iv.Diverge >= iv.Start.Len()
}

//Shared returns the components common to start and end.
func (iv Interval) Shared() []string {
	return iv.Start.Components()[:iv.Diverge]
}

//Render returns the interval in the given style. The shared components are written once, followed
//by the remaining start components, the interval separator and the remaining end components.
func (iv Interval) Render(style Style) string {
	start, end := iv.Start, iv.End
	if style.Slashes && style.RomanMonths {
		start, end = start.WithRomanMonth(), end.WithRomanMonth()
	}
	sep := style.separators()
	sc, ec := start.Components(), end.Components()
	d := iv.Diverge

	sb := strings.Builder{}
	sep.join(&sb, sc[:d], 0)
	if !iv.Single() {
		if d > 0 {
			sb.WriteString(sep.after(d - 1))
		}
		sep.join(&sb, sc[d:], d)
		sb.WriteString(sep.interval)
		sep.join(&sb, ec[d:], d)
	}
	if iv.UTC && sep.zone {
		sb.WriteByte('Z')
	}
	return sb.String()
}

//String returns the interval in ISO style.
func (iv Interval) String() string {
	return iv.Render(ISO)
}
