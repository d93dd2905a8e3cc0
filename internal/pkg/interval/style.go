package interval

import (
	"strings"

	"github.com/netsec-ethz/isorange/internal/pkg/datepart"
)

//Style selects how an interval is displayed.
type Style struct {
	//Slashes swaps date dashes for slashes, the interval slash for a dash, T for a space and drops
	//the Z suffix. The result is no longer ISO 8601.
	Slashes bool
	//RomanMonths writes months as lowercase Roman numerals. It only has an effect together with
	//Slashes.
	RomanMonths bool
}

var (
	ISO      = Style{}
	Friendly = Style{Slashes: true}
)

type separators struct {
	date     string
	dateTime string
	time     string
	interval string
	zone     bool
}

func (s Style) separators() separators {
	if s.Slashes {
		return separators{date: "/", dateTime: " ", time: ":", interval: "-"}
	}
	return separators{date: "-", dateTime: "T", time: ":", interval: "/", zone: true}
}

//after returns the separator following the component at index i of a year first sequence.
func (s separators) after(i int) string {
	switch f := datepart.Field(i); {
	case f < datepart.Day:
		return s.date
	case f == datepart.Day:
		return s.dateTime
	}
	return s.time
}

//join writes components separated according to their position, offset being the index of the
//first one.
func (s separators) join(sb *strings.Builder, components []string, offset int) {
	for i, c := range components {
		if i > 0 {
			sb.WriteString(s.after(offset + i - 1))
		}
		sb.WriteString(c)
	}
}
