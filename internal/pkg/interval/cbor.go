package interval

import (
	cbor "github.com/britram/borat"
	"github.com/pkg/errors"

	"github.com/netsec-ethz/isorange/internal/pkg/datepart"
)

const (
	cborStart   = 1
	cborEnd     = 2
	cborDiverge = 3
	cborUTC     = 4
)

// MarshalCBOR implements the CBORMarshaler interface.
func (iv Interval) MarshalCBOR(w *cbor.CBORWriter) error {
	m := make(map[int]interface{})
	m[cborStart] = iv.Start.Components()
	if iv.End.Len() > 0 {
		m[cborEnd] = iv.End.Components()
	}
	m[cborDiverge] = iv.Diverge
	m[cborUTC] = iv.UTC
	return w.WriteIntMap(m)
}

// UnmarshalMap unpacks a CBOR unmarshaled map to this object.
func (iv *Interval) UnmarshalMap(m map[int]interface{}) error {
	start, err := partsFromCBOR(m[cborStart])
	if err != nil {
		return errors.Wrap(err, "cbor interval start")
	}
	var end datepart.Parts
	if raw, ok := m[cborEnd]; ok {
		if end, err = partsFromCBOR(raw); err != nil {
			return errors.Wrap(err, "cbor interval end")
		}
	}
	diverge, ok := m[cborDiverge].(int)
	if !ok {
		return errors.New("cbor interval map does not contain divergence index")
	}
	utc, ok := m[cborUTC].(bool)
	if !ok {
		return errors.New("cbor interval map does not contain utc flag")
	}
	merged, err := Merge(start, end, utc)
	if err != nil {
		return err
	}
	if merged.Diverge != diverge {
		return errors.Errorf("cbor interval divergence index %d does not match components, expected %d",
			diverge, merged.Diverge)
	}
	*iv = merged
	return nil
}

func partsFromCBOR(raw interface{}) (datepart.Parts, error) {
	list, ok := raw.([]interface{})
	if !ok {
		return datepart.Parts{}, errors.New("components should be an array")
	}
	components := make([]string, len(list))
	for i, c := range list {
		s, ok := c.(string)
		if !ok {
			return datepart.Parts{}, errors.Errorf("component %d is not a string", i)
		}
		components[i] = s
	}
	return datepart.New(datepart.Year, components)
}
