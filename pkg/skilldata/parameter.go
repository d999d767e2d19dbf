// Package skilldata holds the plain-data records every skill instance
// owns: its default descriptor, the supervisor-supplied command
// parameters, its live state, and the pending command/mode pulses. These
// are pure data — mutated only by the owning runtime worker (plus the
// transport's read-in path, which writes command fields before the tick).
package skilldata

import (
	"strconv"
	"strings"

	"github.com/cognitive-production/skillbasedcontrol-server/pkg/wire"
)

// Parameter is a single named value. All values are stringly typed on the
// wire; the accessors below are conveniences for skill authors, not a
// change to the wire representation.
type Parameter struct {
	Name        string
	Value       string
	Unit        string
	Description string
}

// Float64 parses Value as a float64.
func (p Parameter) Float64() (float64, error) {
	return strconv.ParseFloat(p.Value, 64)
}

// Int64 parses Value as an int64.
func (p Parameter) Int64() (int64, error) {
	return strconv.ParseInt(p.Value, 10, 64)
}

// Bool parses Value as a bool.
func (p Parameter) Bool() (bool, error) {
	return strconv.ParseBool(p.Value)
}

// SetFloat64 formats v into Value like Python's str(float): the
// shortest round-tripping decimal, always with a fractional part (an
// integer-valued float keeps a trailing ".0") so a supervisor reading
// the wire value can't mistake it for an integer parameter. Exponent
// notation is never used, so very large or very small magnitudes are
// written out in full where Python would print e.g. "1e-05".
func (p *Parameter) SetFloat64(v float64) {
	p.Value = formatPythonFloat(v)
}

func formatPythonFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// SetInt64 formats v into Value.
func (p *Parameter) SetInt64(v int64) {
	p.Value = strconv.FormatInt(v, 10)
}

// SetBool formats v into Value.
func (p *Parameter) SetBool(v bool) {
	p.Value = strconv.FormatBool(v)
}

// CopyFrom populates p from its wire counterpart.
func (p *Parameter) CopyFrom(w wire.Parameter) {
	p.Name = w.Name
	p.Value = w.Value
	p.Unit = w.Unit
	p.Description = w.Description
}

// CopyTo writes p into its wire counterpart.
func (p Parameter) CopyTo() wire.Parameter {
	return wire.Parameter{
		Name:        p.Name,
		Value:       p.Value,
		Unit:        p.Unit,
		Description: p.Description,
	}
}

func parametersFromWire(in []wire.Parameter) []Parameter {
	out := make([]Parameter, len(in))
	for i, w := range in {
		out[i].CopyFrom(w)
	}
	return out
}

func parametersToWire(in []Parameter) []wire.Parameter {
	out := make([]wire.Parameter, len(in))
	for i, p := range in {
		out[i] = p.CopyTo()
	}
	return out
}
