package model

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/alexiusacademia/goframe/internal/frame"
	"github.com/alexiusacademia/goframe/internal/nscp"
	"github.com/alexiusacademia/goframe/internal/section"
)

// ErrInvalidModel is matched by every *ValidationError.
var ErrInvalidModel = errors.New("model: invalid model")

// ValidationError points at the offending item of a model file.
type ValidationError struct {
	Item  string // "elements", "supports", "loads", "materials" or "sections"
	Index int    // position in the list, -1 for named entries
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("model: %s: %s", e.Item, e.Msg)
	}
	return fmt.Sprintf("model: %s[%d]: %s", e.Item, e.Index, e.Msg)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidModel
}

var dofNames = map[string]int{
	"ux": frame.UX,
	"uy": frame.UY,
	"rz": frame.RZ,
}

func parseDOF(name string) (int, error) {
	d, ok := dofNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown DOF %q (expected ux, uy or rz)", name)
	}
	return d, nil
}

// Validate checks names and references. Member properties are checked
// again by the solver.
func (f *File) Validate() error {
	if len(f.Nodes) == 0 {
		return &ValidationError{Item: "nodes", Index: -1, Msg: "at least one node is required"}
	}

	for _, name := range sortedKeys(f.Materials) {
		m := f.Materials[name]
		if m.E == 0 && m.Fc == 0 {
			return &ValidationError{Item: "materials", Index: -1, Msg: fmt.Sprintf("%q needs e or fc", name)}
		}
		if m.E < 0 || m.Fc < 0 {
			return &ValidationError{Item: "materials", Index: -1, Msg: fmt.Sprintf("%q has a negative value", name)}
		}
		if _, err := m.Modulus(); err != nil {
			return &ValidationError{Item: "materials", Index: -1, Msg: fmt.Sprintf("%q: %v", name, err)}
		}
	}
	for _, name := range sortedKeys(f.Sections) {
		if _, _, err := f.Sections[name].properties(); err != nil {
			return &ValidationError{Item: "sections", Index: -1, Msg: fmt.Sprintf("%q: %v", name, err)}
		}
	}

	n := len(f.Nodes)
	for i, e := range f.Elements {
		if e.Start < 0 || e.Start >= n || e.End < 0 || e.End >= n {
			return &ValidationError{Item: "elements", Index: i, Msg: fmt.Sprintf("node reference out of range [0, %d)", n)}
		}
		if _, ok := f.Materials[e.Material]; !ok {
			return &ValidationError{Item: "elements", Index: i, Msg: fmt.Sprintf("unknown material %q", e.Material)}
		}
		if _, ok := f.Sections[e.Section]; !ok {
			return &ValidationError{Item: "elements", Index: i, Msg: fmt.Sprintf("unknown section %q", e.Section)}
		}
	}

	for i, s := range f.Supports {
		if s.Node < 0 || s.Node >= n {
			return &ValidationError{Item: "supports", Index: i, Msg: fmt.Sprintf("node %d does not exist", s.Node)}
		}
		for _, name := range s.Fix {
			if _, err := parseDOF(name); err != nil {
				return &ValidationError{Item: "supports", Index: i, Msg: err.Error()}
			}
		}
		for name := range s.Settlement {
			if _, err := parseDOF(name); err != nil {
				return &ValidationError{Item: "supports", Index: i, Msg: err.Error()}
			}
		}
	}

	for i, l := range f.Loads {
		if l.Node < 0 || l.Node >= n {
			return &ValidationError{Item: "loads", Index: i, Msg: fmt.Sprintf("node %d does not exist", l.Node)}
		}
		if _, err := nscp.ParseLoadType(l.Type); err != nil {
			return &ValidationError{Item: "loads", Index: i, Msg: err.Error()}
		}
	}
	return nil
}

// Modulus resolves a material to its elastic modulus in Pa. An explicit E
// wins over fc.
func (m Material) Modulus() (float64, error) {
	if m.E > 0 {
		return m.E, nil
	}
	ec, err := nscp.Ec(m.Fc)
	if err != nil {
		return 0, err
	}
	return ec * nscp.MPa, nil
}

// properties resolves a section to area and bending inertia.
func (s SectionSpec) properties() (area, inertia float64, err error) {
	switch {
	case len(s.Vertices) > 0:
		poly := section.Section{Vertices: s.Vertices}
		if err := poly.Validate(); err != nil {
			return 0, 0, err
		}
		p := poly.CalculateProperties()
		return p.Area, p.Inertia(), nil
	case s.Width != 0 || s.Depth != 0:
		p, err := section.Rectangular(s.Width, s.Depth)
		if err != nil {
			return 0, 0, err
		}
		return p.Area, p.Inertia(), nil
	case s.Area > 0 && s.Inertia > 0:
		return s.Area, s.Inertia, nil
	}
	return 0, 0, fmt.Errorf("needs width and depth, area and inertia, or vertices")
}

// LoadsByType returns one global load vector per load type present.
func (f *File) LoadsByType() map[nscp.LoadType][]float64 {
	out := make(map[nscp.LoadType][]float64)
	size := frame.DOFCount(len(f.Nodes))
	for _, l := range f.Loads {
		t, err := nscp.ParseLoadType(l.Type)
		if err != nil {
			continue
		}
		v, ok := out[t]
		if !ok {
			v = make([]float64, size)
			out[t] = v
		}
		v[frame.DOF(l.Node, frame.UX)] += l.Fx
		v[frame.DOF(l.Node, frame.UY)] += l.Fy
		v[frame.DOF(l.Node, frame.RZ)] += l.Mz
	}
	return out
}

// Build resolves the file into solver input. With a nil combination the
// loads of every type are summed unfactored.
func (f *File) Build(combo *nscp.LoadCombination) (frame.Model, error) {
	if err := f.Validate(); err != nil {
		return frame.Model{}, err
	}

	m := frame.Model{
		Nodes:    append([]frame.Node(nil), f.Nodes...),
		Elements: make([]frame.Element, len(f.Elements)),
	}
	for i, e := range f.Elements {
		area, inertia, _ := f.Sections[e.Section].properties()
		modulus, _ := f.Materials[e.Material].Modulus()
		m.Elements[i] = frame.Element{
			Start:   e.Start,
			End:     e.End,
			Area:    area,
			Inertia: inertia,
			Modulus: modulus,
		}
	}

	for _, s := range f.Supports {
		if s.Fixed {
			for d := 0; d < frame.DOFsPerNode; d++ {
				m.Fixed = append(m.Fixed, frame.DOF(s.Node, d))
			}
		}
		for _, name := range s.Fix {
			d, _ := parseDOF(name)
			m.Fixed = append(m.Fixed, frame.DOF(s.Node, d))
		}
		for name, v := range s.Settlement {
			if m.Settlements == nil {
				m.Settlements = make(map[int]float64)
			}
			d, _ := parseDOF(name)
			m.Settlements[frame.DOF(s.Node, d)] = v
		}
	}

	byType := f.LoadsByType()
	if combo == nil {
		m.Loads = make([]float64, frame.DOFCount(len(f.Nodes)))
		for _, v := range byType {
			for i, p := range v {
				m.Loads[i] += p
			}
		}
	} else {
		loads, err := combo.Apply(byType)
		if err != nil {
			return frame.Model{}, err
		}
		if loads == nil {
			loads = make([]float64, frame.DOFCount(len(f.Nodes)))
		}
		m.Loads = loads
	}

	for i, p := range m.Loads {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return frame.Model{}, &ValidationError{Item: "loads", Index: -1, Msg: fmt.Sprintf("DOF %d has a non-finite load", i)}
		}
	}
	return m, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
