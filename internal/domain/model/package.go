// Package model defines the core data types for the depscout analysis service:
// jobs, package nodes, and the request/response contracts of the submission API.
package model

import "encoding/json"

// Heuristic is an opaque scored signal attached to a package node by the
// analysis engine. Data is engine-defined; a nil map serializes as JSON null,
// which is meaningful and distinct from an absent field.
type Heuristic struct {
	Score float64        `json:"score"`
	Data  map[string]any `json:"data"`
}

// Package is one node in an analyzed dependency tree. Dependencies nest to
// arbitrary depth; leaf nodes omit the dependencies key entirely.
type Package struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Type    string `json:"type"`
	Status  Status `json:"status"`

	// Risk is the 0-100 concern score; nil until the engine has computed it.
	Risk *int `json:"risk"`
	// License is nil when unknown. The null is meaningful on the wire.
	License *string `json:"license"`

	LastUpdated Epoch `json:"last_updated"`

	// Heuristics preserves detection order.
	Heuristics []Heuristic `json:"heuristics"`
	// Vulnerabilities is an engine-defined pass-through structure.
	Vulnerabilities []json.RawMessage `json:"vulnerabilities"`
	// Dependencies preserves resolution order and is never reordered once set.
	Dependencies []Package `json:"dependencies,omitempty"`
}

// Clone returns a deep copy of the package node and its entire subtree.
func (p *Package) Clone() Package {
	out := *p

	if p.Risk != nil {
		risk := *p.Risk
		out.Risk = &risk
	}
	if p.License != nil {
		license := *p.License
		out.License = &license
	}

	if p.Heuristics != nil {
		out.Heuristics = make([]Heuristic, len(p.Heuristics))
		for i, h := range p.Heuristics {
			out.Heuristics[i] = h.clone()
		}
	}

	if p.Vulnerabilities != nil {
		out.Vulnerabilities = make([]json.RawMessage, len(p.Vulnerabilities))
		for i, v := range p.Vulnerabilities {
			out.Vulnerabilities[i] = append(json.RawMessage(nil), v...)
		}
	}

	if p.Dependencies != nil {
		out.Dependencies = make([]Package, len(p.Dependencies))
		for i := range p.Dependencies {
			out.Dependencies[i] = p.Dependencies[i].Clone()
		}
	}

	return out
}

func (h Heuristic) clone() Heuristic {
	out := h
	if h.Data != nil {
		out.Data = make(map[string]any, len(h.Data))
		for k, v := range h.Data {
			out.Data[k] = v
		}
	}
	return out
}
