package bindex

// Invoice describes a named, versioned artifact bundle. The fields mirror the
// on-disk TOML invoice document: a bindle spec plus the parcels it carries.
//
// The index treats invoices as immutable values: they are cloned on the way
// in and on the way out, so callers can keep mutating their own copy.
type Invoice struct {
	BindleVersion string            `toml:"bindleVersion" json:"bindleVersion"`
	Yanked        *bool             `toml:"yanked,omitempty" json:"yanked,omitempty"`
	Bindle        BindleSpec        `toml:"bindle" json:"bindle"`
	Annotations   map[string]string `toml:"annotations,omitempty" json:"annotations,omitempty"`
	Parcels       []Parcel          `toml:"parcel,omitempty" json:"parcel,omitempty"`
}

// BindleSpec identifies the bundle itself.
type BindleSpec struct {
	Name        string   `toml:"name" json:"name"`
	Version     string   `toml:"version" json:"version"`
	Description string   `toml:"description,omitempty" json:"description,omitempty"`
	Authors     []string `toml:"authors,omitempty" json:"authors,omitempty"`
}

// Parcel is a single item in the bundle.
type Parcel struct {
	Label      Label       `toml:"label" json:"label"`
	Conditions *Conditions `toml:"conditions,omitempty" json:"conditions,omitempty"`
}

// Label carries the content metadata for a parcel.
type Label struct {
	SHA256      string            `toml:"sha256" json:"sha256"`
	MediaType   string            `toml:"mediaType" json:"mediaType"`
	Name        string            `toml:"name" json:"name"`
	Size        int64             `toml:"size,omitempty" json:"size,omitempty"`
	Annotations map[string]string `toml:"annotations,omitempty" json:"annotations,omitempty"`
}

// Conditions restrict when a parcel applies.
type Conditions struct {
	MemberOf []string `toml:"memberOf,omitempty" json:"memberOf,omitempty"`
	Requires []string `toml:"requires,omitempty" json:"requires,omitempty"`
}

// IsYanked reports whether the invoice is marked as withdrawn.
// An absent flag means not yanked.
func (i *Invoice) IsYanked() bool {
	return i.Yanked != nil && *i.Yanked
}

// Clone returns a deep copy of the invoice.
func (i *Invoice) Clone() *Invoice {
	if i == nil {
		return nil
	}

	out := *i

	if i.Yanked != nil {
		yanked := *i.Yanked
		out.Yanked = &yanked
	}

	out.Bindle.Authors = cloneSlice(i.Bindle.Authors)
	out.Annotations = cloneMap(i.Annotations)

	if i.Parcels != nil {
		out.Parcels = make([]Parcel, len(i.Parcels))
		for n, p := range i.Parcels {
			out.Parcels[n] = p.clone()
		}
	}

	return &out
}

func (p Parcel) clone() Parcel {
	out := p
	out.Label.Annotations = cloneMap(p.Label.Annotations)
	if p.Conditions != nil {
		out.Conditions = &Conditions{
			MemberOf: cloneSlice(p.Conditions.MemberOf),
			Requires: cloneSlice(p.Conditions.Requires),
		}
	}
	return out
}

func cloneSlice(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func cloneMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
