package models

import (
	"strings"

	json "github.com/goccy/go-json"
)

// SpecFamily groups categories that share a technical specification shape.
type SpecFamily string

const (
	FamilyTent    SpecFamily = "tent"
	FamilyChair   SpecFamily = "chair"
	FamilySeating SpecFamily = "seating"
	FamilyGeneric SpecFamily = "generic"
)

// FamilyForCategory maps a category tag to its spec family.
func FamilyForCategory(category string) SpecFamily {
	cat := strings.ToLower(category)
	switch {
	case strings.Contains(cat, "tent"):
		return FamilyTent
	case strings.Contains(cat, "chair"):
		return FamilyChair
	case strings.Contains(cat, "seat"), strings.Contains(cat, "majlis"):
		return FamilySeating
	default:
		return FamilyGeneric
	}
}

// Material names the main material in both locales.
type Material struct {
	MaterialAR string `json:"material_ar,omitempty"`
	MaterialEN string `json:"material_en,omitempty"`
}

// Name returns the localized material name.
func (m Material) Name(l Locale) string {
	return l.PickWithFallback(m.MaterialAR, m.MaterialEN)
}

// Specs is one of TentSpecs, ChairSpecs, SeatingSpecs or GenericSpecs.
type Specs interface {
	Family() SpecFamily
	isSpecs()
}

type TentSpecs struct {
	Material
	Dimensions string `json:"dimensions,omitempty"`
	Layers     int    `json:"layers,omitempty"`
}

type ChairSpecs struct {
	Material
	Foldable bool `json:"foldable"`
}

type SeatingSpecs struct {
	Material
	Pieces          int    `json:"pieces,omitempty"`
	TotalDimensions string `json:"total_dimensions,omitempty"`
}

type GenericSpecs struct {
	Material
}

func (TentSpecs) Family() SpecFamily    { return FamilyTent }
func (ChairSpecs) Family() SpecFamily   { return FamilyChair }
func (SeatingSpecs) Family() SpecFamily { return FamilySeating }
func (GenericSpecs) Family() SpecFamily { return FamilyGeneric }

func (TentSpecs) isSpecs()    {}
func (ChairSpecs) isSpecs()   {}
func (SeatingSpecs) isSpecs() {}
func (GenericSpecs) isSpecs() {}

// The family tag is written next to the fields so clients can switch on it.

func (s TentSpecs) MarshalJSON() ([]byte, error) {
	type plain TentSpecs
	return json.Marshal(struct {
		Family SpecFamily `json:"family"`
		plain
	}{FamilyTent, plain(s)})
}

func (s ChairSpecs) MarshalJSON() ([]byte, error) {
	type plain ChairSpecs
	return json.Marshal(struct {
		Family SpecFamily `json:"family"`
		plain
	}{FamilyChair, plain(s)})
}

func (s SeatingSpecs) MarshalJSON() ([]byte, error) {
	type plain SeatingSpecs
	return json.Marshal(struct {
		Family SpecFamily `json:"family"`
		plain
	}{FamilySeating, plain(s)})
}

func (s GenericSpecs) MarshalJSON() ([]byte, error) {
	type plain GenericSpecs
	return json.Marshal(struct {
		Family SpecFamily `json:"family"`
		plain
	}{FamilyGeneric, plain(s)})
}

// SpecsRecord is the flat shape specs take in storage and in provisioning requests.
type SpecsRecord struct {
	Dimensions      string `json:"dimensions,omitempty" bson:"dimensions,omitempty"`
	Layers          int    `json:"layers,omitempty" bson:"layers,omitempty"`
	Foldable        bool   `json:"foldable,omitempty" bson:"foldable,omitempty"`
	Pieces          int    `json:"pieces,omitempty" bson:"pieces,omitempty"`
	TotalDimensions string `json:"total_dimensions,omitempty" bson:"total_dimensions,omitempty"`
	MaterialAR      string `json:"material_ar,omitempty" bson:"material_ar,omitempty"`
	MaterialEN      string `json:"material_en,omitempty" bson:"material_en,omitempty"`
}

// IsZero reports whether no field is set.
func (r SpecsRecord) IsZero() bool {
	return r == SpecsRecord{}
}

// DecodeSpecs builds the typed specs for category. Fields that do not belong
// to the category's family are dropped. A nil record yields nil.
func DecodeSpecs(category string, r *SpecsRecord) Specs {
	if r == nil {
		return nil
	}
	m := Material{MaterialAR: r.MaterialAR, MaterialEN: r.MaterialEN}
	switch FamilyForCategory(category) {
	case FamilyTent:
		return TentSpecs{Material: m, Dimensions: r.Dimensions, Layers: r.Layers}
	case FamilyChair:
		return ChairSpecs{Material: m, Foldable: r.Foldable}
	case FamilySeating:
		return SeatingSpecs{Material: m, Pieces: r.Pieces, TotalDimensions: r.TotalDimensions}
	default:
		return GenericSpecs{Material: m}
	}
}

// EncodeSpecs flattens typed specs for storage. Nil specs yield nil.
func EncodeSpecs(s Specs) *SpecsRecord {
	switch v := s.(type) {
	case TentSpecs:
		return &SpecsRecord{Dimensions: v.Dimensions, Layers: v.Layers, MaterialAR: v.MaterialAR, MaterialEN: v.MaterialEN}
	case ChairSpecs:
		return &SpecsRecord{Foldable: v.Foldable, MaterialAR: v.MaterialAR, MaterialEN: v.MaterialEN}
	case SeatingSpecs:
		return &SpecsRecord{Pieces: v.Pieces, TotalDimensions: v.TotalDimensions, MaterialAR: v.MaterialAR, MaterialEN: v.MaterialEN}
	case GenericSpecs:
		return &SpecsRecord{MaterialAR: v.MaterialAR, MaterialEN: v.MaterialEN}
	default:
		return nil
	}
}
