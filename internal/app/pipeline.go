package app

import (
	"encoding/json"

	"pansiyon_cms/internal/content"
	"pansiyon_cms/internal/domain"
)

// pipeline bundles one content type's default, normalizer and validator
// behind a uniform shape so the services can dispatch on the content key.
type pipeline struct {
	defaultDoc func(domain.ContentLocale) any
	decode     func(json.RawMessage) (any, error)
	normalize  func(raw map[string]any, fallback any) any
	validate   func(doc any) string
}

func pipelineFor[T any](
	def func(domain.ContentLocale) T,
	norm func(map[string]any, T) T,
	val func(T) string,
) pipeline {
	return pipeline{
		defaultDoc: func(l domain.ContentLocale) any { return def(l) },
		decode: func(b json.RawMessage) (any, error) {
			var v T
			err := json.Unmarshal(b, &v)
			return v, err
		},
		normalize: func(raw map[string]any, fallback any) any { return norm(raw, fallback.(T)) },
		validate:  func(doc any) string { return val(doc.(T)) },
	}
}

// docAsMap reshapes a typed document into the raw map form the normalizers
// take as input, so stored values go through the same per-item coercion as
// admin submissions.
func docAsMap(doc any) (map[string]any, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

var pipelines = map[string]pipeline{
	domain.KeyHome:        pipelineFor(content.DefaultHomeContent, content.NormalizeHomeContent, content.ValidateHomeContent),
	domain.KeyServices:    pipelineFor(content.DefaultServicesContent, content.NormalizeServicesContent, content.ValidateServicesContent),
	domain.KeyAmenities:   pipelineFor(content.DefaultAmenitiesContent, content.NormalizeAmenitiesContent, content.ValidateAmenitiesContent),
	domain.KeyContact:     pipelineFor(content.DefaultContactContent, content.NormalizeContactContent, content.ValidateContactContent),
	domain.KeyReservation: pipelineFor(content.DefaultReservationContent, content.NormalizeReservationContent, content.ValidateReservationContent),
}
