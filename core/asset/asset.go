package asset

import (
	"github.com/r3labs/diff/v2"
)

// Asset is a catalogued entity as returned by the catalog API.
// Only the header fields are modelled, everything else stays in Attributes.
type Asset struct {
	TypeName            Type                   `json:"typeName" diff:"-"`
	GUID                string                 `json:"guid" diff:"-"`
	Status              string                 `json:"status,omitempty" diff:"status"`
	DisplayText         string                 `json:"displayText,omitempty" diff:"displayText"`
	Attributes          map[string]interface{} `json:"attributes,omitempty" diff:"attributes"`
	ClassificationNames []string               `json:"classificationNames,omitempty" diff:"classificationNames"`
	MeaningNames        []string               `json:"meaningNames,omitempty" diff:"meaningNames"`
}

// QualifiedName returns the qualifiedName attribute, or empty string
func (a Asset) QualifiedName() string {
	return a.stringAttr("qualifiedName")
}

// Name returns the name attribute, falling back to the display text
func (a Asset) Name() string {
	if n := a.stringAttr("name"); n != "" {
		return n
	}
	return a.DisplayText
}

func (a Asset) stringAttr(key string) string {
	if a.Attributes == nil {
		return ""
	}
	s, _ := a.Attributes[key].(string)
	return s
}

// Diff returns nil changelog with nil error if equal
// returns wrapped r3labs/diff Changelog struct with nil error if not equal
func (a *Asset) Diff(otherAsset *Asset) (diff.Changelog, error) {
	return diff.Diff(a, otherAsset, diff.DiscardComplexOrigin(), diff.AllowTypeMismatch(true))
}
