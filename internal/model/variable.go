// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Variable structure, the unit the evaluation engine
// schedules and evaluates.
package model

import "fmt"

// Periods is the fixed number of monthly periods in every evaluated row.
const Periods = 24

const (
	// Placeholder marks a period that is intentionally left without a value.
	Placeholder = "–"
	// RefError marks a variable whose evaluation failed.
	RefError = "#REF!"
)

// Kind describes how a variable gets its values.
type Kind string

const (
	KindValue       Kind = "value"
	KindFormula     Kind = "formula"
	KindIntegration Kind = "integration"
)

// ParseKind converts a raw kind string into a Kind. An empty string maps to
// KindValue.
func ParseKind(raw string) (Kind, error) {
	switch Kind(raw) {
	case "":
		return KindValue, nil
	case KindValue, KindFormula, KindIntegration:
		return Kind(raw), nil
	default:
		return "", fmt.Errorf("unknown variable kind %q", raw)
	}
}

// ValueType is the display type of a variable. It does not affect evaluation.
type ValueType string

const (
	ValueTypeNumber     ValueType = "number"
	ValueTypePercentage ValueType = "percentage"
	ValueTypeCurrency   ValueType = "currency"
)

// Variable is a named, typed formula cell.
type Variable struct {
	ID   string
	Name string
	Kind Kind

	// IsTimeSeries controls whether the variable produces computed periods.
	// When false the variable's row is all placeholders, and references to it
	// resolve to its scalar Value.
	IsTimeSeries bool
	// StartingAt is the number of leading periods filled with Placeholder.
	StartingAt int
	// HasDistinctFirstValue makes the first computed period use Value1.
	HasDistinctFirstValue bool

	Value  string // main formula, storage syntax
	Value1 string // first-period override, storage syntax

	// Presentation and integration metadata.
	ValueType         ValueType
	DecimalPlaces     int
	Editable          bool
	IntegrationName   string
	IntegrationValues []string
}

// Formulas returns the main and override formula texts, which are scanned for
// cross-variable references.
func (v *Variable) Formulas() []string {
	return []string{v.Value, v.Value1}
}

// FirstComputedPeriod returns StartingAt clamped to [0, Periods].
func (v *Variable) FirstComputedPeriod() int {
	switch {
	case v.StartingAt < 0:
		return 0
	case v.StartingAt > Periods:
		return Periods
	default:
		return v.StartingAt
	}
}
