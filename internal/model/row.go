// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Row, the evaluated output of a single variable or of a
// derived profit-and-loss line.
package model

// Row is a named sequence of exactly Periods values.
type Row struct {
	ID     string   `json:"id,omitempty"`
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// FilledRow returns a row whose every period holds value.
func FilledRow(id, name, value string) Row {
	values := make([]string, Periods)
	for i := range values {
		values[i] = value
	}
	return Row{ID: id, Name: name, Values: values}
}

// HasErrors reports whether any period of the row holds RefError.
func (r Row) HasErrors() bool {
	for _, v := range r.Values {
		if v == RefError {
			return true
		}
	}
	return false
}
