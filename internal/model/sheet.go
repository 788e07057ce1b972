// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the sheet-level containers that group variables for the
// profit-and-loss rollup.
package model

import "fmt"

// Section is a group of rows closed by a total row.
type Section struct {
	Name   string
	Rows   []Variable
	EndRow Variable
}

// Sheet holds assumptions shared by all of its sections.
type Sheet struct {
	Name        string
	Assumptions []Variable
	Sections    []Section
}

// SectionVariables returns the variables evaluated together for section i:
// the sheet's assumptions, the section's rows and finally its end row.
func (s *Sheet) SectionVariables(i int) ([]Variable, error) {
	if i < 0 || i >= len(s.Sections) {
		return nil, fmt.Errorf("sheet %q has no section %d", s.Name, i)
	}
	section := s.Sections[i]
	vars := make([]Variable, 0, len(s.Assumptions)+len(section.Rows)+1)
	vars = append(vars, s.Assumptions...)
	vars = append(vars, section.Rows...)
	vars = append(vars, section.EndRow)
	return vars, nil
}

// AllVariables returns every variable in the sheet, assumptions first, in
// declaration order.
func (s *Sheet) AllVariables() []Variable {
	var vars []Variable
	vars = append(vars, s.Assumptions...)
	for _, section := range s.Sections {
		vars = append(vars, section.Rows...)
		vars = append(vars, section.EndRow)
	}
	return vars
}
