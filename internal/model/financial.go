// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the root Model document along with payroll data.
package model

import "github.com/shopspring/decimal"

// Employee is a salaried person counted in payroll cost while active.
type Employee struct {
	ID            string
	Name          string
	Title         string
	Department    string
	StartDate     string // YYYY-MM
	EndDate       string // YYYY-MM, empty while still employed
	MonthlySalary decimal.Decimal
}

// Payroll holds either pre-computed monthly payroll values or the employees
// they are derived from.
type Payroll struct {
	Values    []string
	Employees []Employee
}

// Model is the root of a financial model.
type Model struct {
	Name            string
	StartingMonth   string // YYYY-MM
	StartingBalance decimal.Decimal

	Revenue Sheet
	Cost    Sheet
	Payroll Payroll
}
