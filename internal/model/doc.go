// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the Go representation of a financial model: sheets of
// named variables whose formulas are evaluated into monthly time series and
// rolled up into a profit-and-loss statement.
//
// # Core Concepts
//
//   - Variable: A named formula cell. Its Value (and optional Value1 override
//     for the first computed period) is written in the compact storage syntax,
//     where `$n` refers to the variable's own value n periods back and `#id` or
//     `#id$n` refers to another variable.
//
//   - Row: The evaluated output of one variable, always exactly Periods
//     entries long. Entries are numeric strings, the Placeholder or the
//     RefError sentinel.
//
//   - Sheet and Section: The grouping used by the profit-and-loss rollup. A
//     section's rows are evaluated together with the sheet's assumptions and
//     the section's EndRow, which carries the section total.
//
//   - Model: The root document, holding the revenue sheet, the cost sheet and
//     payroll.
//
// Why a separate model package?
//
// Loaders (HCL, YAML) produce these structures and the engine consumes them.
// Keeping them free of any format or evaluation logic lets every loader and
// every engine stage agree on one immutable snapshot type.
package model
