// Package readable converts formulas between storage syntax and the display
// syntax shown to people editing a model.
//
// Storage syntax refers to variables by id: "$1*(1+#2)". Display syntax uses
// names with an explicit lag in brackets: "Customers[1]*(1+Customer Growth[0])".
// Internal references display under the name of the variable that owns the
// formula.
//
// Display syntax is whitespace-insensitive outside of names. A name is any run
// of characters up to the next operator or bracket; surrounding spaces are
// trimmed and inner spaces kept. Names must not start with a digit, since a
// leading digit cannot be told apart from a number.
package readable
