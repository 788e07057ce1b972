// Package yamlmodel provides a config.Loader for model documents exported as
// YAML or JSON. The document layout and keys follow the storage format of
// the hosted application, so exports can be evaluated without conversion:
//
//	meta:
//	  name: Acme
//	  starting_month: "2023-01"
//	  starting_balance: 10000
//	sheets:
//	  - meta: {name: revenue}
//	    assumptions:
//	      - {_id: "1", name: Price, var_type: value, value: "10"}
//	    sections:
//	      - name: Product A
//	        rows:
//	          - _id: "2"
//	            name: Units
//	            var_type: formula
//	            time_series: true
//	            first_value_diff: true
//	            value_1: "100"
//	            value: "$1+10"
//	        end_row: {_id: "3", name: Revenue, time_series: true, value: "#2*#1"}
//	payroll:
//	  payroll_values: [{date: "2023-01", value: "1000"}]
//	  employees: []
//
// Sheets are matched by meta.name ("revenue" or "cost"); unnamed sheets are
// taken by position, revenue first.
package yamlmodel
