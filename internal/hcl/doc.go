// Package hcl provides the HCL implementation of config.Loader. It parses
// model files written in HCL native syntax and translates their blocks into
// the format-agnostic *model.Model.
//
// A model is described by one `model` block, up to two `sheet` blocks
// labelled "revenue" and "cost", and an optional `payroll` block:
//
//	model "Acme" {
//	  starting_month   = "2023-01"
//	  starting_balance = 10000
//	}
//
//	sheet "revenue" {
//	  assumption "1" {
//	    name  = "Price"
//	    value = "10"
//	  }
//
//	  section "Product A" {
//	    row "2" {
//	      name             = "Units"
//	      kind             = "formula"
//	      time_series      = true
//	      first_value_diff = true
//	      value_1          = "100"
//	      value            = "$1+10"
//	    }
//	    end_row "3" {
//	      name        = "Revenue"
//	      time_series = true
//	      value       = "#2*#1"
//	    }
//	  }
//	}
//
//	payroll {
//	  employee "e1" {
//	    name           = "Ada"
//	    start_date     = "2023-01"
//	    monthly_salary = 4000
//	  }
//	}
//
// The blocks may be spread across several files when Load is given a
// directory.
package hcl
