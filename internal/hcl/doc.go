// Package hcl provides the HCL implementation of config.Loader. It is
// responsible for parsing rule files, evaluating the coordinate expressions
// of each rule and binding the resulting cty values to Go integers.
//
// A rule file looks like this:
//
//	grid {
//	  rows    = 5
//	  columns = 5
//	}
//
//	rule "set" {
//	  from = [1, 1]
//	  to   = [2, 3]
//	}
//
//	rule "toggle" {
//	  from = [0, 0]
//	  to   = [rows - 1, columns - 1]
//	}
//
// Coordinate expressions may refer to the variables rows and columns.
package hcl
