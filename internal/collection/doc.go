// Package collection loads the official Memoix recipe collection from the
// JSON files produced by the spreadsheet converter, or YAML files with the
// same shape.
//
// The converter writes every sheet as generic recipes with extra flattened
// columns for pizzas, sandwiches and smoking. Load maps each entry to its
// typed record by course, splits those columns into lists, fills in the
// deterministic uuid the converter would have assigned when one is missing,
// and marks the result as collection provenance.
package collection
