// Package io reads and writes grids as delimited text and as JSON.
//
// # Text
//
// [ReadLines] returns the raw lines of a reader with their line endings
// removed. [ReadText] splits each line into cells with a
// [columns.Parser]. [WriteText] joins each row with a separator and ends
// every row with a newline, so an empty grid writes nothing.
//
// # JSON Format
//
// A grid is a single object with a "rows" array of string arrays. Rows may
// differ in length:
//
//	{
//	  "rows": [
//	    ["a", "b", "c"],
//	    ["d", "e"]
//	  ]
//	}
//
// Use [ReadJSON] and [WriteJSON] with any reader or writer, or
// [ImportJSON] and [ExportJSON] for files. Output is indented with two
// spaces. A JSON null cell is read as the empty string.
package io
