// Package columns splits lines of text into cells.
//
// # Overview
//
// Four strategies decide what a column is:
//
//   - [FixedWidth]: columns of a given number of characters, from a width
//     spec such as "5,1,1,10" or "*:1,5,6"
//   - [Quoted]: separator-delimited fields where single or double quoted
//     strings may contain the separator
//   - [Pattern]: every match of a regular expression is a column
//   - [Separator]: columns are the text between matches of a regular
//     expression
//
// [NewParser] picks one from [Options] in that order of precedence and
// optionally strips leading whitespace from each line before splitting.
//
// # Width Specs
//
// A width spec is a comma-separated list. A bare number appends a column of
// that width and becomes the default width. "c:w" sets the width of column
// c (zero based) and "*:w" sets the default for columns without an
// explicit width. Whatever remains of the line after the listed columns is
// one final column.
//
//	5,1,1,10     widths 5, 1, 1, 10, then the rest
//	*:1,5,6      default 1; then 5 and 6 (default becomes 6)
//	5:1,7:1,8    columns 0-4 and 6 use the default, 5 and 7 are 1 wide
//
// # Output Separator
//
// [OutputSeparator] chooses the string used to join cells on output: the
// input separator itself when it is empty or a single character, and a tab
// otherwise (a multi-character separator is usually a regular expression).
package columns
