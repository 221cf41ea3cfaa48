// Package lines implements the line oriented reading layer shared by the
// section readers of a crane drawing.
//
// A Source wraps an io.Reader and hands out one line at a time. It can be
// consumed with Next or inspected with Peek, so a reader can stop in front
// of a line it doesn't own and leave it for the next reader on the same
// Source.
//
// A Parser classifies a single line: Skip it, or Stop with either an item
// or an error. Next drives a Parser over consumed lines and reports every
// failure; NextIfOk drives it over peeked lines and simply stops, without
// consuming, at the first line the Parser rejects.
package lines
