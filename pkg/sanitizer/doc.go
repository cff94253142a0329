// Package sanitizer strips markup from untrusted request values.
//
// It backs the text accessor of the parameter bag:
//
//	name := bag.GetText("name", "")
//
// [StripTags] uses bluemonday's strict policy, so the output never contains
// tags or event handlers.
package sanitizer
