// Package kpath implements kinded paths, which locate a value inside a
// document and encode the kind of each container in their syntax.
//
//   - "a.b" selects field b of field a of an object
//   - "a[0]" selects element 0 of the array in field a
//   - "'key with space'.x" quotes fields which are not identifiers
//   - "" is the root
package kpath
