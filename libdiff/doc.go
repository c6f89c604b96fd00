// Package libdiff compares IR nodes.
//
// # Usage
//
//	// Structural changes, one per differing path
//	for _, c := range libdiff.Diff(oldNode, newNode) {
//	    fmt.Println(c)
//	}
//
//	// Unified style line diff of the indented renderings
//	fmt.Print(libdiff.Text(oldNode, newNode))
//
// # Related Packages
//
//   - github.com/metarhia/jstp-go/ir - IR representation
//   - github.com/metarhia/jstp-go/patch - JSON and merge patches
package libdiff
