// Package urls holds the project URLs shown in help text and page footers,
// so they can be changed in one place before a release.
//
//	import "github.com/muurk/tipsplit/internal/urls"
//
//	fmt.Printf("Report issues at %s\n", urls.Issues)
package urls
