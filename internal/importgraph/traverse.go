package importgraph

import (
	"context"
	"fmt"

	"github.com/huescan-dev/huescan/internal/workspace"
)

// DefaultMaxFiles caps the number of files collected in one pass when
// no explicit cap is configured.
const DefaultMaxFiles = 50

// Closure is the result of one graph walk: visited files in BFS order,
// root first, with no duplicates.
type Closure struct {
	Files []*workspace.File

	// Truncated is set when the file cap stopped the walk before the
	// queue drained. Graceful, not an error.
	Truncated bool

	// Skipped lists paths that were resolved but unreadable at
	// traversal time. They are visited (never retried) and contribute
	// nothing.
	Skipped []string
}

// Options bounds a graph walk.
type Options struct {
	// MaxFiles caps the total number of collected files, root included.
	// Zero or negative means DefaultMaxFiles.
	MaxFiles int

	// Extensions overrides the candidate extension order.
	Extensions []string
}

// Walk traverses the explicit import graph breadth-first from rootFile.
// Cycles terminate via the visited set; unreadable files are recorded
// and skipped. Only an unreadable root is an error: without it there is
// nothing to scan.
func Walk(ctx context.Context, host workspace.Host, rootFile, workspaceRoot string, opts Options) (*Closure, error) {
	maxFiles := opts.MaxFiles
	if maxFiles <= 0 {
		maxFiles = DefaultMaxFiles
	}

	resolver := NewResolver(host, workspaceRoot, opts.Extensions)

	rootPath := canonical(rootFile)

	rootText, err := host.ReadText(rootFile)
	if err != nil {
		return nil, fmt.Errorf("read root file: %w", err)
	}

	closure := &Closure{
		Files: []*workspace.File{workspace.NewFile(rootPath, rootText)},
	}

	visited := map[string]bool{rootPath: true}
	queue := []*workspace.File{closure.Files[0]}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("traversal canceled: %w", err)
		}

		current := queue[0]
		queue = queue[1:]

		for _, edge := range Extract(current.Text) {
			if !Followable(edge) {
				continue
			}

			target, ok := resolver.Resolve(current.Path, edge)
			if !ok || visited[target] {
				continue
			}

			if len(closure.Files) >= maxFiles {
				closure.Truncated = true

				return closure, nil
			}

			visited[target] = true

			text, readErr := host.ReadText(target)
			if readErr != nil {
				closure.Skipped = append(closure.Skipped, target)

				continue
			}

			file := workspace.NewFile(target, text)
			closure.Files = append(closure.Files, file)
			queue = append(queue, file)
		}
	}

	return closure, nil
}
