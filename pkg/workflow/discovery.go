package workflow

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/githubnext/timeout-lint/pkg/constants"
	"github.com/githubnext/timeout-lint/pkg/fileutil"
	"github.com/githubnext/timeout-lint/pkg/logger"
)

var discoveryLog = logger.New("workflow:discovery")

// workflowGlob returns the pattern matching every workflow file below the
// workflows directory, relative to the repository root.
func workflowGlob() string {
	exts := make([]string, 0, len(constants.WorkflowExtensions))
	for _, ext := range constants.WorkflowExtensions {
		exts = append(exts, strings.TrimPrefix(ext, "."))
	}
	return constants.WorkflowsDirMarker + "**/*.{" + strings.Join(exts, ",") + "}"
}

// FindWorkflowFiles returns every .yml and .yaml file under
// <root>/.github/workflows, recursively, sorted by path.
//
// A missing workflows directory yields an empty result. Any other filesystem
// error is returned.
func FindWorkflowFiles(root string) ([]string, error) {
	workflowsDir := filepath.Join(root, constants.GetWorkflowDir())
	exists, err := fileutil.DirExists(workflowsDir)
	if err != nil {
		return nil, err
	}
	if !exists {
		discoveryLog.Printf("No workflows directory at %s", workflowsDir)
		return nil, nil
	}

	pattern := workflowGlob()
	matches, err := doublestar.Glob(os.DirFS(root), pattern,
		doublestar.WithFailOnIOErrors(),
		doublestar.WithFilesOnly(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search %s for workflow files: %w", workflowsDir, err)
	}

	paths := make([]string, 0, len(matches))
	for _, match := range matches {
		paths = append(paths, filepath.Join(root, filepath.FromSlash(match)))
	}
	slices.Sort(paths)
	paths = slices.Compact(paths)

	discoveryLog.Printf("Found %d workflow files under %s", len(paths), workflowsDir)
	return paths, nil
}

// DisplayName shortens a workflow path to start at the last
// ".github/workflows/" segment. Paths without the segment are returned
// unchanged apart from using forward slashes.
func DisplayName(path string) string {
	slashed := filepath.ToSlash(path)
	if i := strings.LastIndex(slashed, constants.WorkflowsDirMarker); i >= 0 {
		return slashed[i:]
	}
	return slashed
}
