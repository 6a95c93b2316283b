package walker

// item is one pending directory on the work stack. Depth is relative to the target root,
// which has depth 0.
type item struct {
	path  string
	depth int
}

// Frontier records the direct subdirectories of one target root. Directories that are
// neither the root nor on the frontier are nested (depth >= 2), and their files are only
// eligible for trimming in recursive mode. A Frontier belongs to a single walk.
type Frontier struct {
	dirs map[string]struct{}
	root string
}

func NewFrontier(root string) *Frontier {
	return &Frontier{
		root: root,
		dirs: make(map[string]struct{}),
	}
}

// Visit records dir when it sits directly below the root.
func (frontier *Frontier) Visit(dir string, depth int) {
	if depth == 1 {
		frontier.dirs[dir] = struct{}{}
	}
}

// Contains reports whether dir is a direct subdirectory of the root.
func (frontier *Frontier) Contains(dir string) bool {
	_, ok := frontier.dirs[dir]
	return ok
}

// IsNested reports whether dir is two or more levels below the root.
func (frontier *Frontier) IsNested(dir string) bool {
	return dir != frontier.root && !frontier.Contains(dir)
}
