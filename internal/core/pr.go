package core

// FileStatus is the change status the hosting API reports for a file.
type FileStatus string

const (
	FileAdded    FileStatus = "added"
	FileModified FileStatus = "modified"
	FileRemoved  FileStatus = "removed"
	FileRenamed  FileStatus = "renamed"
)

// PRFile describes one file touched by a pull request. Patch and Contents are
// empty when the hosting API did not provide them.
type PRFile struct {
	Filename  string
	Status    FileStatus
	Additions int
	Deletions int
	Changes   int
	Patch     string
	Contents  string
}

// PRContext is everything a provider needs to review a single pull request.
// It is built once per review and treated as read-only afterwards; Files keeps
// the hosting API's order.
type PRContext struct {
	Owner       string
	Repo        string
	PullNumber  int
	Title       string
	Description string
	Files       []PRFile
}

// TotalAdditions sums the additions over all files.
func (c *PRContext) TotalAdditions() int {
	total := 0
	for _, f := range c.Files {
		total += f.Additions
	}
	return total
}

// TotalDeletions sums the deletions over all files.
func (c *PRContext) TotalDeletions() int {
	total := 0
	for _, f := range c.Files {
		total += f.Deletions
	}
	return total
}
