// Package storage implements the object-storage collaborator for
// finished recipe documents: owner-scoped save/get/list/delete with a
// boolean failure contract — the store logs and reports, never raises.
package storage

// Entry describes one stored recipe in a listing.
type Entry struct {
	Filename string `json:"filename"`
	Name     string `json:"name"`
	Created  string `json:"created"`
}

// Store is the contract the pipeline caller hands documents to.
type Store interface {
	Save(filename, body, title, owner string) bool
	Get(filename, owner string) (string, bool)
	List(owner string) []Entry
	Delete(filename, owner string) bool
}
