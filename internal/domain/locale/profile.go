package locale

import (
	"errors"
	"fmt"
)

// Profile describes one supported regional configuration: where the
// machine most likely is, which language its user reads, and which IANA
// timezone applies. AppleTag is the language tag Apple firmware stores in
// its "previous language" EFI variable; it is empty for rows that no
// Apple firmware ever reports.
type Profile struct {
	// Country is the ISO 3166-1 alpha-2 country code.
	Country string `yaml:"country"`
	// Language is the ISO 639-1 language code.
	Language string `yaml:"language"`
	// Timezone is the IANA timezone name.
	Timezone string `yaml:"timezone"`
	// AppleTag is the Apple firmware language tag, empty when unmapped.
	AppleTag string `yaml:"apple_tag,omitempty"`
}

// Table is an ordered set of locale profiles. The row order is
// significant: regional USB keyboards embed a variant number in their
// product string, and that number is an index into this table.
type Table struct {
	// profiles holds the rows in SKU order.
	profiles []Profile
	// byTag maps non-empty Apple firmware tags to row indices.
	byTag map[string]int
}

var (
	// errEmptyTable is returned when a table is built without rows.
	errEmptyTable = errors.New("profile table is empty")
	// errDuplicateTag is returned when two rows share an Apple tag.
	errDuplicateTag = errors.New("duplicate Apple firmware tag")
	// ErrIndexOutOfRange is returned by ByIndex for indices outside the table.
	ErrIndexOutOfRange = errors.New("profile index out of range")
)

// NewTable builds a table from the provided rows and indexes the Apple
// firmware tags. Duplicate non-empty tags are rejected: a tag that maps
// to two different profiles cannot be resolved deterministically.
func NewTable(profiles []Profile) (*Table, error) {
	if len(profiles) == 0 {
		return nil, errEmptyTable
	}

	byTag := make(map[string]int, len(profiles))

	for i, p := range profiles {
		if p.AppleTag == "" {
			continue
		}

		if prev, ok := byTag[p.AppleTag]; ok {
			return nil, fmt.Errorf("%w: %q in rows %d and %d", errDuplicateTag, p.AppleTag, prev, i)
		}

		byTag[p.AppleTag] = i
	}

	return &Table{
		profiles: profiles,
		byTag:    byTag,
	}, nil
}

// Len returns the number of rows in the table.
func (t *Table) Len() int {
	return len(t.profiles)
}

// ByIndex returns the profile at the given keyboard-variant index.
func (t *Table) ByIndex(i int) (Profile, error) {
	if i < 0 || i >= len(t.profiles) {
		return Profile{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(t.profiles))
	}

	return t.profiles[i], nil
}

// ByAppleTag returns the profile matching an Apple firmware language tag.
// An empty tag never matches, even though some rows carry no tag.
func (t *Table) ByAppleTag(tag string) (Profile, bool) {
	if tag == "" {
		return Profile{}, false
	}

	i, ok := t.byTag[tag]
	if !ok {
		return Profile{}, false
	}

	return t.profiles[i], true
}

// Profiles returns a copy of the table rows.
func (t *Table) Profiles() []Profile {
	cloned := make([]Profile, len(t.profiles))
	copy(cloned, t.profiles)

	return cloned
}
