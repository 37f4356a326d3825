package rangeop

// SortOrder represents the ordering of keys in a range response.
// The zero value leaves the store's default lexicographic order.
type SortOrder int

const (
	// SortNone leaves results in the store's default order.
	SortNone SortOrder = iota
	// SortAscend orders results low to high by the sort target.
	SortAscend
	// SortDescend orders results high to low by the sort target.
	SortDescend
)

func (o SortOrder) String() string {
	switch o {
	case SortNone:
		return "None"
	case SortAscend:
		return "Ascend"
	case SortDescend:
		return "Descend"
	default:
		return "Unknown"
	}
}

// SortTarget represents the key-value field a sorted range orders by.
type SortTarget int

const (
	// SortByKey orders by the key bytes.
	SortByKey SortTarget = iota
	// SortByVersion orders by per-key version.
	SortByVersion
	// SortByCreateRevision orders by creation revision.
	SortByCreateRevision
	// SortByModRevision orders by last-modification revision.
	SortByModRevision
	// SortByValue orders by the value bytes.
	SortByValue
)

func (t SortTarget) String() string {
	switch t {
	case SortByKey:
		return "Key"
	case SortByVersion:
		return "Version"
	case SortByCreateRevision:
		return "CreateRevision"
	case SortByModRevision:
		return "ModRevision"
	case SortByValue:
		return "Value"
	default:
		return "Unknown"
	}
}
