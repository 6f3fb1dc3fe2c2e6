package model

// FilterKind is the resolved shape of a RelationFilter.
type FilterKind int

const (
	// FilterNone selects every row.
	FilterNone FilterKind = iota
	// FilterByUser selects rows whose user_id matches.
	FilterByUser
	// FilterByPost selects rows whose post_id matches.
	FilterByPost
	// FilterByUserAndPost selects rows matching both user_id and post_id.
	FilterByUserAndPost
)

func (k FilterKind) String() string {
	switch k {
	case FilterByUser:
		return "by_user"
	case FilterByPost:
		return "by_post"
	case FilterByUserAndPost:
		return "by_user_and_post"
	default:
		return "none"
	}
}

// RelationFilter holds the optional foreign-key predicates accepted by
// the comment and like list operations. A nil field means "not given".
type RelationFilter struct {
	UserID *int64
	PostID *int64
}

// Kind resolves the filter into exactly one FilterKind.
//
// Precedence: both ids, then post only, then user only, then none.
func (f RelationFilter) Kind() FilterKind {
	switch {
	case f.PostID != nil && f.UserID != nil:
		return FilterByUserAndPost
	case f.PostID != nil:
		return FilterByPost
	case f.UserID != nil:
		return FilterByUser
	default:
		return FilterNone
	}
}
