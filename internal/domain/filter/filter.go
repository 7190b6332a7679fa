package filter

// Record is a loaded record whose string fields can be looked up by key.
// ok is false when the record does not carry the field.
type Record interface {
	Field(key string) (value string, ok bool)
}

// Condition is a single exact-match clause on a record field.
type Condition struct {
	key   string
	match string
}

// Eq creates an exact match condition on key.
func Eq(key, match string) Condition {
	return Condition{key: key, match: match}
}

// Holds reports whether r carries the field and its value equals the match.
func (c Condition) Holds(r Record) bool {
	v, ok := r.Field(c.key)
	return ok && v == c.match
}

// DistinctValues returns every value of key in records, deduplicated,
// in first-occurrence order. Records without the field are skipped.
func DistinctValues[R Record](records []R, key string) []string {
	values := make([]string, 0)
	seen := make(map[string]struct{})
	for _, r := range records {
		v, ok := r.Field(key)
		if !ok {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}

// Matching returns the records whose key field equals value, in input order.
func Matching[R Record](records []R, key, value string) []R {
	return Where(records, Eq(key, value))
}

// Where returns the records that satisfy every condition, in input order.
// With no conditions every record is returned.
func Where[R Record](records []R, conds ...Condition) []R {
	out := make([]R, 0)
	for _, r := range records {
		if holdsAll(r, conds) {
			out = append(out, r)
		}
	}
	return out
}

func holdsAll(r Record, conds []Condition) bool {
	for _, c := range conds {
		if !c.Holds(r) {
			return false
		}
	}
	return true
}
