// Package query turns a set of credential records plus query parameters into
// an ordered or grouped view. The pipeline is pure: filtering, sorting, and
// grouping never touch storage.
package query

import (
	"sort"
	"strings"
	"time"

	"github.com/credstack/credstack/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the sort field.
type SortKey string

// Sort keys.
const (
	SortCreated  SortKey = "created"
	SortUsername SortKey = "username"
	SortGroup    SortKey = "group"
	SortRemark   SortKey = "remark"
)

// SortDirection orders ascending or descending.
type SortDirection string

// Sort directions.
const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ViewMode selects flat or grouped presentation.
type ViewMode string

// View modes.
const (
	ViewFlat    ViewMode = "flat"
	ViewGrouped ViewMode = "grouped"
)

// UncategorizedLabel stands in for records with no group in grouped views.
const UncategorizedLabel = "Uncategorized"

// dayFormat renders a timestamp as a calendar day for date-range filtering.
const dayFormat = "2006-01-02"

// Params are the user-supplied query parameters. Zero values impose no
// constraint.
type Params struct {
	Search    string
	Group     string
	DateStart string // inclusive lower bound, YYYY-MM-DD
	DateEnd   string // inclusive upper bound, YYYY-MM-DD
	SortKey   SortKey
	SortDir   SortDirection
	View      ViewMode
}

// Engine evaluates queries. The location pins which calendar day a creation
// instant falls on for date-range filtering and export formatting.
type Engine struct {
	loc *time.Location
}

// NewEngine creates an engine. A nil location falls back to the system zone.
func NewEngine(loc *time.Location) *Engine {
	if loc == nil {
		loc = time.Local
	}
	return &Engine{loc: loc}
}

// Apply filters and sorts records according to the parameters. The input
// slice is not modified.
func (e *Engine) Apply(records []models.CredentialRecord, p Params) []models.CredentialRecord {
	filtered := e.Filter(records, p)
	e.Sort(filtered, p.SortKey, p.SortDir)
	return filtered
}

// Filter returns the records matching all of the search, group, and
// date-range predicates.
func (e *Engine) Filter(records []models.CredentialRecord, p Params) []models.CredentialRecord {
	term := strings.ToLower(strings.TrimSpace(p.Search))
	out := make([]models.CredentialRecord, 0, len(records))
	for _, r := range records {
		if term != "" && !matchesSearch(r, term) {
			continue
		}
		if p.Group != "" && r.GroupName != p.Group {
			continue
		}
		if p.DateStart != "" || p.DateEnd != "" {
			day := r.CreatedAt.In(e.loc).Format(dayFormat)
			if p.DateStart != "" && day < p.DateStart {
				continue
			}
			if p.DateEnd != "" && day > p.DateEnd {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

// matchesSearch reports whether any searchable field contains the lowercased
// term.
func matchesSearch(r models.CredentialRecord, term string) bool {
	return strings.Contains(strings.ToLower(r.Username), term) ||
		strings.Contains(strings.ToLower(r.ID), term) ||
		strings.Contains(strings.ToLower(r.Remark), term) ||
		strings.Contains(strings.ToLower(r.GroupName), term)
}

// Sort orders records in place. The sort is stable: records with equal keys
// keep their relative order. String fields compare with locale-aware
// collation; the creation key compares by instant.
func (e *Engine) Sort(records []models.CredentialRecord, key SortKey, dir SortDirection) {
	if key == "" {
		key = SortCreated
	}
	desc := dir == SortDesc

	// collators are not safe for concurrent use, so each sort gets its own
	col := collate.New(language.Und)

	sort.SliceStable(records, func(i, j int) bool {
		c := compareRecords(col, records[i], records[j], key)
		if desc {
			return c > 0
		}
		return c < 0
	})
}

// compareRecords returns -1, 0, or 1 for the chosen key.
func compareRecords(col *collate.Collator, a, b models.CredentialRecord, key SortKey) int {
	switch key {
	case SortUsername:
		return col.CompareString(a.Username, b.Username)
	case SortGroup:
		return col.CompareString(a.GroupName, b.GroupName)
	case SortRemark:
		return col.CompareString(a.Remark, b.Remark)
	default:
		switch {
		case a.CreatedAt.Before(b.CreatedAt):
			return -1
		case a.CreatedAt.After(b.CreatedAt):
			return 1
		default:
			return 0
		}
	}
}

// Group is one partition of a grouped view.
type Group struct {
	Name    string                    `json:"name"`
	Records []models.CredentialRecord `json:"records"`
}

// GroupView partitions an already filtered and sorted sequence by group.
// Records without a group fall under UncategorizedLabel. Groups appear in
// order of first occurrence, not alphabetically.
func (e *Engine) GroupView(records []models.CredentialRecord) []Group {
	index := make(map[string]int)
	groups := make([]Group, 0)
	for _, r := range records {
		name := r.GroupName
		if name == "" {
			name = UncategorizedLabel
		}
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, Group{Name: name})
		}
		groups[i].Records = append(groups[i].Records, r)
	}
	return groups
}
