package query

import (
	"testing"
	"time"

	"github.com/credstack/credstack/internal/models"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02 15:04", value, time.UTC)
	if err != nil {
		t.Fatalf("parse time %q: %v", value, err)
	}
	return parsed
}

func fixtureRecords(t *testing.T) []models.CredentialRecord {
	t.Helper()
	return []models.CredentialRecord{
		{ID: "id-1", Username: "boldfox12", GroupName: "Work", Remark: "vpn login", CreatedAt: day(t, "2026-08-27 09:00")},
		{ID: "id-2", Username: "calmowl7", GroupName: "Personal", Remark: "forum", CreatedAt: day(t, "2026-08-28 10:30")},
		{ID: "id-3", Username: "swiftwolf3", GroupName: "", Remark: "", CreatedAt: day(t, "2026-08-28 11:45")},
		{ID: "id-4", Username: "wisehawk9", GroupName: "Work", Remark: "jira, staging", CreatedAt: day(t, "2026-08-29 08:15")},
	}
}

func ids(records []models.CredentialRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func sameIDs(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterByGroup(t *testing.T) {
	e := NewEngine(time.UTC)
	got := e.Filter(fixtureRecords(t), Params{Group: "Work"})
	if !sameIDs(ids(got), "id-1", "id-4") {
		t.Fatalf("expected only Work records, got %v", ids(got))
	}
}

func TestFilterBySearchCaseInsensitive(t *testing.T) {
	e := NewEngine(time.UTC)
	records := fixtureRecords(t)

	if got := e.Filter(records, Params{Search: "VPN"}); !sameIDs(ids(got), "id-1") {
		t.Fatalf("expected remark match, got %v", ids(got))
	}
	if got := e.Filter(records, Params{Search: "CALMOWL"}); !sameIDs(ids(got), "id-2") {
		t.Fatalf("expected username match, got %v", ids(got))
	}
	if got := e.Filter(records, Params{Search: "id-3"}); !sameIDs(ids(got), "id-3") {
		t.Fatalf("expected identifier match, got %v", ids(got))
	}
	if got := e.Filter(records, Params{Search: "personal"}); !sameIDs(ids(got), "id-2") {
		t.Fatalf("expected group match, got %v", ids(got))
	}
	if got := e.Filter(records, Params{Search: ""}); len(got) != len(records) {
		t.Fatalf("empty term should match everything, got %d records", len(got))
	}
}

func TestFilterByDateRange(t *testing.T) {
	e := NewEngine(time.UTC)
	records := fixtureRecords(t)

	got := e.Filter(records, Params{DateStart: "2026-08-28", DateEnd: "2026-08-28"})
	if !sameIDs(ids(got), "id-2", "id-3") {
		t.Fatalf("expected records created on the 28th, got %v", ids(got))
	}

	got = e.Filter(records, Params{DateStart: "2026-08-28"})
	if !sameIDs(ids(got), "id-2", "id-3", "id-4") {
		t.Fatalf("open upper bound: got %v", ids(got))
	}

	got = e.Filter(records, Params{DateEnd: "2026-08-27"})
	if !sameIDs(ids(got), "id-1") {
		t.Fatalf("open lower bound: got %v", ids(got))
	}
}

func TestFilterDayBoundaryUsesEngineZone(t *testing.T) {
	// 2026-08-28 23:30 UTC is already 2026-08-29 in a UTC+2 zone
	zone := time.FixedZone("UTC+2", 2*60*60)
	e := NewEngine(zone)
	records := []models.CredentialRecord{
		{ID: "late", CreatedAt: time.Date(2026, 8, 28, 23, 30, 0, 0, time.UTC)},
	}

	if got := e.Filter(records, Params{DateStart: "2026-08-29", DateEnd: "2026-08-29"}); len(got) != 1 {
		t.Fatalf("expected record to fall on the 29th in UTC+2")
	}
	if got := e.Filter(records, Params{DateStart: "2026-08-28", DateEnd: "2026-08-28"}); len(got) != 0 {
		t.Fatalf("expected record to be excluded from the 28th in UTC+2")
	}
}

func TestFilterPredicatesAreANDed(t *testing.T) {
	e := NewEngine(time.UTC)
	got := e.Filter(fixtureRecords(t), Params{Search: "o", Group: "Work", DateStart: "2026-08-29"})
	if !sameIDs(ids(got), "id-4") {
		t.Fatalf("expected only id-4 to satisfy all predicates, got %v", ids(got))
	}
}

func TestSortByUsernameReversal(t *testing.T) {
	e := NewEngine(time.UTC)

	asc := e.Apply(fixtureRecords(t), Params{SortKey: SortUsername, SortDir: SortAsc})
	desc := e.Apply(fixtureRecords(t), Params{SortKey: SortUsername, SortDir: SortDesc})

	if !sameIDs(ids(asc), "id-1", "id-2", "id-3", "id-4") {
		t.Fatalf("ascending order wrong: %v", ids(asc))
	}
	for i := range asc {
		if asc[i].ID != desc[len(desc)-1-i].ID {
			t.Fatalf("descending is not the exact reverse: %v vs %v", ids(asc), ids(desc))
		}
	}
}

func TestSortStabilityOnTies(t *testing.T) {
	e := NewEngine(time.UTC)
	records := []models.CredentialRecord{
		{ID: "a", GroupName: "Same", CreatedAt: day(t, "2026-08-27 09:00")},
		{ID: "b", GroupName: "Same", CreatedAt: day(t, "2026-08-28 09:00")},
		{ID: "c", GroupName: "Same", CreatedAt: day(t, "2026-08-26 09:00")},
	}

	e.Sort(records, SortGroup, SortAsc)
	if !sameIDs(ids(records), "a", "b", "c") {
		t.Fatalf("equal keys must keep original order, got %v", ids(records))
	}
}

func TestSortByCreatedInstant(t *testing.T) {
	e := NewEngine(time.UTC)
	records := fixtureRecords(t)

	e.Sort(records, SortCreated, SortDesc)
	if !sameIDs(ids(records), "id-4", "id-3", "id-2", "id-1") {
		t.Fatalf("expected newest first, got %v", ids(records))
	}
}

func TestSortMissingStringsAsEmpty(t *testing.T) {
	e := NewEngine(time.UTC)
	records := fixtureRecords(t)

	e.Sort(records, SortRemark, SortAsc)
	if records[0].ID != "id-3" {
		t.Fatalf("record with empty remark should sort first ascending, got %v", ids(records))
	}
}

func TestGroupViewOrderAndUncategorized(t *testing.T) {
	e := NewEngine(time.UTC)
	sorted := e.Apply(fixtureRecords(t), Params{SortKey: SortCreated, SortDir: SortAsc})

	groups := e.GroupView(sorted)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	// first-occurrence order within the sorted sequence
	if groups[0].Name != "Work" || groups[1].Name != "Personal" || groups[2].Name != UncategorizedLabel {
		t.Fatalf("unexpected group order: %s, %s, %s", groups[0].Name, groups[1].Name, groups[2].Name)
	}
	if !sameIDs(ids(groups[2].Records), "id-3") {
		t.Fatalf("expected ungrouped record under %q, got %v", UncategorizedLabel, ids(groups[2].Records))
	}
	if !sameIDs(ids(groups[0].Records), "id-1", "id-4") {
		t.Fatalf("unexpected Work partition: %v", ids(groups[0].Records))
	}
}
