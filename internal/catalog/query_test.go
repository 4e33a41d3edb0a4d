package catalog

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestParsePageDefaults(t *testing.T) {
	p := Params{Page: 1, Limit: 12}
	p.ParsePage("", "")
	if p.Page != 1 || p.Limit != 12 {
		t.Errorf("defaults lost: %+v", p)
	}

	p.ParsePage("abc", "-5")
	if p.Page != 1 || p.Limit != 12 {
		t.Errorf("malformed values should keep defaults: %+v", p)
	}

	p.ParsePage("3", "20")
	if p.Page != 3 || p.Limit != 20 {
		t.Errorf("got %+v", p)
	}
}

func TestSkip(t *testing.T) {
	p := Params{Page: 3, Limit: 12}
	if got := p.Skip(); got != 24 {
		t.Errorf("Skip() = %d, want 24", got)
	}
	p = Params{Page: 1, Limit: 12}
	if got := p.Skip(); got != 0 {
		t.Errorf("Skip() = %d, want 0", got)
	}
}

func TestNewPageInfo(t *testing.T) {
	tests := []struct {
		total      int64
		page       int
		limit      int
		wantPages  int
		wantNext   bool
		wantPrev   bool
	}{
		{total: 25, page: 1, limit: 12, wantPages: 3, wantNext: true, wantPrev: false},
		{total: 25, page: 3, limit: 12, wantPages: 3, wantNext: false, wantPrev: true},
		{total: 24, page: 2, limit: 12, wantPages: 2, wantNext: false, wantPrev: true},
		{total: 0, page: 1, limit: 12, wantPages: 0, wantNext: false, wantPrev: false},
		{total: 1, page: 1, limit: 12, wantPages: 1, wantNext: false, wantPrev: false},
	}
	for _, tt := range tests {
		info := NewPageInfo(Params{Page: tt.page, Limit: tt.limit}, tt.total)
		if info.TotalPages != tt.wantPages {
			t.Errorf("total=%d limit=%d: TotalPages = %d, want %d", tt.total, tt.limit, info.TotalPages, tt.wantPages)
		}
		if info.HasNextPage != tt.wantNext {
			t.Errorf("total=%d page=%d: HasNextPage = %v, want %v", tt.total, tt.page, info.HasNextPage, tt.wantNext)
		}
		if info.HasPrevPage != tt.wantPrev {
			t.Errorf("total=%d page=%d: HasPrevPage = %v, want %v", tt.total, tt.page, info.HasPrevPage, tt.wantPrev)
		}
	}
}

func TestQueryEmptyParams(t *testing.T) {
	q := Params{}.Query([]string{"name"})
	if len(q) != 0 {
		t.Errorf("expected empty query, got %v", q)
	}
}

func TestQueryShortcutFilters(t *testing.T) {
	q := Params{Filter: "new"}.Query(nil)
	if q["isNew"] != true {
		t.Errorf("got %v", q)
	}
	q = Params{Filter: "sale"}.Query(nil)
	if q["isOnSale"] != true {
		t.Errorf("got %v", q)
	}
	q = Params{Filter: "unknown"}.Query(nil)
	if len(q) != 0 {
		t.Errorf("unknown filter should be ignored, got %v", q)
	}
}

func TestQuerySearchCoversAllFields(t *testing.T) {
	q := Params{Search: "арабіка"}.Query([]string{"name.uk", "name.en", "name"})
	or, ok := q["$or"].([]bson.M)
	if !ok || len(or) != 3 {
		t.Fatalf("expected 3-way $or, got %v", q)
	}
	for _, clause := range or {
		if len(clause) != 1 {
			t.Errorf("clause should match one field: %v", clause)
		}
	}
}

func TestQueryCategoryMatchesBothShapes(t *testing.T) {
	q := Params{Category: "Арабіка"}.Query(nil)
	and, ok := q["$and"].([]bson.M)
	if !ok || len(and) != 1 {
		t.Fatalf("expected $and wrapper, got %v", q)
	}
	or, ok := and[0]["$or"].([]bson.M)
	if !ok {
		t.Fatalf("expected $or inside, got %v", and[0])
	}
	want := []bson.M{
		{"category": "Арабіка"},
		{"category.uk": "Арабіка"},
		{"category.en": "Арабіка"},
	}
	if !reflect.DeepEqual(or, want) {
		t.Errorf("got %v, want %v", or, want)
	}
}

func TestQueryCategoryAndSearchCombine(t *testing.T) {
	q := Params{Category: "Арабіка", Search: "кава", Filter: "sale"}.Query([]string{"name"})
	and, ok := q["$and"].([]bson.M)
	if !ok || len(and) != 2 {
		t.Fatalf("category and search should both land under $and, got %v", q)
	}
	if q["isOnSale"] != true {
		t.Errorf("shortcut filter missing: %v", q)
	}
}
