// Package catalog builds the filter, sort and pagination pieces shared by the
// product, news and admin-log listings.
package catalog

import (
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Params describes one listing request. Defaults differ per endpoint, so the
// caller fills SortBy, SortOrder and Limit before parsing query values.
type Params struct {
	Page      int
	Limit     int
	Category  string
	Search    string
	Filter    string // "new" or "sale" shortcut filters
	SortBy    string
	SortOrder int // 1 ascending, -1 descending
}

// ParsePage reads 1-indexed page and limit query values, keeping the defaults
// already present on p when a value is missing or malformed.
func (p *Params) ParsePage(pageStr, limitStr string) {
	if n, err := strconv.Atoi(pageStr); err == nil && n > 0 {
		p.Page = n
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if n, err := strconv.Atoi(limitStr); err == nil && n > 0 {
		p.Limit = n
	}
}

// Skip is the number of documents before the requested page.
func (p Params) Skip() int64 {
	return int64(p.Page-1) * int64(p.Limit)
}

// FindOptions translates sort and pagination into driver options.
func (p Params) FindOptions() *options.FindOptions {
	order := p.SortOrder
	if order != 1 {
		order = -1
	}
	return options.Find().
		SetSort(bson.D{{Key: p.SortBy, Value: order}}).
		SetSkip(p.Skip()).
		SetLimit(int64(p.Limit))
}

// regexFor builds a case-insensitive substring match.
func regexFor(search string) primitive.Regex {
	return primitive.Regex{Pattern: search, Options: "i"}
}

// Query assembles the Mongo filter. searchFields are the text fields the
// OR-combined substring search covers; bilingual fields must be listed with
// their .uk/.en subpaths plus the bare path so legacy string documents still
// match. The category filter likewise matches both stored shapes.
func (p Params) Query(searchFields []string) bson.M {
	query := bson.M{}

	if p.Category != "" {
		query["$and"] = []bson.M{{"$or": []bson.M{
			{"category": p.Category},
			{"category.uk": p.Category},
			{"category.en": p.Category},
		}}}
	}

	if p.Search != "" {
		re := regexFor(p.Search)
		or := make([]bson.M, 0, len(searchFields))
		for _, f := range searchFields {
			or = append(or, bson.M{f: re})
		}
		if and, ok := query["$and"].([]bson.M); ok {
			query["$and"] = append(and, bson.M{"$or": or})
		} else {
			query["$or"] = or
		}
	}

	switch p.Filter {
	case "new":
		query["isNew"] = true
	case "sale":
		query["isOnSale"] = true
	}

	return query
}

// PageInfo is the pagination envelope every listing returns.
type PageInfo struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	TotalCount  int64 `json:"totalCount"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// NewPageInfo derives the envelope from a total count.
func NewPageInfo(p Params, totalCount int64) PageInfo {
	totalPages := int((totalCount + int64(p.Limit) - 1) / int64(p.Limit))
	return PageInfo{
		Page:        p.Page,
		Limit:       p.Limit,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		HasNextPage: p.Page < totalPages,
		HasPrevPage: p.Page > 1,
	}
}
