// Package query builds MongoDB query specifications from raw request
// parameters: comparison filters, keyword search, field projection,
// sorting and pagination.
package query

import (
	"net/url"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// ResultsPerPage is the fixed page size for paginated listings.
const ResultsPerPage = 10

// reservedParams are control keys that never become equality filters.
var reservedParams = map[string]bool{
	"keyword": true,
	"limit":   true,
	"page":    true,
	"sort":    true,
	"fields":  true,
}

// comparisonOps maps an operator suffix like salary[gte] to its
// MongoDB operator. Unknown suffixes are ignored.
var comparisonOps = map[string]string{
	"gt":  "$gt",
	"gte": "$gte",
	"lt":  "$lt",
	"lte": "$lte",
	"in":  "$in",
}

// Spec is a compiled query specification ready to run against a
// collection.
type Spec struct {
	Filter     bson.M
	Projection bson.D
	Sort       bson.D
	Skip       int64
	Limit      int64
}

// Builder assembles a Spec from raw request parameters. Builders are
// immutable values: every stage returns a new Builder, so a partially
// built query can be reused without hidden shared state.
type Builder struct {
	params url.Values
	spec   Spec
}

// New creates a Builder over the raw request parameters.
func New(params url.Values) Builder {
	return Builder{
		params: params,
		spec: Spec{
			Filter: bson.M{},
			Limit:  ResultsPerPage,
		},
	}
}

// Filter turns the remaining (non-reserved) parameters into equality
// and comparison constraints. A parameter key of the form field[op]
// becomes {field: {$op: value}}.
func (b Builder) Filter() Builder {
	filter := cloneFilter(b.spec.Filter)

	for key, values := range b.params {
		if len(values) == 0 || values[0] == "" {
			continue
		}
		value := values[0]

		field, op, ok := splitOperator(key)
		if reservedParams[field] {
			continue
		}

		if !ok {
			filter[field] = coerceValue(value)
			continue
		}

		mongoOp, known := comparisonOps[op]
		if !known {
			// Invalid operator suffix, treat the parameter as absent.
			continue
		}

		constraint, exists := filter[field].(bson.M)
		if !exists {
			constraint = bson.M{}
		}
		if mongoOp == "$in" {
			constraint[mongoOp] = coerceList(value)
		} else {
			constraint[mongoOp] = coerceValue(value)
		}
		filter[field] = constraint
	}

	b.spec.Filter = filter
	return b
}

// Search adds a case-insensitive substring constraint on the job title
// when a keyword parameter is present.
func (b Builder) Search() Builder {
	keyword := b.params.Get("keyword")
	if keyword == "" {
		return b
	}

	filter := cloneFilter(b.spec.Filter)
	filter["title"] = bson.M{"$regex": keyword, "$options": "i"}
	b.spec.Filter = filter
	return b
}

// LimitFields projects the result set to the comma-separated fields
// parameter when present.
func (b Builder) LimitFields() Builder {
	fields := b.params.Get("fields")
	if fields == "" {
		return b
	}

	projection := bson.D{}
	for _, field := range strings.Split(fields, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		projection = append(projection, bson.E{Key: field, Value: 1})
	}
	b.spec.Projection = projection
	return b
}

// Sort orders results by the comma-separated sort parameter; a leading
// "-" means descending. Without a sort parameter results come back
// newest first.
func (b Builder) Sort() Builder {
	sortParam := b.params.Get("sort")
	if sortParam == "" {
		b.spec.Sort = bson.D{{Key: "postingDate", Value: -1}}
		return b
	}

	sort := bson.D{}
	for _, field := range strings.Split(sortParam, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		order := 1
		if strings.HasPrefix(field, "-") {
			order = -1
			field = field[1:]
		}
		sort = append(sort, bson.E{Key: field, Value: order})
	}
	b.spec.Sort = sort
	return b
}

// Paginate computes skip and limit from the page parameter. Page
// defaults to 1; a non-numeric or non-positive page falls back to the
// default rather than failing.
func (b Builder) Paginate() Builder {
	page := 1
	if raw := b.params.Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			page = parsed
		}
	}

	b.spec.Skip = int64(page-1) * ResultsPerPage
	b.spec.Limit = ResultsPerPage
	return b
}

// Build returns the compiled specification.
func (b Builder) Build() Spec {
	return b.spec
}

// splitOperator parses keys of the form field[op]. Returns ok=false
// for plain keys.
func splitOperator(key string) (field, op string, ok bool) {
	open := strings.Index(key, "[")
	if open <= 0 || !strings.HasSuffix(key, "]") {
		return key, "", false
	}
	return key[:open], key[open+1 : len(key)-1], true
}

// coerceValue converts numeric-looking parameter values so comparison
// operators work on stored numbers.
func coerceValue(value string) interface{} {
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	return value
}

// coerceList splits a comma-separated value for $in constraints.
func coerceList(value string) []interface{} {
	parts := strings.Split(value, ",")
	list := make([]interface{}, 0, len(parts))
	for _, part := range parts {
		list = append(list, coerceValue(strings.TrimSpace(part)))
	}
	return list
}

func cloneFilter(filter bson.M) bson.M {
	clone := make(bson.M, len(filter))
	for k, v := range filter {
		clone[k] = v
	}
	return clone
}
