package apiclient

import (
	"net/url"
	"strconv"
	"strings"
)

// queryBuilder 只收集已定义且非空的过滤字段
type queryBuilder struct {
	v url.Values
}

func newQuery() *queryBuilder { return &queryBuilder{v: url.Values{}} }

func (q *queryBuilder) str(key, val string) *queryBuilder {
	if s := strings.TrimSpace(val); s != "" {
		q.v.Set(key, s)
	}
	return q
}

func (q *queryBuilder) intPtr(key string, val *int) *queryBuilder {
	if val != nil {
		q.v.Set(key, strconv.Itoa(*val))
	}
	return q
}

func (q *queryBuilder) positive(key string, val int) *queryBuilder {
	if val > 0 {
		q.v.Set(key, strconv.Itoa(val))
	}
	return q
}

func (q *queryBuilder) boolPtr(key string, val *bool) *queryBuilder {
	if val != nil {
		q.v.Set(key, strconv.FormatBool(*val))
	}
	return q
}

func (q *queryBuilder) values() url.Values { return q.v }
