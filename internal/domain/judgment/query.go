package judgment

import (
	"fmt"
	"net/url"
	"strconv"
)

// Endpoint paths relative to the API base URL.
const (
	SearchPath       = "/search/judgments"
	judgmentPathBase = "/judgments/"
)

// Remote query keys.
const (
	ParamJudgeName        = "judgeName"
	ParamCaseNumber       = "caseNumber"
	ParamCourtType        = "courtType"
	ParamJudgmentDateFrom = "judgmentDateFrom"
	ParamJudgmentDateTo   = "judgmentDateTo"
	ParamSortingField     = "sortingField"
	ParamSortingDirection = "sortingDirection"
	ParamPageNumber       = "pageNumber"
	ParamPageSize         = "pageSize"
)

// QueryParam is one outgoing key/value pair.
type QueryParam struct {
	Key   string
	Value string
}

// SearchQuery describes a judgments search. Absent fields are not sent.
//
// Dates are YYYY-MM-DD strings; like sort direction and page size they are
// forwarded as given.
type SearchQuery struct {
	JudgeName        Optional[string]
	CaseNumber       Optional[string]
	CourtType        Optional[CourtType]
	JudgmentDateFrom Optional[string]
	JudgmentDateTo   Optional[string]
	SortField        Optional[SortField]
	SortDirection    Optional[SortDirection]
	PageNumber       Optional[int]
	PageSize         Optional[int]
}

// NewSearchQuery returns a query with the sorting and paging defaults set and
// every filter absent.
func NewSearchQuery() SearchQuery {
	return SearchQuery{
		SortField:     Some(DefaultSortField),
		SortDirection: Some(DefaultSortDirection),
		PageNumber:    Some(DefaultPageNumber),
		PageSize:      Some(DefaultPageSize),
	}
}

// Params maps the query to the outgoing parameter list in a fixed order,
// dropping every absent field.
func (q SearchQuery) Params() []QueryParam {
	params := make([]QueryParam, 0, 9)
	params = appendString(params, ParamJudgeName, q.JudgeName)
	params = appendString(params, ParamCaseNumber, q.CaseNumber)
	params = appendString(params, ParamCourtType, q.CourtType)
	params = appendString(params, ParamJudgmentDateFrom, q.JudgmentDateFrom)
	params = appendString(params, ParamJudgmentDateTo, q.JudgmentDateTo)
	params = appendString(params, ParamSortingField, q.SortField)
	params = appendString(params, ParamSortingDirection, q.SortDirection)
	params = appendInt(params, ParamPageNumber, q.PageNumber)
	params = appendInt(params, ParamPageSize, q.PageSize)
	return params
}

func appendString[S ~string](params []QueryParam, key string, opt Optional[S]) []QueryParam {
	if v, ok := opt.Get(); ok {
		return append(params, QueryParam{Key: key, Value: string(v)})
	}
	return params
}

func appendInt(params []QueryParam, key string, opt Optional[int]) []QueryParam {
	if v, ok := opt.Get(); ok {
		return append(params, QueryParam{Key: key, Value: strconv.Itoa(v)})
	}
	return params
}

// JudgmentPath returns the single-judgment endpoint path for id.
func JudgmentPath[ID ~int | ~int64 | ~string](id ID) string {
	return judgmentPathBase + url.PathEscape(fmt.Sprint(id))
}
