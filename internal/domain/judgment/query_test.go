package judgment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paramMap(params []QueryParam) map[string]string {
	out := make(map[string]string, len(params))
	for _, p := range params {
		out[p.Key] = p.Value
	}
	return out
}

func TestNewSearchQuery_Defaults(t *testing.T) {
	params := NewSearchQuery().Params()

	assert.Equal(t, []QueryParam{
		{Key: ParamSortingField, Value: "JUDGMENT_DATE"},
		{Key: ParamSortingDirection, Value: "DESC"},
		{Key: ParamPageNumber, Value: "0"},
		{Key: ParamPageSize, Value: "10"},
	}, params)
}

func TestSearchQuery_ParamsOmitsAbsentFields(t *testing.T) {
	optionalKeys := []string{
		ParamJudgeName,
		ParamCaseNumber,
		ParamCourtType,
		ParamJudgmentDateFrom,
		ParamJudgmentDateTo,
	}

	got := paramMap(NewSearchQuery().Params())
	for _, key := range optionalKeys {
		_, present := got[key]
		assert.False(t, present, "unset filter %s must not be sent", key)
	}

	empty := paramMap(SearchQuery{}.Params())
	assert.Empty(t, empty)
}

func TestSearchQuery_ParamsPassesValuesUnmodified(t *testing.T) {
	q := NewSearchQuery()
	q.JudgeName = Some("Jan Kowalski ")
	q.CaseNumber = Some("II CSK 123/19")
	q.CourtType = Some(CourtTypeSupreme)
	q.JudgmentDateFrom = Some("2020-01-01")
	q.JudgmentDateTo = Some("not-a-date")
	q.SortField = Some(SortFieldDatabaseID)
	q.SortDirection = Some(SortDirection("sideways"))
	q.PageNumber = Some(3)
	q.PageSize = Some(250)

	got := paramMap(q.Params())

	assert.Equal(t, map[string]string{
		"judgeName":        "Jan Kowalski ",
		"caseNumber":       "II CSK 123/19",
		"courtType":        "SUPREME",
		"judgmentDateFrom": "2020-01-01",
		"judgmentDateTo":   "not-a-date",
		"sortingField":     "DATABASE_ID",
		"sortingDirection": "sideways",
		"pageNumber":       "3",
		"pageSize":         "250",
	}, got)
}

func TestSearchQuery_ParamsSingleFilter(t *testing.T) {
	tests := []struct {
		name  string
		apply func(*SearchQuery)
		key   string
		value string
	}{
		{"judge name", func(q *SearchQuery) { q.JudgeName = Some("Nowak") }, ParamJudgeName, "Nowak"},
		{"case number", func(q *SearchQuery) { q.CaseNumber = Some("I C 1/20") }, ParamCaseNumber, "I C 1/20"},
		{"court type", func(q *SearchQuery) { q.CourtType = Some(CourtTypeCommon) }, ParamCourtType, "COMMON"},
		{"date from", func(q *SearchQuery) { q.JudgmentDateFrom = Some("2019-05-01") }, ParamJudgmentDateFrom, "2019-05-01"},
		{"date to", func(q *SearchQuery) { q.JudgmentDateTo = Some("2019-05-31") }, ParamJudgmentDateTo, "2019-05-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewSearchQuery()
			tt.apply(&q)

			got := paramMap(q.Params())
			require.Len(t, got, 5)
			assert.Equal(t, tt.value, got[tt.key])
		})
	}
}

func TestSearchQuery_DefaultedFieldsCanBeCleared(t *testing.T) {
	q := NewSearchQuery()
	q.PageNumber = None[int]()
	q.SortDirection = None[SortDirection]()

	got := paramMap(q.Params())
	assert.NotContains(t, got, ParamPageNumber)
	assert.NotContains(t, got, ParamSortingDirection)
	assert.Equal(t, "10", got[ParamPageSize])
}

func TestOptional(t *testing.T) {
	var zero Optional[int]
	_, ok := zero.Get()
	assert.False(t, ok)

	v, ok := Some(0).Get()
	assert.True(t, ok)
	assert.Equal(t, 0, v)

	assert.False(t, FromPtr[string](nil).IsSet())
	s := "x"
	assert.True(t, FromPtr(&s).IsSet())

	assert.Equal(t, Some(2), Some(1).Or(Some(2)))
	assert.Equal(t, Some(1), Some(1).Or(None[int]()))
}

func TestJudgmentPath(t *testing.T) {
	assert.Equal(t, "/judgments/12345", JudgmentPath(12345))
	assert.Equal(t, "/judgments/12345", JudgmentPath(int64(12345)))
	assert.Equal(t, "/judgments/12345", JudgmentPath("12345"))
	assert.Equal(t, "/judgments/a%2Fb", JudgmentPath("a/b"))
}
