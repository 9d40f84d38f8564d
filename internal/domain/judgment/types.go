package judgment

// Optional holds a value that may be absent. The zero value is absent.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr converts a pointer argument into an Optional. nil maps to absent.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Get returns the held value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether a value is present.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// Or overlays other on o: a present other wins, otherwise o is kept.
func (o Optional[T]) Or(other Optional[T]) Optional[T] {
	if other.set {
		return other
	}
	return o
}

// CourtType is the SAOS court category filter. Values are passed through unvalidated.
type CourtType string

const (
	CourtTypeCommon                 CourtType = "COMMON"
	CourtTypeSupreme                CourtType = "SUPREME"
	CourtTypeAdministrative         CourtType = "ADMINISTRATIVE"
	CourtTypeConstitutionalTribunal CourtType = "CONSTITUTIONAL_TRIBUNAL"
	CourtTypeNationalAppealChamber  CourtType = "NATIONAL_APPEAL_CHAMBER"
)

// SortField selects the SAOS sorting field.
type SortField string

const (
	SortFieldDatabaseID                SortField = "DATABASE_ID"
	SortFieldJudgmentDate              SortField = "JUDGMENT_DATE"
	SortFieldReferencingJudgmentsCount SortField = "REFERENCING_JUDGMENTS_COUNT"
	SortFieldCCCourtType               SortField = "CC_COURT_TYPE"
	SortFieldCCCourtName               SortField = "CC_COURT_NAME"
	SortFieldSCCourtDivisionName       SortField = "SC_COURT_DIVISION_NAME"
)

// SortDirection is the sorting order. Only ASC and DESC are meaningful to the remote.
type SortDirection string

const (
	SortAscending  SortDirection = "ASC"
	SortDescending SortDirection = "DESC"
)

// Defaults applied by NewSearchQuery.
const (
	DefaultSortField     = SortFieldJudgmentDate
	DefaultSortDirection = SortDescending
	DefaultPageNumber    = 0
	DefaultPageSize      = 10
)
