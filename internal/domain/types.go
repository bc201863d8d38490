package domain

// Locale selects which field kinds are legal and which raw-value
// conventions (identifier formats, phone layouts) apply.
type Locale string

const (
	LocaleBrazil Locale = "pt_BR"
	LocaleUSA    Locale = "en_US"
)

// FieldKind is the closed set of synthesizable column categories.
// Membership per locale is decided by the backend registry.
type FieldKind string

const (
	FieldID      FieldKind = "id"
	FieldName    FieldKind = "name"
	FieldEmail   FieldKind = "email"
	FieldAge     FieldKind = "age"
	FieldCPF     FieldKind = "cpf"
	FieldCNPJ    FieldKind = "cnpj"
	FieldSSN     FieldKind = "ssn"
	FieldEIN     FieldKind = "ein"
	FieldPrice   FieldKind = "price"
	FieldPhone   FieldKind = "phoneNumber"
	FieldAddress FieldKind = "address"
	FieldJob     FieldKind = "job"
	FieldDate    FieldKind = "date"
	FieldTime    FieldKind = "time"
	FieldBoolean FieldKind = "boolean"
)

// Parameter keys accepted per field kind.
const (
	ParamMinPrice   = "minPrice"
	ParamMaxPrice   = "maxPrice"
	ParamMinDate    = "minDate"
	ParamMaxDate    = "maxDate"
	ParamMinAge     = "minAge"
	ParamMaxAge     = "maxAge"
	ParamTrueChance = "trueChance"
)

// ColumnSpec is one declared column: a field kind plus its optional
// generation parameters.
type ColumnSpec struct {
	Name   FieldKind      `json:"name" yaml:"name"`
	Params map[string]any `json:"params,omitempty" yaml:"params,omitempty"`
}

// Row maps column labels to generated values. Values are one of
// string, int, int64, float64, time.Time (date-only) or nil.
type Row map[string]any

// RowSet pairs an ordered column list with the rows it produced.
// Column order is significant for display and export.
type RowSet struct {
	Columns []string
	Rows    []Row
}
