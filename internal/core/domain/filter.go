package domain

// FilterOp identifies how a predicate value is matched against a column.
type FilterOp string

const (
	FilterOpEq    FilterOp = "eq"
	FilterOpYear  FilterOp = "year"
	FilterOpMonth FilterOp = "month"
	FilterOpDay   FilterOp = "day"
)

// Predicate is one element of a filter: match Field against
// Value under Op. The repository renders predicates to SQL; the order of
// the slice is the order of the rendered conditions.
type Predicate struct {
	Field string
	Op    FilterOp
	Value any
}

// TaskFilter holds the parsed task list filters. Nil means absent.
type TaskFilter struct {
	Status *TaskStatus
	Year   *int
	Month  *int
	Day    *int
}

// Predicates expands the filter into its predicate list.
func (f TaskFilter) Predicates() []Predicate {
	var preds []Predicate
	if f.Status != nil {
		preds = append(preds, Predicate{Field: "status", Op: FilterOpEq, Value: string(*f.Status)})
	}
	if f.Year != nil {
		preds = append(preds, Predicate{Field: "due_date", Op: FilterOpYear, Value: *f.Year})
	}
	if f.Month != nil {
		preds = append(preds, Predicate{Field: "due_date", Op: FilterOpMonth, Value: *f.Month})
	}
	if f.Day != nil {
		preds = append(preds, Predicate{Field: "due_date", Op: FilterOpDay, Value: *f.Day})
	}
	return preds
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Page is page-number pagination. Number is 1-based.
type Page struct {
	Number int
	Size   int
}

func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}
