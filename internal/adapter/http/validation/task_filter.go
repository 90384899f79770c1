package validation

import (
	"strconv"

	"github.com/batirniyaz/todo-manager-proweb/internal/core/domain"
	"github.com/batirniyaz/todo-manager-proweb/pkg/apierrors"
)

// TaskListQuery holds the raw task list query parameters. Empty string
// means the parameter was absent.
type TaskListQuery struct {
	Status   string
	Year     string
	Month    string
	Day      string
	Page     string
	PageSize string
}

// BuildTaskFilter validates the list filters and their composition rules:
// month needs year, day needs year or month, and every malformed numeric
// value is reported on its own field.
func BuildTaskFilter(q TaskListQuery, lang string) (domain.TaskFilter, apierrors.FieldErrors) {
	fieldErrs := apierrors.FieldErrors{}
	var filter domain.TaskFilter

	if q.Status != "" {
		status := domain.TaskStatus(q.Status)
		if !status.Valid() {
			fieldErrs.Add("status", apierrors.FieldMsgInvalidStatusFilter, lang)
		} else {
			filter.Status = &status
		}
	}

	if q.Year != "" {
		year, err := strconv.Atoi(q.Year)
		if err != nil {
			fieldErrs.Add("year", apierrors.FieldMsgInvalidYearFormat, lang)
		} else {
			filter.Year = &year
		}
	}

	if q.Month != "" {
		if q.Year == "" {
			fieldErrs.Add("month", apierrors.FieldMsgMonthRequiresYear, lang)
		} else if month, err := strconv.Atoi(q.Month); err != nil {
			fieldErrs.Add("month", apierrors.FieldMsgInvalidMonthFormat, lang)
		} else {
			filter.Month = &month
		}
	}

	if q.Day != "" {
		if q.Year == "" && q.Month == "" {
			fieldErrs.Add("day", apierrors.FieldMsgDayRequiresYearOrMonth, lang)
		} else if day, err := strconv.Atoi(q.Day); err != nil {
			fieldErrs.Add("day", apierrors.FieldMsgInvalidDayFormat, lang)
		} else {
			filter.Day = &day
		}
	}

	if !fieldErrs.Empty() {
		return domain.TaskFilter{}, fieldErrs
	}

	return filter, nil
}

// BuildPage parses page-number pagination with the configured bounds.
func BuildPage(q TaskListQuery, lang string) (domain.Page, apierrors.FieldErrors) {
	fieldErrs := apierrors.FieldErrors{}
	page := domain.Page{Number: 1, Size: domain.DefaultPageSize}

	if q.Page != "" {
		number, err := strconv.Atoi(q.Page)
		if err != nil || number < 1 {
			fieldErrs.Add("page", apierrors.FieldMsgInvalidPageFormat, lang)
		} else {
			page.Number = number
		}
	}

	if q.PageSize != "" {
		size, err := strconv.Atoi(q.PageSize)
		if err != nil || size < 1 {
			fieldErrs.Add("page_size", apierrors.FieldMsgInvalidPageFormat, lang)
		} else {
			page.Size = size
		}
	}

	if !fieldErrs.Empty() {
		return domain.Page{}, fieldErrs
	}

	return page.Normalize(), nil
}
