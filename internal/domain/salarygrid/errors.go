package salarygrid

import "errors"

var (
	ErrDerivedFieldEdit   = errors.New("derived fields cannot be edited directly")
	ErrUnknownField       = errors.New("unknown grid field")
	ErrInvalidPeriod      = errors.New("invalid pay period")
	ErrSheetParse         = errors.New("could not parse spreadsheet file")
	ErrSalaryPeriodExists = errors.New("salary already recorded for this employee and period")
)
