package domain

import (
	"fmt"
	"time"
)

type InvalidRangeError struct {
	Start  time.Time
	End    time.Time
	Reason string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range %s..%s: %s",
		e.Start.Format(time.RFC3339), e.End.Format(time.RFC3339), e.Reason)
}

type InvalidSeriesError struct {
	Index  int
	Reason string
}

func (e *InvalidSeriesError) Error() string {
	return fmt.Sprintf("invalid series at bucket %d: %s", e.Index, e.Reason)
}

type InvalidMetricError struct {
	Name  string
	Value float64
}

func (e *InvalidMetricError) Error() string {
	return fmt.Sprintf("invalid metric %s: %v is not a finite number", e.Name, e.Value)
}

type UnknownTemplateError struct {
	Template string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("unknown report template %q", e.Template)
}
