package models

import (
	"encoding/json"
	"math"
	"strconv"
)

// Ratio - отношение двух сумм, которое может быть бесконечным или неопределенным
// (например, затраты при нулевом доходе).
type Ratio float64

// IsFinite сообщает, является ли значение конечным числом.
func (r Ratio) IsFinite() bool {
	f := float64(r)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// String форматирует значение для таблиц и отчетов.
func (r Ratio) String() string {
	f := float64(r)
	switch {
	case math.IsNaN(f):
		return "—"
	case math.IsInf(f, 1):
		return "∞"
	case math.IsInf(f, -1):
		return "-∞"
	}
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// MarshalJSON реализует интерфейс json.Marshaler для Ratio.
// JSON не умеет передавать Inf и NaN, поэтому такие значения кодируются как null.
func (r Ratio) MarshalJSON() ([]byte, error) {
	if !r.IsFinite() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(r))
}

// UnmarshalJSON реализует интерфейс json.Unmarshaler для Ratio. null читается как NaN.
func (r *Ratio) UnmarshalJSON(b []byte) error {
	var f *float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	if f == nil {
		*r = Ratio(math.NaN())
		return nil
	}
	*r = Ratio(*f)
	return nil
}
