package models

import (
	"bytes"
	"strings"
	"time"
)

// Textual renderings of temporal column values
const (
	dateLayout         = "2006-01-02"
	dateTimeLayout     = "2006-01-02 15:04:05"
	dateTimeFracLayout = "2006-01-02 15:04:05.000000"
)

// Lead represents one row of leads_table.
// Columns keeps the order returned by the database; Values is keyed by column name.
type Lead struct {
	Columns []string
	Values  map[string]interface{}
}

// NewLead builds a Lead from a scanned row. dbTypes holds the database type
// name for each column and may be shorter than columns (unknown types).
func NewLead(columns []string, dbTypes []string, values []interface{}) *Lead {
	lead := &Lead{
		Columns: make([]string, 0, len(columns)),
		Values:  make(map[string]interface{}, len(columns)),
	}

	for i, name := range columns {
		var dbType string
		if i < len(dbTypes) {
			dbType = dbTypes[i]
		}
		var value interface{}
		if i < len(values) {
			value = values[i]
		}
		lead.Columns = append(lead.Columns, name)
		lead.Values[name] = NormalizeColumnValue(value, dbType)
	}

	return lead
}

// LeadID returns the lead_id column as a string
func (l *Lead) LeadID() string {
	id, _ := l.Values[ParamLeadID].(string)
	return id
}

// MarshalJSON encodes the row as an object with keys in column order
func (l *Lead) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range l.Columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalJSON(name)
		if err != nil {
			return nil, err
		}
		value, err := marshalJSON(l.Values[name])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// NormalizeColumnValue converts driver values that have no JSON form into
// strings: byte slices become text and times are rendered as dates or
// date-times depending on the column type.
func NormalizeColumnValue(value interface{}, dbType string) interface{} {
	switch v := value.(type) {
	case []byte:
		return string(v)
	case time.Time:
		return FormatColumnTime(v, dbType)
	case *time.Time:
		if v == nil {
			return nil
		}
		return FormatColumnTime(*v, dbType)
	default:
		return v
	}
}

// FormatColumnTime renders a temporal column value
func FormatColumnTime(t time.Time, dbType string) string {
	if strings.EqualFold(dbType, "DATE") {
		return t.Format(dateLayout)
	}
	if t.Nanosecond()/int(time.Microsecond) != 0 {
		return t.Format(dateTimeFracLayout)
	}
	return t.Format(dateTimeLayout)
}
