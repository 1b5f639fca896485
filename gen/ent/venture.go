// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nnamdi-udeh/dealdesk/gen/ent/venture"
)

// Venture is the model entity for the Venture schema.
type Venture struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Industry holds the value of the "industry" field.
	Industry *string `json:"industry,omitempty"`
	// Stage holds the value of the "stage" field.
	Stage *string `json:"stage,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VentureQuery when eager-loading is set.
	Edges        VentureEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VentureEdges holds the relations/edges for other nodes in the graph.
type VentureEdges struct {
	// Documents holds the value of the documents edge.
	Documents []*Document `json:"documents,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentsOrErr returns the Documents value or an error if the edge
// was not loaded in eager-loading.
func (e VentureEdges) DocumentsOrErr() ([]*Document, error) {
	if e.loadedTypes[0] {
		return e.Documents, nil
	}
	return nil, &NotLoadedError{edge: "documents"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Venture) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case venture.FieldName, venture.FieldIndustry, venture.FieldStage:
			values[i] = new(sql.NullString)
		case venture.FieldCreatedAt, venture.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case venture.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Venture fields.
func (_m *Venture) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case venture.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case venture.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case venture.FieldIndustry:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field industry", values[i])
			} else if value.Valid {
				_m.Industry = new(string)
				*_m.Industry = value.String
			}
		case venture.FieldStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = new(string)
				*_m.Stage = value.String
			}
		case venture.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case venture.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Venture.
// This includes values selected through modifiers, order, etc.
func (_m *Venture) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocuments queries the "documents" edge of the Venture entity.
func (_m *Venture) QueryDocuments() *DocumentQuery {
	return NewVentureClient(_m.config).QueryDocuments(_m)
}

// Update returns a builder for updating this Venture.
// Note that you need to call Venture.Unwrap() before calling this method if this Venture
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Venture) Update() *VentureUpdateOne {
	return NewVentureClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Venture entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Venture) Unwrap() *Venture {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Venture is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Venture) String() string {
	var builder strings.Builder
	builder.WriteString("Venture(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.Industry; v != nil {
		builder.WriteString("industry=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Stage; v != nil {
		builder.WriteString("stage=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Ventures is a parsable slice of Venture.
type Ventures []*Venture
