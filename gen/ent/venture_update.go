// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/nnamdi-udeh/dealdesk/gen/ent/document"
	"github.com/nnamdi-udeh/dealdesk/gen/ent/predicate"
	"github.com/nnamdi-udeh/dealdesk/gen/ent/venture"
)

// VentureUpdate is the builder for updating Venture entities.
type VentureUpdate struct {
	config
	hooks    []Hook
	mutation *VentureMutation
}

// Where appends a list predicates to the VentureUpdate builder.
func (_u *VentureUpdate) Where(ps ...predicate.Venture) *VentureUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *VentureUpdate) SetName(v string) *VentureUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *VentureUpdate) SetNillableName(v *string) *VentureUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetIndustry sets the "industry" field.
func (_u *VentureUpdate) SetIndustry(v string) *VentureUpdate {
	_u.mutation.SetIndustry(v)
	return _u
}

// SetNillableIndustry sets the "industry" field if the given value is not nil.
func (_u *VentureUpdate) SetNillableIndustry(v *string) *VentureUpdate {
	if v != nil {
		_u.SetIndustry(*v)
	}
	return _u
}

// ClearIndustry clears the value of the "industry" field.
func (_u *VentureUpdate) ClearIndustry() *VentureUpdate {
	_u.mutation.ClearIndustry()
	return _u
}

// SetStage sets the "stage" field.
func (_u *VentureUpdate) SetStage(v string) *VentureUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *VentureUpdate) SetNillableStage(v *string) *VentureUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// ClearStage clears the value of the "stage" field.
func (_u *VentureUpdate) ClearStage() *VentureUpdate {
	_u.mutation.ClearStage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *VentureUpdate) SetCreatedAt(v time.Time) *VentureUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *VentureUpdate) SetNillableCreatedAt(v *time.Time) *VentureUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VentureUpdate) SetUpdatedAt(v time.Time) *VentureUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *VentureUpdate) AddDocumentIDs(ids ...uuid.UUID) *VentureUpdate {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *VentureUpdate) AddDocuments(v ...*Document) *VentureUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// Mutation returns the VentureMutation object of the builder.
func (_u *VentureUpdate) Mutation() *VentureMutation {
	return _u.mutation
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *VentureUpdate) ClearDocuments() *VentureUpdate {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *VentureUpdate) RemoveDocumentIDs(ids ...uuid.UUID) *VentureUpdate {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *VentureUpdate) RemoveDocuments(v ...*Document) *VentureUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VentureUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VentureUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VentureUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VentureUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VentureUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := venture.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VentureUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := venture.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Venture.name": %w`, err)}
		}
	}
	return nil
}

func (_u *VentureUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(venture.Table, venture.Columns, sqlgraph.NewFieldSpec(venture.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(venture.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Industry(); ok {
		_spec.SetField(venture.FieldIndustry, field.TypeString, value)
	}
	if _u.mutation.IndustryCleared() {
		_spec.ClearField(venture.FieldIndustry, field.TypeString)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(venture.FieldStage, field.TypeString, value)
	}
	if _u.mutation.StageCleared() {
		_spec.ClearField(venture.FieldStage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(venture.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(venture.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   venture.DocumentsTable,
			Columns: []string{venture.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   venture.DocumentsTable,
			Columns: []string{venture.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   venture.DocumentsTable,
			Columns: []string{venture.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{venture.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VentureUpdateOne is the builder for updating a single Venture entity.
type VentureUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VentureMutation
}

// SetName sets the "name" field.
func (_u *VentureUpdateOne) SetName(v string) *VentureUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *VentureUpdateOne) SetNillableName(v *string) *VentureUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetIndustry sets the "industry" field.
func (_u *VentureUpdateOne) SetIndustry(v string) *VentureUpdateOne {
	_u.mutation.SetIndustry(v)
	return _u
}

// SetNillableIndustry sets the "industry" field if the given value is not nil.
func (_u *VentureUpdateOne) SetNillableIndustry(v *string) *VentureUpdateOne {
	if v != nil {
		_u.SetIndustry(*v)
	}
	return _u
}

// ClearIndustry clears the value of the "industry" field.
func (_u *VentureUpdateOne) ClearIndustry() *VentureUpdateOne {
	_u.mutation.ClearIndustry()
	return _u
}

// SetStage sets the "stage" field.
func (_u *VentureUpdateOne) SetStage(v string) *VentureUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *VentureUpdateOne) SetNillableStage(v *string) *VentureUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// ClearStage clears the value of the "stage" field.
func (_u *VentureUpdateOne) ClearStage() *VentureUpdateOne {
	_u.mutation.ClearStage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *VentureUpdateOne) SetCreatedAt(v time.Time) *VentureUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *VentureUpdateOne) SetNillableCreatedAt(v *time.Time) *VentureUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VentureUpdateOne) SetUpdatedAt(v time.Time) *VentureUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *VentureUpdateOne) AddDocumentIDs(ids ...uuid.UUID) *VentureUpdateOne {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *VentureUpdateOne) AddDocuments(v ...*Document) *VentureUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// Mutation returns the VentureMutation object of the builder.
func (_u *VentureUpdateOne) Mutation() *VentureMutation {
	return _u.mutation
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *VentureUpdateOne) ClearDocuments() *VentureUpdateOne {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *VentureUpdateOne) RemoveDocumentIDs(ids ...uuid.UUID) *VentureUpdateOne {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *VentureUpdateOne) RemoveDocuments(v ...*Document) *VentureUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// Where appends a list predicates to the VentureUpdate builder.
func (_u *VentureUpdateOne) Where(ps ...predicate.Venture) *VentureUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VentureUpdateOne) Select(field string, fields ...string) *VentureUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Venture entity.
func (_u *VentureUpdateOne) Save(ctx context.Context) (*Venture, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VentureUpdateOne) SaveX(ctx context.Context) *Venture {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VentureUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VentureUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VentureUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := venture.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VentureUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := venture.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Venture.name": %w`, err)}
		}
	}
	return nil
}

func (_u *VentureUpdateOne) sqlSave(ctx context.Context) (_node *Venture, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(venture.Table, venture.Columns, sqlgraph.NewFieldSpec(venture.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Venture.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, venture.FieldID)
		for _, f := range fields {
			if !venture.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != venture.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(venture.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Industry(); ok {
		_spec.SetField(venture.FieldIndustry, field.TypeString, value)
	}
	if _u.mutation.IndustryCleared() {
		_spec.ClearField(venture.FieldIndustry, field.TypeString)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(venture.FieldStage, field.TypeString, value)
	}
	if _u.mutation.StageCleared() {
		_spec.ClearField(venture.FieldStage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(venture.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(venture.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   venture.DocumentsTable,
			Columns: []string{venture.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   venture.DocumentsTable,
			Columns: []string{venture.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   venture.DocumentsTable,
			Columns: []string{venture.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Venture{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{venture.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
