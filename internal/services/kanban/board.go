// Package kanban keeps the project board state: five fixed status columns,
// drag-and-drop moves between and within them, and a one-step rollback for
// moves whose persistence failed.
package kanban

import (
	"errors"
	"fmt"

	"homeswerv/internal/domain"
)

var (
	// ErrInvalidColumn indicates a drag referenced a column that is not one of the status buckets.
	ErrInvalidColumn = errors.New("invalid column")
	// ErrInvalidIndex indicates the drag source index is outside the column.
	ErrInvalidIndex = errors.New("invalid source index")
	// ErrProjectMismatch indicates the dragged id is not the project at the source index.
	ErrProjectMismatch = errors.New("dragged project does not match source position")
	// ErrNoRollback indicates there is no move to undo.
	ErrNoRollback = errors.New("no rollback state available")
)

// Location is a position on the board as reported by the drag-and-drop layer.
type Location struct {
	ColumnID string
	Index    int
}

// DragResult describes a finished drag. Destination is nil when the card was
// dropped outside any column.
type DragResult struct {
	ItemID      string
	Source      Location
	Destination *Location
}

// Column is a read-only snapshot of one status bucket.
type Column struct {
	ID    domain.ProjectStatus
	Title string
	Items []domain.Project
}

// Board is not safe for concurrent use.
type Board struct {
	columns  map[domain.ProjectStatus][]domain.Project
	unplaced []domain.Project

	// columns touched by the last move, as they were before it
	rollback map[domain.ProjectStatus][]domain.Project
}

// NewBoard partitions projects into the status columns, keeping input order
// inside each column. Projects with an unknown status are kept aside and
// reported by Unplaced.
func NewBoard(projects []domain.Project) *Board {
	b := &Board{columns: make(map[domain.ProjectStatus][]domain.Project, len(domain.ProjectStatuses))}
	for _, status := range domain.ProjectStatuses {
		b.columns[status] = []domain.Project{}
	}
	for _, p := range projects {
		if !p.Status.Valid() {
			b.unplaced = append(b.unplaced, p)
			continue
		}
		b.columns[p.Status] = append(b.columns[p.Status], p)
	}
	return b
}

// Columns returns all columns in board order.
func (b *Board) Columns() []Column {
	out := make([]Column, 0, len(domain.ProjectStatuses))
	for _, status := range domain.ProjectStatuses {
		out = append(out, Column{ID: status, Title: status.Title(), Items: b.Column(status)})
	}
	return out
}

// Column returns a copy of the items in one column.
func (b *Board) Column(status domain.ProjectStatus) []domain.Project {
	items := b.columns[status]
	out := make([]domain.Project, len(items))
	copy(out, items)
	return out
}

// IDs returns the project ids of a column in order.
func (b *Board) IDs(status domain.ProjectStatus) []string {
	items := b.columns[status]
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.ID
	}
	return out
}

func (b *Board) Unplaced() []domain.Project {
	return b.unplaced
}

// Find returns the project with the given id and the column it sits in.
func (b *Board) Find(id string) (domain.Project, bool) {
	for _, status := range domain.ProjectStatuses {
		for _, p := range b.columns[status] {
			if p.ID == id {
				return p, true
			}
		}
	}
	return domain.Project{}, false
}

// Move applies a drag result. It returns the columns whose contents changed,
// source first; a drop outside the board or onto the starting slot changes
// nothing. Crossing columns rewrites the project's status to the destination
// column id.
func (b *Board) Move(drag DragResult) ([]domain.ProjectStatus, error) {
	if drag.Destination == nil {
		return nil, nil
	}
	from := domain.ProjectStatus(drag.Source.ColumnID)
	to := domain.ProjectStatus(drag.Destination.ColumnID)
	if !from.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColumn, drag.Source.ColumnID)
	}
	if !to.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColumn, drag.Destination.ColumnID)
	}

	src := b.columns[from]
	if drag.Source.Index < 0 || drag.Source.Index >= len(src) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIndex, drag.Source.Index)
	}
	if drag.ItemID != "" && src[drag.Source.Index].ID != drag.ItemID {
		return nil, fmt.Errorf("%w: %s", ErrProjectMismatch, drag.ItemID)
	}
	if from == to && drag.Source.Index == drag.Destination.Index {
		return nil, nil
	}

	b.rollback = map[domain.ProjectStatus][]domain.Project{from: cloneColumn(src)}
	if from != to {
		b.rollback[to] = cloneColumn(b.columns[to])
	}

	item := src[drag.Source.Index]
	src = remove(src, drag.Source.Index)

	if from == to {
		b.columns[from] = insert(src, drag.Destination.Index, item)
		return []domain.ProjectStatus{from}, nil
	}

	item.Status = to
	b.columns[from] = src
	b.columns[to] = insert(b.columns[to], drag.Destination.Index, item)
	return []domain.ProjectStatus{from, to}, nil
}

// Rollback restores the columns touched by the last Move.
func (b *Board) Rollback() error {
	if b.rollback == nil {
		return ErrNoRollback
	}
	for status, items := range b.rollback {
		b.columns[status] = items
	}
	b.rollback = nil
	return nil
}

func cloneColumn(items []domain.Project) []domain.Project {
	out := make([]domain.Project, len(items))
	copy(out, items)
	return out
}

func remove(items []domain.Project, i int) []domain.Project {
	out := make([]domain.Project, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}

// insert clamps i into [0, len(items)].
func insert(items []domain.Project, i int, p domain.Project) []domain.Project {
	if i < 0 {
		i = 0
	}
	if i > len(items) {
		i = len(items)
	}
	out := make([]domain.Project, 0, len(items)+1)
	out = append(out, items[:i]...)
	out = append(out, p)
	return append(out, items[i:]...)
}
