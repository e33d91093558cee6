package kanban

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homeswerv/internal/domain"
)

func createTestProjects() []domain.Project {
	return []domain.Project{
		{ID: "p1", Title: "Kitchen remodel", Status: domain.StatusPlanning},
		{ID: "p2", Title: "Roof repair", Status: domain.StatusPlanning},
		{ID: "p3", Title: "Deck stain", Status: domain.StatusScheduled},
		{ID: "p4", Title: "Bathroom tile", Status: domain.StatusInProgress},
		{ID: "p5", Title: "Fence", Status: domain.StatusOnHold},
		{ID: "p6", Title: "Gutters", Status: domain.StatusCompleted},
		{ID: "p7", Title: "Mystery", Status: domain.ProjectStatus("archived")},
	}
}

func ids(items []domain.Project) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.ID
	}
	return out
}

func TestNewBoardPartitionsByStatus(t *testing.T) {
	b := NewBoard(createTestProjects())

	cols := b.Columns()
	require.Len(t, cols, 5)
	assert.Equal(t, domain.StatusPlanning, cols[0].ID)
	assert.Equal(t, "In Progress", cols[2].Title)
	assert.Equal(t, []string{"p1", "p2"}, ids(cols[0].Items))
	assert.Equal(t, []string{"p6"}, ids(cols[4].Items))

	require.Len(t, b.Unplaced(), 1)
	assert.Equal(t, "p7", b.Unplaced()[0].ID)
}

func TestNewBoardEmptyColumnsPresent(t *testing.T) {
	b := NewBoard(nil)
	for _, col := range b.Columns() {
		assert.NotNil(t, col.Items)
		assert.Empty(t, col.Items)
	}
}

func TestMoveAcrossColumnsUpdatesStatus(t *testing.T) {
	b := NewBoard(createTestProjects())

	changed, err := b.Move(DragResult{
		ItemID:      "p1",
		Source:      Location{ColumnID: "planning", Index: 0},
		Destination: &Location{ColumnID: "completed", Index: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, []domain.ProjectStatus{domain.StatusPlanning, domain.StatusCompleted}, changed)

	assert.Equal(t, []string{"p2"}, b.IDs(domain.StatusPlanning))
	assert.Equal(t, []string{"p6", "p1"}, b.IDs(domain.StatusCompleted))

	moved, ok := b.Find("p1")
	require.True(t, ok)
	assert.Equal(t, domain.StatusCompleted, moved.Status)
}

func TestMoveWithinColumnReorders(t *testing.T) {
	b := NewBoard(createTestProjects())

	changed, err := b.Move(DragResult{
		ItemID:      "p1",
		Source:      Location{ColumnID: "planning", Index: 0},
		Destination: &Location{ColumnID: "planning", Index: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, []domain.ProjectStatus{domain.StatusPlanning}, changed)
	assert.Equal(t, []string{"p2", "p1"}, b.IDs(domain.StatusPlanning))

	p, _ := b.Find("p1")
	assert.Equal(t, domain.StatusPlanning, p.Status)
}

func TestMoveNoops(t *testing.T) {
	b := NewBoard(createTestProjects())

	changed, err := b.Move(DragResult{ItemID: "p1", Source: Location{ColumnID: "planning", Index: 0}})
	require.NoError(t, err)
	assert.Nil(t, changed, "dropped outside the board")

	changed, err = b.Move(DragResult{
		ItemID:      "p1",
		Source:      Location{ColumnID: "planning", Index: 0},
		Destination: &Location{ColumnID: "planning", Index: 0},
	})
	require.NoError(t, err)
	assert.Nil(t, changed, "dropped on its own slot")
	assert.Equal(t, []string{"p1", "p2"}, b.IDs(domain.StatusPlanning))
}

func TestMoveClampsDestinationIndex(t *testing.T) {
	b := NewBoard(createTestProjects())

	_, err := b.Move(DragResult{
		ItemID:      "p3",
		Source:      Location{ColumnID: "scheduled", Index: 0},
		Destination: &Location{ColumnID: "on_hold", Index: 42},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"p5", "p3"}, b.IDs(domain.StatusOnHold))
	assert.Empty(t, b.IDs(domain.StatusScheduled))
}

func TestMoveRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		drag DragResult
		want error
	}{
		{
			name: "unknown source column",
			drag: DragResult{Source: Location{ColumnID: "backlog"}, Destination: &Location{ColumnID: "planning"}},
			want: ErrInvalidColumn,
		},
		{
			name: "unknown destination column",
			drag: DragResult{Source: Location{ColumnID: "planning"}, Destination: &Location{ColumnID: "done"}},
			want: ErrInvalidColumn,
		},
		{
			name: "source index out of range",
			drag: DragResult{Source: Location{ColumnID: "planning", Index: 5}, Destination: &Location{ColumnID: "completed"}},
			want: ErrInvalidIndex,
		},
		{
			name: "item does not match source slot",
			drag: DragResult{ItemID: "p2", Source: Location{ColumnID: "planning", Index: 0}, Destination: &Location{ColumnID: "completed"}},
			want: ErrProjectMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard(createTestProjects())
			_, err := b.Move(tt.drag)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, []string{"p1", "p2"}, b.IDs(domain.StatusPlanning))
			assert.Equal(t, []string{"p6"}, b.IDs(domain.StatusCompleted))
		})
	}
}

func TestRollbackRestoresBoard(t *testing.T) {
	b := NewBoard(createTestProjects())
	require.ErrorIs(t, b.Rollback(), ErrNoRollback)

	_, err := b.Move(DragResult{
		ItemID:      "p2",
		Source:      Location{ColumnID: "planning", Index: 1},
		Destination: &Location{ColumnID: "in_progress", Index: 0},
	})
	require.NoError(t, err)
	require.NoError(t, b.Rollback())

	assert.Equal(t, []string{"p1", "p2"}, b.IDs(domain.StatusPlanning))
	assert.Equal(t, []string{"p4"}, b.IDs(domain.StatusInProgress))
	p, _ := b.Find("p2")
	assert.Equal(t, domain.StatusPlanning, p.Status)

	assert.ErrorIs(t, b.Rollback(), ErrNoRollback)
}

func TestColumnReturnsCopy(t *testing.T) {
	b := NewBoard(createTestProjects())
	items := b.Column(domain.StatusPlanning)
	items[0].Title = "changed"

	p, _ := b.Find("p1")
	assert.Equal(t, "Kitchen remodel", p.Title)
}
