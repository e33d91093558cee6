package kanban

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"homeswerv/internal/domain"
	"homeswerv/internal/metrics"
	"homeswerv/internal/ports"
)

type Service struct {
	projects ports.ProjectRepository
	writer   ports.ProjectWriter
}

// New builds the board service. A nil writer keeps moves local to the board
// returned by Move; nothing is persisted.
func New(projects ports.ProjectRepository, writer ports.ProjectWriter) *Service {
	return &Service{projects: projects, writer: writer}
}

// Board loads the user's projects and partitions them into columns.
func (s *Service) Board(ctx context.Context, userID string, role domain.Role) (*Board, error) {
	projects, err := s.projects.ListProjects(ctx, userID, role)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	board := NewBoard(projects)
	if n := len(board.Unplaced()); n > 0 {
		log.Warn().Str("user", userID).Int("count", n).Msg("Projects with unknown status left off the board")
	}
	return board, nil
}

// Move applies the drag to a freshly loaded board and persists the order of
// every column it changed. When persisting fails the board is rolled back and
// the error returned alongside it.
func (s *Service) Move(ctx context.Context, userID string, role domain.Role, drag DragResult) (*Board, error) {
	board, err := s.Board(ctx, userID, role)
	if err != nil {
		return nil, err
	}

	changed, err := board.Move(drag)
	if err != nil {
		metrics.RecordKanbanMove("rejected")
		return board, err
	}
	if len(changed) == 0 {
		metrics.RecordKanbanMove("noop")
		return board, nil
	}
	if s.writer == nil {
		metrics.RecordKanbanMove("moved")
		return board, nil
	}

	columns := make([]ports.ColumnOrder, 0, len(changed))
	for _, status := range changed {
		columns = append(columns, ports.ColumnOrder{Status: status, ProjectIDs: board.IDs(status)})
	}
	if err := s.writer.SaveColumnOrders(ctx, columns); err != nil {
		if rbErr := board.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("Kanban rollback failed")
		}
		metrics.RecordKanbanMove("rolled_back")
		log.Error().
			Err(err).
			Str("project", drag.ItemID).
			Int("columns", len(columns)).
			Msg("Failed to persist kanban move")
		return board, fmt.Errorf("save board order: %w", err)
	}

	metrics.RecordKanbanMove("moved")
	log.Info().
		Str("project", drag.ItemID).
		Str("from", drag.Source.ColumnID).
		Str("to", drag.Destination.ColumnID).
		Int("index", drag.Destination.Index).
		Msg("Kanban move persisted")
	return board, nil
}
