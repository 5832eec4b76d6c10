package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// GameRecord is one archived finished game.
type GameRecord struct {
	GameID     string
	Winner     string
	Strategy   string
	Board      string
	FinishedAt time.Time
}

type ArchiveRepository interface {
	Save(ctx context.Context, game *entity.Game) error
	ListRecent(ctx context.Context, limit int) ([]GameRecord, error)
}

type dbArchive struct {
	conn *sql.DB
}

func NewArchiveRepository(conn *sql.DB) ArchiveRepository {
	return &dbArchive{
		conn: conn,
	}
}

func (that *dbArchive) Save(ctx context.Context, game *entity.Game) error {
	query := `INSERT INTO games_archive (game_id, winner, strategy, board, finished_at) VALUES (?, ?, ?, ?, ?)`

	board := strings.Join(game.Board[:], ",")

	_, err := that.conn.ExecContext(ctx, query, game.ID, game.Winner, game.BotStrategy, board, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to archive game: %w", err)
	}

	return nil
}

func (that *dbArchive) ListRecent(ctx context.Context, limit int) ([]GameRecord, error) {
	query := `SELECT game_id, winner, strategy, board, finished_at
		FROM games_archive ORDER BY finished_at DESC LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query archive: %w", err)
	}
	defer rows.Close()

	var records []GameRecord
	for rows.Next() {
		var record GameRecord
		if err = rows.Scan(&record.GameID, &record.Winner, &record.Strategy, &record.Board, &record.FinishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan archive record: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read archive rows: %w", err)
	}

	return records, nil
}
