package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/examtable/internal/app/models"
)

// RoomRepository handles database operations for exam rooms
type RoomRepository struct {
	db DBTX
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(db DBTX) *RoomRepository {
	return &RoomRepository{db: db}
}

// GetAll retrieves every room
func (r *RoomRepository) GetAll(ctx context.Context) ([]models.Room, error) {
	q := psql.Select("id", "name", "capacity", "type", "building").From("rooms").OrderBy("id")
	return selectAll(ctx, r.db, "rooms", q, func(row pgx.Row) (models.Room, error) {
		var room models.Room
		err := row.Scan(&room.ID, &room.Name, &room.Capacity, &room.Type, &room.Building)
		return room, err
	})
}
