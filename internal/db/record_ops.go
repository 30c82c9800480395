package db

import (
	"context"
	"fmt"
	"log"

	"marketing/internal/constants"
)

// DeleteRecord удаляет запись по ID из одной из таблиц белого списка.
// Имя таблицы проверяется до построения запроса. Несуществующий ID не считается ошибкой.
func (s *Store) DeleteRecord(ctx context.Context, table string, id int64) error {
	if !constants.AllowedTables[table] {
		log.Printf("DeleteRecord: удаление из таблицы '%s' запрещено", table)
		return fmt.Errorf("%w: %s", ErrTableNotAllowed, table)
	}

	if _, err := s.sqlDB.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = $1", id); err != nil {
		log.Printf("DeleteRecord: ошибка удаления записи #%d из %s: %v", id, table, err)
		return fmt.Errorf("ошибка удаления записи: %w", err)
	}
	return nil
}
