package service

import (
	"fmt"
	"testing"

	"levelup-go/internal/models"
	"levelup-go/internal/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 每个测试用独立的内存sqlite库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("迁移测试数据库失败: %v", err)
	}

	return db
}

func newRoadmapService(t *testing.T) (*RoadmapService, *gorm.DB) {
	db := newTestDB(t)
	return NewRoadmapService(repository.NewRoadmapRepository(db)), db
}

func newTargetService(t *testing.T) (*TargetService, *gorm.DB) {
	db := newTestDB(t)
	return NewTargetService(repository.NewTargetRepository(db)), db
}

func newNoteService(t *testing.T) (*NoteService, *gorm.DB) {
	db := newTestDB(t)
	return NewNoteService(repository.NewNoteRepository(db)), db
}

func newTodoService(t *testing.T) (*TodoService, *gorm.DB) {
	db := newTestDB(t)
	return NewTodoService(repository.NewTodoRepository(db)), db
}
