package db

import "gorm.io/gorm"

// Database hands out the underlying gorm handle to repositories.
type Database interface {
	GetDB() *gorm.DB
}

type GormDatabase struct {
	DB *gorm.DB
}

func NewGormDatabase(db *gorm.DB) *GormDatabase { return &GormDatabase{DB: db} }

func (g *GormDatabase) GetDB() *gorm.DB { return g.DB }
