package models

import (
	"gorm.io/gorm"
)

// Role is the access tier of an account. Admins may manage quizzes and
// perform bulk deletes; regular users may only read questions and submit
// results.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	gorm.Model
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         Role   `gorm:"default:user" json:"role"` // user, admin
}

// Quiz is a named collection of questions. Each question row carries its own
// correct answer, so questions and answer key can never drift apart; the
// parallel answers array only exists on the wire.
type Quiz struct {
	gorm.Model `json:"-"`
	QuizID     string     `gorm:"uniqueIndex;not null" json:"quizId"`
	Questions  []Question `gorm:"foreignKey:QuizRef" json:"-"`
}

type Question struct {
	gorm.Model    `json:"-"`
	QuizRef       uint   `gorm:"index" json:"-"`
	Seq           int    `json:"id"` // 1-based position at time of insertion
	Question      string `json:"question"`
	Options       string `json:"-"` // JSON array of exactly 3 options
	CorrectAnswer int    `json:"-"` // index into Options, 0..2
}

// Result is a write-once record of one quiz attempt. Username is free text
// and is not checked against the users table.
type Result struct {
	gorm.Model
	Username string `json:"username"`
	Result   string `json:"-"` // opaque JSON array of per-question outcomes
	Attempts int    `gorm:"default:0" json:"attempts"`
	Points   int    `gorm:"default:0" json:"points"`
	Achived  string `gorm:"default:''" json:"achived"`
}
