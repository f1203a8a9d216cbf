package model

import (
	"time"
)

type ChatLog struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	Phone     string    `gorm:"type:text"`
	Question  string    `gorm:"type:text"`
	Answer    string    `gorm:"type:text"`
	Timestamp time.Time `gorm:"autoCreateTime;default:now()"`
}

func (ChatLog) TableName() string {
	return "chat_logs"
}
