package db

import "gorm.io/gorm"

type Repositories struct {
	Feedback *FeedbackRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Feedback: NewFeedbackRepository(database),
	}
}
