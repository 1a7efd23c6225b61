package repository

import "prefect_board/internal/storage"

type Repositories struct {
	User         UserRepository
	Profile      ProfileRepository
	Announcement AnnouncementRepository
	Rating       RatingRepository
}

func NewRepositories(db *storage.PostgresDB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Profile:      NewProfileRepository(db),
		Announcement: NewAnnouncementRepository(db),
		Rating:       NewRatingRepository(db),
	}
}
